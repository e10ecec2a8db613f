package settings_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springcam/internal/preset"
	"github.com/san-kum/springcam/internal/settings"
	"github.com/san-kum/springcam/internal/spring"
)

func anim(style preset.Style, mass, tension, friction, duration float64) settings.Animation {
	return settings.Animation{
		Style:  style,
		Config: spring.Config{Mass: mass, Tension: tension, Friction: friction, TransitionDuration: duration},
	}
}

var _ = Describe("Store", func() {
	var store *settings.Store

	BeforeEach(func() {
		store = settings.NewStore()
	})

	Describe("defaults", func() {
		It("starts both animations on the default preset", func() {
			want := anim(preset.StyleDefault, 1, 170, 26, settings.DefaultTransitionDuration)
			Expect(store.CursorAnimation()).To(Equal(want))
			Expect(store.ZoomAnimation()).To(Equal(want))
		})

		It("starts with motion blur disabled at preset amounts", func() {
			Expect(store.MotionBlur()).To(Equal(settings.MotionBlur{
				Enabled: false, Amount: 50, Cursor: 70, Zoom: 100, Pan: 100,
			}))
		})

		It("passes serialization validation", func() {
			Expect(store.Snapshot().Validate()).To(Succeed())
		})
	})

	Describe("UpdateCursorAnimation", func() {
		It("snaps to a named preset", func() {
			got := store.UpdateCursorAnimation(settings.WithStyle(preset.StyleGentle))
			Expect(got).To(Equal(anim(preset.StyleGentle, 1, 120, 14, 1)))
			Expect(store.CursorAnimation()).To(Equal(got))
		})

		It("marks a numeric change without a style as custom", func() {
			store.UpdateCursorAnimation(settings.WithStyle(preset.StyleGentle))
			got := store.UpdateCursorAnimation(settings.AnimationUpdate{Tension: settings.Float(300)})
			Expect(got).To(Equal(anim(preset.StyleCustom, 1, 300, 14, 1)))
		})

		It("keeps the style when the same update overrides a field", func() {
			got := store.UpdateCursorAnimation(settings.AnimationUpdate{
				Style:    settings.StylePtr(preset.StyleGentle),
				Friction: settings.Float(99),
			})
			Expect(got).To(Equal(anim(preset.StyleGentle, 1, 120, 99, 1)))
		})

		It("applies the preset before the override", func() {
			store.UpdateCursorAnimation(settings.AnimationUpdate{Tension: settings.Float(450)})
			got := store.UpdateCursorAnimation(settings.AnimationUpdate{
				Style:   settings.StylePtr(preset.StyleGentle),
				Tension: settings.Float(300),
			})
			Expect(got).To(Equal(anim(preset.StyleGentle, 1, 300, 14, 1)))
		})

		It("treats a duration change as a manual divergence", func() {
			got := store.UpdateCursorAnimation(settings.AnimationUpdate{TransitionDuration: settings.Float(2)})
			Expect(got.Style).To(Equal(preset.StyleCustom))
			Expect(got.Config).To(Equal(spring.Config{Mass: 1, Tension: 170, Friction: 26, TransitionDuration: 2}))
		})

		It("never touches the duration when applying a preset", func() {
			store.UpdateCursorAnimation(settings.AnimationUpdate{TransitionDuration: settings.Float(3.5)})
			got := store.UpdateCursorAnimation(settings.WithStyle(preset.StyleSlow))
			Expect(got).To(Equal(anim(preset.StyleSlow, 1, 280, 60, 3.5)))
		})

		It("returns to a named style only through a style update", func() {
			store.UpdateCursorAnimation(settings.AnimationUpdate{Mass: settings.Float(2)})
			Expect(store.CursorAnimation().Style).To(Equal(preset.StyleCustom))

			store.UpdateCursorAnimation(settings.AnimationUpdate{Mass: settings.Float(1), Tension: settings.Float(170), Friction: settings.Float(26)})
			Expect(store.CursorAnimation().Style).To(Equal(preset.StyleCustom))

			store.UpdateCursorAnimation(settings.WithStyle(preset.StyleDefault))
			Expect(store.CursorAnimation().Style).To(Equal(preset.StyleDefault))
		})

		It("keeps values when custom is selected explicitly", func() {
			store.UpdateCursorAnimation(settings.WithStyle(preset.StyleWobbly))
			got := store.UpdateCursorAnimation(settings.WithStyle(preset.StyleCustom))
			Expect(got).To(Equal(anim(preset.StyleCustom, 1, 180, 12, 1)))
		})

		It("writes an unknown style verbatim without copying values", func() {
			store.UpdateCursorAnimation(settings.WithStyle(preset.StyleStiff))
			got := store.UpdateCursorAnimation(settings.WithStyle(preset.Style("bouncy")))
			Expect(got).To(Equal(anim(preset.Style("bouncy"), 1, 210, 20, 1)))
		})

		It("leaves the record alone for an empty update", func() {
			store.UpdateCursorAnimation(settings.WithStyle(preset.StyleWobbly))
			got := store.UpdateCursorAnimation(settings.AnimationUpdate{})
			Expect(got).To(Equal(anim(preset.StyleWobbly, 1, 180, 12, 1)))
		})

		It("does not validate ranges", func() {
			got := store.UpdateCursorAnimation(settings.AnimationUpdate{Mass: settings.Float(-4)})
			Expect(got.Mass).To(Equal(-4.0))
		})

		It("does not touch the zoom record", func() {
			store.UpdateCursorAnimation(settings.WithStyle(preset.StyleWobbly))
			Expect(store.ZoomAnimation().Style).To(Equal(preset.StyleDefault))
		})
	})

	Describe("UpdateZoomAnimation", func() {
		It("follows the same precedence rules", func() {
			Expect(store.UpdateZoomAnimation(settings.WithStyle(preset.StyleGentle))).
				To(Equal(anim(preset.StyleGentle, 1, 120, 14, 1)))
			Expect(store.UpdateZoomAnimation(settings.AnimationUpdate{Tension: settings.Float(300)})).
				To(Equal(anim(preset.StyleCustom, 1, 300, 14, 1)))
			Expect(store.UpdateZoomAnimation(settings.AnimationUpdate{
				Style:    settings.StylePtr(preset.StyleGentle),
				Friction: settings.Float(99),
			})).To(Equal(anim(preset.StyleGentle, 1, 120, 99, 1)))
			Expect(store.CursorAnimation().Style).To(Equal(preset.StyleDefault))
		})
	})

	Describe("UpdateMotionBlur", func() {
		It("merges only the fields that are set", func() {
			got := store.UpdateMotionBlur(settings.MotionBlurUpdate{
				Enabled: settings.Bool(true),
				Cursor:  settings.Float(40),
			})
			Expect(got).To(Equal(settings.MotionBlur{Enabled: true, Amount: 50, Cursor: 40, Zoom: 100, Pan: 100}))
		})

		It("does not clamp", func() {
			got := store.UpdateMotionBlur(settings.MotionBlurUpdate{Amount: settings.Float(250), Pan: settings.Float(-5)})
			Expect(got.Amount).To(Equal(250.0))
			Expect(got.Pan).To(Equal(-5.0))
		})
	})

	Describe("easings", func() {
		It("binds the config current at call time", func() {
			store.UpdateZoomAnimation(settings.WithStyle(preset.StyleWobbly))
			ease := store.ZoomEasing(1, 2)
			cfg := store.ZoomAnimation().Config

			store.UpdateZoomAnimation(settings.WithStyle(preset.StyleSlow))

			for _, t := range []float64{0, 0.1, 0.5, 0.9, 1} {
				Expect(ease(t)).To(Equal(spring.Evaluate(t, 1, 2, cfg)))
			}
		})

		It("lands the cursor exactly on target", func() {
			Expect(store.CursorEasing(10, 640)(1)).To(Equal(640.0))
		})
	})

	Describe("Reset and Replace", func() {
		It("restores the defaults", func() {
			store.UpdateCursorAnimation(settings.WithStyle(preset.StyleSlow))
			store.UpdateMotionBlur(settings.MotionBlurUpdate{Enabled: settings.Bool(true)})
			store.Reset()
			Expect(store.Snapshot()).To(Equal(settings.Defaults()))
		})

		It("swaps the whole aggregate", func() {
			s := settings.Defaults()
			s.ZoomAnimation = anim(preset.StyleCustom, 2, 300, 40, 0.8)
			store.Replace(s)
			Expect(store.ZoomAnimation()).To(Equal(s.ZoomAnimation))
		})

		It("can start from given settings", func() {
			s := settings.Defaults()
			s.MotionBlur.Enabled = true
			Expect(settings.NewStore(settings.WithSettings(s)).MotionBlur().Enabled).To(BeTrue())
		})
	})

	Describe("Validate", func() {
		It("rejects NaN and Inf", func() {
			s := settings.Defaults()
			s.CursorAnimation.Tension = math.NaN()
			Expect(s.Validate()).To(MatchError(settings.ErrNonFinite))

			s = settings.Defaults()
			s.MotionBlur.Pan = math.Inf(1)
			Expect(s.Validate()).To(MatchError(settings.ErrNonFinite))
		})
	})
})
