package settings

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/springcam/internal/preset"
	"github.com/san-kum/springcam/internal/spring"
)

var ErrNonFinite = errors.New("settings: non-finite value")

// DefaultTransitionDuration is the spring transition length in seconds.
const DefaultTransitionDuration = 1.0

// MotionBlur values are percentages in [0, 100]; Cursor, Zoom and Pan scale
// the master Amount. The store does not clamp them.
type MotionBlur struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	Amount  float64 `yaml:"amount" json:"amount"`
	Cursor  float64 `yaml:"cursor" json:"cursor"`
	Zoom    float64 `yaml:"zoom" json:"zoom"`
	Pan     float64 `yaml:"pan" json:"pan"`
}

type Animation struct {
	Style         preset.Style `yaml:"style" json:"style"`
	spring.Config `yaml:",inline"`
}

type Settings struct {
	MotionBlur      MotionBlur `yaml:"motionBlur" json:"motionBlur"`
	CursorAnimation Animation  `yaml:"cursorAnimation" json:"cursorAnimation"`
	ZoomAnimation   Animation  `yaml:"zoomAnimation" json:"zoomAnimation"`
}

func DefaultMotionBlur() MotionBlur {
	return MotionBlur{
		Enabled: false,
		Amount:  50,
		Cursor:  70,
		Zoom:    100,
		Pan:     100,
	}
}

// DefaultAnimation is the default preset with the default duration.
func DefaultAnimation() Animation {
	p, _ := preset.Spring(preset.StyleDefault)
	return Animation{
		Style:  preset.StyleDefault,
		Config: p.Apply(spring.Config{TransitionDuration: DefaultTransitionDuration}),
	}
}

func Defaults() Settings {
	return Settings{
		MotionBlur:      DefaultMotionBlur(),
		CursorAnimation: DefaultAnimation(),
		ZoomAnimation:   DefaultAnimation(),
	}
}

// Validate checks that every number is finite so the aggregate survives any
// text or binary encoding.
func (s Settings) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"motionBlur.amount", s.MotionBlur.Amount},
		{"motionBlur.cursor", s.MotionBlur.Cursor},
		{"motionBlur.zoom", s.MotionBlur.Zoom},
		{"motionBlur.pan", s.MotionBlur.Pan},
		{"cursorAnimation.mass", s.CursorAnimation.Mass},
		{"cursorAnimation.tension", s.CursorAnimation.Tension},
		{"cursorAnimation.friction", s.CursorAnimation.Friction},
		{"cursorAnimation.transitionDuration", s.CursorAnimation.TransitionDuration},
		{"zoomAnimation.mass", s.ZoomAnimation.Mass},
		{"zoomAnimation.tension", s.ZoomAnimation.Tension},
		{"zoomAnimation.friction", s.ZoomAnimation.Friction},
		{"zoomAnimation.transitionDuration", s.ZoomAnimation.TransitionDuration},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s = %v", ErrNonFinite, f.name, f.value)
		}
	}
	return nil
}
