package settings

import "github.com/san-kum/springcam/internal/preset"

// MotionBlurUpdate sets every non-nil field.
type MotionBlurUpdate struct {
	Enabled *bool
	Amount  *float64
	Cursor  *float64
	Zoom    *float64
	Pan     *float64
}

// AnimationUpdate sets every non-nil field following the precedence rules
// in the package documentation.
type AnimationUpdate struct {
	Style              *preset.Style
	Mass               *float64
	Tension            *float64
	Friction           *float64
	TransitionDuration *float64
}

func (u AnimationUpdate) setsNumeric() bool {
	return u.Mass != nil || u.Tension != nil || u.Friction != nil || u.TransitionDuration != nil
}

// Float returns a pointer to v, for building updates inline.
func Float(v float64) *float64 { return &v }

func Bool(v bool) *bool { return &v }

func StylePtr(s preset.Style) *preset.Style { return &s }

// WithStyle is shorthand for an update that selects a style.
func WithStyle(s preset.Style) AnimationUpdate {
	return AnimationUpdate{Style: StylePtr(s)}
}

func applyMotionBlur(m *MotionBlur, u MotionBlurUpdate) {
	if u.Enabled != nil {
		m.Enabled = *u.Enabled
	}
	if u.Amount != nil {
		m.Amount = *u.Amount
	}
	if u.Cursor != nil {
		m.Cursor = *u.Cursor
	}
	if u.Zoom != nil {
		m.Zoom = *u.Zoom
	}
	if u.Pan != nil {
		m.Pan = *u.Pan
	}
}

// applyAnimationUpdate runs the four precedence steps in order. The order
// matters: a preset copy must not clobber numeric overrides from the same
// update, and a style in the update must survive custom detection.
func applyAnimationUpdate(a *Animation, u AnimationUpdate) {
	// 1. snap to the preset; unknown styles skip this step
	if u.Style != nil {
		if p, ok := preset.Spring(*u.Style); ok {
			a.Config = p.Apply(a.Config)
		}
	}

	// 2. merge
	if u.Style != nil {
		a.Style = *u.Style
	}
	if u.Mass != nil {
		a.Mass = *u.Mass
	}
	if u.Tension != nil {
		a.Tension = *u.Tension
	}
	if u.Friction != nil {
		a.Friction = *u.Friction
	}
	if u.TransitionDuration != nil {
		a.TransitionDuration = *u.TransitionDuration
	}

	// 3. manual divergence
	if u.setsNumeric() && u.Style == nil {
		a.Style = preset.StyleCustom
	}

	// 4. explicit style wins
	if u.Style != nil {
		a.Style = *u.Style
	}
}
