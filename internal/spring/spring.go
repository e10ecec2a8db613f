package spring

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("spring: invalid config")

// Config holds the physical parameters of a spring animation.
type Config struct {
	Mass               float64 `yaml:"mass" json:"mass"`
	Tension            float64 `yaml:"tension" json:"tension"`
	Friction           float64 `yaml:"friction" json:"friction"`
	TransitionDuration float64 `yaml:"transitionDuration" json:"transitionDuration"`
}

// NaturalFrequency returns the undamped angular frequency w0 in rad/s.
func (c Config) NaturalFrequency() float64 {
	return math.Sqrt(c.Tension / c.Mass)
}

// DampingRatio returns zeta = friction / (2 * sqrt(tension * mass)).
func (c Config) DampingRatio() float64 {
	return c.Friction / (2 * math.Sqrt(c.Tension*c.Mass))
}

// DampedFrequency returns the oscillation frequency in rad/s, or 0 when the
// spring does not oscillate.
func (c Config) DampedFrequency() float64 {
	zeta := c.DampingRatio()
	if !(zeta < 1) {
		return 0
	}
	return c.NaturalFrequency() * math.Sqrt(1-zeta*zeta)
}

func (c Config) Regime() Regime {
	return classify(c.DampingRatio())
}

// Validate reports the first parameter outside its physical range.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"mass", c.Mass, c.Mass > 0},
		{"tension", c.Tension, c.Tension > 0},
		{"friction", c.Friction, c.Friction >= 0},
		{"transitionDuration", c.TransitionDuration, c.TransitionDuration > 0},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || !f.ok {
			return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// Easing maps normalized time to an animated value.
type Easing func(t float64) float64

// NewEasing binds from, to and cfg into an Easing for per-frame sampling.
func NewEasing(from, to float64, cfg Config) Easing {
	return func(t float64) float64 {
		return Evaluate(t, from, to, cfg)
	}
}

// Evaluate returns the spring position at normalized time t, clamped to
// [0, 1]. Physical time is t * TransitionDuration seconds. At t == 1 it
// returns to exactly; the exponential tail never reaches it on its own.
func Evaluate(t, from, to float64, cfg Config) float64 {
	displacement := to - from

	w0 := cfg.NaturalFrequency()
	zeta := cfg.DampingRatio()

	t = math.Max(0, math.Min(1, t))
	if t == 1 {
		return to
	}

	elapsed := t * cfg.TransitionDuration

	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		b := zeta * w0 / wd
		envelope := math.Exp(-zeta * w0 * elapsed)
		phase := wd * elapsed
		return from + displacement*(1-envelope*(math.Cos(phase)+b*math.Sin(phase)))
	case zeta == 1:
		scaled := w0 * elapsed
		return from + displacement*(1-(1+scaled)*math.Exp(-scaled))
	default:
		root := math.Sqrt(zeta*zeta - 1)
		r1 := -w0 * (zeta - root)
		r2 := -w0 * (zeta + root)
		a := r2 / (r2 - r1)
		b := 1 - a
		return from + displacement*(1-a*math.Exp(r1*elapsed)-b*math.Exp(r2*elapsed))
	}
}
