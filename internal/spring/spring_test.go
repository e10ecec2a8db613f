package spring

import (
	"errors"
	"math"
	"testing"
)

var (
	underdamped = Config{Mass: 1, Tension: 180, Friction: 12, TransitionDuration: 1}
	critical    = Config{Mass: 1, Tension: 100, Friction: 20, TransitionDuration: 1}
	overdamped  = Config{Mass: 1, Tension: 280, Friction: 60, TransitionDuration: 1}
)

var regimes = []struct {
	name   string
	cfg    Config
	regime Regime
}{
	{"underdamped", underdamped, Underdamped},
	{"critical", critical, CriticallyDamped},
	{"overdamped", overdamped, Overdamped},
}

func TestRegime(t *testing.T) {
	for _, tt := range regimes {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Regime(); got != tt.regime {
				t.Errorf("Regime() = %v, want %v (zeta=%f)", got, tt.regime, tt.cfg.DampingRatio())
			}
		})
	}
}

func TestEvaluate_Endpoints(t *testing.T) {
	endpoints := []struct{ from, to float64 }{
		{0, 1},
		{1, 2.5},
		{-40, 300},
		{5, 5},
	}

	for _, tt := range regimes {
		for _, e := range endpoints {
			if got := Evaluate(0, e.from, e.to, tt.cfg); got != e.from {
				t.Errorf("%s: Evaluate(0, %v, %v) = %v, want from", tt.name, e.from, e.to, got)
			}
			if got := Evaluate(1, e.from, e.to, tt.cfg); got != e.to {
				t.Errorf("%s: Evaluate(1, %v, %v) = %v, want to exactly", tt.name, e.from, e.to, got)
			}
		}
	}
}

func TestEvaluate_ClampsTime(t *testing.T) {
	for _, tt := range regimes {
		if got := Evaluate(-3, 2, 8, tt.cfg); got != 2 {
			t.Errorf("%s: negative t should clamp to from, got %v", tt.name, got)
		}
		if got := Evaluate(7, 2, 8, tt.cfg); got != 8 {
			t.Errorf("%s: t > 1 should clamp to to, got %v", tt.name, got)
		}
	}
}

func TestEvaluate_CriticalContinuity(t *testing.T) {
	base := Config{Mass: 1, Tension: 100, TransitionDuration: 1}

	at := func(zeta float64) float64 {
		cfg := base
		cfg.Friction = zeta * 2 * math.Sqrt(cfg.Tension*cfg.Mass)
		return Evaluate(0.5, 0, 1, cfg)
	}

	ref := Evaluate(0.5, 0, 1, critical)
	for _, zeta := range []float64{0.999, 1.001} {
		if got := at(zeta); math.Abs(got-ref) > 1e-3 {
			t.Errorf("zeta=%v: got %v, critical %v (diff %v)", zeta, got, ref, math.Abs(got-ref))
		}
	}
}

func TestEvaluate_CriticalClosedForm(t *testing.T) {
	// w0 = 10, te = 0.5 -> 1 - 6e^-5
	want := 1 - 6*math.Exp(-5)
	if got := Evaluate(0.5, 0, 1, critical); math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluate_UnderdampedOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 200; i++ {
		peak = math.Max(peak, Evaluate(float64(i)/200, 0, 1, underdamped))
	}
	if peak <= 1 {
		t.Errorf("wobbly spring should overshoot the target, peak %v", peak)
	}
}

func TestEvaluate_OverdampedMonotonic(t *testing.T) {
	prev := Evaluate(0, 0, 1, overdamped)
	for i := 1; i <= 200; i++ {
		v := Evaluate(float64(i)/200, 0, 1, overdamped)
		if v < prev-1e-12 {
			t.Fatalf("overdamped trajectory decreased at sample %d: %v < %v", i, v, prev)
		}
		if v > 1+1e-12 {
			t.Fatalf("overdamped trajectory overshot at sample %d: %v", i, v)
		}
		prev = v
	}
}

func TestEvaluate_DurationScalesTime(t *testing.T) {
	long := underdamped
	long.TransitionDuration = 2

	// Half of a 2s transition is the same physical instant as the whole
	// 1s transition, minus the terminal override.
	a := Evaluate(0.25, 0, 1, long)
	b := Evaluate(0.5, 0, 1, underdamped)
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("expected equal positions at te=0.5s: %v vs %v", a, b)
	}
}

func TestEvaluate_InvalidConfigPropagates(t *testing.T) {
	bad := []Config{
		{Mass: 0, Tension: 170, Friction: 26, TransitionDuration: 1},
		{Mass: 1, Tension: 0, Friction: 26, TransitionDuration: 1},
		{Mass: -1, Tension: 170, Friction: 26, TransitionDuration: 1},
	}
	for _, cfg := range bad {
		v := Evaluate(0.5, 0, 1, cfg)
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			t.Errorf("%+v: expected NaN or Inf, got %v", cfg, v)
		}
	}
}

func TestNewEasing_MatchesEvaluate(t *testing.T) {
	for _, tt := range regimes {
		ease := NewEasing(-3, 12, tt.cfg)
		for i := -5; i <= 105; i++ {
			x := float64(i) / 100
			if got, want := ease(x), Evaluate(x, -3, 12, tt.cfg); got != want {
				t.Fatalf("%s: easing(%v) = %v, Evaluate = %v", tt.name, x, got, want)
			}
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	a := Evaluate(0.37, 1, 2, underdamped)
	b := Evaluate(0.37, 1, 2, underdamped)
	if a != b {
		t.Errorf("repeated calls differ: %v vs %v", a, b)
	}
}

func TestDampedFrequency(t *testing.T) {
	w0 := underdamped.NaturalFrequency()
	zeta := underdamped.DampingRatio()
	want := w0 * math.Sqrt(1-zeta*zeta)
	if got := underdamped.DampedFrequency(); math.Abs(got-want) > 1e-12 {
		t.Errorf("DampedFrequency() = %v, want %v", got, want)
	}
	if got := overdamped.DampedFrequency(); got != 0 {
		t.Errorf("overdamped spring should not oscillate, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", Config{1, 170, 26, 1}, true},
		{"zero friction", Config{1, 170, 0, 1}, true},
		{"zero mass", Config{0, 170, 26, 1}, false},
		{"negative tension", Config{1, -1, 26, 1}, false},
		{"negative friction", Config{1, 170, -2, 1}, false},
		{"zero duration", Config{1, 170, 26, 0}, false},
		{"NaN tension", Config{1, math.NaN(), 26, 1}, false},
		{"Inf mass", Config{math.Inf(1), 170, 26, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRegimeString(t *testing.T) {
	if Underdamped.String() != "underdamped" || Overdamped.String() != "overdamped" {
		t.Error("unexpected regime names")
	}
	if Regime(42).String() != "unknown" {
		t.Error("out-of-range regime should print unknown")
	}
}
