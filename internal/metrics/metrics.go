// Package metrics summarizes a sampled animation: how far it overshoots,
// when it settles, and how large a single frame's jump gets.
package metrics

import (
	"math"

	"github.com/san-kum/springcam/internal/trajectory"
)

type Metric interface {
	Name() string
	Observe(t, v float64)
	Value() float64
	Reset()
}

// Collect feeds every sample of tr to each metric, after resetting it.
func Collect(tr trajectory.Trajectory, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i := range tr.Values {
			m.Observe(tr.Times[i], tr.Values[i])
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// Standard returns the metrics the CLI reports for a transition.
// DefaultSettlingTolerance is the settling band used by Standard, as a
// fraction of the travel.
const DefaultSettlingTolerance = 0.02

func Standard(from, to float64) []Metric {
	return []Metric{
		NewOvershoot(from, to),
		NewSettling(from, to, DefaultSettlingTolerance),
		NewMaxStep(),
	}
}

// Overshoot is the largest travel past the target as a fraction of the
// full travel. Zero-length transitions report 0.
type Overshoot struct {
	from, to float64
	peak     float64
}

func NewOvershoot(from, to float64) *Overshoot {
	return &Overshoot{from: from, to: to}
}

func (o *Overshoot) Name() string { return "overshoot" }

func (o *Overshoot) Observe(t, v float64) {
	span := o.to - o.from
	if span == 0 {
		return
	}
	past := (v - o.to) / span
	if past > o.peak {
		o.peak = past
	}
}

func (o *Overshoot) Value() float64 { return o.peak }
func (o *Overshoot) Reset()         { o.peak = 0 }

// Settling reports the first time after which every sample stays within
// tol of the target, tol being a fraction of the travel. It is +Inf if the
// trajectory never settles.
type Settling struct {
	from, to, tol float64
	settledAt     float64
	inside        bool
}

func NewSettling(from, to, tol float64) *Settling {
	s := &Settling{from: from, to: to, tol: tol}
	s.Reset()
	return s
}

func (s *Settling) Name() string { return "settling_time" }

func (s *Settling) Observe(t, v float64) {
	band := s.tol * math.Abs(s.to-s.from)
	if math.Abs(v-s.to) > band {
		s.inside = false
		s.settledAt = math.Inf(1)
		return
	}
	if !s.inside {
		s.inside = true
		s.settledAt = t
	}
}

func (s *Settling) Value() float64 { return s.settledAt }

func (s *Settling) Reset() {
	s.inside = false
	s.settledAt = math.Inf(1)
}

// MaxStep is the largest change between consecutive samples, i.e. the
// distance motion blur has to cover in one frame.
type MaxStep struct {
	prev    float64
	started bool
	max     float64
}

func NewMaxStep() *MaxStep { return &MaxStep{} }

func (m *MaxStep) Name() string { return "max_step" }

func (m *MaxStep) Observe(t, v float64) {
	if m.started {
		m.max = math.Max(m.max, math.Abs(v-m.prev))
	}
	m.prev, m.started = v, true
}

func (m *MaxStep) Value() float64 { return m.max }

func (m *MaxStep) Reset() {
	m.prev, m.started, m.max = 0, false, 0
}
