// Package trajectory samples spring animations frame by frame, the way a
// renderer consumes them, and produces reference trajectories from
// independent methods for comparison.
package trajectory

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/springcam/internal/dynamo"
	"github.com/san-kum/springcam/internal/integrators"
	"github.com/san-kum/springcam/internal/spring"
)

// Trajectory holds values at uniformly spaced instants; Times are seconds
// from the start of the transition.
type Trajectory struct {
	Times  []float64
	Values []float64
}

func (tr Trajectory) Len() int { return len(tr.Values) }

// Final returns the last value, or NaN for an empty trajectory.
func (tr Trajectory) Final() float64 {
	if len(tr.Values) == 0 {
		return math.NaN()
	}
	return tr.Values[len(tr.Values)-1]
}

// Frames returns the number of frame intervals needed to cover duration at
// fps, at least one.
func Frames(duration float64, fps int) int {
	n := int(math.Ceil(duration * float64(fps)))
	if n < 1 {
		return 1
	}
	return n
}

func newTrajectory(frames int) Trajectory {
	return Trajectory{
		Times:  make([]float64, frames+1),
		Values: make([]float64, frames+1),
	}
}

// Sample evaluates ease at frames+1 evenly spaced normalized times,
// both endpoints included. frames below one is treated as one.
func Sample(ease spring.Easing, duration float64, frames int) Trajectory {
	frames = max(frames, 1)
	tr := newTrajectory(frames)
	fill(tr, ease, duration, frames, 0, frames+1)
	return tr
}

// SampleParallel is Sample split across goroutines. Easings are pure, so
// the result is identical to Sample.
func SampleParallel(ease spring.Easing, duration float64, frames int) Trajectory {
	frames = max(frames, 1)
	tr := newTrajectory(frames)
	dynamo.ParallelFor(frames+1, 256, func(start, end int) {
		fill(tr, ease, duration, frames, start, end)
	})
	return tr
}

func fill(tr Trajectory, ease spring.Easing, duration float64, frames, start, end int) {
	for i := start; i < end; i++ {
		t := float64(i) / float64(frames)
		tr.Times[i] = t * duration
		tr.Values[i] = ease(t)
	}
}

// SampleFPS samples the closed-form spring at the given frame rate.
func SampleFPS(cfg spring.Config, from, to float64, fps int) Trajectory {
	frames := Frames(cfg.TransitionDuration, fps)
	return Sample(spring.NewEasing(from, to, cfg), cfg.TransitionDuration, frames)
}

// Stepped advances a harmonica spring one frame at a time, the way a game
// loop would. It starts at rest on from and has no terminal snap, so its
// last value is generally not exactly to.
func Stepped(cfg spring.Config, from, to float64, frames int) Trajectory {
	tr := newTrajectory(frames)
	dt := cfg.TransitionDuration / float64(frames)
	s := harmonica.NewSpring(dt, cfg.NaturalFrequency(), cfg.DampingRatio())

	pos, vel := from, 0.0
	tr.Values[0] = pos
	for i := 1; i <= frames; i++ {
		pos, vel = s.Update(pos, vel, to)
		tr.Times[i] = float64(i) * dt
		tr.Values[i] = pos
	}
	return tr
}

// Integrated solves the spring ODE with RK4, taking substeps steps per
// frame.
func Integrated(cfg spring.Config, from, to float64, frames, substeps int) (Trajectory, error) {
	if substeps < 1 {
		substeps = 1
	}
	osc := spring.NewOscillator(cfg, from, to)
	dt := cfg.TransitionDuration / float64(frames*substeps)

	states, err := integrators.Integrate(integrators.NewRK4(), osc, osc.InitialState(), dt, frames*substeps)
	if err != nil {
		return Trajectory{}, err
	}

	tr := newTrajectory(frames)
	for i := 0; i <= frames; i++ {
		tr.Times[i] = float64(i*substeps) * dt
		tr.Values[i] = states[i*substeps][0]
	}
	return tr, nil
}

// MaxAbsDiff compares the first n values of a and b, n being the shorter
// length.
func MaxAbsDiff(a, b Trajectory) float64 {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}
	maxDiff := 0.0
	for i := 0; i < n; i++ {
		maxDiff = math.Max(maxDiff, math.Abs(a.Values[i]-b.Values[i]))
	}
	return maxDiff
}

// Head returns the first n samples, sharing storage with tr.
func (tr Trajectory) Head(n int) Trajectory {
	if n > len(tr.Values) {
		n = len(tr.Values)
	}
	if n < 0 {
		n = 0
	}
	return Trajectory{Times: tr.Times[:n], Values: tr.Values[:n]}
}
