// Package spring evaluates damped-harmonic-oscillator trajectories in closed
// form for camera and cursor animation.
//
// A [Config] bundles mass, tension, friction and a transition duration in
// seconds. [Evaluate] maps normalized time t in [0, 1] to a position between
// from and to; [NewEasing] binds the parameters once so a render loop can
// sample per frame:
//
//	ease := spring.NewEasing(1.0, 2.5, cfg)
//	for frame := 0; frame <= n; frame++ {
//	    zoom := ease(float64(frame) / float64(n))
//	    ...
//	}
//
// # Regimes
//
// The damping ratio selects one of three solutions: underdamped
// (oscillates around the target), critically damped (fastest approach
// without overshoot, selected only when the ratio is exactly 1) and
// overdamped (slow, monotonic approach).
//
// # Invalid input
//
// Evaluate does not validate its config. Non-positive mass or tension yields
// NaN or Inf. Callers that accept user input should check [Config.Validate]
// first.
//
// [Oscillator] expresses the same spring as an ODE for numeric integration.
package spring
