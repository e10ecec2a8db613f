// Package dynamo provides the minimal ODE primitives used to cross-check the
// closed-form spring against numeric integration.
//
//   - [State]: vector representing system state
//   - [System]: autonomous ODE (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//
// # Example
//
//	osc := spring.NewOscillator(cfg, 0, 1)
//	rk := integrators.NewRK4()
//	x := osc.InitialState()
//	for i := 0; i < n; i++ {
//	    x = rk.Step(osc, x, float64(i)*dt, dt)
//	}
package dynamo
