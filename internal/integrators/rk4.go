package integrators

import "github.com/san-kum/springcam/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta stepper. Scratch buffers are
// reused between steps, so an RK4 value must not be shared across goroutines.
type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	scratch        dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(dynamo.State, n)
		r.k2 = make(dynamo.State, n)
		r.k3 = make(dynamo.State, n)
		r.k4 = make(dynamo.State, n)
		r.scratch = make(dynamo.State, n)
	}
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, sys.Derive(x, t))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, sys.Derive(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, sys.Derive(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*r.k3[i]
	}
	copy(r.k4, sys.Derive(r.scratch, t+dt))

	result := make(dynamo.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}

// Integrate advances x0 by steps fixed steps of size dt and returns every
// intermediate state, x0 included. It stops early with a *dynamo.StepError
// when a step produces NaN or Inf.
func Integrate(integ dynamo.Integrator, sys dynamo.System, x0 dynamo.State, dt float64, steps int) ([]dynamo.State, error) {
	if len(x0) != sys.StateDim() {
		return nil, dynamo.ErrDimensionMismatch
	}

	states := make([]dynamo.State, 0, steps+1)
	x := x0.Clone()
	states = append(states, x)

	for i := 0; i < steps; i++ {
		t := float64(i) * dt
		x = integ.Step(sys, x, t, dt)
		if !x.IsValid() {
			return states, &dynamo.StepError{Step: i + 1, Time: t + dt, Wrapped: dynamo.ErrInvalidState}
		}
		states = append(states, x)
	}

	return states, nil
}
