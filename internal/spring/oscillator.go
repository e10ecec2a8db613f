package spring

import "github.com/san-kum/springcam/internal/dynamo"

// Oscillator is the spring written as m x” = -k (x - target) - c x',
// integrated in seconds. State is {position, velocity}.
type Oscillator struct {
	Config Config
	From   float64
	Target float64
}

func NewOscillator(cfg Config, from, target float64) *Oscillator {
	return &Oscillator{Config: cfg, From: from, Target: target}
}

func (o *Oscillator) StateDim() int { return 2 }

// InitialState starts at rest at From.
func (o *Oscillator) InitialState() dynamo.State {
	return dynamo.State{o.From, 0}
}

func (o *Oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	pos, vel := x[0], x[1]
	force := -o.Config.Tension*(pos-o.Target) - o.Config.Friction*vel
	return dynamo.State{vel, force / o.Config.Mass}
}

// Energy is kinetic plus spring potential energy measured from the target.
func (o *Oscillator) Energy(x dynamo.State) float64 {
	stretch := x[0] - o.Target
	return 0.5*o.Config.Mass*x[1]*x[1] + 0.5*o.Config.Tension*stretch*stretch
}
