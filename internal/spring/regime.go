package spring

type Regime int

const (
	Underdamped Regime = iota
	CriticallyDamped
	Overdamped
)

// classify mirrors Evaluate's branch order, so a NaN ratio lands in
// Overdamped just like the evaluator's fallthrough.
func classify(zeta float64) Regime {
	switch {
	case zeta < 1:
		return Underdamped
	case zeta == 1:
		return CriticallyDamped
	default:
		return Overdamped
	}
}

func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	}
	return "unknown"
}
