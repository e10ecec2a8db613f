package preset

import "math"

// CurveID names a non-physical easing used for small UI effects such as
// click ripples and cursor scaling.
type CurveID string

const (
	CurveSmooth   CurveID = "smooth"
	CurveBalanced CurveID = "balanced"
	CurveDynamic  CurveID = "dynamic"
)

type CurvePreset struct {
	Name   string
	Easing func(t float64) float64
}

var curvePresets = map[CurveID]CurvePreset{
	CurveSmooth:   {Name: "Smooth", Easing: EaseOutQuint},
	CurveBalanced: {Name: "Balanced", Easing: EaseInOutQuint},
	CurveDynamic:  {Name: "Dynamic", Easing: EaseInOutCubic},
}

var curveOrder = []CurveID{CurveSmooth, CurveBalanced, CurveDynamic}

func Curve(id CurveID) (CurvePreset, bool) {
	c, ok := curvePresets[id]
	return c, ok
}

func CurveIDs() []CurveID {
	out := make([]CurveID, len(curveOrder))
	copy(out, curveOrder)
	return out
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}
