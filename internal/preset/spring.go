package preset

import "github.com/san-kum/springcam/internal/spring"

// SpringPreset is a named literal bundle of spring parameters. Presets do
// not carry a transition duration.
type SpringPreset struct {
	Name     string
	Mass     float64
	Tension  float64
	Friction float64
}

// Apply snaps mass, tension and friction to the preset and keeps the rest
// of cfg.
func (p SpringPreset) Apply(cfg spring.Config) spring.Config {
	cfg.Mass = p.Mass
	cfg.Tension = p.Tension
	cfg.Friction = p.Friction
	return cfg
}

var springPresets = map[Style]SpringPreset{
	StyleDefault: {Name: "Default", Mass: 1, Tension: 170, Friction: 26},
	StyleGentle:  {Name: "Gentle", Mass: 1, Tension: 120, Friction: 14},
	StyleWobbly:  {Name: "Wobbly", Mass: 1, Tension: 180, Friction: 12},
	StyleStiff:   {Name: "Stiff", Mass: 1, Tension: 210, Friction: 20},
	StyleSlow:    {Name: "Slow", Mass: 1, Tension: 280, Friction: 60},
}

var springOrder = []Style{StyleDefault, StyleGentle, StyleWobbly, StyleStiff, StyleSlow}

func Spring(style Style) (SpringPreset, bool) {
	p, ok := springPresets[style]
	return p, ok
}

// SpringStyles lists the preset styles in display order.
func SpringStyles() []Style {
	out := make([]Style, len(springOrder))
	copy(out, springOrder)
	return out
}
