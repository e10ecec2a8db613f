// Package preset holds the named animation presets: spring-physics bundles
// for camera and cursor motion, and curve easings for simple UI effects.
package preset

import (
	"errors"
	"fmt"
)

var ErrUnknownStyle = errors.New("preset: unknown style")

// Style identifies a spring preset or the custom sentinel. Use ParseStyle for
// input from users or files; a Style converted directly from an arbitrary
// string is carried as-is and simply matches no preset.
type Style string

const (
	StyleDefault Style = "default"
	StyleGentle  Style = "gentle"
	StyleWobbly  Style = "wobbly"
	StyleStiff   Style = "stiff"
	StyleSlow    Style = "slow"
	StyleCustom  Style = "custom"
)

func ParseStyle(s string) (Style, error) {
	style := Style(s)
	if style == StyleCustom || style.IsPreset() {
		return style, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// IsPreset reports whether s names an entry in the spring catalog.
func (s Style) IsPreset() bool {
	_, ok := springPresets[s]
	return ok
}

func (s Style) IsCustom() bool { return s == StyleCustom }

func (s Style) DisplayName() string {
	if p, ok := springPresets[s]; ok {
		return p.Name
	}
	if s == StyleCustom {
		return "Custom"
	}
	return string(s)
}

func (s Style) String() string { return string(s) }
