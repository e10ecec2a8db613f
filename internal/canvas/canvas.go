// Package canvas derives output canvas dimensions from the recorded screen
// size and the project's aspect ratio.
package canvas

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAspectRatio = errors.New("canvas: invalid aspect ratio")
	ErrInvalidScreenSize  = errors.New("canvas: invalid screen size")
)

// AspectRatio is a "W:H" string of two positive integers.
type AspectRatio string

const (
	Landscape    AspectRatio = "16:9"
	Portrait     AspectRatio = "9:16"
	Standard     AspectRatio = "4:3"
	StandardTall AspectRatio = "3:4"
	Square       AspectRatio = "1:1"
)

// Fallback is used until a screen size is known.
var Fallback = Size{Width: 1920, Height: 1080}

type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// KnownRatios lists the ratios the editor offers.
func KnownRatios() []AspectRatio {
	return []AspectRatio{Landscape, Portrait, Standard, StandardTall, Square}
}

func ParseAspectRatio(r AspectRatio) (w, h int, err error) {
	parts := strings.Split(string(r), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspectRatio, string(r))
	}
	w, okW := positiveInt(parts[0])
	h, okH := positiveInt(parts[1])
	if !okW || !okH {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspectRatio, string(r))
	}
	return w, h, nil
}

// positiveInt accepts only plain decimal digits, no sign or spaces.
func positiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil && n > 0
}

// ParseSize reads "WxH", as accepted on the command line.
func ParseSize(s string) (Size, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidScreenSize, s)
	}
	w, okW := positiveInt(strings.TrimSpace(parts[0]))
	h, okH := positiveInt(strings.TrimSpace(parts[1]))
	if !okW || !okH {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidScreenSize, s)
	}
	return Size{Width: w, Height: h}, nil
}

// Recalc fits the aspect ratio inside the screen and rounds both sides up
// to even values, which 4:2:0 video encoders require. A nil screen yields
// Fallback without looking at the ratio.
func Recalc(screen *Size, ratio AspectRatio) (Size, error) {
	if screen == nil {
		return Fallback, nil
	}
	if screen.Width <= 0 || screen.Height <= 0 {
		return Size{}, fmt.Errorf("%w: %s", ErrInvalidScreenSize, screen)
	}

	ratioW, ratioH, err := ParseAspectRatio(ratio)
	if err != nil {
		return Size{}, err
	}

	screenAspect := float64(screen.Width) / float64(screen.Height)
	targetAspect := float64(ratioW) / float64(ratioH)

	var width, height int
	if targetAspect > screenAspect {
		width = screen.Width
		height = int(math.Round(float64(screen.Width) / targetAspect))
	} else {
		height = screen.Height
		width = int(math.Round(float64(screen.Height) * targetAspect))
	}
	if width < 1 || height < 1 {
		return Size{}, fmt.Errorf("%w: %s leaves no pixels on %s", ErrInvalidAspectRatio, ratio, screen)
	}

	return Size{Width: even(width), Height: even(height)}, nil
}

func even(n int) int {
	if n%2 != 0 {
		return n + 1
	}
	return n
}
