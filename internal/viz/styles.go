package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00cccc"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Pointer = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	SelectedLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	SelectedValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff88ff"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555566"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	KeyName = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00aaaa"))

	CustomTag = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#ffaa00"))

	MetricValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// Bar renders a slider position between min and max.
func Bar(value, min, max float64, width int) string {
	frac := 0.0
	if max > min {
		frac = (value - min) / (max - min)
	}
	if math.IsNaN(frac) {
		frac = 0
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + Subtle.Render(strings.Repeat("░", width-filled))
}

// Sparkline renders values as a single row of block characters scaled to
// their own min/max, resampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := i * (len(values) - 1) / max(width-1, 1)
		norm := (values[idx] - lo) / rng
		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			norm = 0
		}
		c := chars[int(norm*float64(len(chars)-1))]

		switch {
		case norm > 0.7:
			b.WriteString(SparkHigh.Render(string(c)))
		case norm > 0.3:
			b.WriteString(SparkMid.Render(string(c)))
		default:
			b.WriteString(SparkLow.Render(string(c)))
		}
	}
	return b.String()
}

func keyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(KeyName.Render(pairs[i]))
		b.WriteString(Subtle.Render(" " + pairs[i+1] + "  "))
	}
	return b.String()
}
