package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/springcam/internal/metrics"
	"github.com/san-kum/springcam/internal/preset"
	"github.com/san-kum/springcam/internal/settings"
	"github.com/san-kum/springcam/internal/trajectory"
)

type Target int

const (
	TargetCursor Target = iota
	TargetZoom
)

func (t Target) String() string {
	if t == TargetZoom {
		return "zoom"
	}
	return "cursor"
}

type row int

const (
	rowStyle row = iota
	rowTension
	rowFriction
	rowMass
	rowDuration
	rowBlur
	rowBlurAmount
	rowCount
)

var rowNames = [rowCount]string{"style", "tension", "friction", "mass", "duration", "motion blur", "blur amount"}

// slider is the range and step of a numeric row. Tension, friction and mass
// follow the settings panel; duration and blur amount are editor-only rows.
type slider struct {
	min, max, step float64
}

var sliders = map[row]slider{
	rowTension:    {50, 500, 10},
	rowFriction:   {10, 100, 2},
	rowMass:       {0.5, 5, 0.1},
	rowDuration:   {0.1, 5, 0.1},
	rowBlurAmount: {0, 100, 1},
}

func (s slider) nudge(v float64, dir int) float64 {
	v += float64(dir) * s.step
	v = math.Max(s.min, math.Min(s.max, v))
	return math.Round(v*1e6) / 1e6
}

type PreviewOptions struct {
	FPS      int
	From, To float64
}

// Editor edits the settings in a store. It holds no settings of its own.
type Editor struct {
	store   *settings.Store
	preview PreviewOptions
	target  Target
	cursor  row
	width   int
}

func NewEditor(store *settings.Store, preview PreviewOptions) Editor {
	if preview.FPS <= 0 {
		preview.FPS = 60
	}
	if preview.From == preview.To {
		preview.From, preview.To = 0, 1
	}
	return Editor{store: store, preview: preview, width: 80}
}

func (e Editor) Target() Target { return e.target }

func (e Editor) Init() tea.Cmd { return nil }

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return e.handleKey(msg)
	case tea.WindowSizeMsg:
		e.width = msg.Width
	}
	return e, nil
}

func (e Editor) handleKey(msg tea.KeyMsg) (Editor, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return e, tea.Quit
	case "tab":
		if e.target == TargetCursor {
			e.target = TargetZoom
		} else {
			e.target = TargetCursor
		}
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < rowCount-1 {
			e.cursor++
		}
	case "left", "h":
		e.adjust(-1)
	case "right", "l":
		e.adjust(1)
	case " ", "enter":
		if e.cursor == rowBlur {
			e.adjust(1)
		}
	case "r":
		e.apply(settings.WithStyle(preset.StyleDefault))
	}
	return e, nil
}

func (e Editor) animation() settings.Animation {
	if e.target == TargetZoom {
		return e.store.ZoomAnimation()
	}
	return e.store.CursorAnimation()
}

func (e Editor) apply(u settings.AnimationUpdate) {
	if e.target == TargetZoom {
		e.store.UpdateZoomAnimation(u)
		return
	}
	e.store.UpdateCursorAnimation(u)
}

func (e Editor) adjust(dir int) {
	a := e.animation()
	s := sliders[e.cursor]

	switch e.cursor {
	case rowStyle:
		e.apply(settings.WithStyle(cycleStyle(a.Style, dir)))
	case rowTension:
		e.apply(settings.AnimationUpdate{Tension: settings.Float(s.nudge(a.Tension, dir))})
	case rowFriction:
		e.apply(settings.AnimationUpdate{Friction: settings.Float(s.nudge(a.Friction, dir))})
	case rowMass:
		e.apply(settings.AnimationUpdate{Mass: settings.Float(s.nudge(a.Mass, dir))})
	case rowDuration:
		e.apply(settings.AnimationUpdate{TransitionDuration: settings.Float(s.nudge(a.TransitionDuration, dir))})
	case rowBlur:
		e.store.UpdateMotionBlur(settings.MotionBlurUpdate{Enabled: settings.Bool(!e.store.MotionBlur().Enabled)})
	case rowBlurAmount:
		e.store.UpdateMotionBlur(settings.MotionBlurUpdate{Amount: settings.Float(s.nudge(e.store.MotionBlur().Amount, dir))})
	}
}

// cycleStyle steps through the presets in display order. Custom is not a
// selectable stop; from custom the cycle restarts at either end.
func cycleStyle(current preset.Style, dir int) preset.Style {
	styles := preset.SpringStyles()
	idx := -1
	for i, s := range styles {
		if s == current {
			idx = i
		}
	}
	if idx < 0 {
		if dir > 0 {
			return styles[0]
		}
		return styles[len(styles)-1]
	}
	return styles[(idx+dir+len(styles))%len(styles)]
}

func (e Editor) View() string {
	a := e.animation()
	mb := e.store.MotionBlur()

	var b strings.Builder
	b.WriteString("\n  " + Title.Render("SPRINGCAM") + "  " + Subtle.Render(e.target.String()+" animation") + "\n")
	b.WriteString("  " + Subtle.Render(strings.Repeat("─", 32)) + "\n\n")

	values := [rowCount]string{
		styleLabel(a.Style),
		fmt.Sprintf("%.0f", a.Tension),
		fmt.Sprintf("%.0f", a.Friction),
		fmt.Sprintf("%.1f", a.Mass),
		fmt.Sprintf("%.1fs", a.TransitionDuration),
		onOff(mb.Enabled),
		fmt.Sprintf("%.0f%%", mb.Amount),
	}
	numbers := map[row]float64{
		rowTension: a.Tension, rowFriction: a.Friction, rowMass: a.Mass,
		rowDuration: a.TransitionDuration, rowBlurAmount: mb.Amount,
	}

	for r := row(0); r < rowCount; r++ {
		bar := ""
		if s, ok := sliders[r]; ok {
			bar = " " + Bar(numbers[r], s.min, s.max, 16)
		}
		if r == e.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s%s\n", Pointer.Render("▸"), SelectedLabel.Render(fmt.Sprintf("%-12s", rowNames[r])), SelectedValue.Render(fmt.Sprintf("%-8s", values[r])), bar))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s%s\n", Label.Render(fmt.Sprintf("%-12s", rowNames[r])), Value.Render(fmt.Sprintf("%-8s", values[r])), bar))
		}
	}

	b.WriteString("\n" + e.previewView(a) + "\n\n")
	b.WriteString("  " + keyHints("tab", "target", "j/k", "select", "h/l", "adjust", "space", "blur", "r", "reset", "q", "quit") + "\n")
	return b.String()
}

func (e Editor) previewView(a settings.Animation) string {
	if err := a.Config.Validate(); err != nil {
		return "  " + CustomTag.Render(err.Error())
	}

	tr := trajectory.SampleFPS(a.Config, e.preview.From, e.preview.To, e.preview.FPS)
	m := metrics.Collect(tr, metrics.Standard(e.preview.From, e.preview.To)...)

	graph := asciigraph.Plot(tr.Values,
		asciigraph.Height(8),
		asciigraph.Width(max(e.width-16, 20)),
		asciigraph.Caption(fmt.Sprintf("%s, zeta %.2f", a.Config.Regime(), a.Config.DampingRatio())),
	)

	settle := "never"
	if !math.IsInf(m["settling_time"], 1) {
		settle = fmt.Sprintf("%.2fs", m["settling_time"])
	}
	summary := fmt.Sprintf("  overshoot %s  settles %s  max step %s",
		MetricValue.Render(fmt.Sprintf("%.1f%%", 100*m["overshoot"])),
		MetricValue.Render(settle),
		MetricValue.Render(fmt.Sprintf("%.3f", m["max_step"])))

	return Panel.Render(graph) + "\n" + summary
}

func styleLabel(s preset.Style) string {
	if s.IsCustom() {
		return CustomTag.Render("Custom")
	}
	return s.DisplayName()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// RunEditor runs the editor full screen until the user quits.
func RunEditor(store *settings.Store, preview PreviewOptions) error {
	_, err := tea.NewProgram(NewEditor(store, preview), tea.WithAltScreen()).Run()
	return err
}
