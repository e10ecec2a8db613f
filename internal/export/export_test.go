package export

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/springcam/internal/settings"
	"github.com/san-kum/springcam/internal/trajectory"
)

func testTrajectory() trajectory.Trajectory {
	return trajectory.Trajectory{
		Times:  []float64{0, 0.5, 1},
		Values: []float64{0, 1.2, 1},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, testTrajectory()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0] != "frame,time,value" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "1,0.500000,1.200000" {
		t.Errorf("row 1 = %q", lines[2])
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, testTrajectory(), DefaultSVGOptions(1)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Error("not an svg document")
	}
	if strings.Count(out, "L") < 2 || !strings.Contains(out, `d="M`) {
		t.Error("path missing points")
	}
	if !strings.Contains(out, "<line") {
		t.Error("target line missing")
	}

	buf.Reset()
	if err := SVG(&buf, testTrajectory(), DefaultSVGOptions(math.NaN())); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<line") {
		t.Error("target line drawn with NaN target")
	}
}

func TestSVG_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, trajectory.Trajectory{}, DefaultSVGOptions(1)); err != ErrEmptyTrajectory {
		t.Errorf("got %v, want ErrEmptyTrajectory", err)
	}
}

func TestJSON(t *testing.T) {
	a := settings.DefaultAnimation()
	r := NewReport(a, 0, 1, 2, testTrajectory(), map[string]float64{
		"overshoot":     0.2,
		"settling_time": math.Inf(1),
	})

	var buf bytes.Buffer
	if err := JSON(&buf, r); err != nil {
		t.Fatal(err)
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Frames != 2 || got.Animation.Style != a.Style || got.Animation.Tension != a.Tension {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if _, ok := got.Metrics["settling_time"]; ok {
		t.Error("infinite metric written")
	}
	if got.Metrics["overshoot"] != 0.2 {
		t.Errorf("overshoot = %v", got.Metrics["overshoot"])
	}
	if !strings.Contains(buf.String(), `"transitionDuration"`) {
		t.Error("duration key missing")
	}
}
