package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/san-kum/springcam/internal/settings"
	"github.com/san-kum/springcam/internal/trajectory"
)

// Report is a sampled transition together with the animation that
// produced it.
type Report struct {
	Animation settings.Animation `json:"animation"`
	From      float64            `json:"from"`
	To        float64            `json:"to"`
	FPS       int                `json:"fps"`
	Frames    int                `json:"frames"`
	Times     []float64          `json:"times"`
	Values    []float64          `json:"values"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func NewReport(a settings.Animation, from, to float64, fps int, tr trajectory.Trajectory, metrics map[string]float64) Report {
	return Report{
		Animation: a,
		From:      from,
		To:        to,
		FPS:       fps,
		Frames:    tr.Len() - 1,
		Times:     tr.Times,
		Values:    tr.Values,
		Metrics:   metrics,
	}
}

// JSON writes r indented. Infinite metrics such as an unsettled
// settling time are dropped since JSON cannot carry them.
func JSON(out io.Writer, r Report) error {
	if len(r.Metrics) > 0 {
		finite := make(map[string]float64, len(r.Metrics))
		for k, v := range r.Metrics {
			if !math.IsInf(v, 0) && !math.IsNaN(v) {
				finite[k] = v
			}
		}
		r.Metrics = finite
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
