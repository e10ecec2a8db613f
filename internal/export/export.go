// Package export writes sampled transitions to files other tools can read.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/springcam/internal/trajectory"
)

var ErrEmptyTrajectory = errors.New("export: empty trajectory")

// CSV writes one frame,time,value row per sample after a header.
func CSV(out io.Writer, tr trajectory.Trajectory) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"frame", "time", "value"}); err != nil {
		return err
	}
	for i := range tr.Values {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(tr.Times[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Values[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type SVGOptions struct {
	Width, Height int
	Stroke        string
	// Target draws a dashed line at the resting value. NaN disables it.
	Target float64
}

func DefaultSVGOptions(target float64) SVGOptions {
	return SVGOptions{Width: 640, Height: 360, Stroke: "#00ccff", Target: target}
}

// SVG plots the trajectory as a single path, value against time, with a
// tenth of the range as padding on every side.
func SVG(out io.Writer, tr trajectory.Trajectory, opts SVGOptions) error {
	if tr.Len() < 2 {
		return ErrEmptyTrajectory
	}

	minX, maxX := tr.Times[0], tr.Times[len(tr.Times)-1]
	minY, maxY := tr.Values[0], tr.Values[0]
	for _, v := range tr.Values {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	if !math.IsNaN(opts.Target) {
		minY = math.Min(minY, opts.Target)
		maxY = math.Max(maxY, opts.Target)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX, maxX = minX-rangeX*0.1, maxX+rangeX*0.1
	minY, maxY = minY-rangeY*0.1, maxY+rangeY*0.1
	rangeX, rangeY = maxX-minX, maxY-minY

	w, h := float64(opts.Width), float64(opts.Height)
	px := func(t float64) float64 { return (t - minX) / rangeX * w }
	py := func(v float64) float64 { return h - (v-minY)/rangeY*h }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, opts.Width, opts.Height, opts.Width, opts.Height)

	if !math.IsNaN(opts.Target) {
		y := py(opts.Target)
		fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, y, opts.Width, y)
	}

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, opts.Stroke)
	for i := range tr.Values {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f ", cmd, px(tr.Times[i]), py(tr.Values[i]))
	}
	sb.WriteString("\"/>\n</svg>\n")

	_, err := io.WriteString(out, sb.String())
	return err
}
