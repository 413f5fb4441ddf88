// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview renders a rough SVG image of a figure.
//
// Only 2-D scatter traces with numeric coordinates are drawn. Traces
// in "lines" mode become polylines, broken at null (NaN) points, and
// all other scatter traces become points. Everything else in the
// figure, including its layout, is ignored except the title. A figure
// with nothing to draw has no preview.
package preview

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/figfactory/figure"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// Table returns the drawable points of fig as a table with columns
// "trace", "mode", "segment", "x" and "y". Each maximal run of finite
// points in a trace gets its own segment number. Points with a NaN
// coordinate are dropped.
func Table(fig *figure.Figure) table.Grouping {
	var (
		traces, modes []string
		segs          []int
		xs, ys        []float64
	)
	seg := 0
	for i, tr := range fig.Data {
		if typ, _ := tr["type"].(string); typ != "scatter" {
			continue
		}
		x, ok1 := tr["x"].([]float64)
		y, ok2 := tr["y"].([]float64)
		if !ok1 || !ok2 || len(x) != len(y) {
			continue
		}
		name, _ := tr["name"].(string)
		if name == "" {
			name = fmt.Sprintf("trace %d", i)
		}
		mode := "markers"
		if m, _ := tr["mode"].(string); strings.Contains(m, "lines") {
			mode = "lines"
		}
		seg++
		for j := range x {
			traces = append(traces, name)
			modes = append(modes, mode)
			segs = append(segs, seg)
			xs = append(xs, x[j])
			ys = append(ys, y[j])
			if math.IsNaN(x[j]) || math.IsNaN(y[j]) {
				seg++
			}
		}
	}
	t := new(table.Builder).
		Add("trace", traces).
		Add("mode", modes).
		Add("segment", segs).
		Add("x", xs).
		Add("y", ys).
		Done()
	return table.Filter(t, func(x, y float64) bool {
		return !math.IsNaN(x) && !math.IsNaN(y)
	}, "x", "y")
}

// ErrNothingToDraw is returned when a figure has no drawable traces.
var ErrNothingToDraw = errors.New("figure has no 2-D scatter traces to preview")

// Plot returns a go-gg plot of fig, or ErrNothingToDraw.
func Plot(fig *figure.Figure) (*gg.Plot, error) {
	data := Table(fig)

	var hasLines, hasMarkers bool
	for _, gid := range data.Tables() {
		for _, m := range data.Table(gid).MustColumn("mode").([]string) {
			hasLines = hasLines || m == "lines"
			hasMarkers = hasMarkers || m == "markers"
		}
	}
	if !hasLines && !hasMarkers {
		return nil, ErrNothingToDraw
	}

	plot := gg.NewPlot(data)
	if hasLines {
		plot.SetData(table.GroupBy(table.FilterEq(data, "mode", "lines"), "segment"))
		plot.Add(gg.LayerPaths{X: "x", Y: "y", Color: "trace"})
	}
	if hasMarkers {
		plot.SetData(table.FilterEq(data, "mode", "markers"))
		plot.Add(gg.LayerPoints{X: "x", Y: "y", Color: "trace"})
	}
	if title, ok := fig.Layout["title"].(string); ok && title != "" {
		plot.Add(gg.Title(title))
	}
	return plot, nil
}

// WriteSVG writes an SVG preview of fig to w.
func WriteSVG(w io.Writer, fig *figure.Figure, width, height int) error {
	plot, err := Plot(fig)
	if err != nil {
		return err
	}
	return plot.WriteSVG(w, width, height)
}
