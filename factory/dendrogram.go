// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"sort"

	"github.com/aclements/figfactory/cluster"
	"github.com/aclements/figfactory/figure"
	"gonum.org/v1/gonum/mat"
)

// DendrogramOptions are the optional arguments of CreateDendrogram.
type DendrogramOptions struct {
	// Orientation is the side the leaves hang from: "bottom" (the
	// default), "top", "left" or "right".
	Orientation string

	// Labels names each row of X. The default labels are row
	// indexes.
	Labels []string

	// Colorscale replaces the default link colors. Its entries
	// replace, in order, the colors of the color keys b, c, g, k,
	// m, r, w and y.
	Colorscale []string

	// Method is the linkage method. The default is complete
	// linkage.
	Method cluster.Method

	// ColorThreshold is the merge distance below which subtrees are
	// colored individually. Zero selects 0.7 times the largest
	// merge distance.
	ColorThreshold float64
}

// dendrogramColorKeys are the link color keys in the order a
// colorscale assigns them.
var dendrogramColorKeys = []string{"b", "c", "g", "k", "m", "r", "w", "y"}

var dendrogramColorNames = map[string]string{
	"b": "blue", "c": "cyan", "g": "green", "k": "black",
	"m": "magenta", "r": "red", "w": "white", "y": "yellow",
}

var defaultDendrogramColorscale = []string{
	"rgb(0,116,217)",   // blue
	"rgb(35,205,205)",  // cyan
	"rgb(61,153,112)",  // green
	"rgb(40,35,35)",    // black
	"rgb(133,20,75)",   // magenta
	"rgb(255,65,54)",   // red
	"rgb(255,255,255)", // white
	"rgb(255,220,0)",   // yellow
}

// CreateDendrogram clusters the rows of X hierarchically and returns a
// dendrogram of the result, one line trace per merge.
func CreateDendrogram(X mat.Matrix, opts DendrogramOptions) (*figure.Figure, error) {
	if X == nil {
		return nil, &figure.Error{Msg: "X should be 2-dimensional array."}
	}
	rows, _ := X.Dims()
	if rows < 2 {
		return nil, figure.Errorf("X must have at least 2 rows to cluster, got %d", rows)
	}
	if opts.Labels != nil && len(opts.Labels) != rows {
		return nil, figure.Errorf("labels has %d entries for %d rows of X", len(opts.Labels), rows)
	}
	orientation := opts.Orientation
	if orientation == "" {
		orientation = "bottom"
	}
	var xSign, ySign float64 = -1, -1
	switch orientation {
	case "bottom":
		xSign, ySign = 1, 1
	case "top":
	case "left":
		xSign = 1
	case "right":
		ySign = 1
	default:
		return nil, figure.Errorf("orientation must be one of [top right bottom left], got %q", orientation)
	}

	z, err := cluster.Cluster(cluster.PDist(X), rows, opts.Method)
	if err != nil {
		return nil, figure.Errorf("%v", err)
	}
	tree := cluster.Dendrogram(z, opts.Labels, opts.ColorThreshold)
	palette := dendrogramColors(opts.Colorscale)

	scale := func(c [4]float64, sign float64) []float64 {
		out := make([]float64, len(c))
		for i, v := range c {
			out[i] = sign * v
		}
		return out
	}
	fig := &figure.Figure{}
	for i := range tree.Icoord {
		xs, ys := tree.Icoord[i], tree.Dcoord[i]
		if orientation == "left" || orientation == "right" {
			xs, ys = ys, xs
		}
		fig.Data = append(fig.Data, figure.Object{
			"type":   "scatter",
			"x":      scale(xs, xSign),
			"y":      scale(ys, ySign),
			"mode":   "lines",
			"marker": figure.Object{"color": palette[tree.ColorKeys[i]]},
			"xaxis":  "x",
			"yaxis":  "y",
		})
	}

	axis := func() figure.Object {
		return figure.Object{
			"type":           "linear",
			"ticks":          "outside",
			"mirror":         "allticks",
			"rangemode":      "tozero",
			"showticklabels": true,
			"zeroline":       false,
			"showgrid":       false,
			"showline":       true,
		}
	}
	xaxis, yaxis := axis(), axis()
	labelAxis := xaxis
	if orientation == "left" || orientation == "right" {
		labelAxis = yaxis
	}
	labelAxis["tickvals"] = leafPositions(tree, ySign)
	labelAxis["ticktext"] = tree.Ivl
	labelAxis["tickmode"] = "array"

	fig.Layout = figure.Object{
		"showlegend": false,
		"autosize":   false,
		"hovermode":  "closest",
		"width":      "100%",
		"height":     "100%",
		"xaxis":      xaxis,
		"yaxis":      yaxis,
	}
	return fig, nil
}

// dendrogramColors maps each color key to its color.
func dendrogramColors(colorscale []string) map[string]string {
	if colorscale == nil {
		colorscale = defaultDendrogramColorscale
	}
	colors := make(map[string]string, len(dendrogramColorKeys))
	for i, k := range dendrogramColorKeys {
		if i < len(colorscale) {
			colors[k] = colorscale[i]
		} else {
			colors[k] = dendrogramColorNames[k]
		}
	}
	return colors
}

// leafPositions returns the sorted positions where links touch zero
// height, which are the leaves, multiplied by sign.
func leafPositions(tree *cluster.Tree, sign float64) []float64 {
	seen := make(map[float64]bool)
	var pos []float64
	for i := range tree.Icoord {
		for j, d := range tree.Dcoord[i] {
			if x := tree.Icoord[i][j]; d == 0 && !seen[x] {
				seen[x] = true
				pos = append(pos, x)
			}
		}
	}
	sort.Float64s(pos)
	for i := range pos {
		pos[i] *= sign
	}
	return pos
}
