// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"math"

	"github.com/aclements/figfactory/colors"
	"github.com/aclements/figfactory/figure"
)

// AspectRatio is the relative length of the axes of a 3-D scene.
type AspectRatio struct {
	X, Y, Z float64
}

// TrisurfOptions are the optional arguments of CreateTrisurf. Zero
// values select the defaults.
type TrisurfOptions struct {
	// Colormap is the list of colors faces are blended along, in
	// any form accepted by colors.Validate. The default is the first
	// two default trace colors.
	Colormap interface{}

	// Title defaults to "Trisurf Plot".
	Title string

	// HideBackground hides the background of the axis planes.
	HideBackground bool

	// BackgroundColor is the color of the axis planes. The default
	// is "rgb(230, 230, 230)".
	BackgroundColor string

	// GridColor and ZeroLineColor default to "rgb(255, 255, 255)".
	GridColor     string
	ZeroLineColor string

	// Height and Width default to 800.
	Height, Width int

	// AspectRatio defaults to 1:1:1.
	AspectRatio AspectRatio

	// HideEdges omits the outline of each triangle.
	HideEdges bool
}

// CreateTrisurf returns a 3-D triangulated surface of the points
// (x[i], y[i], z[i]). Each simplex names the three points of one
// triangle. A triangle's color is interpolated along the colormap by
// the mean z of its points.
func CreateTrisurf(x, y, z []float64, simplices [][3]int, opts TrisurfOptions) (*figure.Figure, error) {
	cmap, err := colors.Validate(opts.Colormap, colors.Colormap)
	if err != nil {
		return nil, err
	}
	if err := figure.ValidateEqualLength(len(x), len(y), len(z)); err != nil {
		return nil, err
	}
	if len(simplices) == 0 {
		return nil, figure.Errorf("simplices must contain at least one triangle")
	}
	for _, s := range simplices {
		for _, v := range s {
			if v < 0 || v >= len(x) {
				return nil, figure.Errorf("simplex %v refers to point %d, but there are only %d points", s, v, len(x))
			}
		}
	}

	zmean := make([]float64, len(simplices))
	for t, s := range simplices {
		zmean[t] = (z[s[0]] + z[s[1]] + z[s[2]]) / 3
	}
	vmin, vmax := minMax(zmean)
	if vmin >= vmax {
		return nil, &figure.Error{Msg: "Incorrect relation between vmin and vmax. The vmin value cannot be bigger than or equal to the value of vmax."}
	}
	facecolor := make([]string, len(simplices))
	for t, zm := range zmean {
		facecolor[t] = colors.Label(faceColor(cmap, (zm-vmin)/(vmax-vmin)))
	}

	ii := make([]int, len(simplices))
	jj := make([]int, len(simplices))
	kk := make([]int, len(simplices))
	for t, s := range simplices {
		ii[t], jj[t], kk[t] = s[0], s[1], s[2]
	}
	fig := &figure.Figure{}
	fig.Data = append(fig.Data, figure.Object{
		"type":      "mesh3d",
		"x":         x,
		"y":         y,
		"z":         z,
		"i":         ii,
		"j":         jj,
		"k":         kk,
		"facecolor": facecolor,
		"name":      "",
	})

	if !opts.HideEdges {
		n := 5 * len(simplices)
		xe, ye, ze := make([]float64, 0, n), make([]float64, 0, n), make([]float64, 0, n)
		for _, s := range simplices {
			for k := 0; k < 4; k++ {
				v := s[k%3]
				xe = append(xe, x[v])
				ye = append(ye, y[v])
				ze = append(ze, z[v])
			}
			xe = append(xe, math.NaN())
			ye = append(ye, math.NaN())
			ze = append(ze, math.NaN())
		}
		fig.Data = append(fig.Data, figure.Object{
			"type": "scatter3d",
			"mode": "lines",
			"line": figure.Object{"color": "rgb(50, 50, 50)", "width": 1.5},
			"x":    xe,
			"y":    ye,
			"z":    ze,
		})
	}

	title := stringOr(opts.Title, "Trisurf Plot")
	ar := opts.AspectRatio
	if ar == (AspectRatio{}) {
		ar = AspectRatio{1, 1, 1}
	}
	axis := func() figure.Object {
		return figure.Object{
			"showbackground":  !opts.HideBackground,
			"backgroundcolor": stringOr(opts.BackgroundColor, "rgb(230, 230, 230)"),
			"gridcolor":       stringOr(opts.GridColor, "rgb(255, 255, 255)"),
			"zerolinecolor":   stringOr(opts.ZeroLineColor, "rgb(255, 255, 255)"),
		}
	}
	fig.Layout = figure.Object{
		"title":  title,
		"width":  intOr(opts.Width, 800),
		"height": intOr(opts.Height, 800),
		"scene": figure.Object{
			"xaxis":       axis(),
			"yaxis":       axis(),
			"zaxis":       axis(),
			"aspectratio": figure.Object{"x": ar.X, "y": ar.Y, "z": ar.Z},
		},
	}
	return fig, nil
}

// faceColor returns the color a fraction x of the way along cmap,
// blending the two colors that x falls between.
func faceColor(cmap []colors.Tuple, x float64) colors.Tuple {
	if len(cmap) == 1 {
		return cmap[0]
	}
	if x >= 1 {
		return colors.Round(cmap[len(cmap)-1])
	}
	pos := x * float64(len(cmap)-1)
	lo := int(pos)
	return colors.Round(colors.FindIntermediate(cmap[lo], cmap[lo+1], pos-float64(lo)))
}
