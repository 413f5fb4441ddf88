// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factory builds chart documents for common statistical
// figures: distribution plots, streamlines, dendrograms, triangulated
// surfaces, scatterplot matrices and Gantt charts.
//
// Each Create function validates its arguments, computes any derived
// geometry, and returns a complete *figure.Figure. Invalid arguments
// produce a *figure.Error or *figure.ValueError and no figure.
package factory

import (
	"math"

	"github.com/aclements/figfactory/colors"
	"github.com/aclements/figfactory/figure"
)

// defaultColor returns the i'th default trace color, cycling.
func defaultColor(i int) string {
	return colors.DefaultPlotlyColors[i%len(colors.DefaultPlotlyColors)]
}

// minMax returns the smallest and largest of xs, which must not be
// empty.
func minMax(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

func stringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func intOr(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}

func floatOr(x, def float64) float64 {
	if x == 0 {
		return def
	}
	return x
}

func derefOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// toObject converts a decoded mapping to an Object, recursively. It
// reports false if v is not a mapping.
func toObject(v interface{}) (figure.Object, bool) {
	var m map[string]interface{}
	switch v := v.(type) {
	case figure.Object:
		m = v
	case map[string]interface{}:
		m = v
	default:
		return nil, false
	}
	o := make(figure.Object, len(m))
	for k, v := range m {
		if sub, ok := toObject(v); ok {
			v = sub
		}
		o[k] = v
	}
	return o, true
}
