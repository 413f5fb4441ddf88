// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"math"

	"github.com/aclements/figfactory/figure"
	"github.com/aclements/figfactory/internal/streamline"
)

// StreamlineOptions are the optional arguments of CreateStreamline.
// Zero values select the defaults, except for Density and ArrowScale,
// where nil selects the default and any other value must be positive.
type StreamlineOptions struct {
	// Density controls how closely streamlines are packed. The
	// default is 1.
	Density *float64

	// Angle is the angle in radians between each arrowhead barb and
	// its streamline. The default is π/9.
	Angle float64

	// ArrowScale is the length of each arrowhead barb in data units.
	// The default is 0.09.
	ArrowScale *float64

	// Trace holds extra properties of the streamline trace.
	Trace figure.Object
}

// CreateStreamline returns a streamline plot of the vector field
// (u, v) sampled on the evenly spaced grid x × y. u and v are indexed
// [row][col] with one row per y and one column per x.
func CreateStreamline(x, y []float64, u, v [][]float64, opts StreamlineOptions) (*figure.Figure, error) {
	density := derefOr(opts.Density, 1)
	angle := floatOr(opts.Angle, math.Pi/9)
	arrowScale := derefOr(opts.ArrowScale, .09)

	if err := figure.ValidateEqualLength(len(x), len(y)); err != nil {
		return nil, err
	}
	if err := figure.ValidateEqualLength(len(u), len(v)); err != nil {
		return nil, err
	}
	if err := validateEvenlySpaced("x", x); err != nil {
		return nil, err
	}
	if err := validateEvenlySpaced("y", y); err != nil {
		return nil, err
	}
	if err := figure.ValidatePositive("density", density); err != nil {
		return nil, err
	}
	if err := figure.ValidatePositive("arrow_scale", arrowScale); err != nil {
		return nil, err
	}
	if len(x) < 2 {
		return nil, figure.Errorf("x and y must have at least 2 points")
	}
	if int(30*density) < 2 {
		return nil, figure.Errorf("density %v is too small to place any streamlines", density)
	}
	if len(u) != len(y) {
		return nil, figure.Errorf("u and v must have one row per y value: got %d rows for %d y values", len(u), len(y))
	}
	for r := range u {
		if len(u[r]) != len(x) || len(v[r]) != len(x) {
			return nil, figure.Errorf("u and v must have one column per x value: row %d has %d and %d columns for %d x values", r, len(u[r]), len(v[r]), len(x))
		}
	}

	paths := streamline.Trace(streamline.Field{X: x, Y: y, U: u, V: v}, density)
	xs, ys := paths.Flatten()
	ax, ay := paths.Arrows(angle, arrowScale)

	trace := figure.Object{
		"type": "scatter",
		"mode": "lines",
		"x":    append(xs, ax...),
		"y":    append(ys, ay...),
	}
	trace.Update(opts.Trace)
	return &figure.Figure{
		Data:   []figure.Object{trace},
		Layout: figure.Object{"hovermode": "closest"},
	}, nil
}

// validateEvenlySpaced checks that the steps between successive values
// of xs match its first step.
func validateEvenlySpaced(name string, xs []float64) error {
	for i := 0; i+1 < len(xs); i++ {
		if math.Abs((xs[i+1]-xs[i])-(xs[1]-xs[0])) > .0001 {
			return figure.Errorf("%s must be a 1 dimensional, evenly spaced array", name)
		}
	}
	return nil
}
