// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import "math"

// Arrows returns one arrowhead per path, placed a third of the way
// along it. Each head is two segments of length scale at ±angle
// radians from the path direction, emitted as the points
// [tip-seg1, tip, tip-seg2, NaN].
func (p Paths) Arrows(angle, scale float64) (xs, ys []float64) {
	for i := range p.X {
		px, py := p.X[i], p.Y[i]
		end := len(px) / 3
		start := end - 1
		if start < 0 {
			start += len(px)
		}
		ex, ey := px[end], py[end]
		dx, dy := ex-px[start], ey-py[start]

		ang := math.Atan(dy / dx)
		s1x, s1y := math.Cos(ang+angle)*scale, math.Sin(ang+angle)*scale
		s2x, s2y := math.Cos(ang-angle)*scale, math.Sin(ang-angle)*scale
		if !(dx >= 0) {
			s1x, s1y, s2x, s2y = -s1x, -s1y, -s2x, -s2y
		}

		nan := math.NaN()
		xs = append(xs, ex-s1x, ex, ex-s2x, nan)
		ys = append(ys, ey-s1y, ey, ey-s2y, nan)
	}
	return xs, ys
}

// Flatten concatenates the paths.
func (p Paths) Flatten() (xs, ys []float64) {
	for i := range p.X {
		xs = append(xs, p.X[i]...)
		ys = append(ys, p.Y[i]...)
	}
	return xs, ys
}
