// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package streamline traces streamlines through a 2-D vector field
// sampled on an evenly spaced grid.
//
// Streamlines are seeded on a coarse grid of "blank" cells, spiraling
// in from the border. Each seed is integrated forward and backward
// with fourth-order Runge-Kutta until the path leaves the field,
// reaches its maximum length, or enters a cell some other streamline
// already occupies.
package streamline

import "math"

const (
	// ds is the integration step in grid coordinates.
	ds = 0.01
	// maxLength is the longest path traced in each direction.
	maxLength = 2
	// minLength is the shortest path kept.
	minLength = 0.2
)

// A Field is a vector field sampled on an evenly spaced grid. U and V
// are indexed [row][col], with len(Y) rows and len(X) columns.
type Field struct {
	X, Y []float64
	U, V [][]float64
}

// Paths are streamline coordinates in data space. Each path in X and Y
// is terminated by a NaN so the concatenation of all paths draws as
// separate lines.
type Paths struct {
	X, Y [][]float64
}

type tracer struct {
	nx, ny   int
	u, v     [][]float64
	speed    [][]float64
	grid     int
	spacingX float64
	spacingY float64
	blank    [][]bool
	changes  [][2]int
}

// Trace computes the streamlines of f. density scales the number of
// blank cells, 30*density along each axis, which must be at least 2.
// Trace panics if f is smaller than 2x2.
func Trace(f Field, density float64) Paths {
	nx, ny := len(f.X), len(f.Y)
	if nx < 2 || ny < 2 {
		panic("streamline: field must be at least 2x2")
	}
	grid := int(30 * density)
	t := &tracer{
		nx: nx, ny: ny,
		grid:     grid,
		spacingX: float64(nx) / float64(grid-1),
		spacingY: float64(ny) / float64(grid-1),
	}
	t.blank = make([][]bool, grid)
	for i := range t.blank {
		t.blank[i] = make([]bool, grid)
	}

	// Rescale the field to axes coordinates for the speed, then to
	// grid coordinates for integration.
	spanX := f.X[nx-1] - f.X[0]
	spanY := f.Y[ny-1] - f.Y[0]
	t.u = make([][]float64, len(f.U))
	t.v = make([][]float64, len(f.V))
	t.speed = make([][]float64, len(f.U))
	for r := range f.U {
		t.u[r] = make([]float64, len(f.U[r]))
		t.v[r] = make([]float64, len(f.U[r]))
		t.speed[r] = make([]float64, len(f.U[r]))
		for c := range f.U[r] {
			u, v := f.U[r][c]/spanX, f.V[r][c]/spanY
			t.speed[r][c] = math.Hypot(u, v)
			t.u[r][c] = u * float64(nx)
			t.v[r][c] = v * float64(ny)
		}
	}

	var paths Paths
	add := func(xb, yb int) {
		if xb < 0 || xb >= grid || yb < 0 || yb >= grid || t.blank[yb][xb] {
			return
		}
		xs, ys, ok := t.integrate(float64(xb)*t.spacingX, float64(yb)*t.spacingY)
		if !ok {
			return
		}
		dx, dy := f.X[1]-f.X[0], f.Y[1]-f.Y[0]
		px := make([]float64, len(xs)+1)
		py := make([]float64, len(ys)+1)
		for i := range xs {
			px[i] = xs[i]*dx + f.X[0]
			py[i] = ys[i]*dy + f.Y[0]
		}
		px[len(xs)], py[len(ys)] = math.NaN(), math.NaN()
		paths.X = append(paths.X, px)
		paths.Y = append(paths.Y, py)
	}
	for indent := 0; indent < grid/2; indent++ {
		for i := 0; i < grid-2*indent; i++ {
			add(i+indent, indent)
			add(i+indent, grid-1-indent)
			add(indent, i+indent)
			add(grid-1-indent, i+indent)
		}
	}
	return paths
}

// blankPos returns the blank cell containing grid point (xi, yi).
func (t *tracer) blankPos(xi, yi float64) (int, int) {
	return int(xi/t.spacingX + 0.5), int(yi/t.spacingY + 0.5)
}

// inField reports whether (xi, yi) lies inside the sampled field.
func (t *tracer) inField(xi, yi float64) bool {
	return 0 <= xi && xi < float64(t.nx-1) && 0 <= yi && yi < float64(t.ny-1)
}

// at bilinearly interpolates a at grid point (xi, yi). Negative cell
// indexes count back from the end of the grid. It reports false if a
// corner falls outside the grid.
func at(a [][]float64, xi, yi float64) (float64, bool) {
	x, y := int(xi), int(yi)
	a00, ok1 := cell(a, y, x)
	a01, ok2 := cell(a, y, x+1)
	a10, ok3 := cell(a, y+1, x)
	a11, ok4 := cell(a, y+1, x+1)
	if !(ok1 && ok2 && ok3 && ok4) {
		return 0, false
	}
	xt, yt := xi-float64(x), yi-float64(y)
	a0 := a00*(1-xt) + a01*xt
	a1 := a10*(1-xt) + a11*xt
	return a0*(1-yt) + a1*yt, true
}

func cell(a [][]float64, r, c int) (float64, bool) {
	if r < 0 {
		r += len(a)
	}
	if r < 0 || r >= len(a) {
		return 0, false
	}
	row := a[r]
	if c < 0 {
		c += len(row)
	}
	if c < 0 || c >= len(row) {
		return 0, false
	}
	return row[c], true
}

// direction returns the unit-speed step direction at (xi, yi), negated
// if backward is set.
func (t *tracer) direction(xi, yi float64, backward bool) (dx, dy float64, ok bool) {
	if math.IsNaN(xi) || math.IsNaN(yi) || math.IsInf(xi, 0) || math.IsInf(yi, 0) {
		return 0, 0, false
	}
	s, ok1 := at(t.speed, xi, yi)
	u, ok2 := at(t.u, xi, yi)
	v, ok3 := at(t.v, xi, yi)
	if !(ok1 && ok2 && ok3) {
		return 0, 0, false
	}
	dtds := 1 / s
	if backward {
		return -u * dtds, -v * dtds, true
	}
	return u * dtds, v * dtds, true
}

// walk integrates from (x0, y0) in one direction and returns the path
// length and the visited points, starting with (x0, y0).
func (t *tracer) walk(x0, y0 float64, backward bool) (total float64, xs, ys []float64) {
	xi, yi := x0, y0
	xb, yb := t.blankPos(xi, yi)
	for t.inField(xi, yi) {
		xs = append(xs, xi)
		ys = append(ys, yi)

		k1x, k1y, ok1 := t.direction(xi, yi, backward)
		k2x, k2y, ok2 := t.direction(xi+.5*ds*k1x, yi+.5*ds*k1y, backward)
		k3x, k3y, ok3 := t.direction(xi+.5*ds*k2x, yi+.5*ds*k2y, backward)
		k4x, k4y, ok4 := t.direction(xi+ds*k3x, yi+ds*k3y, backward)
		if !(ok1 && ok2 && ok3 && ok4) {
			break
		}
		xi += ds * (k1x + 2*k2x + 2*k3x + k4x) / 6
		yi += ds * (k1y + 2*k2y + 2*k3y + k4y) / 6
		if !t.inField(xi, yi) {
			break
		}
		total += ds

		nxb, nyb := t.blankPos(xi, yi)
		if nxb != xb || nyb != yb {
			if t.blank[nyb][nxb] {
				break
			}
			t.blank[nyb][nxb] = true
			t.changes = append(t.changes, [2]int{nxb, nyb})
			xb, yb = nxb, nyb
		}
		if total > maxLength {
			break
		}
	}
	return total, xs, ys
}

// integrate traces the streamline through (x0, y0) in grid
// coordinates. If the streamline is too short, it releases the cells
// it claimed and reports false.
func (t *tracer) integrate(x0, y0 float64) (xs, ys []float64, ok bool) {
	t.changes = t.changes[:0]
	sf, xf, yf := t.walk(x0, y0, false)
	sb, xb, yb := t.walk(x0, y0, true)

	xs = make([]float64, 0, len(xb)+len(xf))
	ys = make([]float64, 0, len(yb)+len(yf))
	for i := len(xb) - 1; i >= 0; i-- {
		xs = append(xs, xb[i])
		ys = append(ys, yb[i])
	}
	if len(xf) > 0 {
		xs = append(xs, xf[1:]...)
		ys = append(ys, yf[1:]...)
	}
	if len(xs) == 0 {
		return nil, nil, false
	}

	if sf+sb > minLength {
		ixb, iyb := t.blankPos(x0, y0)
		t.blank[iyb][ixb] = true
		return xs, ys, true
	}
	for _, c := range t.changes {
		t.blank[c[1]][c[0]] = false
	}
	return nil, nil, false
}
