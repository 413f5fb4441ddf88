// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import "fmt"

// A Grid is a figure laid out as rows × cols subplots. Each cell has
// its own pair of axes, numbered row-major from the top-left cell
// starting at 1.
type Grid struct {
	Rows, Cols int
	Figure
}

// MakeSubplots returns an empty Grid with one x/y axis pair per cell.
//
// Cells are separated horizontally by 0.2/cols and vertically by
// 0.3/rows of the plotting area. Row 1 is at the top.
func MakeSubplots(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("bad subplot grid %dx%d", rows, cols))
	}
	hspace := 0.2 / float64(cols)
	vspace := 0.3 / float64(rows)
	width := (1 - hspace*float64(cols-1)) / float64(cols)
	height := (1 - vspace*float64(rows-1)) / float64(rows)

	layout := Object{}
	for r := 0; r < rows; r++ {
		// Rows are stacked bottom-up in domain space.
		y0 := (height + vspace) * float64(rows-1-r)
		for c := 0; c < cols; c++ {
			x0 := (width + hspace) * float64(c)
			n := r*cols + c + 1
			layout[fmt.Sprintf("xaxis%d", n)] = Object{
				"domain": []float64{x0, x0 + width},
				"anchor": fmt.Sprintf("y%d", n),
			}
			layout[fmt.Sprintf("yaxis%d", n)] = Object{
				"domain": []float64{y0, y0 + height},
				"anchor": fmt.Sprintf("x%d", n),
			}
		}
	}
	return &Grid{Rows: rows, Cols: cols, Figure: Figure{Layout: layout}}
}

// Cell returns the axis number of the cell at 1-based (row, col).
func (g *Grid) Cell(row, col int) int {
	if row < 1 || row > g.Rows || col < 1 || col > g.Cols {
		panic(fmt.Sprintf("cell (%d, %d) out of range for %dx%d grid", row, col, g.Rows, g.Cols))
	}
	return (row-1)*g.Cols + col
}

// Append binds trace to the axes of cell (row, col) and adds it to
// the figure.
func (g *Grid) Append(trace Object, row, col int) {
	n := g.Cell(row, col)
	trace["xaxis"] = fmt.Sprintf("x%d", n)
	trace["yaxis"] = fmt.Sprintf("y%d", n)
	g.Data = append(g.Data, trace)
}

// XAxis returns the layout of the x axis of axis number n.
func (g *Grid) XAxis(n int) Object {
	return g.Layout.Sub(fmt.Sprintf("xaxis%d", n))
}

// YAxis returns the layout of the y axis of axis number n.
func (g *Grid) YAxis(n int) Object {
	return g.Layout.Sub(fmt.Sprintf("yaxis%d", n))
}
