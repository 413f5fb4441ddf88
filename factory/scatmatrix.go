// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/figfactory/colors"
	"github.com/aclements/figfactory/figure"
	"github.com/aclements/go-gg/table"
)

// Diagonal panel types of a scatterplot matrix.
const (
	DiagScatter   = "scatter"
	DiagHistogram = "histogram"
	DiagBox       = "box"
)

var diagChoices = []string{DiagScatter, DiagHistogram, DiagBox}

// ScatterplotMatrixOptions are the optional arguments of
// CreateScatterplotMatrix. Zero values select the defaults.
type ScatterplotMatrixOptions struct {
	// Index names a column whose values group the rows. Each group is
	// drawn as its own trace. The index column is not plotted.
	Index string

	// Endpts, for a themed matrix with a numeric index, lists the
	// increasing boundaries of the intervals the index is split into.
	Endpts interface{}

	// Diag is the panel type of the diagonal cells: DiagScatter
	// (default), DiagHistogram or DiagBox.
	Diag string

	// Height and Width default to 500.
	Height, Width int

	// Size is the marker size. The default is 6.
	Size float64

	// Title defaults to "Scatterplot Matrix".
	Title string

	// UseTheme colors index groups from Palette instead of the
	// default trace colors.
	UseTheme bool

	// Palette is a colorscale name or color list, in any form
	// accepted by colors.Validate.
	Palette interface{}

	// Trace holds extra properties of every scatter trace. Its marker
	// may not set size, color or colorscale.
	Trace figure.Object
}

// CreateScatterplotMatrix returns a grid of scatter plots of every
// pair of columns of df. The cell in row i and column j plots column
// j against column i.
//
// Without an index every cell is one trace. With an index the rows are
// grouped by index value. A themed matrix with a numeric index colors
// points by the index, or groups them into the intervals given by
// Endpts.
func CreateScatterplotMatrix(df *table.Table, opts ScatterplotMatrixOptions) (*figure.Figure, error) {
	if df == nil {
		return nil, &figure.Error{Msg: "Dataframe not inputed. Please use a pandas dataframe to produce a scatterplot matrix."}
	}
	names := df.Columns()
	if len(names) <= 1 {
		return nil, &figure.Error{Msg: "Dataframe has only one column. To use the scatterplot matrix, use at least 2 columns."}
	}
	diag := stringOr(opts.Diag, DiagScatter)
	if diag != DiagScatter && diag != DiagHistogram && diag != DiagBox {
		return nil, figure.Errorf("Make sure diag is set to one of %v", diagChoices)
	}
	kwargs, _ := toObject(opts.Trace)
	if marker, ok := toObject(kwargs["marker"]); ok {
		for _, k := range []string{"size", "color", "colorscale"} {
			if _, ok := marker[k]; ok {
				return nil, &figure.Error{Msg: "Your kwargs dictionary cannot include the 'size', 'color' or 'colorscale' key words inside the marker dict since 'size' is already an argument of the scatterplot matrix function and both 'color' and 'colorscale are set internally."}
			}
		}
		kwargs["marker"] = marker
	}

	m := &smatrix{
		diag:   diag,
		size:   floatOr(opts.Size, 6),
		kwargs: kwargs,
	}
	var index column
	if opts.Index != "" {
		found := false
		for _, name := range names {
			found = found || name == opts.Index
		}
		if !found {
			return nil, &figure.Error{Msg: "Make sure you set the index input variable to one of the column names of your dataframe."}
		}
		var ok bool
		index, ok = readColumn(opts.Index, df.Column(opts.Index))
		if !ok {
			return nil, &figure.Error{Msg: "Error in indexing column. Make sure all entries of each column are all numbers or all strings."}
		}
	}
	for _, name := range names {
		if name == opts.Index {
			continue
		}
		c, ok := readColumn(name, df.Column(name))
		if !ok {
			return nil, &figure.Error{Msg: "Error in dataframe. Make sure all entries of each column are either numbers or strings."}
		}
		m.cols = append(m.cols, c)
	}

	if opts.Index != "" {
		if err := m.setGroups(index, opts); err != nil {
			return nil, err
		}
	}

	dim := len(m.cols)
	grid := figure.MakeSubplots(dim, dim)
	cell := 0
	for r, ycol := range m.cols {
		for c, xcol := range m.cols {
			for _, tr := range m.traces(xcol, ycol, r == c, cell, cell == dim*dim-1) {
				grid.Append(tr, r+1, c+1)
			}
			cell++
		}
	}
	for j, col := range m.cols {
		grid.XAxis(dim*(dim-1)+1+j)["title"] = col.name
		grid.YAxis(1+dim*j)["title"] = col.name
	}
	grid.Layout.Update(figure.Object{
		"height":     intOr(opts.Height, 500),
		"width":      intOr(opts.Width, 500),
		"title":      stringOr(opts.Title, "Scatterplot Matrix"),
		"showlegend": true,
	})
	if opts.Index != "" && diag == DiagHistogram {
		grid.Layout["barmode"] = "stack"
	}
	return &grid.Figure, nil
}

// smatrix holds the state shared by the cells of a scatterplot
// matrix.
type smatrix struct {
	cols   []column
	diag   string
	size   float64
	kwargs figure.Object

	// groups splits rows into separately colored traces. If nil,
	// each cell is one trace.
	groups []group

	// colorBy, if non-nil, colors the points of each cell by value
	// along the colorscale lo..hi.
	colorBy []float64
	lo, hi  colors.Tuple
}

// setGroups configures m to split rows by index.
func (m *smatrix) setGroups(index column, opts ScatterplotMatrixOptions) error {
	if !opts.UseTheme {
		var firstSeen []int
		m.groups, firstSeen = index.groupRows()
		for i, g := range firstSeen {
			m.groups[g].color = defaultColor(i)
		}
		return nil
	}

	theme, err := colors.Validate(opts.Palette, colors.Palette)
	if err != nil {
		return err
	}
	var endpts []float64
	if opts.Endpts != nil {
		endpts, err = validateEndpts(opts.Endpts)
		if err != nil {
			return err
		}
	}

	switch {
	case !index.isNum:
		m.groups, _ = index.groupRows()
	case endpts != nil:
		m.groups = intervalGroups(index.nums, endpts)
	default:
		m.colorBy = index.nums
		m.lo, m.hi = theme[0], theme[len(theme)-1]
		return nil
	}
	if len(theme) < len(m.groups) {
		theme = colors.NColors(theme[0], theme[len(theme)-1], len(m.groups))
	}
	for i := range m.groups {
		m.groups[i].color = colors.Label(theme[i])
	}
	return nil
}

// traces returns the traces of one cell, plotting x against y.
func (m *smatrix) traces(x, y column, diagonal bool, cell int, last bool) []figure.Object {
	showLegend := m.groups != nil && cell == 1
	if m.groups == nil {
		all := make([]int, x.len())
		for i := range all {
			all[i] = i
		}
		g := group{rows: all}
		if m.colorBy != nil {
			g.color = colors.Label(m.lo)
		}
		tr := m.trace(x, y, diagonal, g, false)
		if m.colorBy != nil && !(diagonal && m.diag != DiagScatter) {
			marker := tr["marker"].(figure.Object)
			marker["color"] = m.colorBy
			marker["colorscale"] = []interface{}{
				[]interface{}{0.0, colors.Label(m.lo)},
				[]interface{}{1.0, colors.Label(m.hi)},
			}
			marker["showscale"] = last
		}
		return []figure.Object{tr}
	}
	var out []figure.Object
	for _, g := range m.groups {
		out = append(out, m.trace(x, y, diagonal, g, showLegend))
	}
	return out
}

// trace returns the trace of the rows of g in one cell.
func (m *smatrix) trace(x, y column, diagonal bool, g group, showLegend bool) figure.Object {
	if diagonal && m.diag != DiagScatter {
		var tr figure.Object
		if m.diag == DiagHistogram {
			tr = figure.Object{"type": "histogram", "x": x.subset(g.rows)}
		} else {
			tr = figure.Object{"type": "box", "y": x.subset(g.rows)}
		}
		tr["showlegend"] = false
		if g.color != "" {
			tr["marker"] = figure.Object{"color": g.color}
		}
		return tr
	}

	marker := figure.Object{"size": m.size}
	if g.color != "" && m.colorBy == nil {
		marker["color"] = g.color
	}
	tr := m.kwargs.Copy()
	if tr == nil {
		tr = figure.Object{}
	}
	tr.Update(figure.Object{
		"type":       "scatter",
		"x":          x.subset(g.rows),
		"y":          y.subset(g.rows),
		"mode":       "markers",
		"showlegend": showLegend,
		"marker":     marker,
	})
	if m.groups != nil {
		tr["name"] = g.name
	}
	return tr
}

// validateEndpts converts interval boundaries to a strictly increasing
// []float64.
func validateEndpts(v interface{}) ([]float64, error) {
	errEndpts := &figure.Error{Msg: "The intervals_endpts argument must be a list or tuple of a sequence of increasing numbers."}
	var endpts []float64
	switch v := v.(type) {
	case []float64:
		endpts = v
	case []int:
		for _, x := range v {
			endpts = append(endpts, float64(x))
		}
	case []interface{}:
		for _, x := range v {
			f, ok := toFloat(x)
			if !ok {
				return nil, errEndpts
			}
			endpts = append(endpts, f)
		}
	default:
		return nil, errEndpts
	}
	if len(endpts) == 0 {
		return nil, errEndpts
	}
	for i := 1; i < len(endpts); i++ {
		if !(endpts[i] > endpts[i-1]) {
			return nil, errEndpts
		}
	}
	return endpts, nil
}

// intervalGroups splits the rows of index into the intervals (a, b]
// bounded by endpts, with unbounded intervals at either end. Empty
// intervals are omitted.
func intervalGroups(index, endpts []float64) []group {
	bounds := append(append([]float64{math.Inf(-1)}, endpts...), math.Inf(1))
	var groups []group
	for i := 0; i+1 < len(bounds); i++ {
		a, b := bounds[i], bounds[i+1]
		g := group{name: fmt.Sprintf("[%s, %s]", boundString(a), boundString(b))}
		for r, x := range index {
			if a < x && x <= b {
				g.rows = append(g.rows, r)
			}
		}
		if g.rows != nil {
			groups = append(groups, g)
		}
	}
	return groups
}

func boundString(x float64) string {
	switch {
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsInf(x, 1):
		return "inf"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
