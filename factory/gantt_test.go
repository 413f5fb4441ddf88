// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"testing"

	"github.com/aclements/figfactory/figure"
	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func job(complete interface{}) map[string]interface{} {
	m := map[string]interface{}{"Task": "A Job", "Start": "2009-01-01", "Finish": "2009-02-30"}
	if complete != nil {
		m["Complete"] = complete
	}
	return m
}

func TestGanttErrors(t *testing.T) {
	const (
		errKeys  = "The columns in your dataframe must include the keys [Task Start Finish]"
		errRange = "The values in the 'Complete' column must be between 0 and 100."
	)
	twoJobs := []interface{}{job(55), job(65)}
	for _, test := range []struct {
		name string
		df   interface{}
		opts GanttOptions
		msg  string
	}{
		{"table keys", new(table.Builder).Add("Numbers", []int{2}).Add("Fruit", []string{"Apple"}).Done(), GanttOptions{}, errKeys},
		{"table complete", new(table.Builder).
			Add("Task", []string{"Job A", "Job B"}).
			Add("Start", []string{"2009-01-01", "2009-01-01"}).
			Add("Finish", []string{"2009-02-30", "2009-02-30"}).
			Add("Complete", []interface{}{25, "25"}).
			Done(), GanttOptions{}, errRange},
		{"not a list", 42, GanttOptions{}, "You must input either a dataframe or a list of dictionaries."},
		{"empty", []interface{}{}, GanttOptions{}, "Your list is empty. It must contain at least one dictionary."},
		{"not maps", []interface{}{42}, GanttOptions{}, "Your list must only include dictionaries."},
		{"keys", []interface{}{map[string]interface{}{"apple": 2}}, GanttOptions{}, errKeys},
		{"some complete", []interface{}{job(nil), job(25)}, GanttOptions{},
			"If you are using 'Complete' as a dictionary key, make sure each dictionary has this key with an assigned value between 0 and 100."},
		{"complete string", []interface{}{job(55), job("string")}, GanttOptions{}, errRange},
		{"complete range", []map[string]interface{}{job(101)}, GanttOptions{}, errRange},
		{"colors int", twoJobs, GanttOptions{Colors: 25},
			"If 'colors' is a list then its items must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c are between 0 and 1 inclusive and x,y,z are between 0 and 255 inclusive."},
		{"colors 255", twoJobs, GanttOptions{Colors: []string{"rgb(1, 2, 3)", "rgb(300, 2, 3)"}},
			"Whoops! The elements in your rgb colors tuples cannot exceed 255.0."},
		{"colors 1", twoJobs, GanttOptions{Colors: [][3]float64{{0.1, 0.2, 0.3}, {0.6, 0.8, 1.2}}},
			"Whoops! The elements in your rgb colors tuples cannot exceed 1.0."},
		{"colorscale", []interface{}{job(nil), job(nil)}, GanttOptions{UseColorscale: true},
			"In order to use colorscale there must be a 'Complete' column in the chart."},
	} {
		_, err := CreateGantt(test.df, test.opts)
		require.EqualError(t, err, test.msg, test.name)
	}

	_, err := CreateGantt(twoJobs, GanttOptions{Colors: "Weird"})
	var ferr *figure.Error
	require.ErrorAs(t, err, &ferr)
}

func TestGanttAllArgs(t *testing.T) {
	df := []interface{}{
		map[string]interface{}{"Task": "Run", "Start": "2010-01-01", "Finish": "2011-02-02", "Complete": 0},
		map[string]interface{}{"Task": "Fast", "Start": "2011-01-01", "Finish": "2012-06-05", "Complete": 25},
	}
	fig, err := CreateGantt(df, GanttOptions{
		Colors:        "Blues",
		UseColorscale: true,
		ReverseColors: true,
		Title:         "Title",
		BarWidth:      0.5,
		ShowGridX:     true,
		ShowGridY:     true,
		Height:        500,
		Width:         500,
	})
	require.NoError(t, err)

	shape := func(x0, x1 string, y0, y1 float64, fill string) figure.Object {
		return figure.Object{
			"fillcolor": fill,
			"line":      figure.Object{"width": 0},
			"opacity":   1,
			"type":      "rect",
			"x0":        x0,
			"x1":        x1,
			"xref":      "x",
			"y0":        y0,
			"y1":        y1,
			"yref":      "y",
		}
	}
	button := func(count int, label, step, stepmode string) figure.Object {
		return figure.Object{"count": count, "label": label, "step": step, "stepmode": stepmode}
	}
	want := &figure.Figure{
		Data: []figure.Object{
			{
				"marker": figure.Object{"color": "white"},
				"name":   "",
				"x":      []interface{}{"2010-01-01", "2011-02-02"},
				"y":      []int{0, 0},
			},
			{
				"marker": figure.Object{"color": "white"},
				"name":   "",
				"x":      []interface{}{"2011-01-01", "2012-06-05"},
				"y":      []int{1, 1},
			},
		},
		Layout: figure.Object{
			"height":    500,
			"hovermode": "closest",
			"shapes": []figure.Object{
				shape("2010-01-01", "2011-02-02", -0.5, 0.5, "rgb(220.0, 220.0, 220.0)"),
				shape("2011-01-01", "2012-06-05", 0.5, 1.5, "rgb(166.25, 167.5, 208.0)"),
			},
			"showlegend": false,
			"title":      "Title",
			"width":      500,
			"xaxis": figure.Object{
				"rangeselector": figure.Object{
					"buttons": []figure.Object{
						button(7, "1w", "day", "backward"),
						button(1, "1m", "month", "backward"),
						button(6, "6m", "month", "backward"),
						button(1, "YTD", "year", "todate"),
						button(1, "1y", "year", "backward"),
						{"step": "all"},
					},
				},
				"showgrid": true,
				"type":     "date",
				"zeroline": false,
			},
			"yaxis": figure.Object{
				"autorange": false,
				"range":     []int{-1, 3},
				"showgrid":  true,
				"ticktext":  []interface{}{"Run", "Fast"},
				"tickvals":  []int{0, 1},
				"zeroline":  false,
			},
		},
	}
	if diff := cmp.Diff(want, fig); diff != "" {
		t.Errorf("gantt mismatch (-want +got):\n%s", diff)
	}
}

func TestGanttTable(t *testing.T) {
	df := new(table.Builder).
		Add("Task", []string{"Build", "Test", "Ship"}).
		Add("Start", []string{"2026-01-01", "2026-02-01", "2026-03-01"}).
		Add("Finish", []string{"2026-01-31", "2026-02-28", "2026-03-02"}).
		Done()
	fig, err := CreateGantt(df, GanttOptions{Colors: []string{"rgb(10, 20, 30)", "rgb(40, 50, 60)"}})
	require.NoError(t, err)
	require.Len(t, fig.Data, 3)

	// Without a colorscale, bars cycle through the colors.
	shapes := fig.Layout["shapes"].([]figure.Object)
	var fills []interface{}
	for _, s := range shapes {
		fills = append(fills, s["fillcolor"])
	}
	require.Equal(t, []interface{}{"rgb(10.0, 20.0, 30.0)", "rgb(40.0, 50.0, 60.0)", "rgb(10.0, 20.0, 30.0)"}, fills)
	require.InDelta(t, 1.8, shapes[2]["y0"], 1e-12)
	require.Equal(t, "Gantt Chart", fig.Layout["title"])
	require.Equal(t, 600, fig.Layout["height"])
	require.Equal(t, 900, fig.Layout["width"])
	yaxis := fig.Layout["yaxis"].(figure.Object)
	require.Equal(t, []int{-1, 4}, yaxis["range"])
	require.Equal(t, []interface{}{"Build", "Test", "Ship"}, yaxis["ticktext"])
}

func TestGanttColorscaleFirstTwo(t *testing.T) {
	tasks := []map[string]interface{}{
		{"Task": "A", "Start": "2026-01-01", "Finish": "2026-01-02", "Complete": 0},
		{"Task": "B", "Start": "2026-01-02", "Finish": "2026-01-03", "Complete": 50},
		{"Task": "C", "Start": "2026-01-03", "Finish": "2026-01-04", "Complete": 100},
	}
	cs := []string{"rgb(0, 0, 0)", "rgb(100, 200, 100)", "rgb(255, 0, 0)"}
	fills := func(fig *figure.Figure) []interface{} {
		var out []interface{}
		for _, s := range fig.Layout["shapes"].([]figure.Object) {
			out = append(out, s["fillcolor"])
		}
		return out
	}

	// Colors after the second do not take part in the blend.
	fig, err := CreateGantt(tasks, GanttOptions{Colors: cs, UseColorscale: true})
	require.NoError(t, err)
	require.Equal(t, []interface{}{"rgb(0.0, 0.0, 0.0)", "rgb(50.0, 100.0, 50.0)", "rgb(100.0, 200.0, 100.0)"}, fills(fig))

	// Reversing applies to the whole list before picking the first two.
	fig, err = CreateGantt(tasks, GanttOptions{Colors: cs, UseColorscale: true, ReverseColors: true})
	require.NoError(t, err)
	require.Equal(t, []interface{}{"rgb(255.0, 0.0, 0.0)", "rgb(177.5, 100.0, 50.0)", "rgb(100.0, 200.0, 100.0)"}, fills(fig))
}
