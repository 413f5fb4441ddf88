// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"github.com/aclements/figfactory/colors"
	"github.com/aclements/figfactory/figure"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// ganttKeys are the fields every Gantt task must have.
var ganttKeys = []string{"Task", "Start", "Finish"}

// GanttOptions are the optional arguments of CreateGantt. Zero values
// select the defaults.
type GanttOptions struct {
	// Colors are the bar colors, in any form accepted by
	// colors.Validate. Without UseColorscale, bars cycle through
	// them. The default is the default trace colors.
	Colors interface{}

	// UseColorscale colors each bar by its Complete value, blending
	// from the first color at 0 to the second at 100.
	UseColorscale bool

	// ReverseColors reverses Colors.
	ReverseColors bool

	// Title defaults to "Gantt Chart".
	Title string

	// BarWidth is half the height of each bar. The default is 0.2.
	BarWidth float64

	ShowGridX, ShowGridY bool

	// Height defaults to 600 and Width to 900.
	Height, Width int
}

// A task is one bar of a Gantt chart.
type task struct {
	name          interface{}
	start, finish interface{}
	complete      float64
}

// CreateGantt returns a Gantt chart with one bar per task of df.
//
// df is a *table.Table with Task, Start and Finish columns, or a
// []map[string]interface{} or []interface{} of maps with those keys.
// Either form may also give every task a Complete percentage. Start
// and Finish are passed through unchanged, so they are normally date
// strings.
func CreateGantt(df interface{}, opts GanttOptions) (*figure.Figure, error) {
	tasks, hasComplete, err := ganttTasks(df)
	if err != nil {
		return nil, err
	}
	cs, err := colors.Validate(opts.Colors, colors.Colors)
	if err != nil {
		return nil, err
	}
	if opts.UseColorscale && !hasComplete {
		return nil, &figure.Error{Msg: "In order to use colorscale there must be a 'Complete' column in the chart."}
	}
	if opts.ReverseColors {
		rev := make([]colors.Tuple, len(cs))
		for i, c := range cs {
			rev[len(cs)-1-i] = c
		}
		cs = rev
	}

	// A colorscale blends between the first two colors.
	lo, hi := cs[0], cs[0]
	if len(cs) > 1 {
		hi = cs[1]
	}

	bw := floatOr(opts.BarWidth, 0.2)
	fig := &figure.Figure{}
	shapes := make([]figure.Object, len(tasks))
	ticktext := make([]interface{}, len(tasks))
	tickvals := make([]int, len(tasks))
	for i, t := range tasks {
		var fill colors.Tuple
		if opts.UseColorscale {
			fill = colors.FindIntermediate(lo, hi, t.complete/100)
		} else {
			fill = cs[i%len(cs)]
		}
		shapes[i] = figure.Object{
			"type":      "rect",
			"xref":      "x",
			"yref":      "y",
			"opacity":   1,
			"line":      figure.Object{"width": 0},
			"x0":        t.start,
			"x1":        t.finish,
			"y0":        float64(i) - bw,
			"y1":        float64(i) + bw,
			"fillcolor": colors.Label(fill),
		}
		// Shapes carry no hover text, so each bar is shadowed by an
		// invisible trace along its center.
		fig.Data = append(fig.Data, figure.Object{
			"x":      []interface{}{t.start, t.finish},
			"y":      []int{i, i},
			"name":   "",
			"marker": figure.Object{"color": "white"},
		})
		ticktext[i] = t.name
		tickvals[i] = i
	}

	button := func(count int, label, step, stepmode string) figure.Object {
		return figure.Object{"count": count, "label": label, "step": step, "stepmode": stepmode}
	}
	fig.Layout = figure.Object{
		"title":      stringOr(opts.Title, "Gantt Chart"),
		"showlegend": false,
		"height":     intOr(opts.Height, 600),
		"width":      intOr(opts.Width, 900),
		"shapes":     shapes,
		"hovermode":  "closest",
		"yaxis": figure.Object{
			"showgrid":  opts.ShowGridY,
			"ticktext":  ticktext,
			"tickvals":  tickvals,
			"range":     []int{-1, len(tasks) + 1},
			"autorange": false,
			"zeroline":  false,
		},
		"xaxis": figure.Object{
			"showgrid": opts.ShowGridX,
			"zeroline": false,
			"type":     "date",
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
		},
	}
	return fig, nil
}

// ganttTasks validates and extracts the tasks of df.
func ganttTasks(df interface{}) (tasks []task, hasComplete bool, err error) {
	errKeys := figure.Errorf("The columns in your dataframe must include the keys %v", ganttKeys)
	errRange := &figure.Error{Msg: "The values in the 'Complete' column must be between 0 and 100."}

	var rows []map[string]interface{}
	switch df := df.(type) {
	case *table.Table:
		if df == nil {
			return nil, false, &figure.Error{Msg: "You must input either a dataframe or a list of dictionaries."}
		}
		cols := make(map[string][]interface{})
		for _, name := range df.Columns() {
			var vals []interface{}
			slice.Convert(&vals, df.Column(name))
			cols[name] = vals
		}
		for _, k := range ganttKeys {
			if _, ok := cols[k]; !ok {
				return nil, false, errKeys
			}
		}
		rows = make([]map[string]interface{}, df.Len())
		for i := range rows {
			rows[i] = make(map[string]interface{}, len(cols))
			for name, vals := range cols {
				rows[i][name] = vals[i]
			}
		}
	case []map[string]interface{}:
		rows = df
	case []interface{}:
		for _, r := range df {
			m, ok := r.(map[string]interface{})
			if !ok {
				return nil, false, &figure.Error{Msg: "Your list must only include dictionaries."}
			}
			rows = append(rows, m)
		}
	default:
		return nil, false, &figure.Error{Msg: "You must input either a dataframe or a list of dictionaries."}
	}
	if len(rows) == 0 {
		return nil, false, &figure.Error{Msg: "Your list is empty. It must contain at least one dictionary."}
	}

	nComplete := 0
	for _, r := range rows {
		for _, k := range ganttKeys {
			if _, ok := r[k]; !ok {
				return nil, false, errKeys
			}
		}
		if _, ok := r["Complete"]; ok {
			nComplete++
		}
	}
	if nComplete != 0 && nComplete != len(rows) {
		return nil, false, &figure.Error{Msg: "If you are using 'Complete' as a dictionary key, make sure each dictionary has this key with an assigned value between 0 and 100."}
	}
	hasComplete = nComplete != 0

	tasks = make([]task, len(rows))
	for i, r := range rows {
		tasks[i] = task{name: r["Task"], start: r["Start"], finish: r["Finish"]}
		if hasComplete {
			c, ok := toFloat(r["Complete"])
			if !ok || c < 0 || c > 100 {
				return nil, false, errRange
			}
			tasks[i].complete = c
		}
	}
	return tasks, hasComplete, nil
}
