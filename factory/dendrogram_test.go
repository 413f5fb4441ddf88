// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"math/rand"
	"testing"

	"github.com/aclements/figfactory/figure"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var dendrogramX = mat.NewDense(4, 4, []float64{
	1, 2, 3, 4,
	1, 1, 3, 4,
	1, 2, 1, 4,
	1, 2, 3, 1,
})

func dendrogramTrace(x, y []float64, color string) figure.Object {
	return figure.Object{
		"type":   "scatter",
		"x":      x,
		"y":      y,
		"marker": figure.Object{"color": color},
		"mode":   "lines",
		"xaxis":  "x",
		"yaxis":  "y",
	}
}

func TestDendrogramDefault(t *testing.T) {
	fig, err := CreateDendrogram(dendrogramX, DendrogramOptions{})
	require.NoError(t, err)

	want := &figure.Figure{
		Data: []figure.Object{
			dendrogramTrace([]float64{25, 25, 35, 35}, []float64{0, 1, 1, 0}, "rgb(61,153,112)"),
			dendrogramTrace([]float64{15, 15, 30, 30}, []float64{0, 2.23606798, 2.23606798, 1}, "rgb(61,153,112)"),
			dendrogramTrace([]float64{5, 5, 22.5, 22.5}, []float64{0, 3.60555128, 3.60555128, 2.23606798}, "rgb(0,116,217)"),
		},
		Layout: figure.Object{
			"autosize":   false,
			"height":     "100%",
			"hovermode":  "closest",
			"showlegend": false,
			"width":      "100%",
			"xaxis": figure.Object{
				"mirror":         "allticks",
				"rangemode":      "tozero",
				"showgrid":       false,
				"showline":       true,
				"showticklabels": true,
				"tickmode":       "array",
				"ticks":          "outside",
				"ticktext":       []string{"3", "2", "0", "1"},
				"tickvals":       []float64{5, 15, 25, 35},
				"type":           "linear",
				"zeroline":       false,
			},
			"yaxis": figure.Object{
				"mirror":         "allticks",
				"rangemode":      "tozero",
				"showgrid":       false,
				"showline":       true,
				"showticklabels": true,
				"ticks":          "outside",
				"type":           "linear",
				"zeroline":       false,
			},
		},
	}
	if diff := cmp.Diff(want, fig, cmpopts.EquateApprox(0, 1e-8)); diff != "" {
		t.Errorf("dendrogram mismatch (-want +got):\n%s", diff)
	}
}

func TestDendrogramColorscale(t *testing.T) {
	greyscale := []string{
		"rgb(0,0,0)",       // black
		"rgb(05,105,105)",  // dim grey
		"rgb(128,128,128)", // grey
		"rgb(169,169,169)", // dark grey
		"rgb(192,192,192)", // silver
		"rgb(211,211,211)", // light grey
		"rgb(220,220,220)", // gainsboro
		"rgb(245,245,245)", // white smoke
	}
	fig, err := CreateDendrogram(dendrogramX, DendrogramOptions{Colorscale: greyscale})
	require.NoError(t, err)
	require.Len(t, fig.Data, 3)
	for i, want := range []string{"rgb(128,128,128)", "rgb(128,128,128)", "rgb(0,0,0)"} {
		require.Equal(t, want, fig.Data[i]["marker"].(figure.Object)["color"])
	}

	// Keys past the end of a short colorscale keep their names.
	fig, err = CreateDendrogram(dendrogramX, DendrogramOptions{Colorscale: []string{"rgb(1,1,1)"}})
	require.NoError(t, err)
	require.Equal(t, "green", fig.Data[0]["marker"].(figure.Object)["color"])
	require.Equal(t, "rgb(1,1,1)", fig.Data[2]["marker"].(figure.Object)["color"])
}

func TestDendrogramRandomMatrix(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	X := mat.NewDense(5, 5, nil)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			X.Set(i, j, r.Float64())
		}
	}
	// Row 2 is the sum of all rows, far from the others.
	for j := 0; j < 5; j++ {
		var sum float64
		for i := 0; i < 5; i++ {
			sum += X.At(i, j)
		}
		X.Set(2, j, sum)
	}
	names := []string{"Jack", "Oxana", "John", "Chelsea", "Mark"}
	fig, err := CreateDendrogram(X, DendrogramOptions{Labels: names})
	require.NoError(t, err)
	require.Len(t, fig.Data, 4)

	xaxis := fig.Layout["xaxis"].(figure.Object)
	require.Equal(t, []float64{5, 15, 25, 35, 45}, xaxis["tickvals"])
	require.Equal(t, "John", xaxis["ticktext"].([]string)[0])
	require.ElementsMatch(t, names, xaxis["ticktext"])

	// The outlier joins last, above the threshold.
	require.Equal(t, "rgb(0,116,217)", fig.Data[3]["marker"].(figure.Object)["color"])
	for i := range fig.Data {
		for j := range fig.Data {
			if i != j {
				require.NotEqual(t, fig.Data[i]["y"], fig.Data[j]["y"])
			}
		}
	}
}

func TestDendrogramOrientation(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	data := make([]float64, 25)
	for i := range data {
		data[i] = r.Float64()
	}
	X := mat.NewDense(5, 5, data)

	for _, test := range []struct {
		orientation string
		axis        string
		positive    bool
	}{
		{"left", "yaxis", false},
		{"right", "yaxis", true},
		{"bottom", "xaxis", true},
		{"top", "xaxis", false},
	} {
		fig, err := CreateDendrogram(X, DendrogramOptions{Orientation: test.orientation})
		require.NoError(t, err)
		axis := fig.Layout[test.axis].(figure.Object)
		require.Len(t, axis["ticktext"], 5, test.orientation)
		for _, v := range axis["tickvals"].([]float64) {
			if test.positive {
				require.GreaterOrEqual(t, v, 0.0, test.orientation)
			} else {
				require.LessOrEqual(t, v, 0.0, test.orientation)
			}
		}
	}

	// Left and right dendrograms swap coordinates.
	bottom, err := CreateDendrogram(dendrogramX, DendrogramOptions{})
	require.NoError(t, err)
	right, err := CreateDendrogram(dendrogramX, DendrogramOptions{Orientation: "right"})
	require.NoError(t, err)
	left, err := CreateDendrogram(dendrogramX, DendrogramOptions{Orientation: "left"})
	require.NoError(t, err)
	require.Equal(t, bottom.Data[0]["x"], right.Data[0]["y"])
	require.Equal(t, bottom.Data[0]["y"], left.Data[0]["x"])
}

func TestDendrogramErrors(t *testing.T) {
	_, err := CreateDendrogram(nil, DendrogramOptions{})
	require.EqualError(t, err, "X should be 2-dimensional array.")
	_, err = CreateDendrogram(mat.NewDense(1, 3, nil), DendrogramOptions{})
	require.ErrorContains(t, err, "at least 2 rows")
	_, err = CreateDendrogram(dendrogramX, DendrogramOptions{Labels: []string{"a"}})
	require.ErrorContains(t, err, "labels has 1 entries")
	_, err = CreateDendrogram(dendrogramX, DendrogramOptions{Orientation: "diagonal"})
	require.ErrorContains(t, err, "orientation must be one of")
}
