// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/figfactory/cluster"
	"github.com/aclements/figfactory/colors"
	"github.com/aclements/figfactory/factory"
	"github.com/aclements/figfactory/figure"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// A request is one chart to build.
type request struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	CSV  string `yaml:"csv"`

	// dir is the directory of the request file.
	dir string
	// args holds the whole request document, decoded again into
	// the arguments of Kind.
	args yaml.Node
}

// A result is the output of one request. Exactly one field is set.
type result struct {
	fig    *figure.Figure
	swatch image.Image
}

// readRequests reads every request in the YAML stream at path.
// Requests without a name are named after the file.
func readRequests(path string) ([]*request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeRequests(f, path)
}

func decodeRequests(r io.Reader, path string) ([]*request, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var reqs []*request
	dec := yaml.NewDecoder(r)
	for {
		req := &request{dir: filepath.Dir(path)}
		if err := dec.Decode(&req.args); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := req.args.Decode(req); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if req.Kind == "" {
			return nil, fmt.Errorf("%s: request %d has no kind", path, len(reqs)+1)
		}
		reqs = append(reqs, req)
	}
	for i, req := range reqs {
		if req.Name != "" {
			continue
		}
		req.Name = base
		if len(reqs) > 1 {
			req.Name = fmt.Sprintf("%s-%d", base, i+1)
		}
	}
	return reqs, nil
}

type distplotArgs struct {
	HistData    [][]float64 `yaml:"hist_data"`
	GroupLabels []string    `yaml:"group_labels"`
	BinSize     []float64   `yaml:"bin_size"`
	CurveType   string      `yaml:"curve_type"`
	Colors      []string    `yaml:"colors"`
	RugText     [][]string  `yaml:"rug_text"`
	Histnorm    string      `yaml:"histnorm"`
	ShowHist    *bool       `yaml:"show_hist"`
	ShowCurve   *bool       `yaml:"show_curve"`
	ShowRug     *bool       `yaml:"show_rug"`
}

type streamlineArgs struct {
	X          []float64              `yaml:"x"`
	Y          []float64              `yaml:"y"`
	U          [][]float64            `yaml:"u"`
	V          [][]float64            `yaml:"v"`
	Density    *float64               `yaml:"density"`
	Angle      float64                `yaml:"angle"`
	ArrowScale *float64               `yaml:"arrow_scale"`
	Trace      map[string]interface{} `yaml:"trace"`
}

type dendrogramArgs struct {
	X              [][]float64 `yaml:"X"`
	Orientation    string      `yaml:"orientation"`
	Labels         []string    `yaml:"labels"`
	Colorscale     []string    `yaml:"colorscale"`
	Method         string      `yaml:"method"`
	ColorThreshold float64     `yaml:"color_threshold"`
}

type trisurfArgs struct {
	X               []float64   `yaml:"x"`
	Y               []float64   `yaml:"y"`
	Z               []float64   `yaml:"z"`
	Simplices       [][3]int    `yaml:"simplices"`
	Colormap        interface{} `yaml:"colormap"`
	Title           string      `yaml:"title"`
	ShowBackground  *bool       `yaml:"showbackground"`
	BackgroundColor string      `yaml:"backgroundcolor"`
	GridColor       string      `yaml:"gridcolor"`
	ZeroLineColor   string      `yaml:"zerolinecolor"`
	Height          int         `yaml:"height"`
	Width           int         `yaml:"width"`
	AspectRatio     *struct {
		X, Y, Z float64
	} `yaml:"aspectratio"`
	PlotEdges *bool `yaml:"plot_edges"`
}

type scatterplotMatrixArgs struct {
	Index    string                 `yaml:"index"`
	Endpts   interface{}            `yaml:"endpts"`
	Diag     string                 `yaml:"diag"`
	Height   int                    `yaml:"height"`
	Width    int                    `yaml:"width"`
	Size     float64                `yaml:"size"`
	Title    string                 `yaml:"title"`
	UseTheme bool                   `yaml:"use_theme"`
	Palette  interface{}            `yaml:"palette"`
	Trace    map[string]interface{} `yaml:"trace"`
}

type ganttArgs struct {
	Tasks         []interface{} `yaml:"tasks"`
	Colors        interface{}   `yaml:"colors"`
	UseColorscale bool          `yaml:"use_colorscale"`
	ReverseColors bool          `yaml:"reverse_colors"`
	Title         string        `yaml:"title"`
	BarWidth      float64       `yaml:"bar_width"`
	ShowGridX     bool          `yaml:"showgrid_x"`
	ShowGridY     bool          `yaml:"showgrid_y"`
	Height        int           `yaml:"height"`
	Width         int           `yaml:"width"`
}

type swatchArgs struct {
	Colorscale interface{} `yaml:"colorscale"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
}

// hidden reports whether an optional "show" flag is explicitly false.
func hidden(show *bool) bool {
	return show != nil && !*show
}

// build decodes the arguments of r and builds its chart.
func (r *request) build() (*result, error) {
	switch r.Kind {
	case "distplot":
		var a distplotArgs
		if err := r.args.Decode(&a); err != nil {
			return nil, err
		}
		fig, err := factory.CreateDistplot(a.HistData, a.GroupLabels, factory.DistplotOptions{
			BinSize:   a.BinSize,
			CurveType: a.CurveType,
			Colors:    a.Colors,
			RugText:   a.RugText,
			Histnorm:  a.Histnorm,
			HideHist:  hidden(a.ShowHist),
			HideCurve: hidden(a.ShowCurve),
			HideRug:   hidden(a.ShowRug),
		})
		return &result{fig: fig}, err

	case "streamline":
		var a streamlineArgs
		if err := r.args.Decode(&a); err != nil {
			return nil, err
		}
		fig, err := factory.CreateStreamline(a.X, a.Y, a.U, a.V, factory.StreamlineOptions{
			Density:    a.Density,
			Angle:      a.Angle,
			ArrowScale: a.ArrowScale,
			Trace:      a.Trace,
		})
		return &result{fig: fig}, err

	case "dendrogram":
		var a dendrogramArgs
		if err := r.args.Decode(&a); err != nil {
			return nil, err
		}
		var x mat.Matrix
		if len(a.X) > 0 && len(a.X[0]) > 0 {
			d := mat.NewDense(len(a.X), len(a.X[0]), nil)
			for i, row := range a.X {
				if len(row) != len(a.X[0]) {
					return nil, fmt.Errorf("row %d of X has %d columns, want %d", i, len(row), len(a.X[0]))
				}
				d.SetRow(i, row)
			}
			x = d
		}
		method := cluster.Complete
		if a.Method != "" {
			var err error
			if method, err = cluster.ParseMethod(a.Method); err != nil {
				return nil, err
			}
		}
		fig, err := factory.CreateDendrogram(x, factory.DendrogramOptions{
			Orientation:    a.Orientation,
			Labels:         a.Labels,
			Colorscale:     a.Colorscale,
			Method:         method,
			ColorThreshold: a.ColorThreshold,
		})
		return &result{fig: fig}, err

	case "trisurf":
		var a trisurfArgs
		if err := r.args.Decode(&a); err != nil {
			return nil, err
		}
		opts := factory.TrisurfOptions{
			Colormap:        a.Colormap,
			Title:           a.Title,
			HideBackground:  hidden(a.ShowBackground),
			BackgroundColor: a.BackgroundColor,
			GridColor:       a.GridColor,
			ZeroLineColor:   a.ZeroLineColor,
			Height:          a.Height,
			Width:           a.Width,
			HideEdges:       hidden(a.PlotEdges),
		}
		if ar := a.AspectRatio; ar != nil {
			opts.AspectRatio = factory.AspectRatio{X: ar.X, Y: ar.Y, Z: ar.Z}
		}
		fig, err := factory.CreateTrisurf(a.X, a.Y, a.Z, a.Simplices, opts)
		return &result{fig: fig}, err

	case "scatterplotmatrix":
		var a scatterplotMatrixArgs
		if err := r.args.Decode(&a); err != nil {
			return nil, err
		}
		if r.CSV == "" {
			return nil, errors.New("scatterplotmatrix requires a csv table")
		}
		df, err := readCSV(r.path(r.CSV))
		if err != nil {
			return nil, err
		}
		fig, err := factory.CreateScatterplotMatrix(df, factory.ScatterplotMatrixOptions{
			Index:    a.Index,
			Endpts:   a.Endpts,
			Diag:     a.Diag,
			Height:   a.Height,
			Width:    a.Width,
			Size:     a.Size,
			Title:    a.Title,
			UseTheme: a.UseTheme,
			Palette:  a.Palette,
			Trace:    a.Trace,
		})
		return &result{fig: fig}, err

	case "gantt":
		var a ganttArgs
		if err := r.args.Decode(&a); err != nil {
			return nil, err
		}
		var df interface{} = a.Tasks
		if r.CSV != "" {
			t, err := readCSV(r.path(r.CSV))
			if err != nil {
				return nil, err
			}
			df = t
		}
		fig, err := factory.CreateGantt(df, factory.GanttOptions{
			Colors:        a.Colors,
			UseColorscale: a.UseColorscale,
			ReverseColors: a.ReverseColors,
			Title:         a.Title,
			BarWidth:      a.BarWidth,
			ShowGridX:     a.ShowGridX,
			ShowGridY:     a.ShowGridY,
			Height:        a.Height,
			Width:         a.Width,
		})
		return &result{fig: fig}, err

	case "swatch":
		var a swatchArgs
		if err := r.args.Decode(&a); err != nil {
			return nil, err
		}
		cs, err := colors.Validate(a.Colorscale, colors.Colormap)
		if err != nil {
			return nil, err
		}
		w, h := a.Width, a.Height
		if w <= 0 {
			w = 256
		}
		if h <= 0 {
			h = 32
		}
		return &result{swatch: colors.Swatch(colors.Scale{Lo: cs[0], Hi: cs[len(cs)-1]}, w, h)}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", r.Kind)
}

// path resolves a file name relative to the request file.
func (r *request) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.dir, name)
}
