// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"math"

	"github.com/aclements/figfactory/figure"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Histogram normalizations.
const (
	HistnormDensity     = "probability density"
	HistnormProbability = "probability"
)

// Curve types.
const (
	CurveKDE    = "kde"
	CurveNormal = "normal"
)

// curvePoints is the number of points sampled along each curve.
const curvePoints = 500

// DistplotOptions are the optional arguments of CreateDistplot.
type DistplotOptions struct {
	// BinSize is the histogram bin width of each group. A single
	// value applies to every group. The default is 1.
	BinSize []float64

	// CurveType is CurveKDE (the default) or CurveNormal.
	CurveType string

	// Colors are the colors of each group. The default is
	// colors.DefaultPlotlyColors. Colors are reused cyclically.
	Colors []string

	// RugText is the hover text of each rug point, per group.
	RugText [][]string

	// Histnorm is HistnormDensity (the default) or
	// HistnormProbability. With HistnormProbability, curves are
	// scaled by the bin size to match the histogram.
	Histnorm string

	HideHist  bool
	HideCurve bool
	HideRug   bool
}

// CreateDistplot returns a distribution plot of each data set in
// histData: a histogram, a fitted curve and a rug plot, overlaid on
// shared axes. groupLabels names each data set.
func CreateDistplot(histData [][]float64, groupLabels []string, opts DistplotOptions) (*figure.Figure, error) {
	curveType := opts.CurveType
	if curveType == "" {
		curveType = CurveKDE
	}
	if curveType != CurveKDE && curveType != CurveNormal {
		return nil, &figure.Error{Msg: "curve_type must be defined as 'kde' or 'normal'"}
	}
	if len(histData) == 0 {
		return nil, errSingleDataset
	}
	for _, d := range histData {
		if len(d) == 0 {
			return nil, errSingleDataset
		}
	}
	if err := figure.ValidateEqualLength(len(histData), len(groupLabels)); err != nil {
		return nil, err
	}

	binSize := opts.BinSize
	switch len(binSize) {
	case 0:
		binSize = []float64{1}
		fallthrough
	case 1:
		bs := make([]float64, len(histData))
		for i := range bs {
			bs[i] = binSize[0]
		}
		binSize = bs
	case len(histData):
	default:
		return nil, figure.Errorf("bin_size must have 1 or %d entries, got %d", len(histData), len(binSize))
	}
	for _, bs := range binSize {
		if err := figure.ValidatePositive("bin_size", bs); err != nil {
			return nil, err
		}
	}

	histnorm := opts.Histnorm
	if histnorm == "" {
		histnorm = HistnormDensity
	}
	if histnorm != HistnormDensity && histnorm != HistnormProbability {
		return nil, figure.Errorf("histnorm must be '%s' or '%s'", HistnormDensity, HistnormProbability)
	}

	d := &distplot{
		data:     histData,
		labels:   groupLabels,
		binSize:  binSize,
		histnorm: histnorm,
		colors:   opts.Colors,
		rugText:  opts.RugText,
	}
	for _, xs := range histData {
		lo, hi := minMax(xs)
		d.start = append(d.start, lo)
		d.end = append(d.end, hi)
	}

	showHist, showCurve, showRug := !opts.HideHist, !opts.HideCurve, !opts.HideRug
	fig := &figure.Figure{}
	if showHist {
		fig.Data = append(fig.Data, d.hists()...)
	}
	if showCurve {
		curves, err := d.curves(curveType, !showHist)
		if err != nil {
			return nil, err
		}
		fig.Data = append(fig.Data, curves...)
	}
	if showRug {
		fig.Data = append(fig.Data, d.rugs(!(showHist || showCurve))...)
	}

	yDomain := []float64{0, 1}
	if showRug {
		yDomain = []float64{0.35, 1}
	}
	fig.Layout = figure.Object{
		"barmode":   "overlay",
		"hovermode": "closest",
		"legend":    figure.Object{"traceorder": "reversed"},
		"xaxis1": figure.Object{
			"domain":   []float64{0, 1},
			"anchor":   "y2",
			"zeroline": false,
		},
		"yaxis1": figure.Object{
			"domain":   yDomain,
			"anchor":   "free",
			"position": 0.0,
		},
	}
	if showRug {
		fig.Layout["yaxis2"] = figure.Object{
			"domain":         []float64{0, 0.25},
			"anchor":         "x1",
			"dtick":          1,
			"showticklabels": false,
		}
	}
	return fig, nil
}

var errSingleDataset = &figure.Error{Msg: "Oops, this function was written to handle multiple datasets, if you want to plot just one, make sure your hist_data variable is still a list of lists, i.e. x = [1, 2, 3] -> x = [[1, 2, 3]]"}

// scottBandwidth is Scott's rule for the bandwidth of a Gaussian KDE
// of n points with sample standard deviation sd.
func scottBandwidth(sd float64, n int) float64 {
	return sd * math.Pow(float64(n), -1.0/5)
}

type distplot struct {
	data       [][]float64
	labels     []string
	binSize    []float64
	histnorm   string
	colors     []string
	rugText    [][]string
	start, end []float64
}

func (d *distplot) color(i int) string {
	if len(d.colors) == 0 {
		return defaultColor(i)
	}
	return d.colors[i%len(d.colors)]
}

func (d *distplot) hists() []figure.Object {
	out := make([]figure.Object, len(d.data))
	for i, xs := range d.data {
		out[i] = figure.Object{
			"type":        "histogram",
			"x":           xs,
			"xaxis":       "x1",
			"yaxis":       "y1",
			"histnorm":    d.histnorm,
			"name":        d.labels[i],
			"legendgroup": d.labels[i],
			"marker":      figure.Object{"color": d.color(i)},
			"autobinx":    false,
			"xbins": figure.Object{
				"start": d.start[i],
				"end":   d.end[i],
				"size":  d.binSize[i],
			},
			"opacity": 0.7,
		}
	}
	return out
}

func (d *distplot) curves(curveType string, showLegend bool) ([]figure.Object, error) {
	out := make([]figure.Object, len(d.data))
	for i, xs := range d.data {
		cx := make([]float64, curvePoints)
		for k := range cx {
			cx[k] = d.start[i] + float64(k)*(d.end[i]-d.start[i])/curvePoints
		}

		var pdf func(float64) float64
		switch curveType {
		case CurveKDE:
			sample := stats.Sample{Xs: xs}
			sd := sample.StdDev()
			if !(sd > 0) {
				return nil, figure.Errorf("cannot estimate the density of group %q: it needs at least two distinct values", d.labels[i])
			}
			kde := &stats.KDE{
				Sample:    sample,
				Kernel:    stats.GaussianKernel,
				Bandwidth: scottBandwidth(sd, len(xs)),
			}
			pdf = kde.PDF
		case CurveNormal:
			mean, sd := stat.PopMeanStdDev(xs, nil)
			if !(sd > 0) {
				return nil, figure.Errorf("cannot fit a normal curve to group %q: it needs at least two distinct values", d.labels[i])
			}
			pdf = distuv.Normal{Mu: mean, Sigma: sd}.Prob
		}

		cy := make([]float64, curvePoints)
		for k, x := range cx {
			cy[k] = pdf(x)
			if d.histnorm == HistnormProbability {
				cy[k] *= d.binSize[i]
			}
		}

		out[i] = figure.Object{
			"type":        "scatter",
			"x":           cx,
			"y":           cy,
			"xaxis":       "x1",
			"yaxis":       "y1",
			"mode":        "lines",
			"name":        d.labels[i],
			"legendgroup": d.labels[i],
			"showlegend":  showLegend,
			"marker":      figure.Object{"color": d.color(i)},
		}
	}
	return out, nil
}

func (d *distplot) rugs(showLegend bool) []figure.Object {
	out := make([]figure.Object, len(d.data))
	for i, xs := range d.data {
		ys := make([]string, len(xs))
		for k := range ys {
			ys[k] = d.labels[i]
		}
		var text interface{}
		if i < len(d.rugText) {
			text = d.rugText[i]
		}
		out[i] = figure.Object{
			"type":        "scatter",
			"x":           xs,
			"y":           ys,
			"xaxis":       "x1",
			"yaxis":       "y2",
			"mode":        "markers",
			"name":        d.labels[i],
			"legendgroup": d.labels[i],
			"showlegend":  showLegend,
			"text":        text,
			"marker": figure.Object{
				"color":  d.color(i),
				"symbol": "line-ns-open",
			},
		}
	}
	return out
}
