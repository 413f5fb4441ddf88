// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses, validates and blends the color
// specifications accepted by the figure factory.
//
// Colors travel through chart documents as "rgb(r, g, b)" strings.
// Internally they are Tuples, either on the unit scale [0, 1] or on
// the 8-bit scale [0, 255].
package colors

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette/brewer"
)

// A Tuple is an RGB color. Depending on context its components are on
// the unit scale or the 8-bit scale; use To255 and From255 to convert.
type Tuple [3]float64

// DefaultPlotlyColors is the default cycle of trace colors.
var DefaultPlotlyColors = []string{
	"rgb(31, 119, 180)", "rgb(255, 127, 14)",
	"rgb(44, 160, 44)", "rgb(214, 39, 40)",
	"rgb(148, 103, 189)", "rgb(140, 86, 75)",
	"rgb(227, 119, 194)", "rgb(127, 127, 127)",
	"rgb(188, 189, 34)", "rgb(23, 190, 207)",
}

// PlotlyScales maps the name of each built-in colorscale to its low
// and high endpoint colors.
var PlotlyScales = map[string][2]string{
	"Greys":     {"rgb(0,0,0)", "rgb(255,255,255)"},
	"YlGnBu":    {"rgb(8,29,88)", "rgb(255,255,217)"},
	"Greens":    {"rgb(0,68,27)", "rgb(247,252,245)"},
	"YlOrRd":    {"rgb(128,0,38)", "rgb(255,255,204)"},
	"Bluered":   {"rgb(0,0,255)", "rgb(255,0,0)"},
	"RdBu":      {"rgb(5,10,172)", "rgb(178,10,28)"},
	"Reds":      {"rgb(220,220,220)", "rgb(178,10,28)"},
	"Blues":     {"rgb(5,10,172)", "rgb(220,220,220)"},
	"Picnic":    {"rgb(0,0,255)", "rgb(255,0,0)"},
	"Rainbow":   {"rgb(150,0,90)", "rgb(255,0,0)"},
	"Portland":  {"rgb(12,51,131)", "rgb(217,30,30)"},
	"Jet":       {"rgb(0,0,131)", "rgb(128,0,0)"},
	"Hot":       {"rgb(0,0,0)", "rgb(255,255,255)"},
	"Blackbody": {"rgb(0,0,0)", "rgb(160,200,255)"},
	"Earth":     {"rgb(0,0,130)", "rgb(255,255,255)"},
	"Electric":  {"rgb(0,0,0)", "rgb(255,250,220)"},
	"Viridis":   {"rgb(68,1,84)", "rgb(253,231,37)"},
}

// BrewerPrefix selects a ColorBrewer palette in a scale name, as in
// "brewer:YlGn".
const BrewerPrefix = "brewer:"

// ScaleNames returns the sorted names of the built-in colorscales.
func ScaleNames() []string {
	names := make([]string, 0, len(PlotlyScales))
	for name := range PlotlyScales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupScale returns the 8-bit endpoint colors of the named scale.
// Names are either built-in plotly scales or BrewerPrefix followed by
// a ColorBrewer palette name, in which case the endpoints are the
// first and last colors of the palette's largest variant.
func LookupScale(name string) (lo, hi Tuple, ok bool) {
	if ends, ok := PlotlyScales[name]; ok {
		lo, _ = Unlabel(ends[0])
		hi, _ = Unlabel(ends[1])
		return lo, hi, true
	}
	if !strings.HasPrefix(name, BrewerPrefix) {
		return lo, hi, false
	}
	variants, ok := brewer.ByName[strings.TrimPrefix(name, BrewerPrefix)]
	if !ok {
		return lo, hi, false
	}
	best := 0
	var first, last color.Color
	for n, cs := range variants {
		if n > best && len(cs) > 0 {
			best = n
			first, last = cs[0], cs[len(cs)-1]
		}
	}
	if best == 0 {
		return lo, hi, false
	}
	return fromColor(first), fromColor(last), true
}

func fromColor(c color.Color) Tuple {
	r, g, b, _ := color.NRGBAModel.Convert(c).RGBA()
	return Tuple{float64(r >> 8), float64(g >> 8), float64(b >> 8)}
}

// Unlabel parses an "rgb(r, g, b)" string into an 8-bit Tuple. It
// also accepts "#rrggbb" hex colors.
func Unlabel(s string) (Tuple, error) {
	var t Tuple
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return t, fmt.Errorf("malformed hex color %q", s)
		}
		for i := range t {
			v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return t, fmt.Errorf("malformed hex color %q", s)
			}
			t[i] = float64(v)
		}
		return t, nil
	}
	if !strings.HasPrefix(s, "rgb(") || !strings.HasSuffix(s, ")") {
		return t, fmt.Errorf("malformed rgb color %q", s)
	}
	parts := strings.Split(s[len("rgb("):len(s)-1], ",")
	if len(parts) != 3 {
		return t, fmt.Errorf("malformed rgb color %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return t, fmt.Errorf("malformed rgb color %q", s)
		}
		t[i] = v
	}
	return t, nil
}

// Label formats t as "rgb(r, g, b)". Components are written the way
// Python writes floats, so 31 becomes "31.0".
func Label(t Tuple) string {
	return fmt.Sprintf("rgb(%s, %s, %s)", pyFloat(t[0]), pyFloat(t[1]), pyFloat(t[2]))
}

func pyFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// To255 converts a unit-scale Tuple to the 8-bit scale.
func To255(t Tuple) Tuple {
	return Tuple{t[0] * 255, t[1] * 255, t[2] * 255}
}

// From255 converts an 8-bit Tuple to the unit scale.
func From255(t Tuple) Tuple {
	return Tuple{t[0] / 255, t[1] / 255, t[2] / 255}
}

// Round rounds each component half to even.
func Round(t Tuple) Tuple {
	return Tuple{math.RoundToEven(t[0]), math.RoundToEven(t[1]), math.RoundToEven(t[2])}
}

// FindIntermediate returns the color a fraction x of the way from lo
// to hi.
func FindIntermediate(lo, hi Tuple, x float64) Tuple {
	return Tuple{
		lo[0] + x*(hi[0]-lo[0]),
		lo[1] + x*(hi[1]-lo[1]),
		lo[2] + x*(hi[2]-lo[2]),
	}
}

// NColors returns n colors evenly spaced from lo to hi inclusive.
func NColors(lo, hi Tuple, n int) []Tuple {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Tuple{lo}
	}
	var incr Tuple
	for i := range incr {
		incr[i] = (hi[i] - lo[i]) / float64(n-1)
	}
	out := make([]Tuple, n)
	for k := range out {
		for i := range lo {
			out[k][i] = lo[i] + float64(k)*incr[i]
		}
	}
	return out
}
