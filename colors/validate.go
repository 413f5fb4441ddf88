// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strings"

	"github.com/aclements/figfactory/figure"
)

// Kind identifies which argument a color specification was passed
// as. The accepted forms are the same for every kind, but defaults
// and error messages differ.
type Kind int

const (
	// Colormap is the colormap of a triangulated surface.
	Colormap Kind = iota
	// Colors is the color list of a Gantt chart.
	Colors
	// Palette is the palette of a themed scatterplot matrix.
	Palette
)

type kindMessages struct {
	list, exceed255, exceed1, name string
	nameList                       bool
}

var messages = map[Kind]kindMessages{
	Colormap: {
		list:      "If 'colormap' is a list, then its items must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c are between 0 and 1 inclusive and x,y,z are between 0 and 255 inclusive.",
		exceed255: "Whoops! The elements in your rgb colormap tuples cannot exceed 255.0.",
		exceed1:   "Whoops! The elements in your rgb colormap tuples cannot exceed 1.0.",
		name:      "You must pick a valid plotly colorscale name from ",
		nameList:  true,
	},
	Colors: {
		list:      "If 'colors' is a list then its items must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c are between 0 and 1 inclusive and x,y,z are between 0 and 255 inclusive.",
		exceed255: "Whoops! The elements in your rgb colors tuples cannot exceed 255.0.",
		exceed1:   "Whoops! The elements in your rgb colors tuples cannot exceed 1.0.",
		name:      "If you input a string for 'colors', it must either be a Plotly colorscale name or an rgb color. Your choices for colorscales are: ",
		nameList:  true,
	},
	Palette: {
		list:      "The items of 'palette' must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c belong to the interval 0,1 and x,y,z belong to 0,255.",
		exceed255: "The items of 'palette' must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c belong to the interval 0,1 and x,y,z belong to 0,255.",
		exceed1:   "The items of 'palette' must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c belong to the interval 0,1 and x,y,z belong to 0,255.",
		name:      "You must pick a valid plotly colorscale name.",
	},
}

// Validate checks a color specification and returns its colors on the
// 8-bit scale.
//
// spec may be
//   - nil, for the default colors of kind;
//   - a colorscale name (see LookupScale), giving its two endpoints;
//   - for the Colors kind, a single "rgb(r, g, b)" string;
//   - a []string of "rgb(r, g, b)" or "#rrggbb" colors on the 8-bit scale;
//   - a []Tuple or [][3]float64 of colors on the unit scale;
//   - a []interface{} mixing the two forms above, as decoded from
//     JSON or YAML, where unit-scale colors are 3-element lists.
//
// All failures are *figure.Error values.
func Validate(spec interface{}, kind Kind) ([]Tuple, error) {
	msgs := messages[kind]
	switch spec := spec.(type) {
	case nil:
		return defaults(kind), nil

	case string:
		if kind == Colors && strings.HasPrefix(spec, "rgb(") {
			return validateStrings([]string{spec}, msgs)
		}
		lo, hi, ok := LookupScale(spec)
		if !ok {
			if msgs.nameList {
				return nil, figure.Errorf("%s%v", msgs.name, ScaleNames())
			}
			return nil, &figure.Error{Msg: msgs.name}
		}
		return []Tuple{lo, hi}, nil

	case []string:
		return validateStrings(spec, msgs)

	case []Tuple:
		return validateUnit(spec, msgs)

	case [][3]float64:
		ts := make([]Tuple, len(spec))
		for i, c := range spec {
			ts[i] = Tuple(c)
		}
		return validateUnit(ts, msgs)

	case []interface{}:
		var out []Tuple
		for _, item := range spec {
			var (
				ts  []Tuple
				err error
			)
			switch item := item.(type) {
			case string:
				ts, err = validateStrings([]string{item}, msgs)
			case []interface{}:
				t, ok := tupleOf(item)
				if !ok {
					return nil, &figure.Error{Msg: msgs.list}
				}
				ts, err = validateUnit([]Tuple{t}, msgs)
			default:
				return nil, &figure.Error{Msg: msgs.list}
			}
			if err != nil {
				return nil, err
			}
			out = append(out, ts...)
		}
		if len(out) == 0 {
			return nil, &figure.Error{Msg: msgs.list}
		}
		return out, nil
	}
	return nil, &figure.Error{Msg: msgs.list}
}

func defaults(kind Kind) []Tuple {
	cs := DefaultPlotlyColors
	if kind != Colors {
		cs = cs[:2]
	}
	out := make([]Tuple, len(cs))
	for i, c := range cs {
		out[i], _ = Unlabel(c)
	}
	return out
}

func validateStrings(cs []string, msgs kindMessages) ([]Tuple, error) {
	if len(cs) == 0 {
		return nil, &figure.Error{Msg: msgs.list}
	}
	out := make([]Tuple, len(cs))
	for i, c := range cs {
		t, err := Unlabel(c)
		if err != nil {
			return nil, &figure.Error{Msg: msgs.list}
		}
		for _, v := range t {
			if v > 255 {
				return nil, &figure.Error{Msg: msgs.exceed255}
			}
			if v < 0 {
				return nil, &figure.Error{Msg: msgs.list}
			}
		}
		out[i] = t
	}
	return out, nil
}

func validateUnit(ts []Tuple, msgs kindMessages) ([]Tuple, error) {
	if len(ts) == 0 {
		return nil, &figure.Error{Msg: msgs.list}
	}
	out := make([]Tuple, len(ts))
	for i, t := range ts {
		for _, v := range t {
			if v > 1 {
				return nil, &figure.Error{Msg: msgs.exceed1}
			}
			if v < 0 {
				return nil, &figure.Error{Msg: msgs.list}
			}
		}
		out[i] = To255(t)
	}
	return out, nil
}

func tupleOf(item []interface{}) (Tuple, bool) {
	var t Tuple
	if len(item) != 3 {
		return t, false
	}
	for i, x := range item {
		switch x := x.(type) {
		case float64:
			t[i] = x
		case int:
			t[i] = float64(x)
		default:
			return t, false
		}
	}
	return t, true
}
