// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"image/color"
	"testing"

	"github.com/aclements/figfactory/figure"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	for _, test := range []struct {
		in   Tuple
		want string
	}{
		{Tuple{143, 123, 97}, "rgb(143.0, 123.0, 97.0)"},
		{Tuple{166.25, 167.5, 208}, "rgb(166.25, 167.5, 208.0)"},
		{Tuple{0, 0, 0}, "rgb(0.0, 0.0, 0.0)"},
	} {
		if got := Label(test.in); got != test.want {
			t.Errorf("Label(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestUnlabel(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Tuple
		ok   bool
	}{
		{"rgb(31, 119, 180)", Tuple{31, 119, 180}, true},
		{"rgb(05,105,105)", Tuple{5, 105, 105}, true},
		{"rgb(166.25, 167.5, 208.0)", Tuple{166.25, 167.5, 208}, true},
		{"#1f77b4", Tuple{31, 119, 180}, true},
		{"rgb(1, 2)", Tuple{}, false},
		{"red", Tuple{}, false},
		{"#12345", Tuple{}, false},
	} {
		got, err := Unlabel(test.in)
		if !test.ok {
			if err == nil {
				t.Errorf("Unlabel(%q) succeeded, want error", test.in)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("Unlabel(%q) = %v, %v, want %v", test.in, got, err, test.want)
		}
	}
}

func TestNColors(t *testing.T) {
	got := NColors(Tuple{128, 0, 38}, Tuple{255, 255, 204}, 2)
	want := []Tuple{{128, 0, 38}, {255, 255, 204}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NColors mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []Tuple{{1, 2, 3}}, NColors(Tuple{1, 2, 3}, Tuple{4, 5, 6}, 1))
	require.Len(t, NColors(Tuple{0, 0, 0}, Tuple{255, 255, 255}, 5), 5)
}

func TestFindIntermediate(t *testing.T) {
	lo, _ := Unlabel("rgb(220,220,220)")
	hi, _ := Unlabel("rgb(5,10,172)")
	require.Equal(t, Tuple{166.25, 167.5, 208}, FindIntermediate(lo, hi, 0.25))
}

func TestValidate(t *testing.T) {
	got, err := Validate("Blues", Colors)
	require.NoError(t, err)
	require.Equal(t, []Tuple{{5, 10, 172}, {220, 220, 220}}, got)

	got, err = Validate(nil, Colormap)
	require.NoError(t, err)
	require.Equal(t, []Tuple{{31, 119, 180}, {255, 127, 14}}, got)

	got, err = Validate([]Tuple{{0.2, 0.4, 0.6}}, Colormap)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{51, 102, 153}, got[0][:], 1e-9)

	got, err = Validate([]interface{}{"rgb(1, 2, 3)", []interface{}{0.0, 1, 0.0}}, Colors)
	require.NoError(t, err)
	require.Equal(t, []Tuple{{1, 2, 3}, {0, 255, 0}}, got)

	for _, test := range []struct {
		spec interface{}
		kind Kind
		msg  string
	}{
		{3, Colormap, "If 'colormap' is a list, then its items must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c are between 0 and 1 inclusive and x,y,z are between 0 and 255 inclusive."},
		{25, Colors, "If 'colors' is a list then its items must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c are between 0 and 1 inclusive and x,y,z are between 0 and 255 inclusive."},
		{[]string{"rgb(1, 2, 3)", "rgb(4, 5, 600)"}, Colormap, "Whoops! The elements in your rgb colormap tuples cannot exceed 255.0."},
		{[]Tuple{{0.2, 0.4, 0.6}, {0.8, 1.0, 1.2}}, Colormap, "Whoops! The elements in your rgb colormap tuples cannot exceed 1.0."},
		{[]string{"rgb(1, 2, 3)", "rgb(300, 2, 3)"}, Colors, "Whoops! The elements in your rgb colors tuples cannot exceed 255.0."},
		{[][3]float64{{0.1, 0.2, 0.3}, {0.6, 0.8, 1.2}}, Colors, "Whoops! The elements in your rgb colors tuples cannot exceed 1.0."},
		{"fake_scale", Palette, "You must pick a valid plotly colorscale name."},
		{1, Palette, "The items of 'palette' must be tripets of the form a,b,c or 'rgbx,y,z' where a,b,c belong to the interval 0,1 and x,y,z belong to 0,255."},
	} {
		_, err := Validate(test.spec, test.kind)
		var ferr *figure.Error
		require.True(t, errors.As(err, &ferr), "Validate(%v) error %v", test.spec, err)
		require.Equal(t, test.msg, err.Error())
	}

	_, err = Validate("foo", Colormap)
	require.ErrorContains(t, err, "You must pick a valid plotly colorscale name from [Blackbody")
	_, err = Validate("Weird", Colors)
	require.ErrorContains(t, err, "Your choices for colorscales are:")
}

func TestScaleMap(t *testing.T) {
	s := Scale{Tuple{0, 0, 0}, Tuple{255, 255, 255}}
	require.Equal(t, color.RGBA{0, 0, 0, 255}, s.Map(-1))
	require.Equal(t, color.RGBA{128, 128, 128, 255}, s.Map(0.5))
	require.Equal(t, color.RGBA{255, 255, 255, 255}, s.Map(2))
}

func TestSwatch(t *testing.T) {
	lo, hi, ok := LookupScale("Greys")
	require.True(t, ok)
	img := Swatch(Scale{lo, hi}, 64, 8)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())
	left := img.RGBAAt(0, 4)
	right := img.RGBAAt(63, 4)
	if left.R >= right.R {
		t.Errorf("swatch not increasing: left %v, right %v", left, right)
	}
}
