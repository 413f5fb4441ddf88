// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	"golang.org/x/image/draw"
)

// A Scale is a two-color gradient on the 8-bit scale. It implements
// palette.Continuous.
type Scale struct {
	Lo, Hi Tuple
}

var _ palette.Continuous = Scale{}

// Map returns the color a fraction x of the way along s. x is clamped
// to [0, 1].
func (s Scale) Map(x float64) color.Color {
	x = math.Max(0, math.Min(1, x))
	t := Round(FindIntermediate(s.Lo, s.Hi, x))
	return color.RGBA{clamp8(t[0]), clamp8(t[1]), clamp8(t[2]), 255}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	} else if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Swatch renders p as a horizontal gradient of the given size.
//
// The gradient is drawn at twice the target resolution and scaled
// down bilinearly, which smooths the steps between neighboring
// 8-bit colors.
func Swatch(p palette.Continuous, width, height int) *image.RGBA {
	sw, sh := 2*width, 2*height
	src := image.NewRGBA(image.Rect(0, 0, sw, sh))
	for x := 0; x < sw; x++ {
		c := p.Map(float64(x) / float64(max(sw-1, 1)))
		for y := 0; y < sh; y++ {
			src.Set(x, y, c)
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
