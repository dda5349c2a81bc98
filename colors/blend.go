// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend returns a color that is the given percent blend between the first
// and second color: 10 = 10% of the first and 90% of the second, etc.
// The blend is computed in the given color space; [RGB], [HSV], [HCL],
// [LCh], and [Lab] are supported, and everything else blends in RGB.
// Alpha is always blended linearly.
func Blend(sp Space, pct float32, x, y color.Color) color.RGBA {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	t := float64(1 - pct/100)
	xr := AsRGBA(x)
	yr := AsRGBA(y)
	cx, okx := colorful.MakeColor(color.NRGBA{xr.R, xr.G, xr.B, 255})
	cy, oky := colorful.MakeColor(color.NRGBA{yr.R, yr.G, yr.B, 255})
	if !okx || !oky {
		return xr
	}
	var cf colorful.Color
	switch sp {
	case HSV:
		cf = cx.BlendHsv(cy, t)
	case HCL:
		cf = cx.BlendHcl(cy, t)
	case LCh:
		cf = cx.BlendLuvLCh(cy, t)
	case Lab:
		cf = cx.BlendLab(cy, t)
	default:
		cf = cx.BlendRgb(cy, t)
	}
	cf = cf.Clamped()
	r, g, b := cf.RGB255()
	a := float64(xr.A)*(1-t) + float64(yr.A)*t
	return color.RGBA{r, g, b, uint8(a + 0.5)}
}

// BlendRGB returns a color that is the given percent blend between
// the first and second color in RGB space.
func BlendRGB(pct float32, x, y color.Color) color.RGBA {
	return Blend(RGB, pct, x, y)
}
