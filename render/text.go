// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gocolorbar.org/colorbar/colors"
)

// face is the fixed bitmap face used for all colorbar annotation.
var face = basicfont.Face7x13

// textWidth returns the advance width of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// textHeight returns the face glyph height in pixels.
func textHeight() int {
	return face.Metrics().Height.Ceil()
}

// textAscent returns the face ascent in pixels, for placing a
// baseline below a given top edge.
func textAscent() int {
	return face.Metrics().Ascent.Ceil()
}

// drawText renders s onto dst with its baseline starting at (x, y).
func drawText(dst *image.NRGBA, s string, x, y int, clr color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  colors.Uniform(clr),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawTextCentered renders s horizontally centered on cx with its
// baseline at y.
func drawTextCentered(dst *image.NRGBA, s string, cx, y int, clr color.Color) {
	drawText(dst, s, cx-textWidth(s)/2, y, clr)
}
