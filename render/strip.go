// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
	"gocolorbar.org/colorbar/cmap"
)

// ColormapStrip renders the colormap as a bare horizontal gradient
// strip of the given size, with no axis or frame.
func ColormapStrip(cm cmap.ColorMap, width, height int) *image.NRGBA {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		t := (float32(x) + 0.5) / float32(width)
		c := cm.Map(t)
		nc := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, nc)
		}
	}
	return img
}

// Scale returns img resized by the given factor, using linear
// resampling. Factors of exactly 1, or 0 and below, return img
// unchanged.
func Scale(img image.Image, factor float32) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := int(math32.Round(float32(b.Dx()) * factor))
	h := int(math32.Round(float32(b.Dy()) * factor))
	if w < 1 || h < 1 {
		return img
	}
	return transform.Resize(img, w, h, transform.Linear)
}
