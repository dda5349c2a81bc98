// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// gridPad is the spacing around and between grid cells.
const gridPad = 8

// GridItem is one titled cell of a [Grid] image.
type GridItem struct {
	Title string
	Image image.Image
}

// Grid lays the given images out in a titled grid with the given
// number of columns, capped at 2 so colorbar labels stay readable.
// A nil or empty items slice returns an empty white image.
func Grid(items []GridItem, cols int) *image.NRGBA {
	if cols < 1 || cols > 2 {
		cols = 2
	}
	if len(items) < cols {
		cols = max(len(items), 1)
	}
	rows := (len(items) + cols - 1) / cols

	cellW, cellH := 0, 0
	for _, it := range items {
		if it.Image == nil {
			continue
		}
		b := it.Image.Bounds()
		cellW = max(cellW, b.Dx())
		cellH = max(cellH, b.Dy())
		cellW = max(cellW, textWidth(it.Title))
	}
	titleRow := textHeight() + pad
	cellH += titleRow

	imgW := gridPad + cols*(cellW+gridPad)
	imgH := gridPad + rows*(cellH+gridPad)
	img := image.NewNRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, it := range items {
		col := i % cols
		row := i / cols
		cx := gridPad + col*(cellW+gridPad)
		cy := gridPad + row*(cellH+gridPad)
		drawTextCentered(img, it.Title, cx+cellW/2, cy+textAscent(), color.Black)
		if it.Image == nil {
			continue
		}
		b := it.Image.Bounds()
		off := image.Pt(cx+(cellW-b.Dx())/2, cy+titleRow)
		draw.Draw(img, image.Rectangle{Min: off, Max: off.Add(b.Size())}, it.Image, b.Min, draw.Src)
	}
	return img
}
