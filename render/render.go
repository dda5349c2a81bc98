// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws colormaps and colorbars into images.
//
// A colorbar is a horizontal gradient strip with an axis below it:
// tick marks, tick labels, and an optional axis label. Discrete norms
// render as equal-width regions with ticks at the region boundaries,
// and out-of-range extensions render as triangles at the strip ends.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"gocolorbar.org/colorbar/cmap"
	"gocolorbar.org/colorbar/norm"
)

const (
	defaultWidth      = 512
	defaultHeight     = 64
	defaultNTicks     = 5
	defaultExtendFrac = 0.05

	// marginX leaves room on each side for tick labels that
	// overhang the strip ends.
	marginX = 24
	tickLen = 4
	pad     = 4
)

// Options configures how [Colorbar] draws a colorbar.
// The zero value renders a 512x64 strip with automatic ticks.
type Options struct {

	// Width is the width of the gradient strip in pixels,
	// including any extensions. Default is 512.
	Width int

	// Height is the height of the gradient strip in pixels.
	// Default is 64.
	Height int

	// NTicks is the target number of automatic ticks.
	// Default is 5. Ignored when Ticks is set.
	NTicks int

	// Ticks places ticks at the given data values instead of
	// choosing them automatically.
	Ticks []float32

	// TickLabels overrides the formatted labels of Ticks,
	// matched by index.
	TickLabels []string

	// Label is the axis label drawn below the tick labels.
	Label string

	// Extend draws out-of-range markers at the strip ends.
	Extend norm.Extend

	// ExtendFrac is the length of each extension as a fraction
	// of the strip width. Default is 0.05.
	ExtendFrac float32

	// ExtendRect draws the extensions as rectangles instead of
	// triangles.
	ExtendRect bool
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.NTicks <= 0 {
		o.NTicks = defaultNTicks
	}
	if o.ExtendFrac <= 0 {
		o.ExtendFrac = defaultExtendFrac
	}
}

// Colorbar renders the given colormap through the given norm as a
// horizontal colorbar. A nil norm defaults to a linear 0-1 norm,
// and nil opts to the default [Options]. The result has straight
// (non-premultiplied) alpha, so translucent colormap colors stay
// translucent in the output.
func Colorbar(cm cmap.ColorMap, nrm norm.Norm, opts *Options) *image.NRGBA {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.setDefaults()
	if nrm == nil {
		nrm = norm.NewLinear(0, 1)
	}

	extLen := int(o.ExtendFrac * float32(o.Width))
	loExt, hiExt := 0, 0
	if o.Extend.Lower() {
		loExt = extLen
	}
	if o.Extend.Upper() {
		hiExt = extLen
	}

	imgW := o.Width + 2*marginX
	imgH := o.Height + tickLen + pad + textHeight()
	if o.Label != "" {
		imgH += pad + textHeight()
	}
	img := image.NewNRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	x0 := marginX + loExt
	x1 := marginX + o.Width - hiExt
	innerW := x1 - x0

	for x := x0; x < x1; x++ {
		t := (float32(x-x0) + 0.5) / float32(innerW)
		c := cm.Map(nrm.Map(nrm.Inverse(t)))
		nc := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		for y := 0; y < o.Height; y++ {
			img.SetNRGBA(x, y, nc)
		}
	}

	under, over := extensionColors(cm, nrm)
	if loExt > 0 {
		fillExtension(img, marginX, x0, o.Height, under, true, o.ExtendRect)
	}
	if hiExt > 0 {
		fillExtension(img, x1, x1+hiExt, o.Height, over, false, o.ExtendRect)
	}

	drawFrame(img, &o, x0, x1, loExt, hiExt)

	fg := color.NRGBA{A: 255}
	tickBaseline := o.Height + tickLen + pad + textAscent()
	for _, tk := range resolveTicks(nrm, &o) {
		pos, ok := axisPos(nrm, tk.Value)
		if !ok {
			continue
		}
		x := x0 + int(pos*float32(innerW-1)+0.5)
		for y := o.Height; y < o.Height+tickLen; y++ {
			img.SetNRGBA(x, y, fg)
		}
		drawTextCentered(img, tk.Label, x, tickBaseline, color.Black)
	}

	if o.Label != "" {
		labelBaseline := o.Height + tickLen + pad + textHeight() + pad + textAscent()
		drawTextCentered(img, o.Label, imgW/2, labelBaseline, color.Black)
	}
	return img
}

// extensionColors returns the colors of the under and over extension
// markers. For boundary norms these honor any colormap colors the
// norm reserves for out-of-range regions.
func extensionColors(cm cmap.ColorMap, nrm norm.Norm) (under, over color.NRGBA) {
	var uc, oc color.RGBA
	if bn, ok := boundaryOf(nrm); ok && bn.NumRegions() > 0 {
		b := bn.Boundaries
		uc = cm.Map(bn.Map(b[0] - 1))
		oc = cm.Map(bn.Map(b[len(b)-1] + 1))
	} else {
		uc = cmap.UnderColor(cm)
		oc = cmap.OverColor(cm)
	}
	under = color.NRGBA{R: uc.R, G: uc.G, B: uc.B, A: uc.A}
	over = color.NRGBA{R: oc.R, G: oc.G, B: oc.B, A: oc.A}
	return under, over
}

// boundaryOf returns the boundary form of discrete norms.
func boundaryOf(nrm norm.Norm) (*norm.Boundary, bool) {
	switch n := nrm.(type) {
	case *norm.Boundary:
		return n, true
	case *norm.Category:
		return n.AsBoundary(), true
	}
	return nil, false
}

// resolveTicks returns the ticks to draw: explicit ticks if given,
// category labels for a category norm, the boundaries for a boundary
// norm, decades for a log norm, and automatic ticks otherwise.
func resolveTicks(nrm norm.Norm, o *Options) []Tick {
	if len(o.Ticks) > 0 {
		ticks := make([]Tick, len(o.Ticks))
		for i, v := range o.Ticks {
			lb := formatTick(v)
			if i < len(o.TickLabels) {
				lb = o.TickLabels[i]
			}
			ticks[i] = Tick{Value: v, Label: lb}
		}
		return ticks
	}
	switch n := nrm.(type) {
	case *norm.Category:
		vals, labels := n.Ticks()
		ticks := make([]Tick, len(vals))
		for i := range vals {
			ticks[i] = Tick{Value: vals[i], Label: labels[i]}
		}
		return ticks
	case *norm.Boundary:
		ticks := make([]Tick, len(n.Boundaries))
		for i, v := range n.Boundaries {
			ticks[i] = Tick{Value: v, Label: formatTick(v)}
		}
		return ticks
	}
	return normTicks(nrm, o.NTicks)
}

// axisPos returns the 0-1 position of the data value v along the
// gradient strip, and whether it falls within the drawable range.
// Boundary regions occupy equal widths regardless of their data
// extent, matching how the gradient is drawn.
func axisPos(nrm norm.Norm, v float32) (float32, bool) {
	if math32.IsNaN(v) {
		return 0, false
	}
	if bn, ok := boundaryOf(nrm); ok {
		b := bn.Boundaries
		nr := bn.NumRegions()
		if nr == 0 || v < b[0] || v > b[nr] {
			return 0, false
		}
		i := 0
		for i < nr-1 && v >= b[i+1] {
			i++
		}
		var frac float32
		if seg := b[i+1] - b[i]; seg > 0 {
			frac = (v - b[i]) / seg
		}
		if frac > 1 {
			frac = 1
		}
		return (float32(i) + frac) / float32(nr), true
	}
	t := nrm.Map(v)
	if math32.IsNaN(t) || t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// fillExtension fills an extension marker spanning [xa, xb) across
// the strip height, as a triangle pointing away from the strip, or
// as a rectangle.
func fillExtension(img *image.NRGBA, xa, xb, height int, c color.NRGBA, tipLeft, rect bool) {
	w := xb - xa
	if w <= 0 {
		return
	}
	ch := float32(height) / 2
	for x := xa; x < xb; x++ {
		frac := float32(1)
		if !rect {
			if tipLeft {
				frac = (float32(x-xa) + 0.5) / float32(w)
			} else {
				frac = (float32(xb-x) - 0.5) / float32(w)
			}
		}
		hh := frac * ch
		ylo := int(math32.Ceil(ch - hh))
		yhi := int(math32.Floor(ch + hh))
		for y := ylo; y < yhi; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawFrame outlines the strip and its extensions in black.
func drawFrame(img *image.NRGBA, o *Options, x0, x1, loExt, hiExt int) {
	fg := color.NRGBA{A: 255}
	h := o.Height
	cy := h / 2
	for x := x0; x < x1; x++ {
		img.SetNRGBA(x, 0, fg)
		img.SetNRGBA(x, h-1, fg)
	}
	if loExt > 0 {
		xa := x0 - loExt
		if o.ExtendRect {
			for x := xa; x < x0; x++ {
				img.SetNRGBA(x, 0, fg)
				img.SetNRGBA(x, h-1, fg)
			}
			for y := 0; y < h; y++ {
				img.SetNRGBA(xa, y, fg)
			}
		} else {
			drawLine(img, x0, 0, xa, cy, fg)
			drawLine(img, x0, h-1, xa, cy, fg)
		}
	} else {
		for y := 0; y < h; y++ {
			img.SetNRGBA(x0, y, fg)
		}
	}
	if hiExt > 0 {
		xb := x1 + hiExt
		if o.ExtendRect {
			for x := x1; x < xb; x++ {
				img.SetNRGBA(x, 0, fg)
				img.SetNRGBA(x, h-1, fg)
			}
			for y := 0; y < h; y++ {
				img.SetNRGBA(xb-1, y, fg)
			}
		} else {
			drawLine(img, x1-1, 0, xb-1, cy, fg)
			drawLine(img, x1-1, h-1, xb-1, cy, fg)
		}
	} else {
		for y := 0; y < h; y++ {
			img.SetNRGBA(x1-1, y, fg)
		}
	}
}

// drawLine draws a 1px line between the given points.
func drawLine(img *image.NRGBA, xa, ya, xb, yb int, c color.NRGBA) {
	dx := abs(xb - xa)
	dy := -abs(yb - ya)
	sx := 1
	if xa > xb {
		sx = -1
	}
	sy := 1
	if ya > yb {
		sy = -1
	}
	err := dx + dy
	for {
		img.SetNRGBA(xa, ya, c)
		if xa == xb && ya == yb {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			xa += sx
		}
		if e2 <= dx {
			err += dx
			ya += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
