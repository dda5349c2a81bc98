// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmap provides colormaps, which map normalized 0-1
// positions to colors, in discrete and continuous forms.
package cmap

import (
	"image/color"

	"github.com/chewxy/math32"
	"gocolorbar.org/colorbar/colors"
)

// ColorMap is the interface that all colormap types satisfy.
type ColorMap interface {
	// AsBase returns the [Base] of the colormap.
	AsBase() *Base

	// Map returns the color at the given normalized position.
	// Positions below 0 return the Under color if set, and otherwise
	// the first color; positions above 1 return the Over color if set,
	// and otherwise the last color. NaN positions return the Bad color.
	Map(pos float32) color.RGBA

	// Len returns the number of defining colors of the colormap:
	// the number of list colors for a [Listed] colormap, and the
	// number of anchor stops for a continuous one.
	Len() int
}

// Base contains the data common to all colormap types.
type Base struct {

	// Name is the name of the colormap.
	Name string

	// Blend is the color space in which colors are interpolated.
	Blend colors.Space

	// Under is the color returned for positions below 0.
	// nil falls back on the color at position 0.
	Under *color.RGBA

	// Over is the color returned for positions above 1.
	// nil falls back on the color at position 1.
	Over *color.RGBA

	// Bad is the color returned for NaN positions.
	// nil means fully transparent.
	Bad *color.RGBA
}

// AsBase returns the [Base] of the colormap.
func (b *Base) AsBase() *Base {
	return b
}

// BadColor returns the color used for invalid (NaN) positions:
// Bad if set, otherwise fully transparent.
func (b *Base) BadColor() color.RGBA {
	if b.Bad != nil {
		return *b.Bad
	}
	return color.RGBA{}
}

// SetUnder sets the Under color.
func (b *Base) SetUnder(c color.RGBA) *Base {
	b.Under = &c
	return b
}

// SetOver sets the Over color.
func (b *Base) SetOver(c color.RGBA) *Base {
	b.Over = &c
	return b
}

// SetBad sets the Bad color.
func (b *Base) SetBad(c color.RGBA) *Base {
	b.Bad = &c
	return b
}

// UnderColor returns the color for positions below 0, given the
// colormap's color at position 0.
func UnderColor(cm ColorMap) color.RGBA {
	if u := cm.AsBase().Under; u != nil {
		return *u
	}
	return cm.Map(0)
}

// OverColor returns the color for positions above 1, given the
// colormap's color at position 1.
func OverColor(cm ColorMap) color.RGBA {
	if o := cm.AsBase().Over; o != nil {
		return *o
	}
	return cm.Map(1)
}

// clamp resolves an incoming position against the base colors:
// it returns the out-of-range or invalid color and true if one
// applies, and otherwise the position clamped to 0-1 and false.
func (b *Base) clamp(pos float32) (color.RGBA, float32, bool) {
	if math32.IsNaN(pos) {
		return b.BadColor(), 0, true
	}
	if pos < 0 {
		if b.Under != nil {
			return *b.Under, 0, true
		}
		return color.RGBA{}, 0, false
	}
	if pos > 1 {
		if b.Over != nil {
			return *b.Over, 0, true
		}
		return color.RGBA{}, 1, false
	}
	return color.RGBA{}, pos, false
}
