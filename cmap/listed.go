// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import "image/color"

// Listed is a discrete [ColorMap] with a fixed list of colors.
// A position selects the containing color bucket, with no
// interpolation between colors.
type Listed struct {
	Base

	// Colors are the colors of the map, dividing the 0-1 range
	// into equal buckets.
	Colors []color.RGBA
}

// NewListed returns a new [Listed] colormap with the given name and colors.
func NewListed(name string, clrs ...color.RGBA) *Listed {
	return &Listed{Base: Base{Name: name}, Colors: clrs}
}

// Map returns the color of the bucket containing the given position.
func (l *Listed) Map(pos float32) color.RGBA {
	c, pos, done := l.clamp(pos)
	if done {
		return c
	}
	n := len(l.Colors)
	if n == 0 {
		return color.RGBA{}
	}
	i := int(pos * float32(n))
	if i >= n {
		i = n - 1
	}
	return l.Colors[i]
}

// Len returns the number of colors in the map.
func (l *Listed) Len() int {
	return len(l.Colors)
}
