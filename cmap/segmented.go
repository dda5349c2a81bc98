// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"image/color"

	"gocolorbar.org/colorbar/colors"
)

// Stop is a single anchor stop in a [Segmented] colormap.
type Stop struct {

	// Color is the color of the stop.
	Color color.RGBA

	// Pos is the position of the stop between 0 and 1.
	Pos float32
}

// Segmented is a continuous [ColorMap] defined by anchor color stops
// that are interpolated in the Blend color space.
type Segmented struct {
	Base

	// Stops are the anchor stops, in increasing position order.
	Stops []Stop
}

// NewSegmented returns a new [Segmented] colormap with the given name
// and colors as evenly spaced stops from 0 to 1.
func NewSegmented(name string, clrs ...color.RGBA) *Segmented {
	sg := &Segmented{Base: Base{Name: name}}
	n := len(clrs)
	for i, c := range clrs {
		pos := float32(0)
		if n > 1 {
			pos = float32(i) / float32(n-1)
		}
		sg.Stops = append(sg.Stops, Stop{Color: c, Pos: pos})
	}
	return sg
}

// AddStop adds a new stop with the given color and position.
func (sg *Segmented) AddStop(c color.RGBA, pos float32) *Segmented {
	sg.Stops = append(sg.Stops, Stop{Color: c, Pos: pos})
	return sg
}

// Map returns the color at the given position, interpolating between
// the two surrounding stops in the Blend color space.
func (sg *Segmented) Map(pos float32) color.RGBA {
	c, pos, done := sg.clamp(pos)
	if done {
		return c
	}
	n := len(sg.Stops)
	if n == 0 {
		return color.RGBA{}
	}
	if pos <= sg.Stops[0].Pos {
		return sg.Stops[0].Color
	}
	if pos >= sg.Stops[n-1].Pos {
		return sg.Stops[n-1].Color
	}
	place := 1
	for place < n && pos > sg.Stops[place].Pos {
		place++
	}
	lo, hi := sg.Stops[place-1], sg.Stops[place]
	if hi.Pos == lo.Pos {
		return hi.Color
	}
	t := (pos - lo.Pos) / (hi.Pos - lo.Pos)
	return colors.Blend(sg.Blend, 100*(1-t), lo.Color, hi.Color)
}

// Len returns the number of anchor stops.
func (sg *Segmented) Len() int {
	return len(sg.Stops)
}

// ChannelStop is one point of a per-channel curve in a [Channels]
// colormap: at position Pos, the channel value approaches Low from
// below and leaves as High above, allowing discontinuities.
type ChannelStop struct {
	Pos  float32
	Low  float32
	High float32
}

// Channels is a continuous [ColorMap] defined by independent
// piecewise-linear curves for each color channel. Each curve must
// have monotonically increasing positions starting at 0 and ending
// at 1. An empty Alpha curve means fully opaque.
type Channels struct {
	Base

	Red   []ChannelStop
	Green []ChannelStop
	Blue  []ChannelStop
	Alpha []ChannelStop
}

// NewChannels returns a new [Channels] colormap with the given name.
func NewChannels(name string) *Channels {
	return &Channels{Base: Base{Name: name}}
}

// Map returns the color at the given position, evaluating each
// channel curve independently.
func (ch *Channels) Map(pos float32) color.RGBA {
	c, pos, done := ch.clamp(pos)
	if done {
		return c
	}
	r := channelValue(ch.Red, pos)
	g := channelValue(ch.Green, pos)
	b := channelValue(ch.Blue, pos)
	a := float32(1)
	if len(ch.Alpha) > 0 {
		a = channelValue(ch.Alpha, pos)
	}
	return color.RGBA{cu8(r), cu8(g), cu8(b), cu8(a)}
}

// Len returns the largest number of stops on any channel curve.
func (ch *Channels) Len() int {
	n := len(ch.Red)
	if len(ch.Green) > n {
		n = len(ch.Green)
	}
	if len(ch.Blue) > n {
		n = len(ch.Blue)
	}
	if len(ch.Alpha) > n {
		n = len(ch.Alpha)
	}
	return n
}

// channelValue evaluates a channel curve at the given position,
// interpolating between the High value of the stop below and the
// Low value of the stop above.
func channelValue(curve []ChannelStop, pos float32) float32 {
	n := len(curve)
	if n == 0 {
		return 0
	}
	if pos <= curve[0].Pos {
		return curve[0].High
	}
	if pos >= curve[n-1].Pos {
		return curve[n-1].Low
	}
	place := 1
	for place < n && pos > curve[place].Pos {
		place++
	}
	lo, hi := curve[place-1], curve[place]
	if hi.Pos == lo.Pos {
		return hi.Low
	}
	t := (pos - lo.Pos) / (hi.Pos - lo.Pos)
	return lo.High + t*(hi.Low-lo.High)
}

func cu8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
