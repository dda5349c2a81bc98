// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"strings"
)

// ReversedSuffix is the name suffix designating the reversed
// version of a colormap.
const ReversedSuffix = "_r"

// ReversedName returns the name of the reversed version of the
// colormap with the given name: the [ReversedSuffix] is appended,
// or removed if already present.
func ReversedName(name string) string {
	if strings.HasSuffix(name, ReversedSuffix) {
		return strings.TrimSuffix(name, ReversedSuffix)
	}
	return name + ReversedSuffix
}

// Reverse returns a new colormap of the same type that runs in the
// opposite direction, named per [ReversedName], with the Under and
// Over colors swapped.
func Reverse(cm ColorMap) ColorMap {
	switch cm := cm.(type) {
	case *Listed:
		rv := &Listed{Base: reverseBase(&cm.Base)}
		rv.Colors = make([]color.RGBA, len(cm.Colors))
		for i, c := range cm.Colors {
			rv.Colors[len(cm.Colors)-1-i] = c
		}
		return rv
	case *Segmented:
		rv := &Segmented{Base: reverseBase(&cm.Base)}
		rv.Stops = make([]Stop, len(cm.Stops))
		for i, st := range cm.Stops {
			rv.Stops[len(cm.Stops)-1-i] = Stop{Color: st.Color, Pos: 1 - st.Pos}
		}
		return rv
	case *Channels:
		rv := &Channels{Base: reverseBase(&cm.Base)}
		rv.Red = reverseCurve(cm.Red)
		rv.Green = reverseCurve(cm.Green)
		rv.Blue = reverseCurve(cm.Blue)
		rv.Alpha = reverseCurve(cm.Alpha)
		return rv
	}
	// unknown type: sample it into a reversed Listed snapshot
	rs := Resample(cm, 256)
	return Reverse(rs)
}

func reverseBase(b *Base) Base {
	rb := *b
	rb.Name = ReversedName(b.Name)
	rb.Under, rb.Over = b.Over, b.Under
	return rb
}

func reverseCurve(curve []ChannelStop) []ChannelStop {
	if curve == nil {
		return nil
	}
	rv := make([]ChannelStop, len(curve))
	for i, cs := range curve {
		rv[len(curve)-1-i] = ChannelStop{Pos: 1 - cs.Pos, Low: cs.High, High: cs.Low}
	}
	return rv
}

// Resample returns a [Listed] snapshot of the given colormap with n
// colors, sampled at evenly spaced positions from 0 to 1. The name
// and out-of-range colors are retained.
func Resample(cm ColorMap, n int) *Listed {
	if n < 1 {
		n = 1
	}
	rs := &Listed{Base: *cm.AsBase()}
	rs.Colors = make([]color.RGBA, n)
	if n == 1 {
		rs.Colors[0] = cm.Map(0)
		return rs
	}
	for i := range rs.Colors {
		rs.Colors[i] = cm.Map(float32(i) / float32(n-1))
	}
	return rs
}

// Concat returns a [Listed] colormap concatenating the given
// colormaps, with each contributing the corresponding number of
// resampled colors.
func Concat(name string, cms []ColorMap, ns []int) (*Listed, error) {
	if len(cms) == 0 {
		return nil, fmt.Errorf("cmap.Concat: no colormaps given")
	}
	if len(ns) != len(cms) {
		return nil, fmt.Errorf("cmap.Concat: got %d sizes for %d colormaps", len(ns), len(cms))
	}
	cc := NewListed(name)
	for i, cm := range cms {
		if ns[i] < 1 {
			return nil, fmt.Errorf("cmap.Concat: got invalid size %d for colormap %q", ns[i], cm.AsBase().Name)
		}
		cc.Colors = append(cc.Colors, Resample(cm, ns[i]).Colors...)
	}
	return cc, nil
}
