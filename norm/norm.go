// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm provides data normalization engines that map data
// values onto the normalized 0-1 range of a colormap.
package norm

// Norm is the interface that all normalization types satisfy.
type Norm interface {
	// Map returns the normalized position for the given data value.
	// Values inside the data limits map to 0-1; NaN maps to NaN.
	Map(v float32) float32

	// Inverse returns the data value at the given normalized position,
	// for tick placement.
	Inverse(t float32) float32

	// Limits returns the data values mapped onto 0 and 1.
	Limits() (vmin, vmax float32)
}

// Linear is a linear [Norm] mapping the range Vmin to Vmax onto 0-1.
type Linear struct {

	// Vmin is the data value mapped to 0.
	Vmin float32

	// Vmax is the data value mapped to 1.
	Vmax float32

	// Clip clamps out-of-range results to 0-1.
	Clip bool
}

// NewLinear returns a new [Linear] norm with the given limits.
func NewLinear(vmin, vmax float32) *Linear {
	return &Linear{Vmin: vmin, Vmax: vmax}
}

func (ln *Linear) Map(v float32) float32 {
	t := (v - ln.Vmin) / (ln.Vmax - ln.Vmin)
	if ln.Clip {
		t = clamp01(t)
	}
	return t
}

func (ln *Linear) Inverse(t float32) float32 {
	return ln.Vmin + t*(ln.Vmax-ln.Vmin)
}

func (ln *Linear) Limits() (vmin, vmax float32) {
	return ln.Vmin, ln.Vmax
}

// NoNorm is a [Norm] that passes data values through unchanged,
// for data that is already normalized.
type NoNorm struct{}

func (nn *NoNorm) Map(v float32) float32 {
	return v
}

func (nn *NoNorm) Inverse(t float32) float32 {
	return t
}

func (nn *NoNorm) Limits() (vmin, vmax float32) {
	return 0, 1
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
