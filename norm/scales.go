// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "github.com/chewxy/math32"

// TwoSlope is a [Norm] with two linear slopes meeting at a center
// value, which maps to 0.5. It is used for data with a natural
// midpoint, such as anomalies around zero.
type TwoSlope struct {

	// Vmin is the data value mapped to 0.
	Vmin float32

	// Vcenter is the data value mapped to 0.5.
	Vcenter float32

	// Vmax is the data value mapped to 1.
	Vmax float32
}

// NewTwoSlope returns a new [TwoSlope] norm with the given limits.
func NewTwoSlope(vmin, vcenter, vmax float32) *TwoSlope {
	return &TwoSlope{Vmin: vmin, Vcenter: vcenter, Vmax: vmax}
}

func (ts *TwoSlope) Map(v float32) float32 {
	if math32.IsNaN(v) {
		return v
	}
	switch {
	case v <= ts.Vmin:
		return 0
	case v >= ts.Vmax:
		return 1
	case v <= ts.Vcenter:
		return 0.5 * (v - ts.Vmin) / (ts.Vcenter - ts.Vmin)
	default:
		return 0.5 + 0.5*(v-ts.Vcenter)/(ts.Vmax-ts.Vcenter)
	}
}

func (ts *TwoSlope) Inverse(t float32) float32 {
	if t <= 0.5 {
		return ts.Vmin + 2*t*(ts.Vcenter-ts.Vmin)
	}
	return ts.Vcenter + 2*(t-0.5)*(ts.Vmax-ts.Vcenter)
}

func (ts *TwoSlope) Limits() (vmin, vmax float32) {
	return ts.Vmin, ts.Vmax
}

// Centered is a linear [Norm] symmetric around a center value,
// spanning Vcenter ± Halfrange.
type Centered struct {

	// Vcenter is the data value mapped to 0.5.
	Vcenter float32

	// Halfrange is the distance from Vcenter to each end of the range.
	Halfrange float32
}

// NewCentered returns a new [Centered] norm around 0 with a
// halfrange of 1.
func NewCentered() *Centered {
	return &Centered{Halfrange: 1}
}

func (cn *Centered) Map(v float32) float32 {
	return (v - cn.Vcenter + cn.Halfrange) / (2 * cn.Halfrange)
}

func (cn *Centered) Inverse(t float32) float32 {
	return cn.Vcenter - cn.Halfrange + t*2*cn.Halfrange
}

func (cn *Centered) Limits() (vmin, vmax float32) {
	return cn.Vcenter - cn.Halfrange, cn.Vcenter + cn.Halfrange
}

// Log is a logarithmic (base 10) [Norm]. The limits must be positive.
type Log struct {

	// Vmin is the data value mapped to 0. Must be > 0.
	Vmin float32

	// Vmax is the data value mapped to 1.
	Vmax float32

	// Clip clamps out-of-range results to 0-1.
	Clip bool
}

// NewLog returns a new [Log] norm with the given limits.
func NewLog(vmin, vmax float32) *Log {
	return &Log{Vmin: vmin, Vmax: vmax}
}

func (ln *Log) Map(v float32) float32 {
	if v <= 0 {
		return math32.NaN()
	}
	t := (math32.Log10(v) - math32.Log10(ln.Vmin)) / (math32.Log10(ln.Vmax) - math32.Log10(ln.Vmin))
	if ln.Clip {
		t = clamp01(t)
	}
	return t
}

func (ln *Log) Inverse(t float32) float32 {
	return math32.Pow(10, math32.Log10(ln.Vmin)+t*(math32.Log10(ln.Vmax)-math32.Log10(ln.Vmin)))
}

func (ln *Log) Limits() (vmin, vmax float32) {
	return ln.Vmin, ln.Vmax
}

// SymLog is a symmetric logarithmic [Norm]: logarithmic away from
// zero in both directions, with a linear region within ±Linthresh
// around zero to avoid the singularity.
type SymLog struct {

	// Linthresh is the extent of the linear region. Must be > 0.
	Linthresh float32

	// Linscale is the number of decades to use for each half of
	// the linear region. Must be > 0.
	Linscale float32

	// Base is the logarithm base. Must be > 0.
	Base float32

	// Vmin is the data value mapped to 0.
	Vmin float32

	// Vmax is the data value mapped to 1.
	Vmax float32

	// Clip clamps out-of-range results to 0-1.
	Clip bool
}

// NewSymLog returns a new [SymLog] norm with the given linear
// threshold, a linscale of 1, base 10, and limits of ±1.
func NewSymLog(linthresh float32) *SymLog {
	return &SymLog{Linthresh: linthresh, Linscale: 1, Base: 10, Vmin: -1, Vmax: 1}
}

// linscaleAdj returns the adjusted linear scale factor.
func (sl *SymLog) linscaleAdj() float32 {
	return sl.Linscale / (1 - 1/sl.Base)
}

// transform maps a data value onto the symmetric log scale.
func (sl *SymLog) transform(v float32) float32 {
	la := sl.linscaleAdj()
	av := math32.Abs(v)
	if av <= sl.Linthresh {
		return v * la
	}
	return math32.Copysign(sl.Linthresh*(la+math32.Log(av/sl.Linthresh)/math32.Log(sl.Base)), v)
}

// untransform is the inverse of transform.
func (sl *SymLog) untransform(y float32) float32 {
	la := sl.linscaleAdj()
	ay := math32.Abs(y)
	if ay <= sl.Linthresh*la {
		return y / la
	}
	return math32.Copysign(sl.Linthresh*math32.Pow(sl.Base, ay/sl.Linthresh-la), y)
}

func (sl *SymLog) Map(v float32) float32 {
	if math32.IsNaN(v) {
		return v
	}
	tmin, tmax := sl.transform(sl.Vmin), sl.transform(sl.Vmax)
	t := (sl.transform(v) - tmin) / (tmax - tmin)
	if sl.Clip {
		t = clamp01(t)
	}
	return t
}

func (sl *SymLog) Inverse(t float32) float32 {
	tmin, tmax := sl.transform(sl.Vmin), sl.transform(sl.Vmax)
	return sl.untransform(tmin + t*(tmax-tmin))
}

func (sl *SymLog) Limits() (vmin, vmax float32) {
	return sl.Vmin, sl.Vmax
}

// Power is a [Norm] that raises the linearly normalized value to
// the power Gamma.
type Power struct {

	// Gamma is the exponent applied to the normalized value.
	Gamma float32

	// Vmin is the data value mapped to 0.
	Vmin float32

	// Vmax is the data value mapped to 1.
	Vmax float32

	// Clip clamps out-of-range results to 0-1.
	Clip bool
}

// NewPower returns a new [Power] norm with the given gamma and limits.
func NewPower(gamma, vmin, vmax float32) *Power {
	return &Power{Gamma: gamma, Vmin: vmin, Vmax: vmax}
}

func (pn *Power) Map(v float32) float32 {
	if math32.IsNaN(v) {
		return v
	}
	t := (v - pn.Vmin) / (pn.Vmax - pn.Vmin)
	if t < 0 {
		t = 0
	} else {
		t = math32.Pow(t, pn.Gamma)
	}
	if pn.Clip {
		t = clamp01(t)
	}
	return t
}

func (pn *Power) Inverse(t float32) float32 {
	if t < 0 {
		t = 0
	}
	return pn.Vmin + math32.Pow(t, 1/pn.Gamma)*(pn.Vmax-pn.Vmin)
}

func (pn *Power) Limits() (vmin, vmax float32) {
	return pn.Vmin, pn.Vmax
}

// Asinh is an inverse hyperbolic sine [Norm]: approximately linear
// within ±LinearWidth around zero and logarithmic beyond, without a
// hard transition point.
type Asinh struct {

	// LinearWidth is the extent of the quasi-linear region around zero.
	LinearWidth float32

	// Vmin is the data value mapped to 0.
	Vmin float32

	// Vmax is the data value mapped to 1.
	Vmax float32

	// Clip clamps out-of-range results to 0-1.
	Clip bool
}

// NewAsinh returns a new [Asinh] norm with a linear width of 1 and
// limits of ±1.
func NewAsinh() *Asinh {
	return &Asinh{LinearWidth: 1, Vmin: -1, Vmax: 1}
}

func (an *Asinh) Map(v float32) float32 {
	if math32.IsNaN(v) {
		return v
	}
	f := func(x float32) float32 { return math32.Asinh(x / an.LinearWidth) }
	t := (f(v) - f(an.Vmin)) / (f(an.Vmax) - f(an.Vmin))
	if an.Clip {
		t = clamp01(t)
	}
	return t
}

func (an *Asinh) Inverse(t float32) float32 {
	f := func(x float32) float32 { return math32.Asinh(x / an.LinearWidth) }
	return an.LinearWidth * math32.Sinh(f(an.Vmin)+t*(f(an.Vmax)-f(an.Vmin)))
}

func (an *Asinh) Limits() (vmin, vmax float32) {
	return an.Vmin, an.Vmax
}
