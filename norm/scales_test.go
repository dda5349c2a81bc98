// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestTwoSlope(t *testing.T) {
	ts := NewTwoSlope(-1, 0, 3)
	tol := 1e-6
	assert.InDelta(t, 0, ts.Map(-1), tol)
	assert.InDelta(t, 0.25, ts.Map(-0.5), tol)
	assert.InDelta(t, 0.5, ts.Map(0), tol)
	assert.InDelta(t, 0.75, ts.Map(1.5), tol)
	assert.InDelta(t, 1, ts.Map(3), tol)
	// out of range clamps
	assert.InDelta(t, 0, ts.Map(-2), tol)
	assert.InDelta(t, 1, ts.Map(4), tol)

	assert.InDelta(t, -0.5, ts.Inverse(0.25), tol)
	assert.InDelta(t, 1.5, ts.Inverse(0.75), tol)

	vmin, vmax := ts.Limits()
	assert.Equal(t, float32(-1), vmin)
	assert.Equal(t, float32(3), vmax)
}

func TestCentered(t *testing.T) {
	cn := NewCentered()
	cn.Vcenter = 2
	cn.Halfrange = 3
	tol := 1e-6
	assert.InDelta(t, 0, cn.Map(-1), tol)
	assert.InDelta(t, 0.25, cn.Map(0.5), tol)
	assert.InDelta(t, 0.5, cn.Map(2), tol)
	assert.InDelta(t, 1, cn.Map(5), tol)
	assert.InDelta(t, 0.5, cn.Inverse(cn.Map(0.5)), tol)

	vmin, vmax := cn.Limits()
	assert.Equal(t, float32(-1), vmin)
	assert.Equal(t, float32(5), vmax)
}

func TestLog(t *testing.T) {
	ln := NewLog(1, 100)
	tol := 1e-5
	assert.InDelta(t, 0, ln.Map(1), tol)
	assert.InDelta(t, 0.5, ln.Map(10), tol)
	assert.InDelta(t, 1, ln.Map(100), tol)
	assert.True(t, math32.IsNaN(ln.Map(0)))
	assert.True(t, math32.IsNaN(ln.Map(-3)))

	assert.InDelta(t, 10, ln.Inverse(0.5), 1e-4)

	ln.Clip = true
	assert.InDelta(t, 1, ln.Map(1000), tol)
}

func TestSymLog(t *testing.T) {
	sl := NewSymLog(1)
	sl.Vmin = -10
	sl.Vmax = 10
	tol := 1e-5
	assert.InDelta(t, 0.5, sl.Map(0), tol)
	assert.InDelta(t, 0, sl.Map(-10), tol)
	assert.InDelta(t, 1, sl.Map(10), tol)
	// linscale_adj = 1 / (1 - 1/10) = 10/9, so the transform of 1 is
	// 10/9 and of 10 is 10/9 + 1 = 19/9
	assert.InDelta(t, 29.0/38, sl.Map(1), tol)
	// symmetric around zero
	assert.InDelta(t, 1-sl.Map(3), sl.Map(-3), tol)

	for _, v := range []float32{-10, -3, -1, -0.5, 0, 0.5, 1, 3, 10} {
		assert.InDelta(t, v, sl.Inverse(sl.Map(v)), 1e-4, "v=%v", v)
	}
}

func TestPower(t *testing.T) {
	pn := NewPower(2, 0, 10)
	tol := 1e-6
	assert.InDelta(t, 0, pn.Map(0), tol)
	assert.InDelta(t, 0.25, pn.Map(5), tol)
	assert.InDelta(t, 1, pn.Map(10), tol)
	// values below vmin map to 0
	assert.InDelta(t, 0, pn.Map(-5), tol)

	assert.InDelta(t, 5, pn.Inverse(0.25), 1e-5)

	half := NewPower(0.5, 0, 10)
	assert.InDelta(t, math32.Sqrt(0.5), half.Map(5), tol)
}

func TestAsinh(t *testing.T) {
	an := NewAsinh()
	an.Vmin = -10
	an.Vmax = 10
	tol := 1e-5
	assert.InDelta(t, 0.5, an.Map(0), tol)
	assert.InDelta(t, 0, an.Map(-10), tol)
	assert.InDelta(t, 1, an.Map(10), tol)
	assert.InDelta(t, 1-an.Map(3), an.Map(-3), tol)

	for _, v := range []float32{-10, -2, 0, 0.5, 7, 10} {
		assert.InDelta(t, v, an.Inverse(an.Map(v)), 1e-4, "v=%v", v)
	}
}
