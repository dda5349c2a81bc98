// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceFromString(t *testing.T) {
	for i, nm := range SpaceNames() {
		sp, err := SpaceFromString(nm)
		assert.NoError(t, err)
		assert.Equal(t, Space(i), sp)
	}
	sp, err := SpaceFromString("RGBA")
	assert.NoError(t, err)
	assert.Equal(t, RGBA, sp)

	_, err = SpaceFromString("invalid_color_space")
	assert.Error(t, err)
}

func TestSpaceChannels(t *testing.T) {
	assert.Equal(t, "", Hex.Channels())
	assert.Equal(t, "", Name.Channels())
	assert.Equal(t, "RGB", RGB.Channels())
	assert.Equal(t, "RGBA", RGBA.Channels())
	assert.Equal(t, 4, CMYK.NumChannels())
	assert.True(t, Hex.IsStrings())
	assert.False(t, HSV.IsStrings())
}

func TestDecodeEncode(t *testing.T) {
	dec := RGB.Decode([]float32{255, 0, 51})
	assert.InDeltaSlice(t, []float32{1, 0, 0.2}, dec, 0.001)
	enc := RGB.Encode(dec)
	assert.InDeltaSlice(t, []float32{255, 0, 51}, enc, 0.001)

	dec = RGBA.Decode([]float32{255, 255, 255, 100})
	assert.InDeltaSlice(t, []float32{1, 1, 1, 1}, dec, 0.001)

	dec = HSV.Decode([]float32{180, 50, 100})
	assert.InDeltaSlice(t, []float32{0.5, 0.5, 1}, dec, 0.001)

	dec = Lab.Decode([]float32{50, -128, 127})
	assert.InDeltaSlice(t, []float32{0.5, 0, 1}, dec, 0.001)
}

func TestFromValues(t *testing.T) {
	c, err := RGB.FromValues([]float32{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = RGBA.FromValues([]float32{0, 0, 1, 0.5})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 128}, c)

	c, err = HSV.FromValues([]float32{0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = CMYK.FromValues([]float32{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	_, err = RGB.FromValues([]float32{1, 0})
	assert.Error(t, err)

	_, err = Hex.FromValues([]float32{1, 0, 0})
	assert.Error(t, err)
}

func TestValuesRoundTrip(t *testing.T) {
	c := color.RGBA{30, 144, 255, 255}
	for _, sp := range []Space{RGB, RGBA, HSV, HSL, HCL, LCh, Lab, CMYK} {
		vals := sp.Values(c)
		require.Len(t, vals, sp.NumChannels(), sp.String())
		rt, err := sp.FromValues(vals)
		require.NoError(t, err, sp.String())
		assert.InDelta(t, float64(c.R), float64(rt.R), 3, sp.String())
		assert.InDelta(t, float64(c.G), float64(rt.G), 3, sp.String())
		assert.InDelta(t, float64(c.B), float64(rt.B), 3, sp.String())
		assert.Equal(t, c.A, rt.A, sp.String())
	}
}

func TestExternalRange(t *testing.T) {
	lo, hi := RGBA.ChannelRange(3)
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(100), hi)

	lo, hi = HSV.ChannelRange(0)
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(360), hi)

	lo, hi = Lab.ChannelRange(1)
	assert.Equal(t, float32(-128), lo)
	assert.Equal(t, float32(127), hi)
}
