// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"#FF0000", color.RGBA{255, 0, 0, 255}},
		{"2E86AB", color.RGBA{46, 134, 171, 255}},
		{"#F0F", color.RGBA{255, 0, 255, 255}},
		{"#F0F8", color.RGBA{255, 0, 255, 136}},
		{"#1E90FF80", color.RGBA{30, 144, 255, 128}},
	}
	for _, test := range tests {
		c, err := FromHex(test.hex)
		assert.NoError(t, err, test.hex)
		assert.Equal(t, test.want, c, test.hex)
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, hex := range []string{"", "#GGGGGG", "not_hex1", "#12345"} {
		_, err := FromHex(hex)
		assert.Error(t, err, hex)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF0000", AsHex(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, "#1E90FF80", AsHex(color.RGBA{30, 144, 255, 128}))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "rgba(30, 144, 255, 128)", AsString(color.RGBA{30, 144, 255, 128}))
	assert.Equal(t, color.RGBA{30, 144, 255, 128}, MustFromString("rgba(30, 144, 255, 128)"))
	assert.Panics(t, func() { MustFromString("not_a_color") })
}

func TestUniform(t *testing.T) {
	c := color.RGBA{10, 20, 30, 255}
	assert.Equal(t, c, ToUniform(Uniform(c)))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))
}

func TestFromName(t *testing.T) {
	c, err := FromName("red")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromName("DodgerBlue")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{30, 144, 255, 255}, c)

	c, err = FromName("none")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{}, c)

	_, err = FromName("not_a_color")
	assert.Error(t, err)

	assert.True(t, IsName("rebeccapurple"))
	assert.False(t, IsName("not_a_color"))
}

func TestFromString(t *testing.T) {
	tests := []struct {
		str  string
		want color.RGBA
	}{
		{"", color.RGBA{}},
		{"#FF0000", color.RGBA{255, 0, 0, 255}},
		{"blue", color.RGBA{0, 0, 255, 255}},
		{"rgb(10, 20, 30)", color.RGBA{10, 20, 30, 255}},
		{"rgba(10, 20, 30, 40)", color.RGBA{10, 20, 30, 40}},
	}
	for _, test := range tests {
		c, err := FromString(test.str)
		assert.NoError(t, err, test.str)
		assert.Equal(t, test.want, c, test.str)
	}

	_, err := FromString("rgb(nope)")
	assert.Error(t, err)
	_, err = FromString("not_a_color")
	assert.Error(t, err)
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.RGBA{10, 20, 30, 255}, 0.5)
	assert.Equal(t, color.RGBA{10, 20, 30, 128}, c)
	c = WithAlpha(color.RGBA{10, 20, 30, 255}, 2)
	assert.Equal(t, uint8(255), c.A)
	c = WithAlpha(color.RGBA{10, 20, 30, 255}, -1)
	assert.Equal(t, uint8(0), c.A)
}

func ExampleBlendRGB() {
	fmt.Println(BlendRGB(50, MustFromName("red"), MustFromName("blue")))
	// Output: {128 0 128 255}
}

func ExampleBlend_endpoints() {
	fmt.Println(Blend(RGB, 100, MustFromName("red"), MustFromName("blue")))
	fmt.Println(Blend(RGB, 0, MustFromName("red"), MustFromName("blue")))
	// Output:
	// {255 0 0 255}
	// {0 0 255 255}
}

func TestBlendSpaces(t *testing.T) {
	red := MustFromName("red")
	blue := MustFromName("blue")
	for _, sp := range []Space{RGB, HSV, HCL, LCh, Lab} {
		c := Blend(sp, 50, red, blue)
		assert.Equal(t, uint8(255), c.A, sp.String())
		assert.NotEqual(t, red, c, sp.String())
		assert.NotEqual(t, blue, c, sp.String())
	}
}
