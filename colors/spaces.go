// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Space is a color space in which color values can be specified.
// The zero value is [Hex].
type Space int32

const (
	// Hex colors are specified as hexadecimal strings such as "#FF00CC".
	Hex Space = iota

	// Name colors are specified as CSS standard color names such as "red".
	Name

	// RGB colors have red, green, and blue channels, each 0-255.
	RGB

	// RGBA colors have red, green, and blue channels 0-255,
	// and an alpha channel 0-100.
	RGBA

	// HSV colors have a hue channel 0-360, and saturation and
	// value channels 0-100.
	HSV

	// HSL colors have a hue channel 0-360, and saturation and
	// lightness channels 0-100.
	HSL

	// HCL colors have a hue channel 0-360, and chroma and
	// luminance channels 0-100 (CIE L*C*h°, Lab based).
	HCL

	// LCh colors have luminance and chroma channels 0-100,
	// and a hue channel 0-360 (CIE LCh(uv), Luv based).
	LCh

	// Lab colors have a lightness channel 0-100, and a and b
	// channels -128-127 (CIE L*a*b*).
	Lab

	// CMYK colors have cyan, magenta, yellow, and key channels,
	// each 0-100.
	CMYK

	// SpacesN is the number of color spaces.
	SpacesN
)

var spaceNames = []string{"hex", "name", "rgb", "rgba", "hsv", "hsl", "hcl", "lch", "lab", "cmyk"}

func (sp Space) String() string {
	if sp < 0 || sp >= SpacesN {
		return fmt.Sprintf("Space(%d)", int32(sp))
	}
	return spaceNames[sp]
}

// SpaceNames returns the names of all of the color spaces.
func SpaceNames() []string {
	return spaceNames
}

// SpaceFromString returns the [Space] with the given name
// (case insensitive), or an error if the name is not found.
func SpaceFromString(name string) (Space, error) {
	ls := strings.ToLower(strings.TrimSpace(name))
	for i, nm := range spaceNames {
		if ls == nm {
			return Space(i), nil
		}
	}
	return Hex, fmt.Errorf("colors.SpaceFromString: got invalid color space name %q", name)
}

// IsStrings returns whether colors in this space are specified
// as strings ([Hex] and [Name]) instead of numeric channel values.
func (sp Space) IsStrings() bool {
	return sp == Hex || sp == Name
}

// Channels returns the channel letters for the numeric color spaces,
// and "" for the string ones.
func (sp Space) Channels() string {
	switch sp {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case HSV:
		return "HSV"
	case HSL:
		return "HSL"
	case HCL:
		return "HCL"
	case LCh:
		return "LCH"
	case Lab:
		return "LAB"
	case CMYK:
		return "CMYK"
	}
	return ""
}

// NumChannels returns the number of numeric channels for the space
// (0 for the string spaces).
func (sp Space) NumChannels() int {
	return len(sp.Channels())
}

// ChannelRange returns the external data range of the i-th channel
// of the space. Values in YAML files are specified in the external
// range, and are converted to the internal 0-1 representation
// with [Space.Decode].
func (sp Space) ChannelRange(i int) (lo, hi float32) {
	switch sp {
	case RGB:
		return 0, 255
	case RGBA:
		if i == 3 {
			return 0, 100
		}
		return 0, 255
	case HSV, HSL, HCL:
		if i == 0 {
			return 0, 360
		}
		return 0, 100
	case LCh:
		if i == 2 {
			return 0, 360
		}
		return 0, 100
	case Lab:
		if i == 0 {
			return 0, 100
		}
		return -128, 127
	case CMYK:
		return 0, 100
	}
	return 0, 1
}

// Decode converts the given color channel values from the external
// representation of the space to the internal 0-1 representation.
func (sp Space) Decode(vals []float32) []float32 {
	dec := make([]float32, len(vals))
	for i, v := range vals {
		lo, hi := sp.ChannelRange(i)
		dec[i] = (v - lo) / (hi - lo)
	}
	return dec
}

// Encode converts the given color channel values from the internal
// 0-1 representation to the external representation of the space.
func (sp Space) Encode(vals []float32) []float32 {
	enc := make([]float32, len(vals))
	for i, v := range vals {
		lo, hi := sp.ChannelRange(i)
		enc[i] = v*(hi-lo) + lo
	}
	return enc
}

// FromValues returns the color specified by the given internal 0-1
// channel values in this space. The string spaces return an error.
func (sp Space) FromValues(vals []float32) (color.RGBA, error) {
	nc := sp.NumChannels()
	if nc == 0 {
		return color.RGBA{}, fmt.Errorf("colors.FromValues: color space %q does not have numeric channels", sp)
	}
	if len(vals) != nc {
		return color.RGBA{}, fmt.Errorf("colors.FromValues: got %d channel values for color space %q, expected %d", len(vals), sp, nc)
	}
	v := func(i int) float64 { return float64(vals[i]) }
	a := uint8(255)
	var cf colorful.Color
	switch sp {
	case RGB:
		cf = colorful.Color{R: v(0), G: v(1), B: v(2)}
	case RGBA:
		a = uint8(v(3)*255 + 0.5)
		cf = colorful.Color{R: v(0), G: v(1), B: v(2)}
	case HSV:
		cf = colorful.Hsv(v(0)*360, v(1), v(2))
	case HSL:
		cf = colorful.Hsl(v(0)*360, v(1), v(2))
	case HCL:
		cf = colorful.Hcl(v(0)*360, v(1), v(2))
	case LCh:
		cf = colorful.LuvLCh(v(0), v(1), v(2)*360)
	case Lab:
		cf = colorful.Lab(v(0), v(1)*2.55-1.28, v(2)*2.55-1.28)
	case CMYK:
		r, g, b := color.CMYKToRGB(uint8(v(0)*255+0.5), uint8(v(1)*255+0.5), uint8(v(2)*255+0.5), uint8(v(3)*255+0.5))
		return color.RGBA{r, g, b, 255}, nil
	}
	cf = cf.Clamped()
	r, g, b := cf.RGB255()
	return color.RGBA{r, g, b, a}, nil
}

// Values returns the internal 0-1 channel values of the given color
// in this space. The string spaces return nil.
func (sp Space) Values(c color.Color) []float32 {
	r := AsRGBA(c)
	cf, ok := colorful.MakeColor(color.NRGBA{r.R, r.G, r.B, 255})
	if !ok {
		cf = colorful.Color{}
	}
	switch sp {
	case RGB:
		return []float32{float32(cf.R), float32(cf.G), float32(cf.B)}
	case RGBA:
		return []float32{float32(cf.R), float32(cf.G), float32(cf.B), float32(r.A) / 255}
	case HSV:
		h, s, v := cf.Hsv()
		return []float32{float32(h / 360), float32(s), float32(v)}
	case HSL:
		h, s, l := cf.Hsl()
		return []float32{float32(h / 360), float32(s), float32(l)}
	case HCL:
		h, ch, l := cf.Hcl()
		return []float32{float32(h / 360), float32(ch), float32(l)}
	case LCh:
		l, ch, h := cf.LuvLCh()
		return []float32{float32(l), float32(ch), float32(h / 360)}
	case Lab:
		l, av, bv := cf.Lab()
		return []float32{float32(l), float32((av + 1.28) / 2.55), float32((bv + 1.28) / 2.55)}
	case CMYK:
		cy, m, y, k := color.RGBToCMYK(r.R, r.G, r.B)
		return []float32{float32(cy) / 255, float32(m) / 255, float32(y) / 255, float32(k) / 255}
	}
	return nil
}
