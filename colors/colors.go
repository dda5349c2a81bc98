// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing, formatting, blending,
// and conversions between color spaces.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsString returns the given color as a string,
// formatted as rgba(r, g, b, a).
func AsString(c color.Color) string {
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified by the given CSS
// standard color name. The name "none" or "transparent" returns
// the fully transparent zero color. It returns an error if the
// name is not found; see [MustFromName] for a version that
// does not return an error.
func FromName(name string) (color.RGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" || name == "transparent" {
		return color.RGBA{}, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %q", name)
	}
	return c, nil
}

// MustFromName returns the color value specified by the given CSS
// standard color name. It panics if the name is not found; see
// [FromName] for a version that returns an error.
func MustFromName(name string) color.RGBA {
	c, err := FromName(name)
	if err != nil {
		panic("colors.MustFromName: " + err.Error())
	}
	return c
}

// IsName returns whether the given string is a valid CSS standard
// color name (or "none" or "transparent").
func IsName(name string) bool {
	_, err := FromName(name)
	return err == nil
}

// FromHex parses the given hex color string and returns the
// resulting color. The leading # is optional, and 3, 4, 6, and 8
// digit forms are supported. It returns any resulting error; see
// [MustFromHex] for a version that does not return an error.
func FromHex(hex string) (color.RGBA, error) {
	hs := strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hs) {
	case 3:
		_, err = fmt.Sscanf(hs, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 4:
		_, err = fmt.Sscanf(hs, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		a |= a << 4
	case 6:
		_, err = fmt.Sscanf(hs, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hs, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex parses the given hex color string and returns the
// resulting color. It panics on any resulting error; see [FromHex]
// for a version that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// IsHex returns whether the given string is a valid hex color string.
func IsHex(hex string) bool {
	_, err := FromHex(hex)
	return err == nil
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, omitting the alpha component if the color is fully opaque.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromString returns a color value from the given string.
// It accepts hex values, CSS standard color names, "none" or
// "transparent", and rgb(r, g, b) / rgba(r, g, b, a) functional
// notation with 0-255 components. It returns any resulting error;
// see [MustFromString] for a version that does not return an error.
func FromString(str string) (color.RGBA, error) {
	if len(str) == 0 {
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "rgba("):
		val := strings.TrimRight(lstr[5:], ")")
		var r, g, b, a int
		_, err := fmt.Sscanf(nospace(val), "%d,%d,%d,%d", &r, &g, &b, &a)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: could not process %q: %w", str, err)
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
	case strings.HasPrefix(lstr, "rgb("):
		val := strings.TrimRight(lstr[4:], ")")
		var r, g, b int
		_, err := fmt.Sscanf(nospace(val), "%d,%d,%d", &r, &g, &b)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: could not process %q: %w", str, err)
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
	default:
		return FromName(lstr)
	}
}

func nospace(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) color.RGBA {
	c, err := FromString(str)
	if err != nil {
		panic("colors.MustFromString: " + err.Error())
	}
	return c
}

// WithAlpha returns the given color with the transparency
// set to the given 0-1 alpha value.
func WithAlpha(c color.Color, alpha float32) color.RGBA {
	r := AsRGBA(c)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r.A = uint8(alpha*255 + 0.5)
	return r
}
