// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"errors"
	"fmt"
	"image/color"

	"gocolorbar.org/colorbar/cmap"
	"gocolorbar.org/colorbar/colors"
	"gopkg.in/yaml.v3"
)

// Colormap construction types.
const (
	TypeListed    = "ListedColormap"
	TypeSegmented = "LinearSegmentedColormap"
)

// colormapTypes are the valid values of the type field.
var colormapTypes = []string{TypeListed, TypeSegmented}

// ColormapSpec is the configuration of a colormap, as stored in one
// YAML file per colormap. Colors are given in the external data
// range of the color space (such as 0-255 for rgb channels) in the
// file, and held in the internal 0-1 range once read.
type ColormapSpec struct {

	// Type is the construction type: ListedColormap for discrete
	// colors, LinearSegmentedColormap for continuous interpolation.
	Type string `yaml:"type"`

	// ColorSpace names the color space the colors are specified in.
	ColorSpace string `yaml:"color_space"`

	// Colors are the colormap colors: strings for the hex and name
	// color spaces, lists of channel values otherwise.
	Colors []ColorValue `yaml:"colors,omitempty"`

	// Segmentdata defines per-channel interpolation curves, as an
	// alternative to Colors for a LinearSegmentedColormap.
	Segmentdata *Segmentdata `yaml:"segmentdata,omitempty"`

	// N optionally resamples the colormap to this many entries.
	N int `yaml:"n,omitempty"`

	// Auxiliary carries free metadata such as the category,
	// citation and license.
	Auxiliary Auxiliary `yaml:"auxiliary,omitempty"`
}

// Segmentdata holds the per-channel anchor points of a
// LinearSegmentedColormap. Each anchor is a (x, low, high) tuple:
// the channel approaches low from below position x and leaves as
// high above it.
type Segmentdata struct {
	Red   []SegmentPoint `yaml:"red"`
	Green []SegmentPoint `yaml:"green"`
	Blue  []SegmentPoint `yaml:"blue"`
	Alpha []SegmentPoint `yaml:"alpha,omitempty"`
}

// SegmentPoint is one (x, low, high) anchor of a segmentdata curve.
type SegmentPoint [3]float32

func (sp *SegmentPoint) UnmarshalYAML(n *yaml.Node) error {
	var vals []float32
	if err := n.Decode(&vals); err != nil {
		return fmt.Errorf("each segmentdata anchor must be a tuple of three floats: %w", err)
	}
	if len(vals) != 3 {
		return fmt.Errorf("each segmentdata anchor must be a tuple of three floats, got %d values", len(vals))
	}
	copy(sp[:], vals)
	return nil
}

func (sp SegmentPoint) MarshalYAML() (any, error) {
	return []float32{sp[0], sp[1], sp[2]}, nil
}

// Space returns the color space of the spec, or an error with the
// valid names if it is not recognized.
func (cs *ColormapSpec) Space() (colors.Space, error) {
	sp, err := colors.SpaceFromString(cs.ColorSpace)
	if err != nil {
		return sp, fmt.Errorf("Invalid color_space '%s'. Valid color spaces are %v.", cs.ColorSpace, colors.SpaceNames())
	}
	return sp, nil
}

// Validate checks the spec and returns an error joining every
// failing check. The decoded argument states whether the colors are
// in the internal 0-1 range (after reading) or still in the external
// range of the color space (as written in a file); it defaults to
// true.
func (cs *ColormapSpec) Validate(decoded ...bool) error {
	dec := true
	if len(decoded) > 0 {
		dec = decoded[0]
	}
	var errs []error
	validType := false
	for _, t := range colormapTypes {
		if cs.Type == t {
			validType = true
		}
	}
	if !validType {
		errs = append(errs, fmt.Errorf("Colormap 'type' must be one of %v, not '%s'.", colormapTypes, cs.Type))
	}
	sp, err := cs.Space()
	if err != nil {
		errs = append(errs, err)
	} else {
		errs = append(errs, cs.validateColors(sp, dec)...)
	}
	if cs.Segmentdata != nil {
		if cs.Type == TypeListed {
			errs = append(errs, errors.New("'segmentdata' is only valid for LinearSegmentedColormap."))
		}
		errs = append(errs, cs.Segmentdata.validate()...)
	}
	if cs.N < 0 {
		errs = append(errs, errors.New("'n' must be a positive integer."))
	}
	return errors.Join(errs...)
}

// validateColors checks the colors array against the color space.
func (cs *ColormapSpec) validateColors(sp colors.Space, decoded bool) []error {
	if cs.Segmentdata != nil && cs.Colors == nil {
		return nil
	}
	if len(cs.Colors) == 0 {
		return []error{errors.New("The 'colors' array must not be empty.")}
	}
	if len(cs.Colors) < 2 {
		return []error{errors.New("The 'colors' array must have at least 2 colors.")}
	}
	var errs []error
	if sp.IsStrings() {
		for _, cv := range cs.Colors {
			if cv.IsList() {
				errs = append(errs, fmt.Errorf("The 'colors' array must contain strings for the '%s' color space.", sp))
				break
			}
		}
		if len(errs) > 0 {
			return errs
		}
		for _, cv := range cs.Colors {
			switch sp {
			case colors.Hex:
				if !colors.IsHex(cv.Str) {
					errs = append(errs, fmt.Errorf("Invalid hex color '%s'.", cv.Str))
				}
			case colors.Name:
				if !colors.IsName(cv.Str) {
					errs = append(errs, fmt.Errorf("Invalid color name '%s'.", cv.Str))
				}
			}
		}
		return errs
	}
	nc := sp.NumChannels()
	for _, cv := range cs.Colors {
		if !cv.IsList() || len(cv.Values) != nc {
			errs = append(errs, fmt.Errorf("Each color must be a list of %d values for the '%s' color space.", nc, sp))
			return errs
		}
	}
	errs = append(errs, validateChannelRanges(sp, cs.Colors, decoded)...)
	return errs
}

// validateChannelRanges checks every channel column against the
// internal 0-1 range when decoded, and against the external data
// range of the color space otherwise.
func validateChannelRanges(sp colors.Space, clrs []ColorValue, decoded bool) []error {
	var errs []error
	channels := sp.Channels()
	for i := 0; i < sp.NumChannels(); i++ {
		lo, hi := sp.ChannelRange(i)
		if decoded {
			lo, hi = 0, 1
		}
		ok := true
		for _, cv := range clrs {
			if cv.Values[i] < lo || cv.Values[i] > hi {
				ok = false
				break
			}
		}
		if ok {
			continue
		}
		if decoded {
			errs = append(errs, fmt.Errorf("Channel '%c' values are not within the internal data range. Expected range (%g, %g)", channels[i], lo, hi))
		} else {
			errs = append(errs, fmt.Errorf("Channel '%c' values are not within the external data range. Expected range (%g, %g)", channels[i], lo, hi))
		}
	}
	return errs
}

// validate checks every segmentdata channel curve.
func (sd *Segmentdata) validate() []error {
	var errs []error
	check := func(name string, curve []SegmentPoint) {
		if len(curve) < 2 {
			errs = append(errs, fmt.Errorf("'segmentdata' channel '%s' must have at least 2 anchors.", name))
			return
		}
		for i, pt := range curve {
			if i > 0 && pt[0] <= curve[i-1][0] {
				errs = append(errs, fmt.Errorf("'segmentdata' channel '%s' x values must be monotonically increasing.", name))
				break
			}
		}
		if curve[0][0] != 0 || curve[len(curve)-1][0] != 1 {
			errs = append(errs, fmt.Errorf("'segmentdata' channel '%s' x values must start at 0 and end at 1.", name))
		}
		for _, pt := range curve {
			if pt[1] < 0 || pt[1] > 1 || pt[2] < 0 || pt[2] > 1 {
				errs = append(errs, fmt.Errorf("'segmentdata' channel '%s' values must be within (0, 1).", name))
				break
			}
		}
	}
	check("red", sd.Red)
	check("green", sd.Green)
	check("blue", sd.Blue)
	if sd.Alpha != nil {
		check("alpha", sd.Alpha)
	}
	return errs
}

// decodeColors scales the channel values of numeric color spaces
// from their external data range into the internal 0-1 range.
// String color spaces are unchanged.
func (cs *ColormapSpec) decodeColors() {
	sp, err := cs.Space()
	if err != nil || sp.IsStrings() {
		return
	}
	for i, cv := range cs.Colors {
		if cv.IsList() {
			cs.Colors[i].Values = sp.Decode(cv.Values)
		}
	}
}

// encodeColors is the inverse of decodeColors, restoring the
// external data range for writing.
func (cs *ColormapSpec) encodeColors() {
	sp, err := cs.Space()
	if err != nil || sp.IsStrings() {
		return
	}
	for i, cv := range cs.Colors {
		if cv.IsList() {
			cs.Colors[i].Values = sp.Encode(cv.Values)
		}
	}
}

// RGBA returns the spec colors converted to RGBA. The spec colors
// must be decoded (internal range) and valid.
func (cs *ColormapSpec) RGBA() ([]color.RGBA, error) {
	sp, err := cs.Space()
	if err != nil {
		return nil, err
	}
	clrs := make([]color.RGBA, len(cs.Colors))
	for i, cv := range cs.Colors {
		if sp.IsStrings() {
			c, err := colors.FromString(cv.Str)
			if err != nil {
				return nil, err
			}
			clrs[i] = c
			continue
		}
		c, err := sp.FromValues(cv.Values)
		if err != nil {
			return nil, err
		}
		clrs[i] = c
	}
	return clrs, nil
}

// ColorMap builds the colormap the spec describes, with the given
// name. The spec must be decoded and valid.
func (cs *ColormapSpec) ColorMap(name string) (cmap.ColorMap, error) {
	var cm cmap.ColorMap
	switch {
	case cs.Type == TypeSegmented && cs.Segmentdata != nil:
		ch := cmap.NewChannels(name)
		ch.Red = segmentCurve(cs.Segmentdata.Red)
		ch.Green = segmentCurve(cs.Segmentdata.Green)
		ch.Blue = segmentCurve(cs.Segmentdata.Blue)
		ch.Alpha = segmentCurve(cs.Segmentdata.Alpha)
		cm = ch
	case cs.Type == TypeSegmented:
		clrs, err := cs.RGBA()
		if err != nil {
			return nil, err
		}
		cm = cmap.NewSegmented(name, clrs...)
	default:
		clrs, err := cs.RGBA()
		if err != nil {
			return nil, err
		}
		cm = cmap.NewListed(name, clrs...)
	}
	if cs.N > 0 {
		cm = cmap.Resample(cm, cs.N)
	}
	return cm, nil
}

// segmentCurve converts segmentdata anchors to channel stops.
func segmentCurve(pts []SegmentPoint) []cmap.ChannelStop {
	if pts == nil {
		return nil
	}
	curve := make([]cmap.ChannelStop, len(pts))
	for i, pt := range pts {
		curve[i] = cmap.ChannelStop{Pos: pt[0], Low: pt[1], High: pt[2]}
	}
	return curve
}
