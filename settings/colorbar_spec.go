// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"errors"
	"fmt"
	"image/color"

	"gocolorbar.org/colorbar/colors"
	"gocolorbar.org/colorbar/norm"
	"gopkg.in/yaml.v3"
)

// ColorbarSpec is the configuration of one colorbar setting. A spec
// either carries its own cmap, norm and cbar sections, or is a
// reference to another named setting (in which case no other section
// is allowed).
type ColorbarSpec struct {

	// Reference is the name of another colorbar setting this one
	// aliases. When set, all other fields must be empty.
	Reference string `yaml:"reference,omitempty"`

	// Cmap configures the colormap and its special colors.
	Cmap *CmapSettings `yaml:"cmap,omitempty"`

	// Norm configures the data normalization.
	Norm *NormSettings `yaml:"norm,omitempty"`

	// Cbar configures the colorbar decoration.
	Cbar *CbarSettings `yaml:"cbar,omitempty"`

	// Auxiliary carries free metadata such as the category.
	Auxiliary Auxiliary `yaml:"auxiliary,omitempty"`
}

// IsReference returns whether the spec is a reference to another
// colorbar setting.
func (cb *ColorbarSpec) IsReference() bool {
	return cb.Reference != ""
}

// CmapSettings is the colormap section of a colorbar setting.
type CmapSettings struct {

	// Name is the colormap name, or a list of names to concatenate.
	Name StringList `yaml:"name"`

	// N resamples the colormap to this many colors; with a list of
	// names, one entry per colormap.
	N IntList `yaml:"n,omitempty"`

	// BadColor is the color for invalid (NaN) values.
	BadColor *ColorValue `yaml:"bad_color,omitempty"`

	// BadAlpha overrides the opacity of BadColor, in 0-1.
	BadAlpha *float32 `yaml:"bad_alpha,omitempty"`

	// OverColor is the color for values above the norm range.
	OverColor *ColorValue `yaml:"over_color,omitempty"`

	// OverAlpha overrides the opacity of OverColor, in 0-1.
	OverAlpha *float32 `yaml:"over_alpha,omitempty"`

	// UnderColor is the color for values below the norm range.
	UnderColor *ColorValue `yaml:"under_color,omitempty"`

	// UnderAlpha overrides the opacity of UnderColor, in 0-1.
	UnderAlpha *float32 `yaml:"under_alpha,omitempty"`
}

// CbarSettings is the decoration section of a colorbar setting.
type CbarSettings struct {

	// Extend draws out-of-range pointers at neither, both, min or
	// max end of the colorbar.
	Extend string `yaml:"extend,omitempty"`

	// Extendfrac is the length of the extend pointers as a fraction
	// of the colorbar axis, each in 0-1. Empty means automatic.
	Extendfrac FloatList `yaml:"extendfrac,omitempty"`

	// Extendrect draws the extend pointers as rectangles instead of
	// triangles.
	Extendrect bool `yaml:"extendrect,omitempty"`

	// Label is the colorbar title.
	Label string `yaml:"label,omitempty"`
}

// Norm names accepted in the norm section.
var normNames = []string{
	"Norm",
	"NoNorm",
	"BoundaryNorm",
	"TwoSlopeNorm",
	"CenteredNorm",
	"LogNorm",
	"SymLogNorm",
	"PowerNorm",
	"AsinhNorm",
	"CategoryNorm",
}

// normArgs lists the keys each norm accepts besides name.
var normArgs = map[string][]string{
	"Norm":         {"vmin", "vmax", "clip"},
	"NoNorm":       {"vmin", "vmax", "clip"},
	"BoundaryNorm": {"boundaries", "ncolors", "clip", "extend"},
	"TwoSlopeNorm": {"vcenter", "vmin", "vmax"},
	"CenteredNorm": {"vcenter", "halfrange", "clip"},
	"LogNorm":      {"vmin", "vmax", "clip"},
	"SymLogNorm":   {"linthresh", "linscale", "vmin", "vmax", "clip", "base"},
	"PowerNorm":    {"gamma", "vmin", "vmax", "clip"},
	"AsinhNorm":    {"linear_width", "vmin", "vmax", "clip"},
	"CategoryNorm": {"labels", "first_value"},
}

// NormSettings is the norm section of a colorbar setting. Only the
// keys meaningful for the named norm are accepted; the zero value
// means a plain linear norm.
type NormSettings struct {

	// Name is the norm name; empty means Norm (linear).
	Name string `yaml:"name,omitempty"`

	Vmin        *float32 `yaml:"vmin,omitempty"`
	Vmax        *float32 `yaml:"vmax,omitempty"`
	Vcenter     *float32 `yaml:"vcenter,omitempty"`
	Halfrange   *float32 `yaml:"halfrange,omitempty"`
	Clip        *bool    `yaml:"clip,omitempty"`
	Boundaries  []float32 `yaml:"boundaries,omitempty"`
	NColors     *int      `yaml:"ncolors,omitempty"`
	Extend      string    `yaml:"extend,omitempty"`
	Labels      []string  `yaml:"labels,omitempty"`
	FirstValue  *int      `yaml:"first_value,omitempty"`
	Linthresh   *float32  `yaml:"linthresh,omitempty"`
	Linscale    *float32  `yaml:"linscale,omitempty"`
	Base        *float32  `yaml:"base,omitempty"`
	Gamma       *float32  `yaml:"gamma,omitempty"`
	LinearWidth *float32  `yaml:"linear_width,omitempty"`

	// keys are the YAML keys present in the source file, used to
	// reject parameters the named norm does not accept.
	keys []string
}

func (ns *NormSettings) UnmarshalYAML(n *yaml.Node) error {
	type raw NormSettings
	var r raw
	if err := n.Decode(&r); err != nil {
		return err
	}
	*ns = NormSettings(r)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if key := n.Content[i].Value; key != "name" {
			ns.keys = append(ns.keys, key)
		}
	}
	return nil
}

func (ns NormSettings) MarshalYAML() (any, error) {
	type raw NormSettings
	return raw(ns), nil
}

// presentKeys returns the norm parameter keys in use: the source
// YAML keys when decoded from a file, and the set fields otherwise.
func (ns *NormSettings) presentKeys() []string {
	if ns.keys != nil {
		return ns.keys
	}
	var keys []string
	add := func(key string, set bool) {
		if set {
			keys = append(keys, key)
		}
	}
	add("vmin", ns.Vmin != nil)
	add("vmax", ns.Vmax != nil)
	add("vcenter", ns.Vcenter != nil)
	add("halfrange", ns.Halfrange != nil)
	add("clip", ns.Clip != nil)
	add("boundaries", ns.Boundaries != nil)
	add("ncolors", ns.NColors != nil)
	add("extend", ns.Extend != "")
	add("labels", ns.Labels != nil)
	add("first_value", ns.FirstValue != nil)
	add("linthresh", ns.Linthresh != nil)
	add("linscale", ns.Linscale != nil)
	add("base", ns.Base != nil)
	add("gamma", ns.Gamma != nil)
	add("linear_width", ns.LinearWidth != nil)
	return keys
}

// normName returns the effective norm name, defaulting to Norm.
func (ns *NormSettings) normName() string {
	if ns == nil || ns.Name == "" {
		return "Norm"
	}
	return ns.Name
}

// Validate checks the norm section, returning an error joining
// every failing check.
func (ns *NormSettings) Validate() error {
	name := ns.normName()
	valid := false
	for _, nm := range normNames {
		if name == nm {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("Invalid norm '%s'. Valid options are %v.", name, normNames)
	}
	var errs []error
	var invalid []string
	allowed := normArgs[name]
	for _, key := range ns.presentKeys() {
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
			}
		}
		if !ok {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("Invalid parameters %v for normalization type '%s'.", invalid, name))
	}
	if ns.Vmin != nil && ns.Vmax != nil && *ns.Vmin >= *ns.Vmax {
		errs = append(errs, errors.New("vmin must be less than vmax."))
	}
	switch name {
	case "BoundaryNorm":
		errs = append(errs, ns.validateBoundary()...)
	case "TwoSlopeNorm":
		if ns.Vcenter == nil {
			errs = append(errs, errors.New("'vcenter' is required for 'TwoSlopeNorm'."))
		} else {
			if ns.Vmin != nil && *ns.Vmin >= *ns.Vcenter {
				errs = append(errs, errors.New("'vmin' must be less than 'vcenter' for 'TwoSlopeNorm'."))
			}
			if ns.Vmax != nil && *ns.Vmax <= *ns.Vcenter {
				errs = append(errs, errors.New("'vmax' must be larger than 'vcenter' for 'TwoSlopeNorm'."))
			}
		}
	case "LogNorm":
		if ns.Vmin != nil && *ns.Vmin <= 0 {
			errs = append(errs, errors.New("LogNorm vmin should be a positive value."))
		}
	case "SymLogNorm":
		if ns.Linthresh == nil {
			errs = append(errs, errors.New("'linthresh' is required for 'SymLogNorm'."))
		} else if *ns.Linthresh <= 0 {
			errs = append(errs, errors.New("'linthresh' must be positive for 'SymLogNorm'."))
		}
		if ns.Linscale != nil && *ns.Linscale <= 0 {
			errs = append(errs, errors.New("'linscale' must be positive for 'SymLogNorm'."))
		}
		if ns.Base != nil && *ns.Base <= 0 {
			errs = append(errs, errors.New("'base' must be positive for 'SymLogNorm'."))
		}
	case "PowerNorm":
		if ns.Gamma == nil {
			errs = append(errs, errors.New("'gamma' is required for 'PowerNorm'."))
		}
	case "CategoryNorm":
		if len(ns.Labels) < 2 {
			errs = append(errs, errors.New("'labels' must have at least two strings for 'CategoryNorm'."))
		}
	}
	return errors.Join(errs...)
}

// validateBoundary checks the BoundaryNorm parameters.
func (ns *NormSettings) validateBoundary() []error {
	var errs []error
	if ns.Boundaries == nil {
		return append(errs, errors.New("'boundaries' list is required for 'BoundaryNorm'."))
	}
	for i := 1; i < len(ns.Boundaries); i++ {
		if ns.Boundaries[i] <= ns.Boundaries[i-1] {
			errs = append(errs, errors.New("'boundaries' must be monotonically increasing."))
			break
		}
	}
	if ns.Extend != "" {
		if _, err := norm.ExtendFromString(ns.Extend); err != nil {
			errs = append(errs, fmt.Errorf("Invalid extend option '%s'. Valid options are %v.", ns.Extend, extendNames()))
		}
	}
	if ns.NColors != nil {
		required := ns.requiredNColors()
		switch {
		case *ns.NColors < 2:
			errs = append(errs, errors.New("'ncolors' must be equal or larger than 2."))
		case *ns.NColors < required:
			errs = append(errs, fmt.Errorf("'ncolors' must be equal or larger than %d for extend '%s'.", required, ns.extend()))
		}
	}
	return errs
}

// extend returns the effective extend option, defaulting to neither.
func (ns *NormSettings) extend() norm.Extend {
	ex, err := norm.ExtendFromString(ns.Extend)
	if ns.Extend == "" || err != nil {
		return norm.ExtendNeither
	}
	return ex
}

// requiredNColors returns the number of colormap colors a discrete
// norm requires: the number of category labels for CategoryNorm, and
// the number of boundary regions plus the extend colors for
// BoundaryNorm.
func (ns *NormSettings) requiredNColors() int {
	if ns.normName() == "CategoryNorm" {
		return len(ns.Labels)
	}
	return len(ns.Boundaries) - 1 + ns.extend().ExtraColors()
}

// IsDiscrete returns whether the norm maps data into discrete color
// buckets (BoundaryNorm or CategoryNorm).
func (ns *NormSettings) IsDiscrete() bool {
	name := ns.normName()
	return name == "BoundaryNorm" || name == "CategoryNorm"
}

// fv returns the pointed-to value, or the given default.
func fv(p *float32, def float32) float32 {
	if p != nil {
		return *p
	}
	return def
}

// Norm builds the norm the settings describe, applying the usual
// defaults for absent limits. The settings must be valid.
func (ns *NormSettings) Norm() (norm.Norm, error) {
	if ns == nil {
		return norm.NewLinear(0, 1), nil
	}
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	clip := ns.Clip != nil && *ns.Clip
	switch ns.normName() {
	case "Norm":
		n := norm.NewLinear(fv(ns.Vmin, 0), fv(ns.Vmax, 1))
		n.Clip = clip
		return n, nil
	case "NoNorm":
		return &norm.NoNorm{}, nil
	case "BoundaryNorm":
		n := norm.NewBoundary(ns.Boundaries...)
		n.Extend = ns.extend()
		n.Clip = clip
		if ns.NColors != nil {
			n.NColors = *ns.NColors
		}
		return n, nil
	case "TwoSlopeNorm":
		vc := *ns.Vcenter
		return norm.NewTwoSlope(fv(ns.Vmin, vc-1), vc, fv(ns.Vmax, vc+1)), nil
	case "CenteredNorm":
		n := norm.NewCentered()
		n.Vcenter = fv(ns.Vcenter, 0)
		n.Halfrange = fv(ns.Halfrange, 1)
		return n, nil
	case "LogNorm":
		n := norm.NewLog(fv(ns.Vmin, 1), fv(ns.Vmax, 10))
		n.Clip = clip
		return n, nil
	case "SymLogNorm":
		n := norm.NewSymLog(*ns.Linthresh)
		n.Linscale = fv(ns.Linscale, 1)
		n.Base = fv(ns.Base, 10)
		n.Vmin = fv(ns.Vmin, -1)
		n.Vmax = fv(ns.Vmax, 1)
		n.Clip = clip
		return n, nil
	case "PowerNorm":
		n := norm.NewPower(*ns.Gamma, fv(ns.Vmin, 0), fv(ns.Vmax, 1))
		n.Clip = clip
		return n, nil
	case "AsinhNorm":
		n := norm.NewAsinh()
		n.LinearWidth = fv(ns.LinearWidth, 1)
		n.Vmin = fv(ns.Vmin, -1)
		n.Vmax = fv(ns.Vmax, 1)
		n.Clip = clip
		return n, nil
	case "CategoryNorm":
		n := norm.NewCategory(ns.Labels...)
		if ns.FirstValue != nil {
			n.FirstValue = float32(*ns.FirstValue)
		}
		return n, nil
	}
	return nil, fmt.Errorf("Invalid norm '%s'. Valid options are %v.", ns.Name, normNames)
}

// extendNames returns the valid extend option names.
func extendNames() []string {
	return []string{"neither", "both", "min", "max"}
}

// Validate checks the decoration section, returning an error
// joining every failing check.
func (cb *CbarSettings) Validate() error {
	var errs []error
	if cb.Extend != "" {
		if _, err := norm.ExtendFromString(cb.Extend); err != nil {
			errs = append(errs, fmt.Errorf("Invalid extend option '%s'. Valid options are %v.", cb.Extend, extendNames()))
		}
	}
	for _, frac := range cb.Extendfrac {
		if frac < 0 || frac > 1 {
			errs = append(errs, errors.New("Each extendfrac must be between 0 and 1."))
			break
		}
	}
	return errors.Join(errs...)
}

// validateColorValue checks a bad, under or over color entry.
func validateColorValue(field string, cv *ColorValue) error {
	if cv == nil {
		return nil
	}
	if cv.IsList() {
		if len(cv.Values) != 3 && len(cv.Values) != 4 {
			return fmt.Errorf("Invalid %s format. Expected a named color, hex string, or RGB/RGBA tuple.", field)
		}
		for _, v := range cv.Values {
			if v < 0 || v > 1 {
				return fmt.Errorf("Invalid %s RGB/RGBA format. Expected tuple with values between 0 and 1.", field)
			}
		}
		return nil
	}
	s := cv.Str
	if s == "" {
		return fmt.Errorf("Invalid %s format. Expected a named color, hex string, or RGB/RGBA tuple.", field)
	}
	if colors.IsName(s) || colors.IsHex(s) {
		return nil
	}
	return fmt.Errorf("Invalid %s color format. Expected hex string like \"#RRGGBB\" or \"#RRGGBBAA\", or a named color.", field)
}

// Color converts a bad, under or over color entry to RGBA, applying
// the optional alpha override in 0-1.
func (cv *ColorValue) Color(alpha *float32) (color.RGBA, error) {
	var c color.RGBA
	if cv != nil {
		if cv.IsList() {
			vals := cv.Values
			c = color.RGBA{
				uint8(vals[0]*255 + 0.5),
				uint8(vals[1]*255 + 0.5),
				uint8(vals[2]*255 + 0.5),
				255,
			}
			if len(vals) == 4 {
				c.A = uint8(vals[3]*255 + 0.5)
			}
		} else {
			var err error
			c, err = colors.FromString(cv.Str)
			if err != nil {
				return c, err
			}
		}
	}
	if alpha != nil {
		c = colors.WithAlpha(c, *alpha)
	}
	return c, nil
}

// validateAlpha checks a bad, under or over alpha override.
func validateAlpha(field string, v *float32) error {
	if v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%s must be between 0 and 1.", field)
	}
	return nil
}
