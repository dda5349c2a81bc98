// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocolorbar.org/colorbar/base/yamlx"
)

// readColormap decodes a colormap spec from YAML source.
func readColormap(t *testing.T, src string) *ColormapSpec {
	t.Helper()
	spec := &ColormapSpec{}
	require.NoError(t, yamlx.ReadBytes(spec, []byte(src)))
	return spec
}

func TestColormapSpecValid(t *testing.T) {
	spec := readColormap(t, `
type: ListedColormap
color_space: hex
colors: ["#FF0000", "#00FF00"]
`)
	assert.NoError(t, spec.Validate(false))

	spec = readColormap(t, `
type: LinearSegmentedColormap
color_space: name
colors: [red, blue, none]
`)
	assert.NoError(t, spec.Validate(false))

	spec = readColormap(t, `
type: LinearSegmentedColormap
color_space: rgba
colors:
  - [255, 0, 0, 100]
  - [0, 0, 255, 50]
n: 128
`)
	assert.NoError(t, spec.Validate(false))
}

func TestColormapSpecColors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"empty", `
type: ListedColormap
color_space: hex
colors: []
`, "The 'colors' array must not be empty."},
		{"single", `
type: ListedColormap
color_space: hex
colors: ["#FF0000"]
`, "The 'colors' array must have at least 2 colors."},
		{"type", `
type: Colormap
color_space: hex
colors: ["#FF0000", "#00FF00"]
`, "Colormap 'type' must be one of"},
		{"space", `
type: ListedColormap
color_space: xyz
colors: ["#FF0000", "#00FF00"]
`, "Invalid color_space 'xyz'."},
		{"hex", `
type: ListedColormap
color_space: hex
colors: ["#FF0000", "#GGHHII"]
`, "Invalid hex color '#GGHHII'."},
		{"name", `
type: ListedColormap
color_space: name
colors: [red, notacolor]
`, "Invalid color name 'notacolor'."},
		{"strings for rgb", `
type: ListedColormap
color_space: rgb
colors: [red, blue]
`, "Each color must be a list of 3 values for the 'rgb' color space."},
		{"lists for hex", `
type: ListedColormap
color_space: hex
colors:
  - [255, 0, 0]
  - [0, 0, 255]
`, "The 'colors' array must contain strings for the 'hex' color space."},
		{"wrong arity", `
type: ListedColormap
color_space: rgb
colors:
  - [255, 0]
  - [0, 0]
`, "Each color must be a list of 3 values for the 'rgb' color space."},
		{"negative n", `
type: ListedColormap
color_space: hex
colors: ["#FF0000", "#00FF00"]
n: -4
`, "'n' must be a positive integer."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := readColormap(t, tt.src)
			assert.ErrorContains(t, spec.Validate(false), tt.msg)
		})
	}
}

func TestColormapSpecChannelRanges(t *testing.T) {
	spec := readColormap(t, `
type: ListedColormap
color_space: rgb
colors:
  - [300, 0, 0]
  - [0, 0, 255]
`)
	assert.ErrorContains(t, spec.Validate(false),
		"Channel 'R' values are not within the external data range. Expected range (0, 255)")

	spec = readColormap(t, `
type: ListedColormap
color_space: rgba
colors:
  - [255, 0, 0, 150]
  - [0, 0, 255, 50]
`)
	assert.ErrorContains(t, spec.Validate(false),
		"Channel 'A' values are not within the external data range. Expected range (0, 100)")

	spec = readColormap(t, `
type: ListedColormap
color_space: hsv
colors:
  - [370, 50, 50]
  - [100, 50, 50]
`)
	assert.ErrorContains(t, spec.Validate(false),
		"Channel 'H' values are not within the external data range. Expected range (0, 360)")

	// after decoding, values must sit in the internal 0-1 range
	spec = &ColormapSpec{
		Type:       TypeListed,
		ColorSpace: "rgb",
		Colors: []ColorValue{
			{Values: []float32{1.5, 0, 0}},
			{Values: []float32{0, 0, 1}},
		},
	}
	assert.ErrorContains(t, spec.Validate(),
		"Channel 'R' values are not within the internal data range. Expected range (0, 1)")
}

func TestColormapSpecSegmentdata(t *testing.T) {
	spec := readColormap(t, `
type: LinearSegmentedColormap
color_space: rgb
segmentdata:
  red: [[0, 0, 0], [1, 1, 1]]
  green: [[0, 0, 0], [1, 1, 1]]
  blue: [[0, 1, 1], [1, 0, 0]]
`)
	assert.NoError(t, spec.Validate(false))

	spec.Type = TypeListed
	assert.ErrorContains(t, spec.Validate(false), "'segmentdata' is only valid for LinearSegmentedColormap.")

	spec = readColormap(t, `
type: LinearSegmentedColormap
color_space: rgb
segmentdata:
  red: [[0, 0, 0], [0.8, 1, 1], [0.5, 1, 1], [1, 1, 1]]
  green: [[0, 0, 0], [1, 1, 1]]
  blue: [[0, 1, 1], [1, 0, 0]]
`)
	assert.ErrorContains(t, spec.Validate(false), "'segmentdata' channel 'red' x values must be monotonically increasing.")

	spec = readColormap(t, `
type: LinearSegmentedColormap
color_space: rgb
segmentdata:
  red: [[0.2, 0, 0], [1, 1, 1]]
  green: [[0, 0, 0], [1, 1, 1]]
  blue: [[0, 1, 1], [1, 0, 0]]
`)
	assert.ErrorContains(t, spec.Validate(false), "'segmentdata' channel 'red' x values must start at 0 and end at 1.")

	spec = readColormap(t, `
type: LinearSegmentedColormap
color_space: rgb
segmentdata:
  red: [[0, 0, 0]]
  green: [[0, 0, 0], [1, 1, 1]]
  blue: [[0, 1, 1], [1, 5, 5]]
`)
	err := spec.Validate(false)
	assert.ErrorContains(t, err, "'segmentdata' channel 'red' must have at least 2 anchors.")
	assert.ErrorContains(t, err, "'segmentdata' channel 'blue' values must be within (0, 1).")

	bad := &ColormapSpec{}
	assert.ErrorContains(t, yamlx.ReadBytes(bad, []byte(`
type: LinearSegmentedColormap
color_space: rgb
segmentdata:
  red: [[0, 0], [1, 1]]
  green: [[0, 0, 0], [1, 1, 1]]
  blue: [[0, 1, 1], [1, 0, 0]]
`)), "a tuple of three floats")
}

// readNorm decodes a norm section from YAML source.
func readNorm(t *testing.T, src string) *NormSettings {
	t.Helper()
	ns := &NormSettings{}
	require.NoError(t, yamlx.ReadBytes(ns, []byte(src)))
	return ns
}

func TestNormSettingsValid(t *testing.T) {
	valid := []string{
		`{}`,
		`{name: Norm, vmin: 0, vmax: 10, clip: true}`,
		`{name: NoNorm}`,
		`{name: BoundaryNorm, boundaries: [0, 1, 2], ncolors: 2}`,
		`{name: BoundaryNorm, boundaries: [0, 1, 2], extend: both, ncolors: 4}`,
		`{name: TwoSlopeNorm, vcenter: 0, vmin: -5, vmax: 5}`,
		`{name: CenteredNorm, vcenter: 2, halfrange: 3}`,
		`{name: LogNorm, vmin: 1, vmax: 100}`,
		`{name: SymLogNorm, linthresh: 0.1, linscale: 0.5, base: 10}`,
		`{name: PowerNorm, gamma: 0.5}`,
		`{name: AsinhNorm, linear_width: 2}`,
		`{name: CategoryNorm, labels: [a, b], first_value: 1}`,
	}
	for _, src := range valid {
		assert.NoError(t, readNorm(t, src).Validate(), src)
	}
}

func TestNormSettingsInvalid(t *testing.T) {
	tests := []struct {
		src string
		msg string
	}{
		{`{name: FancyNorm}`, "Invalid norm 'FancyNorm'. Valid options are"},
		{`{name: Norm, vmin: 5, vmax: 5}`, "vmin must be less than vmax."},
		{`{name: Norm, boundaries: [0, 1]}`, "Invalid parameters [boundaries] for normalization type 'Norm'."},
		{`{name: Norm, foo: 1}`, "Invalid parameters [foo] for normalization type 'Norm'."},
		{`{name: LogNorm, vmin: 0, vmax: 10}`, "LogNorm vmin should be a positive value."},
		{`{name: BoundaryNorm}`, "'boundaries' list is required for 'BoundaryNorm'."},
		{`{name: BoundaryNorm, boundaries: [0, 2, 1]}`, "'boundaries' must be monotonically increasing."},
		{`{name: BoundaryNorm, boundaries: [0, 1, 2], extend: up}`, "Invalid extend option 'up'."},
		{`{name: BoundaryNorm, boundaries: [0, 1, 2], ncolors: 1}`, "'ncolors' must be equal or larger than 2."},
		{`{name: BoundaryNorm, boundaries: [0, 1, 2], extend: both, ncolors: 3}`,
			"'ncolors' must be equal or larger than 4 for extend 'both'."},
		{`{name: TwoSlopeNorm}`, "'vcenter' is required for 'TwoSlopeNorm'."},
		{`{name: TwoSlopeNorm, vcenter: 0, vmin: 1}`, "'vmin' must be less than 'vcenter' for 'TwoSlopeNorm'."},
		{`{name: TwoSlopeNorm, vcenter: 0, vmax: -1}`, "'vmax' must be larger than 'vcenter' for 'TwoSlopeNorm'."},
		{`{name: SymLogNorm}`, "'linthresh' is required for 'SymLogNorm'."},
		{`{name: SymLogNorm, linthresh: -1}`, "'linthresh' must be positive for 'SymLogNorm'."},
		{`{name: SymLogNorm, linthresh: 1, linscale: 0}`, "'linscale' must be positive for 'SymLogNorm'."},
		{`{name: PowerNorm}`, "'gamma' is required for 'PowerNorm'."},
		{`{name: CategoryNorm, labels: [a]}`, "'labels' must have at least two strings for 'CategoryNorm'."},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.ErrorContains(t, readNorm(t, tt.src).Validate(), tt.msg)
		})
	}
}

func TestSpecMarshalScalars(t *testing.T) {
	spec := &ColorbarSpec{
		Cmap: &CmapSettings{Name: StringList{"viridis"}, N: IntList{256}},
		Cbar: &CbarSettings{Extendfrac: FloatList{0.05}},
	}
	out, err := yamlx.WriteBytes(spec)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "name: viridis\n")
	assert.Contains(t, s, "n: 256\n")
	assert.Contains(t, s, "extendfrac: 0.05\n")

	spec.Cmap.Name = StringList{"Blues_r", "Reds"}
	out, err = yamlx.WriteBytes(spec)
	require.NoError(t, err)
	assert.Contains(t, string(out), "- Blues_r\n")
}

func TestCbarSettingsValidate(t *testing.T) {
	assert.NoError(t, (&CbarSettings{}).Validate())
	assert.NoError(t, (&CbarSettings{Extend: "both", Extendfrac: FloatList{0.1}}).Validate())
	assert.ErrorContains(t, (&CbarSettings{Extend: "up"}).Validate(),
		"Invalid extend option 'up'. Valid options are [neither both min max].")
	assert.ErrorContains(t, (&CbarSettings{Extendfrac: FloatList{1.5}}).Validate(),
		"Each extendfrac must be between 0 and 1.")
}

func TestColorValueValidate(t *testing.T) {
	assert.NoError(t, validateColorValue("bad_color", nil))
	assert.NoError(t, validateColorValue("bad_color", &ColorValue{Str: "red"}))
	assert.NoError(t, validateColorValue("bad_color", &ColorValue{Str: "none"}))
	assert.NoError(t, validateColorValue("bad_color", &ColorValue{Str: "#FF00CC"}))
	assert.NoError(t, validateColorValue("bad_color", &ColorValue{Values: []float32{1, 0, 0}}))
	assert.NoError(t, validateColorValue("bad_color", &ColorValue{Values: []float32{1, 0, 0, 0.5}}))

	assert.ErrorContains(t, validateColorValue("bad_color", &ColorValue{Values: []float32{1, 0}}),
		"Invalid bad_color format.")
	assert.ErrorContains(t, validateColorValue("bad_color", &ColorValue{Values: []float32{2, 0, 0}}),
		"Invalid bad_color RGB/RGBA format. Expected tuple with values between 0 and 1.")
	assert.ErrorContains(t, validateColorValue("over_color", &ColorValue{Str: "nope"}),
		"Invalid over_color color format.")
	assert.ErrorContains(t, validateAlpha("bad_alpha", fptr(1.5)), "bad_alpha must be between 0 and 1.")
	assert.NoError(t, validateAlpha("bad_alpha", nil))
}
