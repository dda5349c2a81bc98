// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gocolorbar.org/colorbar/colors"
)

// Colormap categories, matching the category values used in
// colormap configuration files.
const (
	Perceptual  = "perceptual"
	Sequential  = "sequential"
	Diverging   = "diverging"
	Qualitative = "qualitative"
	Cyclic      = "cyclic"
)

// builtinDef defines a built-in colormap as a compact list of
// anchor colors approximating the well-known palette.
type builtinDef struct {
	category string
	listed   bool
	colors   []string
}

var builtins = map[string]builtinDef{
	"viridis": {Perceptual, false, []string{
		"#440154", "#482878", "#3E4A89", "#31688E", "#26828E",
		"#1F9E89", "#35B779", "#6DCD59", "#B4DE2C", "#FDE725"}},
	"plasma": {Perceptual, false, []string{
		"#0D0887", "#46039F", "#7201A8", "#9C179E", "#BD3786",
		"#D8576B", "#ED7953", "#FB9F3A", "#FDCA26", "#F0F921"}},
	"inferno": {Perceptual, false, []string{
		"#000004", "#1B0C41", "#4A0C6B", "#781C6D", "#A52C60",
		"#CF4446", "#ED6925", "#FB9A06", "#F7D03C", "#FCFFA4"}},
	"magma": {Perceptual, false, []string{
		"#000004", "#180F3E", "#451077", "#721F81", "#9F2F7F",
		"#CD4071", "#F1605D", "#FD9567", "#FEC98D", "#FCFDBF"}},
	"cividis": {Perceptual, false, []string{
		"#00204D", "#00336F", "#39486B", "#575D6D", "#707173",
		"#8A8779", "#A69D75", "#C4B56C", "#E4CF5B", "#FFEA46"}},

	"gray": {Sequential, false, []string{"#000000", "#FFFFFF"}},
	"Blues": {Sequential, false, []string{
		"#F7FBFF", "#DEEBF7", "#C6DBEF", "#9ECAE1", "#6BAED6",
		"#4292C6", "#2171B5", "#08519C", "#08306B"}},
	"Greens": {Sequential, false, []string{
		"#F7FCF5", "#E5F5E0", "#C7E9C0", "#A1D99B", "#74C476",
		"#41AB5D", "#238B45", "#006D2C", "#00441B"}},
	"Oranges": {Sequential, false, []string{
		"#FFF5EB", "#FEE6CE", "#FDD0A2", "#FDAE6B", "#FD8D3C",
		"#F16913", "#D94801", "#A63603", "#7F2704"}},
	"Reds": {Sequential, false, []string{
		"#FFF5F0", "#FEE0D2", "#FCBBA1", "#FC9272", "#FB6A4A",
		"#EF3B2C", "#CB181D", "#A50F15", "#67000D"}},
	"YlOrRd": {Sequential, false, []string{
		"#FFFFCC", "#FFEDA0", "#FED976", "#FEB24C", "#FD8D3C",
		"#FC4E2A", "#E31A1C", "#BD0026", "#800026"}},
	"jet": {Sequential, false, []string{
		"#000080", "#0000FF", "#00FFFF", "#FFFF00", "#FF0000", "#800000"}},
	"turbo": {Sequential, false, []string{
		"#30123B", "#3E9BFE", "#46F884", "#E1DD37", "#F05B12", "#7A0403"}},

	"coolwarm": {Diverging, false, []string{
		"#3B4CC0", "#9ABBFF", "#DCDCDC", "#F6A385", "#B40426"}},
	"RdBu": {Diverging, false, []string{
		"#67001F", "#B2182B", "#D6604D", "#F4A582", "#FDDBC7", "#F7F7F7",
		"#D1E5F0", "#92C5DE", "#4393C3", "#2166AC", "#053061"}},
	"Spectral": {Diverging, false, []string{
		"#9E0142", "#D53E4F", "#F46D43", "#FDAE61", "#FEE08B", "#FFFFBF",
		"#E6F598", "#ABDDA4", "#66C2A5", "#3288BD", "#5E4FA2"}},
	"bwr": {Diverging, false, []string{"#0000FF", "#FFFFFF", "#FF0000"}},
	"seismic": {Diverging, false, []string{
		"#00004D", "#0000FF", "#FFFFFF", "#FF0000", "#800000"}},

	"tab10": {Qualitative, true, []string{
		"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
		"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF"}},
	"Set1": {Qualitative, true, []string{
		"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3", "#FF7F00",
		"#FFFF33", "#A65628", "#F781BF", "#999999"}},
	"Accent": {Qualitative, true, []string{
		"#7FC97F", "#BEAED4", "#FDC086", "#FFFF99", "#386CB0",
		"#F0027F", "#BF5B17", "#666666"}},
	"Paired": {Qualitative, true, []string{
		"#A6CEE3", "#1F78B4", "#B2DF8A", "#33A02C", "#FB9A99", "#E31A1C",
		"#FDBF6F", "#FF7F00", "#CAB2D6", "#6A3D9A", "#FFFF99", "#B15928"}},

	"hsv": {Cyclic, false, []string{
		"#FF0000", "#FFFF00", "#00FF00", "#00FFFF", "#0000FF", "#FF00FF", "#FF0000"}},
}

func (bd builtinDef) build(name string) ColorMap {
	clrs := make([]color.RGBA, len(bd.colors))
	for i, h := range bd.colors {
		clrs[i] = colors.MustFromHex(h)
	}
	if bd.listed {
		return NewListed(name, clrs...)
	}
	return NewSegmented(name, clrs...)
}

// IsBuiltin returns whether the given name (optionally with the
// [ReversedSuffix]) is a built-in colormap name.
func IsBuiltin(name string) bool {
	_, ok := builtins[strings.TrimSuffix(name, ReversedSuffix)]
	return ok
}

// Builtin returns the built-in colormap with the given name.
// A name ending in the [ReversedSuffix] returns the reversed form.
func Builtin(name string) (ColorMap, error) {
	base := strings.TrimSuffix(name, ReversedSuffix)
	bd, ok := builtins[base]
	if !ok {
		return nil, fmt.Errorf("cmap.Builtin: got invalid colormap name %q", name)
	}
	cm := bd.build(base)
	if name != base {
		cm = Reverse(cm)
	}
	return cm, nil
}

// BuiltinNames returns the sorted names of the built-in colormaps
// in the given category, or all of them if category is empty.
// The category "categorical" is an alias for [Qualitative].
func BuiltinNames(category string) []string {
	cat := strings.ToLower(category)
	if cat == "categorical" {
		cat = Qualitative
	}
	var names []string
	for nm, bd := range builtins {
		if cat == "" || bd.category == cat {
			names = append(names, nm)
		}
	}
	sort.Strings(names)
	return names
}

// BuiltinCategory returns the category of the given built-in
// colormap name, or "" if it is not built-in.
func BuiltinCategory(name string) string {
	bd, ok := builtins[strings.TrimSuffix(name, ReversedSuffix)]
	if !ok {
		return ""
	}
	return bd.category
}
