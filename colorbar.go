// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorbar provides YAML-defined colormaps and colorbar
// settings: registries that load, validate and serve them, and
// rendering of colorbars into images.
//
// This package is a thin convenience layer over default registries;
// use [gocolorbar.org/colorbar/settings] directly for independent
// registry instances.
package colorbar

import (
	"image"
	"log/slog"
	"slices"

	"gocolorbar.org/colorbar/cmap"
	"gocolorbar.org/colorbar/render"
	"gocolorbar.org/colorbar/settings"
)

// Colormaps returns the default colormap registry, with the embedded
// default colormaps registered.
func Colormaps() *settings.ColormapRegistry {
	loadDefaults()
	return colormaps
}

// Colorbars returns the default colorbar settings registry, with the
// embedded default settings registered.
func Colorbars() *settings.ColorbarRegistry {
	loadDefaults()
	return colorbars
}

// RegisterColormaps registers every colormap YAML file under the
// given directory into the default registry.
func RegisterColormaps(dir string) error {
	return Colormaps().RegisterDir(dir)
}

// RegisterColormap registers the colormap YAML file at the given
// path into the default registry.
func RegisterColormap(path string, force ...bool) error {
	return Colormaps().Register(path, force...)
}

// GetColormap returns the colormap with the given name from the
// default registry, resampled to lut colors if given.
func GetColormap(name string, lut ...int) (cmap.ColorMap, error) {
	return Colormaps().Get(name, lut...)
}

// ColormapSpec returns the validated colormap specification with the
// given name from the default registry.
func ColormapSpec(name string) (*settings.ColormapSpec, error) {
	return Colormaps().Spec(name)
}

// AvailableColormaps returns the names of the registered and builtin
// colormaps in the given category, or all of them when category is
// empty.
func AvailableColormaps(category string, includeReversed ...bool) []string {
	rev := len(includeReversed) > 0 && includeReversed[0]
	names := Colormaps().Available(category, includeReversed...)
	for _, name := range cmap.BuiltinNames(category) {
		names = append(names, name)
		if rev {
			names = append(names, cmap.ReversedName(name))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// ValidateColormaps validates the given registered colormaps, or all
// of them when no name is given.
func ValidateColormaps(names ...string) error {
	return Colormaps().Validate(names...)
}

// RegisterColorbars registers every colorbar settings YAML file under
// the given directory into the default registry.
func RegisterColorbars(dir string) error {
	return Colorbars().RegisterDir(dir)
}

// RegisterColorbar registers the colorbar settings YAML file at the
// given path into the default registry.
func RegisterColorbar(path string, force ...bool) error {
	return Colorbars().Register(path, force...)
}

// ColorbarSpec returns the colorbar setting with the given name from
// the default registry, following its reference to the settings it
// points at unless resolveReference is false.
func ColorbarSpec(name string, resolveReference ...bool) (*settings.ColorbarSpec, error) {
	resolve := true
	if len(resolveReference) > 0 {
		resolve = resolveReference[0]
	}
	return Colorbars().Spec(name, resolve)
}

// AvailableColorbars returns the names of the registered colorbar
// settings in the given category, or all of them when category is
// empty.
func AvailableColorbars(category string, excludeReferenced ...bool) []string {
	return Colorbars().Available(category, excludeReferenced...)
}

// ValidateColorbars validates the given registered colorbar settings,
// or all of them when no name is given.
func ValidateColorbars(names ...string) error {
	return Colorbars().Validate(names...)
}

// renderOptions turns a resolved render spec into render options of
// the given strip size.
func renderOptions(rs *settings.RenderSpec, width, height int) *render.Options {
	o := &render.Options{
		Width:      width,
		Height:     height,
		Extend:     rs.Extend,
		ExtendRect: rs.ExtendRect,
		Label:      rs.Label,
		Ticks:      rs.Ticks,
		TickLabels: rs.TickLabels,
	}
	if len(rs.ExtendFrac) > 0 {
		o.ExtendFrac = rs.ExtendFrac[0]
	}
	return o
}

// RenderColorbar renders the colorbar setting with the given name as
// an image with a strip of the given size, with any override settings
// merged on top first. Zero width and height use the default size.
func RenderColorbar(name string, width, height int, overrides ...*settings.ColorbarSpec) (image.Image, error) {
	rs, err := Colorbars().RenderSpec(name, overrides...)
	if err != nil {
		return nil, err
	}
	return render.Colorbar(rs.ColorMap, rs.Norm, renderOptions(rs, width, height)), nil
}

// RenderColorbars renders every standalone colorbar setting in the
// given category, or all of them when category is empty, as a titled
// grid. Settings that fail to build are skipped with a warning.
func RenderColorbars(category string, width, height int) image.Image {
	names := AvailableColorbars(category, true)
	items := make([]render.GridItem, 0, len(names))
	for _, name := range names {
		rs, err := Colorbars().RenderSpec(name)
		if err != nil {
			slog.Warn("skipping colorbar", "name", name, "err", err)
			continue
		}
		items = append(items, render.GridItem{
			Title: name,
			Image: render.Colorbar(rs.ColorMap, rs.Norm, renderOptions(rs, width, height)),
		})
	}
	return render.Grid(items, 2)
}

// RenderColormaps renders every registered and builtin colormap in
// the given category, or all of them when category is empty, as a
// titled grid of gradient strips.
func RenderColormaps(category string, width, height int) image.Image {
	names := AvailableColormaps(category)
	items := make([]render.GridItem, 0, len(names))
	for _, name := range names {
		cm, err := GetColormap(name)
		if err != nil {
			slog.Warn("skipping colormap", "name", name, "err", err)
			continue
		}
		items = append(items, render.GridItem{
			Title: name,
			Image: render.ColormapStrip(cm, width, height),
		})
	}
	return render.Grid(items, 2)
}
