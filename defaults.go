// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorbar

import (
	"embed"
	"sync"

	"gocolorbar.org/colorbar/base/errors"
	"gocolorbar.org/colorbar/settings"
)

//go:embed etc/colormaps/*.yaml etc/colorbars/*.yaml
var defaultsFS embed.FS

var (
	colormaps = settings.NewColormapRegistry()
	colorbars = settings.NewColorbarRegistry(colormaps)

	defaultsOnce sync.Once
)

// loadDefaults registers the embedded default settings into the
// default registries, once.
func loadDefaults() {
	defaultsOnce.Do(func() {
		errors.Log(colormaps.RegisterDirFS(defaultsFS, "etc/colormaps"))
		errors.Log(colorbars.RegisterDirFS(defaultsFS, "etc/colorbars"))
	})
}
