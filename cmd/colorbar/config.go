// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gocolorbar.org/colorbar"
)

// cliConfig is the optional TOML configuration of the tool, holding
// settings directories to preload into the default registries.
type cliConfig struct {
	ColormapDirs []string `toml:"colormap_dirs"`
	ColorbarDirs []string `toml:"colorbar_dirs"`
}

// defaultConfigPath returns the standard config file location,
// honoring XDG_CONFIG_HOME.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "colorbar", "config.toml")
}

// loadConfig reads the TOML config at the given path, falling back
// on the default location when path is empty. A missing default file
// is not an error; a missing explicit one is.
func loadConfig(path string) (*cliConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return &cliConfig{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &cliConfig{}, nil
		}
		return nil, err
	}
	cfg := &cliConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return cfg, nil
}

// preload loads the config file and registers its settings
// directories into the default registries.
func preload(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	for _, dir := range cfg.ColormapDirs {
		if err := colorbar.RegisterColormaps(dir); err != nil {
			slog.Warn("registering colormap directory failed", "dir", dir, "err", err)
		}
	}
	for _, dir := range cfg.ColorbarDirs {
		if err := colorbar.RegisterColorbars(dir); err != nil {
			slog.Warn("registering colorbar directory failed", "dir", dir, "err", err)
		}
	}
	return nil
}
