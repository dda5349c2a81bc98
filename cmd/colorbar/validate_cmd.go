// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"gocolorbar.org/colorbar"
)

func runValidate(args []string) int {
	fs := flag.NewFlagSet("colorbar validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		maps       = fs.Bool("maps", false, "the given paths hold colormaps; validate colormaps only")
		bars       = fs.Bool("bars", false, "the given paths hold colorbar settings; validate colorbar settings only")
		configPath = fs.String("config", "", "TOML config file")
		v          = fs.Bool("v", false, "verbose logging")
		vv         = fs.Bool("vv", false, "very verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	verbosity(*v, *vv)
	if err := preload(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	if fs.NArg() > 0 && *maps == *bars {
		fmt.Fprintln(os.Stderr, "Error: paths require either -maps or -bars to state what they hold.")
		return 2
	}
	for _, path := range fs.Args() {
		if err := registerPath(path, *maps); err != nil {
			fmt.Fprintf(os.Stderr, "Error registering %s: %v\n", path, err)
			return 1
		}
	}

	both := *maps == *bars
	failed := false
	if *maps || both {
		if err := colorbar.ValidateColormaps(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid colormap settings:", err)
			failed = true
		}
	}
	if *bars || both {
		if err := colorbar.ValidateColorbars(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid colorbar settings:", err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	fmt.Println("All settings are valid.")
	return 0
}

// registerPath registers a settings file or directory into the
// colormap or colorbar registry.
func registerPath(path string, asColormaps bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	switch {
	case info.IsDir() && asColormaps:
		return colorbar.RegisterColormaps(path)
	case info.IsDir():
		return colorbar.RegisterColorbars(path)
	case asColormaps:
		return colorbar.RegisterColormap(path)
	default:
		return colorbar.RegisterColorbar(path)
	}
}
