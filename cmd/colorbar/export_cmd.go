// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gocolorbar.org/colorbar"
	"gocolorbar.org/colorbar/base/imagex"
	"gocolorbar.org/colorbar/render"
)

func runExport(args []string) int {
	fs := flag.NewFlagSet("colorbar export", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		maps       = fs.Bool("maps", false, "export colormap strips only")
		bars       = fs.Bool("bars", false, "export colorbars only")
		category   = fs.String("category", "", "only export names in this category")
		out        = fs.String("o", "", "output directory (required)")
		width      = fs.Int("width", 0, "strip width in pixels")
		height     = fs.Int("height", 0, "strip height in pixels")
		configPath = fs.String("config", "", "TOML config file")
		v          = fs.Bool("v", false, "verbose logging")
		vv         = fs.Bool("vv", false, "very verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	verbosity(*v, *vv)
	if *out == "" {
		fmt.Fprintln(os.Stderr, "Error: export requires -o DIR.")
		return 2
	}
	if err := preload(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	both := *maps == *bars
	n, failed := 0, 0
	if *maps || both {
		dir := filepath.Join(*out, "colormaps")
		if err := os.MkdirAll(dir, 0750); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		for _, name := range colorbar.AvailableColormaps(*category) {
			cm, err := colorbar.GetColormap(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", name, err)
				failed++
				continue
			}
			img := render.ColormapStrip(cm, *width, *height)
			if err := imagex.Save(img, filepath.Join(dir, name+".png")); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
				failed++
				continue
			}
			n++
		}
	}
	if *bars || both {
		dir := filepath.Join(*out, "colorbars")
		if err := os.MkdirAll(dir, 0750); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		for _, name := range colorbar.AvailableColorbars(*category, true) {
			img, err := colorbar.RenderColorbar(name, *width, *height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", name, err)
				failed++
				continue
			}
			if err := imagex.Save(img, filepath.Join(dir, name+".png")); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
				failed++
				continue
			}
			n++
		}
	}

	fmt.Printf("Exported %d images to %s\n", n, *out)
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d renders failed\n", failed)
		return 1
	}
	return 0
}
