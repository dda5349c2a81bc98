// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"gocolorbar.org/colorbar"
	"gocolorbar.org/colorbar/base/imagex"
	"gocolorbar.org/colorbar/render"
)

func runShow(args []string) int {
	fs := flag.NewFlagSet("colorbar show", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		out        = fs.String("o", "", "output image file (default NAME.png)")
		width      = fs.Int("width", 0, "strip width in pixels")
		height     = fs.Int("height", 0, "strip height in pixels")
		scale      = fs.Float64("scale", 1, "scale factor for the output image")
		configPath = fs.String("config", "", "TOML config file")
		v          = fs.Bool("v", false, "verbose logging")
		vv         = fs.Bool("vv", false, "very verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "Error: show requires a NAME argument.")
		return 2
	}
	name := rest[0]
	// flags may also follow the name
	if len(rest) > 1 {
		if err := fs.Parse(rest[1:]); err != nil {
			return 2
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(os.Stderr, "Error: show takes exactly one NAME argument.")
			return 2
		}
	}
	verbosity(*v, *vv)
	if err := preload(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
	img, err := renderNamed(name, *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	img = render.Scale(img, float32(*scale))

	path := *out
	if path == "" {
		path = name + ".png"
	}
	if err := imagex.Save(img, path); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	fmt.Println("Wrote", path)
	return 0
}

// renderNamed renders the colorbar setting with the given name, or
// the plain strip of the colormap with that name when no colorbar
// setting has it.
func renderNamed(name string, width, height int) (image.Image, error) {
	if colorbar.Colorbars().Contains(name) {
		return colorbar.RenderColorbar(name, width, height)
	}
	cm, err := colorbar.GetColormap(name)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a colorbar setting nor a colormap", name)
	}
	return render.ColormapStrip(cm, width, height), nil
}
