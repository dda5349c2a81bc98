// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"gocolorbar.org/colorbar"
	"gocolorbar.org/colorbar/cmap"
)

// swatchBlocks is the number of color cells in a terminal swatch.
const swatchBlocks = 10

func runList(args []string) int {
	fs := flag.NewFlagSet("colorbar list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		maps       = fs.Bool("maps", false, "list colormaps only")
		bars       = fs.Bool("bars", false, "list colorbar settings only")
		category   = fs.String("category", "", "only list names in this category")
		reversed   = fs.Bool("reversed", false, "include reversed colormap names")
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

	both := *maps == *bars
	out := termenv.NewOutput(os.Stdout)

	if *maps || both {
		if both {
			fmt.Println("Colormaps:")
		}
		for _, name := range colorbar.AvailableColormaps(*category, *reversed) {
			fmt.Println(swatched(out, name, name))
		}
	}
	if *bars || both {
		if both {
			fmt.Println("\nColorbar settings:")
		}
		for _, name := range colorbar.AvailableColorbars(*category) {
			spec, err := colorbar.ColorbarSpec(name)
			if err != nil || spec.Cmap == nil || len(spec.Cmap.Name) == 0 {
				fmt.Println(name)
				continue
			}
			fmt.Println(swatched(out, name, spec.Cmap.Name[0]))
		}
	}
	return 0
}

// swatched prefixes name with a terminal color swatch of the given
// colormap when the terminal supports color, and returns the name
// unadorned otherwise.
func swatched(out *termenv.Output, name, cmapName string) string {
	if out.Profile == termenv.Ascii {
		return name
	}
	cm, err := colorbar.GetColormap(cmapName)
	if err != nil {
		return strings.Repeat(" ", swatchBlocks) + " " + name
	}
	return swatch(out, cm) + " " + name
}

// swatch renders the colormap as a strip of background-colored
// terminal cells.
func swatch(out *termenv.Output, cm cmap.ColorMap) string {
	var sb strings.Builder
	for i := 0; i < swatchBlocks; i++ {
		c := cm.Map((float32(i) + 0.5) / swatchBlocks)
		sb.WriteString(out.String(" ").Background(out.Profile.FromColor(c)).String())
	}
	return sb.String()
}
