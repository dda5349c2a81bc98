// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorbar lists, validates, renders and exports the
// colormaps and colorbar settings of the colorbar registries.
package main

import (
	"fmt"
	"os"

	"gocolorbar.org/colorbar/logx"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help" {
		printUsage()
		if len(os.Args) < 2 {
			os.Exit(2)
		}
		os.Exit(0)
	}

	switch os.Args[1] {
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "validate":
		os.Exit(runValidate(os.Args[2:]))
	case "show":
		os.Exit(runShow(os.Args[2:]))
	case "export":
		os.Exit(runExport(os.Args[2:]))
	case "version", "-version", "--version":
		fmt.Println("colorbar", version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  colorbar list [-maps|-bars] [-category C] [-reversed]")
	fmt.Fprintln(os.Stderr, "  colorbar validate [-maps|-bars] [paths...]")
	fmt.Fprintln(os.Stderr, "  colorbar show NAME [-o out.png] [-width N] [-height N] [-scale F]")
	fmt.Fprintln(os.Stderr, "  colorbar export [-maps|-bars] [-category C] -o DIR")
	fmt.Fprintln(os.Stderr, "  colorbar version")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Common flags: -config FILE (TOML), -v / -vv for verbose logging.")
}

// verbosity applies the -v and -vv flags to the logger.
func verbosity(v, vv bool) {
	switch {
	case vv:
		logx.SetVerbosity(2)
	case v:
		logx.SetVerbosity(1)
	}
}
