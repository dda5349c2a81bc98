// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides logging on top of [log/slog] with
// level-colored output for interactive terminals.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected,
// which controls which log messages are printed. It defaults to
// [slog.LevelInfo] (or [slog.LevelDebug] with the debug build tag,
// [slog.LevelWarn] with release) and should typically be set through
// [SetVerbosity] by an end-user flag.
var UserLevel = defaultUserLevel

// SetVerbosity sets [UserLevel] from a count of verbose flags:
// 0 is the build default, 1 is debug, and 2 or more enables all
// messages.
func SetVerbosity(v int) {
	switch {
	case v <= 0:
		UserLevel = defaultUserLevel
	case v == 1:
		UserLevel = slog.LevelDebug
	default:
		UserLevel = slog.Level(-8)
	}
	Init()
}

// Init sets the default [slog] logger to a [Handler] writing
// to [os.Stderr] at [UserLevel]. It is called automatically with
// default settings in an init function, and should be called again
// whenever [UserLevel] is changed directly.
func Init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func init() {
	Init()
}
