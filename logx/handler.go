// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] whose output is formatted for reading
// on a terminal, with the level tag colored when the terminal
// supports it. Levels below [UserLevel] are not printed.
type Handler struct {
	mu     sync.Mutex
	w      io.Writer
	out    *termenv.Output
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, out: termenv.NewOutput(w)}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelColor is the ANSI color used for each level tag.
func (h *Handler) levelColor(level slog.Level) termenv.Color {
	p := h.out.Profile
	switch {
	case level >= slog.LevelError:
		return p.Color("1") // red
	case level >= slog.LevelWarn:
		return p.Color("3") // yellow
	case level >= slog.LevelInfo:
		return p.Color("4") // blue
	default:
		return p.Color("5") // magenta
	}
}

// Handle formats the record as "LEVEL message key=value ..." and
// writes it on one line.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	tag := h.out.String(r.Level.String()).Foreground(h.levelColor(r.Level)).Bold()
	b.WriteString(tag.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		writeAttr(&b, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(fmt.Sprintf("%v", a.Value.Resolve().Any()))
}

// WithAttrs returns a new handler with the given attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{w: h.w, out: h.out, groups: h.groups}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

// WithGroup returns a new handler with the given group name added.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{w: h.w, out: h.out, attrs: h.attrs}
	nh.groups = append(append([]string{}, h.groups...), name)
	return nh
}
