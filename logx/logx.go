// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides logging to the user at levels controlled
// by verbosity flags, with colors when printing to a terminal.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level selected by the user. Messages
// below this level are not shown.
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the log level indicated by the given
// verbosity flags: -vv, -v, and -q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Init sets the default logger to one printing to standard error
// at the given level.
func Init(level slog.Level) {
	UserLevel = level
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

var colorProfile = termenv.ColorProfile()

// LevelColor colors the given string by the color associated with
// the given level (red for errors, yellow for warnings, green for
// info, and gray for debug).
func LevelColor(level slog.Level, s string) string {
	var c termenv.ANSIColor
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSIGreen
	default:
		c = termenv.ANSIBrightBlack
	}
	return termenv.String(s).Foreground(colorProfile.Convert(c)).String()
}

// Handler is a [slog.Handler] that prints compact single-line
// messages meant to be read by the user of a command line tool,
// not collected from a server.
type Handler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs string
	group string
}

// NewHandler returns a new [Handler] printing to the given writer.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(LevelColor(r.Level, r.Level.String()))
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(b, " %s%s=%v", h.group, a.Key, a.Value)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	b := &strings.Builder{}
	b.WriteString(h.attrs)
	for _, a := range attrs {
		fmt.Fprintf(b, " %s%s=%v", h.group, a.Key, a.Value)
	}
	h2.attrs = b.String()
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.group = h.group + name + "."
	return &h2
}
