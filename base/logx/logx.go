// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the process-wide logging level and
// handler set-up on top of [log/slog].
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It is the level used by the handler installed with [SetDefault].
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(defaultUserLevel)
}

// ParseLevel returns the [slog.Level] for the given name
// (debug, info, warn, error), case insensitive.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return defaultUserLevel, fmt.Errorf("logx.ParseLevel: unknown level %q", name)
}

// SetDefault sets [UserLevel] to the given level and installs a text
// handler writing to w (stderr if nil) as the [slog] default logger.
func SetDefault(w io.Writer, level slog.Level) {
	if w == nil {
		w = os.Stderr
	}
	UserLevel.Set(level)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}
