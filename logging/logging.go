// Package logging configures structured logging for taxopath commands.
//
// Built on log/slog: text output on stderr by default (Unix CLI
// convention), JSON when machine-parsed output is wanted, discard in quiet
// mode. Every component receives a *slog.Logger and never touches global
// state, so tests can inject their own handlers.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrBadLevel indicates an unrecognized level name.
var ErrBadLevel = errors.New("logging: unknown level")

// Config controls handler construction. The zero value yields an
// info-level text logger on stderr.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Empty means info.
	Level string

	// JSON switches the handler to one-object-per-line JSON output.
	JSON bool

	// Quiet discards all log output. Batch and summary files are still
	// written; only diagnostics are silenced.
	Quiet bool
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}
}

// New builds a logger from cfg. Unknown level names are an error so typos
// fail fast instead of silently logging at the wrong level.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	if cfg.Quiet {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}
