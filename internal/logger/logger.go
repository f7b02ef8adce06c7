// Package logger builds the structured logger shared by the CLI and service.
// Debug output is only emitted in verbose mode.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to w. A nil w writes to stderr.
func New(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// VerboseFromEnv reports whether BRANDRADAR_VERBOSE is set to a truthy value.
func VerboseFromEnv() bool {
	switch os.Getenv("BRANDRADAR_VERBOSE") {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}
