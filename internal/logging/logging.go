// Package logging configures the structured logger for beeget.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminalHandler returns a slog handler writing human-readable output
// to stderr. Colors are enabled only when stderr is a terminal, so piped
// and redirected output stays plain.
func NewTerminalHandler(verbose bool) slog.Handler {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
}

// New returns a logger for the CLI.
func New(verbose bool) *slog.Logger {
	return slog.New(NewTerminalHandler(verbose))
}
