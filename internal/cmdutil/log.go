// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger on dst. quiet keeps warnings and errors
// only; verbose adds per-record debug lines.
func NewLogger(dst io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level}))
}
