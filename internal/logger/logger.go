package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a preconfigured slog.Logger writing JSON to stdout.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a logger targeting the provided writer.
func NewWithWriter(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
