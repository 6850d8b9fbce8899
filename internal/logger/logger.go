package logger

import (
	"io"
	"log/slog"
	"os"
)

// creates a new structured logger (w/ specified debug level)
func New(debug bool) *slog.Logger {
	if !debug {
		// create a logger that discards all log messages
		return NewWithWriter(io.Discard, slog.LevelError)
	}
	return NewWithWriter(os.Stderr, slog.LevelDebug)
}

// NewWithWriter creates a text logger writing records at or above level to w
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
