package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is replaced by Init; the default keeps packages usable in tests and tools.
var Log = slog.Default()

// Init installs the JSON logger. Debug records are dropped in production.
func Init(service string, production bool) {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	Log = slog.New(handler).With("service", service)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
