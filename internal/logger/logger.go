package logger

import (
	"log/slog"
	"os"
)

// New creates the process-wide slog.Logger. Output is JSON on stdout at info
// level, tagged with the service name so aggregated logs stay filterable.
func New() *slog.Logger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel creates a logger at an explicit level.
func NewWithLevel(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "cakeshop"))
}
