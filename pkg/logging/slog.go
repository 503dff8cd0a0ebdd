package logging

import (
	"io"
	"log/slog"
)

// New builds the process logger. The console owns stdout, so callers
// usually hand in the error-log file from config.
func New(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(h)
}
