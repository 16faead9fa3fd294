package logging

import (
	"io"
	"log/slog"
)

// NewStructuredLogger creates a slog logger writing text-formatted records to w
// at the given minimum level.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// ForComponent returns a logger with a "component" attribute attached, used to
// tag log lines emitted by a specific subsystem.
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("component", component))
}

// SafeCloseWithLogging closes c and logs the error, if any. Intended for use
// in defer statements where the close error would otherwise be discarded.
func SafeCloseWithLogging(c io.Closer, logger *slog.Logger, name string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("failed to close resource", "resource", name, "error", err)
	}
}
