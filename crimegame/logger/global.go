package logger

import (
	"log/slog"
	"time"
)

// LogAction logs an action resolver outcome.
func LogAction(name string, success bool, attrs ...any) {
	base := []any{
		slog.String("type", "act"),
		slog.String("action", name),
		slog.Bool("success", success),
	}
	slog.Debug("Action resolved", append(base, attrs...)...)
}

// LogSave logs persistence operations.
func LogSave(backend string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "save"),
		slog.String("backend", backend),
		slog.Duration("took", duration),
	}
	if err != nil {
		slog.Error("Save failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Debug("State saved", attrs...)
	}
}

// LogSystem logs system events.
func LogSystem(msg string, attrs ...any) {
	base := []any{slog.String("type", "sys")}
	slog.Info(msg, append(base, attrs...)...)
}

// LogError logs error events.
func LogError(msg string, err error, attrs ...any) {
	base := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(base, attrs...)...)
}
