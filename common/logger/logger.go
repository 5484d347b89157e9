package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/lmittmann/tint"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Logger wraps slog.Logger. Error calls carry a stack trace.
type Logger struct {
	*slog.Logger
}

// New builds a logger writing to stdout. Format "json" selects the slog
// JSON handler; anything else gets tint's colored console handler.
func New(level, format string) *Logger {
	return &Logger{Logger: slog.New(newHandler(parseLevel(level), format))}
}

func newHandler(level slog.Level, format string) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
}

// WithFields returns a logger carrying the given fields on every record.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{Logger: l.With(args...)}
}

// WithComponent tags records with the emitting component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.With("component", component)}
}

// Error logs at error level with the current stack attached.
func (l *Logger) Error(msg string, args ...any) {
	l.Logger.Error(msg, append(args, "stack", string(debug.Stack()))...)
}

// ErrorContext is Error with a context for handler-aware backends.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.Logger.ErrorContext(ctx, msg, append(args, "stack", string(debug.Stack()))...)
}

func parseLevel(name string) slog.Level {
	if lvl, ok := levels[name]; ok {
		return lvl
	}
	return slog.LevelInfo
}
