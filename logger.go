package colgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with colgo-specific context.
// This provides structured logging with consistent field names.
//
// The kernel itself is silent: it is pure compute on the query hot path.
// The logger exists for the surrounding operator code built on this
// library, so batch-level events can be reported uniformly.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRows adds a row-count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// WithEntries adds an entry-count field to the logger.
func (l *Logger) WithEntries(entries int) *Logger {
	return &Logger{
		Logger: l.Logger.With("entries", entries),
	}
}

// LogTake logs a batch take operation.
func (l *Logger) LogTake(sourceRows, rows int, err error) {
	if err != nil {
		l.Error("take failed",
			"source_rows", sourceRows,
			"rows", rows,
			"error", err,
		)
	} else {
		l.Debug("take completed",
			"source_rows", sourceRows,
			"rows", rows,
		)
	}
}
