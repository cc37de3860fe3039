package colgo

import "log/slog"

type options struct {
	logger *Logger
}

// Option configures batch construction behavior.
type Option func(*options)

// WithLogger configures structured logging for batch operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := colgo.NewJSONLogger(slog.LevelDebug)
//	batch, _ := colgo.NewBatch(entries, rows, colgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
