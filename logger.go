package rectgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rectgo-specific helpers. Only
// construction-time operations log; the read paths stay silent.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, a text handler to stderr at Info level is used.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogBulkLoad logs a completed bulk construction.
func (l *Logger) LogBulkLoad(entries, capacity, depth int) {
	l.Debug("bulk load completed",
		"entries", entries,
		"capacity", capacity,
		"depth", depth,
	)
}

// LogUpdate logs a completed structural update.
func (l *Logger) LogUpdate(removed, inserted, total int) {
	l.Debug("update completed",
		"removed", removed,
		"inserted", inserted,
		"total", total,
	)
}
