package soa

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with table-specific helpers.
// This provides structured logging with consistent field names.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Tables use it unless WithLogger is given.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithTable adds the schema's field names to the logger.
func (l *Logger) WithTable(fields []string) *Logger {
	return &Logger{
		Logger: l.Logger.With("fields", fields),
	}
}

// LogGrow logs a reallocation of all columns.
func (l *Logger) LogGrow(op string, length, oldCap, newCap int) {
	l.Debug("columns reallocated",
		"op", op,
		"len", length,
		"old_cap", oldCap,
		"new_cap", newCap,
	)
}

// LogReorder logs a permutation applied to all columns.
func (l *Logger) LogReorder(op string, rows int) {
	l.Debug("rows reordered",
		"op", op,
		"rows", rows,
	)
}

// LogSplit logs rows moved between tables by SplitOff or Append.
func (l *Logger) LogSplit(op string, moved, remaining int) {
	l.Debug("rows moved",
		"op", op,
		"rows", moved,
		"len", remaining,
	)
}

// LogCompact logs a bitmap-driven compaction.
func (l *Logger) LogCompact(removed, remaining int) {
	if removed == 0 {
		return
	}
	l.Debug("rows compacted",
		"removed", removed,
		"len", remaining,
	)
}
