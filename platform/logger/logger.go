// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RunIDKey is the context key for the pipeline run ID
	RunIDKey contextKey = "run_id"
	// RecordKey is the context key for the source record number
	RecordKey contextKey = "record"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger with context values extracted.
// Supports run_id and record from context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	newLogger := l

	if runID, ok := ctx.Value(RunIDKey).(string); ok && runID != "" {
		newLogger = newLogger.WithRunID(runID)
	}

	if record, ok := ctx.Value(RecordKey).(int); ok && record > 0 {
		newLogger = &Logger{
			Logger: newLogger.With(slog.Int("record", record)),
		}
	}

	return newLogger
}

// WithRunID returns a logger with the pipeline run ID
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("run_id", runID)),
	}
}

// WithRecord returns a logger with the source record number
func (l *Logger) WithRecord(record int) *Logger {
	return &Logger{
		Logger: l.With(slog.Int("record", record)),
	}
}

// DirectoryCall logs a directory service round-trip
func (l *Logger) DirectoryCall(operation string, status int, latencyMs float64) {
	l.Debug("directory_call",
		slog.String("operation", operation),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
	)
}

// DirectoryError logs a failed directory service call
func (l *Logger) DirectoryError(operation string, err error) {
	l.Error("directory_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// RecordFailure logs a record that could not be fully processed
func (l *Logger) RecordFailure(directoryID, reason string, err error) {
	attrs := []any{
		slog.String("directory_id", directoryID),
		slog.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.Error("record_failure", attrs...)
}

// MatchEvent logs a candidate resolution hit
func (l *Logger) MatchEvent(strategy, key string, ids []string) {
	l.Info("match_event",
		slog.String("strategy", strategy),
		slog.String("key", key),
		slog.Int("matches", len(ids)),
		slog.Any("ids", ids),
	)
}
