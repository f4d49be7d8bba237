// Package logger provides structured logging using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/zapponejosh/kalender-jawa/internal/config"
)

type contextKey string

const (
	// RequestIDKey is the context key for request IDs
	RequestIDKey contextKey = "request_id"
)

// Setup builds the application logger from configuration, writing to w,
// and installs it as the slog default. Call this once at startup.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	logger := New(w, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return logger
}

// New creates a logger without touching the slog default.
// Source locations are added at debug level.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a string log level to slog.Level.
// Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID extracts the request ID from context.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns base tagged with the request ID from ctx, if any.
// A nil base means the slog default.
func FromContext(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	if requestID := RequestID(ctx); requestID != "" {
		return base.With(slog.String("request_id", requestID))
	}
	return base
}

// Conversion logs a completed conversion at debug level.
func Conversion(ctx context.Context, base *slog.Logger, direction, input, formatted string) {
	FromContext(ctx, base).DebugContext(ctx, "conversion",
		slog.String("direction", direction),
		slog.String("input", input),
		slog.String("result", formatted),
	)
}
