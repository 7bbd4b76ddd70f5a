package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LogLevel selects the minimum severity the logger emits
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Logger emits structured JSON log lines, one per event. Field chaining
// (WithField, WithError) returns derived loggers; the receiver is never
// mutated, so a logger can be shared across requests.
type Logger struct {
	inner *slog.Logger
}

// NewLogger creates a JSON logger writing to output at the given level.
// A nil output writes to stdout.
func NewLogger(level LogLevel, output io.Writer) *Logger {
	if output == nil {
		output = os.Stdout
	}
	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: level.slogLevel(),
	})
	return &Logger{inner: slog.New(handler)}
}

// WithField returns a logger that adds key=value to every line it emits
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{inner: l.inner.With(key, value)}
}

// WithFields returns a logger carrying all the given fields
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{inner: l.inner.With(args...)}
}

// WithError attaches the error message under the "error" key. A nil error
// returns the receiver unchanged.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

// Debug logs at debug severity
func (l *Logger) Debug(message string) {
	l.inner.Debug(message)
}

// Info logs at info severity
func (l *Logger) Info(message string) {
	l.inner.Info(message)
}

// Warn logs at warn severity
func (l *Logger) Warn(message string) {
	l.inner.Warn(message)
}

// Error logs at error severity
func (l *Logger) Error(message string) {
	l.inner.Error(message)
}

// Context plumbing. The request-id middleware stores the id, the logging
// middleware stores the request logger; FromContext recombines the two for
// handler code.

type requestIDKey struct{}

type loggerKey struct{}

// WithRequestID stores the request id in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID returns the request id, or "" when none was assigned
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithLogger stores the logger in the context
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the context logger, or a default info-level stdout logger
// when the request never passed through the logging middleware.
func GetLogger(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return logger
	}
	return NewLogger(InfoLevel, os.Stdout)
}

// FromContext returns the request logger tagged with the request id
func FromContext(ctx context.Context) *Logger {
	logger := GetLogger(ctx)
	if id := GetRequestID(ctx); id != "" {
		logger = logger.WithField("request_id", id)
	}
	return logger
}
