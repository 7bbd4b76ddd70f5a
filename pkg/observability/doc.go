// Package observability provides structured logging, Prometheus metrics,
// and health checks for the SpoolTrack service.
//
// The Logger wraps log/slog with a JSON handler and supports field chaining:
//
//	logger := observability.NewLogger(observability.InfoLevel, os.Stdout)
//	logger.WithField("resource", "project").Info("record created")
//
// Request-scoped loggers are carried through context.Context; handlers call
// observability.FromContext(ctx) to pick up the request id automatically.
//
// Metrics are registered against a caller-supplied prometheus.Registry so
// tests can use isolated registries without duplicate-registration panics.
package observability
