// Package observability groups logging, metrics and tracing support.
//
// Subpackages:
//   - logging: structured slog loggers with request-scoped context helpers
//   - metrics: Prometheus counters for domain events
//   - tracing: OpenTelemetry tracer setup and HTTP middleware
package observability
