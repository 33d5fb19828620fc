// Package observability groups the logging, metrics and tracing
// infrastructure used by the numconv API and CLI.
//
// This package centralizes observability concerns to enable:
//   - Request correlation through request and trace IDs
//   - Structured logging with context propagation
//   - Prometheus metrics for HTTP traffic, calculations and history
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus collectors and recorders
//   - tracing: OpenTelemetry tracer, provider setup and HTTP middleware
package observability
