// Package observability groups the site's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog JSON/text loggers with request id propagation
//   - metrics: Prometheus collectors for HTTP traffic, museum API calls and content
//   - tracing: OpenTelemetry server middleware and the shared tracer
package observability
