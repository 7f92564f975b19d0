// Package tracing provides OpenTelemetry tracing integration.
//
// Setup installs an SDK tracer provider and the W3C trace context propagator.
// Middleware opens a server span per request; the museum API client opens a
// client span per call and injects the trace context into outgoing headers, so
// a page render and the API calls it causes share one trace id.
package tracing
