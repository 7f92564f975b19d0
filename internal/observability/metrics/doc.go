// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the application metrics:
//   - HTTP request metrics (duration, count, size)
//   - Museum API client metrics (calls by operation and outcome, latency, circuit state)
//   - Content metrics (record counts, form submissions, logins)
//
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint.
package metrics
