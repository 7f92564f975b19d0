// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "museum_web"

// Served requests, labelled by normalized route.
var (
	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "http",
		Name: "requests_in_flight",
		Help: "Requests currently being served.",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "http",
		Name: "requests_total",
		Help: "Served requests by method, route and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: "http",
		Name:    "request_duration_seconds",
		Help:    "Time to serve a request.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// Pages are a few KB to a few hundred KB; the RSS feed is the largest.
	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: "http",
		Name:    "response_size_bytes",
		Help:    "Response body size.",
		Buckets: prometheus.ExponentialBuckets(256, 4, 7),
	}, []string{"method", "path"})
)

// Outbound calls to the museum API.
var (
	// MuseumAPIRequestsTotal outcomes: success, not_found, unauthorized,
	// rejected, network_error, http_error.
	MuseumAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_api_requests_total",
		Help: "Museum API calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	// MuseumAPIRequestDuration includes retries.
	MuseumAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "museum_api_request_duration_seconds",
		Help:    "Museum API call latency.",
		Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"operation"})

	MuseumAPICircuitOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "museum_api_circuit_open",
		Help: "1 while the museum API circuit breaker is open.",
	})

	MuseumAPIUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "museum_api_up",
		Help: "1 if the last availability probe succeeded.",
	})
)

// RecordHTTPRequest observes one served request. Empty bodies (redirects,
// 304s) are left out of the size histogram.
func RecordHTTPRequest(method, path, status string, d time.Duration, size int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
	if size > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(size))
	}
}

// RecordMuseumAPIRequest observes one completed API call.
func RecordMuseumAPIRequest(operation, outcome string, d time.Duration) {
	MuseumAPIRequestsTotal.WithLabelValues(operation, outcome).Inc()
	MuseumAPIRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func SetMuseumAPICircuitOpen(open bool) { MuseumAPICircuitOpen.Set(gauge(open)) }

func SetMuseumAPIUp(up bool) { MuseumAPIUp.Set(gauge(up)) }

func gauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
