package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"museum-web/internal/handler/http/pathutil"
	"museum-web/internal/handler/http/responsewriter"
	"museum-web/internal/observability/metrics"
)

// MetricsMiddleware records request count, latency and response size per
// normalized path, so /veterans/17 and /veterans/42 share one series.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r)

		route := pathutil.NormalizePath(r.URL.Path)
		metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(rw.Status()), time.Since(start), rw.Size())
	})
}

// MetricsHandler serves the default registry in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
