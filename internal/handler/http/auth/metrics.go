package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// loginDuration tracks how long the login round trip to the API takes.
	loginDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "museum_login_duration_seconds",
			Help:    "Admin login duration by result",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"result"},
	)

	// guardRedirects counts visits the route guard turned away.
	guardRedirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_admin_guard_redirects_total",
			Help: "Admin requests redirected by the route guard",
		},
		[]string{"reason"}, // reason: unauthenticated | authenticated_login
	)
)

// RecordLoginDuration records a login attempt's duration.
func RecordLoginDuration(result string, seconds float64) {
	loginDuration.WithLabelValues(result).Observe(seconds)
}

func recordGuardRedirect(reason string) {
	guardRedirects.WithLabelValues(reason).Inc()
}
