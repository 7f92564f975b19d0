package probe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks probe runs.
type Metrics struct {
	RunsTotal            *prometheus.CounterVec
	DurationSeconds      prometheus.Histogram
	LastSuccessTimestamp prometheus.Gauge
}

// NewMetrics registers the probe metrics with reg. A nil reg means the
// default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_probe_runs_total",
			Help: "Total number of API probe runs by status (success/failure)",
		}, []string{"status"}),
		DurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "museum_probe_duration_seconds",
			Help:    "Duration of API probe runs in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),
		LastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "museum_probe_last_success_timestamp",
			Help: "Unix timestamp of the last successful API probe",
		}),
	}
}
