package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content metrics track what editors and visitors do with the archive
var (
	// RecordsTotal is the size of each collection as last seen by the probe
	RecordsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "museum_records_total",
			Help: "Number of records per collection as last fetched",
		},
		[]string{"kind"},
	)

	// FormSubmissionsTotal counts admin form submissions by result
	// (saved, invalid, rejected, failed)
	FormSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_form_submissions_total",
			Help: "Total number of admin form submissions",
		},
		[]string{"form", "result"},
	)

	// DeletionsTotal counts admin deletions by kind and result
	DeletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_deletions_total",
			Help: "Total number of admin delete requests",
		},
		[]string{"kind", "result"},
	)

	// LoginAttemptsTotal counts admin logins by result (success, failure, error)
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"result"},
	)

	// ActiveSessions is the number of live admin sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "museum_active_sessions",
			Help: "Number of active admin sessions",
		},
	)
)

// UpdateRecordsTotal sets the collection size gauge for kind ("veterans", "news").
func UpdateRecordsTotal(kind string, count int) {
	RecordsTotal.WithLabelValues(kind).Set(float64(count))
}

// RecordFormSubmission counts one admin form submission.
func RecordFormSubmission(form, result string) {
	FormSubmissionsTotal.WithLabelValues(form, result).Inc()
}

// RecordDeletion counts one admin delete request.
func RecordDeletion(kind string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	DeletionsTotal.WithLabelValues(kind, result).Inc()
}

// RecordLoginAttempt counts one login.
func RecordLoginAttempt(result string) {
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

// SetActiveSessions sets the live session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}
