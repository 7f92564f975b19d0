// Package http holds the cross-cutting HTTP pieces of the site: health
// endpoints, access logging, panic recovery, metrics, timeouts, input limits
// and login throttling.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"museum-web/internal/handler/http/respond"
	"museum-web/internal/repository"
)

// HealthResponse is the JSON body of /health.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the outcome of one check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// SessionCounter reports how many admin sessions are live.
type SessionCounter interface {
	Len() int
}

// HealthHandler reports whether the museum API answers, plus informational
// session and CSP details.
type HealthHandler struct {
	API      repository.Pinger
	Sessions SessionCounter
	Version  string

	CSPEnabled    bool
	CSPReportOnly bool
}

// ServeHTTP answers 200 when every check passes and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{"museum_api": h.checkAPI(ctx)}
	healthy := checks["museum_api"].Status == "healthy"

	if h.Sessions != nil {
		checks["sessions"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"active": h.Sessions.Len()},
		}
	}
	if h.CSPEnabled {
		checks["csp"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"report_only": h.CSPReportOnly},
		}
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkAPI(ctx context.Context) CheckStatus {
	if h.API == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	start := time.Now()
	if err := h.API.Ping(ctx); err != nil {
		slog.Default().Warn("health: museum API ping failed", slog.Any("error", err))
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
	}
	return CheckStatus{
		Status:  "healthy",
		Details: map[string]any{"latency_ms": time.Since(start).Milliseconds()},
	}
}

// ReadyHandler is the readiness probe: ready once the museum API answers.
type ReadyHandler struct {
	API repository.Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.API == nil {
		http.Error(w, "museum API not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.API.Ping(ctx); err != nil {
		http.Error(w, "museum API not ready", http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler is the liveness probe. It never touches the API.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
