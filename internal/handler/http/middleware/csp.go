// Package middleware holds response-hardening middleware.
package middleware

import (
	"net/http"
	"strings"

	"museum-web/pkg/security/csp"
)

// CSPMiddlewareConfig selects a policy per path prefix.
type CSPMiddlewareConfig struct {
	Enabled bool
	// DefaultPolicy applies when no PathPolicies prefix matches.
	DefaultPolicy *csp.CSPBuilder
	// PathPolicies maps path prefixes ("/swagger/", "/api/") to policies.
	// The longest matching prefix wins.
	PathPolicies map[string]*csp.CSPBuilder
	ReportOnly   bool
}

type header struct {
	name, value string
}

// CSPMiddleware sets Content-Security-Policy plus a few companion headers.
// Policies are rendered once at construction.
type CSPMiddleware struct {
	enabled  bool
	fallback *header
	prefixes []string
	byPrefix map[string]header
}

// NewCSPMiddleware renders the configured policies.
func NewCSPMiddleware(config CSPMiddlewareConfig) *CSPMiddleware {
	m := &CSPMiddleware{enabled: config.Enabled, byPrefix: make(map[string]header)}
	if config.DefaultPolicy != nil {
		if h, ok := render(config.DefaultPolicy, config.ReportOnly); ok {
			m.fallback = &h
		}
	}
	for prefix, p := range config.PathPolicies {
		if p == nil {
			continue
		}
		if h, ok := render(p, config.ReportOnly); ok {
			m.byPrefix[prefix] = h
			m.prefixes = append(m.prefixes, prefix)
		}
	}
	return m
}

func render(p *csp.CSPBuilder, reportOnly bool) (header, bool) {
	p = p.Clone()
	if reportOnly {
		p.ReportOnly(true)
	}
	value := p.Build()
	return header{name: p.HeaderName(), value: value}, value != ""
}

// Middleware returns the handler wrapper.
func (m *CSPMiddleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.enabled {
				h := w.Header()
				h.Set("X-Content-Type-Options", "nosniff")
				h.Set("Referrer-Policy", "same-origin")
				if policy := m.selectPolicy(r.URL.Path); policy != nil {
					h.Set(policy.name, policy.value)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *CSPMiddleware) selectPolicy(path string) *header {
	longest := ""
	for _, prefix := range m.prefixes {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longest) {
			longest = prefix
		}
	}
	if longest != "" {
		h := m.byPrefix[longest]
		return &h
	}
	return m.fallback
}
