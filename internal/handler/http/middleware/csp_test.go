package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"museum-web/pkg/security/csp"
)

func serve(m *CSPMiddleware, path string) http.Header {
	rec := httptest.NewRecorder()
	m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Header()
}

func siteConfig() CSPMiddlewareConfig {
	return CSPMiddlewareConfig{
		Enabled:       true,
		DefaultPolicy: csp.PagePolicy(),
		PathPolicies: map[string]*csp.CSPBuilder{
			"/swagger/": csp.SwaggerUIPolicy(),
			"/api/":     csp.StrictPolicy(),
		},
	}
}

func TestCSPMiddleware_PolicySelection(t *testing.T) {
	m := NewCSPMiddleware(siteConfig())

	tests := []struct {
		path string
		want string
	}{
		{"/", csp.PagePolicy().Build()},
		{"/veterans/12", csp.PagePolicy().Build()},
		{"/admin/dashboard", csp.PagePolicy().Build()},
		{"/swagger/index.html", csp.SwaggerUIPolicy().Build()},
		{"/api/news", csp.StrictPolicy().Build()},
		{"/apiary", csp.PagePolicy().Build()},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h := serve(m, tt.path)
			assert.Equal(t, tt.want, h.Get("Content-Security-Policy"))
			assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
			assert.Empty(t, h.Get("Content-Security-Policy-Report-Only"))
		})
	}
}

func TestCSPMiddleware_LongestPrefixWins(t *testing.T) {
	cfg := siteConfig()
	cfg.PathPolicies["/api/docs/"] = csp.SwaggerUIPolicy()
	m := NewCSPMiddleware(cfg)

	assert.Equal(t, csp.SwaggerUIPolicy().Build(), serve(m, "/api/docs/x").Get("Content-Security-Policy"))
	assert.Equal(t, csp.StrictPolicy().Build(), serve(m, "/api/veterans").Get("Content-Security-Policy"))
}

func TestCSPMiddleware_ReportOnly(t *testing.T) {
	cfg := siteConfig()
	cfg.ReportOnly = true
	shared := cfg.DefaultPolicy
	m := NewCSPMiddleware(cfg)

	h := serve(m, "/news")
	assert.Empty(t, h.Get("Content-Security-Policy"))
	assert.Equal(t, csp.PagePolicy().Build(), h.Get("Content-Security-Policy-Report-Only"))
	assert.Equal(t, "Content-Security-Policy", shared.HeaderName(), "configured builder must not be mutated")
}

func TestCSPMiddleware_Disabled(t *testing.T) {
	cfg := siteConfig()
	cfg.Enabled = false

	h := serve(NewCSPMiddleware(cfg), "/")
	assert.Empty(t, h.Get("Content-Security-Policy"))
	assert.Empty(t, h.Get("X-Content-Type-Options"))
}

func TestCSPMiddleware_EmptyPolicySkipped(t *testing.T) {
	m := NewCSPMiddleware(CSPMiddlewareConfig{Enabled: true, DefaultPolicy: csp.NewCSPBuilder()})

	h := serve(m, "/")
	assert.Empty(t, h.Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
}

func TestCSPMiddleware_ConcurrentRequests(t *testing.T) {
	m := NewCSPMiddleware(siteConfig())
	want := csp.StrictPolicy().Build()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, serve(m, "/api/veterans").Get("Content-Security-Policy"))
		}()
	}
	wg.Wait()
}
