package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-web/internal/handler/http/requestid"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{"page", "/veterans", http.StatusOK, "INFO"},
		{"not found", "/veterans/missing", http.StatusNotFound, "INFO"},
		{"static asset", "/static/site.css", http.StatusOK, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			h := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("User-Agent", "test-agent/1.0")
			h.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "request completed", line["msg"])
			assert.Equal(t, tt.path, line["path"])
			assert.EqualValues(t, tt.status, line["status"])
			assert.EqualValues(t, 4, line["bytes"])
			assert.NotEmpty(t, line["request_id"])
			assert.NotContains(t, line, "trace_id")
		})
	}
}

func TestRecover(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		path       string
		panicValue any
		wantJSON   bool
	}{
		{"page panic with string", "/veterans", "something went wrong", false},
		{"page panic with error", "/news/1", fmt.Errorf("test error"), false},
		{"api panic", "/api/veterans", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			if tt.wantJSON {
				assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), "Внутренняя ошибка сервера")
			}
		})
	}
}

func TestRecover_NoPanic(t *testing.T) {
	h := Recover(slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRecover_ReraisesAbortHandler(t *testing.T) {
	h := Recover(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, http.ErrAbortHandler))
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	t.Fatal("expected panic to propagate")
}

func TestLimitRequestBody(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		body     string
		wantErr  bool
	}{
		{"under limit", 16, "short", false},
		{"exact limit", 5, "12345", false},
		{"over limit", 4, "12345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			h := LimitRequestBody(tt.maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, readErr = io.ReadAll(r.Body)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(tt.body)))

			if tt.wantErr {
				assert.Error(t, readErr)
			} else {
				assert.NoError(t, readErr)
			}
		})
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestLoginThrottle(t *testing.T) {
	lt := NewLoginThrottle("/admin/login", time.Minute, 2, false)
	now := time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC)
	lt.now = func() time.Time { return now }

	h := lt.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))
	post := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusSeeOther, post("10.0.0.1:1111"))
	assert.Equal(t, http.StatusSeeOther, post("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:3333"))
	assert.Equal(t, http.StatusSeeOther, post("10.0.0.2:1111"), "other clients have their own bucket")

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusSeeOther, post("10.0.0.1:4444"), "one token refills per interval")
}

func TestLoginThrottle_IgnoresOtherRequests(t *testing.T) {
	lt := NewLoginThrottle("/admin/login", time.Hour, 1, false)
	h := lt.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Zero(t, lt.Len())
}

func TestLoginThrottle_SweepsIdleClients(t *testing.T) {
	lt := NewLoginThrottle("/admin/login", time.Minute, 5, false)
	now := time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC)
	lt.now = func() time.Time { return now }

	lt.allow("10.0.0.1")
	lt.allow("10.0.0.2")
	require.Equal(t, 2, lt.Len())

	now = now.Add(lt.idle)
	lt.allow("10.0.0.3")
	assert.Equal(t, 1, lt.Len())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		xff        string
		realIP     string
		trustProxy bool
		want       string
	}{
		{"remote addr", "192.0.2.1:5000", "", "", false, "192.0.2.1"},
		{"forwarded header ignored without trust", "192.0.2.1:5000", "203.0.113.9", "", false, "192.0.2.1"},
		{"first forwarded address", "10.0.0.1:5000", "203.0.113.9, 10.0.0.1", "", true, "203.0.113.9"},
		{"real ip fallback", "10.0.0.1:5000", "garbage", "203.0.113.7", true, "203.0.113.7"},
		{"remote without port", "192.0.2.5", "", "", true, "192.0.2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, clientIP(req, tt.trustProxy))
		})
	}
}
