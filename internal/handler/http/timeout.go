package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout answers 504 when next has not started its response within d. The
// request context is canceled at the deadline, which aborts the museum API
// calls still in flight. Whichever of next and the deadline writes first owns
// the response; a panic in next is re-raised on the serving goroutine so
// Recover sees it.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			gw := &guardedWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				defer func() {
					if p := recover(); p != nil {
						gw.panicVal = p
					}
				}()
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				if gw.panicVal != nil {
					panic(gw.panicVal)
				}
				gw.finish()
			case <-ctx.Done():
				if gw.expire() {
					writeTimeout(w, r)
				}
			}
		})
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request) {
	if isAPIPath(r.URL.Path) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte(`{"error":"request timeout"}`))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusGatewayTimeout)
	_, _ = w.Write([]byte("Сервер не ответил вовремя. Попробуйте обновить страницу."))
}

// guardedWriter keeps the handler's headers private until it commits a status,
// so the timeout path never shares a header map with a running handler.
type guardedWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	header  http.Header
	wrote   bool
	expired bool

	// set by the handler goroutine before done is closed
	panicVal any
}

func (g *guardedWriter) Header() http.Header { return g.header }

func (g *guardedWriter) WriteHeader(code int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.commit(code)
}

func (g *guardedWriter) Write(b []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.expired {
		return 0, http.ErrHandlerTimeout
	}
	g.commit(http.StatusOK)
	return g.w.Write(b)
}

// commit copies the headers and sends the status once. Callers hold mu.
func (g *guardedWriter) commit(code int) {
	if g.expired || g.wrote {
		return
	}
	g.wrote = true
	dst := g.w.Header()
	for k, v := range g.header {
		dst[k] = v
	}
	g.w.WriteHeader(code)
}

// finish commits a handler that returned without writing anything.
func (g *guardedWriter) finish() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.commit(http.StatusOK)
}

// expire hands the response to the timeout path. It reports false when the
// handler has already started writing.
func (g *guardedWriter) expire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.wrote {
		return false
	}
	g.expired = true
	return true
}
