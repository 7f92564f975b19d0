package http

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginThrottle limits POSTs to one path per client IP with a token bucket.
// Other requests pass through untouched.
type LoginThrottle struct {
	path       string
	limit      rate.Limit
	burst      int
	trustProxy bool
	idle       time.Duration
	now        func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginThrottle allows burst attempts and then one every interval.
// With trustProxy the client IP is taken from X-Forwarded-For / X-Real-IP.
func NewLoginThrottle(path string, interval time.Duration, burst int, trustProxy bool) *LoginThrottle {
	return &LoginThrottle{
		path:       path,
		limit:      rate.Every(interval),
		burst:      burst,
		trustProxy: trustProxy,
		idle:       10 * time.Minute,
		now:        time.Now,
		clients:    make(map[string]*client),
	}
}

// Limit is the middleware. Rejected requests get 429 with Retry-After.
func (t *LoginThrottle) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != t.path {
			next.ServeHTTP(w, r)
			return
		}
		if !t.allow(clientIP(r, t.trustProxy)) {
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Слишком много попыток входа. Повторите позже.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (t *LoginThrottle) allow(ip string) bool {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.lastSweep) >= t.idle {
		for k, c := range t.clients {
			if now.Sub(c.lastSeen) >= t.idle {
				delete(t.clients, k)
			}
		}
		t.lastSweep = now
	}

	c, ok := t.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (t *LoginThrottle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.clients)
}

// clientIP returns the caller's address. Forwarding headers are honoured only
// behind a trusted proxy.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
		if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
