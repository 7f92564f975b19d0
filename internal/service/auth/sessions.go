package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"museum-web/internal/observability/metrics"
)

// SessionConfig controls the session cookie.
type SessionConfig struct {
	CookieName string
	// TTL is the idle lifetime of a session.
	TTL    time.Duration
	Secure bool
}

// DefaultSessionConfig returns a 12 hour idle session named museum_session.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{CookieName: "museum_session", TTL: 12 * time.Hour}
}

// Sessions is an in-memory session registry keyed by an opaque cookie. Only
// authenticated sessions are stored; anonymous visitors get a throwaway
// Session that is never persisted.
type Sessions struct {
	cfg SessionConfig
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessions creates an empty registry.
func NewSessions(cfg SessionConfig) *Sessions {
	def := DefaultSessionConfig()
	if cfg.CookieName == "" {
		cfg.CookieName = def.CookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	return &Sessions{cfg: cfg, now: time.Now, sessions: make(map[string]*Session)}
}

// Load returns the session named by the request cookie. Unknown, expired or
// missing cookies yield a fresh anonymous session.
func (m *Sessions) Load(r *http.Request) *Session {
	if c, err := r.Cookie(m.cfg.CookieName); err == nil && c.Value != "" {
		m.mu.Lock()
		s, ok := m.sessions[c.Value]
		m.mu.Unlock()
		if ok && m.now().Sub(s.idleSince()) < m.cfg.TTL {
			s.touch()
			return s
		}
	}
	return newSession("", m.now)
}

// Start stores token in a brand new session, sets its cookie and drops the
// session previously bound to r, if any. A new id on every login keeps a
// pre-set cookie from being promoted to an admin session.
func (m *Sessions) Start(w http.ResponseWriter, r *http.Request, token string) *Session {
	s := newSession(uuid.NewString(), m.now)
	s.SetToken(token)

	m.mu.Lock()
	if c, err := r.Cookie(m.cfg.CookieName); err == nil {
		delete(m.sessions, c.Value)
	}
	m.sessions[s.id] = s
	n := len(m.sessions)
	m.mu.Unlock()
	metrics.SetActiveSessions(n)

	http.SetCookie(w, m.cookie(s.id, int(m.cfg.TTL/time.Second)))
	return s
}

// End clears the session bound to r and expires its cookie.
func (m *Sessions) End(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(m.cfg.CookieName); err == nil {
		m.mu.Lock()
		if s, ok := m.sessions[c.Value]; ok {
			s.Clear()
			delete(m.sessions, c.Value)
		}
		n := len(m.sessions)
		m.mu.Unlock()
		metrics.SetActiveSessions(n)
	}
	http.SetCookie(w, m.cookie("", -1))
}

// Discard forgets s and expires its cookie.
func (m *Sessions) Discard(w http.ResponseWriter, s *Session) {
	s.Clear()
	m.mu.Lock()
	delete(m.sessions, s.id)
	n := len(m.sessions)
	m.mu.Unlock()
	metrics.SetActiveSessions(n)
	http.SetCookie(w, m.cookie("", -1))
}

// Sweep removes idle, expired and cleared sessions and returns how many remain.
func (m *Sessions) Sweep() int {
	now := m.now()

	m.mu.Lock()
	for id, s := range m.sessions {
		if now.Sub(s.idleSince()) >= m.cfg.TTL || !s.IsAuthenticated() {
			delete(m.sessions, id)
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.SetActiveSessions(n)
	return n
}

// Len returns the number of stored sessions.
func (m *Sessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Sessions) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
