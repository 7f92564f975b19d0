// Package auth keeps the admin credential for the lifetime of a browser
// session and exchanges login credentials for it.
package auth

import (
	"context"
	"sync"
	"time"
)

// CredentialStore holds the bearer token of one browser session.
// Implementations are safe for concurrent use.
type CredentialStore interface {
	IsAuthenticated() bool
	SetToken(token string)
	// AuthHeader returns "Bearer <token>", or "" when not authenticated.
	AuthHeader() string
	Clear()
}

// Session is the credential store of one browser session.
type Session struct {
	id  string
	now func() time.Time

	mu       sync.Mutex
	token    string
	subject  string
	expires  time.Time
	lastSeen time.Time
}

var _ CredentialStore = (*Session)(nil)

func newSession(id string, now func() time.Time) *Session {
	return &Session{id: id, now: now, lastSeen: now()}
}

// ID returns the opaque session identifier carried by the cookie.
func (s *Session) ID() string { return s.id }

// IsAuthenticated reports whether a token is held and its exp claim, if any,
// has not passed.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticatedLocked()
}

func (s *Session) authenticatedLocked() bool {
	if s.token == "" {
		return false
	}
	return s.expires.IsZero() || s.now().Before(s.expires)
}

// SetToken stores token. An empty token clears the session.
func (s *Session) SetToken(token string) {
	claims := inspectToken(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.subject = claims.Subject
	s.expires = claims.Expires
}

// AuthHeader implements CredentialStore.
func (s *Session) AuthHeader() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticatedLocked() {
		return ""
	}
	return "Bearer " + s.token
}

// Subject returns the sub claim of the stored token, if it had one.
func (s *Session) Subject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subject
}

// Clear drops the credential.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.subject, s.expires = "", "", time.Time{}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = s.now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type ctxKey struct{}

// WithStore binds store to ctx.
func WithStore(ctx context.Context, store CredentialStore) context.Context {
	return context.WithValue(ctx, ctxKey{}, store)
}

// FromContext returns the store bound to ctx, or nil.
func FromContext(ctx context.Context) CredentialStore {
	s, _ := ctx.Value(ctxKey{}).(CredentialStore)
	return s
}

// HeaderFromContext returns the Authorization header value of the store bound
// to ctx, or "". It is handed to the museum API client.
func HeaderFromContext(ctx context.Context) string {
	if s := FromContext(ctx); s != nil {
		return s.AuthHeader()
	}
	return ""
}
