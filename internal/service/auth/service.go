package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"museum-web/internal/domain/entity"
	"museum-web/internal/observability/logging"
	"museum-web/internal/observability/metrics"
	"museum-web/internal/repository"
)

// Credentials is the content of the login form.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks that both fields are filled in.
func (c Credentials) Validate() error {
	var errs entity.ValidationErrors
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, &entity.ValidationError{Field: "email", Message: "Введите email"})
	}
	if c.Password == "" {
		errs = append(errs, &entity.ValidationError{Field: "password", Message: "Введите пароль"})
	}
	return errs.Err()
}

// ErrInvalidCredentials is returned when the API rejects the login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService runs the admin login flow.
type AuthService struct {
	authenticator repository.Authenticator
	sessions      *Sessions
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator repository.Authenticator, sessions *Sessions) *AuthService {
	return &AuthService{authenticator: authenticator, sessions: sessions}
}

// Sessions returns the session registry.
func (s *AuthService) Sessions() *Sessions { return s.sessions }

// Login exchanges creds for a token and starts an authenticated session.
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request, creds Credentials) (*Session, error) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if err := creds.Validate(); err != nil {
		metrics.RecordLoginAttempt("invalid")
		return nil, err
	}

	token, err := s.authenticator.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthorized) || errors.Is(err, entity.ErrValidationFailed) {
			metrics.RecordLoginAttempt("rejected")
			logger.Warn("login rejected", slog.String("reason", "invalid_credentials"))
			return nil, ErrInvalidCredentials
		}
		metrics.RecordLoginAttempt("error")
		logger.Error("login failed", slog.Any("error", err))
		return nil, fmt.Errorf("login: %w", err)
	}

	sess := s.sessions.Start(w, r, token)
	if !sess.IsAuthenticated() {
		s.sessions.Discard(w, sess)
		metrics.RecordLoginAttempt("expired")
		return nil, fmt.Errorf("login: token already expired: %w", entity.ErrUnauthorized)
	}

	metrics.RecordLoginAttempt("success")
	logger.Info("login succeeded", slog.String("subject", sess.Subject()))
	return sess, nil
}

// Logout ends the session bound to r.
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.End(w, r)
}

// Authenticated reports whether the store bound to ctx holds a live token.
func Authenticated(ctx context.Context) bool {
	st := FromContext(ctx)
	return st != nil && st.IsAuthenticated()
}
