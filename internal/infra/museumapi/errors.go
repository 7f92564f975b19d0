package museumapi

import (
	"errors"
	"fmt"

	"museum-web/internal/domain/entity"
)

var (
	// ErrUnauthorized is returned for 401/403 responses and for mutating calls
	// made without a credential. Admin pages react by clearing the session.
	ErrUnauthorized = fmt.Errorf("museum api: %w", entity.ErrUnauthorized)

	// ErrNotFound is returned when the API answers 404 for a single record.
	ErrNotFound = fmt.Errorf("museum api: %w", entity.ErrNotFound)

	// ErrMissingToken is returned when a 2xx login response carries no token.
	ErrMissingToken = errors.New("отсутствует токен доступа")
)

// NetworkError means the request never produced an HTTP response: DNS, dial,
// TLS, timeout, an open circuit or a cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response that none of the more specific errors cover.
type HTTPError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
}

// HTTPStatus exposes the status code to the retry policy.
func (e *HTTPError) HTTPStatus() int { return e.StatusCode }

// ValidationError carries the API's explanation of a rejected payload.
// Message is shown to the editor verbatim.
type ValidationError struct {
	Op      string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: rejected: %s", e.Op, e.Message)
}

// Unwrap lets errors.Is(err, entity.ErrValidationFailed) match.
func (e *ValidationError) Unwrap() error { return entity.ErrValidationFailed }

// UserMessage is the text shown in the form's status banner.
func (e *ValidationError) UserMessage() string { return e.Message }

// IsUnavailable reports whether err means the API could not be reached or
// answered with a server-side failure, as opposed to a problem with the request.
func IsUnavailable(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode >= 500
}
