package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnauthorized indicates a missing, expired or rejected credential
	ErrUnauthorized = errors.New("unauthorized")
)

// UserMessage returns the user-facing text carried by err when some layer
// attached one (a rejection by the API, a form rule), or "".
func UserMessage(err error) string {
	var m interface{ UserMessage() string }
	if errors.As(err, &m) {
		return m.UserMessage()
	}
	return ""
}

// ValidationError represents a validation error with detailed field information.
// Message is user facing and rendered next to the form input named Field.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors collects every failed rule of one form submission.
type ValidationErrors []*ValidationError

// Error joins the individual messages.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any non-empty collection.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(v) > 0
}

// ByField maps field names to their first message, for form rendering.
func (v ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Err returns nil when nothing failed, so callers can write `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, &ValidationError{Field: field, Message: message})
}
