package pathutil

import (
	"errors"
	"net/http"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

const maxIDLen = 64

// ExtractID returns the {id} wildcard of the matched route.
// Record ids are GUIDs, so only [A-Za-z0-9_-] up to 64 characters is accepted.
//
// Example:
//
//	mux.Handle("GET /veterans/{id}", h)
//	id, err := ExtractID(r) // "3f2b..." for /veterans/3f2b...
func ExtractID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if !ValidID(id) {
		return "", ErrInvalidID
	}
	return id, nil
}

// ValidID reports whether id has the shape of a record id.
func ValidID(id string) bool {
	if id == "" || len(id) > maxIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
