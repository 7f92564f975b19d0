// Package veteran provides the use cases behind the veteran pages: browsing the
// archive through the list pipeline, reading one record and the admin
// create/update/delete operations.
package veteran

import "errors"

// Sentinel errors for veteran use case operations.
var (
	// ErrVeteranNotFound indicates that the requested veteran does not exist.
	ErrVeteranNotFound = errors.New("veteran not found")

	// ErrInvalidVeteranID indicates an empty or malformed veteran ID.
	ErrInvalidVeteranID = errors.New("invalid veteran ID")
)
