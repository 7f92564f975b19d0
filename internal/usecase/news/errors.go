// Package news provides the use cases behind the news pages.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	ErrNewsNotFound  = errors.New("news not found")
	ErrInvalidNewsID = errors.New("invalid news ID")
)
