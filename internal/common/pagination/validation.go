package pagination

import (
	"errors"
	"fmt"
)

// Sentinels for rejected paging input. Their text is safe to show to API
// clients.
var (
	ErrInvalidPage  = errors.New("invalid query parameter: page must be a positive integer")
	ErrInvalidLimit = errors.New("invalid query parameter: limit out of range")
)

// Validate checks p against the bounds in config.
func (p Params) Validate(config Config) error {
	switch {
	case p.Page < 1:
		return ErrInvalidPage
	case p.Limit < 1 || p.Limit > config.MaxLimit:
		return fmt.Errorf("%w: must be between 1 and %d", ErrInvalidLimit, config.MaxLimit)
	}
	return nil
}

// WithDefaults is the lenient counterpart of Validate: values below 1 take the
// configured defaults and the limit is capped at MaxLimit.
func (p Params) WithDefaults(config Config) Params {
	if p.Page < 1 {
		p.Page = max(config.DefaultPage, 1)
	}
	if p.Limit < 1 {
		p.Limit = config.DefaultLimit
	}
	p.Limit = min(p.Limit, config.MaxLimit)
	return p
}
