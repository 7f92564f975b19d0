package pagination

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams reads page and limit for the JSON list endpoints. Unlike
// PageFromQuery it is strict: malformed or out-of-range values are reported so
// the caller can answer 400.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	q := r.URL.Query()
	params := Params{Page: config.DefaultPage, Limit: config.DefaultLimit}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, ErrInvalidPage
		}
		params.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("%w: %q is not a number", ErrInvalidLimit, raw)
		}
		params.Limit = limit
	}
	return params, params.Validate(config)
}

// PageFromQuery reads the "page" parameter of an HTML listing page.
// Anything that is not a positive integer falls back to page 1; the listing
// pipeline clamps pages past the end afterwards.
func PageFromQuery(values url.Values) int {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
