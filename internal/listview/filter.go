package listview

import "strings"

// MatchMode selects how a categorical filter compares values.
type MatchMode int

const (
	// MatchExact requires the field to equal the selected value.
	MatchExact MatchMode = iota
	// MatchContains requires a case-insensitive substring match, used where the
	// filter is free text rather than a select box.
	MatchContains
)

// Category describes one categorical filter of a listing.
type Category[T any] struct {
	Field Field[T]
	Mode  MatchMode
}

// ApplyCategoricalFilter keeps records whose field equals value exactly,
// ignoring surrounding whitespace the same way Options does. A blank value
// keeps everything.
func ApplyCategoricalFilter[T any](records []T, field Field[T], value string) []T {
	value = strings.TrimSpace(value)
	if value == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(field(r)) == value {
			out = append(out, r)
		}
	}
	return out
}

// ApplyContainsFilter keeps records whose field contains value, ignoring case.
// An empty value keeps everything.
func ApplyContainsFilter[T any](records []T, field Field[T], value string) []T {
	if value == "" {
		return records
	}
	return ApplyTextSearch(records, value, field)
}

func (c Category[T]) apply(records []T, value string) []T {
	if c.Mode == MatchContains {
		return ApplyContainsFilter(records, c.Field, value)
	}
	return ApplyCategoricalFilter(records, c.Field, value)
}
