package listview

import "strings"

// Field reads one string-valued attribute of a record.
type Field[T any] func(T) string

// ApplyTextSearch keeps records where any of fields contains query, ignoring case.
// A blank query returns records unchanged. Order is preserved.
func ApplyTextSearch[T any](records []T, query string, fields ...Field[T]) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(r)), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
