package listview

import (
	"cmp"
	"slices"
	"strings"
)

// Options returns the distinct non-blank values of field across records,
// collated the way SortBy orders strings. Admin filter selects are built from it.
func Options[T any](records []T, field Field[T]) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		v := strings.TrimSpace(field(r))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	c := newCollator()
	slices.SortStableFunc(out, func(a, b string) int { return c.CompareString(a, b) })
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp.Compare[string])
	return keys
}
