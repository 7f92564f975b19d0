package listview

import (
	"time"

	"museum-web/internal/pkg/isodate"
)

// ApplyDateRangeFilter keeps records whose date field lies in [from, to].
//
// Either bound may be empty, leaving that side open; with both empty the input
// is returned unchanged. A calendar-date upper bound covers its whole day. While
// a range is active, records with a missing or unparsable date are excluded, and
// an unparsable bound makes the filter match nothing.
func ApplyDateRangeFilter[T any](records []T, field Field[T], from, to string) []T {
	if from == "" && to == "" {
		return records
	}

	var lo, hi time.Time
	if from != "" {
		t, err := isodate.Parse(from)
		if err != nil {
			return []T{}
		}
		lo = t
	}
	if to != "" {
		t, err := isodate.Parse(to)
		if err != nil {
			return []T{}
		}
		if isodate.IsDateOnly(to) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		hi = t
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		d, err := isodate.Parse(field(r))
		if err != nil {
			continue
		}
		if from != "" && d.Before(lo) {
			continue
		}
		if to != "" && d.After(hi) {
			continue
		}
		out = append(out, r)
	}
	return out
}
