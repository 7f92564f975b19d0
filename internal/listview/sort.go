package listview

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"museum-web/internal/pkg/isodate"
)

// Direction is the sort order of a listing.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps anything other than "desc" to Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

// Toggle flips the direction, for clickable column headers.
func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// KeyKind tells SortBy how to compare the values of a key.
type KeyKind int

const (
	// StringKey compares with Russian collation, ignoring case.
	StringKey KeyKind = iota
	// DateKey compares parsed timestamps; missing or broken dates sort earliest.
	DateKey
)

// SortKey is a sortable attribute of a record.
type SortKey[T any] struct {
	Field Field[T]
	Kind  KeyKind
}

// collationTag is the single UI locale of the museum site.
var collationTag = language.Russian

// newCollator returns a fresh collator; collate.Collator is not safe for
// concurrent use, and handlers sort from many goroutines.
func newCollator() *collate.Collator {
	return collate.New(collationTag, collate.IgnoreCase)
}

// SortBy returns a sorted copy of records. The sort is stable, so ties keep
// their input order in both directions.
func SortBy[T any](records []T, key SortKey[T], dir Direction) []T {
	out := slices.Clone(records)
	if key.Field == nil {
		return out
	}

	var cmp func(a, b T) int
	switch key.Kind {
	case DateKey:
		cmp = func(a, b T) int { return compareDates(key.Field(a), key.Field(b)) }
	default:
		c := newCollator()
		cmp = func(a, b T) int { return c.CompareString(key.Field(a), key.Field(b)) }
	}
	if dir == Desc {
		asc := cmp
		cmp = func(a, b T) int { return -asc(a, b) }
	}

	slices.SortStableFunc(out, cmp)
	return out
}

func compareDates(a, b string) int {
	ta, errA := isodate.Parse(a)
	tb, errB := isodate.Parse(b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return ta.Compare(tb)
}
