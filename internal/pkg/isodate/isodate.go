// Package isodate parses and formats the ISO 8601 date strings exchanged with the
// museum API. The API emits .NET style timestamps ("2024-03-15T10:00:00.1234567",
// sometimes with a zone) as well as plain calendar dates.
package isodate

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalid is returned for strings that match none of the accepted layouts.
var ErrInvalid = errors.New("invalid ISO 8601 date")

// DateLayout is the calendar-date layout used by HTML date inputs and query strings.
const DateLayout = "2006-01-02"

// displayLayout renders dates the way the museum pages show them.
const displayLayout = "02.01.2006"

// Missing is shown in place of an absent or broken date.
const Missing = "—"

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// Parse accepts RFC 3339 timestamps, zone-less timestamps (read as UTC) and
// calendar dates. Fractional seconds of any precision are accepted.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalid
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalid
}

// IsDateOnly reports whether s is a bare calendar date such as "2024-03-31".
func IsDateOnly(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Display formats s as dd.mm.yyyy, or Missing when s is empty or unparsable.
func Display(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Missing
	}
	return t.Format(displayLayout)
}

// InputValue converts s to the yyyy-mm-dd value of an <input type="date">.
// Unparsable input yields "".
func InputValue(s string) string {
	t, err := Parse(s)
	if err != nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ToUTC converts a form date into the UTC timestamp the API stores.
// An empty string stays empty so optional dates remain absent.
func ToUTC(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
