package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadResult is the outcome of loading one validated value. When the
// variable is malformed or fails validation, Value holds the default and
// Warning explains why.
type LoadResult[T any] struct {
	Value           T
	Warning         string
	FallbackApplied bool
}

// Load reads key, parses it and validates it. An unset variable yields the
// default without a warning. validate may be nil.
func Load[T any](key string, defaultValue T, parse func(string) (T, error), validate func(T) error) LoadResult[T] {
	raw := os.Getenv(key)
	if raw == "" {
		return LoadResult[T]{Value: defaultValue}
	}

	value, err := parse(raw)
	if err == nil && validate != nil {
		err = validate(value)
	}
	if err != nil {
		return LoadResult[T]{
			Value:           defaultValue,
			Warning:         fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'", key, raw, err, defaultValue),
			FallbackApplied: true,
		}
	}
	return LoadResult[T]{Value: value}
}

// LoadString validates a string variable.
//
//	r := LoadString("PROBE_SCHEDULE", "*/5 * * * *", ValidateCronSchedule)
func LoadString(key, defaultValue string, validate func(string) error) LoadResult[string] {
	return Load(key, defaultValue, func(s string) (string, error) { return s, nil }, validate)
}

// LoadDuration validates a duration variable.
func LoadDuration(key string, defaultValue time.Duration, validate func(time.Duration) error) LoadResult[time.Duration] {
	return Load(key, defaultValue, time.ParseDuration, validate)
}

// LoadInt validates an integer variable. Surrounding spaces are ignored.
func LoadInt(key string, defaultValue int, validate func(int) error) LoadResult[int] {
	return Load(key, defaultValue, func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}, validate)
}
