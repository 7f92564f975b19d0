// Package config reads environment overrides. Plain getters fall back to the
// default silently when a variable is unset and with a warning log when it is
// malformed; the Load* functions additionally validate and report fallbacks.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// GetEnvString returns the variable or def when unset or empty.
func GetEnvString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// GetEnvBool accepts the spellings strconv.ParseBool accepts; anything else
// logs a warning and yields def.
//
//	secure := GetEnvBool("SESSION_COOKIE_SECURE", true)
func GetEnvBool(key string, def bool) bool {
	return getEnv(key, def, strconv.ParseBool)
}

func getEnv[T any](key string, def T, parse func(string) (T, error)) T {
	r := Load(key, def, parse, nil)
	if r.FallbackApplied {
		slog.Warn("ignoring malformed environment variable", slog.String("key", key), slog.String("reason", r.Warning))
	}
	return r.Value
}
