package http

import (
	"net/http"
)

// Input limits applied before routing.
const (
	maxCookieHeader = 8 << 10
	maxPathLength   = 2 << 10
	maxBodyBytes    = 1 << 20
)

// InputValidation rejects oversized cookie headers and paths, and caps
// request bodies. Admin forms are plain text, so 1 MiB is plenty.
func InputValidation() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Cookie")) > maxCookieHeader {
				http.Error(w, "Слишком большой заголовок Cookie", http.StatusRequestHeaderFieldsTooLarge)
				return
			}
			if len(r.URL.Path) > maxPathLength {
				http.Error(w, "Слишком длинный адрес", http.StatusRequestURITooLong)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}
