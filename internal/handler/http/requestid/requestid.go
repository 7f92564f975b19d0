// Package requestid assigns every incoming request an id that follows it through
// the access log, application logs and the calls made to the museum API.
package requestid

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header carries the id on requests and responses.
const Header = "X-Request-ID"

type ctxKey struct{}

// Client supplied ids are kept only when they cannot forge log lines.
var acceptable = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// FromContext returns the request id in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithID returns a copy of ctx carrying id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware reuses a well-formed X-Request-ID from the client or generates a
// UUID v4, then exposes it on the response and in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !acceptable.MatchString(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}
