// Package auth wires the admin session into HTTP: it binds the session
// credential to each request, guards the admin area and serves the login and
// logout endpoints.
package auth

import (
	"net/http"

	"museum-web/internal/handler/http/page"
	authsvc "museum-web/internal/service/auth"
)

// DashboardPath is where a successful login lands.
const DashboardPath = "/admin/dashboard"

// Sessions binds the session named by the request cookie to the request
// context as its credential store.
func Sessions(sessions *authsvc.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := sessions.Load(r)
			next.ServeHTTP(w, r.WithContext(authsvc.WithStore(r.Context(), s)))
		})
	}
}

// Guard redirects (303) unauthenticated visitors of the admin area to the
// login page, and authenticated visitors of the login page to the dashboard.
// It must run after Sessions.
func Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		authenticated := authsvc.Authenticated(r.Context())

		if !IsPublicEndpoint(path) && !authenticated {
			recordGuardRedirect("unauthenticated")
			http.Redirect(w, r, page.LoginURL(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		if authenticated && r.Method == http.MethodGet && isLoginPath(path) {
			recordGuardRedirect("authenticated_login")
			http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isLoginPath(path string) bool {
	return path == page.LoginPath || path == page.LoginPath+"/"
}
