package auth

import "strings"

// AdminPrefix is the path prefix of the protected area.
const AdminPrefix = "/admin"

// PublicEndpoints lists admin paths reachable without a session.
var PublicEndpoints = []string{
	"/admin/login",
}

// IsPublicEndpoint reports whether path is outside the admin area or one of
// PublicEndpoints. Endpoints match exactly or with a trailing slash; a
// subpath such as /admin/login/x is not public.
func IsPublicEndpoint(path string) bool {
	if path != AdminPrefix && !strings.HasPrefix(path, AdminPrefix+"/") {
		return true
	}
	for _, endpoint := range PublicEndpoints {
		if path == endpoint || path == endpoint+"/" {
			return true
		}
	}
	return false
}
