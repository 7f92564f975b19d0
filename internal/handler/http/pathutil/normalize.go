package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const idPart = `[A-Za-z0-9_-]+`

// staticPaths never collapse into an :id template even though they have the
// same shape as a record path.
var staticPaths = map[string]struct{}{
	"/news/rss":           {},
	"/admin/veterans/add": {},
	"/admin/news/add":     {},
	"/admin/dashboard":    {},
	"/admin/login":        {},
	"/admin/logout":       {},
}

// pathPatterns is evaluated in order; the first match wins.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/veterans/` + idPart + `$`), Template: "/veterans/:id"},
	{Pattern: regexp.MustCompile(`^/news/` + idPart + `$`), Template: "/news/:id"},
	{Pattern: regexp.MustCompile(`^/admin/veterans/` + idPart + `/edit$`), Template: "/admin/veterans/:id/edit"},
	{Pattern: regexp.MustCompile(`^/admin/veterans/` + idPart + `/delete$`), Template: "/admin/veterans/:id/delete"},
	{Pattern: regexp.MustCompile(`^/admin/news/` + idPart + `/edit$`), Template: "/admin/news/:id/edit"},
	{Pattern: regexp.MustCompile(`^/admin/news/` + idPart + `/delete$`), Template: "/admin/news/:id/delete"},
	{Pattern: regexp.MustCompile(`^/static/.+$`), Template: "/static/*"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// Record paths collapse into their route template; other paths pass through.
//
// Examples:
//
//	NormalizePath("/veterans/3f2b-11")          // "/veterans/:id"
//	NormalizePath("/admin/news/77/edit")        // "/admin/news/:id/edit"
//	NormalizePath("/news/rss")                  // "/news/rss" (unchanged)
//	NormalizePath("/veterans?page=2")           // "/veterans"
//	NormalizePath("/veterans/3f2b-11/")         // "/veterans/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	if _, ok := staticPaths[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
