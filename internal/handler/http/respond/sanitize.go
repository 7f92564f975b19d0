package respond

import "regexp"

var (
	// Bearer credentials as they appear in echoed request headers.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.=]+`)
	// Bare JWTs: three base64url segments, the first starting with "eyJ".
	jwtPattern = regexp.MustCompile(`eyJ[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]*`)
	// URL userinfo passwords.
	userinfoPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
	// password=... in form or query encodings.
	passwordPattern = regexp.MustCompile(`(?i)(password=)[^&\s]+`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = jwtPattern.ReplaceAllString(msg, "****")
	msg = userinfoPattern.ReplaceAllString(msg, "://$1:****@")
	msg = passwordPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
