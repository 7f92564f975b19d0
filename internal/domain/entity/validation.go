package entity

import (
	"net/url"
	"strings"
)

// maxURLLength defines the maximum allowed length for image URLs.
const maxURLLength = 2048

// validateImageURL accepts an empty value (the image is optional) or an absolute
// http(s) URL with a host.
func validateImageURL(errs *ValidationErrors, field, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if len(raw) > maxURLLength {
		errs.add(field, "Ссылка на изображение слишком длинная")
		return
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.add(field, "Ссылка на изображение должна начинаться с http:// или https://")
	}
}

func required(errs *ValidationErrors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs.add(field, message)
	}
}
