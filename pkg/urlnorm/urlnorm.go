// Package urlnorm normalizes and validates user-supplied URLs.
package urlnorm

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultScheme is prepended to input that carries no scheme.
const DefaultScheme = "https"

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Normalize trims surrounding whitespace and prepends "https://" when the
// input has no scheme. Input that already has one is returned as is.
// Normalize(Normalize(s)) == Normalize(s) for any s.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || schemeRe.MatchString(s) {
		return s
	}
	return DefaultScheme + "://" + s
}

// IsValid reports whether s is an absolute http or https URL whose host looks
// like a domain: it must contain a dot and be longer than 3 characters.
func IsValid(s string) bool {
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}

	return u.Host != "" && len(u.Host) > 3 && strings.Contains(u.Hostname(), ".")
}
