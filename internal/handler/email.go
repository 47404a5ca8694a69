package handler

import (
	"regexp"
	"strings"
)

// emailPattern is a deliberately loose syntactic check: a token-like local
// part, then a domain of at least two dot-separated labels. No length caps,
// no full RFC 5322.
var emailPattern = regexp.MustCompile(
	`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(\.[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*` +
		`@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

// normalizeEmail trims surrounding whitespace and lower-cases an email
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail reports whether a normalized email is syntactically acceptable
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
