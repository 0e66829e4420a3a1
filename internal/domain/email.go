package domain

import (
	"regexp"
	"strings"
)

// EmailVerdict result of institutional email validation
type EmailVerdict int

const (
	EmailOK EmailVerdict = iota
	EmailMalformed
	EmailDomainNotAllowed
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckEmail validates the syntax of a normalized email and its domain
func CheckEmail(email, allowedDomain string) EmailVerdict {
	if !emailPattern.MatchString(email) {
		return EmailMalformed
	}
	if allowedDomain != "" && !strings.HasSuffix(email, "@"+strings.ToLower(allowedDomain)) {
		return EmailDomainNotAllowed
	}
	return EmailOK
}
