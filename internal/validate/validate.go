// Package validate holds the pure input validation rules applied before any
// store or hashing work happens.
package validate

import "strings"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Email reports whether s has a conventional local@domain shape: a non-empty
// local part, a domain containing a dot, and no whitespace.
func Email(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// Password reports whether the password meets the minimum length. Stricter
// complexity rules are a presentation concern, not enforced here.
func Password(s string) bool {
	return len(s) >= MinPasswordLength
}
