// Package validation holds the pure field and cross-field rules the form
// controllers evaluate before any backend call.
package validation

import "regexp"

// Error keys written into an Errors map.
const (
	KeyRequired     = "required"
	KeyEmail        = "email"
	KeyPhoneFormat  = "phoneFormat"
	KeyEmailOrPhone = "emailOrPhone"
)

// Errors maps a field name to a human-readable message. Local validation and
// server-reported errors write into the same map; it is fully cleared at the
// start of every submit attempt.
type Errors map[string]string

// Clear removes every entry, keeping the map itself usable.
func (e Errors) Clear() {
	for k := range e {
		delete(e, k)
	}
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^(\+)?[0-9 ]+$`)
)

// Required reports whether the value is non-empty.
func Required(value string) bool {
	return value != ""
}

// ValidEmail reports whether a non-empty value looks like an email address.
// Empty values pass: whether the field is required at all is a separate rule.
func ValidEmail(value string) bool {
	if value == "" {
		return true
	}
	return emailPattern.MatchString(value)
}

// ValidPhone reports whether the value is an acceptable phone number: an
// optional leading +, then digits and spaces only, with exactly 10 or 11
// digit characters overall.
func ValidPhone(value string) bool {
	if !phonePattern.MatchString(value) {
		return false
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 10 || digits == 11
}

// EmailOrPhone implements the cross-field reachability rule: valid when the
// email is non-empty or at least one phone entry is non-empty. The error for
// a violation attaches at the group level, not to an individual field.
func EmailOrPhone(email string, phones []string) bool {
	if email != "" {
		return true
	}
	for _, phone := range phones {
		if phone != "" {
			return true
		}
	}
	return false
}
