// Package validation holds the pure syntax checks shared by the registration,
// login and payment flows. No normalization happens here: anything that does
// not match exactly is rejected.
package validation

import (
	"regexp"
	"unicode/utf8"
)

const minPasswordLength = 6

var (
	// Cameroonian mobile numbers as dialed locally: nine digits, leading 6.
	phonePattern = regexp.MustCompile(`^6[0-9]{8}$`)

	// Mobile-money receipt ids as printed in the confirmation SMS,
	// e.g. PP250116.2359.B69653. Case-sensitive; callers upper-case
	// user input before checking.
	referencePattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{6}\.[0-9]{4}\.[A-Z][0-9]{5}$`)
)

// Phone reports whether s is a well-formed subscriber number: exactly nine
// digits with a leading 6. Country codes, spaces and punctuation all fail.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// Password reports whether s meets the minimum length requirement, counted
// in characters rather than bytes. There is no upper bound and no charset
// rule.
func Password(s string) bool {
	return utf8.RuneCountInString(s) >= minPasswordLength
}

// TransactionReference reports whether s matches the positional grammar of a
// mobile-money transaction id: two uppercase letters, six digits, a dot, four
// digits, a dot, one uppercase letter and five digits.
func TransactionReference(s string) bool {
	return referencePattern.MatchString(s)
}
