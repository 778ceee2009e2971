package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[^@\s]+@[^@\s]+\.[^@\s]+`)

// passwordPunct is the punctuation allowed in passwords besides letters
// and digits.
const passwordPunct = `!@#$%^&*()_+-={}[]:;"'<>?,./`

// ValidateEmail reports whether email looks like an address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

// ValidatePassword reports whether pw is at least 8 characters and contains
// at least one letter and one digit, using only the allowed character set.
func ValidatePassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range pw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordPunct, r):
			// allowed
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// ValidateRequired reports whether value is non-blank after trimming.
func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}
