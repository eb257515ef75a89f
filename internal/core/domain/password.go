package domain

import "strings"

// passwordSpecials is the fixed set of accepted special characters.
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

const (
	passwordMinLen = 8
	passwordMaxLen = 20
)

// ValidPassword reports whether a plaintext password satisfies the structural
// policy: length within [8,20] and at least one uppercase letter, one
// lowercase letter, one digit, and one character from passwordSpecials.
// Pure function, no side effects.
func ValidPassword(password string) bool {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
