package validators

import "unicode"

const MinPasswordLength = 8

// PasswordProblem returns a human readable reason the password is too weak,
// or "" when it is acceptable.
func PasswordProblem(password string) string {
	if len([]rune(password)) < MinPasswordLength {
		return "This password is too short. It must contain at least 8 characters."
	}
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return ""
		}
	}
	return "This password is entirely numeric."
}
