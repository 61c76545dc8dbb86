package validators

import "regexp"

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// IsPhoneValid accepts "+999999999" style numbers, 9 to 15 digits.
func IsPhoneValid(phone string) bool {
	return phonePattern.MatchString(phone)
}
