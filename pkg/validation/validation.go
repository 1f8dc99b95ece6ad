package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCityNameLength bounds free-text city input.
const MaxCityNameLength = 100

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidCityName accepts non-blank names up to MaxCityNameLength runes without control characters.
func IsValidCityName(name string) bool {
	trimmed, ok := TrimAndValidate(name)
	if !ok || utf8.RuneCountInString(trimmed) > MaxCityNameLength {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
