package utils

import "strings"

// IsPlaceholderValue reports whether a credential is absent or still the
// template value shipped with example env files.
func IsPlaceholderValue(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	lowered := strings.ToLower(trimmed)
	return strings.HasPrefix(lowered, "your_") || strings.HasPrefix(lowered, "<")
}
