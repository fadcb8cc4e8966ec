package validators

import "strings"

// Trim returns s without leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimOptional trims the value behind p. Nil and values that are empty after
// trimming both yield nil, so an empty optional field is stored as NULL.
func TrimOptional(p *string) *string {
	if p == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// TrimPresent trims the value behind p but keeps an empty result, so a field
// that was sent blank is still rejected by its rules.
func TrimPresent(p *string) *string {
	if p == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*p)
	return &trimmed
}
