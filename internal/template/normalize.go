// Package template resolves bracket-style placeholders in prompt templates.
//
// Authors write placeholders inconsistently ("[Number of Bedrooms]",
// "{{beds}}", "<bedrooms>") and form labels are typed independently, so every
// name on either side goes through Normalize before it is compared. An
// AliasTable ties alternate names to one canonical field, the Expander
// spreads each value across its alias group, and Fill substitutes what it
// can and reports what it could not.
package template

import (
	"strings"
	"unicode"
)

// Normalize returns the canonical lookup key for a field label or
// placeholder name: lowercased, with punctuation removed and whitespace
// collapsed. It is total and idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || unicode.IsSpace(r):
			return ' '
		case r == '_' || r == '-':
			return r
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		default:
			return -1
		}
	}, lowered)

	// Fields splits on runs of spaces and drops the ends, which collapses and trims in one go
	return strings.Join(strings.Fields(cleaned), " ")
}
