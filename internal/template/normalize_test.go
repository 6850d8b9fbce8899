package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "lowercases", input: "Number Of Bedrooms", expected: "number of bedrooms"},
		{name: "collapses whitespace", input: "number   of\tbedrooms", expected: "number of bedrooms"},
		{name: "trims", input: "  city  ", expected: "city"},
		{name: "non-breaking space", input: "HOA Fee", expected: "hoa fee"},
		{name: "strips punctuation", input: "Owner's Name / Title", expected: "owners name title"},
		{name: "strips curly apostrophe", input: "Buyer’s Budget", expected: "buyers budget"},
		{name: "keeps hyphen and underscore", input: "Move-In Date_2", expected: "move-in date_2"},
		{name: "drops parentheses", input: "sqft (approx.)", expected: "sqft approx"},
		{name: "only punctuation", input: "?!.", expected: ""},
		{name: "keeps digits", input: "Unit #4B", expected: "unit 4b"},
		{name: "keeps non-ascii letters", input: "Café Nearby", expected: "café nearby"},
		{name: "newlines", input: "key\nfeatures", expected: "key features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Number Of Bedrooms",
		"  HOA Fee (monthly) ",
		"a -- b __ c",
		"[[city]]",
		"İstanbul Neighborhood",
		" em space ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeCaseAndWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("Number Of Bedrooms"), Normalize("number   of bedrooms"))
	assert.Equal(t, Normalize("HOA Fee"), Normalize("hoa fee"))
}
