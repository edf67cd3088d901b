package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{
			name:     "plain word is lower-cased",
			token:    "Hello",
			expected: "hello",
		},
		{
			name:     "already lower-cased word unchanged",
			token:    "world",
			expected: "world",
		},
		{
			name:     "pure number collapses to num sentinel",
			token:    "1984",
			expected: NumKey,
		},
		{
			name:     "mixed alphanumeric collapses to num sentinel",
			token:    "b2b",
			expected: NumKey,
		},
		{
			name:     "decimal collapses to num sentinel",
			token:    "3.14",
			expected: NumKey,
		},
		{
			name:     "pure punctuation collapses to punc sentinel",
			token:    "!?;",
			expected: PuncKey,
		},
		{
			name:     "hyphenated word keeps word characters",
			token:    "Well-Known",
			expected: "well-known",
		},
		{
			name:     "apostrophe token keeps word characters",
			token:    "Don't",
			expected: "don't",
		},
		{
			name:     "accented word is preserved",
			token:    "é",
			expected: "é",
		},
		{
			name:     "cjk word is preserved",
			token:    "日本",
			expected: "日本",
		},
		{
			name:     "arabic-indic digits collapse to num sentinel",
			token:    "١٢٣",
			expected: NumKey,
		},
		{
			name:     "accented word with uppercase is lower-cased",
			token:    "Über",
			expected: "über",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.token))
		})
	}
}

func TestNormalize_DigitWinsOverPunctuation(t *testing.T) {
	// A token that is both digit-bearing and free of word characters after
	// stripping still normalizes to the num sentinel; the digit check runs
	// first.
	assert.Equal(t, NumKey, Normalize("42"))
	assert.Equal(t, NumKey, Normalize("$100"))
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, token := range []string{"Hello", "1984", "!?;", "mixed-Case"} {
		once := Normalize(token)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice", token)
	}
}
