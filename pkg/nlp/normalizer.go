package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases text, drops every rune that is not an ASCII letter
// a-z or whitespace, and returns the distinct words. Digits, punctuation and
// accented letters are removed, not transliterated.
func Normalize(text string) TokenSet {
	// A Caser keeps state, so each call gets its own.
	lowered := cases.Lower(language.Und).String(text)

	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || isSeparator(r) {
			return r
		}
		return -1
	}, lowered)

	return NewTokenSet(strings.FieldsFunc(cleaned, isSeparator)...)
}

// isSeparator reports Unicode whitespace plus the ASCII file, group, record
// and unit separators (U+001C to U+001F), which also split words.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
