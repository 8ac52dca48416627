// Package nlp holds the text primitives shared by the intent classifier,
// the sentiment scorer and the smart reply suggester.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Tokenize case-folds text and splits it on every rune that is neither a
// letter nor a digit. Empty input yields no tokens.
func Tokenize(text string) []string {
	folded := cases.Fold().String(text)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Normalize case-folds and trims text for exact-match lookups.
func Normalize(text string) string {
	return strings.TrimSpace(cases.Fold().String(text))
}
