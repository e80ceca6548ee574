// Package names reconciles spelling variants of student names.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, strips diacritics and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(stripMarks(strings.ToLower(s)))
}

// Fold is Normalize with inner whitespace runs collapsed to a single space.
func Fold(s string) string {
	return strings.Join(strings.Fields(stripMarks(strings.ToLower(s))), " ")
}

func stripMarks(s string) string {
	// Transformers carry state, so a chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
