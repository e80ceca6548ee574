package names

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// MatchThreshold is the similarity two names must exceed to be merged.
const MatchThreshold = 0.8

// Similarity returns 1 - distance/maxLen for two already normalized strings.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(maxLen)
}

// Similar reports whether two raw names denote the same student: one
// normalized form contains the other, or their similarity exceeds
// MatchThreshold.
func Similar(a, b string) bool {
	return similarNormalized(Normalize(a), Normalize(b))
}

func similarNormalized(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return Similarity(a, b) > MatchThreshold
}
