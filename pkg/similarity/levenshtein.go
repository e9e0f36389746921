// Package similarity provides the stateless scoring primitives used by the
// match engine: edit-distance similarity, token and character-bigram Jaccard,
// and a simplified phonetic comparison.
//
// Every function is a total, symmetric map to [0,1] where 1 means identical.
// Empty-input conventions are fixed (1.0 when both sides are empty, 0.0 when
// exactly one is) and must not change: the match tiers' thresholds were tuned
// against them.
package similarity

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Levenshtein returns edit-distance similarity: (maxLen - distance) / maxLen,
// computed over runes with unit insert/delete/substitute costs.
func Levenshtein(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}
