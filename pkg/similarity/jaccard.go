package similarity

import "strings"

// TokenJaccard returns |intersection| / |union| over whitespace-split token
// sets. 1.0 if both sets are empty, 0.0 if exactly one is.
func TokenJaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	return jaccard(setA, setB)
}

// NGram returns the Jaccard similarity of character n-gram sets. Each string
// is padded with n-1 boundary markers on both ends before extraction, so
// word edges contribute grams of their own.
func NGram(a, b string, n int) float64 {
	if n < 1 {
		n = 2
	}
	return jaccard(ngramSet(a, n), ngramSet(b, n))
}

// Bigram is NGram with n=2, the engine default.
func Bigram(a, b string) float64 {
	return NGram(a, b, 2)
}

const boundaryMarker = '$'

func ngramSet(s string, n int) map[string]struct{} {
	set := make(map[string]struct{})
	if s == "" {
		return set
	}
	runes := make([]rune, 0, len(s)+2*(n-1))
	for i := 0; i < n-1; i++ {
		runes = append(runes, boundaryMarker)
	}
	runes = append(runes, []rune(s)...)
	for i := 0; i < n-1; i++ {
		runes = append(runes, boundaryMarker)
	}
	for i := 0; i+n <= len(runes); i++ {
		set[string(runes[i:i+n])] = struct{}{}
	}
	return set
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
