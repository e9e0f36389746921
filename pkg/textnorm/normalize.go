// Package textnorm implements the preprocessing pipeline applied to every
// query and candidate name before semantic comparison: normalization, OCR
// misread correction, and abbreviation expansion.
//
// All stages are total functions: any input, including empty strings, yields
// a string and never an error. Stage tables (stop-words, correction rules,
// abbreviations) are injected at construction and read-only afterwards, so a
// built pipeline is safe for concurrent use.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizer lowercases, strips diacritics and punctuation, collapses
// whitespace, and removes stop-words as whole tokens.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer builds a Normalizer with the given stop-word set. Stop-words
// are themselves folded (lowercased, accent-stripped) before storage.
func NewNormalizer(stopwords []string) *Normalizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = foldASCII(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Normalizer{stopwords: set}
}

// Normalize maps raw text to its normalized form: lowercase, accent-free,
// punctuation replaced by spaces, single-spaced, trimmed, stop-words removed.
// If stop-word removal would empty a non-empty string, removal is skipped so
// stop-word-only input still matches downstream. Idempotent.
func (n *Normalizer) Normalize(text string) string {
	folded := foldASCII(text)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	if len(tokens) == 0 {
		return ""
	}

	kept := tokens[:0:0]
	for _, tok := range tokens {
		if _, stop := n.stopwords[tok]; !stop {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		kept = tokens
	}
	return strings.Join(kept, " ")
}

// foldASCII lowercases and strips combining diacritical marks
// (e.g. "Mûr" -> "mur").
func foldASCII(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}
