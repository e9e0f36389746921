// Package lexicon defines the static, hand-curated tables the match engine
// runs on: the multilingual synonym concept table, the abbreviation table,
// the ordered OCR correction rules, and the stop-word set.
//
// A lexicon set is loaded once (from a directory of YAML/CSV files, or from
// the compiled-in seed) and never mutated; multiple sets can coexist in a
// Registry, one per market.
package lexicon

import (
	"strings"

	"github.com/goshopper/matchstick/pkg/textnorm"
)

// Concept groups the lexical variants of one product idea across languages
// under a language-neutral identifier (e.g. "milk"). Concept order in the
// table is significant: resolution returns the first concept that matches.
type Concept struct {
	ID       string   `yaml:"id" json:"id"`
	Variants []string `yaml:"variants" json:"variants"`
}

// Lexicon is one immutable lexicon set.
type Lexicon struct {
	Manifest      Manifest
	Concepts      []Concept
	Abbreviations map[string]string
	OCRRules      []textnorm.Rule
	Stopwords     []string
}

// Resolver maps normalized phrases to canonical concepts. Variants are
// pre-normalized at construction so lookups compare like with like.
type Resolver struct {
	concepts  []Concept
	normalize func(string) string
}

// NewResolver pre-normalizes every variant with the given normalizer and
// preserves concept order. Concepts that end up with no usable variant are
// dropped (every concept must have at least one).
func NewResolver(concepts []Concept, normalize func(string) string) *Resolver {
	r := &Resolver{normalize: normalize}
	for _, c := range concepts {
		rc := Concept{ID: c.ID}
		for _, v := range c.Variants {
			nv := normalize(v)
			if nv != "" {
				rc.Variants = append(rc.Variants, nv)
			}
		}
		if c.ID != "" && len(rc.Variants) > 0 {
			r.concepts = append(r.concepts, rc)
		}
	}
	return r
}

// FindCanonical resolves text to the first concept whose variant equals,
// contains, or is contained in the normalized input. Iteration order is the
// authored concept order, so repeated calls are deterministic.
func (r *Resolver) FindCanonical(text string) (string, bool) {
	in := r.normalize(text)
	if in == "" {
		return "", false
	}
	for _, c := range r.concepts {
		for _, v := range c.Variants {
			if v == in || strings.Contains(in, v) || strings.Contains(v, in) {
				return c.ID, true
			}
		}
	}
	return "", false
}

// AreSynonyms reports whether both phrases resolve to the same concept.
func (r *Resolver) AreSynonyms(a, b string) bool {
	ca, ok := r.FindCanonical(a)
	if !ok {
		return false
	}
	cb, ok := r.FindCanonical(b)
	return ok && ca == cb
}

// Variations returns the canonical id plus every variant when text resolves,
// else the singleton {text}.
func (r *Resolver) Variations(text string) []string {
	id, ok := r.FindCanonical(text)
	if !ok {
		return []string{text}
	}
	for _, c := range r.concepts {
		if c.ID == id {
			out := make([]string, 0, len(c.Variants)+1)
			out = append(out, id)
			out = append(out, c.Variants...)
			return out
		}
	}
	return []string{text}
}
