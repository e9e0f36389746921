package textnorm

import "strings"

// Expander replaces whole-token abbreviations with their canonical full form.
// Lookup is exact and case-insensitive; substrings are never expanded.
type Expander struct {
	table map[string]string
}

// NewExpander builds an Expander. Keys must be single tokens; expansions may
// be multi-word. Both sides are folded so the table matches normalized text.
func NewExpander(table map[string]string) *Expander {
	folded := make(map[string]string, len(table))
	for k, v := range table {
		k = foldASCII(strings.TrimSpace(k))
		if k == "" || strings.ContainsRune(k, ' ') {
			continue
		}
		folded[k] = foldASCII(strings.TrimSpace(v))
	}
	return &Expander{table: folded}
}

// Expand maps each whitespace-separated token through the table, leaving
// unknown tokens unchanged, and rejoins with single spaces.
func (e *Expander) Expand(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}
	for i, tok := range tokens {
		if full, ok := e.table[tok]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " ")
}
