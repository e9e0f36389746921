package textnorm

import (
	"fmt"
	"regexp"
)

// Rule is one ordered OCR correction: a regex pattern and its replacement.
// Rules run in authored order; curated multi-character fixes must come before
// generic single-character heuristics, or a generic rule can corrupt a word
// the specific rule was written to catch.
type Rule struct {
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// OCRCorrector applies an ordered list of pattern substitutions that undo
// common optical misreads (digit/letter confusion) in already-normalized text.
type OCRCorrector struct {
	rules []compiledRule
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// NewOCRCorrector compiles the rules, preserving order exactly.
func NewOCRCorrector(rules []Rule) (*OCRCorrector, error) {
	c := &OCRCorrector{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("ocr rule %q: %w", r.Pattern, err)
		}
		c.rules = append(c.rules, compiledRule{re: re, replacement: r.Replacement})
	}
	return c, nil
}

// Fix runs every rule in order over the (lowercased) text.
func (c *OCRCorrector) Fix(text string) string {
	for _, r := range c.rules {
		text = r.re.ReplaceAllString(text, r.replacement)
	}
	return text
}

// GenericRules are the trailing single-character heuristics: common suffix
// and prefix misreads are repaired first, then a digit wedged between letters
// is read as the letter it resembles. The suffix rules must precede the
// wedged-digit rules, which would otherwise consume "1ng" as "lng". Lexicons
// append these after their curated fixes.
func GenericRules() []Rule {
	return []Rule{
		{Pattern: `1ng\b`, Replacement: "ing"},
		{Pattern: `1on\b`, Replacement: "ion"},
		{Pattern: `\b1n`, Replacement: "in"},
		{Pattern: `\b0n`, Replacement: "on"},
		{Pattern: `([a-z])1([a-z])`, Replacement: "${1}l${2}"},
		{Pattern: `([a-z])0([a-z])`, Replacement: "${1}o${2}"},
	}
}
