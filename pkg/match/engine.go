package match

import (
	"github.com/goshopper/matchstick/pkg/lexicon"
	"github.com/goshopper/matchstick/pkg/textnorm"
)

// Engine scores queries against candidate names using one lexicon set.
type Engine struct {
	norm  *textnorm.Normalizer
	ocr   *textnorm.OCRCorrector
	abbr  *textnorm.Expander
	res   *lexicon.Resolver
	tiers []tier
}

// NewEngine builds an engine from a lexicon set (nil means the seed set).
// The only failure mode is an OCR rule that does not compile.
func NewEngine(lex *lexicon.Lexicon) (*Engine, error) {
	if lex == nil {
		lex = lexicon.Seed()
	}

	norm := textnorm.NewNormalizer(lex.Stopwords)

	ocr, err := textnorm.NewOCRCorrector(lex.OCRRules)
	if err != nil {
		return nil, err
	}

	// Expansions go through the normalizer so multi-word expansions match
	// candidate names whose stop-words were removed (pdt -> "pomme terre").
	table := make(map[string]string, len(lex.Abbreviations))
	for k, v := range lex.Abbreviations {
		table[k] = norm.Normalize(v)
	}

	e := &Engine{
		norm: norm,
		ocr:  ocr,
		abbr: textnorm.NewExpander(table),
		res:  lexicon.NewResolver(lex.Concepts, norm.Normalize),
	}
	e.tiers = []tier{
		{name: "exact", try: e.tryExact},
		{name: "abbreviation", try: e.tryAbbreviation},
		{name: "containment", try: e.tryContainment},
		{name: "synonym", try: e.trySynonym},
		{name: "tokens", try: e.tryTokenMatch},
	}
	return e, nil
}

// Normalize exposes the engine's first preprocessing stage.
func (e *Engine) Normalize(text string) string {
	return e.norm.Normalize(text)
}

// Preprocess runs the full pipeline: normalize, fix OCR misreads, expand
// abbreviations.
func (e *Engine) Preprocess(text string) string {
	return e.abbr.Expand(e.ocr.Fix(e.norm.Normalize(text)))
}

// Resolver returns the engine's synonym resolver.
func (e *Engine) Resolver() *lexicon.Resolver {
	return e.res
}

// prepared caches the preprocessing stages of one string for scoring.
type prepared struct {
	raw          string
	normalized   string // normalizer only
	preprocessed string // full pipeline
	expanded     bool   // abbreviation expansion changed the text
}

func (e *Engine) prepare(text string) prepared {
	normalized := e.norm.Normalize(text)
	fixed := e.ocr.Fix(normalized)
	preprocessed := e.abbr.Expand(fixed)
	return prepared{
		raw:          text,
		normalized:   normalized,
		preprocessed: preprocessed,
		expanded:     preprocessed != fixed,
	}
}
