package lexicon

import (
	"strings"
	"testing"

	"github.com/goshopper/matchstick/pkg/textnorm"
)

func TestSeedValid(t *testing.T) {
	l := Seed()

	if l.Manifest.ID == "" {
		t.Error("seed manifest has no id")
	}

	seen := map[string]bool{}
	for _, c := range l.Concepts {
		if c.ID == "" {
			t.Error("seed concept with empty id")
		}
		if seen[c.ID] {
			t.Errorf("duplicate concept id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Variants) == 0 {
			t.Errorf("concept %q has no variants", c.ID)
		}
	}

	for k := range l.Abbreviations {
		if strings.ContainsRune(k, ' ') {
			t.Errorf("abbreviation key %q is not a single token", k)
		}
	}

	if _, err := textnorm.NewOCRCorrector(l.OCRRules); err != nil {
		t.Errorf("seed OCR rules do not compile: %v", err)
	}
}

func TestSeedResolverKeepsAllConcepts(t *testing.T) {
	l := Seed()
	norm := textnorm.NewNormalizer(l.Stopwords)
	r := NewResolver(l.Concepts, norm.Normalize)

	// Every concept must survive normalization with at least one variant.
	if len(r.concepts) != len(l.Concepts) {
		t.Errorf("resolver kept %d of %d seed concepts", len(r.concepts), len(l.Concepts))
	}
}
