package match

import (
	"math"
	"testing"
)

func seedEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestPreprocess(t *testing.T) {
	e := seedEngine(t)
	tests := []struct {
		input, want string
	}{
		{"Lait Entier 1L", "lait entier 1l"},
		{"1ait NIDO", "lait nido"},       // curated OCR fix
		{"pdt", "pomme terre"},           // expansion is itself normalized
		{"PLTN mûr", "plantain mur"},     // abbreviation + accent folding
		{"jus de mangue", "jus mangue"},  // stop-word removal
		{"de la", "de la"},               // stop-word-only input survives
		{"", ""},
	}
	for _, tt := range tests {
		got := e.Preprocess(tt.input)
		if got != tt.want {
			t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func scoreApprox(t *testing.T, got Score, wantScore float64, wantType Type, label string) {
	t.Helper()
	if math.Abs(got.Score-wantScore) > 1e-9 {
		t.Errorf("%s: score = %v, want %v", label, got.Score, wantScore)
	}
	if got.Type != wantType {
		t.Errorf("%s: type = %q, want %q", label, got.Type, wantType)
	}
}

func TestScorePairExact(t *testing.T) {
	e := seedEngine(t)
	scoreApprox(t, e.ScorePair("Lait", "lait"), 1.0, TypeExact, "case fold")
	scoreApprox(t, e.ScorePair("Bière!", "biere"), 1.0, TypeExact, "accent and punctuation")
}

func TestScorePairAbbreviation(t *testing.T) {
	e := seedEngine(t)

	// "pltn" expands to "plantain", which is contained in the candidate.
	got := e.ScorePair("pltn", "Plantain mûr")
	scoreApprox(t, got, 0.9, TypeAbbreviation, "pltn vs Plantain mûr")

	// Expansion to full equality is still exact, not abbreviation.
	got = e.ScorePair("pltn", "plantain")
	scoreApprox(t, got, 1.0, TypeExact, "pltn vs plantain")
}

func TestScorePairContainment(t *testing.T) {
	e := seedEngine(t)

	// "lait nido" (9 runes) inside "lait nido 1l" (12 runes): 0.95 * 9/12.
	got := e.ScorePair("lait nido", "Lait Nido 1L")
	scoreApprox(t, got, 0.95*9.0/12.0, TypeNormalized, "lait nido vs Lait Nido 1L")
}

func TestScorePairShortContainmentFallsThrough(t *testing.T) {
	e := seedEngine(t)

	// "lait" covers only a third of "lait nido 1l"; the containment tier
	// must decline so the synonym tier can claim the pair at full strength.
	got := e.ScorePair("lait", "Lait Nido 1L")
	scoreApprox(t, got, 0.92, TypeSynonym, "lait vs Lait Nido 1L")
}

func TestScorePairSynonymCrossLanguage(t *testing.T) {
	e := seedEngine(t)
	scoreApprox(t, e.ScorePair("milk", "Lait entier"), 0.92, TypeSynonym, "milk vs Lait entier")
	scoreApprox(t, e.ScorePair("maziwa", "Lait entier"), 0.92, TypeSynonym, "maziwa vs Lait entier")
}

func TestScorePairTokenMatch(t *testing.T) {
	e := seedEngine(t)

	// All query tokens present, order ignored: 0.88 * 1.0.
	got := e.ScorePair("huile olive", "Olive Huile Extra")
	scoreApprox(t, got, 0.88, TypeNormalized, "huile olive vs Olive Huile Extra")

	// One token equal, one a close misspelling: 0.88 * (1.0 + 0.8) / 2.
	got = e.ScorePair("ketchup rouge", "rouge katchup")
	scoreApprox(t, got, 0.88*0.9, TypeNormalized, "misspelled token")
}

func TestScorePairWeightedFallback(t *testing.T) {
	e := seedEngine(t)

	// Nothing in common: every primitive is 0.
	got := e.ScorePair("brick", "stone")
	scoreApprox(t, got, 0.0, TypeFuzzy, "brick vs stone")

	// Phonetically identical single tokens are classified phonetic.
	got = e.ScorePair("jhon", "john")
	if got.Type != TypePhonetic {
		t.Errorf("jhon vs john: type = %q, want %q", got.Type, TypePhonetic)
	}
	if got.Score <= 0.3 || got.Score >= 0.5 {
		t.Errorf("jhon vs john: score = %v, want mid-range blend", got.Score)
	}
}

func TestScorePairEmpty(t *testing.T) {
	e := seedEngine(t)
	got := e.ScorePair("", "")
	if got.Score != 0 {
		t.Errorf("empty vs empty: score = %v, want 0", got.Score)
	}
	got = e.ScorePair("", "lait")
	if got.Score != 0 {
		t.Errorf("empty vs lait: score = %v, want 0", got.Score)
	}
}

// Token coverage is measured from the query side, so the token tier is
// directional; the exact, containment and synonym tiers are not.
func TestScorePairSymmetricTiers(t *testing.T) {
	e := seedEngine(t)
	pairs := [][2]string{
		{"lait", "Lait Nido 1L"},
		{"lait nido", "Lait Nido 1L"},
		{"milk", "Lait entier"},
	}
	for _, p := range pairs {
		a := e.ScorePair(p[0], p[1])
		b := e.ScorePair(p[1], p[0])
		if math.Abs(a.Score-b.Score) > 1e-9 {
			t.Errorf("ScorePair(%q, %q) = %v but reversed = %v", p[0], p[1], a.Score, b.Score)
		}
	}
}
