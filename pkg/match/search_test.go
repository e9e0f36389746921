package match

import "testing"

func groceryCandidates() []Candidate {
	return []Candidate{
		{ID: "p1", Name: "Lait Nido 1L"},
		{ID: "p2", Name: "Savon Omo 500g"},
		{ID: "p3", Name: "Huile Végétale 1L"},
		{ID: "p4", Name: "Plantain mûr"},
		{ID: "p5", Name: "Lait entier"},
	}
}

func TestSearchRanking(t *testing.T) {
	e := seedEngine(t)

	results := e.Search(groceryCandidates(), "lait", nil)
	if len(results) < 2 {
		t.Fatalf("results = %d, want at least the two milk products", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Errorf("results not sorted: %v before %v", results[i-1].Score, results[i].Score)
		}
	}
	// Both milk products resolve through the synonym tier.
	if results[0].Type != TypeSynonym {
		t.Errorf("top type = %q, want %q", results[0].Type, TypeSynonym)
	}
	if results[0].Score != 0.92 {
		t.Errorf("top score = %v, want 0.92", results[0].Score)
	}
	// Ties keep candidate input order: p1 before p5.
	if results[0].Candidate.ID != "p1" || results[1].Candidate.ID != "p5" {
		t.Errorf("tie order = %s, %s; want p1, p5", results[0].Candidate.ID, results[1].Candidate.ID)
	}
}

func TestSearchOCRQuery(t *testing.T) {
	e := seedEngine(t)

	results := e.Search(groceryCandidates(), "1ait", &Config{MinScore: 0.8})
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 milk products", len(results))
	}
	for _, r := range results {
		if r.Score < 0.8 {
			t.Errorf("%s scored %v, want >= 0.8", r.Candidate.ID, r.Score)
		}
	}
}

func TestSearchCrossLanguage(t *testing.T) {
	e := seedEngine(t)

	results := e.Search(groceryCandidates(), "milk", &Config{MinScore: 0.9})
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Type != TypeSynonym {
			t.Errorf("%s type = %q, want synonym", r.Candidate.ID, r.Type)
		}
	}
}

func TestSearchAbbreviatedQuery(t *testing.T) {
	e := seedEngine(t)

	results := e.Search(groceryCandidates(), "pltn", &Config{MinScore: 0.8})
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Candidate.ID != "p4" {
		t.Errorf("match = %s, want p4", results[0].Candidate.ID)
	}
	if results[0].Type != TypeAbbreviation {
		t.Errorf("type = %q, want %q", results[0].Type, TypeAbbreviation)
	}
}

func TestSearchWordOrder(t *testing.T) {
	e := seedEngine(t)

	cands := []Candidate{{ID: "x1", Name: "Olive Huile Extra"}}
	results := e.Search(cands, "huile olive", &Config{MinScore: 0.8})
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Score != 0.88 {
		t.Errorf("score = %v, want 0.88", results[0].Score)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	e := seedEngine(t)

	cands := append(groceryCandidates(), Candidate{ID: "blank", Name: "   "})
	results := e.Search(cands, "  ", &Config{MaxResults: 2})
	// Pass-through: every named candidate, input order, no truncation.
	if len(results) != 5 {
		t.Fatalf("results = %d, want 5", len(results))
	}
	for i, r := range results {
		if r.Score != 1.0 || r.Type != TypeExact {
			t.Errorf("result %d = (%v, %q), want (1.0, exact)", i, r.Score, r.Type)
		}
		if r.Candidate.ID != groceryCandidates()[i].ID {
			t.Errorf("result %d = %s, want input order", i, r.Candidate.ID)
		}
	}
}

func TestSearchMaxResults(t *testing.T) {
	e := seedEngine(t)

	results := e.Search(groceryCandidates(), "lait", &Config{MinScore: 0.01, MaxResults: 1})
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Candidate.ID != "p1" {
		t.Errorf("top = %s, want p1", results[0].Candidate.ID)
	}
}

func TestSearchMinScoreFilter(t *testing.T) {
	e := seedEngine(t)

	for _, r := range e.Search(groceryCandidates(), "xqzw", nil) {
		if r.Score < DefaultMinScore {
			t.Errorf("result %s scored %v, below default floor", r.Candidate.ID, r.Score)
		}
	}
}

func TestHasMatch(t *testing.T) {
	e := seedEngine(t)
	cands := groceryCandidates()

	tests := []struct {
		query     string
		threshold float64
		want      bool
	}{
		{"lait", 0, true},          // containment short-circuit
		{"milk", 0, true},          // synonym short-circuit
		{"1ait", 0.8, true},        // OCR fix then synonym
		{"xqzw", 0, false},         // gibberish below default threshold
		{"jhon", 0.9, false},       // no tier fires, blend under threshold
		{"", 0, true},              // empty query, non-empty catalog
		{"savon", 0.99, true},      // containment counts regardless of threshold
	}
	for _, tt := range tests {
		if got := e.HasMatch(cands, tt.query, tt.threshold); got != tt.want {
			t.Errorf("HasMatch(%q, %v) = %v, want %v", tt.query, tt.threshold, got, tt.want)
		}
	}

	if e.HasMatch(nil, "", 0) {
		t.Error("HasMatch with no candidates and empty query = true, want false")
	}
}

func TestSuggestions(t *testing.T) {
	e := seedEngine(t)

	cands := []Candidate{
		{ID: "p1", Name: "Lait Nido 1L"},
		{ID: "p1b", Name: "Lait Nido 1L"}, // duplicate display name
		{ID: "p5", Name: "Lait entier"},
		{ID: "p2", Name: "Savon Omo 500g"},
	}

	got := e.Suggestions(cands, "lait", 5)
	if len(got) != 2 {
		t.Fatalf("suggestions = %v, want 2 distinct names", got)
	}
	seen := map[string]bool{}
	for _, name := range got {
		if seen[name] {
			t.Errorf("duplicate suggestion %q", name)
		}
		seen[name] = true
	}

	if got := e.Suggestions(cands, "lait", 1); len(got) != 1 {
		t.Errorf("limit 1: got %v", got)
	}
}

func TestSuggestionsShortQuery(t *testing.T) {
	e := seedEngine(t)
	for _, q := range []string{"", "l", " l "} {
		if got := e.Suggestions(groceryCandidates(), q, 5); got != nil {
			t.Errorf("Suggestions(%q) = %v, want nil", q, got)
		}
	}
}
