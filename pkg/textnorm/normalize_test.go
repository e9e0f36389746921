package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil)
	tests := []struct {
		input, want string
	}{
		{"Lait Entier 1L", "lait entier 1l"},
		{"Élodie", "elodie"},
		{"CAFÉ", "cafe"},
		{"huile,olive!", "huile olive"},
		{"  riz   blanc  ", "riz blanc"},
		{"Bière (33cl)", "biere 33cl"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		got := n.Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeStopwords(t *testing.T) {
	n := NewNormalizer([]string{"de", "la", "the"})
	tests := []struct {
		input, want string
	}{
		{"pomme de terre", "pomme terre"},
		{"jus de la mangue", "jus mangue"},
		{"the milk", "milk"},
		// Removal that would empty the string is skipped.
		{"de la", "de la"},
		{"the", "the"},
	}
	for _, tt := range tests {
		got := n.Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeStopwordsFolded(t *testing.T) {
	// Stop-words are folded at construction, so accented or uppercased
	// entries still match normalized tokens.
	n := NewNormalizer([]string{"DE", "À"})
	if got, want := n.Normalize("pâte à tartiner"), "pate tartiner"; got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer([]string{"de", "the"})
	for _, input := range []string{"Pomme de Terre", "CAFÉ au lait!", "", "de de"} {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent on %q: %q -> %q", input, once, twice)
		}
	}
}
