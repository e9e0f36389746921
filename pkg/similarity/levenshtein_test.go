package similarity

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"lait", "lait", 1.0},
		{"lait", "la1t", 0.75},
		{"kitten", "sitting", 4.0 / 7.0},
		{"", "", 1.0},
		{"", "lait", 0.0},
		{"lait", "", 0.0},
		{"café", "cafe", 0.75}, // rune-based, not byte-based
	}
	for _, tt := range tests {
		got := Levenshtein(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Levenshtein(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"tomate", "tomato"},
		{"savon", "sabuni"},
		{"", "riz"},
	}
	for _, p := range pairs {
		if Levenshtein(p[0], p[1]) != Levenshtein(p[1], p[0]) {
			t.Errorf("Levenshtein(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestLevenshteinBounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "zzzzzzzzzz"},
		{"huile", "olive"},
		{"x", "x"},
	}
	for _, p := range pairs {
		got := Levenshtein(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Levenshtein(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}
