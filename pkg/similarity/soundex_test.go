package similarity

import (
	"math"
	"testing"
)

func TestSoundexCode(t *testing.T) {
	tests := []struct {
		token, want string
	}{
		{"robert", "r163"},
		{"lait", "l300"},
		{"milk", "m420"},
		{"milch", "m420"}, // h is a zero marker, same fingerprint as milk
		{"brick", "b620"}, // adjacent c,k collapse to one digit
		{"", ""},
		{"a", "a000"},
	}
	for _, tt := range tests {
		got := SoundexCode(tt.token)
		if got != tt.want {
			t.Errorf("SoundexCode(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestPhonetic(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"milk", "milch", 1.0},
		{"jhon", "john", 1.0},
		{"brick", "stone", 0.0},
		{"huile olive", "olive huile", 1.0}, // order-independent
		{"", "", 1.0},
		{"", "milk", 0.0},
		{"milk milk", "milk", 0.5}, // multiset: second code unmatched
	}
	for _, tt := range tests {
		got := Phonetic(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Phonetic(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPhoneticSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"lait nido", "lait"},
		{"milk", "milch entier"},
		{"savon omo", "omo"},
	}
	for _, p := range pairs {
		if Phonetic(p[0], p[1]) != Phonetic(p[1], p[0]) {
			t.Errorf("Phonetic(%q, %q) not symmetric", p[0], p[1])
		}
	}
}
