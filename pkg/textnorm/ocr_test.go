package textnorm

import "testing"

func TestGenericRules(t *testing.T) {
	c, err := NewOCRCorrector(GenericRules())
	if err != nil {
		t.Fatalf("NewOCRCorrector: %v", err)
	}
	tests := []struct {
		input, want string
	}{
		{"m1lk", "mllk"}, // generic rules alone misread this; curated rules must run first
		{"h0ney", "honey"},
		{"cook1ng", "cooking"},
		{"1nterdit", "interdit"},
		{"0nion", "onion"},
		{"lait", "lait"},
		{"1ait", "1ait"}, // leading digit before a vowel: no generic rule applies
		{"", ""},
	}
	for _, tt := range tests {
		got := c.Fix(tt.input)
		if got != tt.want {
			t.Errorf("Fix(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRuleOrder(t *testing.T) {
	// The curated fix must run before the generic digit heuristic, or
	// "spr1te" is corrupted into "sprlte" and never recovers.
	curatedFirst := append([]Rule{{Pattern: `\bspr1te\b`, Replacement: "sprite"}}, GenericRules()...)
	c, err := NewOCRCorrector(curatedFirst)
	if err != nil {
		t.Fatalf("NewOCRCorrector: %v", err)
	}
	if got := c.Fix("spr1te"); got != "sprite" {
		t.Errorf("Fix(spr1te) = %q, want sprite", got)
	}

	genericOnly, _ := NewOCRCorrector(GenericRules())
	if got := genericOnly.Fix("spr1te"); got != "sprlte" {
		t.Errorf("generic-only Fix(spr1te) = %q, want sprlte", got)
	}
}

func TestNewOCRCorrectorInvalidPattern(t *testing.T) {
	_, err := NewOCRCorrector([]Rule{{Pattern: `(`, Replacement: "x"}})
	if err == nil {
		t.Fatal("expected error for invalid pattern, got nil")
	}
}
