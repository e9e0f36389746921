package textnorm

import "testing"

func TestExpand(t *testing.T) {
	e := NewExpander(map[string]string{
		"lt":  "lait",
		"pdt": "pomme de terre",
		"LT2": "lait demi",
	})
	tests := []struct {
		input, want string
	}{
		{"lt", "lait"},
		{"lt nido", "lait nido"},
		{"pdt 5kg", "pomme de terre 5kg"},
		{"salt", "salt"}, // whole tokens only, never substrings
		{"lt2", "lait demi"},
		{"", ""},
	}
	for _, tt := range tests {
		got := e.Expand(tt.input)
		if got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewExpanderSkipsMultiTokenKeys(t *testing.T) {
	e := NewExpander(map[string]string{
		"a b": "never",
		"ok":  "expanded",
	})
	if got := e.Expand("a b ok"); got != "a b expanded" {
		t.Errorf("Expand = %q, want %q", got, "a b expanded")
	}
}

func TestPipeline(t *testing.T) {
	n := NewNormalizer([]string{"de"})
	c, err := NewOCRCorrector(append([]Rule{{Pattern: `\b1ait\b`, Replacement: "lait"}}, GenericRules()...))
	if err != nil {
		t.Fatalf("NewOCRCorrector: %v", err)
	}
	e := NewExpander(map[string]string{"pdt": "pomme de terre"})
	p := NewPipeline(n, c, e)

	tests := []struct {
		input, want string
	}{
		{"1ait de Coco", "lait coco"},
		{"PDT", "pomme de terre"},
		{"h0ney", "honey"},
	}
	for _, tt := range tests {
		got := p.Preprocess(tt.input)
		if got != tt.want {
			t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if got := p.Normalize("1ait de Coco"); got != "1ait coco" {
		t.Errorf("Normalize = %q, want %q", got, "1ait coco")
	}
}
