package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a lexicon set: where it applies and how to read its
// data files.
type Manifest struct {
	ID        string     `yaml:"id" json:"id"`
	Market    string     `yaml:"market" json:"market"`
	Languages []string   `yaml:"languages" json:"languages"`
	Version   string     `yaml:"version" json:"version"`
	Source    string     `yaml:"source" json:"source"`
	Format    FormatSpec `yaml:"format" json:"-"`
}

// FormatSpec describes the abbreviations.csv layout.
type FormatSpec struct {
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
	HasHeader bool   `yaml:"has_header"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	return &m, nil
}

// Info is the public metadata for a loaded lexicon set.
type Info struct {
	ID            string   `json:"id"`
	Market        string   `json:"market"`
	Languages     []string `json:"languages,omitempty"`
	Version       string   `json:"version"`
	Source        string   `json:"source,omitempty"`
	Concepts      int      `json:"concepts"`
	Abbreviations int      `json:"abbreviations"`
	OCRRules      int      `json:"ocr_rules"`
}

// Info returns the set's metadata with table sizes.
func (l *Lexicon) Info() Info {
	return Info{
		ID:            l.Manifest.ID,
		Market:        l.Manifest.Market,
		Languages:     l.Manifest.Languages,
		Version:       l.Manifest.Version,
		Source:        l.Manifest.Source,
		Concepts:      len(l.Concepts),
		Abbreviations: len(l.Abbreviations),
		OCRRules:      len(l.OCRRules),
	}
}
