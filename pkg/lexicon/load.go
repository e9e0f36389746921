package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/goshopper/matchstick/pkg/textnorm"
)

// Load reads a lexicon set from a directory containing manifest.yaml,
// synonyms.yaml, ocr_rules.yaml, stopwords.yaml and abbreviations.csv.
// Missing data files leave the corresponding table empty; a missing or
// invalid manifest is an error, as is an OCR rule that does not compile.
func Load(dir string) (*Lexicon, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	l := &Lexicon{Manifest: *manifest}

	if err := l.loadSynonyms(filepath.Join(dir, "synonyms.yaml")); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", manifest.ID, err)
	}
	if err := l.loadOCRRules(filepath.Join(dir, "ocr_rules.yaml")); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", manifest.ID, err)
	}
	if err := l.loadStopwords(filepath.Join(dir, "stopwords.yaml")); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", manifest.ID, err)
	}
	if err := l.loadAbbreviations(filepath.Join(dir, "abbreviations.csv")); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", manifest.ID, err)
	}
	return l, nil
}

type synonymsFile struct {
	Concepts []Concept `yaml:"concepts"`
}

func (l *Lexicon) loadSynonyms(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read synonyms: %w", err)
	}
	var f synonymsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse synonyms: %w", err)
	}
	for _, c := range f.Concepts {
		if c.ID == "" || len(c.Variants) == 0 {
			return fmt.Errorf("synonyms: concept %q must have an id and at least one variant", c.ID)
		}
	}
	l.Concepts = f.Concepts
	return nil
}

type ocrRulesFile struct {
	Rules         []textnorm.Rule `yaml:"rules"`
	AppendGeneric bool            `yaml:"append_generic"`
}

func (l *Lexicon) loadOCRRules(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read ocr rules: %w", err)
	}
	var f ocrRulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse ocr rules: %w", err)
	}
	// Authored order is load-bearing; validate but never reorder.
	for _, r := range f.Rules {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return fmt.Errorf("ocr rule %q: %w", r.Pattern, err)
		}
	}
	l.OCRRules = f.Rules
	if f.AppendGeneric {
		l.OCRRules = append(l.OCRRules, textnorm.GenericRules()...)
	}
	return nil
}

type stopwordsFile struct {
	Stopwords []string `yaml:"stopwords"`
}

func (l *Lexicon) loadStopwords(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read stopwords: %w", err)
	}
	var f stopwordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse stopwords: %w", err)
	}
	l.Stopwords = f.Stopwords
	return nil
}

func (l *Lexicon) loadAbbreviations(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open abbreviations: %w", err)
	}
	defer f.Close()

	// Transcode non-UTF-8 encodings declared in the manifest.
	var reader io.Reader = f
	if enc := l.Manifest.Format.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	if delim := l.Manifest.Format.Delimiter; delim != "" {
		r.Comma = []rune(delim)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	if l.Manifest.Format.HasHeader {
		if _, err := r.Read(); err != nil && err != io.EOF {
			return fmt.Errorf("read header: %w", err)
		}
	}

	table := make(map[string]string)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		key := strings.TrimSpace(record[0])
		val := strings.TrimSpace(record[1])
		if key == "" || val == "" || strings.ContainsRune(key, ' ') {
			// Abbreviation keys must be single tokens.
			continue
		}
		table[key] = val
	}
	l.Abbreviations = table
	return nil
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
