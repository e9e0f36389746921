package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ImportOptions describe the CSV layout for ImportCSV.
type ImportOptions struct {
	Delimiter string // default ","
	Encoding  string // IANA name; empty or utf-8 means no transcoding
	HasHeader bool
}

// ImportCSV loads products from a CSV file with columns
// id, name, category, unit (category and unit optional) and returns the
// number of products imported. Rows without an id or name are skipped.
func (s *Store) ImportCSV(path string, opts ImportOptions) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if enc := opts.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return 0, fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	if opts.Delimiter != "" {
		r.Comma = []rune(opts.Delimiter)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	if opts.HasHeader {
		if _, err := r.Read(); err != nil && err != io.EOF {
			return 0, fmt.Errorf("read header: %w", err)
		}
	}

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read row: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		p := Product{
			ID:   strings.TrimSpace(record[0]),
			Name: strings.TrimSpace(record[1]),
		}
		if len(record) > 2 {
			p.Category = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			p.Unit = strings.TrimSpace(record[3])
		}
		if p.ID == "" || p.Name == "" {
			continue
		}
		if err := s.Put(p); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
