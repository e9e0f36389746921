// Package catalog is the product catalog backing the match engine: a small
// SQLite database of products (the candidate provider) plus learned
// raw-name-to-product mappings confirmed by users.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/goshopper/matchstick/pkg/match"
)

// Product is one catalog entry.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// Mapping records a confirmed resolution of a preprocessed raw name to a
// product, optionally scoped to the shop it was seen at.
type Mapping struct {
	RawKey    string `json:"raw_key"`
	ProductID string `json:"product_id"`
	ShopID    string `json:"shop_id,omitempty"`
}

// Store wraps the catalog SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the catalog database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS products (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		unit       TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS mappings (
		raw_key    TEXT PRIMARY KEY,
		product_id TEXT NOT NULL REFERENCES products(id),
		shop_id    TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces a product.
func (s *Store) Put(p Product) error {
	if p.ID == "" || p.Name == "" {
		return fmt.Errorf("product needs id and name")
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO products (id, name, category, unit, updated_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Category, p.Unit, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("put product %s: %w", p.ID, err)
	}
	return nil
}

// Get returns a product by id.
func (s *Store) Get(id string) (Product, bool, error) {
	var p Product
	err := s.db.QueryRow(`SELECT id, name, category, unit FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.Unit)
	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, true, nil
}

// List returns all products ordered by id.
func (s *Store) List() ([]Product, error) {
	rows, err := s.db.Query(`SELECT id, name, category, unit FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Unit); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Candidates returns the products as match candidates, skipping any row with
// an empty display name.
func (s *Store) Candidates() ([]match.Candidate, error) {
	products, err := s.List()
	if err != nil {
		return nil, err
	}
	candidates := make([]match.Candidate, 0, len(products))
	for _, p := range products {
		if p.Name == "" {
			continue
		}
		candidates = append(candidates, match.Candidate{ID: p.ID, Name: p.Name})
	}
	return candidates, nil
}

// Count returns the number of products.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Learn stores a confirmed raw-name mapping. The raw key should already be
// preprocessed so later lookups hit regardless of surface form. Re-learning
// a key overwrites the previous mapping.
func (s *Store) Learn(m Mapping) error {
	if m.RawKey == "" || m.ProductID == "" {
		return fmt.Errorf("mapping needs raw_key and product_id")
	}
	if _, ok, err := s.Get(m.ProductID); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("unknown product %q", m.ProductID)
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO mappings (raw_key, product_id, shop_id, created_at) VALUES (?, ?, ?, ?)`,
		m.RawKey, m.ProductID, m.ShopID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("learn mapping %q: %w", m.RawKey, err)
	}
	return nil
}

// Resolve looks up a previously learned mapping for a preprocessed raw key.
func (s *Store) Resolve(rawKey string) (Product, bool, error) {
	var productID string
	err := s.db.QueryRow(`SELECT product_id FROM mappings WHERE raw_key = ?`, rawKey).Scan(&productID)
	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, fmt.Errorf("resolve %q: %w", rawKey, err)
	}
	return s.Get(productID)
}
