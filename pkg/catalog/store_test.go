package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openStore(t)

	p := Product{ID: "p1", Name: "Lait Nido 1L", Category: "dairy", Unit: "l"}
	if err := s.Put(p); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get("p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get: not found")
	}
	if got != p {
		t.Errorf("Get = %+v, want %+v", got, p)
	}

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestPutValidates(t *testing.T) {
	s := openStore(t)
	if err := s.Put(Product{ID: "", Name: "x"}); err == nil {
		t.Error("Put without id: expected error")
	}
	if err := s.Put(Product{ID: "x", Name: ""}); err == nil {
		t.Error("Put without name: expected error")
	}
}

func TestPutReplaces(t *testing.T) {
	s := openStore(t)
	s.Put(Product{ID: "p1", Name: "Old"})
	s.Put(Product{ID: "p1", Name: "New"})

	got, _, _ := s.Get("p1")
	if got.Name != "New" {
		t.Errorf("Name = %q, want New", got.Name)
	}
	if n, _ := s.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestListAndCandidates(t *testing.T) {
	s := openStore(t)
	s.Put(Product{ID: "b", Name: "Banane douce"})
	s.Put(Product{ID: "a", Name: "Arachides 500g"})

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Errorf("List = %+v, want ordered by id", list)
	}

	cands, err := s.Candidates()
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("Candidates = %d, want 2", len(cands))
	}
	if cands[0].ID != "a" || cands[0].Name != "Arachides 500g" {
		t.Errorf("candidate[0] = %+v", cands[0])
	}
}

func TestLearnResolve(t *testing.T) {
	s := openStore(t)
	s.Put(Product{ID: "p1", Name: "Lait Nido 1L"})
	s.Put(Product{ID: "p2", Name: "Lait entier"})

	if err := s.Learn(Mapping{RawKey: "lait nido", ProductID: "p1", ShopID: "shop-9"}); err != nil {
		t.Fatalf("Learn: %v", err)
	}

	got, ok, err := s.Resolve("lait nido")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !ok || got.ID != "p1" {
		t.Errorf("Resolve = (%+v, %v), want p1", got, ok)
	}

	// Re-learning the key overwrites the mapping.
	if err := s.Learn(Mapping{RawKey: "lait nido", ProductID: "p2"}); err != nil {
		t.Fatalf("Learn again: %v", err)
	}
	got, _, _ = s.Resolve("lait nido")
	if got.ID != "p2" {
		t.Errorf("after re-learn: Resolve = %s, want p2", got.ID)
	}

	if _, ok, _ := s.Resolve("never learned"); ok {
		t.Error("Resolve(never learned) = true, want false")
	}
}

func TestLearnValidates(t *testing.T) {
	s := openStore(t)
	s.Put(Product{ID: "p1", Name: "Riz 5kg"})

	if err := s.Learn(Mapping{RawKey: "", ProductID: "p1"}); err == nil {
		t.Error("Learn without raw_key: expected error")
	}
	if err := s.Learn(Mapping{RawKey: "riz", ProductID: ""}); err == nil {
		t.Error("Learn without product_id: expected error")
	}
	if err := s.Learn(Mapping{RawKey: "riz", ProductID: "ghost"}); err == nil {
		t.Error("Learn with unknown product: expected error")
	}
}

func TestImportCSV(t *testing.T) {
	s := openStore(t)

	path := filepath.Join(t.TempDir(), "products.csv")
	os.WriteFile(path, []byte(`id,name,category,unit
p1,Lait Nido 1L,dairy,l
p2,Savon Omo 500g,household,g
,No ID Row,x,y
p4,,x,y
p5,Riz 5kg
`), 0o644)

	count, err := s.ImportCSV(path, ImportOptions{HasHeader: true})
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if count != 3 {
		t.Errorf("imported = %d, want 3 (rows without id or name skipped)", count)
	}

	got, ok, _ := s.Get("p5")
	if !ok || got.Name != "Riz 5kg" || got.Category != "" {
		t.Errorf("Get(p5) = (%+v, %v)", got, ok)
	}
}

func TestImportCSVLatin1(t *testing.T) {
	s := openStore(t)

	path := filepath.Join(t.TempDir(), "products.csv")
	// "Bière" in ISO-8859-1: 0xE8 for è.
	os.WriteFile(path, []byte("p1;Bi\xe8re Primus 72cl;drinks;cl\n"), 0o644)

	count, err := s.ImportCSV(path, ImportOptions{Delimiter: ";", Encoding: "iso-8859-1"})
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported = %d, want 1", count)
	}

	got, _, _ := s.Get("p1")
	if got.Name != "Bière Primus 72cl" {
		t.Errorf("Name = %q, want transcoded Bière Primus 72cl", got.Name)
	}
}
