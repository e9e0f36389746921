package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds all loaded lexicon sets, keyed by id. It supports hot
// reload: the engine layer resolves a set at request time and each set is
// itself immutable, so a reload swaps the map without disturbing in-flight
// work.
type Registry struct {
	mu   sync.RWMutex
	sets map[string]*Lexicon
	dir  string
}

// NewRegistry creates a registry for the given lexicons directory. An empty
// dir means seed-only: Load installs just the compiled-in set.
func NewRegistry(dir string) *Registry {
	return &Registry{sets: make(map[string]*Lexicon), dir: dir}
}

// Load scans the lexicons directory and loads every set. The seed set is
// always present; a directory set with the same id overrides it.
func (r *Registry) Load() error {
	newSets := map[string]*Lexicon{}
	seed := Seed()
	newSets[seed.Manifest.ID] = seed

	if r.dir != "" {
		entries, err := os.ReadDir(r.dir)
		if err != nil {
			return fmt.Errorf("read lexicons dir %s: %w", r.dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(r.dir, entry.Name())
			if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
				continue
			}
			l, err := Load(dir)
			if err != nil {
				return fmt.Errorf("load lexicon %s: %w", entry.Name(), err)
			}
			newSets[l.Manifest.ID] = l
		}
	}

	r.mu.Lock()
	r.sets = newSets
	r.mu.Unlock()
	return nil
}

// Reload reloads all lexicon sets from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// Get returns a lexicon set by id.
func (r *Registry) Get(id string) (*Lexicon, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.sets[id]
	return l, ok
}

// List returns metadata for all loaded sets, sorted by id.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.sets))
	for _, l := range r.sets {
		infos = append(infos, l.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Count returns the number of loaded lexicon sets.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sets)
}
