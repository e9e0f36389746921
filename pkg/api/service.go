// Package api exposes the match engine over HTTP and MCP. Both transports
// dispatch to the same kit.Endpoints, so behavior cannot drift between them.
package api

import (
	"fmt"
	"sync"

	"github.com/goshopper/matchstick/pkg/catalog"
	"github.com/goshopper/matchstick/pkg/lexicon"
	"github.com/goshopper/matchstick/pkg/match"
)

// Service ties one active lexicon set, the product catalog and the match
// engine together. The engine is rebuilt on lexicon reload; reads go through
// an RWMutex so in-flight requests keep the engine they started with.
type Service struct {
	registry  *lexicon.Registry
	store     *catalog.Store
	lexiconID string

	mu     sync.RWMutex
	engine *match.Engine
}

// NewService builds a service on the given registry and catalog store.
// An empty lexiconID selects the compiled-in seed set.
func NewService(reg *lexicon.Registry, store *catalog.Store, lexiconID string) (*Service, error) {
	if lexiconID == "" {
		lexiconID = lexicon.Seed().Manifest.ID
	}
	s := &Service{registry: reg, store: store, lexiconID: lexiconID}
	if err := s.Rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild re-resolves the active lexicon set and swaps in a fresh engine.
// Called at startup and after a registry reload.
func (s *Service) Rebuild() error {
	lex, ok := s.registry.Get(s.lexiconID)
	if !ok {
		return fmt.Errorf("lexicon set %q not loaded", s.lexiconID)
	}
	eng, err := match.NewEngine(lex)
	if err != nil {
		return fmt.Errorf("build engine for %q: %w", s.lexiconID, err)
	}
	s.mu.Lock()
	s.engine = eng
	s.mu.Unlock()
	return nil
}

// Engine returns the current match engine.
func (s *Service) Engine() *match.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Store returns the catalog store.
func (s *Service) Store() *catalog.Store { return s.store }

// Registry returns the lexicon registry.
func (s *Service) Registry() *lexicon.Registry { return s.registry }

func (s *Service) candidates() ([]match.Candidate, error) {
	cands, err := s.store.Candidates()
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	return cands, nil
}
