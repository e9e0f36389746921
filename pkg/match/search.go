package match

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Search scores every candidate against the query, keeps those at or above
// cfg.MinScore, and returns them sorted by descending score. The sort is
// stable: ties preserve candidate input order. A nil cfg or zero fields take
// the defaults (MinScore DefaultMinScore, MaxResults unbounded).
//
// An empty or whitespace-only query is a pass-through: every candidate comes
// back as an exact match with score 1.0 in input order, so callers can show
// the unfiltered list when no query is active.
func (e *Engine) Search(candidates []Candidate, query string, cfg *Config) []Result {
	minScore := DefaultMinScore
	maxResults := 0
	if cfg != nil {
		if cfg.MinScore > 0 {
			minScore = cfg.MinScore
		}
		maxResults = cfg.MaxResults
	}

	if strings.TrimSpace(query) == "" {
		results := make([]Result, 0, len(candidates))
		for _, c := range candidates {
			if strings.TrimSpace(c.Name) == "" {
				continue
			}
			results = append(results, Result{
				Candidate:   c,
				Score:       1.0,
				Type:        TypeExact,
				MatchedText: c.Name,
				Confidence:  1.0,
			})
		}
		return results
	}

	q := e.prepare(query)
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		cp := e.prepare(c.Name)
		s := e.score(q, cp)
		if s.Score < minScore {
			continue
		}
		results = append(results, Result{
			Candidate:   c,
			Score:       s.Score,
			Type:        s.Type,
			MatchedText: cp.preprocessed,
			Confidence:  s.Score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// HasMatch reports whether any candidate matches the query at the threshold
// (DefaultHasMatchThreshold when <= 0). Containment and synonym hits count as
// matches outright, whatever the threshold; only the remaining candidates are
// scored against it.
func (e *Engine) HasMatch(candidates []Candidate, query string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultHasMatchThreshold
	}

	if strings.TrimSpace(query) == "" {
		for _, c := range candidates {
			if strings.TrimSpace(c.Name) != "" {
				return true
			}
		}
		return false
	}

	q := e.prepare(query)
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		cp := e.prepare(c.Name)
		if q.preprocessed != "" && cp.preprocessed != "" {
			if strings.Contains(cp.preprocessed, q.preprocessed) || strings.Contains(q.preprocessed, cp.preprocessed) {
				return true
			}
			if e.res.AreSynonyms(q.preprocessed, cp.preprocessed) {
				return true
			}
		}
		if e.score(q, cp).Score >= threshold {
			return true
		}
	}
	return false
}

// Suggestions returns up to limit distinct display names for autocomplete,
// in score order. Queries shorter than two characters return nothing;
// scoring uses the stricter SuggestMinScore floor over a 2*limit window
// before deduplication.
func (e *Engine) Suggestions(candidates []Candidate, query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		return nil
	}

	results := e.Search(candidates, query, &Config{MinScore: SuggestMinScore, MaxResults: 2 * limit})

	seen := make(map[string]struct{}, len(results))
	var names []string
	for _, r := range results {
		if _, dup := seen[r.Candidate.Name]; dup {
			continue
		}
		seen[r.Candidate.Name] = struct{}{}
		names = append(names, r.Candidate.Name)
		if len(names) == limit {
			break
		}
	}
	return names
}
