// Package match implements the tiered product-matching engine: it scores a
// noisy query against candidate display names and ranks the results.
//
// Scoring runs through a fixed chain of matcher tiers (exact, abbreviation,
// containment, synonym, order-independent tokens) and falls back to a
// weighted blend of the similarity primitives when no tier fires. An Engine
// is immutable after construction and safe for concurrent use; large
// candidate sets parallelize across candidates in the caller.
package match

// Type classifies why two strings were judged similar, distinct from the
// numeric score.
type Type string

const (
	TypeExact        Type = "exact"
	TypeNormalized   Type = "normalized"
	TypeSynonym      Type = "synonym"
	TypeFuzzy        Type = "fuzzy"
	TypePhonetic     Type = "phonetic"
	TypePartial      Type = "partial"
	TypeAbbreviation Type = "abbreviation"
)

// Candidate is an external item being scored. The engine never owns or
// mutates it; candidates with an empty display name are skipped.
type Candidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Result is one scored candidate. Confidence currently equals Score; it is
// kept as a separate field so the two can diverge without an API break.
type Result struct {
	Candidate   Candidate `json:"candidate"`
	Score       float64   `json:"score"`
	Type        Type      `json:"match_type"`
	MatchedText string    `json:"matched_text"`
	Confidence  float64   `json:"confidence"`
}

// Score is the outcome of scoring one query/candidate pair.
type Score struct {
	Score float64 `json:"score"`
	Type  Type    `json:"match_type"`
}

// Config tunes a search call. The zero value means: MinScore
// DefaultMinScore, MaxResults unbounded.
type Config struct {
	MinScore   float64 `json:"min_score"`
	MaxResults int     `json:"max_results"`
}

const (
	// DefaultMinScore is the general search floor.
	DefaultMinScore = 0.35
	// SuggestMinScore is the stricter floor used for autocomplete.
	SuggestMinScore = 0.4
	// DefaultHasMatchThreshold is the HasMatch floor when none is given.
	DefaultHasMatchThreshold = 0.5
	// DefaultSuggestLimit caps autocomplete suggestions when no limit is given.
	DefaultSuggestLimit = 5
)
