package match

import (
	"strings"
	"unicode/utf8"

	"github.com/goshopper/matchstick/pkg/similarity"
)

// tier is one matcher strategy in the priority chain. The first tier that
// yields a result wins; the weighted blend runs when none does.
type tier struct {
	name string
	try  func(q, c prepared) (Score, bool)
}

// Fixed weights of the fallback blend. Edit distance carries the most weight
// because it is the only primitive that punishes misspellings and rewards
// near-identical strings at the same time; token overlap ignores spelling,
// n-grams overmatch short words, phonetics is language-biased.
const (
	weightLevenshtein = 0.40
	weightTokens      = 0.25
	weightNGram       = 0.20
	weightPhonetic    = 0.15
)

// containmentFloor gates the containment tier: a substring hit covering less
// than half of the longer string scores too low to be worth claiming and
// would preempt the stronger synonym and token tiers behind it.
const containmentFloor = 0.5

// Fixed tier scores and thresholds.
const (
	containmentBase     = 0.95
	synonymScore        = 0.92
	abbreviationScore   = 0.9
	tokenMatchBase      = 0.88
	tokenMatchThreshold = 0.8
	tokenFuzzyMin       = 0.75
	tokenFuzzyCredit    = 0.8
	tokenSynonymCredit  = 0.9
)

// ScorePair scores one query/candidate-name pair.
func (e *Engine) ScorePair(query, name string) Score {
	return e.score(e.prepare(query), e.prepare(name))
}

func (e *Engine) score(q, c prepared) Score {
	// Two strings with no comparable content never match; without this the
	// weighted blend's empty-input conventions would score them 1.0.
	if q.preprocessed == "" && c.preprocessed == "" {
		return Score{Type: TypeFuzzy}
	}
	for _, t := range e.tiers {
		if s, ok := t.try(q, c); ok {
			return s
		}
	}
	return e.weighted(q, c)
}

// tryExact: fully preprocessed strings equal, or the merely-normalized
// strings already equal.
func (e *Engine) tryExact(q, c prepared) (Score, bool) {
	if q.preprocessed == "" && q.normalized == "" {
		return Score{}, false
	}
	if q.preprocessed == c.preprocessed || q.normalized == c.normalized {
		return Score{Score: 1.0, Type: TypeExact}, true
	}
	return Score{}, false
}

// tryAbbreviation: the query only matches because abbreviation expansion
// rewrote it. Equality is already claimed by the exact tier, so containment
// either way is what remains.
func (e *Engine) tryAbbreviation(q, c prepared) (Score, bool) {
	if !q.expanded || q.preprocessed == "" || c.preprocessed == "" {
		return Score{}, false
	}
	if strings.Contains(c.preprocessed, q.preprocessed) || strings.Contains(q.preprocessed, c.preprocessed) {
		return Score{Score: abbreviationScore, Type: TypeAbbreviation}, true
	}
	return Score{}, false
}

// tryContainment: one preprocessed string contains the other, scored by the
// length ratio. Hits under containmentFloor fall through to later tiers.
func (e *Engine) tryContainment(q, c prepared) (Score, bool) {
	if q.preprocessed == "" || c.preprocessed == "" {
		return Score{}, false
	}
	if !strings.Contains(q.preprocessed, c.preprocessed) && !strings.Contains(c.preprocessed, q.preprocessed) {
		return Score{}, false
	}
	lq := utf8.RuneCountInString(q.preprocessed)
	lc := utf8.RuneCountInString(c.preprocessed)
	minLen, maxLen := lq, lc
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	ratio := float64(minLen) / float64(maxLen)
	if ratio < containmentFloor {
		return Score{}, false
	}
	return Score{Score: containmentBase * ratio, Type: TypeNormalized}, true
}

// trySynonym: both sides resolve to the same canonical concept.
func (e *Engine) trySynonym(q, c prepared) (Score, bool) {
	if q.preprocessed == "" || c.preprocessed == "" {
		return Score{}, false
	}
	if e.res.AreSynonyms(q.preprocessed, c.preprocessed) {
		return Score{Score: synonymScore, Type: TypeSynonym}, true
	}
	return Score{}, false
}

// tryTokenMatch: order-independent token comparison. Each query token earns
// full credit for an equal target token, tokenFuzzyCredit for a close edit-
// distance match, tokenSynonymCredit for a synonym; the average must clear
// tokenMatchThreshold.
func (e *Engine) tryTokenMatch(q, c prepared) (Score, bool) {
	qTokens := longTokens(q.preprocessed)
	cTokens := longTokens(c.preprocessed)
	if len(qTokens) == 0 || len(cTokens) == 0 {
		return Score{}, false
	}

	var sum float64
	for _, qt := range qTokens {
		sum += tokenCredit(qt, cTokens, e)
	}
	agg := sum / float64(len(qTokens))
	if agg < tokenMatchThreshold {
		return Score{}, false
	}
	return Score{Score: tokenMatchBase * agg, Type: TypeNormalized}, true
}

func tokenCredit(qt string, cTokens []string, e *Engine) float64 {
	for _, ct := range cTokens {
		if qt == ct {
			return 1.0
		}
	}
	for _, ct := range cTokens {
		if similarity.Levenshtein(qt, ct) > tokenFuzzyMin {
			return tokenFuzzyCredit
		}
	}
	for _, ct := range cTokens {
		if e.res.AreSynonyms(qt, ct) {
			return tokenSynonymCredit
		}
	}
	return 0
}

// longTokens returns the whitespace tokens longer than one character.
func longTokens(s string) []string {
	var out []string
	for _, tok := range strings.Fields(s) {
		if utf8.RuneCountInString(tok) > 1 {
			out = append(out, tok)
		}
	}
	return out
}

// weighted is the always-available fallback: a fixed-weight blend of the
// four similarity primitives. The match type is classified post hoc from the
// already-computed component scores; changing that order changes observable
// classification without changing the number, so it stays fixed
// (phonetic first, then n-gram, else fuzzy).
func (e *Engine) weighted(q, c prepared) Score {
	lev := similarity.Levenshtein(q.preprocessed, c.preprocessed)
	tok := similarity.TokenJaccard(q.preprocessed, c.preprocessed)
	ngr := similarity.Bigram(q.preprocessed, c.preprocessed)
	pho := similarity.Phonetic(q.preprocessed, c.preprocessed)

	score := weightLevenshtein*lev + weightTokens*tok + weightNGram*ngr + weightPhonetic*pho

	typ := TypeFuzzy
	switch {
	case pho > 0.7 && pho > lev:
		typ = TypePhonetic
	case ngr > 0.6 && ngr > lev:
		typ = TypePartial
	}
	return Score{Score: score, Type: typ}
}
