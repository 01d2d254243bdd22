// Package textmatch provides fuzzy matching of noisy OCR text against a
// fixed vocabulary.
package textmatch

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity scores how alike two strings are, in [0,1].
type Similarity func(a, b string) float64

// Ratio is the default Similarity: the difflib sequence-match ratio over
// individual characters.
func Ratio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// Matcher matches query strings against a fixed candidate vocabulary.
type Matcher struct {
	vocab  []string
	cutoff float64
	sim    Similarity
}

// NewMatcher creates a Matcher over the given vocabulary. Candidates scoring
// below cutoff are rejected.
func NewMatcher(vocab []string, cutoff float64) *Matcher {
	return &Matcher{vocab: vocab, cutoff: cutoff, sim: Ratio}
}

// NewMatcherFunc creates a Matcher with a custom similarity function.
func NewMatcherFunc(vocab []string, cutoff float64, sim Similarity) *Matcher {
	return &Matcher{vocab: vocab, cutoff: cutoff, sim: sim}
}

// Best returns the single highest-scoring vocabulary entry for the query,
// or ok=false if no entry clears the cutoff. Ties keep the earlier
// vocabulary entry.
func (m *Matcher) Best(query string) (match string, ok bool) {
	bestScore := m.cutoff
	for _, cand := range m.vocab {
		score := m.sim(query, cand)
		if score > bestScore || (score == bestScore && !ok) {
			match, ok = cand, true
			bestScore = score
		}
	}
	return match, ok
}
