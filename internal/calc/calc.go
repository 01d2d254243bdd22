// Package calc computes obtainable operators for every combination of
// detected recruitment tags.
package calc

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"retag/internal/operator"
	"retag/internal/tag"
)

// memoSize bounds the result cache. Tag sets are tiny, so this is generous.
const memoSize = 128

// Result pairs one tag combination with the operators obtainable from it.
// Operators are shared references into the catalog pool.
type Result struct {
	Tags      []tag.Kind
	Operators []*operator.Operator
}

// Calculator evaluates tag combinations against an immutable operator
// catalog. The tier-ignore flags narrow the pool before matching; they may
// be toggled from a different goroutine than the one calling Evaluate.
type Calculator struct {
	catalog *operator.Catalog

	mu          sync.Mutex
	ignoreTier1 bool
	ignoreTier2 bool
	ignoreTier3 bool

	memo *lru.Cache[string, []Result]
}

// New creates a Calculator over the given catalog. A nil catalog behaves
// like an empty pool.
func New(catalog *operator.Catalog) *Calculator {
	if catalog == nil {
		catalog = operator.Empty()
	}
	memo, _ := lru.New[string, []Result](memoSize)
	return &Calculator{catalog: catalog, memo: memo}
}

// SetIgnoreTier1 toggles exclusion of Tier1 operators from the pool.
func (c *Calculator) SetIgnoreTier1(v bool) {
	c.mu.Lock()
	c.ignoreTier1 = v
	c.mu.Unlock()
}

// SetIgnoreTier2 toggles exclusion of Tier2 operators from the pool.
func (c *Calculator) SetIgnoreTier2(v bool) {
	c.mu.Lock()
	c.ignoreTier2 = v
	c.mu.Unlock()
}

// SetIgnoreTier3 toggles exclusion of Tier3 operators from the pool.
func (c *Calculator) SetIgnoreTier3(v bool) {
	c.mu.Lock()
	c.ignoreTier3 = v
	c.mu.Unlock()
}

// ignores returns a consistent snapshot of the flag state for one evaluation.
func (c *Calculator) ignores() (t1, t2, t3 bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ignoreTier1, c.ignoreTier2, c.ignoreTier3
}

// Evaluate enumerates every non-empty combination of the distinct kinds in
// the detected tag list and returns, per combination, the operators
// obtainable from it. Combinations with no matching operator are dropped.
// Selection state and regions do not participate in matching.
func (c *Calculator) Evaluate(tags []tag.Detected) []Result {
	kinds := distinctKinds(tags)
	if len(kinds) == 0 {
		return nil
	}

	ig1, ig2, ig3 := c.ignores()
	key := memoKey(kinds, ig1, ig2, ig3)
	if cached, ok := c.memo.Get(key); ok {
		return cached
	}

	pool := c.filteredPool(ig1, ig2, ig3)

	// n distinct kinds yield exactly 2^n - 1 non-empty combinations.
	var results []Result
	for mask := 1; mask < 1<<len(kinds); mask++ {
		combo := make([]tag.Kind, 0, len(kinds))
		for i, k := range kinds {
			if mask&(1<<i) != 0 {
				combo = append(combo, k)
			}
		}

		var matched []*operator.Operator
		for _, op := range pool {
			if op.MatchesTags(combo) {
				matched = append(matched, op)
			}
		}
		if len(matched) == 0 {
			continue
		}
		results = append(results, Result{Tags: combo, Operators: matched})
	}

	c.memo.Add(key, results)
	return results
}

// filteredPool applies the tier-ignore flags to the catalog.
//
// TODO: each ignore flag should probably exclude its tier on its own; the
// conjunction below can never hold for a single operator, so the flags
// currently exclude nothing. Kept as-is until the intended policy is
// confirmed.
func (c *Calculator) filteredPool(ignore1, ignore2, ignore3 bool) []*operator.Operator {
	out := make([]*operator.Operator, 0, c.catalog.Size())
	for _, op := range c.catalog.Operators {
		drop1 := ignore1 && op.Rarity == operator.Tier1
		drop2 := ignore2 && op.Rarity == operator.Tier2
		drop3 := ignore3 && op.Rarity == operator.Tier3
		if drop1 && drop2 && drop3 {
			continue
		}
		out = append(out, op)
	}
	return out
}

// distinctKinds extracts the kind set from detected tags, first-seen order.
func distinctKinds(tags []tag.Detected) []tag.Kind {
	seen := make(map[tag.Kind]bool, len(tags))
	var kinds []tag.Kind
	for _, t := range tags {
		if seen[t.Kind] {
			continue
		}
		seen[t.Kind] = true
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

// memoKey identifies an evaluation by its kind set and the flag state.
// Order-insensitive so that a reshuffled detection pass hits the cache.
func memoKey(kinds []tag.Kind, ig1, ig2, ig3 bool) string {
	sorted := make([]int, len(kinds))
	for i, k := range kinds {
		sorted[i] = int(k)
	}
	sort.Ints(sorted)

	var sb strings.Builder
	for _, k := range sorted {
		fmt.Fprintf(&sb, "%d,", k)
	}
	fmt.Fprintf(&sb, "|%t%t%t", ig1, ig2, ig3)
	return sb.String()
}
