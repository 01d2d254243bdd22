package calc

import (
	"testing"

	"retag/internal/operator"
	"retag/internal/tag"
)

func detected(kinds ...tag.Kind) []tag.Detected {
	out := make([]tag.Detected, len(kinds))
	for i, k := range kinds {
		out[i] = tag.Detected{Kind: k}
	}
	return out
}

func catalogOf(ops ...*operator.Operator) *operator.Catalog {
	c := operator.Empty()
	c.Operators = ops
	return c
}

func kindSet(kinds []tag.Kind) map[tag.Kind]bool {
	m := make(map[tag.Kind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

func sameKindSet(a, b []tag.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	as := kindSet(a)
	for _, k := range b {
		if !as[k] {
			return false
		}
	}
	return true
}

// findResult returns the result whose tag combination equals kinds as a set.
func findResult(results []Result, kinds ...tag.Kind) *Result {
	for i := range results {
		if sameKindSet(results[i].Tags, kinds) {
			return &results[i]
		}
	}
	return nil
}

func hasOperator(r *Result, id string) bool {
	if r == nil {
		return false
	}
	for _, op := range r.Operators {
		if op.ID == id {
			return true
		}
	}
	return false
}

func TestSubsetEnumeration(t *testing.T) {
	// One operator carrying every kind makes every combination non-empty.
	all := &operator.Operator{ID: "all", Rarity: operator.Tier5, TagList: tag.Kinds()}
	c := New(catalogOf(all))

	kinds := []tag.Kind{tag.Medic, tag.Sniper, tag.Slow, tag.Debuff}
	results := c.Evaluate(detected(kinds...))

	want := 1<<len(kinds) - 1
	if len(results) != want {
		t.Fatalf("got %d combinations, want %d", len(results), want)
	}
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if len(r.Tags) == 0 {
			t.Fatalf("empty combination emitted")
		}
		key := ""
		for _, k := range tag.Kinds() {
			if kindSet(r.Tags)[k] {
				key += k.String() + "|"
			}
		}
		if seen[key] {
			t.Fatalf("duplicate combination %v", r.Tags)
		}
		seen[key] = true
	}
}

func TestDuplicateKindsCollapse(t *testing.T) {
	all := &operator.Operator{ID: "all", Rarity: operator.Tier5, TagList: tag.Kinds()}
	c := New(catalogOf(all))

	tags := detected(tag.Ranged, tag.Ranged, tag.Survival)
	results := c.Evaluate(tags)
	if len(results) != 3 {
		t.Fatalf("duplicate kinds must collapse: got %d combinations, want 3", len(results))
	}
}

func TestScenarioRangedSurvival(t *testing.T) {
	guard := &operator.Operator{
		ID: "guard", Rarity: operator.Tier4,
		TagList: []tag.Kind{tag.Ranged, tag.Survival, tag.Melee},
	}
	c := New(catalogOf(guard))

	results := c.Evaluate(detected(tag.Ranged, tag.Survival))
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, combo := range [][]tag.Kind{
		{tag.Ranged},
		{tag.Survival},
		{tag.Ranged, tag.Survival},
	} {
		r := findResult(results, combo...)
		if r == nil {
			t.Fatalf("missing result for %v", combo)
		}
		if !hasOperator(r, "guard") {
			t.Fatalf("operator with superset tag list missing from %v", combo)
		}
	}
}

func TestTopRarityRequiresTopOperatorTag(t *testing.T) {
	top := &operator.Operator{
		ID: "exu", Rarity: operator.Tier6,
		TagList: []tag.Kind{tag.Ranged, tag.TopOperator},
	}
	sniper := &operator.Operator{
		ID: "kroos", Rarity: operator.Tier3,
		TagList: []tag.Kind{tag.Ranged, tag.Sniper},
	}
	c := New(catalogOf(top, sniper))

	results := c.Evaluate(detected(tag.Ranged, tag.TopOperator))

	if r := findResult(results, tag.Ranged); hasOperator(r, "exu") {
		t.Fatalf("top-rarity operator leaked into {Ranged} alone")
	}
	r := findResult(results, tag.Ranged, tag.TopOperator)
	if r == nil || !hasOperator(r, "exu") {
		t.Fatalf("top-rarity operator missing from {Ranged, Top-Operator}")
	}

	// Invariant: no combination lacking Top-Operator contains a Tier6 operator.
	for _, res := range results {
		if kindSet(res.Tags)[tag.TopOperator] {
			continue
		}
		for _, op := range res.Operators {
			if op.Rarity == operator.Tier6 {
				t.Fatalf("Tier6 operator %s in combination %v without Top-Operator", op.ID, res.Tags)
			}
		}
	}
}

func TestEmptyCombinationsDropped(t *testing.T) {
	medic := &operator.Operator{
		ID: "medic", Rarity: operator.Tier3,
		TagList: []tag.Kind{tag.Medic, tag.Healing},
	}
	c := New(catalogOf(medic))

	// Medic matches, Nuker matches nothing: {Nuker} and {Medic, Nuker}
	// produce no operators and must be absent.
	results := c.Evaluate(detected(tag.Medic, tag.Nuker))
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if findResult(results, tag.Medic) == nil {
		t.Fatalf("missing {Medic} result")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	guard := &operator.Operator{
		ID: "guard", Rarity: operator.Tier4,
		TagList: []tag.Kind{tag.Ranged, tag.Survival},
	}
	c := New(catalogOf(guard))

	tags := detected(tag.Ranged, tag.Survival)
	first := c.Evaluate(tags)
	second := c.Evaluate(tags)

	if len(first) != len(second) {
		t.Fatalf("evaluations differ in length: %d vs %d", len(first), len(second))
	}
	for _, r := range first {
		other := findResult(second, r.Tags...)
		if other == nil {
			t.Fatalf("combination %v missing from second evaluation", r.Tags)
		}
		if len(other.Operators) != len(r.Operators) {
			t.Fatalf("operator lists differ for %v", r.Tags)
		}
		for _, op := range r.Operators {
			if !hasOperator(other, op.ID) {
				t.Fatalf("operator %s missing from second evaluation of %v", op.ID, r.Tags)
			}
		}
	}

	// Order of the detected list must not change the outcome.
	reordered := c.Evaluate(detected(tag.Survival, tag.Ranged))
	if len(reordered) != len(first) {
		t.Fatalf("reordered evaluation differs: %d vs %d", len(reordered), len(first))
	}
}

func TestEmptyPoolYieldsNoResults(t *testing.T) {
	c := New(operator.Empty())
	if got := c.Evaluate(detected(tag.Ranged, tag.Survival, tag.Medic)); len(got) != 0 {
		t.Fatalf("empty pool produced %d results", len(got))
	}
	if got := c.Evaluate(nil); got != nil {
		t.Fatalf("no tags must yield nil results")
	}
}

func TestNilCatalogBehavesAsEmpty(t *testing.T) {
	c := New(nil)
	if got := c.Evaluate(detected(tag.Ranged)); len(got) != 0 {
		t.Fatalf("nil catalog produced %d results", len(got))
	}
}

func TestTierIgnoreConjunctionExcludesNothing(t *testing.T) {
	low := &operator.Operator{
		ID: "low", Rarity: operator.Tier1,
		TagList: []tag.Kind{tag.Robot, tag.Ranged},
	}
	c := New(catalogOf(low))
	c.SetIgnoreTier1(true)
	c.SetIgnoreTier2(true)
	c.SetIgnoreTier3(true)

	// With the conjunction filter as written, a Tier1 operator survives even
	// with every flag set.
	results := c.Evaluate(detected(tag.Robot))
	if !hasOperator(findResult(results, tag.Robot), "low") {
		t.Fatalf("conjunction filter unexpectedly excluded the Tier1 operator")
	}
}

func TestFlagTogglesDuringEvaluation(t *testing.T) {
	// The UI toggles the flags from its own goroutine while the refresh
	// goroutine evaluates; both must be safe to run concurrently.
	low := &operator.Operator{
		ID: "low", Rarity: operator.Tier1,
		TagList: []tag.Kind{tag.Robot, tag.Ranged},
	}
	c := New(catalogOf(low))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			c.SetIgnoreTier1(i%2 == 0)
			c.SetIgnoreTier2(i%3 == 0)
			c.SetIgnoreTier3(i%5 == 0)
		}
	}()

	tags := detected(tag.Robot, tag.Ranged)
	for i := 0; i < 500; i++ {
		if results := c.Evaluate(tags); findResult(results, tag.Robot) == nil {
			t.Fatalf("missing {Robot} result on iteration %d", i)
		}
	}
	<-done
}

func TestFlagChangeInvalidatesMemo(t *testing.T) {
	low := &operator.Operator{
		ID: "low", Rarity: operator.Tier1,
		TagList: []tag.Kind{tag.Robot},
	}
	c := New(catalogOf(low))

	before := c.Evaluate(detected(tag.Robot))
	c.SetIgnoreTier1(true)
	after := c.Evaluate(detected(tag.Robot))

	// Flag state is part of the memo identity, so the second call recomputes
	// rather than replaying the cached list. The observable results happen to
	// be equal because the conjunction filter excludes nothing.
	if len(before) != len(after) {
		t.Fatalf("results diverged: %d vs %d", len(before), len(after))
	}
}
