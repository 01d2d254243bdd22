// Package operator models the recruitable operator catalog.
package operator

import (
	"fmt"

	"retag/internal/tag"
)

// Rarity is the operator rank, Tier1 (lowest) through Tier6 (top).
type Rarity int

const (
	Tier1 Rarity = iota + 1
	Tier2
	Tier3
	Tier4
	Tier5
	Tier6
)

var rarityNames = map[string]Rarity{
	"TIER_1": Tier1,
	"TIER_2": Tier2,
	"TIER_3": Tier3,
	"TIER_4": Tier4,
	"TIER_5": Tier5,
	"TIER_6": Tier6,
}

// String returns the catalog label for the rarity.
func (r Rarity) String() string {
	if r < Tier1 || r > Tier6 {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return fmt.Sprintf("TIER_%d", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rarity) UnmarshalText(text []byte) error {
	v, ok := rarityNames[string(text)]
	if !ok {
		return fmt.Errorf("unknown rarity %q", text)
	}
	*r = v
	return nil
}

// Position is the operator's attack position.
type Position int

const (
	Melee Position = iota
	Ranged
)

// String returns the catalog label for the position.
func (p Position) String() string {
	if p == Ranged {
		return "RANGED"
	}
	return "MELEE"
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	switch string(text) {
	case "MELEE":
		*p = Melee
	case "RANGED":
		*p = Ranged
	default:
		return fmt.Errorf("unknown position %q", text)
	}
	return nil
}

// Operator is one recruitable character. Loaded once at startup and treated
// as immutable for the process lifetime.
type Operator struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Rarity   Rarity     `json:"rarity"`
	TagList  []tag.Kind `json:"tag_list"`
	Position Position   `json:"position"`
}

// HasTag reports whether the operator's tag list contains the kind.
func (o *Operator) HasTag(k tag.Kind) bool {
	for _, t := range o.TagList {
		if t == k {
			return true
		}
	}
	return false
}

// MatchesTags reports whether the operator is obtainable from the given tag
// combination: every queried kind must be on the operator's tag list, and a
// top-rarity operator additionally requires Top-Operator in the query.
func (o *Operator) MatchesTags(kinds []tag.Kind) bool {
	if o.Rarity == Tier6 {
		hasTop := false
		for _, k := range kinds {
			if k == tag.TopOperator {
				hasTop = true
				break
			}
		}
		if !hasTop {
			return false
		}
	}
	for _, k := range kinds {
		if !o.HasTag(k) {
			return false
		}
	}
	return true
}
