// Package tag defines the recruitment tag vocabulary and detected tag records.
package tag

import (
	"fmt"

	"retag/pkg/geometry"
)

// Kind identifies one of the fixed recruitment tag kinds.
type Kind int

const (
	Medic Kind = iota
	Caster
	Vanguard
	Guard
	Defender
	Supporter
	Melee
	Debuff
	FastRedeploy
	Shift
	Summon
	Support
	Survival
	Elemental
	Ranged
	DpRecovery
	Starter
	Slow
	AoE
	Sniper
	CrowdControl
	Healing
	DPS
	Nuker
	SeniorOperator
	Specialist
	Robot
	TopOperator

	numKinds
)

// canonical holds the display spelling for each kind, indexed by Kind.
var canonical = [numKinds]string{
	Medic:          "Medic",
	Caster:         "Caster",
	Vanguard:       "Vanguard",
	Guard:          "Guard",
	Defender:       "Defender",
	Supporter:      "Supporter",
	Melee:          "Melee",
	Debuff:         "Debuff",
	FastRedeploy:   "Fast-Redeploy",
	Shift:          "Shift",
	Summon:         "Summon",
	Support:        "Support",
	Survival:       "Survival",
	Elemental:      "Elemental",
	Ranged:         "Ranged",
	DpRecovery:     "Dp-Recovery",
	Starter:        "Starter",
	Slow:           "Slow",
	AoE:            "AoE",
	Sniper:         "Sniper",
	CrowdControl:   "Crowd-Control",
	Healing:        "Healing",
	DPS:            "DPS",
	Nuker:          "Nuker",
	SeniorOperator: "Senior-Operator",
	Specialist:     "Specialist",
	Robot:          "Robot",
	TopOperator:    "Top-Operator",
}

// spellings maps every accepted surface spelling (hyphenated, concatenated,
// spaced) to its kind. Multi-word kinds accept all three forms; single-word
// kinds accept only their canonical form.
var spellings = map[string]Kind{}

func init() {
	for k := Kind(0); k < numKinds; k++ {
		spellings[canonical[k]] = k
	}
	for s, k := range map[string]Kind{
		"FastRedeploy":    FastRedeploy,
		"Fast Redeploy":   FastRedeploy,
		"DpRecovery":      DpRecovery,
		"Dp Recovery":     DpRecovery,
		"CrowdControl":    CrowdControl,
		"Crowd Control":   CrowdControl,
		"SeniorOperator":  SeniorOperator,
		"Senior Operator": SeniorOperator,
		"TopOperator":     TopOperator,
		"Top Operator":    TopOperator,
	} {
		spellings[s] = k
	}
}

// String returns the canonical display spelling for the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return canonical[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any
// documented spelling.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind maps an accepted spelling to its Kind. Returns an error wrapping
// ErrUnrecognizedTag for any string outside the vocabulary.
func ParseKind(s string) (Kind, error) {
	if k, ok := spellings[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnrecognizedTag)
}

// Kinds returns every tag kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Vocabulary returns the canonical spelling of every kind, in declaration
// order. This is the candidate list handed to the fuzzy matcher.
func Vocabulary() []string {
	out := make([]string, numKinds)
	for i := range out {
		out[i] = canonical[i]
	}
	return out
}

// Detected is one recognized tag button from a single detection pass.
// Instances are immutable; each pass replaces the whole list.
type Detected struct {
	Kind     Kind
	Selected bool
	Region   geometry.RectInt
}

// New builds a Detected from a recognized surface string. The string lookup
// is defensive: the recognizer only ever emits vocabulary spellings, but an
// out-of-vocabulary string still fails cleanly rather than producing a
// bogus tag.
func New(spelling string, selected bool, region geometry.RectInt) (Detected, error) {
	kind, err := ParseKind(spelling)
	if err != nil {
		return Detected{}, err
	}
	return Detected{Kind: kind, Selected: selected, Region: region}, nil
}

// Positioned is a Detected tag projected into absolute screen space.
type Positioned struct {
	Detected
	ScreenRegion geometry.RectInt
}

// Position projects the tag by the host window's screen offset.
func (d Detected) Position(offset geometry.PointInt) Positioned {
	return Positioned{
		Detected:     d,
		ScreenRegion: d.Region.Offset(offset),
	}
}
