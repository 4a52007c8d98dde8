// Package naming produces concept labels for knowledge tiles: random
// vocabulary picks for spawned tiles and deterministic synthesized labels for
// merged ones.
package naming

import (
	"fmt"
	"sort"

	"lucidia-engine/pkg/random"
)

// Tier suffixes appended to spawned concepts based on tile value.
const (
	tierBasics       = "basics"
	tierIntermediate = "intermediate"
	tierAdvanced     = "advanced"
	tierExpert       = "expert"
)

// synthesisSeparator joins labels from different families. It must stay out
// of every other label construct (":" scopes families, "+" joins members) so
// synthesized labels remain parseable.
const synthesisSeparator = "↔"

// ConceptNamer labels tiles. Spawn naming draws from the injected random
// source; merge naming is a pure function of its inputs.
type ConceptNamer struct {
	rng random.Source
}

// NewConceptNamer creates a namer backed by the given random source.
func NewConceptNamer(rng random.Source) *ConceptNamer {
	return &ConceptNamer{rng: rng}
}

// ForSpawn picks a base concept from the domain's vocabulary uniformly at
// random and appends the tier suffix for the value. Unknown domains get the
// generic base concept.
func (n *ConceptNamer) ForSpawn(domain string, value int) string {
	base := genericConcept
	if vocabulary, ok := spawnVocabulary[domain]; ok && len(vocabulary) > 0 {
		base = vocabulary[n.rng.Intn(len(vocabulary))]
	}
	return base + ":" + tierForValue(value)
}

// ForMerge synthesizes the label for a merged tile. Deterministic: same-family
// members combine under the family name, merging with a family root promotes
// to the family's advanced label, and everything else becomes a cross-family
// synthesis of both inputs.
func (n *ConceptNamer) ForMerge(first, second, domain string) string {
	families := conceptFamilies[domain]

	// Families are scanned in sorted order; map iteration order must never
	// leak into the label, ForMerge is deterministic by contract.
	names := make([]string, 0, len(families))
	for family := range families {
		names = append(names, family)
	}
	sort.Strings(names)

	for _, family := range names {
		members := families[family]
		if containsConcept(members, first) && containsConcept(members, second) {
			return fmt.Sprintf("%s:%s+%s", family, first, second)
		}
		if first == family || second == family {
			return family + ":" + tierAdvanced
		}
	}

	return first + synthesisSeparator + second
}

func tierForValue(value int) string {
	switch {
	case value <= 4:
		return tierBasics
	case value <= 16:
		return tierIntermediate
	case value <= 64:
		return tierAdvanced
	default:
		return tierExpert
	}
}

func containsConcept(members []string, concept string) bool {
	for _, m := range members {
		if m == concept {
			return true
		}
	}
	return false
}
