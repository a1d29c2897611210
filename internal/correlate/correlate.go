// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package correlate derives new destination categories from the base
// section lists by set intersection.
package correlate

import (
	"sort"

	"github.com/pdiddy/travel-catalog/pkg/types"
)

// Rule defines a derived category as the intersection of two base sections.
type Rule struct {
	Key   types.DerivedKey `json:"key" yaml:"key"`
	Left  types.SectionKey `json:"left" yaml:"left"`
	Right types.SectionKey `json:"right" yaml:"right"`
}

var rules = []Rule{
	{Key: types.DerivedCapitaisPraianas, Left: types.SectionCapitais, Right: types.SectionPraias},
	{Key: types.DerivedPraiasOnibus, Left: types.SectionPraias, Right: types.SectionOnibus},
	{Key: types.DerivedInteriorAviao, Left: types.SectionInterior, Right: types.SectionAviao},
	{Key: types.DerivedCapitaisNavio, Left: types.SectionNavio, Right: types.SectionCapitais},
}

// Rules returns a copy of the derivation rules in report order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Correlate computes the four derived categories. Each result holds the
// names present in both source lists, deduplicated and sorted by byte order.
// All four keys are present; an empty intersection yields an empty list.
func Correlate(lists types.SectionLists) types.DerivedLists {
	sets := make(map[types.SectionKey]map[string]struct{}, len(types.AllSections))
	for _, key := range types.AllSections {
		sets[key] = toSet(lists[key])
	}

	derived := types.NewDerivedLists()
	for _, r := range rules {
		derived[r.Key] = intersect(sets[r.Left], sets[r.Right])
	}
	return derived
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// intersect returns the sorted members common to a and b.
func intersect(a, b map[string]struct{}) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := []string{}
	for n := range a {
		if _, ok := b[n]; ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
