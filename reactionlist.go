/*
Copyright © 2025 the IS-Pareto authors.
This file is part of IS-Pareto.

IS-Pareto is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

IS-Pareto is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with IS-Pareto.  If not, see <http://www.gnu.org/licenses/>.
*/

package ispareto

import (
	"fmt"
	"strings"
)

// ReactionList is an ordered, validated list of reactions: the shared
// input type of the Kinetics, Solvation, and Reactor components. All
// consumers of the same reaction slice agree on its content; the list
// is read-only after construction.
//
// The list interns species by Key, so independently constructed
// Species values with identical identity resolve to one canonical
// entry with a stable index into the mass-balance variable set.
type ReactionList struct {
	reactions []*Reaction

	species   []*Species         // mass-balance species, first-appearance order
	index     map[SpeciesKey]int // canonical index into species
	tstates   []*Species         // de-duplicated transition states
	tsByKey   map[SpeciesKey]*Species
	byName    map[string]*Reaction
	canonical map[SpeciesKey]*Species
}

// NewReactionList validates reactions and builds the derived species
// and transition-state sets. Every reaction must be non-nil, have at
// least one reactant, and carry a transition state; any violation
// fails with a ConfigError. This fail-fast contract is shared by
// every consumer of a reaction list so that no partially configured
// simulation can be built.
func NewReactionList(reactions []*Reaction) (*ReactionList, error) {
	if len(reactions) == 0 {
		return nil, ConfigErrorf("ispareto: reaction list is empty")
	}
	l := &ReactionList{
		reactions: reactions,
		index:     make(map[SpeciesKey]int),
		tsByKey:   make(map[SpeciesKey]*Species),
		byName:    make(map[string]*Reaction),
		canonical: make(map[SpeciesKey]*Species),
	}
	for i, r := range reactions {
		if r == nil {
			return nil, ConfigErrorf("ispareto: reaction %d is nil; the list must contain only Reactions", i)
		}
		if len(r.Reactants()) == 0 {
			return nil, ConfigErrorf("ispareto: reaction %q must have at least one reactant", r.Name)
		}
		if r.TransitionState == nil {
			return nil, ConfigErrorf("ispareto: reaction %q must have one transition state", r.Name)
		}
		for _, sp := range r.Species() {
			key := sp.Key()
			if _, ok := l.index[key]; !ok {
				l.index[key] = len(l.species)
				l.species = append(l.species, sp)
				l.canonical[key] = sp
			}
		}
		ts := r.TransitionState
		if _, ok := l.tsByKey[ts.Key()]; !ok {
			l.tsByKey[ts.Key()] = ts
			l.tstates = append(l.tstates, ts)
		}
		if r.Name != "" {
			l.byName[r.Name] = r
		}
	}
	return l, nil
}

// Reactions returns the reactions in input order. The returned slice
// must not be modified.
func (l *ReactionList) Reactions() []*Reaction { return l.reactions }

// Len returns the number of reactions.
func (l *ReactionList) Len() int { return len(l.reactions) }

// Species returns the de-duplicated mass-balance species in order of
// first appearance. Transition states are not included.
func (l *ReactionList) Species() []*Species { return l.species }

// TransitionStates returns the de-duplicated transition states in
// order of first appearance.
func (l *ReactionList) TransitionStates() []*Species { return l.tstates }

// Index returns the mass-balance variable index of sp, matching by
// identity key.
func (l *ReactionList) Index(sp *Species) (int, bool) {
	i, ok := l.index[sp.Key()]
	return i, ok
}

// ByName returns the named reaction, if present.
func (l *ReactionList) ByName(name string) (*Reaction, bool) {
	r, ok := l.byName[name]
	return r, ok
}

// ReverseInconsistencies scans for forward/reverse reaction pairs
// (names differing only in a "_fwd"/"_rev" suffix) whose
// stoichiometries are not exact negations of each other, and returns
// one description per mismatch. Such entries are surfaced as warnings
// and deliberately never corrected: the stoichiometry table is the
// validated input, not something to second-guess.
func (l *ReactionList) ReverseInconsistencies() []string {
	var warnings []string
	for _, fwd := range l.reactions {
		if !strings.HasSuffix(fwd.Name, "_fwd") {
			continue
		}
		revName := strings.TrimSuffix(fwd.Name, "_fwd") + "_rev"
		rev, ok := l.byName[revName]
		if !ok {
			continue
		}
		diff := fwd.Combine(rev, 1) // exact reverse sums to nothing
		if len(diff.Terms()) == 0 {
			continue
		}
		var parts []string
		for _, t := range diff.Terms() {
			parts = append(parts, fmt.Sprintf("%s (%+d)", t.Species.Name, t.Coefficient))
		}
		warnings = append(warnings, fmt.Sprintf(
			"reactions %q and %q are not exact reverses; unbalanced: %s",
			fwd.Name, revName, strings.Join(parts, ", ")))
	}
	return warnings
}
