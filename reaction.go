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
	"sort"
	"strings"
)

// Term is one entry of a reaction's stoichiometry: a species together
// with its signed integer coefficient. Negative coefficients denote
// consumption, positive ones production.
type Term struct {
	Species     *Species
	Coefficient int
}

// Reaction maps species to signed stoichiometric coefficients and
// carries exactly one transition state parametrizing its rate
// constant. Zero-coefficient entries are pruned and never stored.
type Reaction struct {
	// Name identifies the reaction in diagnostics. It may be
	// empty.
	Name string

	// TransitionState is the saddle-point species for this
	// reaction. It must be set before the reaction is consumed by
	// a Kinetics, Solvation, or Reactor.
	TransitionState *Species

	stoich map[SpeciesKey]Term
}

// NewReaction creates a reaction from stoichiometric terms. Terms
// naming the same species merge coefficient-wise; entries that sum to
// zero are dropped.
func NewReaction(name string, transitionState *Species, terms ...Term) *Reaction {
	r := &Reaction{
		Name:            name,
		TransitionState: transitionState,
		stoich:          make(map[SpeciesKey]Term),
	}
	for _, t := range terms {
		r.merge(t.Species, t.Coefficient)
	}
	return r
}

func (r *Reaction) merge(sp *Species, coeff int) {
	key := sp.Key()
	t, ok := r.stoich[key]
	if !ok {
		if coeff != 0 {
			r.stoich[key] = Term{Species: sp, Coefficient: coeff}
		}
		return
	}
	t.Coefficient += coeff
	if t.Coefficient == 0 {
		delete(r.stoich, key)
		return
	}
	r.stoich[key] = t
}

// Coefficient returns the stoichiometric coefficient of sp, or zero
// if sp does not take part in the reaction.
func (r *Reaction) Coefficient(sp *Species) int {
	return r.stoich[sp.Key()].Coefficient
}

// Combine merges the stoichiometry of r and o coefficient-wise,
// scaling o's coefficients by sign, and returns the result as a new
// reaction. Entries that cancel to zero are pruned. The result
// carries no name or transition state; it is an intermediate value in
// species algebra, used to assemble multi-step pathways and reverse
// reactions.
func (r *Reaction) Combine(o *Reaction, sign int) *Reaction {
	out := NewReaction("", nil, r.Terms()...)
	for _, t := range o.Terms() {
		out.merge(t.Species, sign*t.Coefficient)
	}
	return out
}

// Add returns a new reaction with the term merged into r's
// stoichiometry.
func (r *Reaction) Add(t Term) *Reaction {
	out := NewReaction(r.Name, r.TransitionState, r.Terms()...)
	out.merge(t.Species, t.Coefficient)
	return out
}

// Terms returns the reaction's stoichiometry as a slice sorted by
// species name.
func (r *Reaction) Terms() []Term {
	terms := make([]Term, 0, len(r.stoich))
	for _, t := range r.stoich {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Species.Name < terms[j].Species.Name
	})
	return terms
}

// Reactants returns the species with negative coefficients, sorted by
// name.
func (r *Reaction) Reactants() []*Species {
	return r.selectSpecies(func(c int) bool { return c < 0 })
}

// Products returns the species with positive coefficients, sorted by
// name.
func (r *Reaction) Products() []*Species {
	return r.selectSpecies(func(c int) bool { return c > 0 })
}

// Species returns all species taking part in the reaction, sorted by
// name. The transition state is not included.
func (r *Reaction) Species() []*Species {
	return r.selectSpecies(func(int) bool { return true })
}

func (r *Reaction) selectSpecies(keep func(int) bool) []*Species {
	var out []*Species
	for _, t := range r.Terms() {
		if keep(t.Coefficient) {
			out = append(out, t.Species)
		}
	}
	return out
}

func (r *Reaction) String() string {
	var lhs, rhs []string
	for _, t := range r.Terms() {
		switch {
		case t.Coefficient < -1:
			lhs = append(lhs, fmt.Sprintf("%d %s", -t.Coefficient, t.Species.Name))
		case t.Coefficient == -1:
			lhs = append(lhs, t.Species.Name)
		case t.Coefficient == 1:
			rhs = append(rhs, t.Species.Name)
		default:
			rhs = append(rhs, fmt.Sprintf("%d %s", t.Coefficient, t.Species.Name))
		}
	}
	name := r.Name
	if name == "" {
		name = "reaction"
	}
	return fmt.Sprintf("%s: %s -> %s", name,
		strings.Join(lhs, " + "), strings.Join(rhs, " + "))
}
