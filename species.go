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

import "math"

// Species is a unique chemical state in a reaction network: a
// reactant, intermediate, product, or transition state. Two Species
// values denote the same entity iff their Key values match; reaction
// lists intern species by key so that independently constructed but
// identical Species values unify.
type Species struct {
	// Name identifies the species. Names must be unique within a
	// reaction network.
	Name string

	// Mass is the molar mass [kg/mol]. It is zero for transition
	// states, which never appear in mass balances.
	Mass float64

	// Energy is an optional high-fidelity electronic energy
	// [hartree] overriding the value in the frequency record.
	// It is NaN when unset.
	Energy float64

	// FchkFile is the path to the Gaussian formatted checkpoint
	// file holding the geometry and frequency data for this
	// species.
	FchkFile string

	// TabFile is the path to the COSMOtherm table holding the
	// temperature-indexed solvation free energies for this
	// species.
	TabFile string

	transitionState bool
}

// NewSpecies creates a mass-carrying species. mass is the molar mass
// in kg/mol.
func NewSpecies(name string, mass float64, fchkFile, tabFile string) *Species {
	return &Species{
		Name:     name,
		Mass:     mass,
		Energy:   math.NaN(),
		FchkFile: fchkFile,
		TabFile:  tabFile,
	}
}

// NewTransitionState creates a transition state. Transition states
// have no mass; they only parametrize rate constants.
func NewTransitionState(name string, fchkFile, tabFile string) *Species {
	return &Species{
		Name:            name,
		Energy:          math.NaN(),
		FchkFile:        fchkFile,
		TabFile:         tabFile,
		transitionState: true,
	}
}

// IsTransitionState reports whether s is a transition state.
func (s *Species) IsTransitionState() bool { return s.transitionState }

// HasEnergy reports whether an electronic energy override is set.
func (s *Species) HasEnergy() bool { return !math.IsNaN(s.Energy) }

// SpeciesKey is the identity of a Species: name, molar mass and
// geometry reference. It is comparable and can be used as a map key.
type SpeciesKey struct {
	Name     string
	Mass     float64
	FchkFile string
}

// Key returns the identity key for s.
func (s *Species) Key() SpeciesKey {
	return SpeciesKey{Name: s.Name, Mass: s.Mass, FchkFile: s.FchkFile}
}

func (s *Species) String() string { return s.Name }
