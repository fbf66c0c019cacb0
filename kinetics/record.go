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

package kinetics

import (
	ispareto "github.com/bg196678/IS-Pareto"
)

// Record holds the geometry and frequency data for one species,
// sufficient to build its partition function. Units follow the
// Gaussian formatted checkpoint convention: coordinates in bohr,
// gradient in hartree/bohr, force constants in hartree/bohr², masses
// in amu, energy in hartree.
type Record struct {
	// AtomicNumbers, one per atom.
	AtomicNumbers []int

	// Masses are the atomic masses [amu], one per atom.
	Masses []float64

	// Coordinates are the Cartesian coordinates [bohr], 3 per
	// atom.
	Coordinates []float64

	// Gradient is the Cartesian energy gradient [hartree/bohr], 3
	// per atom. It may be nil when the source file omits it.
	Gradient []float64

	// ForceConstants is the lower-triangular Cartesian Hessian
	// [hartree/bohr²], 3N(3N+1)/2 values.
	ForceConstants []float64

	// Energy is the electronic energy [hartree].
	Energy float64
}

// Atoms returns the number of atoms.
func (rec *Record) Atoms() int { return len(rec.Masses) }

// Loader supplies the geometry/frequency Record for a species. The
// default loader parses the species' Gaussian formatted checkpoint
// file; tests and alternative data providers can inject their own.
type Loader func(sp *ispareto.Species) (*Record, error)
