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

import "math"

// physical constants (SI)
const (
	boltzmann = 1.380649e-23   // J/K
	planck    = 6.62607015e-34 // J·s
	hbar      = planck / (2 * math.Pi)
	avogadro  = 6.02214076e23 // 1/mol

	amu     = 1.66053906660e-27   // kg
	bohr    = 5.29177210903e-11   // m
	hartree = 4.3597447222071e-18 // J
)

// hessianUnit converts force constants from hartree/bohr² to J/m².
const hessianUnit = hartree / (bohr * bohr)
