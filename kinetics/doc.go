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

// Package kinetics computes temperature-dependent gas-phase rate
// constants for elementary reactions from transition-state theory.
//
// For every reaction it builds statistical-mechanics partition
// functions (translational, rigid-rotor rotational, and harmonic
// vibrational) for each reactant and for the transition state, from
// geometry and frequency data in Gaussian formatted checkpoint files.
// External translations and rotations are projected out of the
// Cartesian Hessian before the normal-mode analysis; geometries whose
// residual gradient exceeds a configurable threshold are rejected as
// non-stationary.
//
// An optional quantum tunneling correction (Wigner, Eckart, or
// Miller) multiplies the classical rate constant; Eckart additionally
// needs partition-function data for the reaction products to size the
// reverse barrier. Corrections never decrease the rate constant.
package kinetics
