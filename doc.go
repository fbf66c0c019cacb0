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

// Package ispareto simulates multi-step chemical reaction networks to
// predict competing process metrics, space-time yield (STY) and
// E-factor, as functions of process conditions, for use by a
// multi-objective optimizer exploring the Pareto trade-off between
// them.
//
// The package holds the reaction graph data model (Species, Reaction,
// ReactionList), the reactor conditions value type, and the Reactor,
// which assembles and integrates the coupled mass-action ODE system
// for a network. Rate-constant parametrizations plug in through the
// RateModel and SolvationModel interfaces; the kinetics and solvation
// subpackages provide ab-initio implementations, and the system
// subpackage provides spreadsheet-tabulated ones.
package ispareto
