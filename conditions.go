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

// ReactorConditions are the process conditions for one simulation:
// one optimizer candidate. A fresh value is created per Simulate call
// and never shared between concurrent calls.
type ReactorConditions struct {
	// Temperature is the process temperature [°C].
	Temperature float64

	// Concentrations maps species to initial concentrations
	// [mol/m³]. Species absent from the map start at zero.
	Concentrations map[*Species]float64

	// Products designates the species counted as product in the
	// yield accounting; all other species count as waste.
	Products []*Species

	// Time is the residence time [minutes].
	Time float64
}
