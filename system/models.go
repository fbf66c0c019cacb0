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

package system

import (
	ispareto "github.com/bg196678/IS-Pareto"
	"github.com/bg196678/IS-Pareto/kinetics"
	"github.com/bg196678/IS-Pareto/solvation"
)

// Models builds the rate and solvation models for a loaded system:
// the spreadsheet-tabulated ones when the definition points at
// tables, the ab-initio kinetics/solvation ones otherwise. opts only
// applies to the ab-initio path.
func Models(sys *System, opts kinetics.Options) (ispareto.RateModel, ispareto.SolvationModel, error) {
	if sys.Tabulated() {
		k, err := NewTableKinetics(sys.Reactions, sys.KineticsTable)
		if err != nil {
			return nil, nil, err
		}
		s, err := NewTableSolvation(sys.Reactions, sys.GsolvTable)
		if err != nil {
			return nil, nil, err
		}
		return k, s, nil
	}
	k, err := kinetics.New(sys.Reactions, opts)
	if err != nil {
		return nil, nil, err
	}
	s, err := solvation.New(sys.Reactions, solvation.Options{})
	if err != nil {
		return nil, nil, err
	}
	return k, s, nil
}
