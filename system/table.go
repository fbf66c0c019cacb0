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
	"sort"
	"strings"

	"github.com/tealeg/xlsx"

	ispareto "github.com/bg196678/IS-Pareto"
	"github.com/bg196678/IS-Pareto/solvation"
)

// table is a temperature-indexed spreadsheet: one temperature column
// and one value column per named series, linearly interpolated with
// clamped extrapolation.
type table struct {
	series map[string]solvation.Curve
}

// readTable parses the first sheet of an xlsx workbook. The first
// row is the header; the temperature column is the one whose header
// starts with "Temperature".
func readTable(path string) (*table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, ispareto.WrapDataError(err, "system: table %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, ispareto.DataErrorf("system: table %s has no sheets", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) < 2 {
		return nil, ispareto.DataErrorf("system: table %s has no data rows", path)
	}

	header := sheet.Rows[0]
	tempCol := -1
	names := make(map[int]string)
	for i, cell := range header.Cells {
		name := strings.TrimSpace(cell.String())
		if name == "" {
			continue
		}
		if strings.HasPrefix(name, "Temperature") {
			tempCol = i
			continue
		}
		names[i] = name
	}
	if tempCol < 0 {
		return nil, ispareto.DataErrorf("system: table %s has no Temperature column", path)
	}

	t := &table{series: make(map[string]solvation.Curve)}
	for rowNo, row := range sheet.Rows[1:] {
		if len(row.Cells) <= tempCol {
			continue
		}
		T, err := row.Cells[tempCol].Float()
		if err != nil {
			return nil, ispareto.DataErrorf("system: table %s row %d: bad temperature %q",
				path, rowNo+2, row.Cells[tempCol].String())
		}
		for col, name := range names {
			if len(row.Cells) <= col {
				continue
			}
			v, err := row.Cells[col].Float()
			if err != nil {
				return nil, ispareto.DataErrorf("system: table %s row %d column %q: bad value %q",
					path, rowNo+2, name, row.Cells[col].String())
			}
			t.series[name] = append(t.series[name], solvation.Point{Temperature: T, Gsolv: v})
		}
	}
	for name, curve := range t.series {
		sort.Slice(curve, func(i, j int) bool {
			return curve[i].Temperature < curve[j].Temperature
		})
		t.series[name] = curve
	}
	return t, nil
}

// TableKinetics is a RateModel backed by a temperature-indexed
// spreadsheet with one gas-phase rate-constant column per transition
// state, the parametrization used by the tabulated reference systems.
type TableKinetics struct {
	list   *ispareto.ReactionList
	curves map[*ispareto.Reaction]solvation.Curve
}

// NewTableKinetics validates the reaction list and resolves each
// reaction's rate-constant column (named after its transition state)
// in the workbook at path.
func NewTableKinetics(reactions []*ispareto.Reaction, path string) (*TableKinetics, error) {
	list, err := ispareto.NewReactionList(reactions)
	if err != nil {
		return nil, err
	}
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	k := &TableKinetics{
		list:   list,
		curves: make(map[*ispareto.Reaction]solvation.Curve, list.Len()),
	}
	for _, rxn := range list.Reactions() {
		curve, ok := t.series[rxn.TransitionState.Name]
		if !ok {
			return nil, ispareto.DataErrorf("system: table %s has no column for transition state %q (reaction %q)",
				path, rxn.TransitionState.Name, rxn.Name)
		}
		k.curves[rxn] = curve
	}
	return k, nil
}

// K returns the tabulated gas-phase rate constant of r at
// temperature [K].
func (k *TableKinetics) K(r *ispareto.Reaction, temperature float64) (float64, error) {
	curve, ok := k.curves[r]
	if !ok {
		return 0, ispareto.LookupErrorf("system: no tabulated rate constants for reaction %q", r.Name)
	}
	return solvation.Interpolate(curve, temperature), nil
}

// NewTableSolvation builds a Solvation model whose Gsolv curves come
// from a temperature-indexed spreadsheet with one column per species
// instead of per-species COSMOtherm files.
func NewTableSolvation(reactions []*ispareto.Reaction, path string) (*solvation.Solvation, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	loader := func(sp *ispareto.Species) (solvation.Curve, error) {
		curve, ok := t.series[sp.Name]
		if !ok {
			return nil, ispareto.DataErrorf("system: table %s has no Gsolv column for species %q", path, sp.Name)
		}
		return curve, nil
	}
	return solvation.New(reactions, solvation.Options{Loader: loader})
}
