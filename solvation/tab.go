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

package solvation

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	ispareto "github.com/bg196678/IS-Pareto"
)

// LoadTab is the default CurveLoader: it parses the species'
// COSMOtherm table file. Header and comment lines are skipped; data
// lines carry the temperature [K] in the first column and Gsolv
// [kcal/mol] in the last.
func LoadTab(sp *ispareto.Species) (Curve, error) {
	if sp.TabFile == "" {
		return nil, ispareto.DataErrorf("solvation: species %q has no solvation table file", sp.Name)
	}
	f, err := os.Open(sp.TabFile)
	if err != nil {
		return nil, ispareto.WrapDataError(err, "solvation: species %q", sp.Name)
	}
	defer f.Close()

	var curve Curve
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		T, errT := strconv.ParseFloat(fields[0], 64)
		if errT != nil {
			continue // header line
		}
		g, errG := strconv.ParseFloat(fields[len(fields)-1], 64)
		if errG != nil {
			return nil, ispareto.DataErrorf("solvation: species %q: %s:%d: bad Gsolv value %q",
				sp.Name, sp.TabFile, lineNo, fields[len(fields)-1])
		}
		curve = append(curve, Point{Temperature: T, Gsolv: g})
	}
	if err := scanner.Err(); err != nil {
		return nil, ispareto.WrapDataError(err, "solvation: species %q: %s", sp.Name, sp.TabFile)
	}
	if len(curve) == 0 {
		return nil, ispareto.DataErrorf("solvation: species %q: %s contains no data rows", sp.Name, sp.TabFile)
	}
	return curve, nil
}
