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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	ispareto "github.com/bg196678/IS-Pareto"
)

// Section names in Gaussian formatted checkpoint files.
const (
	fchkAtomicNumbers  = "Atomic numbers"
	fchkWeights        = "Real atomic weights"
	fchkCoordinates    = "Current cartesian coordinates"
	fchkGradient       = "Cartesian Gradient"
	fchkForceConstants = "Cartesian Force Constants"
	fchkTotalEnergy    = "Total Energy"
)

// LoadFchk is the default Loader: it parses the species' Gaussian
// formatted checkpoint file. A missing file or a file lacking the
// geometry, mass, or force-constant sections is a DataError.
func LoadFchk(sp *ispareto.Species) (*Record, error) {
	if sp.FchkFile == "" {
		return nil, ispareto.DataErrorf("kinetics: species %q has no geometry/frequency file", sp.Name)
	}
	f, err := os.Open(sp.FchkFile)
	if err != nil {
		return nil, ispareto.WrapDataError(err, "kinetics: species %q", sp.Name)
	}
	defer f.Close()

	rec, err := parseFchk(f)
	if err != nil {
		return nil, ispareto.WrapDataError(err, "kinetics: species %q: %s", sp.Name, sp.FchkFile)
	}
	return rec, nil
}

// parseFchk reads the sections of a formatted checkpoint file that
// the partition-function pipeline needs, skipping everything else.
func parseFchk(f *os.File) (*Record, error) {
	rec := new(Record)
	haveWeights := false
	haveCoords := false
	haveForce := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		name, isArray, count, scalar, ok := parseFchkHeader(line)
		if !ok {
			continue
		}
		if !isArray {
			if name == fchkTotalEnergy {
				v, err := strconv.ParseFloat(scalar, 64)
				if err != nil {
					return nil, fchkErrorf("bad Total Energy value %q", scalar)
				}
				rec.Energy = v
			}
			continue
		}
		switch name {
		case fchkAtomicNumbers:
			vals, err := readFchkValues(scanner, count)
			if err != nil {
				return nil, err
			}
			rec.AtomicNumbers = make([]int, count)
			for i, v := range vals {
				rec.AtomicNumbers[i] = int(v)
			}
		case fchkWeights:
			vals, err := readFchkValues(scanner, count)
			if err != nil {
				return nil, err
			}
			rec.Masses = vals
			haveWeights = true
		case fchkCoordinates:
			vals, err := readFchkValues(scanner, count)
			if err != nil {
				return nil, err
			}
			rec.Coordinates = vals
			haveCoords = true
		case fchkGradient:
			vals, err := readFchkValues(scanner, count)
			if err != nil {
				return nil, err
			}
			rec.Gradient = vals
		case fchkForceConstants:
			vals, err := readFchkValues(scanner, count)
			if err != nil {
				return nil, err
			}
			rec.ForceConstants = vals
			haveForce = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveWeights || !haveCoords || !haveForce {
		return nil, fchkErrorf("missing required sections (weights %v, coordinates %v, force constants %v)",
			haveWeights, haveCoords, haveForce)
	}
	n := len(rec.Masses)
	if len(rec.Coordinates) != 3*n {
		return nil, fchkErrorf("coordinate count %d does not match %d atoms", len(rec.Coordinates), n)
	}
	if want := 3 * n * (3*n + 1) / 2; len(rec.ForceConstants) != want {
		return nil, fchkErrorf("force constant count %d does not match %d atoms (want %d)",
			len(rec.ForceConstants), n, want)
	}
	if rec.Gradient != nil && len(rec.Gradient) != 3*n {
		return nil, fchkErrorf("gradient count %d does not match %d atoms", len(rec.Gradient), n)
	}
	return rec, nil
}

// parseFchkHeader decodes a section header line. Array headers look
// like "Name  R  N=  36"; scalar headers like "Name  R  -1.2E+01".
func parseFchkHeader(line string) (name string, isArray bool, count int, scalar string, ok bool) {
	if len(line) < 43 {
		return "", false, 0, "", false
	}
	name = strings.TrimSpace(line[:40])
	rest := strings.Fields(line[40:])
	if name == "" || len(rest) < 2 {
		return "", false, 0, "", false
	}
	if rest[0] != "I" && rest[0] != "R" {
		return "", false, 0, "", false
	}
	if rest[1] == "N=" && len(rest) >= 3 {
		c, err := strconv.Atoi(rest[2])
		if err != nil {
			return "", false, 0, "", false
		}
		return name, true, c, "", true
	}
	return name, false, 0, rest[1], true
}

// readFchkValues reads count whitespace-separated numbers from the
// lines following an array header.
func readFchkValues(scanner *bufio.Scanner, count int) ([]float64, error) {
	vals := make([]float64, 0, count)
	for len(vals) < count {
		if !scanner.Scan() {
			return nil, fchkErrorf("unexpected end of file reading array (%d of %d values)", len(vals), count)
		}
		for _, field := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fchkErrorf("bad array value %q", field)
			}
			vals = append(vals, v)
		}
	}
	if len(vals) != count {
		return nil, fchkErrorf("array has %d values, expected %d", len(vals), count)
	}
	return vals, nil
}

func fchkErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("fchk: "+format, args...)
}
