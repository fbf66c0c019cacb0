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
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	ispareto "github.com/bg196678/IS-Pareto"
)

func TestLoadTab(t *testing.T) {
	const testTolerance = 1.e-12
	sp := ispareto.NewSpecies("substrate", 0.1, "", filepath.Join("testdata", "substrate.tab"))
	curve, err := LoadTab(sp)
	if err != nil {
		t.Fatal(err)
	}
	if len(curve) != 4 {
		t.Fatalf("curve has %d points, want 4 (headers and comments skipped)", len(curve))
	}
	if math.Abs(curve[0].Temperature-273.15) > testTolerance {
		t.Errorf("first temperature = %g K, want 273.15", curve[0].Temperature)
	}
	// Gsolv is the last column, not the enthalpy before it.
	if math.Abs(curve[1].Gsolv-(-6.0)) > testTolerance {
		t.Errorf("Gsolv(298.15 K) = %g, want -6.0", curve[1].Gsolv)
	}
}

func TestLoadTabErrors(t *testing.T) {
	var dataErr *ispareto.DataError

	// No table configured.
	sp := ispareto.NewSpecies("A", 0.1, "", "")
	if _, err := LoadTab(sp); !errors.As(err, &dataErr) {
		t.Errorf("no file: error is %T (%v), want *DataError", err, err)
	}

	// Missing file.
	sp = ispareto.NewSpecies("A", 0.1, "", filepath.Join("testdata", "nope.tab"))
	if _, err := LoadTab(sp); !errors.As(err, &dataErr) {
		t.Errorf("missing file: error is %T (%v), want *DataError", err, err)
	}

	// Header-only file.
	sp = ispareto.NewSpecies("A", 0.1, "", filepath.Join("testdata", "empty.tab"))
	if _, err := LoadTab(sp); !errors.As(err, &dataErr) {
		t.Errorf("empty table: error is %T (%v), want *DataError", err, err)
	}

	// A data row with a corrupt Gsolv value.
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.tab")
	content := "T[K] Gsolv[kcal/mol]\n298.15 -6.0\n310.00 n/a\n"
	if err := os.WriteFile(bad, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	sp = ispareto.NewSpecies("A", 0.1, "", bad)
	if _, err := LoadTab(sp); !errors.As(err, &dataErr) {
		t.Errorf("bad value: error is %T (%v), want *DataError", err, err)
	}
}
