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
	"math"
	"strings"
	"testing"
)

// diatomicRecord builds the record of a diatomic molecule on the z
// axis with a single bond force constant f [hartree/bohr²]. A
// negative f makes the stretch the imaginary mode of a saddle point.
func diatomicRecord(f, mass1, mass2, energy float64) *Record {
	// Lower-triangular 6×6 Hessian; only the z-z block is nonzero.
	fc := make([]float64, 21)
	fc[5] = f   // (z1, z1)
	fc[17] = -f // (z2, z1)
	fc[20] = f  // (z2, z2)
	return &Record{
		AtomicNumbers:  []int{1, 1},
		Masses:         []float64{mass1, mass2},
		Coordinates:    []float64{0, 0, 0, 0, 0, 1.4},
		ForceConstants: fc,
		Energy:         energy,
	}
}

// The H2 stretch with f = 0.37 hartree/bohr² sits near 4400 cm⁻¹.
func TestAnalyzeDiatomicFrequency(t *testing.T) {
	const (
		testTolerance  = 1.e-2
		wantWavenumber = 4405.0 // cm⁻¹
		lightSpeed     = 2.99792458e10
	)
	rec := diatomicRecord(0.37, 1.00783, 1.00783, 0)
	va, err := analyze(rec, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if va.nImaginary != 0 {
		t.Errorf("minimum has %d imaginary modes, want 0", va.nImaginary)
	}
	if !va.linear {
		t.Error("diatomic not detected as linear")
	}
	if n := len(va.frequencies); n != 1 {
		t.Fatalf("diatomic has %d modes, want 1", n)
	}
	wavenumber := va.frequencies[0] / (2 * math.Pi * lightSpeed)
	if math.Abs(wavenumber-wantWavenumber) > testTolerance*wantWavenumber {
		t.Errorf("stretch = %g cm⁻¹, want %g", wavenumber, wantWavenumber)
	}
	if want := 0.5 * hbar * va.frequencies[0]; math.Abs(va.zpe()-want) > 1e-25 {
		t.Errorf("zpe = %g J, want %g", va.zpe(), want)
	}
}

func TestAnalyzeSaddlePoint(t *testing.T) {
	rec := diatomicRecord(-0.01, 1.00783, 1.00783, 0)
	va, err := analyze(rec, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if va.nImaginary != 1 {
		t.Fatalf("saddle point has %d imaginary modes, want 1", va.nImaginary)
	}
	if va.imaginary <= 0 {
		t.Errorf("imaginary frequency = %g, want positive magnitude", va.imaginary)
	}
	if len(va.frequencies) != 0 {
		t.Errorf("saddle point diatomic has %d real modes, want 0", len(va.frequencies))
	}
	if va.zpe() != 0 {
		t.Errorf("zpe = %g, want 0 (imaginary mode carries no ZPE)", va.zpe())
	}
}

func TestAnalyzeGradientThreshold(t *testing.T) {
	rec := diatomicRecord(0.37, 1.00783, 1.00783, 0)
	rec.Gradient = []float64{0, 0, 5e-3, 0, 0, -5e-3}

	if _, err := analyze(rec, DefaultGradientThreshold); err == nil {
		t.Error("expected a stationarity error at the default threshold")
	} else if !strings.Contains(err.Error(), "not stationary") {
		t.Errorf("unexpected error: %v", err)
	}
	// A looser threshold accepts the same geometry.
	if _, err := analyze(rec, 1e-2); err != nil {
		t.Errorf("loose threshold: %v", err)
	}
}

func TestAnalyzeSingleAtom(t *testing.T) {
	rec := &Record{
		AtomicNumbers: []int{18},
		Masses:        []float64{39.948},
		Coordinates:   []float64{0, 0, 0},
	}
	va, err := analyze(rec, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if len(va.frequencies) != 0 || va.nImaginary != 0 {
		t.Errorf("atom has modes: %v (imaginary %d)", va.frequencies, va.nImaginary)
	}
}

// The stretch frequency must not depend on molecular orientation; the
// external-mode projection has to absorb rotations about any axis.
func TestAnalyzeOrientationInvariance(t *testing.T) {
	const testTolerance = 1.e-6

	zAxis := diatomicRecord(0.37, 1.00783, 18.9984, 0)
	va1, err := analyze(zAxis, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}

	// The same molecule along x: permute coordinates and Hessian
	// entries accordingly.
	fc := make([]float64, 21)
	fc[0] = 0.37  // (x1, x1)
	fc[6] = -0.37 // (x2, x1)
	fc[9] = 0.37  // (x2, x2)
	xAxis := &Record{
		AtomicNumbers:  []int{1, 9},
		Masses:         []float64{1.00783, 18.9984},
		Coordinates:    []float64{0, 0, 0, 1.4, 0, 0},
		ForceConstants: fc,
	}
	va2, err := analyze(xAxis, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if len(va1.frequencies) != 1 || len(va2.frequencies) != 1 {
		t.Fatalf("mode counts: %d, %d, want 1 each", len(va1.frequencies), len(va2.frequencies))
	}
	if w1, w2 := va1.frequencies[0], va2.frequencies[0]; math.Abs(w1-w2) > testTolerance*w1 {
		t.Errorf("frequencies differ with orientation: %g vs %g", w1, w2)
	}
}
