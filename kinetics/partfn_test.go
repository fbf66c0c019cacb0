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
	"errors"
	"math"
	"testing"

	ispareto "github.com/bg196678/IS-Pareto"
)

// Argon at 298.15 K has a translational partition function per volume
// of 2.44e32 m⁻³, a textbook value.
func TestPartitionFunctionMonatomic(t *testing.T) {
	const (
		testTolerance = 1.e-2
		want          = 2.443e32
	)
	rec := &Record{
		AtomicNumbers: []int{18},
		Masses:        []float64{39.948},
		Coordinates:   []float64{0, 0, 0},
		Energy:        0,
	}
	sp := ispareto.NewSpecies("Ar", 39.948e-3, "", "")
	q, err := newPartitionFunction(sp, rec, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if !q.monatomic {
		t.Error("argon not detected as monatomic")
	}
	got := q.eval(298.15)
	if math.Abs(got-want) > testTolerance*want {
		t.Errorf("q/V = %g m⁻³, want %g", got, want)
	}
}

func TestPartitionFunctionDiatomic(t *testing.T) {
	rec := diatomicRecord(0.37, 1.00783, 1.00783, 0)
	sp := ispareto.NewSpecies("H2", 2.016e-3, "", "")
	q, err := newPartitionFunction(sp, rec, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if q.monatomic || !q.linear {
		t.Errorf("H2 classified monatomic=%v linear=%v, want false, true", q.monatomic, q.linear)
	}

	// Stiff high-frequency modes barely populate at room
	// temperature, so the vibrational factor stays near 1 and
	// grows with T.
	v300 := q.vibrational(300)
	v1500 := q.vibrational(1500)
	if v300 < 1 || v300 > 1.01 {
		t.Errorf("vibrational(300 K) = %g, want just above 1", v300)
	}
	if v1500 <= v300 {
		t.Errorf("vibrational factor not increasing: %g at 300 K, %g at 1500 K", v300, v1500)
	}

	// Rigid-rotor and translational parts grow as T and T^1.5.
	const testTolerance = 1.e-6
	if got, want := q.rotational(600)/q.rotational(300), 2.0; math.Abs(got-want) > testTolerance {
		t.Errorf("linear rotor scaling = %g, want %g", got, want)
	}
	if got, want := q.translational(600)/q.translational(300), math.Pow(2, 1.5); math.Abs(got-want) > testTolerance {
		t.Errorf("translational scaling = %g, want %g", got, want)
	}
}

func TestPartitionFunctionImaginaryModeCount(t *testing.T) {
	minimum := diatomicRecord(0.37, 1.00783, 1.00783, 0)
	saddle := diatomicRecord(-0.01, 1.00783, 1.00783, 0)

	var dataErr *ispareto.DataError

	// A transition state must have exactly one imaginary mode.
	ts := ispareto.NewTransitionState("TS", "", "")
	if _, err := newPartitionFunction(ts, minimum, DefaultGradientThreshold); !errors.As(err, &dataErr) {
		t.Errorf("transition state without imaginary mode: error is %T (%v), want *DataError", err, err)
	}
	if _, err := newPartitionFunction(ts, saddle, DefaultGradientThreshold); err != nil {
		t.Errorf("valid transition state rejected: %v", err)
	}

	// A minimum must have none.
	sp := ispareto.NewSpecies("A", 2.016e-3, "", "")
	if _, err := newPartitionFunction(sp, saddle, DefaultGradientThreshold); !errors.As(err, &dataErr) {
		t.Errorf("minimum with imaginary mode: error is %T (%v), want *DataError", err, err)
	}
	if _, err := newPartitionFunction(sp, minimum, DefaultGradientThreshold); err != nil {
		t.Errorf("valid minimum rejected: %v", err)
	}
}

// The species-level energy override replaces the record's electronic
// energy while keeping the ZPE from the frequency analysis.
func TestPartitionFunctionEnergyOverride(t *testing.T) {
	const testTolerance = 1.e-12
	rec := diatomicRecord(0.37, 1.00783, 1.00783, -1.0)

	plain := ispareto.NewSpecies("A", 2.016e-3, "", "")
	qPlain, err := newPartitionFunction(plain, rec, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}

	override := ispareto.NewSpecies("A", 2.016e-3, "", "")
	override.Energy = -1.1
	qOverride, err := newPartitionFunction(override, rec, DefaultGradientThreshold)
	if err != nil {
		t.Fatal(err)
	}

	shift := qPlain.groundEnergy() - qOverride.groundEnergy()
	if want := 0.1 * hartree; math.Abs(shift-want) > testTolerance*want {
		t.Errorf("energy override shift = %g J, want %g", shift, want)
	}
}
