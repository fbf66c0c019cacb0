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

	ispareto "github.com/bg196678/IS-Pareto"
	"gonum.org/v1/gonum/mat"
)

// partitionFunction evaluates the molecular partition function per
// unit volume for one species: translational × rotational ×
// harmonic-vibrational contributions. The vibrational part excludes
// zero-point energy; ZPE enters the rate constant through the barrier
// height instead.
type partitionFunction struct {
	name      string
	totalMass float64   // kg
	inertia   [3]float64 // principal moments [kg·m²], ascending
	monatomic bool
	linear    bool

	vib *vibrationalAnalysis

	// energy is the electronic energy [J], including any species
	// override, plus ZPE.
	energy float64
}

// newPartitionFunction builds the partition function for sp from its
// frequency record. Transition states must show exactly one imaginary
// mode; any other species must show none.
func newPartitionFunction(sp *ispareto.Species, rec *Record, gradientThreshold float64) (*partitionFunction, error) {
	va, err := analyze(rec, gradientThreshold)
	if err != nil {
		return nil, ispareto.WrapDataError(err, "kinetics: species %q", sp.Name)
	}
	if sp.IsTransitionState() {
		if va.nImaginary != 1 {
			return nil, ispareto.DataErrorf("kinetics: transition state %q has %d imaginary modes, want exactly 1",
				sp.Name, va.nImaginary)
		}
	} else if va.nImaginary != 0 {
		return nil, ispareto.DataErrorf("kinetics: species %q has %d imaginary modes, want 0 (not a minimum)",
			sp.Name, va.nImaginary)
	}

	q := &partitionFunction{
		name:      sp.Name,
		monatomic: rec.Atoms() == 1,
		linear:    va.linear,
		vib:       va,
	}
	for _, m := range rec.Masses {
		q.totalMass += m * amu
	}
	if !q.monatomic {
		q.inertia = principalMoments(rec)
	}

	e := rec.Energy
	if sp.HasEnergy() {
		e = sp.Energy // high-fidelity single-point override
	}
	q.energy = e*hartree + va.zpe()
	return q, nil
}

// groundEnergy returns the electronic energy plus ZPE [J].
func (q *partitionFunction) groundEnergy() float64 { return q.energy }

// imaginaryFrequency returns the angular frequency magnitude [1/s] of
// the imaginary mode, zero for minima.
func (q *partitionFunction) imaginaryFrequency() float64 { return q.vib.imaginary }

// eval returns the partition function per unit volume [1/m³] at
// temperature T [K].
func (q *partitionFunction) eval(T float64) float64 {
	return q.translational(T) * q.rotational(T) * q.vibrational(T)
}

// translational returns q_trans/V = (2πMkT/h²)^(3/2) [1/m³].
func (q *partitionFunction) translational(T float64) float64 {
	return math.Pow(2*math.Pi*q.totalMass*boltzmann*T/(planck*planck), 1.5)
}

// rotational returns the classical rigid-rotor partition function
// with symmetry number 1.
func (q *partitionFunction) rotational(T float64) float64 {
	if q.monatomic {
		return 1
	}
	if q.linear {
		i := q.inertia[2] // the two nonzero moments are equal
		return 8 * math.Pi * math.Pi * i * boltzmann * T / (planck * planck)
	}
	b := 8 * math.Pi * math.Pi * boltzmann * T / (planck * planck)
	return math.Sqrt(math.Pi) * math.Sqrt(b*b*b*q.inertia[0]*q.inertia[1]*q.inertia[2])
}

// vibrational returns the harmonic oscillator product
// Π 1/(1−exp(−ħω/kT)), ZPE-exclusive.
func (q *partitionFunction) vibrational(T float64) float64 {
	out := 1.0
	for _, w := range q.vib.frequencies {
		out /= 1 - math.Exp(-hbar*w/(boltzmann*T))
	}
	return out
}

// principalMoments returns the eigenvalues of the inertia tensor
// [kg·m²] in ascending order.
func principalMoments(rec *Record) [3]float64 {
	n := rec.Atoms()
	masses := make([]float64, n)
	var mTot float64
	for i, m := range rec.Masses {
		masses[i] = m * amu
		mTot += masses[i]
	}
	var com [3]float64
	for i := 0; i < n; i++ {
		for a := 0; a < 3; a++ {
			com[a] += masses[i] * rec.Coordinates[3*i+a] * bohr
		}
	}
	for a := 0; a < 3; a++ {
		com[a] /= mTot
	}

	tensor := mat.NewSymDense(3, nil)
	for i := 0; i < n; i++ {
		var r [3]float64
		for a := 0; a < 3; a++ {
			r[a] = rec.Coordinates[3*i+a]*bohr - com[a]
		}
		r2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
		for a := 0; a < 3; a++ {
			for b := a; b < 3; b++ {
				v := tensor.At(a, b) - masses[i]*r[a]*r[b]
				if a == b {
					v += masses[i] * r2
				}
				tensor.SetSym(a, b, v)
			}
		}
	}
	var eig mat.EigenSym
	eig.Factorize(tensor, false)
	vals := eig.Values(nil)
	return [3]float64{vals[0], vals[1], vals[2]}
}
