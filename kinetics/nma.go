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
	"sort"

	"gonum.org/v1/gonum/mat"
)

// vibrationalAnalysis is the outcome of a normal-mode analysis with
// external translations and rotations projected out.
type vibrationalAnalysis struct {
	// frequencies are the angular frequencies [1/s] of the real
	// modes, ascending.
	frequencies []float64

	// imaginary is the magnitude [1/s] of the single imaginary
	// mode, zero if none.
	imaginary float64

	// nImaginary counts modes with negative curvature.
	nImaginary int

	linear bool
}

// zpe returns the zero-point vibrational energy [J].
func (v *vibrationalAnalysis) zpe() float64 {
	var z float64
	for _, w := range v.frequencies {
		z += 0.5 * hbar * w
	}
	return z
}

// analyze performs the normal-mode analysis for rec: checks
// stationarity against gradientThreshold [hartree/bohr], builds the
// mass-weighted Cartesian Hessian, projects out the external degrees
// of freedom, and diagonalizes the remainder.
func analyze(rec *Record, gradientThreshold float64) (*vibrationalAnalysis, error) {
	n := rec.Atoms()
	if n == 0 {
		return nil, fchkErrorf("record has no atoms")
	}
	if rec.Gradient != nil {
		gMax := 0.0
		for _, g := range rec.Gradient {
			if a := math.Abs(g); a > gMax {
				gMax = a
			}
		}
		if gMax > gradientThreshold {
			return nil, fchkErrorf("geometry is not stationary: max gradient %.3e exceeds threshold %.3e hartree/bohr",
				gMax, gradientThreshold)
		}
	}
	if n == 1 {
		return &vibrationalAnalysis{}, nil // atoms have no internal modes
	}

	dim := 3 * n
	masses := make([]float64, n)
	for i, m := range rec.Masses {
		masses[i] = m * amu
	}

	// Mass-weighted Hessian in SI units.
	hmw := mat.NewSymDense(dim, nil)
	idx := 0
	for i := 0; i < dim; i++ {
		for j := 0; j <= i; j++ {
			v := rec.ForceConstants[idx] * hessianUnit
			idx++
			v /= math.Sqrt(masses[i/3] * masses[j/3])
			hmw.SetSym(i, j, v)
		}
	}

	ext := externalModes(rec, masses)

	// P = I − Σ v·vᵀ, then P·H·P.
	p := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		p.Set(i, i, 1)
	}
	for _, v := range ext {
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				p.Set(i, j, p.At(i, j)-v[i]*v[j])
			}
		}
	}
	var ph, php mat.Dense
	ph.Mul(p, hmw)
	php.Mul(&ph, p)

	// Symmetrize against round-off before diagonalizing.
	sym := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j <= i; j++ {
			sym.SetSym(i, j, 0.5*(php.At(i, j)+php.At(j, i)))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, fchkErrorf("eigendecomposition of the projected Hessian failed")
	}
	vals := eig.Values(nil)

	// The projected external modes sit at (numerically) zero; drop
	// the len(ext) eigenvalues closest to zero and interpret the
	// rest.
	type mode struct{ lambda, abs float64 }
	modes := make([]mode, len(vals))
	for i, l := range vals {
		modes[i] = mode{lambda: l, abs: math.Abs(l)}
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i].abs < modes[j].abs })
	modes = modes[len(ext):]

	va := &vibrationalAnalysis{linear: len(ext) == 5}
	for _, m := range modes {
		if m.lambda < 0 {
			va.nImaginary++
			w := math.Sqrt(-m.lambda)
			if w > va.imaginary {
				va.imaginary = w
			}
			continue
		}
		va.frequencies = append(va.frequencies, math.Sqrt(m.lambda))
	}
	sort.Float64s(va.frequencies)
	return va, nil
}

// externalModes builds an orthonormal basis for the translational and
// rotational degrees of freedom in mass-weighted coordinates: 3
// translations plus 3 rotations (2 for linear molecules).
func externalModes(rec *Record, masses []float64) [][]float64 {
	n := len(masses)
	dim := 3 * n

	// Center of mass [m].
	var com [3]float64
	var mTot float64
	for i := 0; i < n; i++ {
		mTot += masses[i]
		for a := 0; a < 3; a++ {
			com[a] += masses[i] * rec.Coordinates[3*i+a] * bohr
		}
	}
	for a := 0; a < 3; a++ {
		com[a] /= mTot
	}

	var basis [][]float64
	add := func(v []float64) {
		var norm0 float64
		for _, x := range v {
			norm0 += x * x
		}
		norm0 = math.Sqrt(norm0)
		if norm0 == 0 {
			return
		}
		// Gram-Schmidt against the accepted vectors.
		for _, u := range basis {
			var dot float64
			for i := range v {
				dot += u[i] * v[i]
			}
			for i := range v {
				v[i] -= dot * u[i]
			}
		}
		var norm float64
		for _, x := range v {
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm < 1e-6*norm0 {
			return // degenerate direction (linear molecule)
		}
		for i := range v {
			v[i] /= norm
		}
		basis = append(basis, v)
	}

	for a := 0; a < 3; a++ { // translations
		v := make([]float64, dim)
		for i := 0; i < n; i++ {
			v[3*i+a] = math.Sqrt(masses[i])
		}
		add(v)
	}
	for a := 0; a < 3; a++ { // rotations: √m · (e_a × (r − com))
		v := make([]float64, dim)
		for i := 0; i < n; i++ {
			var r [3]float64
			for b := 0; b < 3; b++ {
				r[b] = rec.Coordinates[3*i+b]*bohr - com[b]
			}
			cross := crossAxis(a, r)
			sm := math.Sqrt(masses[i])
			for b := 0; b < 3; b++ {
				v[3*i+b] = sm * cross[b]
			}
		}
		add(v)
	}
	return basis
}

// crossAxis returns e_a × r for unit axis a.
func crossAxis(a int, r [3]float64) [3]float64 {
	switch a {
	case 0:
		return [3]float64{0, -r[2], r[1]}
	case 1:
		return [3]float64{r[2], 0, -r[0]}
	default:
		return [3]float64{-r[1], r[0], 0}
	}
}
