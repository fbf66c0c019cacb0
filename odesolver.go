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

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// kineticSystem is the mass-action ODE system of one simulation:
// dC_i/dt = Σ_j stoich[j][i] · k_j · Π_{reactants r of j} C_r.
// Each reaction is elementary, with order equal to its reactant
// count. The system is assembled once per Simulate call from the
// reaction list's canonical species indices.
type kineticSystem struct {
	n         int
	k         []float64 // effective rate constant per reaction
	stoich    [][]int   // per reaction: species indices
	coeff     [][]int   // per reaction: signed coefficients, parallel to stoich
	reactants [][]int // per reaction: reactant species indices
}

func newKineticSystem(list *ReactionList, keff []float64) *kineticSystem {
	sys := &kineticSystem{
		n:         len(list.Species()),
		k:         keff,
		stoich:    make([][]int, list.Len()),
		coeff:     make([][]int, list.Len()),
		reactants: make([][]int, list.Len()),
	}
	for j, rxn := range list.Reactions() {
		for _, t := range rxn.Terms() {
			i, _ := list.Index(t.Species)
			sys.stoich[j] = append(sys.stoich[j], i)
			sys.coeff[j] = append(sys.coeff[j], t.Coefficient)
		}
		for _, sp := range rxn.Reactants() {
			i, _ := list.Index(sp)
			sys.reactants[j] = append(sys.reactants[j], i)
		}
	}
	return sys
}

// rate evaluates reaction j's mass-action rate at state c.
func (s *kineticSystem) rate(j int, c []float64) float64 {
	rate := s.k[j]
	for _, i := range s.reactants[j] {
		rate *= c[i]
	}
	return rate
}

// rhs evaluates dC/dt at state c into out.
func (s *kineticSystem) rhs(c, out []float64) {
	for i := range out {
		out[i] = 0
	}
	for j := range s.k {
		rate := s.rate(j, c)
		for idx, i := range s.stoich[j] {
			out[i] += float64(s.coeff[j][idx]) * rate
		}
	}
}

// jacobian evaluates ∂(dC/dt)/∂C at state c into jac.
func (s *kineticSystem) jacobian(c []float64, jac *mat.Dense) {
	jac.Zero()
	for j := range s.k {
		for _, m := range s.reactants[j] {
			// ∂rate_j/∂C_m: the rate with C_m factored out.
			d := s.k[j]
			for _, i := range s.reactants[j] {
				if i == m {
					continue
				}
				d *= c[i]
			}
			for idx, i := range s.stoich[j] {
				jac.Set(i, m, jac.At(i, m)+float64(s.coeff[j][idx])*d)
			}
		}
	}
}

// integrate advances the system from c0 at t=0 to tEnd using backward
// Euler on opt.Steps uniform steps, solving the implicit step
// equation with Newton iteration, clamping concentrations
// non-negative after every update. Non-convergence or a non-finite
// state fails with a SimulationError carrying the step and time.
func (s *kineticSystem) integrate(c0 []float64, tEnd float64, opt SolverOptions) ([]float64, error) {
	if opt.Steps <= 0 {
		opt.Steps = DefaultSolverOptions.Steps
	}
	if opt.Tolerance <= 0 {
		opt.Tolerance = DefaultSolverOptions.Tolerance
	}
	if opt.MaxIter <= 0 {
		opt.MaxIter = DefaultSolverOptions.MaxIter
	}
	h := tEnd / float64(opt.Steps)

	c := make([]float64, s.n)
	copy(c, c0)
	x := make([]float64, s.n)
	f := make([]float64, s.n)
	resid := mat.NewVecDense(s.n, nil)
	delta := mat.NewVecDense(s.n, nil)
	jac := mat.NewDense(s.n, s.n, nil)
	a := mat.NewDense(s.n, s.n, nil)
	var lu mat.LU

	for step := 1; step <= opt.Steps; step++ {
		t := float64(step) * h
		copy(x, c) // previous state as initial guess

		converged := false
		for iter := 0; iter < opt.MaxIter; iter++ {
			// Residual F(x) = x - c - h·f(x).
			s.rhs(x, f)
			for i := range x {
				resid.SetVec(i, x[i]-c[i]-h*f[i])
			}
			scale := 1 + floats.Max(absSlice(x))
			if vecMaxAbs(resid) <= opt.Tolerance*scale {
				converged = true
				break
			}

			// Newton step: (I - h·J) δ = -F.
			s.jacobian(x, jac)
			for i := 0; i < s.n; i++ {
				for m := 0; m < s.n; m++ {
					v := -h * jac.At(i, m)
					if i == m {
						v++
					}
					a.Set(i, m, v)
				}
			}
			resid.ScaleVec(-1, resid)
			lu.Factorize(a)
			if err := lu.SolveVecTo(delta, false, resid); err != nil {
				return nil, &SimulationError{
					Step: step, Time: t,
					msg: "ispareto: singular Newton system in implicit step",
				}
			}
			for i := range x {
				x[i] += delta.AtVec(i)
				if x[i] < 0 {
					x[i] = 0
				}
				if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
					return nil, &SimulationError{
						Step: step, Time: t,
						msg: "ispareto: non-finite concentration during integration",
					}
				}
			}
		}
		if !converged {
			return nil, &SimulationError{
				Step: step, Time: t,
				msg: "ispareto: implicit step failed to converge",
			}
		}
		copy(c, x)
	}
	return c, nil
}

func absSlice(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v)
	}
	return out
}

func vecMaxAbs(v *mat.VecDense) float64 {
	max := 0.0
	for i := 0; i < v.Len(); i++ {
		if a := math.Abs(v.AtVec(i)); a > max {
			max = a
		}
	}
	return max
}
