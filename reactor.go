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

import "math"

// RateModel computes per-reaction gas-phase rate constants as a
// function of absolute temperature [K], in SI units (1/s for
// unimolecular, m³/mol/s for bimolecular reactions).
type RateModel interface {
	K(r *Reaction, temperature float64) (float64, error)
}

// SolvationModel computes the multiplicative solvent correction
// factor applied to the gas-phase rate constant of a reaction at an
// absolute temperature [K].
type SolvationModel interface {
	CorrectionFactor(r *Reaction, temperature float64) (float64, error)
}

// Dumper exports diagnostic curves over a temperature sweep as CSV
// files in a directory. RateModel and SolvationModel implementations
// may provide it for reporting; it is not needed for simulation.
type Dumper interface {
	Dump(dir string) error
}

// SolverOptions bound the work done by the ODE integrator within one
// Simulate call. A badly conditioned network can make the per-step
// nonlinear solver spin; exceeding MaxIter is a SimulationError, not
// a hang.
type SolverOptions struct {
	// Steps is the number of uniform backward-difference steps
	// over the residence time.
	Steps int

	// Tolerance is the Newton convergence tolerance on the step
	// residual.
	Tolerance float64

	// MaxIter caps Newton iterations per step.
	MaxIter int
}

// DefaultSolverOptions matches the reference discretization: 200
// backward finite-difference steps.
var DefaultSolverOptions = SolverOptions{
	Steps:     200,
	Tolerance: 1e-10,
	MaxIter:   50,
}

// Reactor integrates the coupled mass-action ODE system for a
// reaction network and derives STY and E-factor for one set of
// process conditions. The rate and solvation models are read-only
// after construction, so concurrent Simulate calls are safe;
// conditions flow through the call chain and are never stored on the
// Reactor.
type Reactor struct {
	list      *ReactionList
	rates     RateModel
	solvation SolvationModel

	// Solver configures the ODE integrator.
	Solver SolverOptions
}

// NewReactor validates the reaction list and builds a reactor using
// rates and solvation as the rate-constant parametrization.
func NewReactor(reactions []*Reaction, rates RateModel, solvation SolvationModel) (*Reactor, error) {
	list, err := NewReactionList(reactions)
	if err != nil {
		return nil, err
	}
	if rates == nil {
		return nil, ConfigErrorf("ispareto: reactor requires a rate model")
	}
	if solvation == nil {
		return nil, ConfigErrorf("ispareto: reactor requires a solvation model")
	}
	return &Reactor{
		list:      list,
		rates:     rates,
		solvation: solvation,
		Solver:    DefaultSolverOptions,
	}, nil
}

// Reactions returns the validated reaction list.
func (r *Reactor) Reactions() *ReactionList { return r.list }

// Simulate integrates the reaction network from t=0 to the residence
// time under the given conditions and returns the space-time yield
// [kg/m³/h] and E-factor [kg waste / kg product]. It is pure with
// respect to the reactor's state and safe to call from concurrent
// goroutines.
func (r *Reactor) Simulate(conditions ReactorConditions) (sty, eFactor float64, err error) {
	temperature := conditions.Temperature + 273.15 // Kelvin
	tEnd := conditions.Time * 60                   // seconds
	if tEnd <= 0 {
		return 0, 0, SimulationErrorf("ispareto: residence time must be positive, got %g min", conditions.Time)
	}

	// T is fixed over the whole integration window, so effective
	// rate constants are evaluated once per reaction.
	keff := make([]float64, r.list.Len())
	for j, rxn := range r.list.Reactions() {
		k, err := r.rates.K(rxn, temperature)
		if err != nil {
			return 0, 0, err
		}
		cf, err := r.solvation.CorrectionFactor(rxn, temperature)
		if err != nil {
			return 0, 0, err
		}
		keff[j] = k * cf
	}

	sys := newKineticSystem(r.list, keff)

	c0 := make([]float64, len(r.list.Species()))
	for sp, conc := range conditions.Concentrations {
		i, ok := r.list.Index(sp)
		if !ok {
			return 0, 0, LookupErrorf("ispareto: initial concentration given for species %q, which is not part of the reaction network", sp.Name)
		}
		c0[i] = conc
	}

	c, err := sys.integrate(c0, tEnd, r.Solver)
	if err != nil {
		return 0, 0, err
	}

	return r.metrics(conditions, c0, c, tEnd)
}

// metrics normalizes the final state for mass conservation and
// derives STY and E-factor. Only the overflow case (simulated mass
// exceeding fed mass through integration drift) is rescaled; mass
// lost to numerical damping is left alone, matching the reference
// behavior.
func (r *Reactor) metrics(conditions ReactorConditions, c0, c []float64, tEnd float64) (sty, eFactor float64, err error) {
	species := r.list.Species()

	var massIn, massSim float64
	for i, sp := range species {
		massIn += c0[i] * sp.Mass
		massSim += c[i] * sp.Mass
	}
	norm := 1.0
	if massSim > massIn && massSim > 0 {
		norm = massIn / massSim
	}

	isProduct := make(map[SpeciesKey]bool, len(conditions.Products))
	for _, sp := range conditions.Products {
		isProduct[sp.Key()] = true
	}

	var massProduct, massWaste float64
	for i, sp := range species {
		m := c[i] * norm * sp.Mass
		if isProduct[sp.Key()] {
			massProduct += m
		} else {
			massWaste += m
		}
	}

	if massProduct <= 0 {
		return 0, 0, SimulationErrorf("ispareto: no product formed (product mass %g kg/m³); E-factor is undefined", massProduct)
	}

	const volume = 1.0 // m³, normalized reactor volume
	sty = 3600 * massProduct / (volume * tEnd)
	eFactor = massWaste / massProduct

	if math.IsNaN(sty) || math.IsInf(sty, 0) || math.IsNaN(eFactor) || math.IsInf(eFactor, 0) {
		return 0, 0, SimulationErrorf("ispareto: non-finite metrics (STY=%g, E=%g)", sty, eFactor)
	}
	return sty, eFactor, nil
}
