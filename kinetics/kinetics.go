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
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	ispareto "github.com/bg196678/IS-Pareto"
)

// DefaultGradientThreshold is the maximum residual Cartesian gradient
// [hartree/bohr] accepted when projecting out external degrees of
// freedom from a species' vibrational analysis.
const DefaultGradientThreshold = 4e-3

// Options configure a Kinetics model.
type Options struct {
	// Tunneling selects the tunneling correction: "", "wigner",
	// "eckart", or "miller".
	Tunneling string

	// GradientThreshold overrides DefaultGradientThreshold when
	// positive.
	GradientThreshold float64

	// Loader supplies geometry/frequency records; LoadFchk when
	// nil.
	Loader Loader
}

// rateModel is the cached transition-state-theory model for one
// reaction.
type rateModel struct {
	reaction  *ispareto.Reaction
	ts        *partitionFunction
	reactants []*partitionFunction
	tunneling tunnelingModel
	barrier   float64 // ΔE0 forward [J], ZPE-corrected
}

// k evaluates the TST rate constant at temperature T [K] in SI units
// (1/s or m³/mol/s depending on molecularity).
func (m *rateModel) k(T float64) float64 {
	ratio := m.ts.eval(T)
	for _, q := range m.reactants {
		ratio /= q.eval(T)
	}
	k := boltzmann * T / planck * ratio * math.Exp(-m.barrier/(boltzmann*T))
	// Per-volume partition functions leave k in molecular units
	// [m³^(n−1)/s]; convert to mol-based SI.
	for i := 1; i < len(m.reactants); i++ {
		k *= avogadro
	}
	if m.tunneling != nil {
		k *= m.tunneling.kappa(T)
	}
	return k
}

// Kinetics computes gas-phase transition-state-theory rate constants
// for every reaction in a network. Partition functions are assembled
// once at construction (the expensive part); K evaluations are cheap
// and safe for concurrent use.
type Kinetics struct {
	list              *ispareto.ReactionList
	tunneling         string
	gradientThreshold float64
	models            map[*ispareto.Reaction]*rateModel
}

// New validates the reaction list and precomputes a rate-constant
// model per reaction. An unrecognized tunneling kind is a
// ConfigError; missing or malformed geometry data is a DataError.
// Product partition functions are only built for the Eckart
// correction, which needs the reverse barrier.
func New(reactions []*ispareto.Reaction, opts Options) (*Kinetics, error) {
	switch opts.Tunneling {
	case TunnelingNone, TunnelingWigner, TunnelingEckart, TunnelingMiller:
	default:
		return nil, ispareto.ConfigErrorf(
			"kinetics: tunneling correction must be one of %q, %q, %q (or empty), got %q",
			TunnelingWigner, TunnelingEckart, TunnelingMiller, opts.Tunneling)
	}
	list, err := ispareto.NewReactionList(reactions)
	if err != nil {
		return nil, err
	}
	threshold := opts.GradientThreshold
	if threshold <= 0 {
		threshold = DefaultGradientThreshold
	}
	load := opts.Loader
	if load == nil {
		load = LoadFchk
	}

	k := &Kinetics{
		list:              list,
		tunneling:         opts.Tunneling,
		gradientThreshold: threshold,
		models:            make(map[*ispareto.Reaction]*rateModel, list.Len()),
	}

	cache := make(map[ispareto.SpeciesKey]*partitionFunction)
	partfn := func(sp *ispareto.Species) (*partitionFunction, error) {
		if q, ok := cache[sp.Key()]; ok {
			return q, nil
		}
		rec, err := load(sp)
		if err != nil {
			return nil, err
		}
		q, err := newPartitionFunction(sp, rec, threshold)
		if err != nil {
			return nil, err
		}
		cache[sp.Key()] = q
		return q, nil
	}

	for _, rxn := range list.Reactions() {
		m := &rateModel{reaction: rxn}
		if m.ts, err = partfn(rxn.TransitionState); err != nil {
			return nil, err
		}
		var reactantEnergy float64
		for _, sp := range rxn.Reactants() {
			q, err := partfn(sp)
			if err != nil {
				return nil, err
			}
			m.reactants = append(m.reactants, q)
			reactantEnergy += q.groundEnergy()
		}
		m.barrier = m.ts.groundEnergy() - reactantEnergy

		switch opts.Tunneling {
		case TunnelingWigner:
			m.tunneling = wignerTunneling{omega: m.ts.imaginaryFrequency()}
		case TunnelingMiller:
			m.tunneling = millerTunneling{omega: m.ts.imaginaryFrequency()}
		case TunnelingEckart:
			var productEnergy float64
			for _, sp := range rxn.Products() {
				q, err := partfn(sp)
				if err != nil {
					return nil, err
				}
				productEnergy += q.groundEnergy()
			}
			m.tunneling = eckartTunneling{
				omega:    m.ts.imaginaryFrequency(),
				vForward: m.barrier,
				vReverse: m.ts.groundEnergy() - productEnergy,
			}
		}
		k.models[rxn] = m
	}
	return k, nil
}

// Tunneling returns the configured tunneling correction kind.
func (k *Kinetics) Tunneling() string { return k.tunneling }

// GradientThreshold returns the stationarity threshold in use.
func (k *Kinetics) GradientThreshold() float64 { return k.gradientThreshold }

// Len returns the number of cached rate-constant models.
func (k *Kinetics) Len() int { return len(k.models) }

// K returns the gas-phase rate constant of r at temperature [K] in
// SI units. The reaction must be one of those the model was
// constructed with.
func (k *Kinetics) K(r *ispareto.Reaction, temperature float64) (float64, error) {
	m, ok := k.models[r]
	if !ok {
		return 0, ispareto.LookupErrorf("kinetics: no rate model for reaction %q", r.Name)
	}
	return m.k(temperature), nil
}

// Dump writes rate-constant curves over a 250–400 K sweep to
// rate_constants.csv in dir, one column per reaction.
func (k *Kinetics) Dump(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "rate_constants.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	header := []string{"Temperature[K]"}
	reactions := k.list.Reactions()
	for _, rxn := range reactions {
		name := rxn.Name
		if name == "" {
			name = rxn.String()
		}
		header = append(header, name)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for T := 250.0; T <= 400.0; T += 5 {
		row := []string{strconv.FormatFloat(T, 'g', -1, 64)}
		for _, rxn := range reactions {
			kr, err := k.K(rxn, T)
			if err != nil {
				return err
			}
			row = append(row, fmt.Sprintf("%.6e", kr))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
