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

// Package solvation adjusts gas-phase rate constants for solvent
// effects. For every species in a reaction network it holds a
// temperature-indexed solvation free energy (Gsolv) curve parsed from
// COSMOtherm table files, and computes per-reaction Eyring-type
// correction factors exp(−ΔGsolv/RT) that multiply the gas-phase
// rate constant.
package solvation

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	ispareto "github.com/bg196678/IS-Pareto"
)

// GasConstant is R in J/mol/K.
const GasConstant = 8.3145

// kcalPerMol converts kcal/mol to J/mol.
const kcalPerMol = 4184.0

// Point is one tabulated (temperature, Gsolv) pair: temperature in
// K, Gsolv in kcal/mol.
type Point struct {
	Temperature float64
	Gsolv       float64
}

// Curve is a solvation free energy curve sorted by temperature.
type Curve []Point

// Interpolate evaluates curve at temperature [K]; it is the same
// lookup G uses, exported for tabulated parametrizations that share
// the curve representation.
func Interpolate(c Curve, temperature float64) float64 {
	return c.interpolate(temperature)
}

// interpolate evaluates the curve at T by piecewise-linear
// interpolation, clamping to the boundary values outside the
// tabulated range.
func (c Curve) interpolate(T float64) float64 {
	if T <= c[0].Temperature {
		return c[0].Gsolv
	}
	if last := c[len(c)-1]; T >= last.Temperature {
		return last.Gsolv
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].Temperature >= T })
	lo, hi := c[i-1], c[i]
	frac := (T - lo.Temperature) / (hi.Temperature - lo.Temperature)
	return lo.Gsolv + frac*(hi.Gsolv-lo.Gsolv)
}

// CurveLoader supplies the Gsolv curve for a species. The default
// loader parses the species' COSMOtherm table file.
type CurveLoader func(sp *ispareto.Species) (Curve, error)

// Options configure a Solvation model.
type Options struct {
	// Loader supplies Gsolv curves; LoadTab when nil.
	Loader CurveLoader
}

// Solvation computes per-reaction solvent correction factors from
// cached Gsolv curves. Curves are parsed once at construction; the
// model is read-only afterwards and safe for concurrent use.
type Solvation struct {
	list   *ispareto.ReactionList
	curves map[ispareto.SpeciesKey]Curve
}

// New validates the reaction list and parses a Gsolv curve for every
// distinct species and transition state referenced by any reaction.
// A missing or malformed table file is a DataError.
func New(reactions []*ispareto.Reaction, opts Options) (*Solvation, error) {
	list, err := ispareto.NewReactionList(reactions)
	if err != nil {
		return nil, err
	}
	load := opts.Loader
	if load == nil {
		load = LoadTab
	}

	s := &Solvation{
		list:   list,
		curves: make(map[ispareto.SpeciesKey]Curve),
	}
	all := append([]*ispareto.Species{}, list.Species()...)
	all = append(all, list.TransitionStates()...)
	for _, sp := range all {
		if _, ok := s.curves[sp.Key()]; ok {
			continue
		}
		curve, err := load(sp)
		if err != nil {
			return nil, err
		}
		if len(curve) == 0 {
			return nil, ispareto.DataErrorf("solvation: species %q has an empty Gsolv curve", sp.Name)
		}
		sort.Slice(curve, func(i, j int) bool {
			return curve[i].Temperature < curve[j].Temperature
		})
		s.curves[sp.Key()] = curve
	}
	return s, nil
}

// G returns the solvation free energy [kcal/mol] of sp at
// temperature [K] by linear interpolation over its cached curve.
func (s *Solvation) G(sp *ispareto.Species, temperature float64) (float64, error) {
	curve, ok := s.curves[sp.Key()]
	if !ok {
		return 0, ispareto.LookupErrorf("solvation: no Gsolv curve for species %q", sp.Name)
	}
	return curve.interpolate(temperature), nil
}

// CorrectionFactor returns exp(−ΔG/RT) for the reaction at
// temperature [K], where ΔG = Gsolv(transition state) − Σ
// Gsolv(reactants), converted from kcal/mol to J/mol. The factor
// multiplies the gas-phase rate constant.
func (s *Solvation) CorrectionFactor(r *ispareto.Reaction, temperature float64) (float64, error) {
	gTS, err := s.G(r.TransitionState, temperature)
	if err != nil {
		return 0, err
	}
	var gReactants float64
	for _, sp := range r.Reactants() {
		g, err := s.G(sp, temperature)
		if err != nil {
			return 0, err
		}
		gReactants += g
	}
	deltaG := (gTS - gReactants) * kcalPerMol
	return math.Exp(-deltaG / (GasConstant * temperature)), nil
}

// Dump writes Gsolv curves (gsolv.csv) and per-reaction correction
// factors (correction_factors.csv) over a 250–400 K sweep to dir.
func (s *Solvation) Dump(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	species := append([]*ispareto.Species{}, s.list.Species()...)
	species = append(species, s.list.TransitionStates()...)

	gf, err := os.Create(filepath.Join(dir, "gsolv.csv"))
	if err != nil {
		return err
	}
	defer gf.Close()
	gw := csv.NewWriter(gf)
	header := []string{"Temperature[K]"}
	for _, sp := range species {
		header = append(header, sp.Name)
	}
	if err := gw.Write(header); err != nil {
		return err
	}
	for T := 250.0; T <= 400.0; T += 5 {
		row := []string{strconv.FormatFloat(T, 'g', -1, 64)}
		for _, sp := range species {
			g, err := s.G(sp, T)
			if err != nil {
				return err
			}
			row = append(row, fmt.Sprintf("%.6f", g))
		}
		if err := gw.Write(row); err != nil {
			return err
		}
	}
	gw.Flush()
	if err := gw.Error(); err != nil {
		return err
	}

	cf, err := os.Create(filepath.Join(dir, "correction_factors.csv"))
	if err != nil {
		return err
	}
	defer cf.Close()
	cw := csv.NewWriter(cf)
	header = []string{"Temperature[K]"}
	for _, rxn := range s.list.Reactions() {
		header = append(header, rxn.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for T := 250.0; T <= 400.0; T += 5 {
		row := []string{strconv.FormatFloat(T, 'g', -1, 64)}
		for _, rxn := range s.list.Reactions() {
			factor, err := s.CorrectionFactor(rxn, T)
			if err != nil {
				return err
			}
			row = append(row, fmt.Sprintf("%.6e", factor))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
