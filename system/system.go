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

// Package system loads reaction-network definitions from TOML files
// and provides spreadsheet-tabulated rate-constant and solvation
// models as an alternative to the ab-initio kinetics and solvation
// packages.
package system

import (
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	ispareto "github.com/bg196678/IS-Pareto"
)

// speciesDef is the TOML shape of one species.
type speciesDef struct {
	Mass   float64  `toml:"mass"`
	Fchk   string   `toml:"fchk"`
	Tab    string   `toml:"tab"`
	Energy *float64 `toml:"energy"`
}

// reactionDef is the TOML shape of one reaction.
type reactionDef struct {
	Name            string         `toml:"name"`
	TransitionState string         `toml:"transitionstate"`
	Stoichiometry   map[string]int `toml:"stoichiometry"`
}

// tablesDef points at spreadsheet-tabulated parametrizations.
type tablesDef struct {
	Kinetics string `toml:"kinetics"`
	Gsolv    string `toml:"gsolv"`
}

type definition struct {
	Title            string                `toml:"title"`
	Species          map[string]speciesDef `toml:"species"`
	TransitionStates map[string]speciesDef `toml:"transitionstates"`
	Reactions        []reactionDef         `toml:"reactions"`
	Tables           tablesDef             `toml:"tables"`
}

// System is a loaded reaction-network definition: interned species,
// the ordered reaction list, and optional table locations. It is
// built once at system-definition time and read-only afterwards.
type System struct {
	// Title names the system.
	Title string

	// Species maps names to interned species, transition states
	// included.
	Species map[string]*ispareto.Species

	// Reactions in definition order.
	Reactions []*ispareto.Reaction

	// KineticsTable and GsolvTable are paths to spreadsheet
	// parametrizations, empty when the system uses ab-initio
	// models.
	KineticsTable string
	GsolvTable    string

	// Warnings carries non-fatal findings from validation, such
	// as forward/reverse stoichiometry inconsistencies. They are
	// surfaced, never auto-corrected.
	Warnings []string
}

// Load reads a system definition from a TOML file. Relative data
// paths inside the definition are resolved against the file's
// directory. Undefined species references and invalid reactions are
// ConfigErrors; an unreadable file is a DataError.
func Load(path string) (*System, error) {
	var def definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return nil, ispareto.WrapDataError(err, "system: %s", path)
	}
	return build(&def, filepath.Dir(path))
}

func build(def *definition, dir string) (*System, error) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	sys := &System{
		Title:         def.Title,
		Species:       make(map[string]*ispareto.Species),
		KineticsTable: resolve(def.Tables.Kinetics),
		GsolvTable:    resolve(def.Tables.Gsolv),
	}

	// Deterministic construction order keeps interned indices
	// stable across loads.
	for _, name := range sortedKeys(def.Species) {
		d := def.Species[name]
		sp := ispareto.NewSpecies(name, d.Mass, resolve(d.Fchk), resolve(d.Tab))
		if d.Energy != nil {
			sp.Energy = *d.Energy
		}
		sys.Species[name] = sp
	}
	for _, name := range sortedKeys(def.TransitionStates) {
		d := def.TransitionStates[name]
		if _, ok := sys.Species[name]; ok {
			return nil, ispareto.ConfigErrorf("system: %q is defined both as species and transition state", name)
		}
		ts := ispareto.NewTransitionState(name, resolve(d.Fchk), resolve(d.Tab))
		if d.Energy != nil {
			ts.Energy = *d.Energy
		}
		sys.Species[name] = ts
	}

	for _, rd := range def.Reactions {
		ts, ok := sys.Species[rd.TransitionState]
		if !ok {
			return nil, ispareto.ConfigErrorf("system: reaction %q references undefined transition state %q",
				rd.Name, rd.TransitionState)
		}
		if !ts.IsTransitionState() {
			return nil, ispareto.ConfigErrorf("system: reaction %q: %q is not a transition state",
				rd.Name, rd.TransitionState)
		}
		var terms []ispareto.Term
		for _, name := range sortedKeys(rd.Stoichiometry) {
			sp, ok := sys.Species[name]
			if !ok {
				return nil, ispareto.ConfigErrorf("system: reaction %q references undefined species %q",
					rd.Name, name)
			}
			if sp.IsTransitionState() {
				return nil, ispareto.ConfigErrorf("system: reaction %q: transition state %q cannot appear in the stoichiometry",
					rd.Name, name)
			}
			terms = append(terms, ispareto.Term{Species: sp, Coefficient: rd.Stoichiometry[name]})
		}
		sys.Reactions = append(sys.Reactions, ispareto.NewReaction(rd.Name, ts, terms...))
	}

	list, err := ispareto.NewReactionList(sys.Reactions)
	if err != nil {
		return nil, err
	}
	sys.Warnings = list.ReverseInconsistencies()
	return sys, nil
}

// Tabulated reports whether the system carries spreadsheet
// parametrizations for both kinetics and solvation.
func (s *System) Tabulated() bool {
	return s.KineticsTable != "" && s.GsolvTable != ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
