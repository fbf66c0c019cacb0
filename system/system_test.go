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

package system

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ispareto "github.com/bg196678/IS-Pareto"
)

func TestLoadSystem1(t *testing.T) {
	sys, err := Load(filepath.Join("testdata", "system_1.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if sys.Title == "" {
		t.Error("system has no title")
	}
	if n := len(sys.Reactions); n != 16 {
		t.Fatalf("loaded %d reactions, want 16", n)
	}
	if n := len(sys.Species); n != 26 { // 10 species + 16 transition states
		t.Errorf("loaded %d definitions, want 26", n)
	}

	list, err := ispareto.NewReactionList(sys.Reactions)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(list.Species()); n != 10 {
		t.Errorf("network has %d mass-balance species, want 10", n)
	}
	if n := len(list.TransitionStates()); n != 16 {
		t.Errorf("network has %d transition states, want 16", n)
	}

	substrate := sys.Species["Substrate"]
	if substrate == nil || substrate.Mass != 0.159 {
		t.Errorf("Substrate = %v, want mass 0.159", substrate)
	}
	if substrate.IsTransitionState() {
		t.Error("Substrate misclassified as a transition state")
	}
	ts := sys.Species["TS1_fwd"]
	if ts == nil || !ts.IsTransitionState() {
		t.Errorf("TS1_fwd = %v, want a transition state", ts)
	}

	// Relative data paths resolve against the definition file's
	// directory.
	if want := filepath.Join("testdata", "data", "substrate.fchk"); substrate.FchkFile != want {
		t.Errorf("Substrate fchk = %q, want %q", substrate.FchkFile, want)
	}
	if !sys.Tabulated() {
		t.Error("system with table paths not reported as tabulated")
	}

	r8, ok := list.ByName("R8_fwd")
	if !ok {
		t.Fatal("reaction R8_fwd not found")
	}
	if got := r8.Coefficient(sys.Species["ITS4"]); got != -1 {
		t.Errorf("R8_fwd coefficient of ITS4 = %d, want -1", got)
	}
}

// The reference definition carries one known flaw: R8_rev regenerates
// ITS1 where R8_fwd consumes ITS4. It must surface as a warning, not
// be corrected.
func TestLoadSystem1ReverseWarning(t *testing.T) {
	sys, err := Load(filepath.Join("testdata", "system_1.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(sys.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(sys.Warnings), sys.Warnings)
	}
	w := sys.Warnings[0]
	if !strings.Contains(w, "R8_fwd") || !strings.Contains(w, "R8_rev") {
		t.Errorf("warning %q does not name the R8 pair", w)
	}

	// The flawed stoichiometry is preserved as defined.
	list, err := ispareto.NewReactionList(sys.Reactions)
	if err != nil {
		t.Fatal(err)
	}
	r8rev, ok := list.ByName("R8_rev")
	if !ok {
		t.Fatal("reaction R8_rev not found")
	}
	if got := r8rev.Coefficient(sys.Species["ITS1"]); got != 1 {
		t.Errorf("R8_rev coefficient of ITS1 = %d, want 1 (kept as defined)", got)
	}
}

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"undefined species", `
[transitionstates.TS1]
fchk = "ts1.fchk"
[[reactions]]
name = "r1"
transitionstate = "TS1"
[reactions.stoichiometry]
A = -1
B = 1
`},
		{"undefined transition state", `
[species.A]
mass = 0.1
[species.B]
mass = 0.1
[[reactions]]
name = "r1"
transitionstate = "TS1"
[reactions.stoichiometry]
A = -1
B = 1
`},
		{"transition state in stoichiometry", `
[species.A]
mass = 0.1
[transitionstates.TS1]
fchk = "ts1.fchk"
[[reactions]]
name = "r1"
transitionstate = "TS1"
[reactions.stoichiometry]
A = -1
TS1 = 1
`},
		{"dual definition", `
[species.A]
mass = 0.1
[species.B]
mass = 0.1
[transitionstates.A]
fchk = "a.fchk"
[[reactions]]
name = "r1"
transitionstate = "A"
[reactions.stoichiometry]
A = -1
B = 1
`},
		{"species as transition state", `
[species.A]
mass = 0.1
[species.B]
mass = 0.1
[[reactions]]
name = "r1"
transitionstate = "B"
[reactions.stoichiometry]
A = -1
B = 1
`},
	}
	for _, c := range cases {
		_, err := Load(writeDefinition(t, c.content))
		if err == nil {
			t.Errorf("%s: expected an error", c.name)
			continue
		}
		var cfgErr *ispareto.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: error is %T (%v), want *ConfigError", c.name, err, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.toml"))
	var dataErr *ispareto.DataError
	if !errors.As(err, &dataErr) {
		t.Errorf("error is %T (%v), want *DataError", err, err)
	}
}

func TestLoadEnergyOverride(t *testing.T) {
	sys, err := Load(writeDefinition(t, `
[species.A]
mass = 0.1
energy = -153.5
[species.B]
mass = 0.1
[transitionstates.TS1]
fchk = "ts1.fchk"
[[reactions]]
name = "r1"
transitionstate = "TS1"
[reactions.stoichiometry]
A = -1
B = 1
`))
	if err != nil {
		t.Fatal(err)
	}
	a := sys.Species["A"]
	if !a.HasEnergy() || a.Energy != -153.5 {
		t.Errorf("A energy override = %v (set %v), want -153.5", a.Energy, a.HasEnergy())
	}
	if b := sys.Species["B"]; b.HasEnergy() {
		t.Errorf("B has an energy override %g, want unset", b.Energy)
	}
}
