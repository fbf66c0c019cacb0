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
	"testing"
)

// Every correction must stay at or above 1 and fall off with
// temperature: tunneling can only speed a reaction up, and matters
// less the hotter it gets.
func TestTunnelingBounds(t *testing.T) {
	const omega = 1.4e14 // rad/s, a typical imaginary mode

	models := map[string]tunnelingModel{
		"wigner": wignerTunneling{omega: omega},
		"miller": millerTunneling{omega: omega},
		"eckart": eckartTunneling{
			omega:    omega,
			vForward: 4.0e-20, // J
			vReverse: 6.0e-20,
		},
	}
	for name, m := range models {
		prev := math.Inf(1)
		for _, T := range []float64{250, 300, 350, 400, 600, 1000} {
			kappa := m.kappa(T)
			if kappa < 1 {
				t.Errorf("%s: κ(%g K) = %g < 1", name, T, kappa)
			}
			if math.IsNaN(kappa) || math.IsInf(kappa, 0) {
				t.Errorf("%s: κ(%g K) = %g, want finite", name, T, kappa)
			}
			if kappa > prev+1e-12 {
				t.Errorf("%s: κ increased from %g to %g at %g K", name, prev, kappa, T)
			}
			prev = kappa
		}
	}
}

// For small barrier-frequency arguments the truncated-parabola result
// exceeds the leading-order Wigner expansion, which it contains as its
// first two terms.
func TestTunnelingMillerAboveWigner(t *testing.T) {
	const omega = 1.4e14
	w := wignerTunneling{omega: omega}
	m := millerTunneling{omega: omega}
	for _, T := range []float64{250, 300, 400} {
		if m.kappa(T) < w.kappa(T) {
			t.Errorf("miller κ(%g K) = %g below wigner %g", T, m.kappa(T), w.kappa(T))
		}
	}
}

// Deep tunneling drives the Miller argument past its pole; the cap
// must keep the correction large but finite.
func TestTunnelingMillerCap(t *testing.T) {
	m := millerTunneling{omega: 9e14}
	kappa := m.kappa(100)
	if math.IsInf(kappa, 0) || math.IsNaN(kappa) {
		t.Fatalf("κ = %g, want finite", kappa)
	}
	if kappa < 10 {
		t.Errorf("κ = %g, want a large correction in the deep-tunneling limit", kappa)
	}
}

// An asymmetric Eckart barrier transmits nothing below the higher
// channel; the correction still must not drop below 1.
func TestTunnelingEckartAsymmetric(t *testing.T) {
	endothermic := eckartTunneling{
		omega:    1.4e14,
		vForward: 8.0e-20,
		vReverse: 2.0e-20, // product channel far above reactants
	}
	exothermic := eckartTunneling{
		omega:    1.4e14,
		vForward: 2.0e-20,
		vReverse: 8.0e-20,
	}
	for _, T := range []float64{250, 300, 350} {
		ke := endothermic.kappa(T)
		kx := exothermic.kappa(T)
		if ke < 1 || kx < 1 {
			t.Errorf("κ(%g K) = %g / %g, want both ≥ 1", T, ke, kx)
		}
	}
}
