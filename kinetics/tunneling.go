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

import "math"

// Recognized tunneling correction kinds.
const (
	TunnelingNone   = ""
	TunnelingWigner = "wigner"
	TunnelingEckart = "eckart"
	TunnelingMiller = "miller"
)

// tunnelingModel is a multiplicative correction κ(T) ≥ 1 accounting
// for quantum tunneling through the reaction barrier.
type tunnelingModel interface {
	kappa(T float64) float64
}

// wignerTunneling is the leading-order Wigner (1932) correction
// κ = 1 + u²/24, u = ħω‡/kT.
type wignerTunneling struct {
	omega float64 // imaginary mode angular frequency [1/s]
}

func (w wignerTunneling) kappa(T float64) float64 {
	u := hbar * w.omega / (boltzmann * T)
	return 1 + u*u/24
}

// millerTunneling is the truncated-parabola result
// κ = (u/2)/sin(u/2), which diverges as u approaches 2π; the
// argument is capped short of the pole so that deep tunneling yields
// a large finite correction instead of infinity.
type millerTunneling struct {
	omega float64
}

func (m millerTunneling) kappa(T float64) float64 {
	u := hbar * m.omega / (boltzmann * T)
	const uMax = 2*math.Pi - 1e-2
	if u > uMax {
		u = uMax
	}
	k := (u / 2) / math.Sin(u/2)
	if k < 1 {
		return 1
	}
	return k
}

// eckartTunneling integrates the transmission probability through an
// asymmetric Eckart barrier over a Boltzmann-weighted energy grid:
//
//	κ(T) = exp(V₁/kT)/kT · ∫ P(E)·exp(−E/kT) dE
//
// with V₁ and V₂ the ZPE-corrected forward and reverse barriers and
// ω‡ the imaginary mode. Energies below max(0, V₁−V₂) do not
// transmit.
type eckartTunneling struct {
	omega    float64 // [1/s]
	vForward float64 // [J]
	vReverse float64 // [J]
}

func (e eckartTunneling) kappa(T float64) float64 {
	kt := boltzmann * T
	hv := hbar * e.omega
	alpha1 := 2 * math.Pi * e.vForward / hv
	alpha2 := 2 * math.Pi * e.vReverse / hv
	invRoot := 1/math.Sqrt(alpha1) + 1/math.Sqrt(alpha2)

	var coshD float64
	if d := alpha1*alpha2 - math.Pi*math.Pi/4; d >= 0 {
		coshD = math.Cosh(2 * math.Sqrt(d))
	} else {
		coshD = math.Cos(2 * math.Sqrt(-d))
	}

	transmission := func(energy float64) float64 {
		xi := energy / e.vForward
		a := 2 * math.Sqrt(alpha1*xi) / invRoot
		barg := alpha1*xi - (alpha1 - alpha2)
		if barg < 0 {
			return 0
		}
		b := 2 * math.Sqrt(barg) / invRoot
		num := math.Cosh(a+b) - math.Cosh(a-b)
		den := math.Cosh(a+b) + coshD
		if math.IsInf(num, 0) || math.IsInf(den, 0) {
			return 1 // both grow as exp(a+b); the ratio saturates
		}
		return num / den
	}

	// Trapezoid over [E0, Emax] plus the analytic tail where P≈1.
	e0 := math.Max(0, e.vForward-e.vReverse)
	eMax := e.vForward + 30*kt
	const steps = 1000
	h := (eMax - e0) / steps
	var integral float64
	for i := 0; i <= steps; i++ {
		en := e0 + float64(i)*h
		w := 1.0
		if i == 0 || i == steps {
			w = 0.5
		}
		integral += w * transmission(en) * math.Exp(-(en-e.vForward)/kt)
	}
	integral *= h / kt
	integral += math.Exp(-(eMax - e.vForward) / kt) // tail, P=1

	if integral < 1 {
		return 1 // never below the classical rate
	}
	return integral
}
