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

// Package campaign evaluates batches of candidate process conditions
// against a reactor model. Independent simulate calls share no
// mutable state (the kinetics and solvation caches are read-only
// after construction), so candidates are evaluated on parallel
// workers. Failed evaluations are recorded per candidate and never
// abort the batch; the surrounding optimizer decides whether to skip,
// penalize, or resample them.
package campaign

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	ispareto "github.com/bg196678/IS-Pareto"
)

// Simulator is the reactor surface a campaign drives; *ispareto.Reactor
// implements it.
type Simulator interface {
	Simulate(conditions ispareto.ReactorConditions) (sty, eFactor float64, err error)
}

// Bounds are the optimization variable ranges and objective bounds of
// a campaign, each as {min, max}.
type Bounds struct {
	Temperature   [2]float64 // °C
	Concentration [2]float64 // substrate feed [mol/m³]
	Ratio         [2]float64 // nucleophile:substrate feed ratio
	Time          [2]float64 // residence time [min]

	STY     [2]float64 // space-time yield objective [kg/m³/h]
	EFactor [2]float64 // waste-to-product objective
}

// DefaultBounds carries the reference objective bounds; variable
// ranges must be filled in per system.
var DefaultBounds = Bounds{
	STY:     [2]float64{0, 1e8},
	EFactor: [2]float64{0, 50},
}

// Candidate is one point in the process-condition space.
type Candidate struct {
	Temperature   float64 // °C
	Concentration float64 // mol/m³
	Ratio         float64
	Time          float64 // min
}

// Result is the outcome of evaluating one candidate. Err is set when
// the simulation failed; Feasible reports whether both objectives lie
// within the campaign bounds.
type Result struct {
	Candidate
	STY      float64
	EFactor  float64
	Feasible bool
	Err      error
}

// Campaign evaluates candidates against a reactor model.
type Campaign struct {
	// Simulator is the reactor under study.
	Simulator Simulator

	// Substrate and Nucleophile are the fed species; the
	// nucleophile feed is Concentration×Ratio.
	Substrate   *ispareto.Species
	Nucleophile *ispareto.Species

	// Products designate the yield species.
	Products []*ispareto.Species

	// Bounds holds the objective bounds used for feasibility.
	Bounds Bounds

	// Workers is the parallel evaluation width; NumCPU when < 1.
	Workers int

	// Log receives per-candidate progress; the standard logger
	// when nil.
	Log *logrus.Logger
}

// Conditions converts a candidate into reactor conditions.
func (c *Campaign) Conditions(cand Candidate) ispareto.ReactorConditions {
	return ispareto.ReactorConditions{
		Temperature: cand.Temperature,
		Concentrations: map[*ispareto.Species]float64{
			c.Substrate:   cand.Concentration,
			c.Nucleophile: cand.Concentration * cand.Ratio,
		},
		Products: c.Products,
		Time:     cand.Time,
	}
}

// Run evaluates all candidates and returns results in candidate
// order. Evaluation stops early when ctx is canceled; unevaluated
// candidates carry the context error.
func (c *Campaign) Run(ctx context.Context, candidates []Candidate) []Result {
	log := c.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	workers := c.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	results := make([]Result, len(candidates))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.evaluate(candidates[i], log)
			}
		}()
	}

	done := 0
feed:
	for i := range candidates {
		select {
		case <-ctx.Done():
			break feed
		default:
		}
		select {
		case jobs <- i:
			done++
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := done; i < len(candidates); i++ {
		results[i] = Result{Candidate: candidates[i], Err: ctx.Err()}
	}
	return results
}

func (c *Campaign) evaluate(cand Candidate, log *logrus.Logger) Result {
	res := Result{Candidate: cand}
	res.STY, res.EFactor, res.Err = c.Simulator.Simulate(c.Conditions(cand))
	if res.Err != nil {
		log.WithFields(logrus.Fields{
			"temperature":   cand.Temperature,
			"concentration": cand.Concentration,
			"ratio":         cand.Ratio,
			"time":          cand.Time,
		}).Warnf("evaluation failed: %v", res.Err)
		return res
	}
	res.Feasible = res.STY >= c.Bounds.STY[0] && res.STY <= c.Bounds.STY[1] &&
		res.EFactor >= c.Bounds.EFactor[0] && res.EFactor <= c.Bounds.EFactor[1]
	log.WithFields(logrus.Fields{
		"temperature":   cand.Temperature,
		"concentration": cand.Concentration,
		"ratio":         cand.Ratio,
		"time":          cand.Time,
		"STY":           res.STY,
		"E":             res.EFactor,
		"feasible":      res.Feasible,
	}).Info("evaluated candidate")
	return res
}

// Grid returns a full-factorial sweep with n points per variable over
// the campaign's variable bounds: a deterministic stand-in for the
// external sampler.
func Grid(b Bounds, n int) []Candidate {
	if n < 2 {
		n = 2
	}
	axis := func(bound [2]float64) []float64 {
		vals := make([]float64, n)
		step := (bound[1] - bound[0]) / float64(n-1)
		for i := range vals {
			vals[i] = bound[0] + float64(i)*step
		}
		return vals
	}
	var out []Candidate
	for _, T := range axis(b.Temperature) {
		for _, conc := range axis(b.Concentration) {
			for _, ratio := range axis(b.Ratio) {
				for _, t := range axis(b.Time) {
					out = append(out, Candidate{
						Temperature:   T,
						Concentration: conc,
						Ratio:         ratio,
						Time:          t,
					})
				}
			}
		}
	}
	return out
}

// WriteCSV writes results to path in the reference results layout,
// with a trailing status column ("ok", "infeasible", or the error).
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	header := []string{
		"Temperature[Celsius]", "Concentration[%]", "ConcentrationRatio",
		"Time[Minutes]", "STY", "E", "Status",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		status := "ok"
		switch {
		case r.Err != nil:
			status = r.Err.Error()
		case !r.Feasible:
			status = "infeasible"
		}
		row := []string{
			fmt.Sprintf("%g", r.Temperature),
			fmt.Sprintf("%g", r.Concentration),
			fmt.Sprintf("%g", r.Ratio),
			fmt.Sprintf("%g", r.Time),
			fmt.Sprintf("%.6e", r.STY),
			fmt.Sprintf("%.6e", r.EFactor),
			status,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
