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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	ispareto "github.com/bg196678/IS-Pareto"
	"github.com/bg196678/IS-Pareto/campaign"
	"github.com/bg196678/IS-Pareto/kinetics"
	"github.com/bg196678/IS-Pareto/system"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// Cfg holds configuration information.
var Cfg *viper.Viper

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ispareto",
	Short: "ispareto simulates reaction-network process metrics (STY and E-factor).",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if v := cast.ToString(Cfg.Get("verbose")); v == "true" {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one set of process conditions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := setupCampaign()
		if err != nil {
			return err
		}
		cand := campaign.Candidate{
			Temperature:   cast.ToFloat64(Cfg.Get("temperature")),
			Concentration: cast.ToFloat64(Cfg.Get("concentration")),
			Ratio:         cast.ToFloat64(Cfg.Get("ratio")),
			Time:          cast.ToFloat64(Cfg.Get("time")),
		}
		sty, eFactor, err := c.Simulator.Simulate(c.Conditions(cand))
		if err != nil {
			return err
		}
		fmt.Printf("STY = %g kg m-3 h-1\nE-factor = %g\n", sty, eFactor)
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate a full-factorial grid of process conditions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := setupCampaign()
		if err != nil {
			return err
		}
		bounds := campaign.DefaultBounds
		bounds.Temperature = boundPair("tmin", "tmax")
		bounds.Concentration = boundPair("cmin", "cmax")
		bounds.Ratio = boundPair("rmin", "rmax")
		bounds.Time = boundPair("timemin", "timemax")
		c.Bounds = bounds
		c.Workers = cast.ToInt(Cfg.Get("workers"))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		candidates := campaign.Grid(bounds, cast.ToInt(Cfg.Get("points")))
		logger.Infof("evaluating %d candidates on %d workers", len(candidates), c.Workers)
		results := c.Run(ctx, candidates)

		out := cast.ToString(Cfg.Get("output"))
		if err := campaign.WriteCSV(out, results); err != nil {
			return err
		}
		logger.Infof("results written to %s", out)
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write rate-constant and Gsolv diagnostic curves as CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, rates, solv, err := loadSystem()
		if err != nil {
			return err
		}
		dir := cast.ToString(Cfg.Get("output"))
		for _, d := range []interface{}{rates, solv} {
			if dumper, ok := d.(ispareto.Dumper); ok {
				if err := dumper.Dump(dir); err != nil {
					return err
				}
			}
		}
		logger.Infof("curves for %q written to %s", sys.Title, dir)
		return nil
	},
}

// options are the configuration options, following the pattern of
// registering each with both viper and the relevant flag sets.
var options = []struct {
	name, usage, shorthand string
	defaultVal             interface{}
}{
	{
		name:       "config",
		usage:      "config is the TOML system definition to load.",
		shorthand:  "c",
		defaultVal: "system.toml",
	},
	{
		name:       "verbose",
		usage:      "verbose enables debug logging.",
		defaultVal: false,
	},
	{
		name:       "tunneling",
		usage:      "tunneling selects the correction: wigner, eckart, miller, or empty for none.",
		defaultVal: "",
	},
	{
		name:       "gradient-threshold",
		usage:      "gradient-threshold is the stationarity limit [hartree/bohr] for vibrational analyses.",
		defaultVal: kinetics.DefaultGradientThreshold,
	},
	{
		name:       "substrate",
		usage:      "substrate names the first fed reactant.",
		defaultVal: "Substrate",
	},
	{
		name:       "nucleophile",
		usage:      "nucleophile names the second fed reactant.",
		defaultVal: "Nucleophilic",
	},
	{
		name:       "products",
		usage:      "products lists the yield species.",
		defaultVal: []string{"Product1"},
	},
	{
		name:       "output",
		usage:      "output is the results file (sweep) or directory (dump).",
		shorthand:  "o",
		defaultVal: "results.csv",
	},
}

var runOptions = []struct {
	name, usage string
	defaultVal  interface{}
}{
	{"temperature", "temperature is the process temperature [°C].", 100.0},
	{"concentration", "concentration is the substrate feed [mol/m³].", 300.0},
	{"ratio", "ratio is the nucleophile:substrate feed ratio.", 2.5},
	{"time", "time is the residence time [minutes].", 1.0},
}

var sweepOptions = []struct {
	name, usage string
	defaultVal  interface{}
}{
	{"tmin", "tmin is the lower temperature bound [°C].", 20.0},
	{"tmax", "tmax is the upper temperature bound [°C].", 150.0},
	{"cmin", "cmin is the lower substrate feed bound [mol/m³].", 100.0},
	{"cmax", "cmax is the upper substrate feed bound [mol/m³].", 500.0},
	{"rmin", "rmin is the lower feed ratio bound.", 1.0},
	{"rmax", "rmax is the upper feed ratio bound.", 5.0},
	{"timemin", "timemin is the lower residence time bound [min].", 0.5},
	{"timemax", "timemax is the upper residence time bound [min].", 10.0},
	{"points", "points is the grid resolution per variable.", 4},
	{"workers", "workers is the parallel evaluation width (0 = NumCPU).", 0},
}

func init() {
	Cfg = viper.New()
	Root.AddCommand(runCmd, sweepCmd, dumpCmd)

	for _, o := range options {
		register(Root.PersistentFlags(), o.name, o.shorthand, o.usage, o.defaultVal)
	}
	for _, o := range runOptions {
		register(runCmd.Flags(), o.name, "", o.usage, o.defaultVal)
	}
	for _, o := range sweepOptions {
		register(sweepCmd.Flags(), o.name, "", o.usage, o.defaultVal)
	}
}

func register(fs *pflag.FlagSet, name, shorthand, usage string, defaultVal interface{}) {
	switch v := defaultVal.(type) {
	case string:
		fs.StringP(name, shorthand, v, usage)
	case bool:
		fs.BoolP(name, shorthand, v, usage)
	case int:
		fs.IntP(name, shorthand, v, usage)
	case float64:
		fs.Float64P(name, shorthand, v, usage)
	case []string:
		fs.StringSliceP(name, shorthand, v, usage)
	default:
		panic(fmt.Sprintf("unsupported option type for %s", name))
	}
	Cfg.SetDefault(name, defaultVal)
	Cfg.BindPFlag(name, fs.Lookup(name))
}

func boundPair(lo, hi string) [2]float64 {
	return [2]float64{cast.ToFloat64(Cfg.Get(lo)), cast.ToFloat64(Cfg.Get(hi))}
}

// loadSystem reads the configured definition and builds its models.
func loadSystem() (*system.System, ispareto.RateModel, ispareto.SolvationModel, error) {
	path := cast.ToString(Cfg.Get("config"))
	sys, err := system.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, w := range sys.Warnings {
		logger.Warn(w)
	}
	rates, solv, err := system.Models(sys, kinetics.Options{
		Tunneling:         cast.ToString(Cfg.Get("tunneling")),
		GradientThreshold: cast.ToFloat64(Cfg.Get("gradient-threshold")),
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return sys, rates, solv, nil
}

// setupCampaign builds the reactor and a campaign around the two fed
// reactants and the configured product set.
func setupCampaign() (*campaign.Campaign, error) {
	sys, rates, solv, err := loadSystem()
	if err != nil {
		return nil, err
	}
	reactor, err := ispareto.NewReactor(sys.Reactions, rates, solv)
	if err != nil {
		return nil, err
	}

	lookup := func(name string) (*ispareto.Species, error) {
		sp, ok := sys.Species[name]
		if !ok {
			return nil, ispareto.ConfigErrorf("ispareto: species %q is not defined in %s",
				name, cast.ToString(Cfg.Get("config")))
		}
		return sp, nil
	}
	substrate, err := lookup(cast.ToString(Cfg.Get("substrate")))
	if err != nil {
		return nil, err
	}
	nucleophile, err := lookup(cast.ToString(Cfg.Get("nucleophile")))
	if err != nil {
		return nil, err
	}
	var products []*ispareto.Species
	for _, name := range cast.ToStringSlice(Cfg.Get("products")) {
		sp, err := lookup(name)
		if err != nil {
			return nil, err
		}
		products = append(products, sp)
	}

	return &campaign.Campaign{
		Simulator:   reactor,
		Substrate:   substrate,
		Nucleophile: nucleophile,
		Products:    products,
		Bounds:      campaign.DefaultBounds,
		Log:         logger,
	}, nil
}
