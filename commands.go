// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/cpmech/ecpvt/inp"
	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/ecpvt/out"
	"github.com/cpmech/ecpvt/pvt"
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// curveRequest defines a curve printed by the curves command
type curveRequest struct {
	name  string         // name of curve; also the name of the flag
	kind  fluid.RawCurve // curve
	phase pvt.Phase      // phase
	usage string         // help message of flag
}

// curveRequests holds all curves in printing order
var curveRequests = []curveRequest{
	{"Bg", fluid.FVF, pvt.Vapour, "print gas formation volume factor"},
	{"mu_g", fluid.Viscosity, pvt.Vapour, "print gas viscosity"},
	{"Bo", fluid.FVF, pvt.Liquid, "print oil formation volume factor"},
	{"mu_o", fluid.Viscosity, pvt.Liquid, "print oil viscosity"},
	{"rvSat", fluid.SaturatedState, pvt.Vapour, "print saturated vaporised oil-gas ratio"},
	{"rsSat", fluid.SaturatedState, pvt.Liquid, "print saturated dissolved gas-oil ratio"},
}

// curvesOpts holds the options of the curves command
type curvesOpts struct {
	cell   int    // active cell
	units  string // output system of units; empty means SI
	plot   bool   // save figures
	dirout string // directory of figures
}

func newCurvesCommand() *cobra.Command {
	var opts curvesOpts
	cmd := &cobra.Command{
		Use:   "curves CASE",
		Short: "Print PVT curves of a cell",
		Long: `Print the PVT curves of the region of a cell. Each graph is printed as

  name{k} = [
  x y
  ...
  ];

with one graph per fixed mixing ratio (or pressure) for miscible fluids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurves(cmd, args[0], &opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.cell, "cell", 0, "active cell")
	addUnitsFlag(flags, &opts.units)
	for _, r := range curveRequests {
		flags.Bool(r.name, false, r.usage)
	}
	flags.BoolVar(&opts.plot, "plot", false, "save figures of curves")
	flags.StringVar(&opts.dirout, "dirout", "/tmp/ecpvt", "directory of figures")
	return cmd
}

// runCurves prints the curves selected in opts
func runCurves(cmd *cobra.Command, path string, opts *curvesOpts) (err error) {
	coll, c, usys, err := loadCollection(path, opts.units)
	if err != nil {
		return
	}
	var buf bytes.Buffer
	for _, r := range curveRequests {
		want, err := cmd.Flags().GetBool(r.name)
		if err != nil {
			return err
		}
		if !want {
			continue
		}
		graphs := coll.PvtCurve(r.kind, r.phase, opts.cell)
		out.WriteGraph(&buf, r.name, graphs)
		if opts.plot {
			qx, qy := pvt.CurveAxes(r.kind, r.phase, graphs)
			xlabel := out.GetTexLabel(axisKey(qx, r.phase), out.UnitSymbol(qx, usys))
			ylabel := out.GetTexLabel(r.name, out.UnitSymbol(qy, usys))
			out.Plot(opts.dirout, io.Sf("%s-%s-cell%d", c.Key, r.name, opts.cell), graphs, xlabel, ylabel)
		}
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return
}

// evalOpts holds the options of the eval command
type evalOpts struct {
	prop   string   // property: fvf or viscosity
	phase  string   // phase: oil or gas
	cell   int      // active cell
	press  []string // pressures
	mix    []string // mixing ratios
	native bool     // inputs in native units
	units  string   // output system of units; empty means SI
}

func newEvalCommand() *cobra.Command {
	var opts evalOpts
	cmd := &cobra.Command{
		Use:   "eval CASE",
		Short: "Evaluate formation volume factor or viscosity of a cell",
		Long: `Evaluate the formation volume factor or viscosity of oil or gas in the
region of a cell at given pressures and mixing ratios (Rs for oil, Rv for
gas). Inputs are in SI units unless --native is given, in which case they
are in the native units of the case and results are in --units.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], &opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.prop, "prop", "fvf", "property: fvf or viscosity")
	flags.StringVar(&opts.phase, "phase", "oil", "phase: oil or gas")
	flags.IntVar(&opts.cell, "cell", 0, "active cell")
	flags.StringSliceVar(&opts.press, "press", nil, "pressures; e.g. 100,200")
	flags.StringSliceVar(&opts.mix, "mix", nil, "mixing ratios; zero if not given")
	flags.BoolVar(&opts.native, "native", false, "inputs are in native units of the case")
	flags.StringVar(&opts.units, "units", "", "system of units of results with --native: metric, field, lab, pvt-m or si")
	return cmd
}

// runEval prints dynamically evaluated values
func runEval(cmd *cobra.Command, path string, opts *evalOpts) (err error) {
	prop, err := parseProperty(opts.prop)
	if err != nil {
		return
	}
	phase, err := parsePhase(opts.phase)
	if err != nil {
		return
	}
	if opts.units != "" && !opts.native {
		return chk.Err("--units requires --native; SI inputs give SI results")
	}
	press, err := parseFloats("press", opts.press)
	if err != nil {
		return
	}
	mix, err := parseFloats("mix", opts.mix)
	if err != nil {
		return
	}
	coll, _, _, err := loadCollection(path, opts.units)
	if err != nil {
		return
	}
	var vals []float64
	if opts.native {
		vals = coll.DynamicPropertyNative(prop, phase, opts.cell, press, mix)
	} else {
		vals = coll.DynamicPropertySI(prop, phase, opts.cell, press, mix)
	}
	var buf bytes.Buffer
	out.WriteValues(&buf, valueName(prop, phase), press, vals)
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return
}

// loadCollection reads a case file and builds its collection of curves
//
//	unitsName -- output system of units; empty means SI
func loadCollection(path, unitsName string) (coll *pvt.CurveCollection, c *inp.Case, usys units.System, err error) {
	c, err = inp.ReadCase(path)
	if err != nil {
		return
	}
	coll, err = pvt.FromCase(c)
	if err != nil {
		return
	}
	usys = units.Internal()
	if unitsName != "" {
		usys, err = units.ByName(unitsName)
		if err != nil {
			return
		}
		coll.SetOutputUnits(usys)
	}
	log.Info("case loaded", "key", c.Key, "ncells", coll.NumCells(), "units", usys.Name())
	io.Pforan("case %q: %d cells; results in %s units\n", c.Key, coll.NumCells(), usys.Name())
	return
}

// addUnitsFlag adds the flag selecting the output system of units
func addUnitsFlag(flags *pflag.FlagSet, s *string) {
	flags.StringVar(s, "units", "", "system of units of results: metric, field, lab, pvt-m or si")
}

// axisKey returns the label key of the x-axis quantity of phase
func axisKey(q units.Quantity, phase pvt.Phase) string {
	switch q {
	case units.VaporisedOilGasRatio:
		return "rv"
	case units.DissolvedGasOilRatio:
		return "rs"
	}
	if phase == pvt.Vapour {
		return "pg"
	}
	return "po"
}

// valueName returns the name of values of prop in phase
func valueName(prop fluid.RawCurve, phase pvt.Phase) string {
	names := map[fluid.RawCurve][2]string{
		fluid.FVF:       {"Bo", "Bg"},
		fluid.Viscosity: {"mu_o", "mu_g"},
	}
	if phase == pvt.Vapour {
		return names[prop][1]
	}
	return names[prop][0]
}

// parseProperty returns the property named s
func parseProperty(s string) (fluid.RawCurve, error) {
	switch strings.ToLower(s) {
	case "fvf", "b":
		return fluid.FVF, nil
	case "viscosity", "mu":
		return fluid.Viscosity, nil
	}
	return 0, chk.Err("property %q is invalid; options are \"fvf\" and \"viscosity\"", s)
}

// parsePhase returns the phase named s
func parsePhase(s string) (pvt.Phase, error) {
	switch strings.ToLower(s) {
	case "oil", "liquid":
		return pvt.Liquid, nil
	case "gas", "vapour":
		return pvt.Vapour, nil
	case "water", "aqua":
		return pvt.Aqua, nil
	}
	return 0, chk.Err("phase %q is invalid; options are \"oil\" and \"gas\"", s)
}

// parseFloats converts the values of flag name to numbers
func parseFloats(name string, ss []string) (res []float64, err error) {
	res = make([]float64, len(ss))
	for i, s := range ss {
		res[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, chk.Err("value %q of --%s is not a number", s, name)
		}
	}
	return
}
