// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"strings"

	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// ComprOil implements the dead oil model with constant compressibility (PVCDO)
//
//	Each region has one row {Pref, Bref, Co, μref, Cv}:
//	  Bo(p)    = Bref / (1 + X + X²/2)             with X = Co・(p - Pref)
//	  Bo(p)μo(p) = Bref・μref / (1 + Y + Y²/2)     with Y = (Co - Cv)・(p - Pref)
//	Curves are sampled with np points in [pmin, pmax]; an unset pmin
//	defaults to Pref/2 and an unset pmax to 3Pref/2
type ComprOil struct {

	// data
	pref []float64 // [nreg] reference pressure
	bref []float64 // [nreg] Bo at reference pressure
	co   []float64 // [nreg] compressibility
	mref []float64 // [nreg] viscosity at reference pressure
	cv   []float64 // [nreg] viscosibility

	// parameters
	pmin float64 // minimum pressure for curves
	pmax float64 // maximum pressure for curves
	np   int     // number of points for curves
}

// add model to factory
func init() {
	oilAllocators["pvcdo"] = func() Oil { return new(ComprOil) }
}

// Init initialises model
func (o *ComprOil) Init(prms dbf.Params, tables []Table) (err error) {
	o.np = 21
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pmin":
			o.pmin = p.V
		case "pmax":
			o.pmax = p.V
		case "np":
			o.np = int(p.V)
		default:
			return chk.Err("pvcdo: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.np < 2 {
		return chk.Err("pvcdo: number of points for curves must be at least 2; np = %d", o.np)
	}
	if o.pmin > 0 && o.pmax > 0 && o.pmin >= o.pmax {
		return chk.Err("pvcdo: pmin must be smaller than pmax; pmin = %g, pmax = %g", o.pmin, o.pmax)
	}
	if len(tables) == 0 {
		return chk.Err("pvcdo: at least one table is required")
	}
	nreg := len(tables)
	o.pref, o.bref, o.co = make([]float64, nreg), make([]float64, nreg), make([]float64, nreg)
	o.mref, o.cv = make([]float64, nreg), make([]float64, nreg)
	for r, tab := range tables {
		nodes := tab.GetNodes()
		if len(nodes) != 1 || len(nodes[0].Rows) != 1 {
			return chk.Err("pvcdo: table of region %d must have exactly one row", r+1)
		}
		row := nodes[0].Rows[0]
		if len(row) != 5 {
			return chk.Err("pvcdo: row of region %d must have 5 columns {Pref, Bref, Co, mu_ref, Cv}", r+1)
		}
		if row[1] <= 0 || row[3] <= 0 {
			return chk.Err("pvcdo: Bref and mu_ref in region %d must be positive", r+1)
		}
		o.pref[r], o.bref[r], o.co[r], o.mref[r], o.cv[r] = row[0], row[1], row[2], row[3], row[4]
		if pmin, pmax := o.limits(r); pmin >= pmax {
			return chk.Err("pvcdo: pressure range of curves in region %d is empty; pmin = %g, pmax = %g", r+1, pmin, pmax)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ComprOil) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pmin", V: 1.0e5}, // [Pa]
			&dbf.P{N: "pmax", V: 400e5}, // [Pa]
			&dbf.P{N: "np", V: 21},      // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "pmin", V: o.pmin},
		&dbf.P{N: "pmax", V: o.pmax},
		&dbf.P{N: "np", V: float64(o.np)},
	}
}

// Layout returns the physical quantities in tables and parameters
func (o ComprOil) Layout() Layout {
	return Layout{
		Cols: []units.Quantity{units.Pressure, units.OilFVF, units.Compressibility, units.Viscosity, units.Compressibility},
		Prms: map[string]units.Quantity{"pmin": units.Pressure, "pmax": units.Pressure},
	}
}

// NumRegions returns the number of regions
func (o *ComprOil) NumRegions() int { return len(o.pref) }

// Curve returns FVF or viscosity sampled in [pmin, pmax]; the saturated state curve is empty
func (o *ComprOil) Curve(kind RawCurve, regID int) []Graph {
	checkRegion("pvcdo", regID, len(o.pref))
	if kind != FVF && kind != Viscosity {
		return emptyCurve()
	}
	pmin, pmax := o.limits(regID)
	P := utl.LinSpace(pmin, pmax, o.np)
	Y := make([]float64, o.np)
	for i, p := range P {
		if kind == FVF {
			Y[i] = o.bo(regID, p)
		} else {
			Y[i] = o.muo(regID, p)
		}
	}
	return []Graph{{X: P, Y: Y}}
}

// FormationVolumeFactor computes Bo(Po); Rs is ignored
func (o *ComprOil) FormationVolumeFactor(regID int, rs, po []float64) (res []float64) {
	checkRegion("pvcdo", regID, len(o.pref))
	checkSizes("pvcdo", rs, po)
	res = make([]float64, len(po))
	for i, p := range po {
		res[i] = o.bo(regID, p)
	}
	return
}

// Viscosity computes μo(Po); Rs is ignored
func (o *ComprOil) Viscosity(regID int, rs, po []float64) (res []float64) {
	checkRegion("pvcdo", regID, len(o.pref))
	checkSizes("pvcdo", rs, po)
	res = make([]float64, len(po))
	for i, p := range po {
		res[i] = o.muo(regID, p)
	}
	return
}

// SaturatedRs returns zeros (no dissolved gas)
func (o *ComprOil) SaturatedRs(regID int, po []float64) []float64 {
	checkRegion("pvcdo", regID, len(o.pref))
	return make([]float64, len(po))
}

// limits returns the pressure range of curves in region r; unset limits
// default to Pref/2 and 3Pref/2
func (o *ComprOil) limits(r int) (pmin, pmax float64) {
	pmin, pmax = o.pmin, o.pmax
	if pmin <= 0 {
		pmin = 0.5 * o.pref[r]
	}
	if pmax <= 0 {
		pmax = 1.5 * o.pref[r]
	}
	return
}

// bo computes Bo at p
func (o *ComprOil) bo(r int, p float64) float64 {
	x := o.co[r] * (p - o.pref[r])
	return o.bref[r] / (1.0 + x + x*x/2.0)
}

// muo computes μo at p
func (o *ComprOil) muo(r int, p float64) float64 {
	y := (o.co[r] - o.cv[r]) * (p - o.pref[r])
	return o.bref[r] * o.mref[r] / ((1.0 + y + y*y/2.0) * o.bo(r, p))
}
