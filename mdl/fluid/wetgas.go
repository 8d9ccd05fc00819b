// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// WetGas implements the wet gas model (PVTG)
//
//	Each node is keyed by Pg and holds rows {Rv, Bg, μg}; the first row is
//	the saturated state (dew point)
type WetGas struct {
	keyedTables
}

// add model to factory
func init() {
	gasAllocators["pvtg"] = func() Gas { return new(WetGas) }
}

// Init initialises model
func (o *WetGas) Init(prms dbf.Params, tables []Table) (err error) {
	err = o.init("pvtg", tables)
	if err != nil {
		return
	}
	for r, reg := range o.regs {
		for k := range reg.keys {
			if !monotone(reg.x[k]) {
				return chk.Err("pvtg: Rv values of node %d in region %d must be strictly monotone", k, r+1)
			}
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o WetGas) GetPrms(example bool) dbf.Params {
	return nil
}

// Layout returns the physical quantities in tables
func (o WetGas) Layout() Layout {
	return Layout{
		Keyed: true,
		Key:   units.Pressure,
		Cols:  []units.Quantity{units.VaporisedOilGasRatio, units.GasFVF, units.Viscosity},
	}
}

// NumRegions returns the number of regions
func (o *WetGas) NumRegions() int { return len(o.regs) }

// Curve returns the tabulated curve
//
//	FVF and Viscosity: one graph per Pg node with Rv on the first column
//	SaturatedState:    one graph {Pg, Rv_sat}
func (o *WetGas) Curve(kind RawCurve, regID int) []Graph {
	switch kind {
	case FVF:
		return o.branches(byB, regID)
	case Viscosity:
		return o.branches(byMu, regID)
	case SaturatedState:
		return o.saturated(regID, true)
	}
	return emptyCurve()
}

// FormationVolumeFactor computes Bg(Rv, Pg)
func (o *WetGas) FormationVolumeFactor(regID int, rv, pg []float64) []float64 {
	checkSizes(o.name, rv, pg)
	return o.eval(byB, regID, pg, rv)
}

// Viscosity computes μg(Rv, Pg)
func (o *WetGas) Viscosity(regID int, rv, pg []float64) []float64 {
	checkSizes(o.name, rv, pg)
	return o.eval(byMu, regID, pg, rv)
}

// SaturatedRv computes Rv at the dew point for each Pg
func (o *WetGas) SaturatedRv(regID int, pg []float64) []float64 {
	return o.lookupSaturated(regID, pg, true)
}
