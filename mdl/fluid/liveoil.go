// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LiveOil implements the live oil model (PVTO)
//
//	Each node is keyed by Rs and holds rows {Po, Bo, μo}; the first row is
//	the saturated state (bubble point). Nodes given with the saturated row
//	only borrow the undersaturated branch of the next node that has one
type LiveOil struct {
	keyedTables
}

// add model to factory
func init() {
	oilAllocators["pvto"] = func() Oil { return new(LiveOil) }
}

// Init initialises model
func (o *LiveOil) Init(prms dbf.Params, tables []Table) (err error) {
	err = o.init("pvto", tables)
	if err != nil {
		return
	}
	for r := range o.regs {
		reg := &o.regs[r]
		for k := range reg.keys {
			for i := 1; i < len(reg.x[k]); i++ {
				if reg.x[k][i] <= reg.x[k][i-1] {
					return chk.Err("pvto: pressures of node %d in region %d must be strictly increasing", k, r+1)
				}
			}
			if k > 0 && reg.x[k][0] <= reg.x[k-1][0] {
				return chk.Err("pvto: saturated pressures in region %d must increase with Rs; Psat = %g at node %d and %g at node %d", r+1, reg.x[k-1][0], k-1, reg.x[k][0], k)
			}
		}
		err = o.extend(reg, r)
		if err != nil {
			return
		}
	}
	return
}

// extend completes nodes without undersaturated rows
func (o *LiveOil) extend(reg *keyedRegion, r int) error {
	n := len(reg.keys)
	for k := n - 1; k >= 0; k-- {
		if len(reg.x[k]) > 1 {
			continue
		}
		src := -1
		for m := k + 1; m < n; m++ {
			if len(reg.x[m]) > 1 {
				src = m
				break
			}
		}
		if src < 0 {
			return chk.Err("pvto: last node in region %d must have undersaturated data", r+1)
		}
		psat, bsat, musat := reg.x[k][0], reg.b[k][0], reg.mu[k][0]
		ps, bs, mus := reg.x[src], reg.b[src], reg.mu[src]
		nr := len(ps)
		reg.x[k] = make([]float64, nr)
		reg.b[k] = make([]float64, nr)
		reg.mu[k] = make([]float64, nr)
		for i := 0; i < nr; i++ {
			reg.x[k][i] = psat + (ps[i] - ps[0])
			reg.b[k][i] = bsat * bs[i] / bs[0]
			reg.mu[k][i] = musat * mus[i] / mus[0]
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o LiveOil) GetPrms(example bool) dbf.Params {
	return nil
}

// Layout returns the physical quantities in tables
func (o LiveOil) Layout() Layout {
	return Layout{
		Keyed: true,
		Key:   units.DissolvedGasOilRatio,
		Cols:  []units.Quantity{units.Pressure, units.OilFVF, units.Viscosity},
	}
}

// NumRegions returns the number of regions
func (o *LiveOil) NumRegions() int { return len(o.regs) }

// Curve returns the tabulated curve
//
//	FVF and Viscosity: one graph per Rs node with Po on the first column
//	SaturatedState:    one graph {Psat, Rs}
func (o *LiveOil) Curve(kind RawCurve, regID int) []Graph {
	switch kind {
	case FVF:
		return o.branches(byB, regID)
	case Viscosity:
		return o.branches(byMu, regID)
	case SaturatedState:
		return o.saturated(regID, false)
	}
	return emptyCurve()
}

// FormationVolumeFactor computes Bo(Rs, Po)
func (o *LiveOil) FormationVolumeFactor(regID int, rs, po []float64) []float64 {
	checkSizes(o.name, rs, po)
	return o.eval(byB, regID, rs, po)
}

// Viscosity computes μo(Rs, Po)
func (o *LiveOil) Viscosity(regID int, rs, po []float64) []float64 {
	checkSizes(o.name, rs, po)
	return o.eval(byMu, regID, rs, po)
}

// SaturatedRs computes Rs at the bubble point for each Po
func (o *LiveOil) SaturatedRs(regID int, po []float64) []float64 {
	return o.lookupSaturated(regID, po, false)
}
