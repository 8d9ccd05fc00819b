// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// deadTables holds immiscible PVT tables with rows {p, B, μ}
type deadTables struct {
	name string      // keyword; e.g. "pvdo"
	p    [][]float64 // [nreg][nrows] pressure
	b    [][]float64 // [nreg][nrows] formation volume factor
	mu   [][]float64 // [nreg][nrows] viscosity
}

// init initialises tables
func (o *deadTables) init(name string, tables []Table) (err error) {
	o.name = name
	if len(tables) == 0 {
		return chk.Err("%s: at least one table is required", name)
	}
	nreg := len(tables)
	o.p, o.b, o.mu = make([][]float64, nreg), make([][]float64, nreg), make([][]float64, nreg)
	for r, tab := range tables {
		nodes := tab.GetNodes()
		if len(nodes) != 1 {
			return chk.Err("%s: table of region %d must have exactly one node; %d found", name, r+1, len(nodes))
		}
		rows := nodes[0].Rows
		for i, row := range rows {
			if len(row) != 3 {
				return chk.Err("%s: row %d of region %d must have 3 columns {p, B, mu}", name, i, r+1)
			}
			if i > 0 && row[0] <= rows[i-1][0] {
				return chk.Err("%s: pressures in region %d must be strictly increasing", name, r+1)
			}
			if row[1] <= 0 || row[2] <= 0 {
				return chk.Err("%s: FVF and viscosity in region %d must be positive; row %d = %v", name, r+1, i, row)
			}
		}
		o.p[r], o.b[r], o.mu[r] = column(rows, 0), column(rows, 1), column(rows, 2)
	}
	return
}

// numRegions returns the number of regions
func (o *deadTables) numRegions() int {
	return len(o.p)
}

// curve returns a copy of the tabulated curve
func (o *deadTables) curve(kind RawCurve, regID int) []Graph {
	checkRegion(o.name, regID, len(o.p))
	switch kind {
	case FVF:
		return []Graph{{X: clone(o.p[regID]), Y: clone(o.b[regID])}}
	case Viscosity:
		return []Graph{{X: clone(o.p[regID]), Y: clone(o.mu[regID])}}
	}
	return emptyCurve()
}

// eval interpolates y(p) for all pressures
func (o *deadTables) eval(y [][]float64, regID int, press []float64) (res []float64) {
	checkRegion(o.name, regID, len(o.p))
	res = make([]float64, len(press))
	for k, p := range press {
		res[k] = interp1(o.p[regID], y[regID], p)
	}
	return
}

// DeadOil implements the dead oil model (PVDO): rows {Po, Bo, μo}
type DeadOil struct {
	deadTables
}

// DryGas implements the dry gas model (PVDG): rows {Pg, Bg, μg}
type DryGas struct {
	deadTables
}

// add models to factory
func init() {
	oilAllocators["pvdo"] = func() Oil { return new(DeadOil) }
	gasAllocators["pvdg"] = func() Gas { return new(DryGas) }
}

// Init initialises model
func (o *DeadOil) Init(prms dbf.Params, tables []Table) error {
	return o.init("pvdo", tables)
}

// GetPrms gets (an example) of parameters
func (o DeadOil) GetPrms(example bool) dbf.Params {
	return nil
}

// Layout returns the physical quantities in tables
func (o DeadOil) Layout() Layout {
	return Layout{Cols: []units.Quantity{units.Pressure, units.OilFVF, units.Viscosity}}
}

// NumRegions returns the number of regions
func (o *DeadOil) NumRegions() int { return o.numRegions() }

// Curve returns the FVF or viscosity curve; the saturated state curve is empty
func (o *DeadOil) Curve(kind RawCurve, regID int) []Graph {
	return o.curve(kind, regID)
}

// FormationVolumeFactor computes Bo; Rs is ignored
func (o *DeadOil) FormationVolumeFactor(regID int, rs, po []float64) []float64 {
	checkSizes(o.name, rs, po)
	return o.eval(o.b, regID, po)
}

// Viscosity computes μo; Rs is ignored
func (o *DeadOil) Viscosity(regID int, rs, po []float64) []float64 {
	checkSizes(o.name, rs, po)
	return o.eval(o.mu, regID, po)
}

// SaturatedRs returns zeros (no dissolved gas)
func (o *DeadOil) SaturatedRs(regID int, po []float64) []float64 {
	checkRegion(o.name, regID, len(o.p))
	return make([]float64, len(po))
}

// Init initialises model
func (o *DryGas) Init(prms dbf.Params, tables []Table) error {
	return o.init("pvdg", tables)
}

// GetPrms gets (an example) of parameters
func (o DryGas) GetPrms(example bool) dbf.Params {
	return nil
}

// Layout returns the physical quantities in tables
func (o DryGas) Layout() Layout {
	return Layout{Cols: []units.Quantity{units.Pressure, units.GasFVF, units.Viscosity}}
}

// NumRegions returns the number of regions
func (o *DryGas) NumRegions() int { return o.numRegions() }

// Curve returns the FVF or viscosity curve; the saturated state curve is empty
func (o *DryGas) Curve(kind RawCurve, regID int) []Graph {
	return o.curve(kind, regID)
}

// FormationVolumeFactor computes Bg; Rv is ignored
func (o *DryGas) FormationVolumeFactor(regID int, rv, pg []float64) []float64 {
	checkSizes(o.name, rv, pg)
	return o.eval(o.b, regID, pg)
}

// Viscosity computes μg; Rv is ignored
func (o *DryGas) Viscosity(regID int, rv, pg []float64) []float64 {
	checkSizes(o.name, rv, pg)
	return o.eval(o.mu, regID, pg)
}

// SaturatedRv returns zeros (no vaporised oil)
func (o *DryGas) SaturatedRv(regID int, pg []float64) []float64 {
	checkRegion(o.name, regID, len(o.p))
	return make([]float64, len(pg))
}
