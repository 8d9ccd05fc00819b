// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"testing"

	"github.com/cpmech/ecpvt/inp"
	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// newCollection returns a collection with tags = [1,1,2] and fake models
func newCollection(tst *testing.T, oil fluid.Oil, gas fluid.Gas, native units.System) *CurveCollection {
	reg, err := NewRegionMap([]int{1, 1, 2}, 3)
	if err != nil {
		tst.Fatalf("NewRegionMap failed: %v\n", err)
	}
	return New(reg, oil, gas, native)
}

func Test_coll01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll01. invalid requests give empty results")

	coll := newCollection(tst, newFakeOil(), newFakeGas(false), units.Metric())
	press := []float64{200e5}

	for _, phase := range []Phase{Aqua, Phase(-1), Phase(7)} {
		for _, kind := range []fluid.RawCurve{fluid.FVF, fluid.Viscosity, fluid.SaturatedState} {
			if !isEmptyCurve(coll.PvtCurve(kind, phase, 0)) {
				tst.Errorf("curve %v of phase %v should be empty\n", kind, phase)
			}
		}
		chk.Int(tst, "len(SI("+phase.String()+"))", len(coll.DynamicPropertySI(fluid.FVF, phase, 0, press, nil)), 0)
		chk.Int(tst, "len(native("+phase.String()+"))", len(coll.DynamicPropertyNative(fluid.FVF, phase, 0, press, nil)), 0)
	}

	for _, cell := range []int{-1, 3, 5} {
		if !isEmptyCurve(coll.PvtCurve(fluid.FVF, Liquid, cell)) {
			tst.Errorf("curve of cell %d should be empty\n", cell)
		}
		chk.Int(tst, io.Sf("len(SI(cell=%d))", cell), len(coll.DynamicPropertySI(fluid.FVF, Vapour, cell, press, nil)), 0)
		chk.Int(tst, io.Sf("len(native(cell=%d))", cell), len(coll.DynamicPropertyNative(fluid.Viscosity, Liquid, cell, press, nil)), 0)
	}

	// saturated state is not a dynamic property
	chk.Int(tst, "len(SI(SaturatedState))", len(coll.DynamicPropertySI(fluid.SaturatedState, Liquid, 0, press, nil)), 0)
	chk.Int(tst, "len(native(SaturatedState))", len(coll.DynamicPropertyNative(fluid.SaturatedState, Liquid, 0, press, nil)), 0)

	// mixing ratios and pressures must have the same length
	chk.Int(tst, "len(SI(mismatch))", len(coll.DynamicPropertySI(fluid.FVF, Liquid, 0, []float64{1e5, 2e5}, []float64{1})), 0)
}

func Test_coll02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll02. phases without data")

	coll := newCollection(tst, nil, nil, units.Field())
	coll.SetOutputUnits(units.Field())
	for _, phase := range []Phase{Liquid, Vapour} {
		for _, kind := range []fluid.RawCurve{fluid.FVF, fluid.Viscosity, fluid.SaturatedState} {
			if !isEmptyCurve(coll.PvtCurve(kind, phase, 1)) {
				tst.Errorf("curve %v of phase %v should be empty\n", kind, phase)
			}
		}
		chk.Int(tst, "len(SI)", len(coll.DynamicPropertySI(fluid.Viscosity, phase, 1, []float64{1e7}, nil)), 0)
		chk.Int(tst, "len(native)", len(coll.DynamicPropertyNative(fluid.Viscosity, phase, 1, []float64{1e3}, nil)), 0)
	}
}

func Test_coll03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll03. region resolution")

	oil := newFakeOil()
	coll := newCollection(tst, oil, nil, units.Internal())
	chk.Int(tst, "ncells", coll.NumCells(), 3)

	bo := coll.DynamicPropertySI(fluid.FVF, Liquid, 0, []float64{200}, []float64{0})
	chk.Array(tst, "Bo(cell=0)", 1e-15, bo, []float64{1.2})
	chk.Int(tst, "region(cell=0)", oil.reg, 0)
	chk.Array(tst, "Rs(cell=0)", 1e-15, oil.ratio, []float64{0})
	chk.Array(tst, "Po(cell=0)", 1e-15, oil.press, []float64{200})

	bo = coll.DynamicPropertySI(fluid.FVF, Liquid, 2, []float64{200}, nil)
	chk.Array(tst, "Bo(cell=2)", 1e-15, bo, []float64{1.1})
	chk.Int(tst, "region(cell=2)", oil.reg, 1)

	chk.Int(tst, "len(Bo(cell=5))", len(coll.DynamicPropertySI(fluid.FVF, Liquid, 5, []float64{200}, []float64{0})), 0)

	mu := coll.DynamicPropertySI(fluid.Viscosity, Liquid, 1, []float64{100, 200, 300}, nil)
	chk.Array(tst, "μo(cell=1)", 1e-15, mu, []float64{1.5e-3, 1.5e-3, 1.5e-3})
	chk.Int(tst, "region(cell=1)", oil.reg, 0)

	coll.PvtCurve(fluid.FVF, Liquid, 2)
	chk.Int(tst, "region of curve (cell=2)", oil.reg, 1)
}

func Test_coll04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll04. empty mixing ratio means zero")

	oil := newFakeOil()
	coll := newCollection(tst, oil, newFakeGas(true), units.Field())
	coll.SetOutputUnits(units.Field())

	press := []float64{1000, 2000, 3000}
	a := coll.DynamicPropertyNative(fluid.FVF, Liquid, 0, press, nil)
	ratio1 := oil.ratio
	b := coll.DynamicPropertyNative(fluid.FVF, Liquid, 0, press, []float64{0, 0, 0})
	ratio2 := oil.ratio
	chk.Array(tst, "Bo(nil) == Bo(zeros)", 1e-15, a, b)
	chk.Array(tst, "Rs(nil)", 1e-15, ratio1, []float64{0, 0, 0})
	chk.Array(tst, "Rs(zeros)", 1e-15, ratio2, []float64{0, 0, 0})
	chk.Array(tst, "press", 1e-15, press, []float64{1000, 2000, 3000})
}

func Test_coll05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll05. native inputs are converted and not modified")

	oil, gas := newFakeOil(), newFakeGas(true)
	coll := newCollection(tst, oil, gas, units.Field())

	// oil: psia and Mscf/stb => SI
	press := []float64{1000, 2000}
	rs := []float64{0.5, 1.0}
	bo := coll.DynamicPropertyNative(fluid.FVF, Liquid, 0, press, rs)
	chk.Array(tst, "press", 1e-15, press, []float64{1000, 2000})
	chk.Array(tst, "rs", 1e-15, rs, []float64{0.5, 1.0})
	checkRel(tst, "Po(SI)", 1e-14, oil.press, []float64{1000 * units.Psia, 2000 * units.Psia})
	checkRel(tst, "Rs(SI)", 1e-14, oil.ratio, []float64{0.5 * units.Mscf / units.Barrel, 1.0 * units.Mscf / units.Barrel})

	// no output units => SI
	chk.Array(tst, "Bo(SI)", 1e-15, bo, []float64{1.2, 1.2})

	// gas: psia and stb/Mscf => SI
	rv := []float64{0.1, 0.2}
	coll.DynamicPropertyNative(fluid.Viscosity, Vapour, 2, press, rv)
	chk.Array(tst, "rv", 1e-15, rv, []float64{0.1, 0.2})
	chk.Int(tst, "region", gas.reg, 1)
	checkRel(tst, "Pg(SI)", 1e-14, gas.press, []float64{1000 * units.Psia, 2000 * units.Psia})
	checkRel(tst, "Rv(SI)", 1e-14, gas.ratio, []float64{0.1 * units.Barrel / units.Mscf, 0.2 * units.Barrel / units.Mscf})

	// output units
	coll.SetOutputUnits(units.Field())
	bg := coll.DynamicPropertyNative(fluid.FVF, Vapour, 2, press, rv)
	checkRel(tst, "Bg(field)", 1e-14, bg, []float64{0.02 * units.Mscf / units.Barrel, 0.02 * units.Mscf / units.Barrel})
	mu := coll.DynamicPropertyNative(fluid.Viscosity, Liquid, 2, press, rs)
	checkRel(tst, "μo(field)", 1e-14, mu, []float64{2.5, 2.5})
}

func Test_coll06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll06. output units of curves")

	oil := newFakeOil()
	coll := newCollection(tst, oil, newFakeGas(false), units.Metric())

	// SI
	crv := coll.PvtCurve(fluid.SaturatedState, Liquid, 0)
	chk.Int(tst, "len(curve)", len(crv), 1)
	chk.Array(tst, "Psat(SI)", 1e-15, crv[0].X, []float64{100e5, 150e5})
	chk.Array(tst, "Rs(SI)", 1e-15, crv[0].Y, []float64{50, 90})

	// metric
	coll.SetOutputUnits(units.Metric())
	crv = coll.PvtCurve(fluid.SaturatedState, Liquid, 0)
	chk.Array(tst, "Psat(metric)", 1e-12, crv[0].X, []float64{100, 150})
	chk.Array(tst, "Rs(metric)", 1e-12, crv[0].Y, []float64{50, 90})

	crv = coll.PvtCurve(fluid.Viscosity, Vapour, 0)
	chk.Array(tst, "Pg(metric)", 1e-12, crv[0].X, []float64{100, 200})
	chk.Array(tst, "μg(metric)", 1e-15, crv[0].Y, []float64{1.5e-2, 2e-2})

	// back to SI
	coll.SetOutputUnits(nil)
	crv = coll.PvtCurve(fluid.FVF, Liquid, 0)
	chk.Int(tst, "len(curve)", len(crv), 2)
	chk.Array(tst, "Po(SI)", 1e-15, crv[1].X, []float64{150e5, 250e5})
	chk.Array(tst, "Bo(SI)", 1e-15, crv[1].Y, []float64{1.3, 1.28})
	bo := coll.DynamicPropertyNative(fluid.FVF, Liquid, 0, []float64{100}, nil)
	chk.Array(tst, "Bo(SI)", 1e-15, bo, []float64{1.2})
	checkRel(tst, "Po(SI)", 1e-14, oil.press, []float64{100e5})

	// curves of the model are not modified by conversions
	coll.SetOutputUnits(units.Field())
	coll.PvtCurve(fluid.FVF, Liquid, 0)
	chk.Array(tst, "model curve", 1e-15, oil.curves[fluid.FVF][0].X, []float64{100e5, 200e5})
}

func Test_coll07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll07. miscible and immiscible gas curves")

	fp := units.Pressure.From(units.Internal()).To(units.Field()).Factor()
	fr := units.VaporisedOilGasRatio.From(units.Internal()).To(units.Field()).Factor()
	fb := units.GasFVF.From(units.Internal()).To(units.Field()).Factor()
	io.Pforan("fp = %v, fr = %v, fb = %v\n", fp, fr, fb)
	checkRel(tst, "fp", 1e-15, []float64{fp}, []float64{1 / units.Psia})
	checkRel(tst, "fr", 1e-15, []float64{fr}, []float64{units.Mscf / units.Barrel})
	checkRel(tst, "fb", 1e-15, []float64{fb}, []float64{units.Mscf / units.Barrel})

	// one graph: x is pressure
	coll := newCollection(tst, nil, newFakeGas(false), units.Metric())
	coll.SetOutputUnits(units.Field())
	crv := coll.PvtCurve(fluid.FVF, Vapour, 0)
	chk.Int(tst, "len(curve)", len(crv), 1)
	checkRel(tst, "Pg(field)", 1e-14, crv[0].X, []float64{100e5 * fp, 200e5 * fp})
	checkRel(tst, "Bg(field)", 1e-14, crv[0].Y, []float64{0.01 * fb, 0.005 * fb})

	// two graphs: x is Rv
	coll = newCollection(tst, nil, newFakeGas(true), units.Metric())
	coll.SetOutputUnits(units.Field())
	crv = coll.PvtCurve(fluid.FVF, Vapour, 0)
	chk.Int(tst, "len(curve)", len(crv), 2)
	checkRel(tst, "Rv(field)", 1e-14, crv[1].X, []float64{4e-4 * fr, 0})
	checkRel(tst, "Bg(field)", 1e-14, crv[1].Y, []float64{0.005 * fb, 0.006 * fb})
	crv = coll.PvtCurve(fluid.Viscosity, Vapour, 0)
	checkRel(tst, "Rv(field)", 1e-14, crv[0].X, []float64{2e-4 * fr, 0})
	checkRel(tst, "μg(field)", 1e-14, crv[0].Y, []float64{1.5e-2, 1.4e-2})

	// saturated state: x is pressure
	crv = coll.PvtCurve(fluid.SaturatedState, Vapour, 0)
	checkRel(tst, "Pd(field)", 1e-14, crv[0].X, []float64{100e5 * fp, 200e5 * fp})
	checkRel(tst, "Rv(field)", 1e-14, crv[0].Y, []float64{2e-4 * fr, 4e-4 * fr})
}

func Test_coll08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll08. unknown curves")

	oil := newFakeOil()
	coll := newCollection(tst, oil, nil, units.Metric())

	// SI: the model answers
	if !isEmptyCurve(coll.PvtCurve(fluid.RawCurve(9), Liquid, 0)) {
		tst.Errorf("unknown curve should be empty\n")
	}
	chk.Int(tst, "len(SI(unknown))", len(coll.DynamicPropertySI(fluid.RawCurve(9), Liquid, 0, []float64{1}, nil)), 0)

	// conversion panics
	coll.SetOutputUnits(units.Field())
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("converting an unknown curve should have panicked\n")
		} else {
			io.Pforan("ok, caught: %v\n", err)
		}
	}()
	coll.PvtCurve(fluid.RawCurve(9), Liquid, 0)
}

func Test_coll09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll09. collection from case file")

	c, err := inp.ReadCase("../inp/data/live.yaml")
	if err != nil {
		tst.Errorf("ReadCase failed: %v\n", err)
		return
	}
	coll, err := FromCase(c)
	if err != nil {
		tst.Errorf("FromCase failed: %v\n", err)
		return
	}
	chk.Int(tst, "ncells", coll.NumCells(), 3)

	// saturated oil in metric units
	coll.SetOutputUnits(units.Metric())
	crv := coll.PvtCurve(fluid.SaturatedState, Liquid, 0)
	chk.Int(tst, "len(curve)", len(crv), 1)
	chk.Array(tst, "Psat", 1e-10, crv[0].X, []float64{50, 100, 150})
	chk.Array(tst, "Rs", 1e-10, crv[0].Y, []float64{10, 50, 90})

	// undersaturated branches; the first node is extended
	crv = coll.PvtCurve(fluid.FVF, Liquid, 1)
	chk.Int(tst, "len(curve)", len(crv), 3)
	chk.Array(tst, "Po(Rs=50)", 1e-10, crv[1].X, []float64{100, 200})
	chk.Array(tst, "Bo(Rs=50)", 1e-12, crv[1].Y, []float64{1.20, 1.18})

	// region 2
	crv = coll.PvtCurve(fluid.FVF, Liquid, 2)
	chk.Int(tst, "len(curve)", len(crv), 1)
	chk.Array(tst, "Po(region 2)", 1e-10, crv[0].X, []float64{80, 180})

	// miscible gas
	crv = coll.PvtCurve(fluid.FVF, Vapour, 0)
	chk.Int(tst, "len(curve)", len(crv), 2)
	chk.Array(tst, "Rv(Pg=100)", 1e-15, crv[0].X, []float64{0.0002, 0})
	chk.Array(tst, "Bg(Pg=100)", 1e-15, crv[0].Y, []float64{0.010, 0.011})

	// dynamic
	bo := coll.DynamicPropertyNative(fluid.FVF, Liquid, 0, []float64{200}, []float64{50})
	chk.Array(tst, "Bo", 1e-12, bo, []float64{1.18})
	mu := coll.DynamicPropertyNative(fluid.Viscosity, Liquid, 0, []float64{100}, []float64{50})
	chk.Array(tst, "μo", 1e-12, mu, []float64{1.2})
	bg := coll.DynamicPropertyNative(fluid.FVF, Vapour, 0, []float64{100}, []float64{0})
	chk.Array(tst, "Bg", 1e-12, bg, []float64{0.011})
	chk.Int(tst, "len(Bg(cell=3))", len(coll.DynamicPropertyNative(fluid.FVF, Vapour, 3, []float64{100}, nil)), 0)
}

func Test_coll10(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coll10. case errors")

	c, err := inp.ReadCase("../inp/data/live.yaml")
	if err != nil {
		tst.Errorf("ReadCase failed: %v\n", err)
		return
	}
	c.Pvtnum = []int{1, 3, 2}
	if _, err = FromCase(c); err == nil {
		tst.Errorf("FromCase should have failed: tag 3 exceeds number of tables\n")
		return
	}
	io.Pforan("ok, error = %v\n", err)

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("New should have panicked without a region map\n")
		}
	}()
	New(nil, nil, nil, units.Metric())
}
