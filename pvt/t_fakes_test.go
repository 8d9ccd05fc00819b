// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"math"
	"testing"

	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// fakeModel returns constant properties per region and records its inputs
type fakeModel struct {
	curves map[fluid.RawCurve][]fluid.Graph // curves returned for every region
	b      []float64                        // [nreg] formation volume factor
	mu     []float64                        // [nreg] viscosity

	// recorded
	reg   int       // last region
	ratio []float64 // last mixing ratios
	press []float64 // last pressures
}

func (o *fakeModel) Init(prms dbf.Params, tables []fluid.Table) error { return nil }
func (o *fakeModel) GetPrms(example bool) dbf.Params                  { return nil }
func (o *fakeModel) Layout() fluid.Layout                             { return fluid.Layout{} }
func (o *fakeModel) NumRegions() int                                  { return len(o.b) }

func (o *fakeModel) Curve(kind fluid.RawCurve, regID int) (res []fluid.Graph) {
	o.reg = regID
	crv, ok := o.curves[kind]
	if !ok {
		return []fluid.Graph{{}}
	}
	for _, g := range crv {
		res = append(res, fluid.Graph{X: append([]float64(nil), g.X...), Y: append([]float64(nil), g.Y...)})
	}
	return
}

func (o *fakeModel) eval(vals []float64, regID int, ratio, press []float64) []float64 {
	o.reg = regID
	o.ratio = append([]float64(nil), ratio...)
	o.press = append([]float64(nil), press...)
	res := make([]float64, len(press))
	for i := range res {
		res[i] = vals[regID]
	}
	return res
}

func (o *fakeModel) FormationVolumeFactor(regID int, ratio, press []float64) []float64 {
	return o.eval(o.b, regID, ratio, press)
}

func (o *fakeModel) Viscosity(regID int, ratio, press []float64) []float64 {
	return o.eval(o.mu, regID, ratio, press)
}

type fakeOil struct{ fakeModel }

func (o *fakeOil) SaturatedRs(regID int, press []float64) []float64 {
	return make([]float64, len(press))
}

type fakeGas struct{ fakeModel }

func (o *fakeGas) SaturatedRv(regID int, press []float64) []float64 {
	return make([]float64, len(press))
}

// newFakeOil returns an oil model with two regions
func newFakeOil() *fakeOil {
	return &fakeOil{fakeModel{
		curves: map[fluid.RawCurve][]fluid.Graph{
			fluid.FVF:            {{X: []float64{100e5, 200e5}, Y: []float64{1.25, 1.2}}, {X: []float64{150e5, 250e5}, Y: []float64{1.3, 1.28}}},
			fluid.Viscosity:      {{X: []float64{100e5, 200e5}, Y: []float64{1.5e-3, 1.6e-3}}},
			fluid.SaturatedState: {{X: []float64{100e5, 150e5}, Y: []float64{50, 90}}},
		},
		b:  []float64{1.2, 1.1},
		mu: []float64{1.5e-3, 2.5e-3},
	}}
}

// newFakeGas returns a gas model with two regions
//
//	miscible -- FVF and viscosity curves have two graphs
func newFakeGas(miscible bool) *fakeGas {
	o := &fakeGas{fakeModel{
		curves: map[fluid.RawCurve][]fluid.Graph{
			fluid.FVF:            {{X: []float64{100e5, 200e5}, Y: []float64{0.01, 0.005}}},
			fluid.Viscosity:      {{X: []float64{100e5, 200e5}, Y: []float64{1.5e-5, 2e-5}}},
			fluid.SaturatedState: {{X: []float64{100e5, 200e5}, Y: []float64{2e-4, 4e-4}}},
		},
		b:  []float64{0.01, 0.02},
		mu: []float64{1.5e-5, 1.8e-5},
	}}
	if miscible {
		o.curves[fluid.FVF] = []fluid.Graph{{X: []float64{2e-4, 0}, Y: []float64{0.010, 0.011}}, {X: []float64{4e-4, 0}, Y: []float64{0.005, 0.006}}}
		o.curves[fluid.Viscosity] = []fluid.Graph{{X: []float64{2e-4, 0}, Y: []float64{1.5e-5, 1.4e-5}}, {X: []float64{4e-4, 0}, Y: []float64{2e-5, 1.9e-5}}}
	}
	return o
}

// checkRel checks that a and b are equal with relative tolerance tol
func checkRel(tst *testing.T, msg string, tol float64, a, b []float64) {
	if len(a) != len(b) {
		tst.Errorf("%s: lengths are different: %d != %d\n", msg, len(a), len(b))
		return
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol*math.Max(math.Abs(b[i]), 1e-300) {
			tst.Errorf("%s: values at %d are different: %g != %g\n", msg, i, a[i], b[i])
			return
		}
	}
}

// isEmptyCurve returns whether crv has exactly one empty graph
func isEmptyCurve(crv []fluid.Graph) bool {
	return len(crv) == 1 && crv[0].Empty()
}
