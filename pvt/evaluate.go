// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/gosl/chk"
)

// emptyCurve returns a curve with one empty graph
func emptyCurve() []fluid.Graph {
	return []fluid.Graph{{}}
}

// rawCurve returns the curve of model in SI units. A nil model (no
// tabulated data for the phase) gives an empty curve
func rawCurve(model fluid.Model, kind fluid.RawCurve, regID int) []fluid.Graph {
	if model == nil {
		return emptyCurve()
	}
	return model.Curve(kind, regID)
}

// oilProperty computes Bo or μo at (Rs, Po). A nil model gives an empty result
func oilProperty(model fluid.Oil, prop fluid.RawCurve, regID int, po, rs []float64) []float64 {
	if model == nil {
		return []float64{}
	}
	return property(model, prop, regID, po, rs)
}

// gasProperty computes Bg or μg at (Rv, Pg). A nil model gives an empty result
func gasProperty(model fluid.Gas, prop fluid.RawCurve, regID int, pg, rv []float64) []float64 {
	if model == nil {
		return []float64{}
	}
	return property(model, prop, regID, pg, rv)
}

// property evaluates prop; an empty mixing ratio means zero (undersaturated)
func property(model fluid.Model, prop fluid.RawCurve, regID int, press, mix []float64) []float64 {
	if len(mix) == 0 {
		mix = make([]float64, len(press))
	}
	switch prop {
	case fluid.FVF:
		return model.FormationVolumeFactor(regID, mix, press)
	case fluid.Viscosity:
		return model.Viscosity(regID, mix, press)
	}
	chk.Panic("internal logic error: property %v cannot be evaluated dynamically", prop)
	return nil
}
