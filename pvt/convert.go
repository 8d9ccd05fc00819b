// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
)

// shape classifies curves by number of graphs. Miscible fluids give one
// graph per fixed mixing ratio (or pressure); immiscible data give one graph
type shape int

// shapes
const (
	empty    shape = iota // no graphs
	single                // one graph: immiscible
	multiple              // more than one graph: miscible
)

// shapeOf returns the shape of curve
func shapeOf(curve []fluid.Graph) shape {
	switch n := len(curve); {
	case n == 0:
		return empty
	case n == 1:
		return single
	}
	return multiple
}

// axes returns the quantities on the first (x) and second (y) columns of a curve
//
//	curve           phase   shape      x                      y
//	FVF             Liquid  any        Pressure               OilFVF
//	FVF             Vapour  ≤1 graph   Pressure               GasFVF
//	FVF             Vapour  >1 graph   VaporisedOilGasRatio   GasFVF
//	Viscosity       Liquid  any        Pressure               Viscosity
//	Viscosity       Vapour  ≤1 graph   Pressure               Viscosity
//	Viscosity       Vapour  >1 graph   VaporisedOilGasRatio   Viscosity
//	SaturatedState  Liquid  any        Pressure               DissolvedGasOilRatio
//	SaturatedState  Vapour  any        Pressure               VaporisedOilGasRatio
func axes(curve fluid.RawCurve, phase Phase, s shape) (x, y units.Quantity) {
	if phase != Liquid && phase != Vapour {
		chk.Panic("internal logic error: phase %v is not supported", phase)
	}
	misciblegas := phase == Vapour && s == multiple
	switch curve {
	case fluid.FVF:
		if phase == Liquid {
			return units.Pressure, units.OilFVF
		}
		if misciblegas {
			return units.VaporisedOilGasRatio, units.GasFVF
		}
		return units.Pressure, units.GasFVF
	case fluid.Viscosity:
		if misciblegas {
			return units.VaporisedOilGasRatio, units.Viscosity
		}
		return units.Pressure, units.Viscosity
	case fluid.SaturatedState:
		if phase == Liquid {
			return units.Pressure, units.DissolvedGasOilRatio
		}
		return units.Pressure, units.VaporisedOilGasRatio
	}
	chk.Panic("internal logic error: curve %v cannot be converted", curve)
	return
}

// CurveAxes returns the quantities on the axes of a curve returned by PvtCurve
func CurveAxes(kind fluid.RawCurve, phase Phase, curve []fluid.Graph) (x, y units.Quantity) {
	return axes(kind, phase, shapeOf(curve))
}

// convertCurve converts both columns of all graphs in curve and returns it
func convertCurve(curve []fluid.Graph, kind fluid.RawCurve, phase Phase, from, to units.System) []fluid.Graph {
	qx, qy := axes(kind, phase, shapeOf(curve))
	cx, cy := qx.From(from).To(to), qy.From(from).To(to)
	for _, g := range curve {
		cx.AppliedTo(g.X)
		cy.AppliedTo(g.Y)
	}
	return curve
}

// valueQuantity returns the quantity of dynamically evaluated values
func valueQuantity(prop fluid.RawCurve, phase Phase) units.Quantity {
	switch prop {
	case fluid.Viscosity:
		return units.Viscosity
	case fluid.FVF:
		if phase == Vapour {
			return units.GasFVF
		}
		return units.OilFVF
	}
	chk.Panic("internal logic error: property %v has no dynamic values", prop)
	return 0
}

// convertValues converts dynamically evaluated values and returns them
func convertValues(vals []float64, prop fluid.RawCurve, phase Phase, from, to units.System) []float64 {
	valueQuantity(prop, phase).From(from).To(to).AppliedTo(vals)
	return vals
}

// mixRatioQuantity returns the quantity of mixing ratios of phase
func mixRatioQuantity(phase Phase) units.Quantity {
	if phase == Liquid {
		return units.DissolvedGasOilRatio
	}
	return units.VaporisedOilGasRatio
}
