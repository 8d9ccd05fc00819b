// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/ecpvt/inp"
	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
)

// CurveCollection holds the PVT models of a reservoir model and evaluates
// their curves per active cell
//
//	Notes:
//	 1) invalid requests (unsupported phase, cell out of range, no data for
//	    the phase) give empty results: a curve with one empty graph or an
//	    empty slice of values
//	 2) queries only read the collection; SetOutputUnits must not be called
//	    concurrently with queries
type CurveCollection struct {
	regions  *RegionMap   // cell => region
	oil      fluid.Oil    // oil model; may be nil
	gas      fluid.Gas    // gas model; may be nil
	native   units.System // units of input data
	internal units.System // units of computations (SI)
	output   units.System // units of results; nil means SI
}

// New returns a new collection
//
//	oil, gas -- phase models; nil means no tabulated data for the phase
//	native   -- system of units of values given to DynamicPropertyNative
func New(regions *RegionMap, oil fluid.Oil, gas fluid.Gas, native units.System) (o *CurveCollection) {
	if regions == nil {
		chk.Panic("region map is required")
	}
	if native == nil {
		chk.Panic("native system of units is required")
	}
	return &CurveCollection{
		regions:  regions,
		oil:      oil,
		gas:      gas,
		native:   native,
		internal: units.Internal(),
	}
}

// FromCase returns a new collection with regions, models and native units of case data
func FromCase(c *inp.Case) (o *CurveCollection, err error) {
	regions, err := NewRegionMap(c.RawLinearisedCellData("PVTNUM"), c.NumCells())
	if err != nil {
		return
	}
	native, err := c.UnitConventions()
	if err != nil {
		return
	}
	oil, err := c.OilInterpolant()
	if err != nil {
		return
	}
	gas, err := c.GasInterpolant()
	if err != nil {
		return
	}
	if oil != nil && regions.NumRegions() > oil.NumRegions() {
		return nil, chk.Err("region tag %d exceeds the number of oil tables (%d)", regions.NumRegions(), oil.NumRegions())
	}
	if gas != nil && regions.NumRegions() > gas.NumRegions() {
		return nil, chk.Err("region tag %d exceeds the number of gas tables (%d)", regions.NumRegions(), gas.NumRegions())
	}
	return New(regions, oil, gas, native), nil
}

// SetOutputUnits sets the system of units of results; nil means SI
func (o *CurveCollection) SetOutputUnits(usys units.System) {
	o.output = usys
}

// NumCells returns the number of active cells
func (o *CurveCollection) NumCells() int {
	return o.regions.NumCells()
}

// PvtCurve returns the curve of phase in the region of cell, converted to
// the output system of units
func (o *CurveCollection) PvtCurve(curve fluid.RawCurve, phase Phase, cell int) []fluid.Graph {
	if !o.isValidRequest(phase, cell) {
		return emptyCurve()
	}
	regID := o.regions.Resolve(cell)
	if phase == Liquid {
		return o.convertToOutputUnits(rawCurve(o.oil, curve, regID), curve, phase)
	}
	return o.convertToOutputUnits(rawCurve(o.gas, curve, regID), curve, phase)
}

// DynamicPropertySI computes FVF or viscosity of phase in the region of cell
// at pressures press and mixing ratios mix; inputs and results are in SI units
//
//	mix -- Rs for Liquid or Rv for Vapour; empty means zero
func (o *CurveCollection) DynamicPropertySI(prop fluid.RawCurve, phase Phase, cell int, press, mix []float64) []float64 {
	if !o.isValidDynamic(prop, phase, cell, press, mix) {
		return []float64{}
	}
	regID := o.regions.Resolve(cell)
	if phase == Liquid {
		return oilProperty(o.oil, prop, regID, press, mix)
	}
	return gasProperty(o.gas, prop, regID, press, mix)
}

// DynamicPropertyNative computes FVF or viscosity of phase in the region of
// cell at pressures press and mixing ratios mix given in native units.
// Results are in the output system of units (SI if not set). press and mix
// are not modified
func (o *CurveCollection) DynamicPropertyNative(prop fluid.RawCurve, phase Phase, cell int, press, mix []float64) []float64 {
	if !o.isValidDynamic(prop, phase, cell, press, mix) {
		return []float64{}
	}

	// native => SI
	p := append([]float64(nil), press...)
	r := append([]float64(nil), mix...)
	units.Pressure.From(o.native).To(o.internal).AppliedTo(p)
	mixRatioQuantity(phase).From(o.native).To(o.internal).AppliedTo(r)

	// evaluate
	vals := o.DynamicPropertySI(prop, phase, cell, p, r)

	// SI => output
	if o.output == nil {
		return vals
	}
	return convertValues(vals, prop, phase, o.internal, o.output)
}

// isValidRequest checks phase and cell
func (o *CurveCollection) isValidRequest(phase Phase, cell int) bool {
	if phase != Liquid && phase != Vapour {
		return false
	}
	return cell >= 0 && cell < o.regions.NumCells()
}

// isValidDynamic checks requests of dynamic properties
func (o *CurveCollection) isValidDynamic(prop fluid.RawCurve, phase Phase, cell int, press, mix []float64) bool {
	if prop != fluid.FVF && prop != fluid.Viscosity {
		return false
	}
	if len(mix) != 0 && len(mix) != len(press) {
		return false
	}
	return o.isValidRequest(phase, cell)
}

// convertToOutputUnits converts a curve from SI to the output system of units
func (o *CurveCollection) convertToOutputUnits(curve []fluid.Graph, kind fluid.RawCurve, phase Phase) []fluid.Graph {
	if o.output == nil {
		return curve
	}
	return convertCurve(curve, kind, phase, o.internal, o.output)
}
