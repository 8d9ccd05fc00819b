// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "github.com/cpmech/gosl/chk"

// Quantity identifies a physical quantity whose values can be converted
// between systems of units
type Quantity int

// quantities
const (
	Pressure Quantity = iota
	Viscosity
	OilFVF
	GasFVF
	DissolvedGasOilRatio
	VaporisedOilGasRatio
	Compressibility // 1/pressure
)

// String returns the name of the quantity
func (q Quantity) String() string {
	switch q {
	case Pressure:
		return "Pressure"
	case Viscosity:
		return "Viscosity"
	case OilFVF:
		return "OilFVF"
	case GasFVF:
		return "GasFVF"
	case DissolvedGasOilRatio:
		return "DissolvedGasOilRatio"
	case VaporisedOilGasRatio:
		return "VaporisedOilGasRatio"
	case Compressibility:
		return "Compressibility"
	}
	return "Unknown"
}

// unit returns the SI value of one unit of q in system s
func (q Quantity) unit(s System) float64 {
	switch q {
	case Pressure:
		return s.Pressure()
	case Viscosity:
		return s.Viscosity()
	case OilFVF:
		return s.ReservoirVolume() / s.SurfaceVolumeLiquid()
	case GasFVF:
		return s.ReservoirVolume() / s.SurfaceVolumeGas()
	case DissolvedGasOilRatio:
		return s.DissolvedGasOilRatio()
	case VaporisedOilGasRatio:
		return s.VaporisedOilGasRatio()
	case Compressibility:
		return 1.0 / s.Pressure()
	}
	chk.Panic("internal logic error: quantity %v has no unit", q)
	return 0
}

// From starts the definition of a converter
func (q Quantity) From(s System) Source {
	return Source{q, s}
}

// Source holds a quantity and the system its values are expressed in
type Source struct {
	q    Quantity
	from System
}

// To completes the definition of a converter
func (o Source) To(s System) Converter {
	return Converter{
		Quantity: o.q,
		factor:   o.q.unit(o.from) / o.q.unit(s),
	}
}

// Converter converts values of one quantity between two systems of units
type Converter struct {
	Quantity Quantity // converted quantity
	factor   float64  // multiplier: value_to = factor * value_from
}

// Factor returns the scaling factor applied by this converter
func (o Converter) Factor() float64 {
	return o.factor
}

// AppliedTo converts all values in x (in place)
func (o Converter) AppliedTo(x []float64) {
	if o.factor == 1 {
		return
	}
	for i := range x {
		x[i] *= o.factor
	}
}
