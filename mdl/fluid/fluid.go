// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements PVT models (interpolants) for oil and gas
//
//	Notes:
//	 All models work in strict SI units: pressures in Pa, viscosities in Pa・s,
//	 formation volume factors in rm³/sm³ and mixing ratios in sm³/sm³.
//	 Regions are zero-based.
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// RawCurve identifies a PVT property curve
type RawCurve int

// curves
const (
	FVF            RawCurve = iota // formation volume factor
	Viscosity                      // phase viscosity
	SaturatedState                 // Rs(Po) for oil or Rv(Pg) for gas at saturated conditions
)

// String returns the name of the curve
func (o RawCurve) String() string {
	switch o {
	case FVF:
		return "FVF"
	case Viscosity:
		return "Viscosity"
	case SaturatedState:
		return "SaturatedState"
	}
	return io.Sf("RawCurve(%d)", int(o))
}

// Graph holds one two-column series of a curve
type Graph struct {
	X []float64 // first column; e.g. pressure or mixing ratio
	Y []float64 // second column; e.g. FVF, viscosity or mixing ratio
}

// Empty returns whether the graph has no samples
func (o Graph) Empty() bool {
	return len(o.X) == 0
}

// Model defines the operations common to all PVT models
type Model interface {
	Init(prms dbf.Params, tables []Table) error                        // initialises model with SI data
	GetPrms(example bool) dbf.Params                                   // gets (an example) of parameters
	Layout() Layout                                                    // physical quantities in tables and parameters
	NumRegions() int                                                   // number of PVT regions
	Curve(kind RawCurve, regID int) []Graph                            // returns a copy of the tabulated curve
	FormationVolumeFactor(regID int, ratio, press []float64) []float64 // computes FVF
	Viscosity(regID int, ratio, press []float64) []float64             // computes viscosity
}

// Oil defines oil PVT models
//
//	ratio -- dissolved gas/oil ratio Rs
//	press -- oil pressure Po
type Oil interface {
	Model
	SaturatedRs(regID int, press []float64) []float64 // computes Rs at saturated conditions
}

// Gas defines gas PVT models
//
//	ratio -- vaporised oil/gas ratio Rv
//	press -- gas pressure Pg
type Gas interface {
	Model
	SaturatedRv(regID int, press []float64) []float64 // computes Rv at saturated conditions
}

// NewOil returns a new oil model
func NewOil(name string) (model Oil, err error) {
	allocator, ok := oilAllocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'oil' database", name)
	}
	return allocator(), nil
}

// NewGas returns a new gas model
func NewGas(name string) (model Gas, err error) {
	allocator, ok := gasAllocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'gas' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var (
	oilAllocators = map[string]func() Oil{}
	gasAllocators = map[string]func() Gas{}
)
