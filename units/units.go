// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements systems of units of measurement and converters
// for the physical quantities appearing in PVT tables
//
//	Notes:
//	 Each System returns the value, in strict SI units, of one unit of the
//	 given quantity. For instance, Metric().Pressure() == 1e5 (barsa)
package units

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	Atm     = 101325.0                    // [Pa] standard atmosphere
	Bar     = 1.0e5                       // [Pa]
	Psia    = 6894.757293168361           // [Pa] pound-force per square inch
	Centi   = 1.0e-2                      // prefix
	Cp      = Centi * 0.1                 // [Pa・s] centipoise (1 Poise = 0.1 Pa・s)
	Barrel  = 0.158987294928              // [m³]
	Feet    = 0.3048                      // [m]
	Mscf    = 1000.0 * Feet * Feet * Feet // [m³] thousand standard cubic feet
	CubicCm = 1.0e-6                      // [m³]
)

// System defines a system of units of measurement
type System interface {
	Name() string                  // name of the system; e.g. "metric"
	Pressure() float64             // unit of pressure
	Viscosity() float64            // unit of dynamic viscosity
	ReservoirVolume() float64      // unit of volume at reservoir conditions
	SurfaceVolumeLiquid() float64  // unit of liquid volume at surface conditions
	SurfaceVolumeGas() float64     // unit of gas volume at surface conditions
	DissolvedGasOilRatio() float64 // unit of Rs (gas volume / liquid volume at surface)
	VaporisedOilGasRatio() float64 // unit of Rv (liquid volume / gas volume at surface)
}

// family implements System from a set of base units
type family struct {
	name string  // name of system
	pres float64 // pressure
	visc float64 // viscosity
	resv float64 // reservoir volume
	liq  float64 // surface volume of liquid
	gas  float64 // surface volume of gas
}

func (o family) Name() string                  { return o.name }
func (o family) Pressure() float64             { return o.pres }
func (o family) Viscosity() float64            { return o.visc }
func (o family) ReservoirVolume() float64      { return o.resv }
func (o family) SurfaceVolumeLiquid() float64  { return o.liq }
func (o family) SurfaceVolumeGas() float64     { return o.gas }
func (o family) DissolvedGasOilRatio() float64 { return o.gas / o.liq }
func (o family) VaporisedOilGasRatio() float64 { return o.liq / o.gas }

// Metric returns the METRIC conventions: barsa, cP, rm³, sm³
func Metric() System {
	return family{name: "metric", pres: Bar, visc: Cp, resv: 1, liq: 1, gas: 1}
}

// Field returns the FIELD conventions: psia, cP, rb, stb, Mscf
func Field() System {
	return family{name: "field", pres: Psia, visc: Cp, resv: Barrel, liq: Barrel, gas: Mscf}
}

// Lab returns the LAB conventions: atm, cP, rcc, scc
func Lab() System {
	return family{name: "lab", pres: Atm, visc: Cp, resv: CubicCm, liq: CubicCm, gas: CubicCm}
}

// PvtM returns the PVT-M conventions: atm, cP, rm³, sm³
func PvtM() System {
	return family{name: "pvt-m", pres: Atm, visc: Cp, resv: 1, liq: 1, gas: 1}
}

// Internal returns the internal (strict SI) conventions
func Internal() System {
	return family{name: "si", pres: 1, visc: 1, resv: 1, liq: 1, gas: 1}
}

// Serialised returns the conventions identified by the unit flag stored in
// result files (INTEHEAD item 3): 1=metric, 2=field, 3=lab, 4=pvt-m
func Serialised(flag int) (System, error) {
	switch flag {
	case 1:
		return Metric(), nil
	case 2:
		return Field(), nil
	case 3:
		return Lab(), nil
	case 4:
		return PvtM(), nil
	}
	return nil, chk.Err("unit flag %d is invalid; options are 1=metric, 2=field, 3=lab, 4=pvt-m", flag)
}

// ByName returns a system of units given its name (case insensitive)
func ByName(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "metric":
		return Metric(), nil
	case "field":
		return Field(), nil
	case "lab":
		return Lab(), nil
	case "pvt-m", "pvtm":
		return PvtM(), nil
	case "si", "internal":
		return Internal(), nil
	}
	return nil, chk.Err("system of units %q is not available; options are \"metric\", \"field\", \"lab\", \"pvt-m\" and \"si\"", name)
}
