// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical reference fluids used to generate and check PVT tables
package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Oil handles the properties of a slightly compressible oil
//
//	Bo(p) = Bref・exp(-Co・(p - Pref))
//	μo(p) = μref・exp(Cv・(p - Pref))
type Oil struct {
	Pref float64 // reference pressure
	Bref float64 // formation volume factor @ reference pressure
	Co   float64 // compressibility
	Mu   float64 // viscosity @ reference pressure
	Cv   float64 // viscosibility
}

// IdealGas handles the properties of an ideal dry gas
//
//	Bg(p) = (Psc / p)・(Θ / Θsc)
type IdealGas struct {
	Θ   float64 // reservoir temperature
	Θsc float64 // temperature at standard conditions
	Psc float64 // absolute pressure at standard conditions
	Mu  float64 // viscosity (constant)
}

// Init initialises data with typical values in SI units
func (o *Oil) Init() {
	o.Pref = 200e5 // [Pa]
	o.Bref = 1.2   // [rm³/sm³]
	o.Co = 1.5e-9  // [1/Pa]
	o.Mu = 1.5e-3  // [Pa・s]
	o.Cv = 0.5e-9  // [1/Pa]
}

// Init initialises data with typical values in SI units
func (o *IdealGas) Init() {
	o.Θ = 373.15     // [K]   100°C
	o.Θsc = 288.7056 // [K]   60°F
	o.Psc = 101325.0 // [Pa]
	o.Mu = 1.8e-5    // [Pa・s]
}

// Bo computes the formation volume factor
func (o Oil) Bo(p float64) float64 {
	return o.Bref * math.Exp(-o.Co*(p-o.Pref))
}

// Muo computes the viscosity
func (o Oil) Muo(p float64) float64 {
	return o.Mu * math.Exp(o.Cv*(p-o.Pref))
}

// Table returns np rows {p, Bo, μo} with p in [pmin, pmax]
func (o Oil) Table(pmin, pmax float64, np int) (rows [][]float64) {
	for _, p := range utl.LinSpace(pmin, pmax, np) {
		rows = append(rows, []float64{p, o.Bo(p), o.Muo(p)})
	}
	return
}

// Bg computes the formation volume factor
func (o IdealGas) Bg(p float64) float64 {
	return (o.Psc / p) * (o.Θ / o.Θsc)
}

// Table returns np rows {p, Bg, μg} with p in [pmin, pmax]
func (o IdealGas) Table(pmin, pmax float64, np int) (rows [][]float64) {
	for _, p := range utl.LinSpace(pmin, pmax, np) {
		rows = append(rows, []float64{p, o.Bg(p), o.Mu})
	}
	return
}
