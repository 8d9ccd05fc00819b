// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/plt"
)

// colors of graphs
var colors = []string{"#0397dc", "#e62728", "#2ca02c", "#ff7f0e", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"}

// GetStyle returns the style of graph k
func GetStyle(k int) *plt.A {
	return &plt.A{C: colors[k%len(colors)], M: ".", Ls: "-", NoClip: true}
}

// GetTexLabel returns a TeX label for key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "po":
		l += "p_o"
	case "pg":
		l += "p_g"
	case "Bo":
		l += "B_o"
	case "Bg":
		l += "B_g"
	case "mu_o":
		l += "\\mu_o"
	case "mu_g":
		l += "\\mu_g"
	case "rs", "rsSat":
		l += "R_s"
	case "rv", "rvSat":
		l += "R_v"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;[\\mathrm{" + unit + "}]"
	}
	l += "$"
	return l
}

// UnitSymbol returns the symbol of the unit of q in usys
func UnitSymbol(q units.Quantity, usys units.System) string {
	name := usys.Name()
	switch q {
	case units.Pressure:
		switch name {
		case "metric":
			return "bar"
		case "field":
			return "psia"
		case "lab", "pvt-m":
			return "atm"
		}
		return "Pa"
	case units.Viscosity:
		if name == "si" {
			return "Pa.s"
		}
		return "cP"
	case units.OilFVF:
		switch name {
		case "field":
			return "rb/stb"
		case "lab":
			return "rcc/scc"
		}
		return "rm^3/sm^3"
	case units.GasFVF:
		switch name {
		case "field":
			return "rb/Mscf"
		case "lab":
			return "rcc/scc"
		}
		return "rm^3/sm^3"
	case units.DissolvedGasOilRatio:
		switch name {
		case "field":
			return "Mscf/stb"
		case "lab":
			return "scc/scc"
		}
		return "sm^3/sm^3"
	case units.VaporisedOilGasRatio:
		switch name {
		case "field":
			return "stb/Mscf"
		case "lab":
			return "scc/scc"
		}
		return "sm^3/sm^3"
	}
	return ""
}
