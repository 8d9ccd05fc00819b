// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt implements the collection of PVT curves of a reservoir model.
// It evaluates formation volume factors, viscosities and saturated states
// of oil and gas per cell and converts them between systems of units
package pvt

import "github.com/cpmech/gosl/io"

// Phase identifies a fluid phase
type Phase int

// phases
const (
	Aqua   Phase = iota // water
	Liquid              // oil
	Vapour              // gas
)

// String returns the name of the phase
func (o Phase) String() string {
	switch o {
	case Aqua:
		return "Aqua"
	case Liquid:
		return "Liquid"
	case Vapour:
		return "Vapour"
	}
	return io.Sf("Phase(%d)", int(o))
}
