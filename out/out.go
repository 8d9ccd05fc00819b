// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of PVT curves as text and figures
package out

import (
	"bytes"

	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/gosl/io"
)

// WriteGraph writes all graphs of a curve to buf; one block per graph:
//
//	name{k} = [
//	x y
//	...
//	];
//
// with k starting at 1 and values printed with 16 decimal digits
func WriteGraph(buf *bytes.Buffer, name string, graphs []fluid.Graph) {
	for k, g := range graphs {
		io.Ff(buf, "%s{%d} = [\n", name, k+1)
		for i := range g.X {
			io.Ff(buf, "%.16e %.16e\n", g.X[i], g.Y[i])
		}
		io.Ff(buf, "];\n\n")
	}
}

// WriteValues writes values computed at given pressures to buf:
//
//	name = [
//	p value
//	...
//	];
func WriteValues(buf *bytes.Buffer, name string, press, vals []float64) {
	io.Ff(buf, "%s = [\n", name)
	for i := range vals {
		io.Ff(buf, "%.16e %.16e\n", press[i], vals[i])
	}
	io.Ff(buf, "];\n\n")
}
