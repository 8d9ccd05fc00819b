// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Plot plots all graphs of a curve and saves the figure in dirout
func Plot(dirout, fnkey string, graphs []fluid.Graph, xlabel, ylabel string) {
	plt.Reset(false, nil)
	for k, g := range graphs {
		if g.Empty() {
			continue
		}
		sty := GetStyle(k)
		if len(graphs) > 1 {
			sty.L = io.Sf("%d", k+1)
		}
		plt.Plot(g.X, g.Y, sty)
	}
	plt.Gll(xlabel, ylabel, nil)
	plt.Save(dirout, fnkey)
}
