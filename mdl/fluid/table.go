// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"sort"

	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Node holds the rows of a table corresponding to one value of the key
// variable; e.g. Rs for live oil (PVTO) or Pg for wet gas (PVTG)
type Node struct {
	Key  float64     `json:"key" yaml:"key"`   // key variable
	Rows [][]float64 `json:"rows" yaml:"rows"` // [nrows][ncols] table rows
}

// Table holds the PVT data of one region
//
//	Note: dead (unkeyed) tables may be given directly by Rows
type Table struct {
	Nodes []Node      `json:"nodes" yaml:"nodes"` // keyed nodes
	Rows  [][]float64 `json:"rows" yaml:"rows"`   // rows of unkeyed tables
}

// GetNodes returns the nodes of this table
func (o Table) GetNodes() []Node {
	if len(o.Nodes) == 0 && len(o.Rows) > 0 {
		return []Node{{Rows: o.Rows}}
	}
	return o.Nodes
}

// Layout describes the physical quantities stored by a model
type Layout struct {
	Keyed bool                      // tables have nodes with key values
	Key   units.Quantity            // quantity of node keys
	Cols  []units.Quantity          // quantities of each column in a row
	Prms  map[string]units.Quantity // quantities of dimensional parameters
}

// Convert returns copies of tables and parameters converted from one system of units to another
func (o Layout) Convert(tables []Table, prms dbf.Params, from, to units.System) (res []Table, cprms dbf.Params, err error) {
	key := o.Key.From(from).To(to)
	cols := make([]units.Converter, len(o.Cols))
	for j, q := range o.Cols {
		cols[j] = q.From(from).To(to)
	}
	res = make([]Table, len(tables))
	for r, tab := range tables {
		nodes := tab.GetNodes()
		if len(nodes) == 0 {
			return nil, nil, chk.Err("table of region %d is empty", r+1)
		}
		if !o.Keyed && len(nodes) != 1 {
			return nil, nil, chk.Err("table of region %d must have exactly one node; %d found", r+1, len(nodes))
		}
		res[r].Nodes = make([]Node, len(nodes))
		for k, nod := range nodes {
			if len(nod.Rows) == 0 {
				return nil, nil, chk.Err("node %d of region %d has no rows", k, r+1)
			}
			kv := []float64{nod.Key}
			key.AppliedTo(kv)
			res[r].Nodes[k].Key = kv[0]
			res[r].Nodes[k].Rows = make([][]float64, len(nod.Rows))
			for i, row := range nod.Rows {
				if len(row) != len(cols) {
					return nil, nil, chk.Err("row %d of node %d in region %d has %d columns; %d expected", i, k, r+1, len(row), len(cols))
				}
				vals := make([]float64, len(row))
				for j, v := range row {
					x := []float64{v}
					cols[j].AppliedTo(x)
					vals[j] = x[0]
				}
				res[r].Nodes[k].Rows[i] = vals
			}
		}
	}
	for _, p := range prms {
		c := &dbf.P{N: p.N, V: p.V}
		if q, ok := o.Prms[p.N]; ok {
			x := []float64{p.V}
			q.From(from).To(to).AppliedTo(x)
			c.V = x[0]
		}
		cprms = append(cprms, c)
	}
	return
}

// column returns a copy of column j of rows
func column(rows [][]float64, j int) (res []float64) {
	res = make([]float64, len(rows))
	for i, row := range rows {
		res[i] = row[j]
	}
	return
}

// interp1 evaluates the piecewise linear function through (xs,ys) at x.
// Values beyond the end points are extrapolated linearly. xs must be
// monotone (increasing or decreasing)
func interp1(xs, ys []float64, x float64) float64 {
	n := len(xs)
	switch n {
	case 0:
		return 0
	case 1:
		return ys[0]
	}
	var i int
	if xs[n-1] < xs[0] {
		i = sort.Search(n, func(k int) bool { return xs[k] <= x })
	} else {
		i = sort.Search(n, func(k int) bool { return xs[k] >= x })
	}
	if i < 1 {
		i = 1
	}
	if i > n-1 {
		i = n - 1
	}
	x0, x1 := xs[i-1], xs[i]
	if x1 == x0 {
		return ys[i]
	}
	t := (x - x0) / (x1 - x0)
	return ys[i-1] + t*(ys[i]-ys[i-1])
}

// bracket returns the indices of the two keys bracketing k and the
// interpolation weight of the second one (linear extrapolation beyond the ends)
func bracket(keys []float64, k float64) (i, j int, t float64) {
	n := len(keys)
	if n == 1 {
		return 0, 0, 0
	}
	j = sort.Search(n, func(m int) bool { return keys[m] >= k })
	if j < 1 {
		j = 1
	}
	if j > n-1 {
		j = n - 1
	}
	i = j - 1
	if keys[j] == keys[i] {
		return i, j, 1
	}
	t = (k - keys[i]) / (keys[j] - keys[i])
	return
}

// checkRegion panics if regID is not a valid region
func checkRegion(model string, regID, nreg int) {
	if regID < 0 || regID >= nreg {
		chk.Panic("%s: region %d is out of range; number of regions = %d", model, regID, nreg)
	}
}

// checkSizes panics if ratio and pressure arrays have different lengths
func checkSizes(model string, ratio, press []float64) {
	if len(ratio) != len(press) {
		chk.Panic("%s: sizes of mixing ratio (%d) and pressure (%d) arrays must be equal", model, len(ratio), len(press))
	}
}

// emptyCurve returns a curve with one empty graph
func emptyCurve() []Graph {
	return []Graph{{}}
}

// clone returns a copy of x
func clone(x []float64) []float64 {
	return append([]float64(nil), x...)
}
