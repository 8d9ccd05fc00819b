// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
)

// keyedRegion holds the miscible PVT data of one region. Each node
// corresponds to one key value and holds a branch of rows {x, B, μ}. The
// first row of each branch corresponds to saturated conditions
//
//	live oil (PVTO): key = Rs, x = Po
//	wet gas  (PVTG): key = Pg, x = Rv
type keyedRegion struct {
	keys []float64   // [nnodes] key values
	x    [][]float64 // [nnodes][nrows] branch variable
	b    [][]float64 // [nnodes][nrows] formation volume factor
	mu   [][]float64 // [nnodes][nrows] viscosity
}

// keyedTables holds miscible PVT data for all regions
type keyedTables struct {
	name string        // keyword; e.g. "pvto"
	regs []keyedRegion // [nreg] regions
}

// init initialises tables
func (o *keyedTables) init(name string, tables []Table) (err error) {
	o.name = name
	if len(tables) == 0 {
		return chk.Err("%s: at least one table is required", name)
	}
	o.regs = make([]keyedRegion, len(tables))
	for r, tab := range tables {
		nodes := tab.GetNodes()
		if len(nodes) == 0 {
			return chk.Err("%s: table of region %d has no nodes", name, r+1)
		}
		reg := &o.regs[r]
		n := len(nodes)
		reg.keys = make([]float64, n)
		reg.x, reg.b, reg.mu = make([][]float64, n), make([][]float64, n), make([][]float64, n)
		for k, nod := range nodes {
			if k > 0 && nod.Key <= nodes[k-1].Key {
				return chk.Err("%s: keys in region %d must be strictly increasing", name, r+1)
			}
			if len(nod.Rows) == 0 {
				return chk.Err("%s: node %d of region %d has no rows", name, k, r+1)
			}
			for i, row := range nod.Rows {
				if len(row) != 3 {
					return chk.Err("%s: row %d of node %d in region %d must have 3 columns", name, i, k, r+1)
				}
				if row[1] <= 0 || row[2] <= 0 {
					return chk.Err("%s: FVF and viscosity in region %d must be positive; row %d of node %d = %v", name, r+1, i, k, row)
				}
			}
			reg.keys[k] = nod.Key
			reg.x[k], reg.b[k], reg.mu[k] = column(nod.Rows, 0), column(nod.Rows, 1), column(nod.Rows, 2)
		}
	}
	return
}

// region returns the data of region regID
func (o *keyedTables) region(regID int) *keyedRegion {
	checkRegion(o.name, regID, len(o.regs))
	return &o.regs[regID]
}

// branches returns one graph per node: {x, y}
func (o *keyedTables) branches(y func(r *keyedRegion) [][]float64, regID int) (res []Graph) {
	reg := o.region(regID)
	ys := y(reg)
	res = make([]Graph, len(reg.keys))
	for k := range reg.keys {
		res[k] = Graph{X: clone(reg.x[k]), Y: clone(ys[k])}
	}
	return
}

// saturated returns the saturated state curve
//
//	keyOnX -- key values go to the first column; otherwise saturated x values do
func (o *keyedTables) saturated(regID int, keyOnX bool) []Graph {
	reg := o.region(regID)
	n := len(reg.keys)
	keys, sat := clone(reg.keys), make([]float64, n)
	for k := 0; k < n; k++ {
		sat[k] = reg.x[k][0]
	}
	if keyOnX {
		return []Graph{{X: keys, Y: sat}}
	}
	return []Graph{{X: sat, Y: keys}}
}

// eval interpolates y(key, x) for all samples
func (o *keyedTables) eval(y func(r *keyedRegion) [][]float64, regID int, keys, xs []float64) (res []float64) {
	reg := o.region(regID)
	ys := y(reg)
	res = make([]float64, len(keys))
	for m, key := range keys {
		i, j, t := bracket(reg.keys, key)
		vi := interp1(reg.x[i], ys[i], xs[m])
		if i == j {
			res[m] = vi
			continue
		}
		vj := interp1(reg.x[j], ys[j], xs[m])
		res[m] = vi + t*(vj-vi)
	}
	return
}

// lookupSaturated interpolates the saturated relation between key and the
// first row of each branch; results are clamped to the tabulated range
//
//	fromKey -- input values are keys; otherwise inputs are saturated x values
func (o *keyedTables) lookupSaturated(regID int, vals []float64, fromKey bool) (res []float64) {
	reg := o.region(regID)
	n := len(reg.keys)
	sat := make([]float64, n)
	for k := 0; k < n; k++ {
		sat[k] = reg.x[k][0]
	}
	xs, ys := sat, reg.keys
	if fromKey {
		xs, ys = reg.keys, sat
	}
	res = make([]float64, len(vals))
	for m, v := range vals {
		res[m] = interp1(xs, ys, clamp(v, xs))
	}
	return
}

// byB and byMu select columns
func byB(r *keyedRegion) [][]float64  { return r.b }
func byMu(r *keyedRegion) [][]float64 { return r.mu }

// monotone returns whether xs is strictly increasing or strictly decreasing
func monotone(xs []float64) bool {
	if len(xs) < 2 {
		return true
	}
	asc := xs[1] > xs[0]
	for i := 1; i < len(xs); i++ {
		if (asc && xs[i] <= xs[i-1]) || (!asc && xs[i] >= xs[i-1]) {
			return false
		}
	}
	return true
}

// clamp limits v to the range of xs
func clamp(v float64, xs []float64) float64 {
	lo, hi := xs[0], xs[len(xs)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
