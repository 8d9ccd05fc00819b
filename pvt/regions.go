// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import "github.com/cpmech/gosl/chk"

// RegionMap maps active cells to zero-based PVT regions
type RegionMap struct {
	tags []int // [ncells] one-based region tags (PVTNUM)
	nreg int   // largest tag
}

// NewRegionMap returns a new region map
//
//	tags -- one-based region tag of each active cell. If empty, all cells
//	        belong to region 1. Otherwise len(tags) must equal ncells
func NewRegionMap(tags []int, ncells int) (o *RegionMap, err error) {
	if ncells < 0 {
		return nil, chk.Err("number of cells must be non-negative; ncells = %d", ncells)
	}
	o = new(RegionMap)
	if len(tags) == 0 {
		o.tags = make([]int, ncells)
		for i := range o.tags {
			o.tags[i] = 1
		}
		o.nreg = 1
		return
	}
	if len(tags) != ncells {
		return nil, chk.Err("number of region tags (%d) must equal the number of cells (%d)", len(tags), ncells)
	}
	o.tags = make([]int, ncells)
	for i, t := range tags {
		if t < 1 {
			return nil, chk.Err("region tag of cell %d must be positive; tag = %d", i, t)
		}
		if t > o.nreg {
			o.nreg = t
		}
		o.tags[i] = t
	}
	return
}

// Resolve returns the zero-based region of cell
//
//	Note: 0 ≤ cell < NumCells() is not checked
func (o *RegionMap) Resolve(cell int) int {
	return o.tags[cell] - 1
}

// NumCells returns the number of cells
func (o *RegionMap) NumCells() int {
	return len(o.tags)
}

// NumRegions returns the number of regions; i.e. the largest tag
func (o *RegionMap) NumRegions() int {
	return o.nreg
}
