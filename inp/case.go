// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of case data: systems of units, region
// tags and PVT tables of a reservoir model
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/ecpvt/mdl/fluid"
	"github.com/cpmech/ecpvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/hashicorp/go-multierror"
	"github.com/powerman/structlog"
	"gopkg.in/yaml.v3"
)

var log = structlog.New()

// PhaseData holds the PVT model of one phase
type PhaseData struct {
	Model  string        `json:"model" yaml:"model"`   // name of model; e.g. "pvto", "pvdg"
	Prms   dbf.Params    `json:"prms" yaml:"prms"`     // parameters, if any
	Tables []fluid.Table `json:"tables" yaml:"tables"` // one table per region; in native units
}

// Case holds the data of a reservoir model as stored by the simulator
type Case struct {

	// input
	Desc     string     `json:"desc" yaml:"desc"`         // description
	Units    string     `json:"units" yaml:"units"`       // native system of units; e.g. "metric"
	UnitFlag int        `json:"unitflag" yaml:"unitflag"` // native system of units as flag (1..4); used if Units is empty
	Ncells   int        `json:"ncells" yaml:"ncells"`     // number of active cells
	Pvtnum   []int      `json:"pvtnum" yaml:"pvtnum"`     // [ncells] one-based PVT region of each cell; may be empty
	Oil      *PhaseData `json:"oil" yaml:"oil"`           // oil data; nil if absent
	Gas      *PhaseData `json:"gas" yaml:"gas"`           // gas data; nil if absent

	// derived
	Key string // filename key
}

// ReadCase reads case data from a .yaml, .yml or .json file and validates it
func ReadCase(path string) (o *Case, err error) {

	// read file
	b, err := readFile(path)
	if err != nil {
		return
	}

	// decode
	o = new(Case)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("extension of case file %q is not supported; options are \".json\", \".yaml\" and \".yml\"", path)
	}
	if err != nil {
		return nil, chk.Err("cannot decode case file %q:\n%v", path, err)
	}
	o.Key = io.FnKey(filepath.Base(path))

	// check
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	log.Debug("case loaded", "key", o.Key, "ncells", o.Ncells)
	return
}

// readFile reads the whole file; io.ReadFile panics on failure
func readFile(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read case file %q:\n%v", path, r)
		}
	}()
	return io.ReadFile(path), nil
}

// Validate checks case data and reports all problems found
func (o *Case) Validate() error {
	var errs *multierror.Error
	if o.Ncells < 0 {
		errs = multierror.Append(errs, chk.Err("number of cells must be non-negative; ncells = %d", o.Ncells))
	}
	if _, err := o.UnitConventions(); err != nil {
		errs = multierror.Append(errs, err)
	}
	maxtag := 1
	if len(o.Pvtnum) > 0 {
		if len(o.Pvtnum) != o.Ncells {
			errs = multierror.Append(errs, chk.Err("PVTNUM has %d values; %d expected", len(o.Pvtnum), o.Ncells))
		}
		for i, t := range o.Pvtnum {
			if t < 1 {
				errs = multierror.Append(errs, chk.Err("PVTNUM of cell %d must be positive; %d found", i, t))
			}
			if t > maxtag {
				maxtag = t
			}
		}
	}
	check := func(phase string, data *PhaseData, known func(string) error) {
		if data == nil {
			return
		}
		if err := known(data.Model); err != nil {
			errs = multierror.Append(errs, err)
		}
		if len(data.Tables) == 0 {
			errs = multierror.Append(errs, chk.Err("%s: at least one table is required", phase))
		} else if maxtag > len(data.Tables) {
			errs = multierror.Append(errs, chk.Err("%s: PVTNUM refers to region %d but only %d tables are given", phase, maxtag, len(data.Tables)))
		}
	}
	check("oil", o.Oil, func(name string) (err error) { _, err = fluid.NewOil(name); return })
	check("gas", o.Gas, func(name string) (err error) { _, err = fluid.NewGas(name); return })
	return errs.ErrorOrNil()
}

// NumCells returns the number of active cells
func (o *Case) NumCells() int {
	return o.Ncells
}

// RawLinearisedCellData returns a copy of the integer cell data named kw;
// e.g. "PVTNUM". The result is empty if the data is absent
func (o *Case) RawLinearisedCellData(kw string) []int {
	switch strings.ToUpper(kw) {
	case "PVTNUM":
		if len(o.Pvtnum) == 0 {
			log.Debug("PVTNUM is absent", "key", o.Key, "ncells", o.Ncells)
			return []int{}
		}
		return append([]int(nil), o.Pvtnum...)
	}
	return []int{}
}

// UnitConventions returns the native system of units
func (o *Case) UnitConventions() (units.System, error) {
	if o.Units != "" {
		return units.ByName(o.Units)
	}
	if o.UnitFlag == 0 {
		return nil, chk.Err("system of units is missing; set \"units\" or \"unitflag\"")
	}
	return units.Serialised(o.UnitFlag)
}

// OilInterpolant returns the oil model with tables in SI units; nil if oil data is absent
func (o *Case) OilInterpolant() (model fluid.Oil, err error) {
	if o.Oil == nil {
		return nil, nil
	}
	mdl, err := fluid.NewOil(o.Oil.Model)
	if err != nil {
		return
	}
	err = o.initModel(mdl, o.Oil)
	if err != nil {
		return nil, chk.Err("oil model %q: %v", o.Oil.Model, err)
	}
	return mdl, nil
}

// GasInterpolant returns the gas model with tables in SI units; nil if gas data is absent
func (o *Case) GasInterpolant() (model fluid.Gas, err error) {
	if o.Gas == nil {
		return nil, nil
	}
	mdl, err := fluid.NewGas(o.Gas.Model)
	if err != nil {
		return
	}
	err = o.initModel(mdl, o.Gas)
	if err != nil {
		return nil, chk.Err("gas model %q: %v", o.Gas.Model, err)
	}
	return mdl, nil
}

// initModel converts the tables of data to SI and initialises mdl
func (o *Case) initModel(mdl fluid.Model, data *PhaseData) (err error) {
	native, err := o.UnitConventions()
	if err != nil {
		return
	}
	tables, prms, err := mdl.Layout().Convert(data.Tables, data.Prms, native, units.Internal())
	if err != nil {
		return
	}
	err = mdl.Init(prms, tables)
	if err != nil {
		return
	}
	log.Debug("PVT model initialised", "model", data.Model, "nreg", mdl.NumRegions(), "units", native.Name())
	return
}
