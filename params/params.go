// Package params holds the parameters of a forward-time population-genetics
// simulation and checks them before a run.
//
// A parameter object is built once, from a map of named options or from a
// Builder, may be changed through its setters, and is validated right before
// it is handed to the simulation. All setters and getters copy their inputs
// and outputs, so a parameter object never shares regions or demographies with
// its caller.
package params

import (
	"reflect"

	"github.com/sarchlab/popgen/demography"
	"github.com/sarchlab/popgen/hooking"
	"github.com/sarchlab/popgen/regions"
)

// DefaultPruneSelected is the value of prune_selected when it is not given.
const DefaultPruneSelected = true

// Params is what a simulation needs from a parameter object.
type Params interface {
	hooking.Hookable

	NeutralRegions() []regions.Region
	SelectedRegions() []regions.Sregion
	RecombinationRegions() []regions.Region
	Demography() demography.Demography
	PruneSelected() bool

	// Validate returns the first problem found, or nil.
	Validate() error
}

// ModelParams holds the fields every model needs. A nil region slice or a nil
// demography is unset; an empty slice is set. The zero value has every field
// unset, including prune_selected, and is reported as such by Validate.
type ModelParams struct {
	hooking.HookableBase

	nregions      []regions.Region
	sregions      []regions.Sregion
	recregions    []regions.Region
	demography    demography.Demography
	pruneSelected *bool
}

func newModelParams() ModelParams {
	prune := DefaultPruneSelected
	return ModelParams{pruneSelected: &prune}
}

// New creates a ModelParams from named options. Every name is checked before
// any field is set; an unknown name returns ErrInvalidParameterName.
func New(options map[string]any) (*ModelParams, error) {
	p := newModelParams()

	err := applyOptions(options, baseOptions, p.baseSetters())
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// NeutralRegions returns a copy of the neutral regions.
func (p *ModelParams) NeutralRegions() []regions.Region {
	return regions.CopyRegions(p.nregions)
}

// SetNeutralRegions stores a copy of rs. Passing nil unsets the field.
func (p *ModelParams) SetNeutralRegions(rs []regions.Region) {
	p.nregions = regions.CopyRegions(rs)
}

// SelectedRegions returns a deep copy of the selected regions.
func (p *ModelParams) SelectedRegions() []regions.Sregion {
	return regions.CloneSregions(p.sregions)
}

// SetSelectedRegions stores a deep copy of ss. Passing nil unsets the field.
func (p *ModelParams) SetSelectedRegions(ss []regions.Sregion) {
	p.sregions = regions.CloneSregions(ss)
}

// RecombinationRegions returns a copy of the recombination regions.
func (p *ModelParams) RecombinationRegions() []regions.Region {
	return regions.CopyRegions(p.recregions)
}

// SetRecombinationRegions stores a copy of rs. Passing nil unsets the field.
func (p *ModelParams) SetRecombinationRegions(rs []regions.Region) {
	p.recregions = regions.CopyRegions(rs)
}

// Demography returns a copy of the demography, or nil if it is unset.
func (p *ModelParams) Demography() demography.Demography {
	return cloneDemography(p.demography)
}

// SetDemography stores a copy of d. A nil d, including a typed nil, unsets
// the field.
func (p *ModelParams) SetDemography(d demography.Demography) {
	p.demography = cloneDemography(d)
}

// PruneSelected tells whether selected mutations are removed once they fix.
func (p *ModelParams) PruneSelected() bool {
	if p.pruneSelected == nil {
		return DefaultPruneSelected
	}

	return *p.pruneSelected
}

// SetPruneSelected sets whether selected fixations are pruned.
func (p *ModelParams) SetPruneSelected(prune bool) {
	p.pruneSelected = &prune
}

// Validate checks that every field is set. Emptiness and the structure of the
// demography are not checked here.
func (p *ModelParams) Validate() error {
	err := p.validateFields()
	p.notifyValidated(p, err)

	return err
}

func (p *ModelParams) validateFields() error {
	switch {
	case p.nregions == nil:
		return fieldError(OptNeutralRegions, ErrMissingField,
			"neutral regions cannot be unset")
	case p.sregions == nil:
		return fieldError(OptSelectedRegions, ErrMissingField,
			"selected regions cannot be unset")
	case p.recregions == nil:
		return fieldError(OptRecombinationRegions, ErrMissingField,
			"recombination regions cannot be unset")
	case p.demography == nil:
		return fieldError(OptDemography, ErrMissingField,
			"demography cannot be unset")
	case p.pruneSelected == nil:
		return fieldError(OptPruneSelected, ErrMissingField,
			"prune_selected cannot be unset")
	}

	return nil
}

func (p *ModelParams) notifyValidated(item Params, err error) {
	ctx := hooking.HookCtx{
		Domain: item,
		Pos:    hooking.HookPosAfterValidate,
		Item:   item,
	}
	if err != nil {
		ctx.Detail = err
	}

	p.InvokeHook(ctx)
}

// Clone returns a deep copy. Hooks are shared with the original.
func (p *ModelParams) Clone() *ModelParams {
	c := p.clone()
	return &c
}

func (p *ModelParams) clone() ModelParams {
	c := ModelParams{
		HookableBase: p.CopyHooks(),
		nregions:     regions.CopyRegions(p.nregions),
		sregions:     regions.CloneSregions(p.sregions),
		recregions:   regions.CopyRegions(p.recregions),
		demography:   cloneDemography(p.demography),
	}

	if p.pruneSelected != nil {
		prune := *p.pruneSelected
		c.pruneSelected = &prune
	}

	return c
}

func cloneDemography(d demography.Demography) demography.Demography {
	if isNil(d) {
		return nil
	}

	return d.Clone()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

// Model names returned by ModelKind.
const (
	ModelBase       = "base"
	ModelSingleDeme = "single_deme"
	ModelMultiDeme  = "multi_deme"
)

// ModelKind names the model a parameter object belongs to.
func ModelKind(p Params) string {
	switch p.(type) {
	case *SingleDemeParams:
		return ModelSingleDeme
	case *MultiDemeParams:
		return ModelMultiDeme
	case *ModelParams:
		return ModelBase
	}

	return reflect.TypeOf(p).String()
}
