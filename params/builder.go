package params

import (
	"github.com/sarchlab/popgen/demography"
	"github.com/sarchlab/popgen/hooking"
	"github.com/sarchlab/popgen/regions"
)

// Builder constructs a ModelParams with per-field setters. Build does not
// validate; call Validate on the result before a run.
type Builder struct {
	nregions      []regions.Region
	sregions      []regions.Sregion
	recregions    []regions.Region
	demography    demography.Demography
	pruneSelected bool
	hooks         []hooking.Hook
}

// MakeBuilder returns a new Builder. prune_selected defaults to true.
func MakeBuilder() Builder {
	return Builder{pruneSelected: DefaultPruneSelected}
}

// WithNeutralRegions sets the neutral regions.
func (b Builder) WithNeutralRegions(rs ...regions.Region) Builder {
	b.nregions = append([]regions.Region{}, rs...)
	return b
}

// WithSelectedRegions sets the selected regions.
func (b Builder) WithSelectedRegions(ss ...regions.Sregion) Builder {
	b.sregions = append([]regions.Sregion{}, ss...)
	return b
}

// WithRecombinationRegions sets the recombination regions.
func (b Builder) WithRecombinationRegions(rs ...regions.Region) Builder {
	b.recregions = append([]regions.Region{}, rs...)
	return b
}

// WithDemography sets the demography.
func (b Builder) WithDemography(d demography.Demography) Builder {
	b.demography = d
	return b
}

// WithPruneSelected sets whether selected fixations are pruned.
func (b Builder) WithPruneSelected(prune bool) Builder {
	b.pruneSelected = prune
	return b
}

// WithHook registers a hook on the built parameters.
func (b Builder) WithHook(hook hooking.Hook) Builder {
	b.hooks = append(append([]hooking.Hook{}, b.hooks...), hook)
	return b
}

func (b Builder) build() ModelParams {
	p := newModelParams()
	p.SetNeutralRegions(b.nregions)
	p.SetSelectedRegions(b.sregions)
	p.SetRecombinationRegions(b.recregions)
	p.SetDemography(b.demography)
	p.SetPruneSelected(b.pruneSelected)

	for _, h := range b.hooks {
		p.AcceptHook(h)
	}

	return p
}

// Build creates the parameters.
func (b Builder) Build() *ModelParams {
	p := b.build()
	return &p
}

// SingleDemeBuilder constructs a SingleDemeParams.
type SingleDemeBuilder struct {
	base        Builder
	rates       Rates
	selfingRate float64
}

// MakeSingleDemeBuilder returns a new SingleDemeBuilder.
func MakeSingleDemeBuilder() SingleDemeBuilder {
	return SingleDemeBuilder{base: MakeBuilder()}
}

// WithBase sets the fields shared by all models.
func (b SingleDemeBuilder) WithBase(base Builder) SingleDemeBuilder {
	b.base = base
	return b
}

// WithSizeHistory sets the demography to the given size history.
func (b SingleDemeBuilder) WithSizeHistory(
	h demography.SizeHistory,
) SingleDemeBuilder {
	b.base = b.base.WithDemography(h)
	return b
}

// WithRates sets all three rates.
func (b SingleDemeBuilder) WithRates(
	neutral, selected, recombination float64,
) SingleDemeBuilder {
	b.rates = MakeRates(neutral, selected, recombination)
	return b
}

// WithSelfingRate sets the selfing probability.
func (b SingleDemeBuilder) WithSelfingRate(rate float64) SingleDemeBuilder {
	b.selfingRate = rate
	return b
}

// Build creates the parameters.
func (b SingleDemeBuilder) Build() *SingleDemeParams {
	return &SingleDemeParams{
		ModelParams: b.base.build(),
		rates:       b.rates.clone(),
		selfingRate: b.selfingRate,
	}
}

// MultiDemeBuilder constructs a MultiDemeParams.
type MultiDemeBuilder struct {
	base  Builder
	rates Rates
}

// MakeMultiDemeBuilder returns a new MultiDemeBuilder.
func MakeMultiDemeBuilder() MultiDemeBuilder {
	return MultiDemeBuilder{base: MakeBuilder()}
}

// WithBase sets the fields shared by all models.
func (b MultiDemeBuilder) WithBase(base Builder) MultiDemeBuilder {
	b.base = base
	return b
}

// WithDemographySpec sets the demography to one built from spec. It panics if
// the spec is invalid.
func (b MultiDemeBuilder) WithDemographySpec(spec demography.Spec) MultiDemeBuilder {
	b.base = b.base.WithDemography(
		demography.MakeBuilder().WithSpec(spec).Build())

	return b
}

// WithRates sets all three rates.
func (b MultiDemeBuilder) WithRates(
	neutral, selected, recombination float64,
) MultiDemeBuilder {
	b.rates = MakeRates(neutral, selected, recombination)
	return b
}

// Build creates the parameters.
func (b MultiDemeBuilder) Build() *MultiDemeParams {
	return &MultiDemeParams{
		ModelParams: b.base.build(),
		rates:       b.rates.clone(),
	}
}
