package demography

// Builder constructs a DiscreteDemography either from a Spec or per-field
// setters.
type Builder struct {
	spec Spec
}

// MakeBuilder returns a new Builder with the default Spec.
func MakeBuilder() Builder {
	return Builder{spec: Defaults()}
}

// WithSpec replaces the whole spec.
func (b Builder) WithSpec(spec Spec) Builder {
	b.spec = spec.clone()
	return b
}

// WithMaxDemes sets the largest number of demes.
func (b Builder) WithMaxDemes(n int) Builder {
	b.spec.MaxDemes = n
	return b
}

// WithDemeSizes sets the initial deme sizes.
func (b Builder) WithDemeSizes(sizes ...uint32) Builder {
	b.spec.DemeSizes = append([]uint32{}, sizes...)
	return b
}

// WithSelfingRates sets one selfing rate per deme.
func (b Builder) WithSelfingRates(rates ...float64) Builder {
	b.spec.SelfingRates = append([]float64{}, rates...)
	return b
}

// WithGrowthRates sets one growth rate per deme.
func (b Builder) WithGrowthRates(rates ...float64) Builder {
	b.spec.GrowthRates = append([]float64{}, rates...)
	return b
}

// Build creates the demography. It panics if the spec is invalid.
func (b Builder) Build() *DiscreteDemography {
	if err := b.spec.Validate(); err != nil {
		panic(err)
	}

	return &DiscreteDemography{spec: b.spec.clone()}
}
