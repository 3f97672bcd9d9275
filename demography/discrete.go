package demography

// DiscreteDemography is a multi-deme demography. Missing selfing rates default
// to 0 and missing growth rates default to 1.
type DiscreteDemography struct {
	spec Spec
}

// New creates a DiscreteDemography after validating the spec.
func New(spec Spec) (*DiscreteDemography, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &DiscreteDemography{spec: spec.clone()}, nil
}

// Validate checks the underlying spec.
func (d *DiscreteDemography) Validate() error {
	return d.spec.Validate()
}

// Spec returns a copy of the configuration.
func (d *DiscreteDemography) Spec() Spec {
	return d.spec.clone()
}

// MaxDemes returns the largest number of demes the history may reach.
func (d *DiscreteDemography) MaxDemes() int {
	return d.spec.MaxDemes
}

// NumDemes returns the initial number of demes.
func (d *DiscreteDemography) NumDemes() int {
	return len(d.spec.DemeSizes)
}

// DemeSize returns the initial size of deme i.
func (d *DiscreteDemography) DemeSize(i int) uint32 {
	return d.spec.DemeSizes[i]
}

// SelfingRate returns the selfing rate of deme i.
func (d *DiscreteDemography) SelfingRate(i int) float64 {
	if d.spec.SelfingRates == nil {
		return 0
	}

	return d.spec.SelfingRates[i]
}

// GrowthRate returns the growth rate of deme i.
func (d *DiscreteDemography) GrowthRate(i int) float64 {
	if d.spec.GrowthRates == nil {
		return 1
	}

	return d.spec.GrowthRates[i]
}

// Clone returns an independent copy.
func (d *DiscreteDemography) Clone() Demography {
	return &DiscreteDemography{spec: d.spec.clone()}
}
