package demography

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSpec is returned when a discrete demography is misconfigured.
var ErrInvalidSpec = errors.New("demography: invalid spec")

// Spec holds the configuration of a discrete, multi-deme demography.
type Spec struct {
	MaxDemes  int
	DemeSizes []uint32

	// SelfingRates and GrowthRates are optional. When given, they need one
	// entry per deme.
	SelfingRates []float64
	GrowthRates  []float64
}

// Validate checks the spec.
func (s Spec) Validate() error {
	if s.MaxDemes <= 0 {
		return fmt.Errorf("%w: max demes must be > 0", ErrInvalidSpec)
	}

	if len(s.DemeSizes) == 0 {
		return fmt.Errorf("%w: at least one deme is required", ErrInvalidSpec)
	}

	if len(s.DemeSizes) > s.MaxDemes {
		return fmt.Errorf("%w: %d demes exceed max demes %d",
			ErrInvalidSpec, len(s.DemeSizes), s.MaxDemes)
	}

	total := uint64(0)
	for _, n := range s.DemeSizes {
		total += uint64(n)
	}

	if total == 0 {
		return fmt.Errorf("%w: total population size must be > 0",
			ErrInvalidSpec)
	}

	if err := s.validateSelfing(); err != nil {
		return err
	}

	return s.validateGrowth()
}

func (s Spec) validateSelfing() error {
	if s.SelfingRates == nil {
		return nil
	}

	if len(s.SelfingRates) != len(s.DemeSizes) {
		return fmt.Errorf("%w: need %d selfing rates, got %d",
			ErrInvalidSpec, len(s.DemeSizes), len(s.SelfingRates))
	}

	for i, r := range s.SelfingRates {
		if math.IsNaN(r) || r < 0 || r > 1 {
			return fmt.Errorf("%w: selfing rate of deme %d must be in [0, 1]",
				ErrInvalidSpec, i)
		}
	}

	return nil
}

func (s Spec) validateGrowth() error {
	if s.GrowthRates == nil {
		return nil
	}

	if len(s.GrowthRates) != len(s.DemeSizes) {
		return fmt.Errorf("%w: need %d growth rates, got %d",
			ErrInvalidSpec, len(s.DemeSizes), len(s.GrowthRates))
	}

	for i, g := range s.GrowthRates {
		if math.IsNaN(g) || math.IsInf(g, 0) || g <= 0 {
			return fmt.Errorf("%w: growth rate of deme %d must be finite and > 0",
				ErrInvalidSpec, i)
		}
	}

	return nil
}

// Defaults returns a Spec with a single deme of 1000 individuals.
func Defaults() Spec {
	return Spec{
		MaxDemes:  1,
		DemeSizes: []uint32{1000},
	}
}

func (s Spec) clone() Spec {
	c := Spec{MaxDemes: s.MaxDemes}

	if s.DemeSizes != nil {
		c.DemeSizes = append([]uint32{}, s.DemeSizes...)
	}

	if s.SelfingRates != nil {
		c.SelfingRates = append([]float64{}, s.SelfingRates...)
	}

	if s.GrowthRates != nil {
		c.GrowthRates = append([]float64{}, s.GrowthRates...)
	}

	return c
}
