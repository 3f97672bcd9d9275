package regions

import (
	"fmt"
	"reflect"
)

// Sregion is a region that produces selected mutations. Implementations differ
// in the distribution of effect sizes they draw from.
type Sregion interface {
	// Region returns the interval the mutations are placed in.
	Region() Region

	// Scaling returns the value effect sizes are divided by.
	Scaling() float64

	// Dominance returns the heterozygous effect.
	Dominance() float64

	// Clone returns an independent copy.
	Clone() Sregion

	// Validate checks the region and the distribution parameters.
	Validate() error
}

type sregionBase struct {
	region    Region
	scaling   float64
	dominance float64
}

func (s sregionBase) Region() Region {
	return s.region
}

func (s sregionBase) Scaling() float64 {
	return s.scaling
}

func (s sregionBase) Dominance() float64 {
	return s.dominance
}

func (s sregionBase) validate() error {
	if err := s.region.Validate(); err != nil {
		return err
	}

	if !isFinite(s.scaling) {
		return fmt.Errorf("%w: scaling must be finite", ErrInvalidRegion)
	}

	if !isFinite(s.dominance) {
		return fmt.Errorf("%w: dominance must be finite", ErrInvalidRegion)
	}

	return nil
}

// ExpS draws effect sizes from an exponential distribution.
type ExpS struct {
	sregionBase
	Mean float64
}

// Clone returns an independent copy.
func (s *ExpS) Clone() Sregion {
	c := *s
	return &c
}

// Validate checks the region and the mean.
func (s *ExpS) Validate() error {
	if err := s.validate(); err != nil {
		return err
	}

	if !isFinite(s.Mean) {
		return fmt.Errorf("%w: mean must be finite", ErrInvalidRegion)
	}

	return nil
}

// GammaS draws effect sizes from a gamma distribution.
type GammaS struct {
	sregionBase
	Mean  float64
	Shape float64
}

// Clone returns an independent copy.
func (s *GammaS) Clone() Sregion {
	c := *s
	return &c
}

// Validate checks the region, the mean and the shape.
func (s *GammaS) Validate() error {
	if err := s.validate(); err != nil {
		return err
	}

	if !isFinite(s.Mean) {
		return fmt.Errorf("%w: mean must be finite", ErrInvalidRegion)
	}

	if !isFinite(s.Shape) || s.Shape <= 0 {
		return fmt.Errorf("%w: shape must be finite and > 0", ErrInvalidRegion)
	}

	return nil
}

// ConstantS gives every mutation the same effect size.
type ConstantS struct {
	sregionBase
	S float64
}

// Clone returns an independent copy.
func (s *ConstantS) Clone() Sregion {
	c := *s
	return &c
}

// Validate checks the region and the effect size.
func (s *ConstantS) Validate() error {
	if err := s.validate(); err != nil {
		return err
	}

	if !isFinite(s.S) {
		return fmt.Errorf("%w: s must be finite", ErrInvalidRegion)
	}

	return nil
}

// CloneSregions deep-copies the slice. A nil input stays nil. Nil entries,
// including nil pointers held in the interface, are stored as nil.
func CloneSregions(ss []Sregion) []Sregion {
	if ss == nil {
		return nil
	}

	out := make([]Sregion, len(ss))
	for i, s := range ss {
		if !isNilSregion(s) {
			out[i] = s.Clone()
		}
	}

	return out
}

func isNilSregion(s Sregion) bool {
	if s == nil {
		return true
	}

	rv := reflect.ValueOf(s)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
