// Package regions describes the genomic intervals that mutation and
// recombination events are drawn from.
package regions

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRegion is returned when a region descriptor is malformed.
var ErrInvalidRegion = errors.New("regions: invalid region")

// Region is a half-open genomic interval [Beg, End) with a weight and a label.
type Region struct {
	Beg    float64
	End    float64
	Weight float64

	// Coupled regions interpret Weight per unit length, so the effective
	// weight is (End-Beg)*Weight.
	Coupled bool
	Label   uint16
}

// NewRegion creates a validated region.
func NewRegion(
	beg, end, weight float64,
	coupled bool,
	label uint16,
) (Region, error) {
	r := Region{
		Beg:     beg,
		End:     end,
		Weight:  weight,
		Coupled: coupled,
		Label:   label,
	}

	if err := r.Validate(); err != nil {
		return Region{}, err
	}

	return r, nil
}

// Validate checks that the bounds and the weight are usable.
func (r Region) Validate() error {
	if !isFinite(r.Beg) || !isFinite(r.End) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRegion)
	}

	if r.Beg >= r.End {
		return fmt.Errorf("%w: beg (%g) must be less than end (%g)",
			ErrInvalidRegion, r.Beg, r.End)
	}

	if !isFinite(r.Weight) {
		return fmt.Errorf("%w: weight must be finite", ErrInvalidRegion)
	}

	if r.Weight < 0 {
		return fmt.Errorf("%w: weight must be >= 0", ErrInvalidRegion)
	}

	return nil
}

// Length returns End-Beg.
func (r Region) Length() float64 {
	return r.End - r.Beg
}

// EffectiveWeight returns the weight used when choosing among regions.
func (r Region) EffectiveWeight() float64 {
	if r.Coupled {
		return r.Length() * r.Weight
	}

	return r.Weight
}

// TotalWeight sums the effective weights of the regions.
func TotalWeight(rs []Region) float64 {
	total := 0.0
	for _, r := range rs {
		total += r.EffectiveWeight()
	}

	return total
}

// CopyRegions returns a copy of the slice. A nil input stays nil.
func CopyRegions(rs []Region) []Region {
	if rs == nil {
		return nil
	}

	out := make([]Region, len(rs))
	copy(out, rs)

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
