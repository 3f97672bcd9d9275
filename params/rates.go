package params

import (
	"github.com/sarchlab/popgen/regions"
)

// Names used to report problems with the single-locus rates.
const (
	RateNeutralMutation  = "neutral mutation rate"
	RateSelectedMutation = "selected mutation rate"
	RateRecombination    = "recombination rate"
)

// Rates holds the per-generation rates of a single locus. A nil rate is unset.
type Rates struct {
	NeutralMutation  *float64
	SelectedMutation *float64
	Recombination    *float64
}

// MakeRates returns Rates with all three rates set.
func MakeRates(neutral, selected, recombination float64) Rates {
	return Rates{
		NeutralMutation:  &neutral,
		SelectedMutation: &selected,
		Recombination:    &recombination,
	}
}

// Named lists the rates in the order they are validated.
func (r Rates) Named() []NamedRate {
	return []NamedRate{
		{Name: RateNeutralMutation, Value: r.NeutralMutation},
		{Name: RateSelectedMutation, Value: r.SelectedMutation},
		{Name: RateRecombination, Value: r.Recombination},
	}
}

func (r Rates) clone() Rates {
	return Rates{
		NeutralMutation:  copyFloat(r.NeutralMutation),
		SelectedMutation: copyFloat(r.SelectedMutation),
		Recombination:    copyFloat(r.Recombination),
	}
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}

	v := *f

	return &v
}

func positive(f *float64) bool {
	return f != nil && *f > 0
}

// validateContent checks each region and that every positive rate has regions
// to act on. It expects the rates and the fields to have been validated.
func (p *ModelParams) validateContent(rates Rates) error {
	if err := p.validateRegionEntries(); err != nil {
		return err
	}

	switch {
	case positive(rates.NeutralMutation) && len(p.nregions) == 0:
		return fieldError(OptNeutralRegions, ErrInvalidValue,
			"%s is positive but there are no neutral regions",
			RateNeutralMutation)
	case positive(rates.SelectedMutation) && len(p.sregions) == 0:
		return fieldError(OptSelectedRegions, ErrInvalidValue,
			"%s is positive but there are no selected regions",
			RateSelectedMutation)
	case positive(rates.Recombination) && len(p.recregions) == 0:
		return fieldError(OptRecombinationRegions, ErrInvalidValue,
			"%s is positive but there are no recombination regions",
			RateRecombination)
	}

	return nil
}

// validateRegionTypes rejects nil entries among the selected regions.
func (p *ModelParams) validateRegionTypes() error {
	sregions := make([]any, len(p.sregions))
	for i, s := range p.sregions {
		sregions[i] = s
	}

	if err := ValidateTypes[regions.Sregion](sregions, false); err != nil {
		return &FieldError{Field: OptSelectedRegions, Err: err}
	}

	return nil
}

func (p *ModelParams) validateRegionEntries() error {
	if err := validateEach(OptNeutralRegions, p.nregions); err != nil {
		return err
	}

	for i, s := range p.sregions {
		if err := s.Validate(); err != nil {
			return fieldError(OptSelectedRegions, ErrInvalidValue,
				"region %d: %v", i, err)
		}
	}

	return validateEach(OptRecombinationRegions, p.recregions)
}

func validateEach(name string, rs []regions.Region) error {
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return fieldError(name, ErrInvalidValue, "region %d: %v", i, err)
		}
	}

	return nil
}
