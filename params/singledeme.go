package params

import (
	"math"

	"github.com/sarchlab/popgen/demography"
)

// SingleDemeParams parameterizes a single-locus simulation of one deme whose
// size history is a demography.SizeHistory.
type SingleDemeParams struct {
	ModelParams

	rates       Rates
	selfingRate float64
}

// NewSingleDeme creates a SingleDemeParams from named options. Besides the
// options accepted by New, it accepts "rates" and "selfing_rate".
func NewSingleDeme(options map[string]any) (*SingleDemeParams, error) {
	p := &SingleDemeParams{ModelParams: newModelParams()}

	setters := p.baseSetters()
	setters[OptDemography] = p.setDemographyOption
	setters[OptRates] = func(v any) error {
		r, err := toRates(v)
		if err != nil {
			return err
		}

		p.SetRates(r)

		return nil
	}
	setters[OptSelfingRate] = func(v any) error {
		f, ok := toFloat(v)
		if !ok {
			return fieldError(OptSelfingRate, ErrTypeMismatch,
				"%T is not a number", v)
		}

		p.SetSelfingRate(f)

		return nil
	}

	if err := applyOptions(options, SingleDemeOptions(), setters); err != nil {
		return nil, err
	}

	return p, nil
}

// setDemographyOption reports why a value that is not a demography cannot
// stand for a size history.
func (p *SingleDemeParams) setDemographyOption(v any) error {
	if v == nil {
		p.SetDemography(nil)
		return nil
	}

	if d, ok := v.(demography.Demography); ok {
		p.SetDemography(d)
		return nil
	}

	if err := ValidateSingleDemeDemography(v); err != nil {
		return &FieldError{Field: OptDemography, Err: err}
	}

	return fieldError(OptDemography, ErrTypeMismatch,
		"%T is not a demography", v)
}

// Rates returns a copy of the rates.
func (p *SingleDemeParams) Rates() Rates {
	return p.rates.clone()
}

// SetRates stores a copy of the rates.
func (p *SingleDemeParams) SetRates(r Rates) {
	p.rates = r.clone()
}

// SelfingRate returns the probability that an individual self-fertilizes.
func (p *SingleDemeParams) SelfingRate() float64 {
	return p.selfingRate
}

// SetSelfingRate sets the selfing probability.
func (p *SingleDemeParams) SetSelfingRate(rate float64) {
	p.selfingRate = rate
}

// SizeHistory returns the size history, or nil if the demography is unset or
// is not a size history.
func (p *SingleDemeParams) SizeHistory() demography.SizeHistory {
	h, _ := p.demography.(demography.SizeHistory)
	if h == nil {
		return nil
	}

	return demography.NewSizeHistory(h...)
}

// Validate runs the checks of ModelParams, then checks the region types, the
// rates, the size history, the selfing rate and that every positive rate has
// regions to act on.
func (p *SingleDemeParams) Validate() error {
	err := p.validate()
	p.notifyValidated(p, err)

	return err
}

func (p *SingleDemeParams) validate() error {
	if err := p.validateFields(); err != nil {
		return err
	}

	if err := p.validateRegionTypes(); err != nil {
		return err
	}

	if err := ValidateSingleLocusRates(p.rates.Named()); err != nil {
		return err
	}

	if err := ValidateSingleDemeDemography(p.demography); err != nil {
		return &FieldError{Field: OptDemography, Err: err}
	}

	if math.IsNaN(p.selfingRate) || p.selfingRate < 0 || p.selfingRate > 1 {
		return fieldError(OptSelfingRate, ErrInvalidValue,
			"must be in [0, 1]")
	}

	return p.validateContent(p.rates)
}

// Clone returns a deep copy. Hooks are shared with the original.
func (p *SingleDemeParams) Clone() *SingleDemeParams {
	return &SingleDemeParams{
		ModelParams: p.ModelParams.clone(),
		rates:       p.rates.clone(),
		selfingRate: p.selfingRate,
	}
}
