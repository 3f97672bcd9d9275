package params

import (
	"github.com/sarchlab/popgen/demography"
)

// MultiDemeParams parameterizes a single-locus simulation whose demography is
// a demography.DiscreteDemography.
type MultiDemeParams struct {
	ModelParams

	rates Rates
}

// NewMultiDeme creates a MultiDemeParams from named options. Besides the
// options accepted by New, it accepts "rates".
func NewMultiDeme(options map[string]any) (*MultiDemeParams, error) {
	p := &MultiDemeParams{ModelParams: newModelParams()}

	setters := p.baseSetters()
	setters[OptRates] = func(v any) error {
		r, err := toRates(v)
		if err != nil {
			return err
		}

		p.SetRates(r)

		return nil
	}

	if err := applyOptions(options, MultiDemeOptions(), setters); err != nil {
		return nil, err
	}

	return p, nil
}

// Rates returns a copy of the rates.
func (p *MultiDemeParams) Rates() Rates {
	return p.rates.clone()
}

// SetRates stores a copy of the rates.
func (p *MultiDemeParams) SetRates(r Rates) {
	p.rates = r.clone()
}

// Validate runs the checks of ModelParams, then checks the region types, the
// rates, the discrete demography and that every positive rate has regions to
// act on.
func (p *MultiDemeParams) Validate() error {
	err := p.validate()
	p.notifyValidated(p, err)

	return err
}

func (p *MultiDemeParams) validate() error {
	if err := p.validateFields(); err != nil {
		return err
	}

	if err := p.validateRegionTypes(); err != nil {
		return err
	}

	if err := ValidateSingleLocusRates(p.rates.Named()); err != nil {
		return err
	}

	d, ok := p.demography.(*demography.DiscreteDemography)
	if !ok {
		return fieldError(OptDemography, ErrTypeMismatch,
			"need %T, got %T", d, p.demography)
	}

	if err := d.Validate(); err != nil {
		return fieldError(OptDemography, ErrInvalidValue, "%v", err)
	}

	return p.validateContent(p.rates)
}

// Clone returns a deep copy. Hooks are shared with the original.
func (p *MultiDemeParams) Clone() *MultiDemeParams {
	return &MultiDemeParams{
		ModelParams: p.ModelParams.clone(),
		rates:       p.rates.clone(),
	}
}
