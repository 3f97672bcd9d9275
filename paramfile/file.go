// Package paramfile reads simulation parameters from YAML or JSON files.
//
// A file names its model and lists the options of that model:
//
//	model: single
//	nregions:
//	  - {beg: 0, end: 1}
//	sregions:
//	  - {type: exp, beg: 0, end: 1, mean: -0.05}
//	recregions:
//	  - {beg: 0, end: 1}
//	demography:
//	  sizes: [1000, 1000, 1000]
//	rates: [0.001, 0.0005, 0.001]
//
// Unknown keys are rejected, both at the top level and inside regions.
package paramfile

import (
	"errors"
	"fmt"

	"github.com/sarchlab/popgen/demography"
	"github.com/sarchlab/popgen/params"
	"github.com/sarchlab/popgen/regions"
)

var (
	// ErrUnknownModel is returned when the model is neither single nor multi.
	ErrUnknownModel = errors.New("paramfile: unknown model")

	// ErrUnknownSregionType is returned for an unsupported selected region
	// type.
	ErrUnknownSregionType = errors.New("paramfile: unknown selected region type")

	// ErrKeyNotInModel is returned for a demography key that the file's model
	// does not use.
	ErrKeyNotInModel = errors.New("paramfile: key does not belong to the model")
)

// Model names accepted in the model key.
const (
	ModelSingle = "single"
	ModelMulti  = "multi"
)

// File is the decoded content of a parameter file. Absent keys stay nil and
// leave the matching option unset.
type File struct {
	Model                string            `yaml:"model" json:"model"`
	PruneSelected        *bool             `yaml:"prune_selected" json:"prune_selected"`
	NeutralRegions       []RegionConfig    `yaml:"nregions" json:"nregions"`
	SelectedRegions      []SregionConfig   `yaml:"sregions" json:"sregions"`
	RecombinationRegions []RegionConfig    `yaml:"recregions" json:"recregions"`
	Demography           *DemographyConfig `yaml:"demography" json:"demography"`
	Rates                []*float64        `yaml:"rates" json:"rates"`
	SelfingRate          *float64          `yaml:"selfing_rate" json:"selfing_rate"`
}

// RegionConfig describes a region. Weight defaults to 1 and Coupled to true.
type RegionConfig struct {
	Beg     float64  `yaml:"beg" json:"beg"`
	End     float64  `yaml:"end" json:"end"`
	Weight  *float64 `yaml:"weight" json:"weight"`
	Coupled *bool    `yaml:"coupled" json:"coupled"`
	Label   uint16   `yaml:"label" json:"label"`
}

// SregionConfig describes a selected region. Type is one of exp, gamma or
// const. H and Scaling default to 1.
type SregionConfig struct {
	RegionConfig `yaml:",inline"`

	Type    string   `yaml:"type" json:"type"`
	Mean    float64  `yaml:"mean" json:"mean"`
	Shape   float64  `yaml:"shape" json:"shape"`
	S       float64  `yaml:"s" json:"s"`
	H       *float64 `yaml:"h" json:"h"`
	Scaling *float64 `yaml:"scaling" json:"scaling"`
}

// DemographyConfig describes either a size history, for the single model, or
// a discrete demography, for the multi model.
type DemographyConfig struct {
	Sizes        []int64   `yaml:"sizes" json:"sizes"`
	MaxDemes     int       `yaml:"max_demes" json:"max_demes"`
	DemeSizes    []uint32  `yaml:"deme_sizes" json:"deme_sizes"`
	SelfingRates []float64 `yaml:"selfing_rates" json:"selfing_rates"`
	GrowthRates  []float64 `yaml:"growth_rates" json:"growth_rates"`
}

func (c RegionConfig) region() regions.Region {
	r := regions.Region{
		Beg:     c.Beg,
		End:     c.End,
		Weight:  1,
		Coupled: true,
		Label:   c.Label,
	}

	if c.Weight != nil {
		r.Weight = *c.Weight
	}

	if c.Coupled != nil {
		r.Coupled = *c.Coupled
	}

	return r
}

func (c SregionConfig) sregion() (regions.Sregion, error) {
	b := regions.MakeSregionBuilder().WithRegion(c.region())

	if c.H != nil {
		b = b.WithDominance(*c.H)
	}

	if c.Scaling != nil {
		b = b.WithScaling(*c.Scaling)
	}

	switch c.Type {
	case "exp":
		return b.BuildExpS(c.Mean), nil
	case "gamma":
		return b.BuildGammaS(c.Mean, c.Shape), nil
	case "const":
		return b.BuildConstantS(c.S), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSregionType, c.Type)
}

func regionList(cs []RegionConfig) []any {
	if cs == nil {
		return nil
	}

	out := make([]any, len(cs))
	for i, c := range cs {
		out[i] = c.region()
	}

	return out
}

func sregionList(cs []SregionConfig) ([]any, error) {
	if cs == nil {
		return nil, nil
	}

	out := make([]any, len(cs))
	for i, c := range cs {
		s, err := c.sregion()
		if err != nil {
			return nil, fmt.Errorf("sregions[%d]: %w", i, err)
		}

		out[i] = s
	}

	return out, nil
}

// Options converts the file into the option map of its model.
func (f *File) Options() (map[string]any, error) {
	options := make(map[string]any)

	if f.PruneSelected != nil {
		options[params.OptPruneSelected] = *f.PruneSelected
	}

	if f.NeutralRegions != nil {
		options[params.OptNeutralRegions] = regionList(f.NeutralRegions)
	}

	if f.SelectedRegions != nil {
		ss, err := sregionList(f.SelectedRegions)
		if err != nil {
			return nil, err
		}

		options[params.OptSelectedRegions] = ss
	}

	if f.RecombinationRegions != nil {
		options[params.OptRecombinationRegions] =
			regionList(f.RecombinationRegions)
	}

	if f.Demography != nil {
		d, err := f.demography()
		if err != nil {
			return nil, err
		}

		options[params.OptDemography] = d
	}

	if f.Rates != nil {
		rates := make([]any, len(f.Rates))
		for i, r := range f.Rates {
			if r != nil {
				rates[i] = *r
			}
		}

		options[params.OptRates] = rates
	}

	if f.SelfingRate != nil {
		options[params.OptSelfingRate] = *f.SelfingRate
	}

	return options, nil
}

// checkKeys rejects the keys that belong to the other model.
func (c *DemographyConfig) checkKeys(model string) error {
	var foreign []string

	if model == ModelSingle {
		if c.MaxDemes != 0 {
			foreign = append(foreign, "max_demes")
		}

		if c.DemeSizes != nil {
			foreign = append(foreign, "deme_sizes")
		}

		if c.SelfingRates != nil {
			foreign = append(foreign, "selfing_rates")
		}

		if c.GrowthRates != nil {
			foreign = append(foreign, "growth_rates")
		}
	} else if c.Sizes != nil {
		foreign = append(foreign, "sizes")
	}

	if len(foreign) > 0 {
		return fmt.Errorf("%w: demography: %s not used by the %s model",
			ErrKeyNotInModel, foreign[0], model)
	}

	return nil
}

func (f *File) demography() (demography.Demography, error) {
	c := f.Demography

	if err := c.checkKeys(f.Model); err != nil {
		return nil, err
	}

	if f.Model == ModelSingle {
		if c.Sizes == nil {
			return nil, fmt.Errorf(
				"paramfile: demography: the single model needs sizes")
		}

		return demography.NewSizeHistory(c.Sizes...), nil
	}

	d, err := demography.New(demography.Spec{
		MaxDemes:     c.MaxDemes,
		DemeSizes:    c.DemeSizes,
		SelfingRates: c.SelfingRates,
		GrowthRates:  c.GrowthRates,
	})
	if err != nil {
		return nil, fmt.Errorf("paramfile: demography: %w", err)
	}

	return d, nil
}

// Build creates the parameters of the file's model. The result is not
// validated.
func (f *File) Build() (params.Params, error) {
	if f.Model != ModelSingle && f.Model != ModelMulti {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, f.Model)
	}

	options, err := f.Options()
	if err != nil {
		return nil, err
	}

	if f.Model == ModelSingle {
		p, err := params.NewSingleDeme(options)
		if err != nil {
			return nil, err
		}

		return p, nil
	}

	p, err := params.NewMultiDeme(options)
	if err != nil {
		return nil, err
	}

	return p, nil
}
