package params

import (
	"reflect"
	"sort"

	"github.com/samber/lo"

	"github.com/sarchlab/popgen/demography"
	"github.com/sarchlab/popgen/regions"
)

// Names of the options recognized when building parameters from a map.
const (
	OptNeutralRegions       = "nregions"
	OptSelectedRegions      = "sregions"
	OptRecombinationRegions = "recregions"
	OptDemography           = "demography"
	OptPruneSelected        = "prune_selected"

	OptRates       = "rates"
	OptSelfingRate = "selfing_rate"
)

var baseOptions = []string{
	OptNeutralRegions,
	OptSelectedRegions,
	OptRecombinationRegions,
	OptDemography,
	OptPruneSelected,
}

// RecognizedOptions returns the option names accepted by New, in the order
// they are applied.
func RecognizedOptions() []string {
	return append([]string{}, baseOptions...)
}

// SingleDemeOptions returns the option names accepted by NewSingleDeme.
func SingleDemeOptions() []string {
	return append(RecognizedOptions(), OptRates, OptSelfingRate)
}

// MultiDemeOptions returns the option names accepted by NewMultiDeme.
func MultiDemeOptions() []string {
	return append(RecognizedOptions(), OptRates)
}

type optionSetter func(value any) error

// applyOptions rejects unknown names before calling any setter, then applies
// the known ones in the given order.
func applyOptions(
	options map[string]any,
	order []string,
	setters map[string]optionSetter,
) error {
	unknown := lo.Filter(lo.Keys(options), func(name string, _ int) bool {
		_, ok := setters[name]
		return !ok
	})
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fieldError(unknown[0], ErrInvalidParameterName,
			"not a valid parameter for this model")
	}

	for _, name := range order {
		value, ok := options[name]
		if !ok {
			continue
		}

		if err := setters[name](value); err != nil {
			return err
		}
	}

	return nil
}

func (p *ModelParams) baseSetters() map[string]optionSetter {
	return map[string]optionSetter{
		OptNeutralRegions: func(v any) error {
			rs, err := toRegions(OptNeutralRegions, v)
			if err != nil {
				return err
			}

			p.SetNeutralRegions(rs)

			return nil
		},
		OptSelectedRegions: func(v any) error {
			ss, err := toSregions(v)
			if err != nil {
				return err
			}

			p.SetSelectedRegions(ss)

			return nil
		},
		OptRecombinationRegions: func(v any) error {
			rs, err := toRegions(OptRecombinationRegions, v)
			if err != nil {
				return err
			}

			p.SetRecombinationRegions(rs)

			return nil
		},
		OptDemography: func(v any) error {
			if v == nil {
				p.SetDemography(nil)
				return nil
			}

			d, ok := v.(demography.Demography)
			if !ok {
				return fieldError(OptDemography, ErrTypeMismatch,
					"%T is not a demography", v)
			}

			p.SetDemography(d)

			return nil
		},
		OptPruneSelected: func(v any) error {
			b, err := toBool(OptPruneSelected, v)
			if err != nil {
				return err
			}

			p.SetPruneSelected(b)

			return nil
		},
	}
}

func toRegions(name string, v any) ([]regions.Region, error) {
	switch rs := v.(type) {
	case nil:
		return nil, nil
	case []regions.Region:
		return rs, nil
	case []any:
		if err := ValidateTypes[regions.Region](rs, true); err != nil {
			return nil, &FieldError{Field: name, Err: err}
		}

		out := make([]regions.Region, len(rs))
		for i, r := range rs {
			out[i] = r.(regions.Region)
		}

		return out, nil
	}

	return nil, fieldError(name, ErrTypeMismatch,
		"%T is not a list of regions", v)
}

func toSregions(v any) ([]regions.Sregion, error) {
	switch ss := v.(type) {
	case nil:
		return nil, nil
	case []regions.Sregion:
		return ss, nil
	case []any:
		if err := ValidateTypes[regions.Sregion](ss, false); err != nil {
			return nil, &FieldError{Field: OptSelectedRegions, Err: err}
		}

		out := make([]regions.Sregion, len(ss))
		for i, s := range ss {
			out[i] = s.(regions.Sregion)
		}

		return out, nil
	}

	return nil, fieldError(OptSelectedRegions, ErrTypeMismatch,
		"%T is not a list of selected regions", v)
}

// toBool coerces the value the way a truth test would: zero numbers and empty
// strings, slices, and maps are false.
func toBool(name string, v any) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	case string:
		return b != "", nil
	}

	if f, ok := toFloat(v); ok {
		return f != 0, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() > 0, nil
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0, nil
	}

	return false, fieldError(name, ErrTypeMismatch,
		"cannot interpret %T as a boolean", v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}

	return 0, false
}

func toRates(v any) (Rates, error) {
	switch r := v.(type) {
	case nil:
		return Rates{}, nil
	case Rates:
		return r.clone(), nil
	case [3]float64:
		return MakeRates(r[0], r[1], r[2]), nil
	case []float64:
		if len(r) != 3 {
			return Rates{}, fieldError(OptRates, ErrInvalidValue,
				"need 3 rates, got %d", len(r))
		}

		return MakeRates(r[0], r[1], r[2]), nil
	case []any:
		return ratesFromList(r)
	}

	return Rates{}, fieldError(OptRates, ErrTypeMismatch,
		"%T is not a list of rates", v)
}

func ratesFromList(list []any) (Rates, error) {
	if len(list) != 3 {
		return Rates{}, fieldError(OptRates, ErrInvalidValue,
			"need 3 rates, got %d", len(list))
	}

	values := make([]*float64, 3)
	for i, item := range list {
		if item == nil {
			continue
		}

		f, ok := toFloat(item)
		if !ok {
			return Rates{}, fieldError(OptRates, ErrTypeMismatch,
				"rate %d: %T is not a number", i, item)
		}

		values[i] = &f
	}

	return Rates{
		NeutralMutation:  values[0],
		SelectedMutation: values[1],
		Recombination:    values[2],
	}, nil
}
