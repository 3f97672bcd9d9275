package params

import (
	"fmt"
	"math"
	"reflect"

	"github.com/sarchlab/popgen/demography"
)

// ValidateTypes checks that every element of data has type T.
//
// In strict mode the dynamic type of each element must be exactly T, so an
// implementation of an interface T is rejected. Otherwise each element only
// needs to be assignable to T. A nil element never matches.
func ValidateTypes[T any](data []any, strict bool) error {
	target := reflect.TypeOf((*T)(nil)).Elem()

	for _, item := range data {
		t := reflect.TypeOf(item)
		if t == nil || (strict && t != target) || !t.AssignableTo(target) {
			return fmt.Errorf("%w: invalid type: %s", ErrTypeMismatch, target)
		}
	}

	return nil
}

// ValidateSingleDemeDemography checks a population size history for a single
// deme. All sizes must be non-negative and value must be a
// demography.SizeHistory. The sign check runs first, so a negative entry is
// reported whatever the representation.
func ValidateSingleDemeDemography(value any) error {
	sizes, ok := numericEntries(value)
	if !ok {
		return fmt.Errorf("%w: population size history must be numeric, got %T",
			ErrInvalidValue, value)
	}

	for _, n := range sizes {
		if n < 0 {
			return fmt.Errorf("%w: all population sizes must be >= 0",
				ErrInvalidValue)
		}
	}

	if _, ok := value.(demography.SizeHistory); !ok {
		return fmt.Errorf(
			"%w: type for population size history must be %T, got %T",
			ErrInvalidValue, demography.SizeHistory(nil), value)
	}

	return nil
}

func numericEntries(value any) ([]float64, bool) {
	if h, ok := value.(demography.SizeHistory); ok {
		out := make([]float64, len(h))
		for i, n := range h {
			out[i] = float64(n)
		}

		return out, true
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		f, ok := toFloat(v.Index(i).Interface())
		if !ok {
			return nil, false
		}

		out[i] = f
	}

	return out, true
}

// NamedRate is a rate with the name used to report problems with it. A nil
// Value means the rate is unset.
type NamedRate struct {
	Name  string
	Value *float64
}

// ValidateSingleLocusRates checks that every rate is set and non-negative. The
// rates are scanned in order and the first offending one is reported.
func ValidateSingleLocusRates(rates []NamedRate) error {
	for _, r := range rates {
		if r.Value == nil {
			return fieldError(r.Name, ErrInvalidValue, "cannot be unset")
		}

		if math.IsNaN(*r.Value) || *r.Value < 0 {
			return fieldError(r.Name, ErrInvalidValue,
				"all mutation and recombination rates must be non-negative")
		}
	}

	return nil
}
