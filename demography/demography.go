// Package demography describes population size and structure over time.
package demography

// Demography is a description of population history. Values are opaque to the
// parameter containers beyond cloning and the number of demes.
type Demography interface {
	// NumDemes returns the number of demes the history starts with.
	NumDemes() int

	// Clone returns an independent copy.
	Clone() Demography
}

// SizeHistory is the population size of a single deme, one entry per
// generation. It is the numeric array representation the single-deme model
// requires; plain integer slices are not accepted in its place.
type SizeHistory []int64

// NewSizeHistory copies sizes into a new SizeHistory.
func NewSizeHistory(sizes ...int64) SizeHistory {
	h := make(SizeHistory, len(sizes))
	copy(h, sizes)

	return h
}

// Constant returns a history of n individuals for the given generations.
func Constant(n int64, generations int) SizeHistory {
	h := make(SizeHistory, generations)
	for i := range h {
		h[i] = n
	}

	return h
}

// NumDemes is always 1.
func (h SizeHistory) NumDemes() int {
	return 1
}

// Generations returns the number of generations to simulate.
func (h SizeHistory) Generations() int {
	return len(h)
}

// Clone returns an independent copy.
func (h SizeHistory) Clone() Demography {
	if h == nil {
		return SizeHistory(nil)
	}

	return NewSizeHistory(h...)
}
