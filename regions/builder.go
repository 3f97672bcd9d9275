package regions

// SregionBuilder builds selected regions. The defaults are a coupled region
// with label 0, dominance 1 and scaling 1.
type SregionBuilder struct {
	region    Region
	scaling   float64
	dominance float64
}

// MakeSregionBuilder returns a builder with default values.
func MakeSregionBuilder() SregionBuilder {
	return SregionBuilder{
		region:    Region{Weight: 1, Coupled: true},
		scaling:   1,
		dominance: 1,
	}
}

// WithInterval sets the bounds of the region.
func (b SregionBuilder) WithInterval(beg, end float64) SregionBuilder {
	b.region.Beg = beg
	b.region.End = end

	return b
}

// WithWeight sets the weight of the region.
func (b SregionBuilder) WithWeight(w float64) SregionBuilder {
	b.region.Weight = w
	return b
}

// WithCoupled sets whether the weight is per unit length.
func (b SregionBuilder) WithCoupled(coupled bool) SregionBuilder {
	b.region.Coupled = coupled
	return b
}

// WithLabel sets the label given to mutations from the region.
func (b SregionBuilder) WithLabel(label uint16) SregionBuilder {
	b.region.Label = label
	return b
}

// WithRegion copies all the interval fields from r.
func (b SregionBuilder) WithRegion(r Region) SregionBuilder {
	b.region = r
	return b
}

// WithScaling sets the value effect sizes are divided by.
func (b SregionBuilder) WithScaling(scaling float64) SregionBuilder {
	b.scaling = scaling
	return b
}

// WithDominance sets the heterozygous effect.
func (b SregionBuilder) WithDominance(h float64) SregionBuilder {
	b.dominance = h
	return b
}

func (b SregionBuilder) base() sregionBase {
	return sregionBase{
		region:    b.region,
		scaling:   b.scaling,
		dominance: b.dominance,
	}
}

// BuildExpS builds an exponential DFE region with the given mean.
func (b SregionBuilder) BuildExpS(mean float64) *ExpS {
	return &ExpS{sregionBase: b.base(), Mean: mean}
}

// BuildGammaS builds a gamma DFE region with the given mean and shape.
func (b SregionBuilder) BuildGammaS(mean, shape float64) *GammaS {
	return &GammaS{sregionBase: b.base(), Mean: mean, Shape: shape}
}

// BuildConstantS builds a region where every mutation has effect s.
func (b SregionBuilder) BuildConstantS(s float64) *ConstantS {
	return &ConstantS{sregionBase: b.base(), S: s}
}
