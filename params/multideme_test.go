package params

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/popgen/demography"
	"github.com/sarchlab/popgen/regions"
)

var _ = Describe("MultiDemeParams", func() {
	var (
		region  regions.Region
		builder MultiDemeBuilder
	)

	BeforeEach(func() {
		region = regions.Region{Beg: 0, End: 10, Weight: 1}
		builder = MakeMultiDemeBuilder().
			WithBase(MakeBuilder().
				WithNeutralRegions(region).
				WithSelectedRegions().
				WithRecombinationRegions(region)).
			WithDemographySpec(demography.Spec{
				MaxDemes:     3,
				DemeSizes:    []uint32{100, 200},
				SelfingRates: []float64{0, 0.1},
			}).
			WithRates(1e-3, 0, 1e-3)
	})

	It("should accept a complete parameter set", func() {
		Expect(builder.Build().Validate()).To(Succeed())
	})

	It("should reject a size history", func() {
		p := builder.Build()
		p.SetDemography(demography.Constant(100, 10))

		err := p.Validate()

		Expect(err).To(MatchError(ErrTypeMismatch))
		Expect(fieldOf(err)).To(Equal(OptDemography))
	})

	It("should reject an invalid discrete demography", func() {
		p := builder.Build()
		p.SetDemography(&demography.DiscreteDemography{})

		err := p.Validate()

		Expect(err).To(MatchError(ErrInvalidValue))
		Expect(fieldOf(err)).To(Equal(OptDemography))
	})

	It("should name the first unset rate", func() {
		p := builder.Build()
		p.SetRates(Rates{})

		err := p.Validate()

		Expect(fieldOf(err)).To(Equal(RateNeutralMutation))
	})

	It("should accept rates from options", func() {
		p, err := NewMultiDeme(map[string]any{
			OptRates: MakeRates(1, 0, 1),
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(*p.Rates().NeutralMutation).To(Equal(1.0))
	})

	It("should reject a selfing rate option", func() {
		_, err := NewMultiDeme(map[string]any{OptSelfingRate: 0.1})

		Expect(err).To(MatchError(ErrInvalidParameterName))
		Expect(fieldOf(err)).To(Equal(OptSelfingRate))
	})

	It("should clone the demography", func() {
		p := builder.Build()

		c := p.Clone()
		c.SetDemography(nil)

		Expect(p.Demography().NumDemes()).To(Equal(2))
		Expect(fieldOf(c.Validate())).To(Equal(OptDemography))
	})
})
