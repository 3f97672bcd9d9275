package regions

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Region", func() {
	It("should create a valid region", func() {
		r, err := NewRegion(0, 10, 0.5, true, 3)

		Expect(err).ToNot(HaveOccurred())
		Expect(r.Label).To(Equal(uint16(3)))
		Expect(r.EffectiveWeight()).To(Equal(5.0))
	})

	It("should not scale the weight of an uncoupled region", func() {
		r := Region{Beg: 0, End: 10, Weight: 0.5}

		Expect(r.EffectiveWeight()).To(Equal(0.5))
	})

	DescribeTable("should reject malformed regions",
		func(r Region) {
			Expect(r.Validate()).To(MatchError(ErrInvalidRegion))
		},
		Entry("empty", Region{Beg: 1, End: 1, Weight: 1}),
		Entry("reversed", Region{Beg: 2, End: 1, Weight: 1}),
		Entry("infinite end", Region{Beg: 0, End: math.Inf(1), Weight: 1}),
		Entry("NaN weight", Region{Beg: 0, End: 1, Weight: math.NaN()}),
		Entry("negative weight", Region{Beg: 0, End: 1, Weight: -1}),
	)

	It("should sum effective weights", func() {
		rs := []Region{
			{Beg: 0, End: 2, Weight: 1, Coupled: true},
			{Beg: 0, End: 2, Weight: 1},
		}

		Expect(TotalWeight(rs)).To(Equal(3.0))
	})

	It("should keep nil and empty slices apart when copying", func() {
		Expect(CopyRegions(nil)).To(BeNil())
		Expect(CopyRegions([]Region{})).ToNot(BeNil())
	})
})

var _ = Describe("Sregion", func() {
	var b SregionBuilder

	BeforeEach(func() {
		b = MakeSregionBuilder().WithInterval(0, 1)
	})

	It("should use the default dominance, scaling and coupling", func() {
		s := b.BuildExpS(-0.1)

		Expect(s.Dominance()).To(Equal(1.0))
		Expect(s.Scaling()).To(Equal(1.0))
		Expect(s.Region().Coupled).To(BeTrue())
		Expect(s.Validate()).To(Succeed())
	})

	It("should apply the builder settings", func() {
		s := b.WithDominance(0.5).
			WithScaling(2).
			WithLabel(7).
			WithWeight(3).
			WithCoupled(false).
			BuildConstantS(0.01)

		Expect(s.Dominance()).To(Equal(0.5))
		Expect(s.Scaling()).To(Equal(2.0))
		Expect(s.Region()).To(Equal(
			Region{Beg: 0, End: 1, Weight: 3, Label: 7}))
	})

	It("should reject a non-finite scaling", func() {
		s := b.WithScaling(math.Inf(-1)).BuildExpS(-0.1)

		Expect(s.Validate()).To(MatchError(ErrInvalidRegion))
	})

	It("should reject a non-finite mean", func() {
		Expect(b.BuildExpS(math.NaN()).Validate()).
			To(MatchError(ErrInvalidRegion))
		Expect(b.BuildGammaS(math.Inf(1), 1).Validate()).
			To(MatchError(ErrInvalidRegion))
	})

	It("should reject a gamma shape that is not positive", func() {
		Expect(b.BuildGammaS(-0.1, 0).Validate()).
			To(MatchError(ErrInvalidRegion))
	})

	It("should reject an invalid interval", func() {
		s := b.WithInterval(1, 0).BuildConstantS(0.1)

		Expect(s.Validate()).To(MatchError(ErrInvalidRegion))
	})

	It("should clone into an independent value", func() {
		s := b.BuildGammaS(-0.1, 0.5)

		c := s.Clone().(*GammaS)
		c.Shape = 2

		Expect(c).ToNot(BeIdenticalTo(s))
		Expect(s.Shape).To(Equal(0.5))
	})

	It("should deep-copy slices of selected regions", func() {
		ss := []Sregion{b.BuildExpS(-0.1), nil}

		out := CloneSregions(ss)

		Expect(out).To(HaveLen(2))
		Expect(out[0]).To(Equal(ss[0]))
		Expect(out[0]).ToNot(BeIdenticalTo(ss[0]))
		Expect(out[1]).To(BeNil())
		Expect(CloneSregions(nil)).To(BeNil())
	})

	It("should store nil pointers held in the interface as nil", func() {
		ss := []Sregion{(*ExpS)(nil), (*GammaS)(nil), (*ConstantS)(nil)}

		var out []Sregion
		Expect(func() { out = CloneSregions(ss) }).ToNot(Panic())

		Expect(out).To(HaveLen(3))
		for _, s := range out {
			Expect(s == nil).To(BeTrue())
		}
	})
})
