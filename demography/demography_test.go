package demography

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SizeHistory", func() {
	It("should build a constant history", func() {
		h := Constant(50, 3)

		Expect(h).To(Equal(SizeHistory{50, 50, 50}))
		Expect(h.Generations()).To(Equal(3))
		Expect(h.NumDemes()).To(Equal(1))
	})

	It("should not alias its input", func() {
		sizes := []int64{1, 2}
		h := NewSizeHistory(sizes...)

		sizes[0] = 9

		Expect(h[0]).To(Equal(int64(1)))
	})

	It("should clone into an independent history", func() {
		h := NewSizeHistory(1, 2)

		c := h.Clone().(SizeHistory)
		c[0] = 9

		Expect(h[0]).To(Equal(int64(1)))
	})
})

var _ = Describe("DiscreteDemography", func() {
	It("should build from the defaults", func() {
		d := MakeBuilder().Build()

		Expect(d.NumDemes()).To(Equal(1))
		Expect(d.DemeSize(0)).To(Equal(uint32(1000)))
		Expect(d.SelfingRate(0)).To(Equal(0.0))
		Expect(d.GrowthRate(0)).To(Equal(1.0))
	})

	It("should build from per-field settings", func() {
		d := MakeBuilder().
			WithMaxDemes(4).
			WithDemeSizes(10, 20).
			WithSelfingRates(0.1, 0.2).
			WithGrowthRates(1.1, 0.9).
			Build()

		Expect(d.MaxDemes()).To(Equal(4))
		Expect(d.NumDemes()).To(Equal(2))
		Expect(d.SelfingRate(1)).To(Equal(0.2))
		Expect(d.GrowthRate(0)).To(Equal(1.1))
	})

	It("should panic when built from an invalid spec", func() {
		Expect(func() {
			MakeBuilder().WithDemeSizes(1, 2).Build()
		}).To(Panic())
	})

	DescribeTable("should reject invalid specs",
		func(spec Spec) {
			d, err := New(spec)

			Expect(d).To(BeNil())
			Expect(err).To(MatchError(ErrInvalidSpec))
		},
		Entry("no max demes", Spec{DemeSizes: []uint32{1}}),
		Entry("no demes", Spec{MaxDemes: 1}),
		Entry("too many demes",
			Spec{MaxDemes: 1, DemeSizes: []uint32{1, 1}}),
		Entry("empty population",
			Spec{MaxDemes: 2, DemeSizes: []uint32{0, 0}}),
		Entry("selfing count",
			Spec{MaxDemes: 1, DemeSizes: []uint32{1},
				SelfingRates: []float64{0, 0}}),
		Entry("selfing above one",
			Spec{MaxDemes: 1, DemeSizes: []uint32{1},
				SelfingRates: []float64{1.5}}),
		Entry("growth count",
			Spec{MaxDemes: 2, DemeSizes: []uint32{1, 1},
				GrowthRates: []float64{1}}),
		Entry("zero growth",
			Spec{MaxDemes: 1, DemeSizes: []uint32{1},
				GrowthRates: []float64{0}}),
		Entry("infinite growth",
			Spec{MaxDemes: 1, DemeSizes: []uint32{1},
				GrowthRates: []float64{math.Inf(1)}}),
	)

	It("should not alias the spec it was created from", func() {
		spec := Spec{MaxDemes: 2, DemeSizes: []uint32{5, 5}}
		d, err := New(spec)
		Expect(err).ToNot(HaveOccurred())

		spec.DemeSizes[0] = 0
		d.Spec().DemeSizes[1] = 0

		Expect(d.DemeSize(0)).To(Equal(uint32(5)))
		Expect(d.DemeSize(1)).To(Equal(uint32(5)))
	})

	It("should clone into an independent demography", func() {
		d := MakeBuilder().WithMaxDemes(2).WithDemeSizes(3, 4).Build()

		c := d.Clone().(*DiscreteDemography)

		Expect(c).ToNot(BeIdenticalTo(d))
		Expect(c.Spec()).To(Equal(d.Spec()))
	})
})
