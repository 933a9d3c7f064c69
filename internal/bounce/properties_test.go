package bounce_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bouncesim/internal/bounce"
)

var _ = Describe("Compute", func() {
	params := []bounce.Params{
		bounce.DefaultParams(),
		{Height: 1, Gravity: 1.62},
		{Height: 300, Gravity: 3.71},
	}

	DescribeTable("apex height halves on every bounce",
		func(n int) {
			for _, p := range params {
				r := bounce.Compute(n, p)
				Expect(r.BounceHeight).To(BeNumerically("~", p.Height/math.Pow(2, float64(n)), 1e-9*p.Height))
				Expect(r.Count).To(Equal(n))
			}
		},
		Entry("first bounce", 1),
		Entry("second bounce", 2),
		Entry("tenth bounce", 10),
		Entry("thirtieth bounce", 30),
	)

	It("grows distance and time strictly with n", func() {
		for _, p := range params {
			prev := bounce.Compute(1, p)
			for n := 2; n <= 25; n++ {
				r := bounce.Compute(n, p)
				Expect(r.TotalDistance).To(BeNumerically(">", prev.TotalDistance))
				Expect(r.TotalTime).To(BeNumerically(">", prev.TotalTime))
				prev = r
			}
		}
	})

	It("never travels further than three times the drop height", func() {
		r := bounce.Compute(30, bounce.DefaultParams())
		Expect(r.TotalDistance).To(BeNumerically("<", 300))
	})

	Context("with default parameters", func() {
		It("matches the explicit defaults exactly", func() {
			for n := 1; n <= 15; n++ {
				Expect(bounce.ComputeDefault(n)).To(Equal(bounce.Compute(n, bounce.Params{Height: 100, Gravity: 9.8})))
			}
		})

		It("reproduces the first bounce by hand", func() {
			r := bounce.ComputeDefault(1)
			Expect(r.BounceHeight).To(Equal(50.0))
			Expect(r.TotalDistance).To(Equal(150.0))
			Expect(r.TotalTime).To(BeNumerically("~", 7.7119223, 1e-6))
		})
	})
})

var _ = Describe("ComputeClosedForm", func() {
	It("agrees with the summed form", func() {
		p := bounce.Params{Height: 12.5, Gravity: 9.81}
		for n := 1; n <= 40; n++ {
			a := bounce.Compute(n, p)
			b := bounce.ComputeClosedForm(n, p)
			Expect(b.TotalDistance).To(BeNumerically("~", a.TotalDistance, 1e-9*a.TotalDistance))
			Expect(b.TotalTime).To(BeNumerically("~", a.TotalTime, 1e-9*a.TotalTime))
		}
	})
})

var _ = Describe("Segments", func() {
	It("alternates rise and fall after the drop", func() {
		segs := bounce.Segments(4, bounce.DefaultParams())
		Expect(segs).To(HaveLen(8))
		Expect(segs[0].Phase).To(Equal(bounce.PhaseDrop))
		for i := 1; i < len(segs); i++ {
			if i%2 == 1 {
				Expect(segs[i].Phase).To(Equal(bounce.PhaseRise))
			} else {
				Expect(segs[i].Phase).To(Equal(bounce.PhaseFall))
			}
			Expect(segs[i].Time).To(BeNumerically(">", segs[i-1].Time))
		}
	})
})
