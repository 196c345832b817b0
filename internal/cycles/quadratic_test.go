package cycles_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/dynamo"
)

var _ = Describe("SolveQuadratic", func() {
	It("returns the plus root first", func() {
		r1, r2, err := cycles.SolveQuadratic(1, -3, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(r1).To(Equal(2.0))
		Expect(r2).To(Equal(1.0))
	})

	It("reports a negative discriminant as no turning point", func() {
		_, _, err := cycles.SolveQuadratic(1, 0, 1)
		Expect(err).To(MatchError(dynamo.ErrNoTurningPoint))
	})

	It("rejects a zero leading coefficient", func() {
		_, _, err := cycles.SolveQuadratic(0, 1, 1)
		Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
	})

	It("has roots x0-2μmg/k and -x0 for the energy balance", func() {
		p := dynamo.DefaultParams()
		r1, r2, err := cycles.SolveQuadratic(cycles.Coefficients(p, 6))
		Expect(err).NotTo(HaveOccurred())
		Expect(r1).To(BeNumerically("~", 6-2*p.KineticFriction()/p.Stiffness, 1e-12))
		Expect(r2).To(BeNumerically("~", -6, 1e-12))
	})
})

var _ = DescribeTable("SelectDecayingRoot",
	func(r1, r2, prev, want float64, wantErr error) {
		got, err := cycles.SelectDecayingRoot(r1, r2, prev)
		if wantErr != nil {
			Expect(err).To(MatchError(wantErr))
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	},
	Entry("first root qualifies", 5.4, -6.0, 6.0, 5.4, nil),
	Entry("second root qualifies", -6.0, 5.4, 6.0, 5.4, nil),
	Entry("both qualify", 1.0, 2.0, 3.0, 0.0, dynamo.ErrAmbiguousRoot),
	Entry("neither qualifies", -1.0, 5.0, 3.0, 0.0, dynamo.ErrAmbiguousRoot),
	Entry("boundary is excluded", 3.0, 0.0, 3.0, 0.0, dynamo.ErrAmbiguousRoot),
)
