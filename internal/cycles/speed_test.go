package cycles_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/dynamo"
)

var _ = Describe("speed profile", func() {
	var p dynamo.Params

	BeforeEach(func() {
		p = dynamo.DefaultParams()
	})

	It("is zero at release and at the next turning point", func() {
		next, err := cycles.HalfSwing(p, 6)
		Expect(err).NotTo(HaveOccurred())

		Expect(cycles.SpeedAt(p, 6, 0)).To(Equal(0.0))
		Expect(cycles.SpeedAt(p, 6, 6+next)).To(BeNumerically("~", 0, 1e-5))
	})

	It("peaks where the spring force balances kinetic friction", func() {
		drive := p.Stiffness*6 - p.KineticFriction()
		sPeak := drive / p.Stiffness

		peak := cycles.PeakSpeed(p, 6)
		Expect(peak).To(BeNumerically("~", cycles.SpeedAt(p, 6, sPeak), 1e-9))
		Expect(cycles.SpeedAt(p, 6, sPeak-0.1)).To(BeNumerically("<", peak))
		Expect(cycles.SpeedAt(p, 6, sPeak+0.1)).To(BeNumerically("<", peak))
	})

	It("is zero when friction exceeds the spring force", func() {
		Expect(cycles.PeakSpeed(p, 0.1)).To(Equal(0.0))
	})

	It("has the undamped half period", func() {
		Expect(cycles.HalfPeriod(p)).To(BeNumerically("~", math.Pi*math.Sqrt(30.0/50.0), 1e-12))
	})
})
