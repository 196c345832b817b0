package cycles_test

import (
	"bytes"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/logging"
)

var _ = Describe("Solve", func() {
	var p dynamo.Params

	BeforeEach(func() {
		p = dynamo.DefaultParams()
	})

	Context("with the reference parameters and five cycles", func() {
		var record cycles.Record

		BeforeEach(func() {
			var err error
			record, err = cycles.Solve(p, 5)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces two entries per cycle", func() {
			Expect(record).To(HaveLen(10))
		})

		It("starts at the release point and swings to the negative side", func() {
			first := record[0]
			Expect(first.Cycle).To(Equal(0.5))
			Expect(first.Start).To(Equal(6.0))
			Expect(first.End).To(BeNumerically("<", 0))
			Expect(math.Abs(first.End)).To(BeNumerically(">", 0))
			Expect(math.Abs(first.End)).To(BeNumerically("<", 6))
		})

		It("loses 2μmg/k of amplitude per half swing", func() {
			decrement := 2 * p.KineticFriction() / p.Stiffness
			for _, e := range record {
				Expect(math.Abs(e.Start) - math.Abs(e.End)).To(BeNumerically("~", decrement, 1e-9))
			}
		})

		It("numbers half swings in steps of one half", func() {
			for i, e := range record {
				Expect(e.Cycle).To(Equal(float64(i+1) * 0.5))
			}
		})

		It("alternates signs and chains turning points", func() {
			for i, e := range record {
				if i%2 == 0 {
					Expect(e.Start).To(BeNumerically(">", 0))
					Expect(e.End).To(BeNumerically("<", 0))
				} else {
					Expect(e.Start).To(BeNumerically("<", 0))
					Expect(e.End).To(BeNumerically(">", 0))
				}
				if i > 0 {
					Expect(e.Start).To(Equal(record[i-1].End))
				}
			}
		})

		It("decays strictly", func() {
			for _, e := range record {
				Expect(math.Abs(e.End)).To(BeNumerically("<", math.Abs(e.Start)))
			}
		})

		It("flattens to start/end pairs", func() {
			cs, xs := record.Flatten()
			Expect(cs).To(HaveLen(20))
			Expect(xs).To(HaveLen(20))
			Expect(cs[0]).To(Equal(0.5))
			Expect(cs[1]).To(Equal(0.5))
			Expect(xs[0]).To(Equal(record[0].Start))
			Expect(xs[1]).To(Equal(record[0].End))
			Expect(xs[19]).To(Equal(record[9].End))
		})

		It("lists signed turning points", func() {
			tps := record.TurningPoints()
			Expect(tps).To(HaveLen(10))
			Expect(tps[0]).To(BeNumerically("~", -5.4114, 1e-9))
			Expect(tps[1]).To(BeNumerically("~", 4.8228, 1e-9))
		})
	})

	Context("when more cycles are requested than the energy allows", func() {
		It("returns the truncated record with ErrNoTurningPoint", func() {
			record, err := cycles.Solve(p, 6)

			Expect(err).To(MatchError(dynamo.ErrNoTurningPoint))
			Expect(record).To(HaveLen(10))

			var hce *cycles.HalfCycleError
			Expect(errors.As(err, &hce)).To(BeTrue())
			Expect(hce.Cycle).To(Equal(5.5))
			Expect(hce.Seed).To(BeNumerically("~", 0.114, 1e-9))
		})

		It("never produces NaN for a large cycle count", func() {
			record, err := cycles.Solve(p, 1000)

			Expect(errors.Is(err, dynamo.ErrNoTurningPoint)).To(BeTrue())
			for _, e := range record {
				Expect(math.IsNaN(e.Start)).To(BeFalse())
				Expect(math.IsNaN(e.End)).To(BeFalse())
			}
		})

		It("stops immediately when static friction holds the release point", func() {
			p.InitialDisplacement = 0.2
			record, err := cycles.Solve(p, 1)

			Expect(err).To(MatchError(dynamo.ErrNoTurningPoint))
			Expect(record).To(BeEmpty())
		})
	})

	Context("without friction", func() {
		BeforeEach(func() {
			p.MuStatic = 0
			p.MuDynamic = 0
		})

		It("keeps every turning point at the release amplitude", func() {
			record, err := cycles.Solve(p, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(record).To(HaveLen(10))
			for _, e := range record {
				Expect(math.Abs(e.Start)).To(Equal(6.0))
				Expect(math.Abs(e.End)).To(Equal(6.0))
			}
		})
	})

	Context("with a negative release point", func() {
		It("mirrors the record", func() {
			p.InitialDisplacement = -6
			mirrored, err := cycles.Solve(p, 2)
			Expect(err).NotTo(HaveOccurred())

			p.InitialDisplacement = 6
			plain, err := cycles.Solve(p, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(mirrored[0].Start).To(Equal(-6.0))
			for i := range plain {
				Expect(mirrored[i].Start).To(Equal(-plain[i].Start))
				Expect(mirrored[i].End).To(Equal(-plain[i].End))
			}
		})
	})

	Context("when friction is too small to move the root off the release point", func() {
		It("reports an ambiguous root instead of a natural stop", func() {
			p.MuStatic, p.MuDynamic = 1e-17, 1e-17
			record, err := cycles.Solve(p, 3)

			Expect(err).To(MatchError(dynamo.ErrAmbiguousRoot))
			Expect(errors.Is(err, dynamo.ErrNoTurningPoint)).To(BeFalse())
			Expect(record).To(BeEmpty())

			var hce *cycles.HalfCycleError
			Expect(errors.As(err, &hce)).To(BeTrue())
			Expect(hce.Cycle).To(Equal(0.5))
			Expect(hce.Seed).To(Equal(6.0))
		})
	})

	Context("with invalid input", func() {
		It("rejects a cycle count below one", func() {
			_, err := cycles.Solve(p, 0)
			Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
		})

		It("rejects a non-positive mass", func() {
			p.Mass = 0
			_, err := cycles.Solve(p, 3)
			Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
		})
	})

	It("logs each half swing at trace level", func() {
		var buf bytes.Buffer
		s := cycles.NewSolver()
		s.SetLogger(logging.NewLogger("trace", &buf))

		_, err := s.Solve(p, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("level=TRACE"))
		Expect(buf.String()).To(ContainSubstring("half swing"))
	})
})
