package metrics

import (
	"math"

	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/physics"
	"github.com/san-kum/stickslip/internal/sim"
)

// StuckFraction is the share of samples evaluated on the stuck branch of the
// friction law.
type StuckFraction struct {
	name    string
	eps     float64
	stuck   int
	samples int
}

func NewStuckFraction(eps float64) *StuckFraction {
	return &StuckFraction{
		name: "stuck_fraction",
		eps:  eps,
	}
}

func (s *StuckFraction) Name() string { return s.name }

func (s *StuckFraction) Observe(smp dynamo.Sample) {
	s.samples++
	if physics.RegimeOf(smp.V, s.eps) == physics.Stuck {
		s.stuck++
	}
}

func (s *StuckFraction) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.stuck) / float64(s.samples)
}

func (s *StuckFraction) Reset() {
	s.stuck = 0
	s.samples = 0
}

type PeakSpeed struct {
	name string
	max  float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(s dynamo.Sample) {
	p.max = math.Max(p.max, math.Abs(s.V))
}

func (p *PeakSpeed) Value() float64 { return p.max }

func (p *PeakSpeed) Reset() { p.max = 0 }

// Defaults returns the metrics the CLI attaches to every run.
func Defaults(p dynamo.Params, eps float64) []sim.Metric {
	return []sim.Metric{
		NewDissipation(p),
		NewFinalEnergy(p),
		NewStuckFraction(eps),
		NewPeakSpeed(),
	}
}
