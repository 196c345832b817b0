package sim

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/integrators"
	"github.com/san-kum/stickslip/internal/logging"
	"github.com/san-kum/stickslip/internal/physics"
)

// Simulator runs the fixed-step integration of the friction oscillator.
// It is not safe for concurrent use because metrics carry state; use
// Ensemble to run many jobs in parallel.
type Simulator struct {
	integrator dynamo.Integrator
	metrics    []Metric
	observers  []Observer
	logger     *slog.Logger
}

func New(integrator dynamo.Integrator) *Simulator {
	if integrator == nil {
		integrator = integrators.NewEuler()
	}
	return &Simulator{
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		logger:     logging.Discard(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	s.logger = l
}

// Integrate runs the forward Euler scheme with a fresh Simulator and returns
// the full trajectory.
func Integrate(p dynamo.Params, v0 float64, cfg dynamo.Config) (*dynamo.Trajectory, error) {
	res, err := New(nil).Run(p, v0, cfg)
	if err != nil {
		return nil, err
	}
	return res.Trajectory, nil
}

// Run produces Steps() samples starting from (InitialDisplacement, v0).
// Every step is executed; there is no stopping condition.
func (s *Simulator) Run(p dynamo.Params, v0 float64, cfg dynamo.Config) (*Result, error) {
	if err := validate(p, v0, cfg); err != nil {
		return nil, err
	}

	n := cfg.Steps()
	tr := dynamo.NewTrajectory(cfg.Dt, n)
	result := &Result{
		Trajectory: tr,
		Metrics:    make(map[string]float64),
	}

	s.logger.Debug("integration started", "steps", n, "dt", cfg.Dt, "duration", cfg.Duration)
	start := time.Now()

	s.step(p, v0, cfg, n, func(i int, smp dynamo.Sample) bool {
		tr.Set(i, smp.State)
		return true
	})

	result.Elapsed = time.Since(start)
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	final := tr.Final()
	s.logger.Debug("integration finished",
		"elapsed", result.Elapsed,
		"final_x", final.X,
		"final_v", final.V,
	)

	return result, nil
}

// Stream runs the same scheme as Run without materializing the trajectory.
// fn receives each sample in order; returning false stops the run early.
func (s *Simulator) Stream(p dynamo.Params, v0 float64, cfg dynamo.Config, fn func(dynamo.Sample) bool) error {
	if err := validate(p, v0, cfg); err != nil {
		return err
	}

	n := cfg.Steps()
	s.logger.Debug("stream started", "steps", n, "dt", cfg.Dt)
	s.step(p, v0, cfg, n, func(_ int, smp dynamo.Sample) bool {
		return fn(smp)
	})
	return nil
}

func (s *Simulator) step(p dynamo.Params, v0 float64, cfg dynamo.Config, n int, emit func(int, dynamo.Sample) bool) {
	for _, m := range s.metrics {
		m.Reset()
	}

	sys := physics.NewOscillator(p, cfg.Epsilon())
	dt := cfg.Dt
	x := dynamo.State{X: p.InitialDisplacement, V: v0}

	for i := 0; i < n; i++ {
		if i > 0 {
			x = s.integrator.Step(sys, x, dt)
		}

		smp := dynamo.Sample{Time: float64(i) * dt, State: x}
		for _, m := range s.metrics {
			m.Observe(smp)
		}
		for _, obs := range s.observers {
			obs.OnSample(i, smp)
		}

		if !emit(i, smp) {
			return
		}
	}
}

func validate(p dynamo.Params, v0 float64, cfg dynamo.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if math.IsNaN(v0) || math.IsInf(v0, 0) {
		return fmt.Errorf("%w: initial velocity must be finite, got %v", dynamo.ErrInvalidConfig, v0)
	}
	return nil
}
