package sim

import (
	"time"

	"github.com/san-kum/stickslip/internal/dynamo"
)

// Metric accumulates a scalar over the samples of one run.
type Metric interface {
	Name() string
	Observe(s dynamo.Sample)
	Value() float64
	Reset()
}

// Observer is notified of every sample, in order, including the initial one.
type Observer interface {
	OnSample(i int, s dynamo.Sample)
}

type Result struct {
	*dynamo.Trajectory
	Metrics map[string]float64
	Elapsed time.Duration
}

// Job is one independent integration request for an Ensemble.
type Job struct {
	Params dynamo.Params
	V0     float64
	Config dynamo.Config
}
