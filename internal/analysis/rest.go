package analysis

import (
	"math"

	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/physics"
)

// RestOptions tunes DetectRest. Zero values select the defaults.
type RestOptions struct {
	// Tolerance is the largest |v| still counted as at rest. The default is
	// the step-to-step chatter of forward Euler, 1.5*dt*g*(μs+μd).
	Tolerance float64

	// MinDuration is how long the block must stay at rest. Default 0.5 s.
	MinDuration float64
}

const (
	defaultRestDuration = 0.5
	restToleranceFloor  = 1e-12
)

func (o RestOptions) withDefaults(tr *dynamo.Trajectory, p dynamo.Params) RestOptions {
	if o.Tolerance <= 0 {
		o.Tolerance = 1.5*tr.Dt*p.Gravity*(p.MuStatic+p.MuDynamic) + restToleranceFloor
	}
	if o.MinDuration <= 0 {
		o.MinDuration = defaultRestDuration
	}
	return o
}

// DetectRest finds the longest suffix of tr in which the block is slow and
// inside the static band |k x| <= μs m g. It returns the first index of that
// suffix, or false if the suffix is shorter than MinDuration.
func DetectRest(tr *dynamo.Trajectory, p dynamo.Params, opts RestOptions) (int, bool) {
	if tr == nil || tr.Len() == 0 {
		return 0, false
	}
	opts = opts.withDefaults(tr, p)

	start := tr.Len()
	for i := tr.Len() - 1; i >= 0; i-- {
		if math.Abs(tr.Velocities[i]) > opts.Tolerance || !physics.Held(p, tr.Positions[i]) {
			break
		}
		start = i
	}

	if start == tr.Len() {
		return 0, false
	}
	if tr.Times[tr.Len()-1]-tr.Times[start] < opts.MinDuration {
		return start, false
	}
	return start, true
}
