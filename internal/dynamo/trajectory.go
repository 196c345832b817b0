package dynamo

import "math"

// Trajectory is the output of an integration run. All slices share the same
// length, fixed at construction, and Times[i] == i*Dt.
type Trajectory struct {
	Dt         float64
	Times      []float64
	Positions  []float64
	Velocities []float64
}

func NewTrajectory(dt float64, n int) *Trajectory {
	tr := &Trajectory{
		Dt:         dt,
		Times:      make([]float64, n),
		Positions:  make([]float64, n),
		Velocities: make([]float64, n),
	}
	for i := range tr.Times {
		tr.Times[i] = float64(i) * dt
	}
	return tr
}

func (t *Trajectory) Len() int { return len(t.Times) }

// Set stores the state for step i. Only the integrator calls it.
func (t *Trajectory) Set(i int, s State) {
	t.Positions[i] = s.X
	t.Velocities[i] = s.V
}

func (t *Trajectory) At(i int) Sample {
	return Sample{
		Time:  t.Times[i],
		State: State{X: t.Positions[i], V: t.Velocities[i]},
	}
}

func (t *Trajectory) Final() Sample {
	return t.At(t.Len() - 1)
}

// IndexAt maps an elapsed wall time to the sample shown at that moment,
// floor(elapsed/Dt) clamped to the valid range.
func (t *Trajectory) IndexAt(elapsed float64) int {
	n := t.Len()
	if n == 0 || math.IsNaN(elapsed) || elapsed <= 0 {
		return 0
	}
	f := math.Floor(elapsed / t.Dt)
	if f >= float64(n-1) {
		return n - 1
	}
	return int(f)
}

func (t *Trajectory) SampleAt(elapsed float64) Sample {
	return t.At(t.IndexAt(elapsed))
}

// Duration is the time of the last sample.
func (t *Trajectory) Duration() float64 {
	if t.Len() == 0 {
		return 0
	}
	return t.Times[t.Len()-1]
}
