package analysis

import "github.com/san-kum/stickslip/internal/dynamo"

// EnergySeries returns 0.5 m v² + 0.5 k x² for every sample of tr.
func EnergySeries(tr *dynamo.Trajectory, p dynamo.Params) []float64 {
	if tr == nil {
		return nil
	}
	out := make([]float64, tr.Len())
	for i := range out {
		out[i] = p.Energy(dynamo.State{X: tr.Positions[i], V: tr.Velocities[i]})
	}
	return out
}
