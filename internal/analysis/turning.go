package analysis

import (
	"math"

	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/physics"
)

// TurningPoint is a sample where the velocity reverses.
type TurningPoint struct {
	Index int
	Time  float64
	X     float64
}

// TurningPoints returns up to limit velocity reversals in tr. Each is reported
// at whichever of the two samples around the reversal lies further out. The
// scan ends at the first reversal where static friction can hold the block.
// limit <= 0 means no limit.
func TurningPoints(tr *dynamo.Trajectory, p dynamo.Params, limit int) []TurningPoint {
	var out []TurningPoint
	if tr == nil {
		return out
	}

	for i := 1; i < tr.Len(); i++ {
		prev, curr := tr.Velocities[i-1], tr.Velocities[i]
		if !(prev < 0 && curr >= 0) && !(prev > 0 && curr <= 0) {
			continue
		}

		idx := i
		if math.Abs(tr.Positions[i-1]) > math.Abs(tr.Positions[i]) {
			idx = i - 1
		}
		out = append(out, TurningPoint{Index: idx, Time: tr.Times[idx], X: tr.Positions[idx]})

		if limit > 0 && len(out) >= limit {
			break
		}
		if physics.Held(p, tr.Positions[idx]) {
			break
		}
	}
	return out
}
