package analysis

import (
	"math"

	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/dynamo"
)

// Comparison pairs one numerical turning point with its analytic value.
type Comparison struct {
	Cycle     float64
	Time      float64
	Numerical float64
	Analytic  float64
	RelErr    float64
}

type Report struct {
	Comparisons []Comparison
	MaxRelErr   float64
	OK          bool
}

// CrossCheck compares the first count turning points of tr with the signed
// ends of rec. OK holds when count pairs were available and every relative
// error is within relTol.
func CrossCheck(tr *dynamo.Trajectory, p dynamo.Params, rec cycles.Record, count int, relTol float64) Report {
	tps := TurningPoints(tr, p, count)

	n := min(count, len(tps), len(rec))
	report := Report{Comparisons: make([]Comparison, 0, max(n, 0))}

	for i := 0; i < n; i++ {
		want := rec[i].End
		got := tps[i].X
		relErr := math.Abs(got - want)
		if want != 0 {
			relErr /= math.Abs(want)
		}

		report.Comparisons = append(report.Comparisons, Comparison{
			Cycle:     rec[i].Cycle,
			Time:      tps[i].Time,
			Numerical: got,
			Analytic:  want,
			RelErr:    relErr,
		})
		report.MaxRelErr = math.Max(report.MaxRelErr, relErr)
	}

	report.OK = count > 0 && n == count && report.MaxRelErr <= relTol
	return report
}
