package cycles

import (
	"math"

	"github.com/san-kum/stickslip/internal/dynamo"
)

// SpeedAt is the speed after sliding a distance s from rest at magnitude x0,
// from the work-energy balance of one half swing. It is zero outside the
// swing.
func SpeedAt(p dynamo.Params, x0, s float64) float64 {
	k := p.Stiffness
	v2 := (-k*s*s + 2*(k*x0-p.KineticFriction())*s) / p.Mass
	return math.Sqrt(math.Max(0, v2))
}

// PeakSpeed is the largest speed reached during the half swing from x0. It
// occurs where the spring force equals kinetic friction.
func PeakSpeed(p dynamo.Params, x0 float64) float64 {
	drive := p.Stiffness*x0 - p.KineticFriction()
	if drive <= 0 {
		return 0
	}
	return drive / math.Sqrt(p.Stiffness*p.Mass)
}

// HalfPeriod is the time between successive turning points. Coulomb damping
// does not change it.
func HalfPeriod(p dynamo.Params) float64 {
	return math.Pi * math.Sqrt(p.Mass/p.Stiffness)
}
