package physics

import (
	"math"

	"github.com/san-kum/stickslip/internal/dynamo"
)

// Regime is the branch of the friction law in effect.
type Regime int

const (
	Sliding Regime = iota
	Stuck
)

func (r Regime) String() string {
	if r == Stuck {
		return "stuck"
	}
	return "sliding"
}

// RegimeOf classifies a velocity against the threshold eps.
func RegimeOf(v, eps float64) Regime {
	if math.Abs(v) > eps {
		return Sliding
	}
	return Stuck
}

// Friction is the friction force acting on the block at (x, v). It is the
// force the equation of motion subtracts, so while sliding it carries the sign
// of v. When stuck it takes the spring's side only up to the static capacity.
func Friction(p dynamo.Params, x, v, eps float64) float64 {
	if RegimeOf(v, eps) == Sliding {
		return p.KineticFriction() * sign(v)
	}
	return -math.Min(p.StaticCapacity(), math.Abs(p.Stiffness*x)) * sign(x)
}

// Held reports whether static friction can hold the block at x.
func Held(p dynamo.Params, x float64) bool {
	return math.Abs(p.Stiffness*x) <= p.StaticCapacity()
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
