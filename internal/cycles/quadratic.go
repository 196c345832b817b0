package cycles

import (
	"fmt"
	"math"

	"github.com/san-kum/stickslip/internal/dynamo"
)

// Coefficients returns the energy-balance quadratic A s² + B s + C = 0 for a
// half swing released from rest at magnitude x0.
func Coefficients(p dynamo.Params, x0 float64) (a, b, c float64) {
	kin := p.KineticFriction()
	a = 0.5 * p.Stiffness
	b = kin
	c = kin*x0 - 0.5*p.Stiffness*x0*x0
	return a, b, c
}

// SolveQuadratic returns the two real roots of a s² + b s + c = 0, the
// "+" root first. A negative discriminant means no turning point exists.
func SolveQuadratic(a, b, c float64) (float64, float64, error) {
	if a == 0 {
		return 0, 0, fmt.Errorf("%w: leading coefficient is zero", dynamo.ErrInvalidConfig)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, fmt.Errorf("%w: discriminant %g", dynamo.ErrNoTurningPoint, disc)
	}

	sq := math.Sqrt(disc)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a), nil
}

// SelectDecayingRoot picks the root lying strictly inside (0, prev). Exactly
// one root must qualify.
func SelectDecayingRoot(r1, r2, prev float64) (float64, error) {
	in1 := r1 > 0 && r1 < prev
	in2 := r2 > 0 && r2 < prev

	switch {
	case in1 && !in2:
		return r1, nil
	case in2 && !in1:
		return r2, nil
	case in1 && in2:
		return 0, fmt.Errorf("%w: both %g and %g lie in (0, %g)", dynamo.ErrAmbiguousRoot, r1, r2, prev)
	default:
		return 0, fmt.Errorf("%w: neither %g nor %g lies in (0, %g)", dynamo.ErrAmbiguousRoot, r1, r2, prev)
	}
}
