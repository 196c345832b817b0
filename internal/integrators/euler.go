package integrators

import "github.com/san-kum/stickslip/internal/dynamo"

// Euler is the explicit (forward) Euler scheme. Both components of the new
// state are built from the derivative at the old state, so position is
// advanced with the old velocity and velocity with the old position.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, s dynamo.State, dt float64) dynamo.State {
	d := sys.Derive(s)
	return dynamo.State{
		X: s.X + dt*d.X,
		V: s.V + dt*d.V,
	}
}
