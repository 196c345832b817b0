package physics

import "github.com/san-kum/stickslip/internal/dynamo"

// Oscillator is a single block on a spring sliding on a dry surface.
type Oscillator struct {
	Params  dynamo.Params
	Epsilon float64
}

func NewOscillator(p dynamo.Params, eps float64) *Oscillator {
	return &Oscillator{Params: p, Epsilon: eps}
}

// Derive returns (dx/dt, dv/dt) at s. While held, friction is exactly -kx,
// so both acceleration terms cancel to zero.
func (o *Oscillator) Derive(s dynamo.State) dynamo.State {
	f := Friction(o.Params, s.X, s.V, o.Epsilon)
	m := o.Params.Mass
	return dynamo.State{
		X: s.V,
		V: -f/m - o.Params.Stiffness*s.X/m,
	}
}

func (o *Oscillator) Energy(s dynamo.State) float64 {
	return o.Params.Energy(s)
}

func (o *Oscillator) Regime(s dynamo.State) Regime {
	return RegimeOf(s.V, o.Epsilon)
}

// AtRest reports whether the block is stuck and the spring cannot break it
// loose. Under forward Euler such a state never changes again.
func (o *Oscillator) AtRest(s dynamo.State) bool {
	return o.Regime(s) == Stuck && Held(o.Params, s.X)
}
