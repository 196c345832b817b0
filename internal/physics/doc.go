// Package physics implements the spring-block model with Coulomb friction.
//
// The friction law is a single pure function with two branches:
//
//   - [Sliding]: |v| > eps, friction is mu_dynamic*m*g against the velocity
//   - [Stuck]: otherwise, static friction cancels the spring force up to its
//     capacity mu_static*m*g
//
// [Oscillator] wraps the law as a [dynamo.System] so any fixed-step
// integrator can advance it:
//
//	osc := physics.NewOscillator(p, cfg.Epsilon())
//	next := integrators.NewEuler().Step(osc, s, dt)
package physics
