// Package dynamo provides the core value types shared by the stick-slip engine.
//
// The package defines the inputs and outputs of a run:
//
//   - [Params]: the immutable physical parameter set
//   - [Config]: timestep, duration and the velocity threshold of the integrator
//   - [State] and [Sample]: one point of phase space, with or without time
//   - [Trajectory]: the fixed-length output of an integration run
//
// # Example
//
//	p := dynamo.DefaultParams()
//	cfg := dynamo.Config{Dt: 1e-4, Duration: 25}
//	tr, err := sim.Integrate(p, 0, cfg)
//
// # Thread Safety
//
// Params and Config are plain values and may be shared freely. A Trajectory is
// written once by the integrator and is read-only afterwards.
package dynamo
