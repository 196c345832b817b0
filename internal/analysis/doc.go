// Package analysis inspects finished trajectories.
//
// Nothing here steps the equations of motion; every function consumes a
// [dynamo.Trajectory] produced by the simulator:
//
//   - [TurningPoints]: velocity reversals, up to the point where the block sticks
//   - [DetectRest]: the index from which the block stays at rest
//   - [CrossCheck]: numerical turning points against the analytic cycle record
//   - [EnergySeries]: mechanical energy per sample
//   - [DominantFrequency]: peak of the power spectrum of a signal
//   - [PhasePortrait]: the (x, v) phase plane as text
//
// # Round trip
//
// The integrator and the cycle solver describe the same motion, so their
// turning points must agree:
//
//	tr, _ := sim.Integrate(p, 0, cfg)
//	rec, _ := cycles.Solve(p, 5)
//	report := analysis.CrossCheck(tr, p, rec, 3, 1e-2)
//	if !report.OK {
//	    // the step size is too coarse
//	}
package analysis
