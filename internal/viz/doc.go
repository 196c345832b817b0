// Package viz renders trajectories in the terminal.
//
//   - [Scene]: wall, spring and block drawn on a Braille [Canvas], with the
//     spring and friction forces acting at the current sample
//   - [Playback]: a Bubble Tea model replaying a finished trajectory in real
//     time, frame lookup through [dynamo.Trajectory.IndexAt]
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from t = 0
//	+/-   - Playback speed
//	[ ]   - Step one second back/forward
//	Q     - Quit
package viz
