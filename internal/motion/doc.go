// Package motion provides the closed-form integrator for one-dimensional
// constant-acceleration motion.
//
// The package defines the primitives shared by the rest of the simulation:
//
//   - [Config]: initial velocity, acceleration and time scale of a run
//   - [State]: elapsed time, position and velocity at a point in time
//   - [Bounds]: the global extent beyond which a run terminates
//
// State is never integrated step by step. It is derived from the config and
// the elapsed time, so frame jitter cannot accumulate error:
//
//	cfg := motion.Config{InitialVelocity: 10, Acceleration: -2, TimeScale: 1}
//	st := motion.Advance(cfg, 3)
//	// st.Position == 21, st.Velocity == 4
package motion
