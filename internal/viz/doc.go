// Package viz renders a motion session in the terminal.
//
// The renderer is a Bubble Tea program that owns nothing but presentation:
// it pumps the session's frame loop on every tick, reads the snapshot and
// draws the track, scale marks, recorded samples and a table of the most
// recent samples.
//
// # Key Bindings
//
//	Space     - Start/Pause
//	R         - Reset
//	←/→ h/l   - Pan the camera (stopped sessions only)
//	↑/↓ k/j   - Initial velocity ±1 m/s (resets)
//	a/A       - Acceleration ∓0.5 m/s² (resets)
//	[/]       - Halve/double the time scale (resets)
//	T         - Cycle color themes
//	?         - Toggle help
//
// Dragging on the track with the mouse pans the camera as well.
package viz
