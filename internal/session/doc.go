// Package session runs a single motion simulation through its lifecycle.
//
// A [Controller] owns everything that changes during a run: the physics
// state, the camera, the last sample time and the recorded samples. Hosts
// issue commands (start, pause, reset, pan) and read a [Snapshot] after
// every frame and every command.
//
//	Idle ──Start──▶ Running ──Pause──▶ Paused
//	  ▲                │  ▲               │
//	  │           leaves  └─────Start─────┘
//	  │           bounds
//	  │                ▼
//	  └──Reset──── Finished ──Start──▶ Running (from t=0)
//
// Reset returns to Idle from every phase.
//
// # Thread Safety
//
// Controller is NOT thread-safe. Ticks arrive through the [clock.Scheduler]
// passed to [New] and must be delivered on the same goroutine that issues
// commands.
package session
