// Package clock turns host animation frames into scaled simulation time.
//
// A [Driver] never schedules work on its own. It asks a [Scheduler] for the
// next tick, the host delivers it from its frame loop, and the driver asks
// again while it is running. Stopping the driver cancels the outstanding
// request, and any delivery that slips through afterwards is ignored.
//
// [FrameLoop] is the scheduler used by the renderers and the headless
// runner. Paired with [ManualTime] it makes a run fully deterministic:
//
//	mt := clock.NewManualTime(time.Time{})
//	loop := clock.NewFrameLoop(mt.Now)
//	d := clock.NewDriver(loop, 1, step)
//	d.Start()
//	mt.Advance(16 * time.Millisecond)
//	loop.Frame()
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Ticks and commands are
// expected to arrive on the host's single frame goroutine.
package clock
