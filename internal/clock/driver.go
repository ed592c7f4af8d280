package clock

import "time"

// Driver converts wall-clock frames into simulation-time deltas and feeds
// them to a step function while running.
type Driver struct {
	sched     Scheduler
	timeScale float64
	step      func(simDelta float64)

	running bool
	last    time.Time
	cancel  func()
	gen     uint64
}

func NewDriver(sched Scheduler, timeScale float64, step func(simDelta float64)) *Driver {
	return &Driver{sched: sched, timeScale: timeScale, step: step}
}

func (d *Driver) SetTimeScale(s float64) { d.timeScale = s }
func (d *Driver) TimeScale() float64     { return d.timeScale }
func (d *Driver) Running() bool          { return d.running }

// Tick scales a wall-clock delta in seconds to simulation seconds.
// Negative deltas count as zero.
func (d *Driver) Tick(rawSeconds float64) float64 {
	if rawSeconds < 0 {
		return 0
	}
	return rawSeconds * d.timeScale
}

// Start captures a fresh reference timestamp and requests the first tick,
// so time spent stopped is never replayed. Starting a running driver is a
// no-op.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.gen++
	d.last = d.sched.Now()
	d.request()
}

// Stop withdraws the pending tick. It is safe to call repeatedly, including
// from inside the step function.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Driver) request() {
	gen := d.gen
	d.cancel = d.sched.RequestTick(func(now time.Time) {
		d.fire(gen, now)
	})
}

func (d *Driver) fire(gen uint64, now time.Time) {
	if !d.running || gen != d.gen {
		return
	}
	d.cancel = nil

	raw := now.Sub(d.last).Seconds()
	d.last = now
	d.step(d.Tick(raw))

	if d.running && gen == d.gen {
		d.request()
	}
}
