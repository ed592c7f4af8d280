package session

import (
	"fmt"
	"log"
	"math"

	"github.com/san-kum/motionlab/internal/clock"
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/trajectory"
	"github.com/san-kum/motionlab/internal/viewport"
)

type Controller struct {
	cfg      motion.Config
	bounds   motion.Bounds
	interval float64

	phase      Phase
	state      motion.State
	lastSample float64
	samples    []trajectory.Sample

	view      *viewport.Viewport
	driver    *clock.Driver
	observers []Observer
}

// New builds an Idle session. Ticks are requested from sched only while the
// session is running.
func New(cfg motion.Config, sched clock.Scheduler, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !(o.interval > 0) || math.IsInf(o.interval, 0) {
		return nil, fmt.Errorf("session: sample interval must be positive, got %v", o.interval)
	}

	view, err := viewport.New(o.widthPx, o.spanM, o.bounds)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	view.SetFollowBand(o.band)

	c := &Controller{
		cfg:       cfg,
		bounds:    o.bounds,
		interval:  o.interval,
		view:      view,
		observers: o.observers,
	}
	c.driver = clock.NewDriver(sched, cfg.TimeScale, c.tick)
	c.clear()
	return c, nil
}

func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) Phase() Phase            { return c.phase }
func (c *Controller) Config() motion.Config   { return c.cfg }
func (c *Controller) Bounds() motion.Bounds   { return c.bounds }
func (c *Controller) SampleInterval() float64 { return c.interval }
func (c *Controller) View() View              { return c.view }

func (c *Controller) Snapshot() Snapshot {
	samples := make([]trajectory.Sample, len(c.samples))
	copy(samples, c.samples)
	return Snapshot{
		ElapsedTime:    c.state.Time,
		Position:       c.state.Position,
		Velocity:       c.state.Velocity,
		ViewportCenter: c.view.Center(),
		Phase:          c.phase,
		Samples:        samples,
		Config:         c.cfg,
	}
}

// Start runs the session. A finished session is reset to Idle first and
// then restarts from t=0 with the same config. Starting a running session
// does nothing.
func (c *Controller) Start() error {
	if c.phase == Running {
		return nil
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if c.phase == Finished {
		c.clear()
		c.setPhase(Idle)
	}

	c.view.PanEnd()
	c.setPhase(Running)
	c.driver.Start()
	return nil
}

// Pause stops a running session. In any other phase it does nothing.
func (c *Controller) Pause() {
	if c.phase != Running {
		return
	}
	c.driver.Stop()
	c.setPhase(Paused)
}

func (c *Controller) ToggleRunning() error {
	if c.phase == Running {
		c.Pause()
		return nil
	}
	return c.Start()
}

// Reset returns to Idle at t=0 with no samples and the camera on 0. A non-nil
// cfg replaces the current config; if it is invalid nothing changes.
func (c *Controller) Reset(cfg *motion.Config) error {
	if cfg != nil {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	c.driver.Stop()
	if cfg != nil {
		c.cfg = *cfg
		c.driver.SetTimeScale(cfg.TimeScale)
	}
	c.clear()
	c.setPhase(Idle)
	return nil
}

// PanStart opens a drag gesture. Refused while running.
func (c *Controller) PanStart() bool {
	if c.phase == Running {
		return false
	}
	c.view.PanStart()
	return true
}

// PanBy applies a drag of deltaPx pixels measured from the gesture start.
// Refused while running.
func (c *Controller) PanBy(deltaPx float64) bool {
	if c.phase == Running {
		return false
	}
	c.view.PanBy(deltaPx)
	return true
}

func (c *Controller) PanEnd() {
	c.view.PanEnd()
}

func (c *Controller) clear() {
	c.state = motion.Advance(c.cfg, 0)
	c.lastSample = 0
	c.samples = nil
	c.view.Reset()
}

func (c *Controller) tick(dt float64) {
	if c.phase != Running {
		return
	}

	t := c.state.Time + dt
	st := motion.Advance(c.cfg, t)

	added := trajectory.MaybeSample(c.lastSample, t, c.interval, c.cfg, c.bounds)
	c.lastSample = trajectory.LastBoundary(c.lastSample, t, c.interval)
	c.samples = append(c.samples, added...)

	c.state = st
	c.view.AutoFollow(st.Position)

	for _, o := range c.observers {
		o.OnTick(st, added)
	}

	if !motion.InBounds(st.Position, c.bounds) {
		c.driver.Stop()
		c.setPhase(Finished)
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	log.Printf("session: %s -> %s (t=%.3f x=%.3f)", c.phase, p, c.state.Time, c.state.Position)
	c.phase = p
	for _, o := range c.observers {
		o.OnPhase(p)
	}
}
