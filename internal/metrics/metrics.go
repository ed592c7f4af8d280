// Package metrics summarises a run as it happens. Each Metric watches the
// stream of states a session produces; a Collector fans session ticks out to
// a set of them and forgets everything when the session is reset.
package metrics

import (
	"math"
	"sort"

	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/session"
	"github.com/san-kum/motionlab/internal/trajectory"
)

type Metric interface {
	Name() string
	Observe(st motion.State)
	Value() float64
	Reset()
}

type PeakSpeed struct {
	max float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(st motion.State) {
	p.max = math.Max(p.max, math.Abs(st.Velocity))
}

func (p *PeakSpeed) Value() float64 { return p.max }
func (p *PeakSpeed) Reset()         { p.max = 0 }

// Distance is the path length travelled. Every run starts at x = 0.
type Distance struct {
	prev  float64
	total float64
}

func NewDistance() *Distance { return &Distance{} }

func (d *Distance) Name() string { return "distance" }

func (d *Distance) Observe(st motion.State) {
	d.total += math.Abs(st.Position - d.prev)
	d.prev = st.Position
}

func (d *Distance) Value() float64 { return d.total }

func (d *Distance) Reset() {
	d.prev = 0
	d.total = 0
}

type MaxDisplacement struct {
	max float64
}

func NewMaxDisplacement() *MaxDisplacement { return &MaxDisplacement{} }

func (m *MaxDisplacement) Name() string { return "max_displacement" }

func (m *MaxDisplacement) Observe(st motion.State) {
	m.max = math.Max(m.max, math.Abs(st.Position))
}

func (m *MaxDisplacement) Value() float64 { return m.max }
func (m *MaxDisplacement) Reset()         { m.max = 0 }

// Turnaround is the time the velocity first changed sign, or -1 if it has
// not. Velocity is linear in time, so interpolating between two observed
// states gives the exact crossing.
type Turnaround struct {
	prev   motion.State
	seen   bool
	at     float64
	turned bool
}

func NewTurnaround() *Turnaround { return &Turnaround{at: -1} }

func (t *Turnaround) Name() string { return "turnaround" }

func (t *Turnaround) Observe(st motion.State) {
	if t.turned {
		return
	}
	if t.seen && t.prev.Velocity != 0 && math.Signbit(t.prev.Velocity) != math.Signbit(st.Velocity) && st.Velocity != 0 {
		frac := t.prev.Velocity / (t.prev.Velocity - st.Velocity)
		t.at = t.prev.Time + frac*(st.Time-t.prev.Time)
		t.turned = true
	} else if t.seen && t.prev.Velocity != 0 && st.Velocity == 0 {
		t.at = st.Time
		t.turned = true
	}
	t.prev = st
	t.seen = true
}

func (t *Turnaround) Value() float64 { return t.at }

func (t *Turnaround) Reset() {
	*t = Turnaround{at: -1}
}

// Default returns one of each metric.
func Default() []Metric {
	return []Metric{NewPeakSpeed(), NewDistance(), NewMaxDisplacement(), NewTurnaround()}
}

// Collector is a session observer that feeds its metrics.
type Collector struct {
	metrics []Metric
}

func NewCollector(ms ...Metric) *Collector {
	return &Collector{metrics: ms}
}

func (c *Collector) OnTick(st motion.State, _ []trajectory.Sample) {
	for _, m := range c.metrics {
		m.Observe(st)
	}
}

func (c *Collector) OnPhase(p session.Phase) {
	if p == session.Idle {
		for _, m := range c.metrics {
			m.Reset()
		}
	}
}

func (c *Collector) Values() map[string]float64 {
	out := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names lists the collected metric names in a stable order.
func (c *Collector) Names() []string {
	names := make([]string, 0, len(c.metrics))
	for _, m := range c.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}
