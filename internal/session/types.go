package session

import (
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/trajectory"
	"github.com/san-kum/motionlab/internal/viewport"
)

type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Snapshot is the externally visible state of a session. Samples is a copy.
type Snapshot struct {
	ElapsedTime    float64
	Position       float64
	Velocity       float64
	ViewportCenter float64
	Phase          Phase
	Samples        []trajectory.Sample
	Config         motion.Config
}

// Observer is notified synchronously from inside the tick.
type Observer interface {
	OnTick(st motion.State, added []trajectory.Sample)
	OnPhase(p Phase)
}

// View is the read-only face of the session camera handed to renderers.
type View interface {
	Center() float64
	Left() float64
	Right() float64
	WidthPx() float64
	Scale() float64
	MeterToPixel(m float64) float64
	PixelToMeter(px float64) float64
	Marks() []viewport.Mark
}
