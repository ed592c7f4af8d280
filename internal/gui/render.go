package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/motionlab/internal/session"
	"github.com/san-kum/motionlab/internal/trajectory"
)

const (
	trackY      = 260
	objectSize  = 20
	sampleR     = 4
	labelSize   = 12
	tableTop    = 360
	tableRowH   = 18
	tableMaxRow = 12
)

func phaseLabel(p session.Phase) string {
	switch p {
	case session.Running:
		return "RUNNING"
	case session.Paused:
		return "PAUSED"
	case session.Finished:
		return "FINISHED"
	default:
		return "IDLE"
	}
}

// sampleLabels are stacked above a sample dot, top first.
func sampleLabels(s trajectory.Sample) []string {
	return []string{
		fmt.Sprintf("%.1fs", s.Time),
		fmt.Sprintf("%.1fm/s", s.Velocity),
		fmt.Sprintf("%.1fm", s.Position),
	}
}

// tableWindow returns the newest rows that fit in the table.
func tableWindow(samples []trajectory.Sample, max int) []trajectory.Sample {
	if len(samples) <= max {
		return samples
	}
	return samples[len(samples)-max:]
}

func (a *App) drawTrack(snap session.Snapshot) {
	view := a.Ctrl.View()

	rl.DrawLine(0, trackY, a.width, trackY, ColAccent)

	for _, mk := range view.Marks() {
		x := int32(mk.X)
		rl.DrawLine(x, trackY, x, trackY+int32(mk.Kind.Height()), ColText)
		if mk.Label != "" {
			w := rl.MeasureText(mk.Label, labelSize)
			a.drawText(mk.Label, int(x-w/2), trackY+26, labelSize, ColText)
		}
	}

	for _, s := range snap.Samples {
		x := view.MeterToPixel(s.Position)
		if x < 0 || x > view.WidthPx() {
			continue
		}
		rl.DrawCircle(int32(x), trackY, sampleR, ColSample)
		for i, l := range sampleLabels(s) {
			w := rl.MeasureText(l, labelSize)
			a.drawText(l, int(int32(x)-w/2), trackY-objectSize-60+i*14, labelSize, ColSample)
		}
	}

	x := int32(view.MeterToPixel(snap.Position))
	rl.DrawRectangle(x-objectSize/2, trackY-objectSize, objectSize, objectSize, ColObject)
}

func (a *App) drawTable(snap session.Snapshot) {
	cols := []int{30, 150, 290}
	a.drawText("time (s)", cols[0], tableTop, 14, ColSelect)
	a.drawText("velocity (m/s)", cols[1], tableTop, 14, ColSelect)
	a.drawText("position (m)", cols[2], tableTop, 14, ColSelect)
	rl.DrawLine(30, tableTop+18, 420, tableTop+18, ColGrid)

	for i, s := range tableWindow(snap.Samples, tableMaxRow) {
		y := tableTop + 24 + i*tableRowH
		a.drawText(fmt.Sprintf("%.2f", s.Time), cols[0], y, 14, ColText)
		a.drawText(fmt.Sprintf("%.2f", s.Velocity), cols[1], y, 14, ColText)
		a.drawText(fmt.Sprintf("%.2f", s.Position), cols[2], y, 14, ColText)
	}
}
