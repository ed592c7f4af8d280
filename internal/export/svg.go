package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/trajectory"
	"github.com/san-kum/motionlab/internal/viewport"
)

const (
	sceneHeight = 220.0
	trackY      = 150.0
	minTickGap  = 4.0 // px; denser mark classes are skipped
)

// SceneSVG draws the track with its scale marks and one labelled dot per
// sample, framed to fit the samples.
func SceneSVG(w io.Writer, samples []trajectory.Sample, bounds motion.Bounds, widthPx float64) error {
	view, err := fitView(samples, bounds, widthPx)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.0f" x2="%.0f" y2="%.0f" stroke="#444" stroke-width="2"/>
`, widthPx, sceneHeight, widthPx, sceneHeight, trackY, widthPx, trackY))

	sb.WriteString(`<g stroke="#888" font-family="monospace" font-size="11" fill="#aaa">` + "\n")
	for _, mk := range view.Marks() {
		if !markVisible(mk.Kind, view.Scale()) {
			continue
		}
		h := float64(mk.Kind.Height())
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", mk.X, trackY, mk.X, trackY+h))
		if mk.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" stroke="none">%s</text>`+"\n", mk.X, trackY+h+14, mk.Label))
		}
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g font-family="monospace" font-size="10" text-anchor="middle">` + "\n")
	for _, s := range samples {
		x := view.MeterToPixel(s.Position)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="#007bff" fill-opacity="0.5"/>`+"\n", x, trackY-8))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#ccc">%.1fs</text>`+"\n", x, trackY-60, s.Time))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#00ccff">%.1fm/s</text>`+"\n", x, trackY-46, s.Velocity))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#00ff88">%.1fm</text>`+"\n", x, trackY-32, s.Position))
	}
	sb.WriteString("</g>\n</svg>\n")

	_, err = io.WriteString(w, sb.String())
	return err
}

func fitView(samples []trajectory.Sample, bounds motion.Bounds, widthPx float64) (*viewport.Viewport, error) {
	lo, hi := 0.0, 0.0
	for _, s := range samples {
		lo = math.Min(lo, s.Position)
		hi = math.Max(hi, s.Position)
	}

	span := math.Max(viewport.DefaultSpanM, (hi-lo)*1.2)
	span = math.Min(span, bounds.Width())

	view, err := viewport.New(widthPx, span, bounds)
	if err != nil {
		return nil, err
	}
	view.SetCenter((lo + hi) / 2)
	return view, nil
}

func markVisible(k viewport.MarkKind, scale float64) bool {
	switch k {
	case viewport.MarkMinor:
		return scale*viewport.MarkStepM >= minTickGap
	case viewport.MarkTen:
		return scale*10 >= minTickGap
	case viewport.MarkHalf:
		return scale*50 >= minTickGap
	default:
		return true
	}
}
