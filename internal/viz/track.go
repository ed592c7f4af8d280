package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/motionlab/internal/session"
	"github.com/san-kum/motionlab/internal/viewport"
)

// Rows of the rendered track, top to bottom.
const (
	rowTime = iota
	rowVelocity
	rowPosition
	rowObject
	rowTrack
	rowMarkLabel
	trackRows
)

const (
	glyphObject = '█'
	glyphSample = '•'
	glyphTrack  = '─'
)

// column maps a screen pixel onto one of cols terminal cells.
func column(px, widthPx float64, cols int) (int, bool) {
	c := int(math.Floor(px * float64(cols) / widthPx))
	return c, c >= 0 && c < cols
}

func markGlyph(k viewport.MarkKind) rune {
	switch k {
	case viewport.MarkMajor, viewport.MarkHalf:
		return '┼'
	case viewport.MarkTen:
		return '┴'
	default:
		return '┬'
	}
}

// placeLabel centres s on col. Labels that would leave the row or overlap
// text already placed are dropped.
func placeLabel(row []rune, col int, s string) bool {
	r := []rune(s)
	start := col - len(r)/2
	if start < 0 || start+len(r) > len(row) {
		return false
	}
	lo, hi := start-1, start+len(r)
	if lo < 0 {
		lo = 0
	}
	if hi >= len(row) {
		hi = len(row) - 1
	}
	for i := lo; i <= hi; i++ {
		if row[i] != ' ' {
			return false
		}
	}
	copy(row[start:], r)
	return true
}

// renderTrack draws the camera window onto cols cells: sample labels, the
// samples and the object, the track with its scale ticks and the mark labels.
func renderTrack(view session.View, snap session.Snapshot, cols int) []string {
	if cols <= 0 {
		return nil
	}
	w := view.WidthPx()

	rows := make([][]rune, trackRows)
	for i := range rows {
		fill := ' '
		if i == rowTrack {
			fill = glyphTrack
		}
		rows[i] = []rune(strings.Repeat(string(fill), cols))
	}

	for _, mk := range view.Marks() {
		c, ok := column(mk.X, w, cols)
		if !ok {
			continue
		}
		rows[rowTrack][c] = markGlyph(mk.Kind)
		if mk.Label != "" {
			placeLabel(rows[rowMarkLabel], c, mk.Label)
		}
	}

	for _, s := range snap.Samples {
		c, ok := column(view.MeterToPixel(s.Position), w, cols)
		if !ok {
			continue
		}
		rows[rowObject][c] = glyphSample
		placeLabel(rows[rowTime], c, fmt.Sprintf("%.1fs", s.Time))
		placeLabel(rows[rowVelocity], c, fmt.Sprintf("%.1fm/s", s.Velocity))
		placeLabel(rows[rowPosition], c, fmt.Sprintf("%.1fm", s.Position))
	}

	if c, ok := column(view.MeterToPixel(snap.Position), w, cols); ok {
		rows[rowObject][c] = glyphObject
	}

	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return out
}
