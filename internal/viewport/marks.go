package viewport

import (
	"fmt"
	"math"
)

const (
	MarkStepM   = 5.0
	MarkMarginM = 50.0
	markCullPx  = 100.0
)

type MarkKind int

const (
	MarkMinor MarkKind = iota
	MarkTen
	MarkHalf
	MarkMajor
)

// Height is the tick length in pixels.
func (k MarkKind) Height() int {
	switch k {
	case MarkMajor:
		return 20
	case MarkHalf:
		return 15
	case MarkTen:
		return 12
	default:
		return 6
	}
}

type Mark struct {
	Meter float64
	X     float64 // screen px
	Kind  MarkKind
	Label string // empty unless the mark is labelled
}

func markKind(m int) MarkKind {
	switch {
	case m%100 == 0:
		return MarkMajor
	case m%50 == 0:
		return MarkHalf
	case m%10 == 0:
		return MarkTen
	default:
		return MarkMinor
	}
}

// Marks projects the visible window, widened by a 50 m margin and limited to
// the bounds, onto 5 m scale marks. Marks further than 100 px off screen are
// culled.
func (v *Viewport) Marks() []Mark {
	lo := math.Max(v.bounds.Min, v.Left()-MarkMarginM)
	hi := math.Min(v.bounds.Max, v.Right()+MarkMarginM)
	first := int(math.Ceil(lo/MarkStepM)) * int(MarkStepM)
	last := int(math.Floor(hi/MarkStepM)) * int(MarkStepM)

	marks := make([]Mark, 0, (last-first)/int(MarkStepM)+1)
	for m := first; m <= last; m += int(MarkStepM) {
		x := v.MeterToPixel(float64(m))
		if x < -markCullPx || x > v.widthPx+markCullPx {
			continue
		}
		mk := Mark{Meter: float64(m), X: x, Kind: markKind(m)}
		if mk.Kind >= MarkHalf {
			mk.Label = fmt.Sprintf("%dm", m)
		}
		marks = append(marks, mk)
	}
	return marks
}
