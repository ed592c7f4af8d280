// Package viewport maps the metric axis onto a fixed-width screen strip and
// moves the camera over it, either by following the tracked object or by a
// manual drag. The visible window never extends past the global bounds.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/motionlab/internal/motion"
)

const (
	DefaultWidthPx    = 1200.0
	DefaultSpanM      = 200.0
	DefaultFollowBand = 0.6 // central fraction of the width the object may roam before recentring
)

var (
	ErrInvalidDimensions = errors.New("viewport: width and span must be positive and finite")
	ErrSpanExceedsBounds = errors.New("viewport: visible span is wider than the global bounds")
)

type Viewport struct {
	widthPx float64
	scale   float64 // px per meter
	bounds  motion.Bounds
	band    float64
	center  float64

	panning   bool
	panOrigin float64
}

// New returns a viewport widthPx pixels wide showing spanM meters, centred
// on 0 (or the nearest admissible centre).
func New(widthPx, spanM float64, bounds motion.Bounds) (*Viewport, error) {
	if !(widthPx > 0) || !(spanM > 0) || math.IsInf(widthPx, 0) || math.IsInf(spanM, 0) {
		return nil, ErrInvalidDimensions
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if spanM > bounds.Width() {
		return nil, fmt.Errorf("%w: span %gm, bounds %gm", ErrSpanExceedsBounds, spanM, bounds.Width())
	}

	v := &Viewport{
		widthPx: widthPx,
		scale:   widthPx / spanM,
		bounds:  bounds,
		band:    DefaultFollowBand,
	}
	v.Reset()
	return v, nil
}

// Default is the 1200 px / 200 m viewport over the default bounds.
func Default() *Viewport {
	v, err := New(DefaultWidthPx, DefaultSpanM, motion.DefaultBounds())
	if err != nil {
		panic(err)
	}
	return v
}

// SetFollowBand sets the central fraction of the width inside which
// auto-follow leaves the camera alone. Values outside (0, 1] are ignored.
func (v *Viewport) SetFollowBand(frac float64) {
	if frac > 0 && frac <= 1 {
		v.band = frac
	}
}

func (v *Viewport) WidthPx() float64      { return v.widthPx }
func (v *Viewport) Scale() float64        { return v.scale }
func (v *Viewport) Bounds() motion.Bounds { return v.bounds }
func (v *Viewport) FollowBand() float64   { return v.band }
func (v *Viewport) Center() float64       { return v.center }
func (v *Viewport) HalfWidth() float64    { return v.widthPx / (2 * v.scale) }
func (v *Viewport) Left() float64         { return v.center - v.HalfWidth() }
func (v *Viewport) Right() float64        { return v.center + v.HalfWidth() }
func (v *Viewport) Panning() bool         { return v.panning }

func (v *Viewport) MeterToPixel(m float64) float64 {
	return (m - v.Left()) * v.scale
}

func (v *Viewport) PixelToMeter(px float64) float64 {
	return px/v.scale + v.Left()
}

// ClampCenter returns the centre closest to c that keeps the whole window
// inside the bounds.
func (v *Viewport) ClampCenter(c float64) float64 {
	half := v.HalfWidth()
	return math.Max(v.bounds.Min+half, math.Min(v.bounds.Max-half, c))
}

func (v *Viewport) SetCenter(c float64) {
	v.center = v.ClampCenter(c)
}

// Reset recentres on 0 and drops any open pan gesture.
func (v *Viewport) Reset() {
	v.SetCenter(0)
	v.panning = false
	v.panOrigin = v.center
}

// AutoFollow recentres on pos when its screen position has left the central
// follow band. It reports whether the centre moved.
func (v *Viewport) AutoFollow(pos float64) bool {
	x := v.MeterToPixel(pos)
	margin := v.widthPx * (1 - v.band) / 2
	if x >= margin && x <= v.widthPx-margin {
		return false
	}

	prev := v.center
	v.SetCenter(pos)
	return v.center != prev
}

// PanStart opens a drag gesture anchored at the current centre.
func (v *Viewport) PanStart() {
	v.panning = true
	v.panOrigin = v.center
}

// PanBy moves the camera against a drag of deltaPx pixels measured from the
// start of the gesture: dragging right reveals what lies to the left.
func (v *Viewport) PanBy(deltaPx float64) {
	if !v.panning {
		v.PanStart()
	}
	v.SetCenter(v.panOrigin - deltaPx/v.scale)
}

func (v *Viewport) PanEnd() {
	v.panning = false
}
