// Package trajectory records the sampled path of a run at fixed intervals of
// simulation time, independent of how the frames that drive the run are
// spaced.
package trajectory

import (
	"math"

	"github.com/san-kum/motionlab/internal/motion"
)

const DefaultInterval = 1.0

type Sample struct {
	Time     float64 `json:"time"`
	Position float64 `json:"position"`
	Velocity float64 `json:"velocity"`
}

// Boundaries returns every multiple k·interval with prev < k·interval <= next,
// in increasing order.
func Boundaries(prev, next, interval float64) []float64 {
	if interval <= 0 || !(next > prev) {
		return nil
	}

	k := math.Floor(prev/interval) + 1
	if k*interval <= prev {
		k++
	}

	var out []float64
	for ; k*interval <= next; k++ {
		out = append(out, k*interval)
	}
	return out
}

// LastBoundary returns the last boundary crossed between prev and next, or
// prev when none was crossed.
func LastBoundary(prev, next, interval float64) float64 {
	b := Boundaries(prev, next, interval)
	if len(b) == 0 {
		return prev
	}
	return b[len(b)-1]
}

// MaybeSample evaluates the exact state at each boundary crossed between
// prev and next. Samples whose position lies outside bounds are dropped;
// the boundary still counts as crossed.
func MaybeSample(prev, next, interval float64, cfg motion.Config, bounds motion.Bounds) []Sample {
	var samples []Sample
	for _, t := range Boundaries(prev, next, interval) {
		st := motion.Advance(cfg, t)
		if !motion.InBounds(st.Position, bounds) {
			continue
		}
		samples = append(samples, Sample{Time: st.Time, Position: st.Position, Velocity: st.Velocity})
	}
	return samples
}
