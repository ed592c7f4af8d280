package session

import (
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/trajectory"
	"github.com/san-kum/motionlab/internal/viewport"
)

type options struct {
	bounds    motion.Bounds
	widthPx   float64
	spanM     float64
	band      float64
	interval  float64
	observers []Observer
}

func defaultOptions() options {
	return options{
		bounds:   motion.DefaultBounds(),
		widthPx:  viewport.DefaultWidthPx,
		spanM:    viewport.DefaultSpanM,
		band:     viewport.DefaultFollowBand,
		interval: trajectory.DefaultInterval,
	}
}

type Option func(*options)

func WithBounds(b motion.Bounds) Option {
	return func(o *options) { o.bounds = b }
}

// WithViewport sets the screen width in pixels and the metric span it shows.
func WithViewport(widthPx, spanM float64) Option {
	return func(o *options) {
		o.widthPx = widthPx
		o.spanM = spanM
	}
}

func WithFollowBand(frac float64) Option {
	return func(o *options) { o.band = frac }
}

func WithSampleInterval(seconds float64) Option {
	return func(o *options) { o.interval = seconds }
}

func WithObserver(obs Observer) Option {
	return func(o *options) { o.observers = append(o.observers, obs) }
}
