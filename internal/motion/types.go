package motion

import (
	"fmt"
	"math"
)

const (
	DefaultInitialVelocity = 10.0
	DefaultAcceleration    = 2.0
	DefaultTimeScale       = 1.0

	DefaultMinPosition = -1000.0
	DefaultMaxPosition = 1000.0
)

// Config is fixed for the duration of a run. Changing it means a reset.
type Config struct {
	InitialVelocity float64 `yaml:"initial_velocity" json:"initial_velocity"`
	Acceleration    float64 `yaml:"acceleration" json:"acceleration"`
	TimeScale       float64 `yaml:"time_scale" json:"time_scale"` // simulation seconds per wall second
}

func DefaultConfig() Config {
	return Config{
		InitialVelocity: DefaultInitialVelocity,
		Acceleration:    DefaultAcceleration,
		TimeScale:       DefaultTimeScale,
	}
}

// Validate rejects non-finite velocity or acceleration and a time scale
// that is not a positive finite number. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	if !isFinite(c.InitialVelocity) {
		return &ConfigError{Field: "initial velocity", Value: c.InitialVelocity, Reason: "must be finite"}
	}
	if !isFinite(c.Acceleration) {
		return &ConfigError{Field: "acceleration", Value: c.Acceleration, Reason: "must be finite"}
	}
	if !isFinite(c.TimeScale) || c.TimeScale <= 0 {
		return &ConfigError{Field: "time scale", Value: c.TimeScale, Reason: "must be positive and finite"}
	}
	return nil
}

type State struct {
	Time     float64 `json:"time"`
	Position float64 `json:"position"`
	Velocity float64 `json:"velocity"`
}

type Bounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinPosition, Max: DefaultMaxPosition}
}

func (b Bounds) Width() float64 { return b.Max - b.Min }

func (b Bounds) Validate() error {
	if !isFinite(b.Min) || !isFinite(b.Max) || b.Min >= b.Max {
		return fmt.Errorf("motion: invalid bounds [%v, %v]", b.Min, b.Max)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
