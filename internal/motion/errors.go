package motion

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration that cannot drive a run.
var ErrInvalidConfig = errors.New("motion: invalid configuration")

// ConfigError reports which field of a Config was rejected.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("motion: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
