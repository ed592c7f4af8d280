package motion

// Advance returns the state reached after t seconds of simulation time.
func Advance(cfg Config, t float64) State {
	return State{
		Time:     t,
		Position: cfg.InitialVelocity*t + 0.5*cfg.Acceleration*t*t,
		Velocity: cfg.InitialVelocity + cfg.Acceleration*t,
	}
}

// InBounds reports whether pos lies inside b. Both ends are inclusive.
func InBounds(pos float64, b Bounds) bool {
	return pos >= b.Min && pos <= b.Max
}
