package config

import "sort"

var Presets = map[string]struct {
	Description string
	Motion      MotionPreset
}{
	"cruise":  {"constant speed, no acceleration", MotionPreset{InitialVelocity: 15, Acceleration: 0, TimeScale: 1}},
	"brake":   {"decelerates, stops and reverses", MotionPreset{InitialVelocity: 10, Acceleration: -2, TimeScale: 1}},
	"reverse": {"starts backwards and accelerates forward", MotionPreset{InitialVelocity: -30, Acceleration: 4, TimeScale: 1}},
	"launch":  {"from rest under strong acceleration", MotionPreset{InitialVelocity: 0, Acceleration: 9.8, TimeScale: 1}},
	"crawl":   {"slow drift, played at 5x", MotionPreset{InitialVelocity: 0.5, Acceleration: 0.05, TimeScale: 5}},
}

type MotionPreset struct {
	InitialVelocity float64
	Acceleration    float64
	TimeScale       float64
}

// GetPreset returns the default config with the named preset's motion
// applied, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Motion.InitialVelocity = p.Motion.InitialVelocity
	cfg.Motion.Acceleration = p.Motion.Acceleration
	cfg.Motion.TimeScale = p.Motion.TimeScale
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
