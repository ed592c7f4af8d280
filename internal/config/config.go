package config

import (
	"fmt"
	"os"

	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/trajectory"
	"github.com/san-kum/motionlab/internal/viewport"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameRate = 60
	DefaultDuration  = 120.0
)

type Config struct {
	Motion         motion.Config  `yaml:"motion"`
	Bounds         motion.Bounds  `yaml:"bounds"`
	Viewport       ViewportConfig `yaml:"viewport"`
	SampleInterval float64        `yaml:"sample_interval"`
	Run            RunConfig      `yaml:"run"`
}

type ViewportConfig struct {
	WidthPx    float64 `yaml:"width_px"`
	SpanM      float64 `yaml:"span_m"`
	FollowBand float64 `yaml:"follow_band"`
}

// RunConfig controls headless runs; interactive renderers use their own
// frame pacing.
type RunConfig struct {
	FrameRate int     `yaml:"frame_rate"`
	Duration  float64 `yaml:"duration"` // wall seconds before a headless run gives up
}

func DefaultConfig() *Config {
	return &Config{
		Motion: motion.DefaultConfig(),
		Bounds: motion.DefaultBounds(),
		Viewport: ViewportConfig{
			WidthPx:    viewport.DefaultWidthPx,
			SpanM:      viewport.DefaultSpanM,
			FollowBand: viewport.DefaultFollowBand,
		},
		SampleInterval: trajectory.DefaultInterval,
		Run: RunConfig{
			FrameRate: DefaultFrameRate,
			Duration:  DefaultDuration,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parts the session does not check itself.
func (c *Config) Validate() error {
	if err := c.Motion.Validate(); err != nil {
		return err
	}
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	if c.SampleInterval <= 0 {
		return fmt.Errorf("sample interval must be positive, got %v", c.SampleInterval)
	}
	if c.Run.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.Run.FrameRate)
	}
	if c.Run.Duration <= 0 {
		return fmt.Errorf("run duration must be positive, got %v", c.Run.Duration)
	}
	return nil
}
