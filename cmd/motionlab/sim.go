package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/san-kum/motionlab/internal/audio"
	"github.com/san-kum/motionlab/internal/clock"
	"github.com/san-kum/motionlab/internal/config"
	"github.com/san-kum/motionlab/internal/gui"
	"github.com/san-kum/motionlab/internal/metrics"
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/session"
	"github.com/san-kum/motionlab/internal/storage"
	"github.com/san-kum/motionlab/internal/viz"
	"github.com/spf13/cobra"
)

// buildConfig layers defaults, a config file, a preset's motion and
// explicitly set flags, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Motion = p.Motion
	}

	flags := cmd.Flags()
	if flags.Changed("v0") {
		cfg.Motion.InitialVelocity = v0
	}
	if flags.Changed("accel") {
		cfg.Motion.Acceleration = accel
	}
	if flags.Changed("speed") {
		cfg.Motion.TimeScale = speed
	}
	if flags.Changed("interval") {
		cfg.SampleInterval = interval
	}
	if flags.Changed("fps") {
		cfg.Run.FrameRate = frameRate
	}
	if flags.Changed("time") {
		cfg.Run.Duration = duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newSession(cfg *config.Config, sched clock.Scheduler, obs ...session.Observer) (*session.Controller, error) {
	opts := []session.Option{
		session.WithBounds(cfg.Bounds),
		session.WithViewport(cfg.Viewport.WidthPx, cfg.Viewport.SpanM),
		session.WithFollowBand(cfg.Viewport.FollowBand),
		session.WithSampleInterval(cfg.SampleInterval),
	}
	for _, o := range obs {
		opts = append(opts, session.WithObserver(o))
	}
	return session.New(cfg.Motion, sched, opts...)
}

// simulate runs a session on a manual clock at the configured frame rate
// until it leaves the bounds or the wall-clock limit is used up.
func simulate(cfg *config.Config, obs ...session.Observer) (*session.Controller, error) {
	mt := clock.NewManualTime(time.Unix(0, 0))
	loop := clock.NewFrameLoop(mt.Now)

	ctrl, err := newSession(cfg, loop, obs...)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Start(); err != nil {
		return nil, err
	}

	frame := time.Second / time.Duration(cfg.Run.FrameRate)
	frames := int(math.Ceil(cfg.Run.Duration * float64(cfg.Run.FrameRate)))
	for i := 0; i < frames && ctrl.Phase() == session.Running; i++ {
		mt.Advance(frame)
		loop.Frame()
	}
	return ctrl, nil
}

func runLabel() string {
	if preset != "" {
		return preset
	}
	return "run"
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running v0=%g a=%g (%gx)...\n", cfg.Motion.InitialVelocity, cfg.Motion.Acceleration, cfg.Motion.TimeScale)
	start := time.Now()

	collector := metrics.NewCollector(metrics.Default()...)
	ctrl, err := simulate(cfg, collector)
	if err != nil {
		return err
	}
	snap := ctrl.Snapshot()
	values := collector.Values()

	runID, err := st.Save(storage.Run{
		Label:          runLabel(),
		Config:         snap.Config,
		Bounds:         ctrl.Bounds(),
		SampleInterval: ctrl.SampleInterval(),
		Final:          motion.State{Time: snap.ElapsedTime, Position: snap.Position, Velocity: snap.Velocity},
		Phase:          snap.Phase.String(),
		Samples:        snap.Samples,
		Metrics:        values,
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("phase: %s\n", snap.Phase)
	fmt.Printf("t=%.2fs x=%.2fm v=%.2fm/s\n", snap.ElapsedTime, snap.Position, snap.Velocity)
	fmt.Printf("samples: %d\n", len(snap.Samples))
	fmt.Println("\nmetrics:")
	for _, name := range collector.Names() {
		fmt.Printf("  %s: %.6f\n", name, values[name])
	}
	return nil
}

// attachAudio starts the sonifier when --audio is set. Audio failures are
// logged and the session runs silent.
func attachAudio(ctrl *session.Controller) func() {
	if !withAudio {
		return func() {}
	}
	s := audio.NewSonifier()
	if err := s.Start(); err != nil {
		log.Printf("audio disabled: %v", err)
		return func() {}
	}
	ctrl.AddObserver(s)
	return s.Stop
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	loop := clock.NewFrameLoop(nil)
	ctrl, err := newSession(cfg, loop)
	if err != nil {
		return err
	}
	defer attachAudio(ctrl)()
	return viz.Run(ctrl, loop, cfg.Run.FrameRate)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	loop := clock.NewFrameLoop(nil)
	ctrl, err := newSession(cfg, loop)
	if err != nil {
		return err
	}
	defer attachAudio(ctrl)()
	gui.Run(ctrl, loop, cfg.Run.FrameRate)
	return nil
}
