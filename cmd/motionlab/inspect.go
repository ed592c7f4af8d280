package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/motionlab/internal/audio"
	"github.com/san-kum/motionlab/internal/config"
	"github.com/san-kum/motionlab/internal/export"
	"github.com/san-kum/motionlab/internal/storage"
	"github.com/san-kum/motionlab/internal/trajectory"
	"github.com/spf13/cobra"
)

func loadRun(runID string) (*storage.RunMetadata, []trajectory.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load samples of %s: %w", runID, err)
	}
	return meta, samples, nil
}

// output opens --output, or stdout when it is unset.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tV0\tACCEL\tPHASE\tT_FINAL\tSAMPLES\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%.2f\t%d\t%s\n",
			r.ID, r.Config.InitialVelocity, r.Config.Acceleration, r.Phase,
			r.Final.Time, r.NumSamples, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("run %s has %d samples, need at least 2 to plot", meta.ID, len(samples))
	}

	pos := make([]float64, len(samples))
	vel := make([]float64, len(samples))
	for i, s := range samples {
		pos[i] = s.Position
		vel[i] = s.Velocity
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: v0=%g a=%g, %d samples every %gs\n\n",
		meta.ID, meta.Config.InitialVelocity, meta.Config.Acceleration, len(samples), meta.SampleInterval)
	fmt.Fprintln(out, asciigraph.Plot(pos,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("position (m)"),
	))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(vel,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("velocity (m/s)"),
	))
	return nil
}

func tableRun(cmd *cobra.Command, args []string) error {
	_, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return writeSampleTable(cmd.OutOrStdout(), samples)
}

func writeSampleTable(out io.Writer, samples []trajectory.Sample) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "TIME (s)\tVELOCITY (m/s)\tPOSITION (m)\t")
	for _, s := range samples {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t\n", s.Time, s.Velocity, s.Position)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.JSON(w, meta, samples); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if err := storage.WriteSamplesCSV(w, samples); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.SceneSVG(w, samples, meta.Bounds, config.DefaultConfig().Viewport.WidthPx); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportWAV(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	path := outFile
	if path == "" {
		path = meta.ID + ".wav"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audio.WriteWAV(f, meta.Config, meta.Final.Time, samples); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%.1fs)\n", path, math.Min(meta.Final.Time, audio.MaxRenderSeconds))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tV0\tACCEL\tSPEED\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%g\t%g\t%gx\t%s\n", name,
			p.Motion.InitialVelocity, p.Motion.Acceleration, p.Motion.TimeScale, p.Description)
	}
	return w.Flush()
}
