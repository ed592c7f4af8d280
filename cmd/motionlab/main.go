package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	debug      bool
	configFile string
	preset     string
	v0         float64
	accel      float64
	speed      float64
	interval   float64
	frameRate  int
	duration   float64
	withAudio  bool
	outFile    string

	logFile *os.File
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs root and closes the debug log whether or not the command
// failed. Cobra skips post-run hooks after an error.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "motionlab",
		Short: "one-dimensional constant-acceleration motion lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(debug)
		},
		// Default to the window when no command is given
		RunE: runGUI,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".motionlab", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug log to logs/motionlab.log")
	addSimFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot position and velocity of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	tableCmd := &cobra.Command{
		Use:   "table [run_id]",
		Short: "print the sample table of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  tableRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run with its samples as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the samples of a run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a run's samples on the track as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd, exportSVGCmd} {
		c.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	}

	exportWAVCmd := &cobra.Command{
		Use:   "export-wav [run_id]",
		Short: "render a run's sonification to a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportWAV,
	}
	exportWAVCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default <run_id>.wav)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list motion presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, plotCmd, tableCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, exportWAVCmd, presetsCmd)
	return rootCmd
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&v0, "v0", 10, "initial velocity (m/s)")
	cmd.Flags().Float64Var(&accel, "accel", 2, "acceleration (m/s²)")
	cmd.Flags().Float64Var(&speed, "speed", 1, "time scale")
	cmd.Flags().Float64Var(&interval, "interval", 1, "sample interval (s)")
	cmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")
	cmd.Flags().Float64Var(&duration, "time", 120, "wall-clock limit of a headless run (s)")
	cmd.Flags().BoolVar(&withAudio, "audio", false, "sonify velocity and samples")
}
