package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string

	mass      float64
	stiffness float64
	gravity   float64
	muStatic  float64
	muDynamic float64
	x0        float64
	v0        float64
	dt        float64
	duration  float64
	epsilon   float64
	numCycles int

	plot     bool
	phase    bool
	force    bool
	jobs     int
	dtList   []float64
	benchDts []float64
	benchNs  []int
)

// main registers the commands and flags and executes the root command.
// It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "stickslip",
		Short:        "spring-mass oscillator with Coulomb friction",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate the equations of motion",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addPhysicsFlags(runCmd)
	addIntegrationFlags(runCmd)
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot x(t)")
	runCmd.Flags().BoolVar(&phase, "phase", false, "draw the phase portrait")

	cyclesCmd := &cobra.Command{
		Use:   "cycles",
		Short: "analytic turning points per half cycle",
		Args:  cobra.NoArgs,
		RunE:  runCycles,
	}
	addPhysicsFlags(cyclesCmd)
	cyclesCmd.Flags().IntVar(&numCycles, "n", 5, "number of full cycles")
	cyclesCmd.Flags().BoolVar(&plot, "plot", false, "plot turning points against cycle")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "check numerical turning points against the analytic solution",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}
	addPhysicsFlags(compareCmd)
	addIntegrationFlags(compareCmd)
	compareCmd.Flags().IntVar(&numCycles, "n", 5, "number of full cycles")

	convergenceCmd := &cobra.Command{
		Use:   "convergence",
		Short: "cross-check error across a sweep of step sizes",
		Args:  cobra.NoArgs,
		RunE:  runConvergence,
	}
	addPhysicsFlags(convergenceCmd)
	addIntegrationFlags(convergenceCmd)
	convergenceCmd.Flags().Float64SliceVar(&dtList, "dts", []float64{1e-2, 5e-3, 2e-3, 1e-3, 1e-4}, "step sizes to compare")
	convergenceCmd.Flags().IntVar(&jobs, "jobs", 4, "concurrent integrations")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency, turning point and rest analysis of a run",
		Args:  cobra.NoArgs,
		RunE:  runAnalyze,
	}
	addPhysicsFlags(analyzeCmd)
	addIntegrationFlags(analyzeCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time and memory of the solver and integrator",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	addPhysicsFlags(benchCmd)
	benchCmd.Flags().IntSliceVar(&benchNs, "cycles", []int{100, 1000, 10000}, "cycle counts for the analytic solver")
	benchCmd.Flags().Float64SliceVar(&benchDts, "dts", []float64{1e-2, 1e-3, 1e-4}, "step sizes for the integrator")
	benchCmd.Flags().Float64Var(&duration, "time", 25, "integration duration")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "replay a run in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}
	addPhysicsFlags(watchCmd)
	addIntegrationFlags(watchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	addPhysicsFlags(initCmd)
	addIntegrationFlags(initCmd)
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(runCmd, cyclesCmd, compareCmd, convergenceCmd, analyzeCmd, benchCmd, watchCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", 30, "mass (kg)")
	cmd.Flags().Float64Var(&stiffness, "k", 50, "spring stiffness (N/m)")
	cmd.Flags().Float64Var(&gravity, "g", 9.81, "gravitational acceleration (m/s²)")
	cmd.Flags().Float64Var(&muStatic, "mu-s", 0.05, "static friction coefficient")
	cmd.Flags().Float64Var(&muDynamic, "mu-d", 0.05, "kinetic friction coefficient")
	cmd.Flags().Float64Var(&x0, "x0", 6, "initial displacement (m)")
}

func addIntegrationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&v0, "v0", 0, "initial velocity (m/s)")
	cmd.Flags().Float64Var(&dt, "dt", 1e-4, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 25, "duration")
	cmd.Flags().Float64Var(&epsilon, "eps", 0, "velocity threshold for sticking (0 = default)")
}
