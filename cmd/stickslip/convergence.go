package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/analysis"
	"github.com/san-kum/stickslip/internal/sim"
	"github.com/san-kum/stickslip/internal/viz"
)

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	p := cfg.GetParams()
	base, vel := cfg.GetIntegration()
	if err := requireRelease(vel); err != nil {
		return err
	}

	record, err := solveCycles(logger, p, cfg.Cycles.Count)
	if err != nil {
		return err
	}

	runs := make([]sim.Job, len(dtList))
	for i, step := range dtList {
		ic := base
		ic.Dt = step
		runs[i] = sim.Job{Params: p, V0: vel, Config: ic}
	}

	ensemble := sim.NewEnsemble(func() *sim.Simulator {
		s := sim.New(nil)
		s.SetLogger(logger)
		return s
	}, jobs)

	results, err := ensemble.Run(cmd.Context(), runs)
	if err != nil {
		return err
	}

	fmt.Printf("step size sweep over %.1fs, %d turning points\n\n", base.Duration, cfg.Cycles.CompareCount)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tMAX_REL_ERR\tELAPSED\tRESULT")
	for i, res := range results {
		report := analysis.CrossCheck(res.Trajectory, p, record, cfg.Cycles.CompareCount, cfg.Cycles.Tolerance)
		fmt.Fprintf(w, "%g\t%d\t%.3e\t%v\t%s\n", dtList[i], res.Len(), report.MaxRelErr, res.Elapsed, viz.Verdict(report.OK))
	}
	return w.Flush()
}
