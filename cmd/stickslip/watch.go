package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/sim"
	"github.com/san-kum/stickslip/internal/viz"
)

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	p := cfg.GetParams()
	ic, vel := cfg.GetIntegration()

	s := sim.New(nil)
	s.SetLogger(newLogger(cfg))
	result, err := s.Run(p, vel, ic)
	if err != nil {
		return err
	}

	return viz.RunPlayback(result.Trajectory, p, ic.Epsilon())
}
