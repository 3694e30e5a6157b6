package main

import (
	"github.com/spf13/cobra"

	"beeclust"
)

// config collects the flags shared by the "run" and "gui" subcommands
// into a single struct so multiple independent configurations can
// coexist in the same process (each Simulation requires that parameters
// be per-instance, not process-global).
type config struct {
	size    int
	bees    int
	heaters int
	coolers int
	walls   int
	seed    int64

	pChangeDir float64
	pWall      float64
	pMeet      float64
	kTemp      float64
	kStay      float64
	tIdeal     float64
	tHeater    float64
	tCooler    float64
	tEnv       float64
	minWait    int
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "beeclust",
		Short: "BeeClust grid bee-swarm simulation",
		Long: "beeclust simulates swarming bees on a 2D grid of walls, heaters, " +
			"and coolers, deriving per-cell temperature from BFS distance to " +
			"the nearest source and moving bees one cell per tick.",
	}

	pf := root.PersistentFlags()
	pf.IntVar(&cfg.size, "size", 40, "grid size (N x N)")
	pf.IntVar(&cfg.bees, "bees", 60, "initial bee count")
	pf.IntVar(&cfg.heaters, "heaters", 2, "heater cell count")
	pf.IntVar(&cfg.coolers, "coolers", 2, "cooler cell count")
	pf.IntVar(&cfg.walls, "walls", 20, "wall cell count")
	pf.Int64Var(&cfg.seed, "seed", 1, "base random seed")

	pf.Float64Var(&cfg.pChangeDir, "p-changedir", 0.2, "probability of changing direction")
	pf.Float64Var(&cfg.pWall, "p-wall", 0.8, "probability of waiting on a wall hit")
	pf.Float64Var(&cfg.pMeet, "p-meet", 0.8, "probability of waiting on a bee-meet")
	pf.Float64Var(&cfg.kTemp, "k-temp", 0.9, "thermal conductivity coefficient")
	pf.Float64Var(&cfg.kStay, "k-stay", 50, "stay-duration coefficient")
	pf.Float64Var(&cfg.tIdeal, "t-ideal", 35, "bee-ideal temperature")
	pf.Float64Var(&cfg.tHeater, "t-heater", 40, "heater temperature")
	pf.Float64Var(&cfg.tCooler, "t-cooler", 5, "cooler temperature")
	pf.Float64Var(&cfg.tEnv, "t-env", 22, "environment temperature")
	pf.IntVar(&cfg.minWait, "min-wait", 2, "minimum wait duration in ticks")

	root.AddCommand(newRunCmd(cfg))
	root.AddCommand(newGUICmd(cfg))

	return root
}

func (c *config) params() beeclust.Params {
	return beeclust.Params{
		PChangeDir: c.pChangeDir,
		PWall:      c.pWall,
		PMeet:      c.pMeet,
		KTemp:      c.kTemp,
		KStay:      c.kStay,
		TIdeal:     c.tIdeal,
		THeater:    c.tHeater,
		TCooler:    c.tCooler,
		TEnv:       c.tEnv,
		MinWait:    c.minWait,
	}
}
