package commands

import (
	"context"
	"time"

	"github.com/quant-tools/return-atlas/pkg/models/domain"
	"github.com/quant-tools/return-atlas/pkg/runtime/terminal/export"
	"github.com/quant-tools/return-atlas/pkg/services/engine"

	"github.com/spf13/cobra"
)

type SimulateCmd struct {
	initialValue float64
	upReturn     float64
	downReturn   float64
	probUp       float64
	periods      int
	simulations  int
	seed         int64
	timeout      time.Duration
	engine       *engine.Engine
	reporter     *export.Reporter
}

func NewSimulateCmd(eng *engine.Engine, reporter *export.Reporter) *cobra.Command {
	sc := &SimulateCmd{engine: eng, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo batch of Bernoulli-branching investment paths",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.initialValue, "initial", 10000, "Initial investment value")
	cmd.Flags().Float64Var(&sc.upReturn, "up", 0.60, "Up scenario per-period return")
	cmd.Flags().Float64Var(&sc.downReturn, "down", -0.20, "Down scenario per-period return")
	cmd.Flags().Float64Var(&sc.probUp, "prob-up", 0.5, "Probability of the up scenario each period")
	cmd.Flags().IntVar(&sc.periods, "periods", 10, "Number of periods per trial")
	cmd.Flags().IntVar(&sc.simulations, "simulations", 10000, "Number of independent trials")
	cmd.Flags().Int64Var(&sc.seed, "seed", 0, "Random seed (0 for a time-derived seed)")
	cmd.Flags().DurationVar(&sc.timeout, "timeout", 60*time.Second, "Overall batch timeout")

	return cmd
}

func (sc *SimulateCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), sc.timeout)
	defer cancel()

	req := domain.SimulationRequest{
		InitialValue:   sc.initialValue,
		UpReturn:       sc.upReturn,
		DownReturn:     sc.downReturn,
		ProbUp:         sc.probUp,
		Periods:        sc.periods,
		NumSimulations: sc.simulations,
		Seed:           sc.seed,
	}
	result, err := sc.engine.Simulate(ctx, req)
	if err != nil {
		return err
	}
	return sc.reporter.HandleSimulation(req, result)
}
