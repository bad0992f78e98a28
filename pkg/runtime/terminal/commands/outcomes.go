package commands

import (
	"github.com/quant-tools/return-atlas/pkg/runtime/terminal/export"
	"github.com/quant-tools/return-atlas/pkg/services/engine"

	"github.com/spf13/cobra"
)

type OutcomesCmd struct {
	upReturn   float64
	downReturn float64
	periods    int
	engine     *engine.Engine
	reporter   *export.Reporter
}

func NewOutcomesCmd(eng *engine.Engine, reporter *export.Reporter) *cobra.Command {
	oc := &OutcomesCmd{engine: eng, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "outcomes",
		Short: "Enumerate all equally-likely return paths for a two-outcome scenario",
		RunE:  oc.run,
	}

	cmd.Flags().Float64Var(&oc.upReturn, "up", 1.00, "Up scenario per-period return (e.g. 1.0 for +100%)")
	cmd.Flags().Float64Var(&oc.downReturn, "down", -0.60, "Down scenario per-period return (e.g. -0.6 for -60%)")
	cmd.Flags().IntVar(&oc.periods, "periods", 2, "Number of periods to enumerate")

	return cmd
}

func (oc *OutcomesCmd) run(cmd *cobra.Command, args []string) error {
	outcomes, err := oc.engine.EnumerateOutcomes(oc.upReturn, oc.downReturn, oc.periods)
	if err != nil {
		return err
	}
	return oc.reporter.HandleOutcomes(outcomes)
}
