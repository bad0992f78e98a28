package commands

import (
	"github.com/quant-tools/return-atlas/pkg/runtime/terminal/export"
	"github.com/quant-tools/return-atlas/pkg/services/engine"

	"github.com/spf13/cobra"
)

type ScenariosCmd struct {
	targetMean float64
	ratios     []float64
	engine     *engine.Engine
	reporter   *export.Reporter
}

func NewScenariosCmd(eng *engine.Engine, reporter *export.Reporter) *cobra.Command {
	sc := &ScenariosCmd{engine: eng, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Solve up/down return pairs holding a target arithmetic mean across volatility ratios",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.targetMean, "mean", 0.20, "Target arithmetic mean return")
	cmd.Flags().Float64SliceVar(&sc.ratios, "ratios", nil,
		"Volatility ratios (1+up)/(1+down) to solve for; defaults to the standard sweep")

	return cmd
}

func (sc *ScenariosCmd) run(cmd *cobra.Command, args []string) error {
	rows, err := sc.engine.SolveVolatilityScenarios(sc.targetMean, sc.ratios)
	if err != nil {
		return err
	}
	return sc.reporter.HandleScenarios(rows)
}
