package engine

import (
	"fmt"
	"math"

	"github.com/quant-tools/return-atlas/pkg/models/domain"
	"github.com/quant-tools/return-atlas/pkg/services/stats"
)

// DefaultVolatilityRatios is the standard ratio sweep used when the caller
// does not supply one.
var DefaultVolatilityRatios = []float64{1.1, 1.5, 2.0, 3.0, 4.0, 5.0}

// SolveVolatilityScenarios derives, for each volatility ratio, the up/down
// return pair that keeps the arithmetic mean at targetMean while satisfying
// (1+up)/(1+down) == ratio, then evaluates the four equally-likely 2-period
// outcomes for the pair. The row order follows the input ratio order.
//
// The two constraints solve linearly: substituting down = 2*mean - up into
// the ratio constraint gives up = (ratio*(1+2*mean) - 1) / (ratio + 1).
func (e *Engine) SolveVolatilityScenarios(targetMean float64, ratios []float64) ([]domain.VolatilityScenarioRow, error) {
	if len(ratios) == 0 {
		ratios = DefaultVolatilityRatios
	}
	for i, ratio := range ratios {
		if ratio <= 0 {
			return nil, &ValidationError{
				Field:  "ratios",
				Reason: fmt.Sprintf("ratio at index %d must be positive, got %g", i, ratio),
			}
		}
	}

	rows := make([]domain.VolatilityScenarioRow, 0, len(ratios))
	for _, ratio := range ratios {
		up := (ratio*(1+2*targetMean) - 1) / (ratio + 1)
		down := 2*targetMean - up

		// up-down and down-up compound to the same wealth; keeping all four
		// preserves the equal 1/4 weighting of the 2-period distribution.
		outcomes := []float64{
			(1 + up) * (1 + up),
			(1 + up) * (1 + down),
			(1 + down) * (1 + up),
			(1 + down) * (1 + down),
		}

		rows = append(rows, domain.VolatilityScenarioRow{
			Ratio:                  ratio,
			UpReturn:               up,
			DownReturn:             down,
			ArithmeticMean:         targetMean,
			GeometricMean2Period:   math.Sqrt(stats.Mean(outcomes)) - 1,
			MedianReturn2Period:    math.Sqrt(stats.Median(outcomes)) - 1,
			TerminalWealthUpUp:     outcomes[0],
			TerminalWealthUpDown:   outcomes[1],
			TerminalWealthDownDown: outcomes[3],
			VolatilitySpread:       math.Abs(up - targetMean),
		})
	}
	return rows, nil
}
