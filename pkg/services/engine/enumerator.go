package engine

import (
	"github.com/quant-tools/return-atlas/pkg/models/domain"
	"github.com/quant-tools/return-atlas/pkg/services/stats"
)

// EnumerateOutcomes computes the full outcome distribution for a two-outcome
// scenario over the given number of periods: all 2^periods orderings of
// {up, down}, each treated as equally likely. The exact-enumeration mode
// always assumes 50/50 branching; a caller-side probability only affects the
// Monte Carlo simulator.
//
// Sequences are ordered as the Cartesian product with up first and the first
// period varying slowest, e.g. for two periods:
// (up,up), (up,down), (down,up), (down,down).
func (e *Engine) EnumerateOutcomes(upReturn, downReturn float64, periods int) (*domain.OutcomeSet, error) {
	if periods < 1 {
		return nil, &ValidationError{Field: "periods", Reason: "must be at least 1"}
	}
	if periods > e.limits.MaxEnumerationPeriods {
		return nil, &ResourceLimitError{
			Field: "periods",
			Value: periods,
			Limit: e.limits.MaxEnumerationPeriods,
		}
	}

	count := 1 << periods
	paths := make([]domain.PathOutcome, count)
	terminals := make([]float64, count)
	cagrs := make([]float64, count)
	losses := 0

	for mask := 0; mask < count; mask++ {
		sequence := make([]float64, periods)
		for period := 0; period < periods; period++ {
			// The highest bit maps to the first period so that counting
			// masks upward reproduces the product ordering.
			if mask&(1<<(periods-1-period)) == 0 {
				sequence[period] = upReturn
			} else {
				sequence[period] = downReturn
			}
		}

		terminal := TerminalValue(sequence)
		cagr := CAGR(terminal, periods)
		paths[mask] = domain.PathOutcome{
			Sequence:      sequence,
			TerminalValue: terminal,
			CAGR:          cagr,
		}
		terminals[mask] = terminal
		cagrs[mask] = cagr
		if terminal < 1 {
			losses++
		}
	}

	return &domain.OutcomeSet{
		Periods:        periods,
		Paths:          paths,
		ArithmeticMean: 0.5*upReturn + 0.5*downReturn,
		GeometricMean:  stats.Mean(cagrs),
		MedianCAGR:     stats.Median(cagrs),
		MeanTerminal:   stats.Mean(terminals),
		MedianTerminal: stats.Median(terminals),
		ProbLoss:       float64(losses) / float64(count),
		BestCase:       stats.Max(terminals),
		WorstCase:      stats.Min(terminals),
	}, nil
}
