package engine

import (
	"math"

	"github.com/quant-tools/return-atlas/pkg/services/stats"
)

// Compounding primitives shared by the enumerator, solver and simulator.

// TerminalValue compounds a sequence of per-period fractional returns into a
// terminal wealth multiple.
func TerminalValue(returns []float64) float64 {
	value := 1.0
	for _, r := range returns {
		value *= 1 + r
	}
	return value
}

// CAGR is the constant per-period rate reproducing a terminal multiple over
// the given number of periods.
func CAGR(terminal float64, periods int) float64 {
	return math.Pow(terminal, 1/float64(periods)) - 1
}

// ArithmeticMeanReturn is the simple average of a return series.
func ArithmeticMeanReturn(returns []float64) float64 {
	return stats.Mean(returns)
}

// GeometricMeanReturn is the compound growth rate of a return series.
func GeometricMeanReturn(returns []float64) float64 {
	return CAGR(TerminalValue(returns), len(returns))
}

// MeanLogReturn is the average continuously-compounded return of a series.
func MeanLogReturn(returns []float64) float64 {
	logs := make([]float64, len(returns))
	for i, r := range returns {
		logs[i] = math.Log(1 + r)
	}
	return stats.Mean(logs)
}
