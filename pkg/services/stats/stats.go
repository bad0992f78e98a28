// Package stats provides the small set of descriptive statistics the engine
// needs. Mean, population standard deviation and min/max come from gonum;
// percentiles use a local linear-interpolation implementation because gonum's
// Quantile cumulant kinds follow a different convention than the one the
// engine contract requires (interpolation between order statistics at
// rank h = (n-1)*p/100).
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// PopStdDev is the population standard deviation (divisor n, not n-1).
func PopStdDev(values []float64) float64 {
	return stat.PopStdDev(values, nil)
}

func Min(values []float64) float64 {
	return floats.Min(values)
}

func Max(values []float64) float64 {
	return floats.Max(values)
}

// PercentileSorted interpolates the p-th percentile (0..100) of an
// ascending-sorted slice between adjacent order statistics.
func PercentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := (float64(n-1) * p) / 100
	lo := int(h)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Percentiles computes the given percentiles of values without mutating the
// input.
func Percentiles(values []float64, ps []int) map[int]float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	result := make(map[int]float64, len(ps))
	for _, p := range ps {
		result[p] = PercentileSorted(sorted, float64(p))
	}
	return result
}

// Median is the 50th percentile; for an even count it is the mean of the two
// middle order statistics.
func Median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return PercentileSorted(sorted, 50)
}
