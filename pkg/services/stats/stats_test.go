package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentileSorted_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.0, PercentileSorted(sorted, 0), 1e-12)
	assert.InDelta(t, 1.75, PercentileSorted(sorted, 25), 1e-12)
	assert.InDelta(t, 2.5, PercentileSorted(sorted, 50), 1e-12)
	assert.InDelta(t, 3.25, PercentileSorted(sorted, 75), 1e-12)
	assert.InDelta(t, 4.0, PercentileSorted(sorted, 100), 1e-12)
}

func TestPercentileSorted_SingleValue(t *testing.T) {
	assert.InDelta(t, 42.0, PercentileSorted([]float64{42}, 75), 1e-12)
}

func TestPercentiles_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	result := Percentiles(values, []int{50, 99})

	assert.Equal(t, []float64{3, 1, 2}, values)
	assert.InDelta(t, 2.0, result[50], 1e-12)
	assert.InDelta(t, 2.98, result[99], 1e-12)
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 3.0, Median([]float64{5, 1, 3}), 1e-12)
	assert.InDelta(t, 2.5, Median([]float64{4, 1, 3, 2}), 1e-12)
}

func TestMeanAndPopStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, Mean(values), 1e-12)
	// Population (divisor n) standard deviation, not the sample estimator.
	assert.InDelta(t, 2.0, PopStdDev(values), 1e-12)
}

func TestMinMax(t *testing.T) {
	values := []float64{0.8, 4.0, 0.16}
	assert.InDelta(t, 0.16, Min(values), 1e-12)
	assert.InDelta(t, 4.0, Max(values), 1e-12)
}
