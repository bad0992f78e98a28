package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveVolatilityScenarios_ConcreteRatio(t *testing.T) {
	rows, err := newTestEngine().SolveVolatilityScenarios(0.20, []float64{1.1})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	expectedUp := (1.1*(1+2*0.20) - 1) / (1.1 + 1)
	assert.InDelta(t, expectedUp, rows[0].UpReturn, 1e-9)
	assert.InDelta(t, 2*0.20-expectedUp, rows[0].DownReturn, 1e-9)
}

func TestSolveVolatilityScenarios_ConstraintsHold(t *testing.T) {
	targetMean := 0.20
	ratios := []float64{1.1, 1.5, 2.0, 3.0, 4.0, 5.0}

	rows, err := newTestEngine().SolveVolatilityScenarios(targetMean, ratios)
	require.NoError(t, err)
	require.Len(t, rows, len(ratios))

	for i, row := range rows {
		// Order-preserving w.r.t. the input ratios.
		assert.Equal(t, ratios[i], row.Ratio)
		assert.InDelta(t, targetMean, 0.5*row.UpReturn+0.5*row.DownReturn, 1e-9)
		assert.InDelta(t, row.Ratio, (1+row.UpReturn)/(1+row.DownReturn), 1e-9)
		assert.InDelta(t, targetMean, row.ArithmeticMean, 1e-12)
	}
}

func TestSolveVolatilityScenarios_GeometricDragGrowsWithRatio(t *testing.T) {
	rows, err := newTestEngine().SolveVolatilityScenarios(0.20, nil)
	require.NoError(t, err)
	require.Len(t, rows, len(DefaultVolatilityRatios))

	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i].GeometricMean2Period, rows[i-1].GeometricMean2Period)
		assert.Greater(t, rows[i].VolatilitySpread, rows[i-1].VolatilitySpread)
	}
}

func TestSolveVolatilityScenarios_UnitRatioDegenerate(t *testing.T) {
	rows, err := newTestEngine().SolveVolatilityScenarios(0.20, []float64{1.0})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Zero volatility: both branches collapse onto the mean.
	assert.InDelta(t, 0.20, rows[0].UpReturn, 1e-12)
	assert.InDelta(t, 0.20, rows[0].DownReturn, 1e-12)
	assert.InDelta(t, 0.20, rows[0].GeometricMean2Period, 1e-12)
	assert.InDelta(t, 0, rows[0].VolatilitySpread, 1e-12)
}

func TestSolveVolatilityScenarios_TwoPeriodWealth(t *testing.T) {
	rows, err := newTestEngine().SolveVolatilityScenarios(0.20, []float64{2.0})
	require.NoError(t, err)
	row := rows[0]

	assert.InDelta(t, (1+row.UpReturn)*(1+row.UpReturn), row.TerminalWealthUpUp, 1e-12)
	assert.InDelta(t, (1+row.UpReturn)*(1+row.DownReturn), row.TerminalWealthUpDown, 1e-12)
	assert.InDelta(t, (1+row.DownReturn)*(1+row.DownReturn), row.TerminalWealthDownDown, 1e-12)
	// The median of {uu, ud, du, dd} is the mixed outcome since ud == du.
	assert.InDelta(t, row.TerminalWealthUpDown, (1+row.MedianReturn2Period)*(1+row.MedianReturn2Period), 1e-9)
}

func TestSolveVolatilityScenarios_RejectsNonPositiveRatio(t *testing.T) {
	for _, ratio := range []float64{0, -1.5} {
		_, err := newTestEngine().SolveVolatilityScenarios(0.20, []float64{2.0, ratio})
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "ratios", validationErr.Field)
	}
}
