package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/quant-tools/return-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.SimulationRequest {
	return domain.SimulationRequest{
		InitialValue:   10000,
		UpReturn:       0.60,
		DownReturn:     -0.20,
		ProbUp:         0.5,
		Periods:        10,
		NumSimulations: 2000,
		Seed:           7,
	}
}

func TestSimulate_ResultShape(t *testing.T) {
	req := validRequest()
	result, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, result.FinalValues, req.NumSimulations)
	assert.Len(t, result.CAGRValues, req.NumSimulations)
	assert.Len(t, result.SampledPaths, 1000)
	for _, path := range result.SampledPaths {
		require.Len(t, path, req.Periods+1)
		assert.Equal(t, req.InitialValue, path[0])
	}

	for _, p := range []int{1, 5, 10, 25, 50, 75, 90, 95, 99} {
		assert.Contains(t, result.ValuePercentiles, p)
		assert.Contains(t, result.CAGRPercentiles, p)
	}
	assert.InDelta(t, 0.5*0.60+0.5*(-0.20), result.ArithmeticExpected, 1e-12)
	assert.InDelta(t, result.MedianFinalValue, result.ValuePercentiles[50], 1e-9)
}

func TestSimulate_RetainsAllPathsForSmallBatches(t *testing.T) {
	req := validRequest()
	req.NumSimulations = 250
	result, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, result.SampledPaths, 250)
}

func TestSimulate_DeterministicUnderFixedSeed(t *testing.T) {
	req := validRequest()

	first, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)
	second, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.FinalValues, second.FinalValues)
	assert.Equal(t, first.SampledPaths, second.SampledPaths)

	// The trial partitioning must not affect results: each trial owns its
	// stream, so one worker and many workers agree exactly.
	req.Workers = 1
	serial, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)
	req.Workers = 8
	parallel, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, serial.FinalValues, parallel.FinalValues)
	assert.Equal(t, serial.SampledPaths, parallel.SampledPaths)
}

func TestSimulate_ZeroReturnsDegenerate(t *testing.T) {
	req := validRequest()
	req.UpReturn = 0
	req.DownReturn = 0
	req.NumSimulations = 500

	result, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)

	for _, v := range result.FinalValues {
		assert.Equal(t, req.InitialValue, v)
	}
	assert.Zero(t, result.ProbLoss)
	assert.Zero(t, result.ProbDouble)
	for _, v := range result.ValuePercentiles {
		assert.Equal(t, req.InitialValue, v)
	}
	assert.Equal(t, req.InitialValue, result.MeanFinalValue)
	assert.Zero(t, result.StdFinalValue)
}

func TestSimulate_ProbLossConvergesToExactEnumeration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	eng := newTestEngine()
	exact, err := eng.EnumerateOutcomes(1.00, -0.60, 2)
	require.NoError(t, err)

	result, err := eng.Simulate(context.Background(), domain.SimulationRequest{
		InitialValue:   1,
		UpReturn:       1.00,
		DownReturn:     -0.60,
		ProbUp:         0.5,
		Periods:        2,
		NumSimulations: 50000,
		Seed:           42,
	})
	require.NoError(t, err)

	// Binomial sampling error at this N is well inside 1%.
	assert.InDelta(t, exact.ProbLoss, result.ProbLoss, 0.01)
}

func TestSimulate_HonoursSuppliedProbability(t *testing.T) {
	req := validRequest()
	req.ProbUp = 0.9
	req.Periods = 1
	req.NumSimulations = 20000

	result, err := newTestEngine().Simulate(context.Background(), req)
	require.NoError(t, err)

	// With prob_up 0.9 and a single period, roughly 10% of trials take the
	// losing branch.
	assert.InDelta(t, 0.10, result.ProbLoss, 0.01)
	assert.InDelta(t, 0.9*0.60+0.1*(-0.20), result.ArithmeticExpected, 1e-12)
}

func TestSimulate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.SimulationRequest)
		field  string
	}{
		{"zero initial value", func(r *domain.SimulationRequest) { r.InitialValue = 0 }, "initial_value"},
		{"negative initial value", func(r *domain.SimulationRequest) { r.InitialValue = -5 }, "initial_value"},
		{"probability at zero", func(r *domain.SimulationRequest) { r.ProbUp = 0 }, "prob_up"},
		{"probability at one", func(r *domain.SimulationRequest) { r.ProbUp = 1 }, "prob_up"},
		{"zero periods", func(r *domain.SimulationRequest) { r.Periods = 0 }, "periods"},
		{"zero simulations", func(r *domain.SimulationRequest) { r.NumSimulations = 0 }, "num_simulations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := newTestEngine().Simulate(context.Background(), req)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestSimulate_ResourceLimits(t *testing.T) {
	eng := newTestEngine()

	req := validRequest()
	req.Periods = 31
	_, err := eng.Simulate(context.Background(), req)
	var limitErr *ResourceLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "periods", limitErr.Field)

	req = validRequest()
	req.NumSimulations = 50001
	_, err = eng.Simulate(context.Background(), req)
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "num_simulations", limitErr.Field)
}

func TestSimulate_CancelledContextDiscardsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestEngine().Simulate(ctx, validRequest())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
