package engine

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/quant-tools/return-atlas/pkg/models/domain"
	"github.com/quant-tools/return-atlas/pkg/services/stats"
)

// pathSampleCap bounds how many full trajectories a result retains for
// visualization: the first trials in generation order, never a random
// subsample. Fixed by contract, independent of the simulation count.
const pathSampleCap = 1000

// Simulate runs an independent Bernoulli-branching Monte Carlo batch and
// aggregates the empirical distribution of terminal wealth and CAGR.
//
// Each trial draws from its own stream seeded with seed+trial, so a fixed
// request seed reproduces the exact same result (including the retained path
// prefix) regardless of how trials are partitioned across workers.
func (e *Engine) Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error) {
	if err := e.validateSimulation(req); err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > req.NumSimulations {
		workers = req.NumSimulations
	}

	n := req.NumSimulations
	finals := make([]float64, n)
	retained := n
	if retained > pathSampleCap {
		retained = pathSampleCap
	}
	sampledPaths := make([][]float64, retained)

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for trial := start; trial < end; trial++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				rng := rand.New(rand.NewSource(seed + int64(trial)))
				value := req.InitialValue
				var path []float64
				if trial < retained {
					path = make([]float64, 0, req.Periods+1)
					path = append(path, value)
				}

				for period := 0; period < req.Periods; period++ {
					if rng.Float64() < req.ProbUp {
						value *= 1 + req.UpReturn
					} else {
						value *= 1 + req.DownReturn
					}
					if path != nil {
						path = append(path, value)
					}
				}

				finals[trial] = value
				if path != nil {
					sampledPaths[trial] = path
				}
			}
		}(start, end)
	}
	wg.Wait()

	// Partial results are meaningless; a cancelled batch returns nothing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cagrs := make([]float64, n)
	losses, doubles := 0, 0
	for i, final := range finals {
		cagrs[i] = CAGR(final/req.InitialValue, req.Periods)
		if final < req.InitialValue {
			losses++
		}
		if final >= 2*req.InitialValue {
			doubles++
		}
	}

	return &domain.SimulationResult{
		FinalValues:        finals,
		CAGRValues:         cagrs,
		SampledPaths:       sampledPaths,
		ArithmeticExpected: req.ProbUp*req.UpReturn + (1-req.ProbUp)*req.DownReturn,
		MeanFinalValue:     stats.Mean(finals),
		MedianFinalValue:   stats.Median(finals),
		StdFinalValue:      stats.PopStdDev(finals),
		MedianCAGR:         stats.Median(cagrs),
		ValuePercentiles:   stats.Percentiles(finals, percentileSet),
		CAGRPercentiles:    stats.Percentiles(cagrs, percentileSet),
		ProbLoss:           float64(losses) / float64(n),
		ProbDouble:         float64(doubles) / float64(n),
	}, nil
}

func (e *Engine) validateSimulation(req domain.SimulationRequest) error {
	if req.InitialValue <= 0 {
		return &ValidationError{Field: "initial_value", Reason: "must be strictly positive"}
	}
	if req.ProbUp <= 0 || req.ProbUp >= 1 {
		return &ValidationError{Field: "prob_up", Reason: "must be strictly between 0 and 1"}
	}
	if req.Periods < 1 {
		return &ValidationError{Field: "periods", Reason: "must be at least 1"}
	}
	if req.NumSimulations < 1 {
		return &ValidationError{Field: "num_simulations", Reason: "must be at least 1"}
	}
	if req.Periods > e.limits.MaxSimulationPeriods {
		return &ResourceLimitError{
			Field: "periods",
			Value: req.Periods,
			Limit: e.limits.MaxSimulationPeriods,
		}
	}
	if req.NumSimulations > e.limits.MaxSimulations {
		return &ResourceLimitError{
			Field: "num_simulations",
			Value: req.NumSimulations,
			Limit: e.limits.MaxSimulations,
		}
	}
	return nil
}
