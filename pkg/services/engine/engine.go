// Package engine implements the quantitative core: exact outcome enumeration,
// closed-form volatility scenario solving and Monte Carlo path simulation.
// Every operation is a self-contained batch computation with no shared
// mutable state; errors are raised before any work starts.
package engine

import (
	"github.com/quant-tools/return-atlas/pkg/models/domain"
)

// Engine evaluates return scenarios under the configured workload limits.
type Engine struct {
	limits domain.Limits
}

func NewEngine(limits domain.Limits) *Engine {
	return &Engine{limits: limits}
}

// percentileSet is the fixed set of percentiles reported by the simulator.
var percentileSet = []int{1, 5, 10, 25, 50, 75, 90, 95, 99}
