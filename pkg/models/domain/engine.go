package domain

// ReturnScenario describes a two-outcome per-period return model. Returns are
// simple fractional per-period returns; the engine does not require up > down.
type ReturnScenario struct {
	UpReturn   float64
	DownReturn float64
	ProbUp     float64
}

// PathOutcome is one fully-compounded return sequence.
type PathOutcome struct {
	Sequence      []float64
	TerminalValue float64
	CAGR          float64
}

// OutcomeSet holds the exhaustive distribution for one scenario: all
// 2^periods equally-likely paths plus derived aggregates. Branch probability
// is fixed at 50/50 regardless of ReturnScenario.ProbUp; only the Monte Carlo
// simulator honours the supplied probability.
type OutcomeSet struct {
	Periods        int
	Paths          []PathOutcome
	ArithmeticMean float64
	GeometricMean  float64 // mean of per-path CAGRs
	MedianCAGR     float64
	MeanTerminal   float64
	MedianTerminal float64
	ProbLoss       float64
	BestCase       float64
	WorstCase      float64
}

// VolatilityScenarioRow is one solved up/down pair holding the target
// arithmetic mean at a given volatility ratio (1+up)/(1+down).
type VolatilityScenarioRow struct {
	Ratio                  float64
	UpReturn               float64
	DownReturn             float64
	ArithmeticMean         float64
	GeometricMean2Period   float64
	MedianReturn2Period    float64
	TerminalWealthUpUp     float64
	TerminalWealthUpDown   float64
	TerminalWealthDownDown float64
	VolatilitySpread       float64 // |up - mean|, the ± swing around the target
}

// SimulationRequest are the inputs for one Monte Carlo batch.
// Seed 0 means a time-derived seed; any other value gives a fully
// deterministic run. Workers 0 means GOMAXPROCS.
type SimulationRequest struct {
	InitialValue   float64
	UpReturn       float64
	DownReturn     float64
	ProbUp         float64
	Periods        int
	NumSimulations int
	Seed           int64
	Workers        int
}

// SimulationResult is the empirical distribution of one Monte Carlo batch.
// SampledPaths keeps the first trajectories in generation order (fixed cap),
// each of length Periods+1 starting at the initial value.
type SimulationResult struct {
	FinalValues        []float64
	CAGRValues         []float64
	SampledPaths       [][]float64
	ArithmeticExpected float64
	MeanFinalValue     float64
	MedianFinalValue   float64
	StdFinalValue      float64
	MedianCAGR         float64
	ValuePercentiles   map[int]float64
	CAGRPercentiles    map[int]float64
	ProbLoss           float64
	ProbDouble         float64
}
