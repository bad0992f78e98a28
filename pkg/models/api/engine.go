package api

type OutcomesRequest struct {
	UpReturn   float64 `json:"up_return"`
	DownReturn float64 `json:"down_return"`
	Periods    int     `json:"periods"`
}

type PathOutcome struct {
	Sequence      []float64 `json:"sequence"`
	TerminalValue float64   `json:"terminal_value"`
	CAGR          float64   `json:"cagr"`
}

type OutcomesResponse struct {
	Periods        int           `json:"periods"`
	Paths          []PathOutcome `json:"paths"`
	ArithmeticMean float64       `json:"arithmetic_mean"`
	GeometricMean  float64       `json:"geometric_mean"`
	MedianCAGR     float64       `json:"median_cagr"`
	MeanTerminal   float64       `json:"mean_terminal"`
	MedianTerminal float64       `json:"median_terminal"`
	ProbLoss       float64       `json:"prob_loss"`
	BestCase       float64       `json:"best_case"`
	WorstCase      float64       `json:"worst_case"`
}

type ScenariosRequest struct {
	TargetMean float64   `json:"target_mean"`
	Ratios     []float64 `json:"ratios,omitempty"`
}

type VolatilityScenarioRow struct {
	Ratio                  float64 `json:"ratio"`
	UpReturn               float64 `json:"up_return"`
	DownReturn             float64 `json:"down_return"`
	ArithmeticMean         float64 `json:"arithmetic_mean"`
	GeometricMean2Period   float64 `json:"geometric_mean_2period"`
	MedianReturn2Period    float64 `json:"median_return_2period"`
	TerminalWealthUpUp     float64 `json:"terminal_wealth_up_up"`
	TerminalWealthUpDown   float64 `json:"terminal_wealth_up_down"`
	TerminalWealthDownDown float64 `json:"terminal_wealth_down_down"`
	VolatilitySpread       float64 `json:"volatility_spread"`
}

type ScenariosResponse struct {
	Scenarios []VolatilityScenarioRow `json:"scenarios"`
}

type SimulationRequest struct {
	InitialValue   float64 `json:"initial_value"`
	UpReturn       float64 `json:"up_return"`
	DownReturn     float64 `json:"down_return"`
	ProbUp         float64 `json:"prob_up"`
	Periods        int     `json:"periods"`
	NumSimulations int     `json:"num_simulations"`
	Seed           int64   `json:"seed,omitempty"`
}

type SimulationResponse struct {
	FinalValues        []float64       `json:"final_values"`
	CAGRValues         []float64       `json:"cagr_values"`
	SampledPaths       [][]float64     `json:"sampled_paths"`
	ArithmeticExpected float64         `json:"arithmetic_expected"`
	MeanFinalValue     float64         `json:"mean_final_value"`
	MedianFinalValue   float64         `json:"median_final_value"`
	StdFinalValue      float64         `json:"std_final_value"`
	MedianCAGR         float64         `json:"median_cagr"`
	ValuePercentiles   map[int]float64 `json:"value_percentiles"`
	CAGRPercentiles    map[int]float64 `json:"cagr_percentiles"`
	ProbLoss           float64         `json:"prob_loss"`
	ProbDouble         float64         `json:"prob_double"`
}

type Error struct {
	Error string `json:"error"`
}
