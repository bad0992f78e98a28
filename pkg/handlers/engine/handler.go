package engine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quant-tools/return-atlas/pkg/models/api"
	"github.com/quant-tools/return-atlas/pkg/models/domain"
	engineservice "github.com/quant-tools/return-atlas/pkg/services/engine"
	"github.com/rs/zerolog"
)

// Service is the engine surface the handler depends on.
type Service interface {
	EnumerateOutcomes(upReturn, downReturn float64, periods int) (*domain.OutcomeSet, error)
	SolveVolatilityScenarios(targetMean float64, ratios []float64) ([]domain.VolatilityScenarioRow, error)
	Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error)
}

type Handler struct {
	engine Service
}

func NewHandler(engine Service) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) EnumerateOutcomes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.OutcomesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	outcomes, err := h.engine.EnumerateOutcomes(req.UpReturn, req.DownReturn, req.Periods)
	if err != nil {
		writeEngineError(w, logger, err)
		return
	}

	paths := make([]api.PathOutcome, len(outcomes.Paths))
	for i, p := range outcomes.Paths {
		paths[i] = api.PathOutcome{
			Sequence:      p.Sequence,
			TerminalValue: p.TerminalValue,
			CAGR:          p.CAGR,
		}
	}
	response := api.OutcomesResponse{
		Periods:        outcomes.Periods,
		Paths:          paths,
		ArithmeticMean: outcomes.ArithmeticMean,
		GeometricMean:  outcomes.GeometricMean,
		MedianCAGR:     outcomes.MedianCAGR,
		MeanTerminal:   outcomes.MeanTerminal,
		MedianTerminal: outcomes.MedianTerminal,
		ProbLoss:       outcomes.ProbLoss,
		BestCase:       outcomes.BestCase,
		WorstCase:      outcomes.WorstCase,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode outcomes")
	}
}

func (h *Handler) SolveScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ScenariosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rows, err := h.engine.SolveVolatilityScenarios(req.TargetMean, req.Ratios)
	if err != nil {
		writeEngineError(w, logger, err)
		return
	}

	response := api.ScenariosResponse{Scenarios: make([]api.VolatilityScenarioRow, len(rows))}
	for i, row := range rows {
		response.Scenarios[i] = api.VolatilityScenarioRow{
			Ratio:                  row.Ratio,
			UpReturn:               row.UpReturn,
			DownReturn:             row.DownReturn,
			ArithmeticMean:         row.ArithmeticMean,
			GeometricMean2Period:   row.GeometricMean2Period,
			MedianReturn2Period:    row.MedianReturn2Period,
			TerminalWealthUpUp:     row.TerminalWealthUpUp,
			TerminalWealthUpDown:   row.TerminalWealthUpDown,
			TerminalWealthDownDown: row.TerminalWealthDownDown,
			VolatilitySpread:       row.VolatilitySpread,
		}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode scenarios")
	}
}

func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.engine.Simulate(ctx, domain.SimulationRequest{
		InitialValue:   req.InitialValue,
		UpReturn:       req.UpReturn,
		DownReturn:     req.DownReturn,
		ProbUp:         req.ProbUp,
		Periods:        req.Periods,
		NumSimulations: req.NumSimulations,
		Seed:           req.Seed,
	})
	if err != nil {
		writeEngineError(w, logger, err)
		return
	}

	response := api.SimulationResponse{
		FinalValues:        result.FinalValues,
		CAGRValues:         result.CAGRValues,
		SampledPaths:       result.SampledPaths,
		ArithmeticExpected: result.ArithmeticExpected,
		MeanFinalValue:     result.MeanFinalValue,
		MedianFinalValue:   result.MedianFinalValue,
		StdFinalValue:      result.StdFinalValue,
		MedianCAGR:         result.MedianCAGR,
		ValuePercentiles:   result.ValuePercentiles,
		CAGRPercentiles:    result.CAGRPercentiles,
		ProbLoss:           result.ProbLoss,
		ProbDouble:         result.ProbDouble,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode simulation result")
	}
}

func writeEngineError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var validationErr *engineservice.ValidationError
	var limitErr *engineservice.ResourceLimitError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, err)
	case errors.As(err, &limitErr):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		logger.Error().Err(err).Msg("engine call failed")
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}
