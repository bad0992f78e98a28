package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/quant-tools/return-atlas/pkg/models/domain"
)

// Reporter renders engine results as fixed-width text tables.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.2f%%", v*100)
		},
		"num": func(v float64) string {
			return fmt.Sprintf("%.4f", v)
		},
		"seq": func(values []float64) string {
			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = fmt.Sprintf("%+.0f%%", v*100)
			}
			return strings.Join(parts, ", ")
		},
		"separator": func(width int) string {
			return strings.Repeat("-", width)
		},
	}
}

func (r *Reporter) render(name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(r.funcMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	return tmpl.Execute(r.writer, data)
}

func (r *Reporter) HandleOutcomes(set *domain.OutcomeSet) error {
	tmpl := `
Exact outcome distribution ({{.Periods}} periods, {{len .Paths}} equally-likely paths)

Arithmetic Mean:   {{pct .ArithmeticMean}}
Geometric Mean:    {{pct .GeometricMean}}
Median CAGR:       {{pct .MedianCAGR}}
Mean Terminal:     {{num .MeanTerminal}}x
Median Terminal:   {{num .MedianTerminal}}x
Prob. of Loss:     {{pct .ProbLoss}}
Best / Worst Case: {{num .BestCase}}x / {{num .WorstCase}}x

{{separator 72}}
{{range .Paths}}{{printf "%-44s %12s %12s" (seq .Sequence) (num .TerminalValue) (pct .CAGR)}}
{{end}}`
	return r.render("outcomes", tmpl, set)
}

func (r *Reporter) HandleScenarios(rows []domain.VolatilityScenarioRow) error {
	if len(rows) == 0 {
		return nil
	}
	tmpl := `
Volatility scenarios (constant arithmetic mean {{pct (index .Rows 0).ArithmeticMean}})

{{separator 96}}
{{printf "%8s %10s %10s %10s %10s %10s %10s %10s" "Ratio" "Up" "Down" "Geo(2p)" "Med(2p)" "UpUp" "UpDown" "DownDown"}}
{{separator 96}}
{{range .Rows}}{{printf "%8.2f %10s %10s %10s %10s %10s %10s %10s" .Ratio (pct .UpReturn) (pct .DownReturn) (pct .GeometricMean2Period) (pct .MedianReturn2Period) (num .TerminalWealthUpUp) (num .TerminalWealthUpDown) (num .TerminalWealthDownDown)}}
{{end}}`
	return r.render("scenarios", tmpl, struct {
		Rows []domain.VolatilityScenarioRow
	}{Rows: rows})
}

type simulationReport struct {
	Request     domain.SimulationRequest
	Result      *domain.SimulationResult
	Percentiles []percentileRow
}

type percentileRow struct {
	Percentile int
	FinalValue float64
	CAGR       float64
	Multiple   float64
}

func (r *Reporter) HandleSimulation(req domain.SimulationRequest, res *domain.SimulationResult) error {
	ps := make([]int, 0, len(res.ValuePercentiles))
	for p := range res.ValuePercentiles {
		ps = append(ps, p)
	}
	sort.Ints(ps)

	rows := make([]percentileRow, len(ps))
	for i, p := range ps {
		rows[i] = percentileRow{
			Percentile: p,
			FinalValue: res.ValuePercentiles[p],
			CAGR:       res.CAGRPercentiles[p],
			Multiple:   res.ValuePercentiles[p] / req.InitialValue,
		}
	}

	tmpl := `
Monte Carlo simulation ({{.Request.NumSimulations}} trials, {{.Request.Periods}} periods)

Arithmetic Expected: {{pct .Result.ArithmeticExpected}}
Mean Final Value:    {{num .Result.MeanFinalValue}}
Median Final Value:  {{num .Result.MedianFinalValue}}
Std Final Value:     {{num .Result.StdFinalValue}}
Median CAGR:         {{pct .Result.MedianCAGR}}
Prob. of Loss:       {{pct .Result.ProbLoss}}
Prob. of Doubling:   {{pct .Result.ProbDouble}}

{{separator 56}}
{{printf "%11s %15s %12s %10s" "Percentile" "Final Value" "CAGR" "Multiple"}}
{{separator 56}}
{{range .Percentiles}}{{printf "%10d%% %15s %12s %9.2fx" .Percentile (num .FinalValue) (pct .CAGR) .Multiple}}
{{end}}`
	return r.render("simulation", tmpl, simulationReport{
		Request:     req,
		Result:      res,
		Percentiles: rows,
	})
}
