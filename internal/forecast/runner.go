package forecast

import (
	"math"
	"sort"
)

// DefaultForecastPeriods is how many months ahead a forecast covers when the
// caller does not ask for a specific horizon. MaxForecastPeriods caps the
// horizon at five years.
const (
	DefaultForecastPeriods = 12
	MaxForecastPeriods     = 60
)

// ForecastOutput is the outcome of a forecast request. When the requested
// model is unknown or fails to fit, Values falls back to the series mean and
// Fallback is set; Err carries the fit failure when there was one.
type ForecastOutput struct {
	ModelName string    `json:"modelName"`
	Periods   int       `json:"periods"`
	Values    []float64 `json:"values"`
	Fallback  bool      `json:"fallback,omitempty"`
	Err       string    `json:"error,omitempty"`
}

// Runner evaluates every registered model against a series and produces
// forecasts from a chosen one.
type Runner struct {
	registry *Registry
}

func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// EvaluateAll fits every registered model, drops the ones that fail, and
// returns the survivors ranked by MAPE with their methodological cards
// attached. Evaluations without a finite MAPE sort last.
func (r *Runner) EvaluateAll(series []float64) []Evaluation {
	evals := make([]Evaluation, 0, len(r.registry.All()))
	for _, model := range r.registry.All() {
		eval, err := model.Evaluate(series)
		if err != nil {
			continue
		}
		if info, ok := Describe(eval.Name); ok {
			eval.Description = &info
		}
		evals = append(evals, eval)
	}

	sort.SliceStable(evals, func(i, j int) bool {
		mi, mj := evals[i].Metrics.MAPE, evals[j].Metrics.MAPE
		if math.IsNaN(mi) {
			return false
		}
		if math.IsNaN(mj) {
			return true
		}
		return mi < mj
	})
	for i := range evals {
		evals[i].Rank = i + 1
	}
	return evals
}

// Forecast produces the requested horizon with the named model. It never
// fails: an unknown name or a fit error degrades to a flat mean forecast.
func (r *Runner) Forecast(name string, series []float64, periods int) ForecastOutput {
	if periods <= 0 {
		periods = DefaultForecastPeriods
	}
	out := ForecastOutput{ModelName: name, Periods: periods}

	model := r.registry.Get(name)
	if model == nil {
		out.Values = meanForecast(series, periods)
		out.Fallback = true
		return out
	}

	values, err := model.Forecast(series, periods)
	if err != nil {
		out.Values = meanForecast(series, periods)
		out.Fallback = true
		out.Err = err.Error()
		return out
	}
	out.Values = values
	return out
}

func meanForecast(series []float64, periods int) []float64 {
	m := mean(series)
	out := make([]float64, periods)
	for i := range out {
		out[i] = m
	}
	return out
}
