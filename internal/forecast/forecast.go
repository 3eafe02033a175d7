// Package forecast implements the demand forecasting model suite: in-sample
// evaluation with MAPE/MAE/MSE/RMSE scoring, ranked model comparison, and
// multi-period extrapolation. All models are pure computations over the
// demand series; persistence and scheduling live with the caller.
package forecast

import (
	"encoding/json"
	"math"
)

// Model evaluates a demand series in-sample and extrapolates future periods.
// Evaluate returns an error when the series cannot support the model (for
// example too short for a seasonal fit); the runner skips such models instead
// of failing the whole pass.
type Model interface {
	Name() string
	Evaluate(series []float64) (Evaluation, error)
	Forecast(series []float64, periods int) ([]float64, error)
}

// Evaluation is one model's in-sample result. Predictions align with the
// input series; leading entries may be NaN where the model has no lookback
// yet. NaN values serialize as JSON null.
type Evaluation struct {
	Rank        int
	Name        string
	Predictions []float64
	Metrics     Metrics
	Parameters  map[string]any
	Description *ModelInfo
}

// MarshalJSON renders NaN predictions as null so results survive JSON
// round-trips.
func (e Evaluation) MarshalJSON() ([]byte, error) {
	preds := make([]*float64, len(e.Predictions))
	for i := range e.Predictions {
		preds[i] = Nullable(e.Predictions[i])
	}
	return json.Marshal(struct {
		Rank        int            `json:"rank,omitempty"`
		Name        string         `json:"name"`
		Metrics     Metrics        `json:"metrics"`
		Parameters  map[string]any `json:"parameters"`
		Predictions []*float64     `json:"predictions"`
		Description *ModelInfo     `json:"description,omitempty"`
	}{e.Rank, e.Name, e.Metrics, e.Parameters, preds, e.Description})
}

// PredictionsJSON renders just the prediction series as a JSON array, NaN as
// null, for persisting alongside the scored metrics.
func (e Evaluation) PredictionsJSON() (json.RawMessage, error) {
	preds := make([]*float64, len(e.Predictions))
	for i := range e.Predictions {
		preds[i] = Nullable(e.Predictions[i])
	}
	return json.Marshal(preds)
}

// Nullable returns a pointer to f, or nil when f is NaN or infinite. Metric
// persistence and JSON marshaling use it so unscorable values degrade to
// null instead of poisoning the payload.
func Nullable(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	v := f
	return &v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Registry maps model display names to Model implementations, preserving
// registration order for deterministic comparison runs.
type Registry struct {
	models map[string]Model
	order  []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

// Register adds a model to the registry.
func (r *Registry) Register(m Model) {
	if _, exists := r.models[m.Name()]; !exists {
		r.order = append(r.order, m.Name())
	}
	r.models[m.Name()] = m
}

// Get returns the model for a given name, or nil if not registered.
func (r *Registry) Get(name string) Model {
	return r.models[name]
}

// All returns all registered models in registration order.
func (r *Registry) All() []Model {
	out := make([]Model, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.models[name])
	}
	return out
}

// DefaultRegistry registers the full model suite in comparison order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&SimpleMovingAverage{})
	r.Register(&SimpleExpSmoothing{})
	r.Register(&HoltWinters{SeasonalPeriods: 12})
	r.Register(&ARIMA{})
	r.Register(&LinearRegression{})
	return r
}
