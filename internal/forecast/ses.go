package forecast

import (
	"errors"
	"math"
)

var sesAlphas = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

// SimpleExpSmoothing assigns exponentially decaying weights to past
// observations, searching the smoothing factor for the best in-sample MAPE.
type SimpleExpSmoothing struct{}

func (m *SimpleExpSmoothing) Name() string { return ModelSES }

func (m *SimpleExpSmoothing) Evaluate(series []float64) (Evaluation, error) {
	if len(series) == 0 {
		return Evaluation{}, errors.New("ses: empty series")
	}
	alpha, fitted, _ := m.bestAlpha(series)
	return Evaluation{
		Name:        m.Name(),
		Predictions: fitted,
		Metrics:     CalculateMetrics(series, fitted),
		Parameters:  map[string]any{"alpha": alpha},
	}, nil
}

func (m *SimpleExpSmoothing) Forecast(series []float64, periods int) ([]float64, error) {
	if len(series) == 0 {
		return nil, errors.New("ses: empty series")
	}
	_, _, level := m.bestAlpha(series)
	out := make([]float64, periods)
	for i := range out {
		out[i] = level
	}
	return out, nil
}

func (m *SimpleExpSmoothing) bestAlpha(series []float64) (float64, []float64, float64) {
	bestAlpha := 0.3
	bestFitted, bestLevel := sesFitted(series, bestAlpha)
	bestMAPE := math.Inf(1)

	for _, alpha := range sesAlphas {
		fitted, level := sesFitted(series, alpha)
		metrics := CalculateMetrics(series, fitted)
		if !math.IsNaN(metrics.MAPE) && metrics.MAPE < bestMAPE {
			bestMAPE = metrics.MAPE
			bestAlpha = alpha
			bestFitted = fitted
			bestLevel = level
		}
	}
	return bestAlpha, bestFitted, bestLevel
}

// sesFitted runs the smoothing recursion. The level starts at the first
// observation, each fitted value is the one-step-ahead forecast, and the
// final level is the flat multi-period forecast.
func sesFitted(series []float64, alpha float64) (fitted []float64, level float64) {
	fitted = make([]float64, len(series))
	level = series[0]
	for i, y := range series {
		fitted[i] = level
		level = alpha*y + (1-alpha)*level
	}
	return fitted, level
}
