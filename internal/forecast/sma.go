package forecast

import "math"

const (
	smaWindowMin     = 3
	smaWindowMax     = 12
	smaDefaultWindow = 3
)

// SimpleMovingAverage predicts each point as the mean of the previous n
// observations, searching the window size 3-12 for the best in-sample MAPE.
type SimpleMovingAverage struct{}

func (m *SimpleMovingAverage) Name() string { return ModelSMA }

func (m *SimpleMovingAverage) Evaluate(series []float64) (Evaluation, error) {
	window, predictions := m.bestWindow(series)
	return Evaluation{
		Name:        m.Name(),
		Predictions: predictions,
		Metrics:     CalculateMetrics(series, predictions),
		Parameters:  map[string]any{"window": window},
	}, nil
}

func (m *SimpleMovingAverage) Forecast(series []float64, periods int) ([]float64, error) {
	window, _ := m.bestWindow(series)
	if window > len(series) {
		window = len(series)
	}
	level := mean(series[len(series)-window:])
	out := make([]float64, periods)
	for i := range out {
		out[i] = level
	}
	return out, nil
}

// bestWindow searches window sizes by in-sample MAPE, falling back to the
// default window when no size produces a finite score.
func (m *SimpleMovingAverage) bestWindow(series []float64) (int, []float64) {
	bestWindow := smaDefaultWindow
	bestPredictions := smaPredictions(series, smaDefaultWindow)
	bestMAPE := math.Inf(1)

	for w := smaWindowMin; w <= smaWindowMax; w++ {
		predictions := smaPredictions(series, w)
		metrics := CalculateMetrics(series, predictions)
		if !math.IsNaN(metrics.MAPE) && metrics.MAPE < bestMAPE {
			bestMAPE = metrics.MAPE
			bestWindow = w
			bestPredictions = predictions
		}
	}
	return bestWindow, bestPredictions
}

func smaPredictions(series []float64, window int) []float64 {
	predictions := make([]float64, len(series))
	for i := range series {
		if i < window {
			predictions[i] = math.NaN()
			continue
		}
		predictions[i] = mean(series[i-window : i])
	}
	return predictions
}
