package forecast

import "errors"

// LinearRegression fits an ordinary least-squares trend line over the time
// index.
type LinearRegression struct{}

func (m *LinearRegression) Name() string { return ModelLinear }

func (m *LinearRegression) Evaluate(series []float64) (Evaluation, error) {
	slope, intercept, err := trendLine(series)
	if err != nil {
		return Evaluation{}, err
	}
	fitted := make([]float64, len(series))
	for i := range series {
		fitted[i] = intercept + slope*float64(i)
	}
	return Evaluation{
		Name:        m.Name(),
		Predictions: fitted,
		Metrics:     CalculateMetrics(series, fitted),
		Parameters: map[string]any{
			"intercept":   round2(intercept),
			"coefficient": round2(slope),
		},
	}, nil
}

func (m *LinearRegression) Forecast(series []float64, periods int) ([]float64, error) {
	slope, intercept, err := trendLine(series)
	if err != nil {
		return nil, err
	}
	out := make([]float64, periods)
	for h := 0; h < periods; h++ {
		out[h] = intercept + slope*float64(len(series)+h)
	}
	return out, nil
}

func trendLine(series []float64) (slope, intercept float64, err error) {
	n := float64(len(series))
	if len(series) < 2 {
		return 0, 0, errors.New("linear regression: need at least two observations")
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, errors.New("linear regression: degenerate time index")
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}
