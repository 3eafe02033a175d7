package forecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandcast/internal/forecast"
)

// seasonalSeries builds a smooth demand curve with a linear trend and a
// twelve-month seasonal swing.
func seasonalSeries(n int) []float64 {
	pattern := []float64{20, 10, -5, -15, -20, -10, 5, 15, 25, 10, -10, -25}
	series := make([]float64, n)
	for i := range series {
		series[i] = 500 + 2*float64(i) + pattern[i%12]
	}
	return series
}

func linearSeries(n int, intercept, slope float64) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = intercept + slope*float64(i)
	}
	return series
}

func constantSeries(n int, value float64) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = value
	}
	return series
}

func TestSimpleMovingAverage_EvaluateConstantSeries(t *testing.T) {
	model := &forecast.SimpleMovingAverage{}

	eval, err := model.Evaluate(constantSeries(24, 100))
	require.NoError(t, err)

	assert.Equal(t, forecast.ModelSMA, eval.Name)
	assert.Len(t, eval.Predictions, 24)
	assert.Equal(t, 3, eval.Parameters["window"], "first window with a perfect score should win")
	assert.Equal(t, 0.0, eval.Metrics.MAPE)
	assert.True(t, math.IsNaN(eval.Predictions[0]), "no lookback before the window fills")
	assert.Equal(t, 100.0, eval.Predictions[3])
}

func TestSimpleMovingAverage_ForecastIsFlat(t *testing.T) {
	model := &forecast.SimpleMovingAverage{}

	values, err := model.Forecast(constantSeries(24, 100), 6)
	require.NoError(t, err)

	require.Len(t, values, 6)
	for _, v := range values {
		assert.Equal(t, 100.0, v)
	}
}

func TestSimpleExpSmoothing_EvaluateConstantSeries(t *testing.T) {
	model := &forecast.SimpleExpSmoothing{}

	eval, err := model.Evaluate(constantSeries(12, 250))
	require.NoError(t, err)

	assert.Equal(t, forecast.ModelSES, eval.Name)
	assert.Equal(t, 0.0, eval.Metrics.MAPE)
	assert.Equal(t, 0.1, eval.Parameters["alpha"], "ties keep the first alpha tried")
}

func TestSimpleExpSmoothing_ForecastIsFlatAtFinalLevel(t *testing.T) {
	model := &forecast.SimpleExpSmoothing{}

	values, err := model.Forecast(constantSeries(12, 250), 4)
	require.NoError(t, err)

	require.Len(t, values, 4)
	for _, v := range values {
		assert.Equal(t, 250.0, v)
	}
}

func TestSimpleExpSmoothing_EmptySeries(t *testing.T) {
	model := &forecast.SimpleExpSmoothing{}

	_, err := model.Evaluate(nil)
	assert.Error(t, err)

	_, err = model.Forecast(nil, 12)
	assert.Error(t, err)
}

func TestHoltWinters_RequiresTwoSeasonalCycles(t *testing.T) {
	model := &forecast.HoltWinters{SeasonalPeriods: 12}

	_, err := model.Evaluate(seasonalSeries(18))
	assert.Error(t, err)

	_, err = model.Forecast(seasonalSeries(18), 12)
	assert.Error(t, err)
}

func TestHoltWinters_FitsSeasonalSeries(t *testing.T) {
	model := &forecast.HoltWinters{SeasonalPeriods: 12}

	eval, err := model.Evaluate(seasonalSeries(36))
	require.NoError(t, err)

	assert.Equal(t, forecast.ModelHoltWinters, eval.Name)
	assert.Len(t, eval.Predictions, 36)
	assert.Contains(t, []any{"add", "mul"}, eval.Parameters["seasonal"])
	assert.Equal(t, 12, eval.Parameters["seasonal_periods"])
	assert.Less(t, eval.Metrics.MAPE, 25.0)
}

func TestHoltWinters_ForecastContinuesSeason(t *testing.T) {
	model := &forecast.HoltWinters{SeasonalPeriods: 12}

	values, err := model.Forecast(seasonalSeries(36), 12)
	require.NoError(t, err)

	require.Len(t, values, 12)
	for _, v := range values {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
}

func TestARIMA_EvaluatePicksAnOrder(t *testing.T) {
	series := make([]float64, 24)
	for i := range series {
		series[i] = 100 + 2*float64(i) + 5*math.Sin(float64(i))
	}
	model := &forecast.ARIMA{}

	eval, err := model.Evaluate(series)
	require.NoError(t, err)

	assert.Equal(t, forecast.ModelARIMA, eval.Name)
	order, ok := eval.Parameters["order"].([]int)
	require.True(t, ok)
	assert.Len(t, order, 3)
	assert.False(t, math.IsNaN(eval.Metrics.MAPE))
	assert.True(t, math.IsNaN(eval.Predictions[0]), "warm-up positions stay NaN")
}

func TestARIMA_ForecastIsFinite(t *testing.T) {
	series := make([]float64, 24)
	for i := range series {
		series[i] = 100 + 2*float64(i) + 5*math.Sin(float64(i))
	}
	model := &forecast.ARIMA{}

	values, err := model.Forecast(series, 12)
	require.NoError(t, err)

	require.Len(t, values, 12)
	for _, v := range values {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
}

func TestARIMA_TooShortSeries(t *testing.T) {
	model := &forecast.ARIMA{}

	_, err := model.Evaluate([]float64{100})
	assert.Error(t, err)
}

func TestLinearRegression_ExactLine(t *testing.T) {
	model := &forecast.LinearRegression{}

	eval, err := model.Evaluate(linearSeries(12, 10, 2))
	require.NoError(t, err)

	assert.Equal(t, forecast.ModelLinear, eval.Name)
	assert.InDelta(t, 10.0, eval.Parameters["intercept"], 1e-9)
	assert.InDelta(t, 2.0, eval.Parameters["coefficient"], 1e-9)
	assert.Equal(t, 0.0, eval.Metrics.MAPE)
}

func TestLinearRegression_ForecastExtendsTrend(t *testing.T) {
	model := &forecast.LinearRegression{}

	values, err := model.Forecast(linearSeries(12, 10, 2), 3)
	require.NoError(t, err)

	require.Len(t, values, 3)
	assert.InDelta(t, 34.0, values[0], 1e-9)
	assert.InDelta(t, 36.0, values[1], 1e-9)
	assert.InDelta(t, 38.0, values[2], 1e-9)
}

func TestLinearRegression_TooShortSeries(t *testing.T) {
	model := &forecast.LinearRegression{}

	_, err := model.Evaluate([]float64{42})
	assert.Error(t, err)
}
