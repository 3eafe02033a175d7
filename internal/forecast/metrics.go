package forecast

import (
	"encoding/json"
	"math"
)

// Metrics scores in-sample predictions against the actual series. A metric is
// NaN when it cannot be computed (no comparable points, or division by a zero
// actual for MAPE); NaN serializes as JSON null.
type Metrics struct {
	MAE  float64
	MSE  float64
	RMSE float64
	MAPE float64
}

func (m Metrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		MAE  *float64 `json:"mae"`
		MSE  *float64 `json:"mse"`
		RMSE *float64 `json:"rmse"`
		MAPE *float64 `json:"mape"`
	}{Nullable(m.MAE), Nullable(m.MSE), Nullable(m.RMSE), Nullable(m.MAPE)})
}

// CalculateMetrics compares actual and predicted values pairwise, skipping
// positions where either side is NaN, and rounds every score to two decimals.
// MAPE is a percentage; when any compared actual is zero it degrades to NaN
// rather than reporting an infinite error.
func CalculateMetrics(actual, predicted []float64) Metrics {
	n := len(actual)
	if len(predicted) < n {
		n = len(predicted)
	}

	var sumAbs, sumSq, sumPct float64
	var count int
	for i := 0; i < n; i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		diff := actual[i] - predicted[i]
		sumAbs += math.Abs(diff)
		sumSq += diff * diff
		sumPct += math.Abs(diff / actual[i])
		count++
	}

	if count == 0 {
		nan := math.NaN()
		return Metrics{MAE: nan, MSE: nan, RMSE: nan, MAPE: nan}
	}

	mae := sumAbs / float64(count)
	mse := sumSq / float64(count)
	rmse := math.Sqrt(mse)
	mape := sumPct / float64(count) * 100
	if !isFinite(mape) {
		mape = math.NaN()
	}

	return Metrics{
		MAE:  round2(mae),
		MSE:  round2(mse),
		RMSE: round2(rmse),
		MAPE: round2(mape),
	}
}
