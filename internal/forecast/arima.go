package forecast

import (
	"errors"
	"fmt"
	"math"
)

// arimaOrders is the candidate (p, d, q) grid tried in sequence; the order
// with the best in-sample MAPE wins.
var arimaOrders = [][3]int{
	{1, 1, 1},
	{0, 1, 1},
	{1, 1, 0},
	{2, 1, 2},
	{0, 1, 0},
	{1, 0, 1},
}

// ARIMA fits autoregressive integrated moving-average models using the
// Hannan-Rissanen two-stage regression: a long autoregression first proxies
// the innovations, then the AR and MA coefficients are estimated jointly by
// least squares on the differenced series.
type ARIMA struct{}

func (m *ARIMA) Name() string { return ModelARIMA }

func (m *ARIMA) Evaluate(series []float64) (Evaluation, error) {
	best, err := m.bestFit(series)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		Name:        m.Name(),
		Predictions: best.predictions,
		Metrics:     best.metrics,
		Parameters: map[string]any{
			"order": []int{best.p, best.d, best.q},
		},
	}, nil
}

func (m *ARIMA) Forecast(series []float64, periods int) ([]float64, error) {
	best, err := m.bestFit(series)
	if err != nil {
		return nil, err
	}
	return best.forecast(series, periods), nil
}

func (m *ARIMA) bestFit(series []float64) (*arimaFit, error) {
	var best *arimaFit
	bestMAPE := math.Inf(1)

	for _, order := range arimaOrders {
		fit, err := fitARIMA(series, order[0], order[1], order[2])
		if err != nil {
			continue
		}
		if !math.IsNaN(fit.metrics.MAPE) && fit.metrics.MAPE < bestMAPE {
			bestMAPE = fit.metrics.MAPE
			best = fit
		}
	}

	if best == nil {
		return nil, errors.New("arima: no candidate order could be fitted")
	}
	return best, nil
}

type arimaFit struct {
	p, d, q     int
	intercept   float64
	phi         []float64
	theta       []float64
	diffed      []float64
	residuals   []float64
	predictions []float64
	metrics     Metrics
}

func fitARIMA(series []float64, p, d, q int) (*arimaFit, error) {
	if d > 1 {
		return nil, fmt.Errorf("arima: differencing order %d not supported", d)
	}
	z := difference(series, d)
	warm := p
	if q > warm {
		warm = q
	}
	if len(z) <= warm+p+q {
		return nil, errors.New("arima: series too short for order")
	}

	fit := &arimaFit{p: p, d: d, q: q, diffed: z}

	if p+q > 0 {
		proxies, err := innovationProxies(z, p, q, d == 0)
		if err != nil {
			return nil, err
		}
		if err := fit.estimate(z, proxies, warm); err != nil {
			return nil, err
		}
	} else if d == 0 {
		fit.intercept = mean(z)
	}

	fit.fill(series, warm)
	return fit, nil
}

// innovationProxies runs the long autoregression and returns its residuals,
// zeroed where the regression cannot reach.
func innovationProxies(z []float64, p, q int, withIntercept bool) ([]float64, error) {
	if q == 0 {
		return make([]float64, len(z)), nil
	}
	k := p + q + 1
	if k < 4 {
		k = 4
	}
	unknowns := k
	if withIntercept {
		unknowns++
	}
	for k > 1 && len(z)-k < unknowns {
		k--
		unknowns = k
		if withIntercept {
			unknowns++
		}
	}
	if len(z)-k < unknowns {
		return nil, errors.New("arima: series too short for long autoregression")
	}

	rows := len(z) - k
	x := make([][]float64, rows)
	y := make([]float64, rows)
	for t := k; t < len(z); t++ {
		row := make([]float64, 0, unknowns)
		if withIntercept {
			row = append(row, 1)
		}
		for i := 1; i <= k; i++ {
			row = append(row, z[t-i])
		}
		x[t-k] = row
		y[t-k] = z[t]
	}
	beta, err := solveLeastSquares(x, y)
	if err != nil {
		return nil, err
	}

	proxies := make([]float64, len(z))
	for t := k; t < len(z); t++ {
		pred := 0.0
		j := 0
		if withIntercept {
			pred = beta[0]
			j = 1
		}
		for i := 1; i <= k; i++ {
			pred += beta[j] * z[t-i]
			j++
		}
		proxies[t] = z[t] - pred
	}
	return proxies, nil
}

// estimate regresses z on its own lags and the innovation proxies.
func (f *arimaFit) estimate(z, proxies []float64, warm int) error {
	withIntercept := f.d == 0
	unknowns := f.p + f.q
	if withIntercept {
		unknowns++
	}
	rows := len(z) - warm
	if rows < unknowns {
		return errors.New("arima: not enough observations to estimate order")
	}

	x := make([][]float64, rows)
	y := make([]float64, rows)
	for t := warm; t < len(z); t++ {
		row := make([]float64, 0, unknowns)
		if withIntercept {
			row = append(row, 1)
		}
		for i := 1; i <= f.p; i++ {
			row = append(row, z[t-i])
		}
		for j := 1; j <= f.q; j++ {
			row = append(row, proxies[t-j])
		}
		x[t-warm] = row
		y[t-warm] = z[t]
	}
	beta, err := solveLeastSquares(x, y)
	if err != nil {
		return err
	}

	idx := 0
	if withIntercept {
		f.intercept = beta[0]
		idx = 1
	}
	f.phi = beta[idx : idx+f.p]
	f.theta = beta[idx+f.p : idx+f.p+f.q]
	return nil
}

// fill computes one-step-ahead predictions on the original scale and the
// residual history the forecast recursion continues from. Positions inside
// the warm-up window stay NaN.
func (f *arimaFit) fill(series []float64, warm int) {
	z := f.diffed
	f.residuals = make([]float64, len(z))
	zHat := make([]float64, len(z))
	for t := 0; t < len(z); t++ {
		if t < warm {
			zHat[t] = math.NaN()
			continue
		}
		pred := f.intercept
		for i := 1; i <= f.p; i++ {
			pred += f.phi[i-1] * z[t-i]
		}
		for j := 1; j <= f.q; j++ {
			pred += f.theta[j-1] * f.residuals[t-j]
		}
		zHat[t] = pred
		f.residuals[t] = z[t] - pred
	}

	f.predictions = make([]float64, len(series))
	for i := range f.predictions {
		f.predictions[i] = math.NaN()
	}
	if f.d == 0 {
		copy(f.predictions, zHat)
	} else {
		// z[t] = y[t+1] - y[t], so the one-step prediction for y[t+1]
		// adds the predicted difference back onto the observed level.
		for t := warm; t < len(z); t++ {
			f.predictions[t+1] = series[t] + zHat[t]
		}
	}
	f.metrics = CalculateMetrics(series, f.predictions)
}

// forecast extends the recursion beyond the sample with future innovations
// set to zero, undifferencing cumulatively when d == 1.
func (f *arimaFit) forecast(series []float64, periods int) []float64 {
	z := append([]float64(nil), f.diffed...)
	res := append([]float64(nil), f.residuals...)

	out := make([]float64, periods)
	level := series[len(series)-1]
	for h := 0; h < periods; h++ {
		t := len(z)
		pred := f.intercept
		for i := 1; i <= f.p; i++ {
			if t-i >= 0 {
				pred += f.phi[i-1] * z[t-i]
			}
		}
		for j := 1; j <= f.q; j++ {
			if t-j >= 0 {
				pred += f.theta[j-1] * res[t-j]
			}
		}
		z = append(z, pred)
		res = append(res, 0)

		if f.d == 0 {
			out[h] = pred
		} else {
			level += pred
			out[h] = level
		}
	}
	return out
}

func difference(series []float64, d int) []float64 {
	z := append([]float64(nil), series...)
	for i := 0; i < d; i++ {
		next := make([]float64, len(z)-1)
		for t := 1; t < len(z); t++ {
			next[t-1] = z[t] - z[t-1]
		}
		z = next
	}
	return z
}

// solveLeastSquares solves the normal equations of X·beta = y by Gaussian
// elimination with partial pivoting.
func solveLeastSquares(x [][]float64, y []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, errors.New("arima: empty design matrix")
	}
	n := len(x[0])

	a := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			var s float64
			for _, row := range x {
				s += row[i] * row[j]
			}
			a[i][j] = s
		}
		var s float64
		for r, row := range x {
			s += row[i] * y[r]
		}
		b[i] = s
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, errors.New("arima: singular normal equations")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	beta := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s -= a[i][j] * beta[j]
		}
		beta[i] = s / a[i][i]
	}
	for _, v := range beta {
		if !isFinite(v) {
			return nil, errors.New("arima: non-finite coefficients")
		}
	}
	return beta, nil
}
