package forecast

import (
	"errors"
	"math"
)

const (
	seasonalAdditive       = "add"
	seasonalMultiplicative = "mul"
)

var hwSmoothingGrid = []float64{0.1, 0.3, 0.5, 0.7, 0.9}

// HoltWinters models level, trend, and seasonality with triple exponential
// smoothing. Both additive and multiplicative seasonal variants are fitted
// and the smoothing factors grid-searched; the best in-sample MAPE wins.
type HoltWinters struct {
	SeasonalPeriods int
}

func (m *HoltWinters) Name() string { return ModelHoltWinters }

func (m *HoltWinters) periods() int {
	if m.SeasonalPeriods > 0 {
		return m.SeasonalPeriods
	}
	return 12
}

func (m *HoltWinters) Evaluate(series []float64) (Evaluation, error) {
	best, err := m.bestFit(series)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		Name:        m.Name(),
		Predictions: best.fitted,
		Metrics:     CalculateMetrics(series, best.fitted),
		Parameters: map[string]any{
			"seasonal":         best.seasonal,
			"seasonal_periods": m.periods(),
		},
	}, nil
}

func (m *HoltWinters) Forecast(series []float64, periods int) ([]float64, error) {
	best, err := m.bestFit(series)
	if err != nil {
		return nil, err
	}
	sp := m.periods()
	n := len(series)
	out := make([]float64, periods)
	for h := 1; h <= periods; h++ {
		idx := (n + h - 1) % sp
		if best.seasonal == seasonalMultiplicative {
			out[h-1] = (best.level + float64(h)*best.trend) * best.seasonalIdx[idx]
		} else {
			out[h-1] = best.level + float64(h)*best.trend + best.seasonalIdx[idx]
		}
	}
	return out, nil
}

type hwState struct {
	seasonal    string
	fitted      []float64
	level       float64
	trend       float64
	seasonalIdx []float64
}

func (m *HoltWinters) bestFit(series []float64) (*hwState, error) {
	var best *hwState
	bestMAPE := math.Inf(1)

	for _, seasonal := range []string{seasonalAdditive, seasonalMultiplicative} {
		for _, alpha := range hwSmoothingGrid {
			for _, beta := range hwSmoothingGrid {
				for _, gamma := range hwSmoothingGrid {
					state, err := m.fit(series, seasonal, alpha, beta, gamma)
					if err != nil {
						continue
					}
					metrics := CalculateMetrics(series, state.fitted)
					if !math.IsNaN(metrics.MAPE) && metrics.MAPE < bestMAPE {
						bestMAPE = metrics.MAPE
						best = state
					}
				}
			}
		}
	}

	if best == nil {
		return nil, errors.New("holt-winters: no seasonal variant produced a finite fit")
	}
	return best, nil
}

// fit runs one triple-smoothing pass. The level starts at the mean of the
// first season, the trend at the season-over-season mean difference, and the
// seasonal indices at each first-season deviation from the initial level.
func (m *HoltWinters) fit(series []float64, seasonal string, alpha, beta, gamma float64) (*hwState, error) {
	sp := m.periods()
	if len(series) < 2*sp {
		return nil, errors.New("holt-winters: series shorter than two seasonal cycles")
	}

	firstCycle := mean(series[:sp])
	secondCycle := mean(series[sp : 2*sp])

	level := firstCycle
	trend := (secondCycle - firstCycle) / float64(sp)
	seas := make([]float64, sp)

	mul := seasonal == seasonalMultiplicative
	if mul {
		if firstCycle == 0 {
			return nil, errors.New("holt-winters: zero initial level for multiplicative seasonality")
		}
		for _, y := range series {
			if y <= 0 {
				return nil, errors.New("holt-winters: multiplicative seasonality requires positive values")
			}
		}
		for i := 0; i < sp; i++ {
			seas[i] = series[i] / firstCycle
		}
	} else {
		for i := 0; i < sp; i++ {
			seas[i] = series[i] - firstCycle
		}
	}

	fitted := make([]float64, len(series))
	for t, y := range series {
		si := t % sp
		var newLevel float64
		if mul {
			if seas[si] == 0 || level+trend == 0 {
				return nil, errors.New("holt-winters: degenerate multiplicative state")
			}
			fitted[t] = (level + trend) * seas[si]
			newLevel = alpha*(y/seas[si]) + (1-alpha)*(level+trend)
			seas[si] = gamma*(y/(level+trend)) + (1-gamma)*seas[si]
		} else {
			fitted[t] = level + trend + seas[si]
			newLevel = alpha*(y-seas[si]) + (1-alpha)*(level+trend)
			seas[si] = gamma*(y-level-trend) + (1-gamma)*seas[si]
		}
		newTrend := beta*(newLevel-level) + (1-beta)*trend
		level, trend = newLevel, newTrend
	}

	for _, f := range fitted {
		if !isFinite(f) {
			return nil, errors.New("holt-winters: fit diverged")
		}
	}

	return &hwState{
		seasonal:    seasonal,
		fitted:      fitted,
		level:       level,
		trend:       trend,
		seasonalIdx: seas,
	}, nil
}
