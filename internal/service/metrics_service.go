package service

import (
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
)

// MetricsConfig holds the inputs of the metrics engine that are configuration
// rather than functions of the holdings: the daily-change draw width and the
// static risk figures echoed into every snapshot.
type MetricsConfig struct {
	DailyChangeRange float64 // total width of the per-holding delta draw
	SharpeRatio      float64
	Beta             float64
	MaxDrawdown      float64
	ValueAtRisk95    float64
}

// MetricsService computes aggregate metrics from a set of holdings. It holds
// no portfolio state; Compute is a function of the holdings, the injected
// random source, and the configured risk figures.
type MetricsService struct {
	cfg MetricsConfig
	rng RandSource
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(cfg MetricsConfig, rng RandSource) *MetricsService {
	return &MetricsService{
		cfg: cfg,
		rng: rng,
	}
}

// Compute derives a Metrics snapshot from the given holdings.
//
// All aggregates are sums over the holdings and are invariant to their order.
// The zero cases are guarded, not propagated: an empty or valueless holdings
// set yields zero return and zero weighted yield, never NaN.
//
// DailyChange is synthetic: each call draws a fresh per-holding delta in
// [-DailyChangeRange/2, DailyChangeRange/2) instead of diffing against a
// stored previous price. Two Compute calls over identical holdings therefore
// report different daily changes unless the random source is fixed.
func (s *MetricsService) Compute(holdings []model.Holding) model.Metrics {
	var totalValue, totalCost, income, dailyChange float64
	for _, h := range holdings {
		value := h.MarketValue()
		totalValue += value
		totalCost += float64(h.Shares) * h.AvgCost
		income += value * h.DividendYield / 100
		delta := (s.rng.Float64() - 0.5) * s.cfg.DailyChangeRange
		dailyChange += value * delta
	}

	totalReturn := 0.0
	if totalCost != 0 {
		totalReturn = (totalValue - totalCost) / totalCost * 100
	}

	weightedYield := 0.0
	if totalValue != 0 {
		for _, h := range holdings {
			weightedYield += h.MarketValue() / totalValue * h.DividendYield
		}
	}

	return model.Metrics{
		TotalValue:          totalValue,
		DailyChange:         dailyChange,
		TotalDividendIncome: income,
		TotalReturn:         totalReturn,
		DividendYield:       weightedYield,
		SharpeRatio:         s.cfg.SharpeRatio,
		Beta:                s.cfg.Beta,
		MaxDrawdown:         s.cfg.MaxDrawdown,
		ValueAtRisk95:       s.cfg.ValueAtRisk95,
	}
}
