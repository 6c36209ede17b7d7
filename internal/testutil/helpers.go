package testutil

import (
	"testing"

	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
	"github.com/okcomputer/dividend-dashboard-backend/internal/service"
)

// Default test configuration, matching the production defaults.
const (
	TestDailyChangeRange = 0.05
	TestPriceMoveRange   = 0.02
	TestMinConfidence    = 80
	TestMinYield         = 3.0
	TestMaxHoldings      = 15
)

// TestRisk is the risk-figure configuration used by test services.
var TestRisk = service.MetricsConfig{
	DailyChangeRange: TestDailyChangeRange,
	SharpeRatio:      1.34,
	Beta:             0.78,
	MaxDrawdown:      -8.2,
	ValueAtRisk95:    -2.1,
}

// NewTestMetricsService creates a MetricsService with default configuration
// and the given random source.
func NewTestMetricsService(t *testing.T, rng service.RandSource) *service.MetricsService {
	t.Helper()

	return service.NewMetricsService(TestRisk, rng)
}

// NewTestBuilderService creates a BuilderService over the given catalog with
// the default selection policy.
func NewTestBuilderService(t *testing.T, cat *catalog.Catalog, rng service.RandSource) *service.BuilderService {
	t.Helper()

	return service.NewBuilderService(cat, service.BuilderConfig{
		MinConfidence: TestMinConfidence,
		MinYield:      TestMinYield,
		MaxHoldings:   TestMaxHoldings,
	}, NewTestMetricsService(t, rng), rng)
}

// NewTestPortfolioService creates a PortfolioService seeded with a portfolio
// built over the given holdings, using the default perturbation range.
func NewTestPortfolioService(t *testing.T, holdings []model.Holding, rng service.RandSource) *service.PortfolioService {
	t.Helper()

	metrics := NewTestMetricsService(t, rng)
	portfolio := &model.Portfolio{
		ID:       "test-portfolio",
		Holdings: holdings,
		Metrics:  metrics.Compute(holdings),
	}
	return service.NewPortfolioService(portfolio, metrics, rng, TestPriceMoveRange)
}
