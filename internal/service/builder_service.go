package service

import (
	"github.com/google/uuid"

	"github.com/okcomputer/dividend-dashboard-backend/internal/apperrors"
	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
)

// BuilderConfig is the selection policy for deriving a portfolio from the
// catalog.
type BuilderConfig struct {
	MinConfidence int     // keep records with confidence >= this
	MinYield      float64 // and dividend yield >= this, percent
	MaxHoldings   int     // cap on selected records; fewer matches is not an error
}

// BuilderService derives the mock portfolio from the catalog: it selects
// records by the configured policy and synthesizes per-holding share counts
// and cost bases from the injected random source.
type BuilderService struct {
	catalog *catalog.Catalog
	cfg     BuilderConfig
	metrics *MetricsService
	rng     RandSource
}

// NewBuilderService creates a new BuilderService.
func NewBuilderService(cat *catalog.Catalog, cfg BuilderConfig, metrics *MetricsService, rng RandSource) *BuilderService {
	return &BuilderService{
		catalog: cat,
		cfg:     cfg,
		metrics: metrics,
		rng:     rng,
	}
}

// Build selects catalog records satisfying the policy, preserving catalog
// order, and synthesizes one holding per record:
//
//   - shares: 50 + a uniform draw scaled to a width of 300, floored
//   - average cost: current price scaled by a uniform factor in [0.85, 1.15),
//     simulating a historical purchase without storing a history
//   - current price: the record's catalog price
//
// The per-record draw order is shares first, then cost factor. The returned
// portfolio carries a freshly computed metrics snapshot.
//
// Returns apperrors.ErrEmptySelection if the policy admits no records.
func (s *BuilderService) Build() (*model.Portfolio, error) {
	var selected []model.SecurityRecord
	for _, record := range s.catalog.Records() {
		if record.Confidence >= s.cfg.MinConfidence && record.DividendYield >= s.cfg.MinYield {
			selected = append(selected, record)
			if len(selected) == s.cfg.MaxHoldings {
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, apperrors.ErrEmptySelection
	}

	holdings := make([]model.Holding, len(selected))
	for i, record := range selected {
		shares := 50 + int(s.rng.Float64()*300)
		avgCost := record.Price * (0.85 + s.rng.Float64()*0.30)
		holdings[i] = model.Holding{
			Symbol:        record.Symbol,
			Name:          record.Name,
			Country:       record.Country,
			Region:        record.Region,
			Sector:        record.Sector,
			Shares:        shares,
			AvgCost:       avgCost,
			CurrentPrice:  record.Price,
			DividendYield: record.DividendYield,
			Beta:          record.Beta,
		}
	}

	return &model.Portfolio{
		ID:       uuid.NewString(),
		Holdings: holdings,
		Metrics:  s.metrics.Compute(holdings),
	}, nil
}
