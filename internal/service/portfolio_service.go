package service

import (
	"sync"

	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
)

// minPrice is the floor a perturbed price is clamped to. The +/-1% default
// perturbation cannot drive a positive price to zero, but the invariant
// currentPrice > 0 is enforced unconditionally.
const minPrice = 0.01

// PortfolioService owns the running portfolio state. The (holdings, metrics)
// pair is published as an immutable snapshot and replaced wholesale on each
// tick, so a reader always observes holdings together with the metrics
// computed from exactly those holdings, never a mix.
type PortfolioService struct {
	mu             sync.RWMutex
	current        *model.Portfolio
	metrics        *MetricsService
	rng            RandSource
	priceMoveRange float64
}

// NewPortfolioService creates a PortfolioService seeded with the built
// portfolio. priceMoveRange is the total width of the per-tick perturbation
// draw (0.02 means each tick scales a price by a factor in [0.99, 1.01)).
func NewPortfolioService(initial *model.Portfolio, metrics *MetricsService, rng RandSource, priceMoveRange float64) *PortfolioService {
	return &PortfolioService{
		current:        initial,
		metrics:        metrics,
		rng:            rng,
		priceMoveRange: priceMoveRange,
	}
}

// Current returns the latest consistent snapshot. Callers must treat the
// returned portfolio as read-only; it is never mutated after publication.
func (s *PortfolioService) Current() *model.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Tick advances the simulation one step: every holding's price is scaled by
// a fresh uniform perturbation, clamped to stay positive, and a new snapshot
// with recomputed metrics replaces the current one atomically. A concurrent
// reader sees either the pre-tick or the post-tick snapshot in full.
func (s *PortfolioService) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Holding, len(s.current.Holdings))
	copy(next, s.current.Holdings)
	for i := range next {
		factor := (s.rng.Float64() - 0.5) * s.priceMoveRange
		price := next[i].CurrentPrice * (1 + factor)
		if price < minPrice {
			price = minPrice
		}
		next[i].CurrentPrice = price
	}

	s.current = &model.Portfolio{
		ID:       s.current.ID,
		Holdings: next,
		Metrics:  s.metrics.Compute(next),
	}
}
