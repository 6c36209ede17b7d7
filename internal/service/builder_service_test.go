package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okcomputer/dividend-dashboard-backend/internal/apperrors"
	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
	"github.com/okcomputer/dividend-dashboard-backend/internal/testutil"
)

// TestBuilderService_Build tests portfolio construction from the catalog.
//
// WHY: The builder decides which securities the user holds and at what cost
// basis. This ensures the selection thresholds, the size cap, and the
// randomized position sizing all behave exactly as documented.
func TestBuilderService_Build(t *testing.T) {
	t.Run("builds deterministic portfolio from midpoint draws", func(t *testing.T) {
		// Setup: one qualifying record, every draw fixed at 0.5
		cat := catalog.New([]model.SecurityRecord{
			testutil.NewRecord().WithSymbol("ONLY").WithYield(5.0).WithPrice(100.0).WithConfidence(90).Build(),
		})
		svc := testutil.NewTestBuilderService(t, cat, testutil.FixedSource{Value: 0.5})

		// Execute
		portfolio, err := svc.Build()

		// Assert
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(portfolio.Holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(portfolio.Holdings))
		}
		h := portfolio.Holdings[0]
		// shares = 50 + floor(0.5*300) = 200; avgCost = 100 * (0.85 + 0.5*0.30) = 100
		if h.Shares != 200 {
			t.Errorf("Expected 200 shares, got %d", h.Shares)
		}
		if !approxEqual(h.AvgCost, 100.0) {
			t.Errorf("Expected avg cost 100.0, got %f", h.AvgCost)
		}
		if !approxEqual(h.CurrentPrice, 100.0) {
			t.Errorf("Expected current price 100.0, got %f", h.CurrentPrice)
		}
		if !approxEqual(portfolio.Metrics.TotalValue, 20000) {
			t.Errorf("Expected total value 20000, got %f", portfolio.Metrics.TotalValue)
		}
		if !approxEqual(portfolio.Metrics.TotalReturn, 0) {
			t.Errorf("Expected total return 0, got %f", portfolio.Metrics.TotalReturn)
		}
		if !approxEqual(portfolio.Metrics.DividendYield, 5.0) {
			t.Errorf("Expected weighted yield 5.0, got %f", portfolio.Metrics.DividendYield)
		}
		if portfolio.ID == "" {
			t.Error("Expected non-empty portfolio ID")
		}
	})

	t.Run("excludes records below confidence and yield thresholds", func(t *testing.T) {
		cat := catalog.New([]model.SecurityRecord{
			testutil.NewRecord().WithSymbol("LOWCONF").WithConfidence(79).Build(),
			testutil.NewRecord().WithSymbol("LOWYIELD").WithYield(2.9).Build(),
			testutil.NewRecord().WithSymbol("KEEP").Build(),
		})
		svc := testutil.NewTestBuilderService(t, cat, testutil.FixedSource{Value: 0.5})

		portfolio, err := svc.Build()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(portfolio.Holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(portfolio.Holdings))
		}
		if portfolio.Holdings[0].Symbol != "KEEP" {
			t.Errorf("Expected KEEP, got %s", portfolio.Holdings[0].Symbol)
		}
	})

	t.Run("admits records exactly at the thresholds", func(t *testing.T) {
		cat := catalog.New([]model.SecurityRecord{
			testutil.NewRecord().WithSymbol("EDGE").WithConfidence(80).WithYield(3.0).Build(),
		})
		svc := testutil.NewTestBuilderService(t, cat, testutil.FixedSource{Value: 0.5})

		portfolio, err := svc.Build()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(portfolio.Holdings) != 1 {
			t.Errorf("Expected boundary record to qualify, got %d holdings", len(portfolio.Holdings))
		}
	})

	t.Run("caps holdings at the configured maximum in catalog order", func(t *testing.T) {
		records := make([]model.SecurityRecord, 0, 20)
		for i := 0; i < 20; i++ {
			records = append(records, testutil.NewRecord().WithSymbol(fmt.Sprintf("SYM%02d", i)).Build())
		}
		cat := catalog.New(records)
		svc := testutil.NewTestBuilderService(t, cat, testutil.FixedSource{Value: 0.5})

		portfolio, err := svc.Build()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(portfolio.Holdings) != testutil.TestMaxHoldings {
			t.Fatalf("Expected %d holdings, got %d", testutil.TestMaxHoldings, len(portfolio.Holdings))
		}
		for i, h := range portfolio.Holdings {
			expected := fmt.Sprintf("SYM%02d", i)
			if h.Symbol != expected {
				t.Errorf("Expected %s at position %d, got %s", expected, i, h.Symbol)
			}
		}
	})

	t.Run("returns all qualifying records when fewer than the cap", func(t *testing.T) {
		cat := catalog.New([]model.SecurityRecord{
			testutil.NewRecord().WithSymbol("A").Build(),
			testutil.NewRecord().WithSymbol("B").Build(),
			testutil.NewRecord().WithSymbol("C").Build(),
		})
		svc := testutil.NewTestBuilderService(t, cat, testutil.FixedSource{Value: 0.5})

		portfolio, err := svc.Build()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(portfolio.Holdings) != 3 {
			t.Errorf("Expected 3 holdings, got %d", len(portfolio.Holdings))
		}
	})

	t.Run("returns error when no record qualifies", func(t *testing.T) {
		cat := catalog.New([]model.SecurityRecord{
			testutil.NewRecord().WithSymbol("LOWCONF").WithConfidence(10).Build(),
		})
		svc := testutil.NewTestBuilderService(t, cat, testutil.FixedSource{Value: 0.5})

		_, err := svc.Build()

		if !errors.Is(err, apperrors.ErrEmptySelection) {
			t.Errorf("Expected ErrEmptySelection, got %v", err)
		}
	})

	t.Run("position sizing stays within the documented bounds", func(t *testing.T) {
		cat := catalog.New([]model.SecurityRecord{
			testutil.NewRecord().WithSymbol("LOW").WithPrice(40.0).Build(),
			testutil.NewRecord().WithSymbol("HIGH").WithPrice(250.0).Build(),
		})
		// Extremes of the unit interval exercise both edges of the ranges.
		svc := testutil.NewTestBuilderService(t, cat, &testutil.SequenceSource{Values: []float64{0, 0.999999, 0.999999, 0}})

		portfolio, err := svc.Build()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		for _, h := range portfolio.Holdings {
			if h.Shares < 50 || h.Shares >= 350 {
				t.Errorf("Shares %d for %s outside [50, 350)", h.Shares, h.Symbol)
			}
			lo, hi := h.CurrentPrice*0.85, h.CurrentPrice*1.15
			if h.AvgCost < lo-epsilon || h.AvgCost > hi+epsilon {
				t.Errorf("Avg cost %f for %s outside [%f, %f]", h.AvgCost, h.Symbol, lo, hi)
			}
		}
	})
}
