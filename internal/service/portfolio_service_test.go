package service_test

import (
	"sync"
	"testing"

	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
	"github.com/okcomputer/dividend-dashboard-backend/internal/testutil"
)

// TestPortfolioService_Tick tests the per-tick price perturbation.
//
// WHY: The tick is the heartbeat of the simulation. This ensures each tick
// keeps the cached metrics consistent with the holdings they were computed
// from, keeps prices strictly positive under any draw sequence, and never
// mutates a snapshot a reader may still hold.
func TestPortfolioService_Tick(t *testing.T) {
	t.Run("midpoint draws leave prices unchanged", func(t *testing.T) {
		// Setup: a draw of 0.5 is the center of the band, factor 0
		holdings := []model.Holding{testutil.NewHolding().WithPrice(100.0).Build()}
		svc := testutil.NewTestPortfolioService(t, holdings, testutil.FixedSource{Value: 0.5})

		// Execute
		svc.Tick()

		// Assert
		got := svc.Current().Holdings[0].CurrentPrice
		if !approxEqual(got, 100.0) {
			t.Errorf("Expected price 100.0 after midpoint tick, got %f", got)
		}
	})

	t.Run("perturbed price stays within the configured band", func(t *testing.T) {
		holdings := []model.Holding{testutil.NewHolding().WithPrice(100.0).Build()}
		svc := testutil.NewTestPortfolioService(t, holdings, &testutil.SequenceSource{Values: []float64{0.999999, 0, 0.25}})

		for i := 0; i < 50; i++ {
			before := svc.Current().Holdings[0].CurrentPrice
			svc.Tick()
			after := svc.Current().Holdings[0].CurrentPrice
			lo := before * (1 - testutil.TestPriceMoveRange/2)
			hi := before * (1 + testutil.TestPriceMoveRange/2)
			if after < lo-epsilon || after > hi+epsilon {
				t.Fatalf("Tick %d moved price %f outside [%f, %f]: %f", i, before, lo, hi, after)
			}
		}
	})

	t.Run("cached metrics match a recomputation over the same holdings", func(t *testing.T) {
		holdings := []model.Holding{
			testutil.NewHolding().WithSymbol("A").WithPrice(50.0).Build(),
			testutil.NewHolding().WithSymbol("B").WithPrice(75.0).Build(),
		}
		rng := testutil.FixedSource{Value: 0.5}
		svc := testutil.NewTestPortfolioService(t, holdings, rng)
		metrics := testutil.NewTestMetricsService(t, rng)

		svc.Tick()

		snapshot := svc.Current()
		recomputed := metrics.Compute(snapshot.Holdings)
		if snapshot.Metrics != recomputed {
			t.Errorf("Expected cached metrics %+v to match recomputation %+v", snapshot.Metrics, recomputed)
		}
	})

	t.Run("prices never reach zero under relentless downward draws", func(t *testing.T) {
		// A draw of 0 is the maximum downward move every single tick.
		holdings := []model.Holding{testutil.NewHolding().WithPrice(0.02).Build()}
		svc := testutil.NewTestPortfolioService(t, holdings, testutil.FixedSource{Value: 0})

		for i := 0; i < 10000; i++ {
			svc.Tick()
			if price := svc.Current().Holdings[0].CurrentPrice; price <= 0 {
				t.Fatalf("Price dropped to %f after %d ticks", price, i+1)
			}
		}
	})

	t.Run("tick does not mutate a previously returned snapshot", func(t *testing.T) {
		holdings := []model.Holding{testutil.NewHolding().WithPrice(100.0).Build()}
		svc := testutil.NewTestPortfolioService(t, holdings, testutil.FixedSource{Value: 0})

		before := svc.Current()
		priceBefore := before.Holdings[0].CurrentPrice
		svc.Tick()

		if before.Holdings[0].CurrentPrice != priceBefore {
			t.Errorf("Snapshot mutated in place: %f became %f", priceBefore, before.Holdings[0].CurrentPrice)
		}
		if svc.Current() == before {
			t.Error("Expected tick to publish a new snapshot")
		}
	})

	t.Run("preserves portfolio identity and holding count across ticks", func(t *testing.T) {
		holdings := []model.Holding{
			testutil.NewHolding().WithSymbol("A").Build(),
			testutil.NewHolding().WithSymbol("B").Build(),
		}
		svc := testutil.NewTestPortfolioService(t, holdings, testutil.FixedSource{Value: 0.5})
		id := svc.Current().ID

		for i := 0; i < 5; i++ {
			svc.Tick()
		}

		current := svc.Current()
		if current.ID != id {
			t.Errorf("Expected stable ID %s, got %s", id, current.ID)
		}
		if len(current.Holdings) != 2 {
			t.Errorf("Expected 2 holdings, got %d", len(current.Holdings))
		}
		if current.Holdings[0].Symbol != "A" || current.Holdings[1].Symbol != "B" {
			t.Error("Expected holding order to be preserved across ticks")
		}
	})

	t.Run("concurrent readers always observe a consistent snapshot", func(t *testing.T) {
		holdings := []model.Holding{
			testutil.NewHolding().WithSymbol("A").WithPrice(50.0).Build(),
			testutil.NewHolding().WithSymbol("B").WithPrice(75.0).Build(),
		}
		rng := testutil.FixedSource{Value: 0.5}
		svc := testutil.NewTestPortfolioService(t, holdings, rng)
		metrics := testutil.NewTestMetricsService(t, rng)

		var wg sync.WaitGroup
		stop := make(chan struct{})
		errs := make(chan string, 1)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					select {
					case <-stop:
						return
					default:
					}
					snapshot := svc.Current()
					if snapshot.Metrics != metrics.Compute(snapshot.Holdings) {
						select {
						case errs <- "observed metrics inconsistent with holdings":
						default:
						}
						return
					}
				}
			}()
		}
		for i := 0; i < 500; i++ {
			svc.Tick()
		}
		close(stop)
		wg.Wait()

		select {
		case msg := <-errs:
			t.Error(msg)
		default:
		}
	})
}
