package service_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
	"github.com/okcomputer/dividend-dashboard-backend/internal/service"
	"github.com/okcomputer/dividend-dashboard-backend/internal/testutil"
)

// TestTimeSeriesService tests synthetic series generation and range views.
//
// WHY: The performance chart renders directly from this series. This ensures
// the window produces the expected point count with gap-free ascending dates,
// and that range views are stable slices of one generation rather than fresh
// (and therefore inconsistent) data.
func TestTimeSeriesService(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("generates one point per day inclusive of today", func(t *testing.T) {
		// Setup
		svc := service.NewTimeSeriesService(30, now, testutil.FixedSource{Value: 0.5})

		// Execute
		points := svc.Series()

		// Assert
		if len(points) != 31 {
			t.Fatalf("Expected 31 points, got %d", len(points))
		}
		if points[0].Date != "2024-02-14" {
			t.Errorf("Expected first date 2024-02-14, got %s", points[0].Date)
		}
		if points[30].Date != "2024-03-15" {
			t.Errorf("Expected last date 2024-03-15, got %s", points[30].Date)
		}
	})

	t.Run("dates are strictly increasing with no gaps", func(t *testing.T) {
		svc := service.NewTimeSeriesService(30, now, testutil.FixedSource{Value: 0.5})

		points := svc.Series()

		prev, err := time.Parse("2006-01-02", points[0].Date)
		if err != nil {
			t.Fatalf("Unparseable date %s: %v", points[0].Date, err)
		}
		for _, p := range points[1:] {
			current, err := time.Parse("2006-01-02", p.Date)
			if err != nil {
				t.Fatalf("Unparseable date %s: %v", p.Date, err)
			}
			if !current.Equal(prev.AddDate(0, 0, 1)) {
				t.Fatalf("Expected %s to follow %s by one day", p.Date, prev.Format("2006-01-02"))
			}
			prev = current
		}
	})

	t.Run("week view is the trailing seven points", func(t *testing.T) {
		svc := service.NewTimeSeriesService(30, now, testutil.FixedSource{Value: 0.5})
		full := svc.Series()

		week := svc.Slice(model.RangeWeek)

		if len(week) != 7 {
			t.Fatalf("Expected 7 points, got %d", len(week))
		}
		if !reflect.DeepEqual(week, full[len(full)-7:]) {
			t.Error("Expected week view to equal the last seven generated points")
		}
	})

	t.Run("range views share one generation", func(t *testing.T) {
		svc := service.NewTimeSeriesService(30, now, &testutil.SequenceSource{Values: []float64{0.1, 0.9, 0.3, 0.7}})

		day := svc.Slice(model.RangeDay)
		again := svc.Slice(model.RangeDay)

		if !reflect.DeepEqual(day, again) {
			t.Error("Expected repeated views to return identical points")
		}
		if &day[0] != &again[0] {
			t.Error("Expected views to share the generated backing array")
		}
	})

	t.Run("all range and oversized windows return the full series", func(t *testing.T) {
		svc := service.NewTimeSeriesService(5, now, testutil.FixedSource{Value: 0.5})
		full := svc.Series()

		if got := svc.Slice(model.RangeAll); len(got) != len(full) {
			t.Errorf("Expected ALL to return %d points, got %d", len(full), len(got))
		}
		// A 5-day window holds 6 points, fewer than the month view asks for.
		if got := svc.Slice(model.RangeMonth); len(got) != 6 {
			t.Errorf("Expected oversized month view to return all 6 points, got %d", len(got))
		}
	})

	t.Run("day view is the single most recent point", func(t *testing.T) {
		svc := service.NewTimeSeriesService(30, now, testutil.FixedSource{Value: 0.5})

		day := svc.Slice(model.RangeDay)

		if len(day) != 1 {
			t.Fatalf("Expected 1 point, got %d", len(day))
		}
		if day[0].Date != "2024-03-15" {
			t.Errorf("Expected most recent date 2024-03-15, got %s", day[0].Date)
		}
	})
}
