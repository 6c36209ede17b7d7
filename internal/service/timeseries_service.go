package service

import (
	"math"
	"time"

	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
)

// TimeSeriesService holds the synthetic daily performance series. The series
// is generated once at construction for a fixed trailing window and is
// immutable afterwards; range views are slices of it, never regenerations.
type TimeSeriesService struct {
	points []model.TimeSeriesPoint
}

// NewTimeSeriesService generates one point per day for windowDays trailing
// days inclusive of now (windowDays of 30 yields 31 points). Values are a
// random base plus a sinusoidal component; the waveform is cosmetic, only the
// strictly increasing gap-free dates are load-bearing.
func NewTimeSeriesService(windowDays int, now time.Time, rng RandSource) *TimeSeriesService {
	points := make([]model.TimeSeriesPoint, 0, windowDays+1)
	for i := windowDays; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		base := 100000 + (rng.Float64()-0.5)*10000
		points = append(points, model.TimeSeriesPoint{
			Date:           date.Format("2006-01-02"),
			PortfolioValue: base + math.Sin(float64(i)*0.1)*5000,
			BenchmarkValue: 4200 + math.Sin(float64(i)*0.15)*200,
			DividendFlow:   rng.Float64()*1000 + 500,
		})
	}
	return &TimeSeriesService{points: points}
}

// Series returns the full generated series in date order.
func (s *TimeSeriesService) Series() []model.TimeSeriesPoint {
	return s.points
}

// Slice returns the trailing window of the series selected by r, in original
// order. It only slices the generated series; requesting more points than
// exist (or RangeAll) returns the whole series.
func (s *TimeSeriesService) Slice(r model.Range) []model.TimeSeriesPoint {
	n := r.Points()
	if n <= 0 || n >= len(s.points) {
		return s.points
	}
	return s.points[len(s.points)-n:]
}
