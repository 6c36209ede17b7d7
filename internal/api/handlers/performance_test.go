package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api/handlers"
	"github.com/okcomputer/dividend-dashboard-backend/internal/api/response"
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
	"github.com/okcomputer/dividend-dashboard-backend/internal/service"
	"github.com/okcomputer/dividend-dashboard-backend/internal/testutil"
)

// TestPerformanceHandler_Performance tests the performance chart endpoint.
//
// WHY: The chart's range selector maps straight to the range parameter. This
// ensures each range returns the right window, missing ranges default to the
// full series, and malformed ranges are rejected with a client error.
func TestPerformanceHandler_Performance(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	svc := service.NewTimeSeriesService(30, now, testutil.FixedSource{Value: 0.5})
	handler := handlers.NewPerformanceHandler(svc)

	t.Run("returns the requested window", func(t *testing.T) {
		tests := []struct {
			rangeParam string
			expected   int
		}{
			{"1D", 1},
			{"1W", 7},
			{"1M", 30},
			{"ALL", 31},
		}

		for _, tt := range tests {
			t.Run(tt.rangeParam, func(t *testing.T) {
				req := testutil.NewRequestWithQueryParams(
					http.MethodGet,
					"/api/portfolio/performance",
					map[string]string{"range": tt.rangeParam},
				)
				rec := httptest.NewRecorder()
				handler.Performance(rec, req)

				if rec.Code != http.StatusOK {
					t.Fatalf("Expected status 200, got %d", rec.Code)
				}
				var resp handlers.PerformanceResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(resp.Points) != tt.expected {
					t.Errorf("Expected %d points, got %d", tt.expected, len(resp.Points))
				}
				if resp.Range != model.Range(tt.rangeParam) {
					t.Errorf("Expected range %s echoed, got %s", tt.rangeParam, resp.Range)
				}
			})
		}
	})

	t.Run("missing range defaults to the full series", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/performance", nil)
		rec := httptest.NewRecorder()
		handler.Performance(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var resp handlers.PerformanceResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Range != model.RangeAll {
			t.Errorf("Expected range ALL, got %s", resp.Range)
		}
		if len(resp.Points) != 31 {
			t.Errorf("Expected 31 points, got %d", len(resp.Points))
		}
	})

	t.Run("lowercase range is accepted", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/portfolio/performance",
			map[string]string{"range": "1w"},
		)
		rec := httptest.NewRecorder()
		handler.Performance(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var resp handlers.PerformanceResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Range != model.RangeWeek {
			t.Errorf("Expected range 1W, got %s", resp.Range)
		}
	})

	t.Run("rejects an unknown range", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/portfolio/performance",
			map[string]string{"range": "2Y"},
		)
		rec := httptest.NewRecorder()
		handler.Performance(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", rec.Code)
		}
		var resp response.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
		if resp.Error != "invalid range parameter" {
			t.Errorf("Expected error 'invalid range parameter', got %q", resp.Error)
		}
	})
}
