package handlers

import (
	"net/http"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api/response"
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
	"github.com/okcomputer/dividend-dashboard-backend/internal/service"
	"github.com/okcomputer/dividend-dashboard-backend/internal/validation"
)

// PerformanceHandler serves windowed views of the generated time series
type PerformanceHandler struct {
	timeSeriesService *service.TimeSeriesService
}

// NewPerformanceHandler creates a new PerformanceHandler
func NewPerformanceHandler(timeSeriesService *service.TimeSeriesService) *PerformanceHandler {
	return &PerformanceHandler{
		timeSeriesService: timeSeriesService,
	}
}

// PerformanceResponse represents the performance get response
type PerformanceResponse struct {
	Range  model.Range             `json:"range"`
	Points []model.TimeSeriesPoint `json:"points"`
}

// Performance returns the trailing window of the time series selected by the
// range query parameter (1D, 1W, 1M, ALL; missing defaults to ALL).
func (h *PerformanceHandler) Performance(w http.ResponseWriter, r *http.Request) {
	rng, verr := validation.ParseRange(r.URL.Query().Get("range"))
	if verr != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid range parameter", verr.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, PerformanceResponse{
		Range:  rng,
		Points: h.timeSeriesService.Slice(rng),
	})
}
