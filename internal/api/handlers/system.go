package handlers

import (
	"net/http"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api/response"
	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	catalog *catalog.Catalog
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(cat *catalog.Catalog) *SystemHandler {
	return &SystemHandler{
		catalog: cat,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	CatalogSize int    `json:"catalogSize"`
}

// Health reports process liveness. The catalog is compiled in, so a running
// process with a non-empty catalog is healthy by definition.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		CatalogSize: h.catalog.Len(),
	})
}
