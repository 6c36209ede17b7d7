package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api/handlers"
	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
)

// TestSystemHandler_Health tests the health check endpoint.
//
// WHY: Deploy tooling probes this endpoint. This ensures it reports the
// healthy status and the size of the compiled-in catalog.
func TestSystemHandler_Health(t *testing.T) {
	cat := catalog.Load()
	handler := handlers.NewSystemHandler(cat)

	req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var resp handlers.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Expected status healthy, got %s", resp.Status)
	}
	if resp.CatalogSize != cat.Len() {
		t.Errorf("Expected catalog size %d, got %d", cat.Len(), resp.CatalogSize)
	}
}
