package handlers

import (
	"net/http"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api/response"
	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
)

// StocksHandler serves catalog lookups
type StocksHandler struct {
	catalog *catalog.Catalog
}

// NewStocksHandler creates a new StocksHandler
func NewStocksHandler(cat *catalog.Catalog) *StocksHandler {
	return &StocksHandler{
		catalog: cat,
	}
}

// Stocks returns catalog records filtered by at most one of the search,
// region, country, or sector query parameters, checked in that order (the
// first one present wins). With no filter the full catalog is returned.
// Unmatched filters yield an empty array, not an error. Duplicate catalog
// entries appear in the result as-is.
func (h *StocksHandler) Stocks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var records []model.SecurityRecord
	switch {
	case query.Get("search") != "":
		records = h.catalog.Search(query.Get("search"))
	case query.Get("region") != "":
		records = h.catalog.ByRegion(query.Get("region"))
	case query.Get("country") != "":
		records = h.catalog.ByCountry(query.Get("country"))
	case query.Get("sector") != "":
		records = h.catalog.BySector(query.Get("sector"))
	default:
		records = h.catalog.Records()
	}

	response.RespondJSON(w, http.StatusOK, records)
}
