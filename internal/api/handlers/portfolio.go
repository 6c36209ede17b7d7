package handlers

import (
	"net/http"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api/response"
	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
	"github.com/okcomputer/dividend-dashboard-backend/internal/service"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// HoldingResponse is one row of the holdings table, combining the stored
// holding with its derived per-position valuation.
type HoldingResponse struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Country         string  `json:"country"`
	Region          string  `json:"region"`
	Sector          string  `json:"sector"`
	Shares          int     `json:"shares"`
	AvgCost         float64 `json:"avgCost"`
	CurrentPrice    float64 `json:"currentPrice"`
	MarketValue     float64 `json:"marketValue"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
	DividendYield   float64 `json:"dividendYield"`
	Beta            float64 `json:"beta"`
}

// PortfolioResponse represents the portfolio get response
type PortfolioResponse struct {
	ID       string            `json:"id"`
	Holdings []HoldingResponse `json:"holdings"`
	Metrics  model.Metrics     `json:"metrics"`
}

// Portfolio returns the current holdings and their metrics snapshot. The
// snapshot is consistent: metrics always correspond to the returned holdings.
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	portfolio := h.portfolioService.Current()

	holdings := make([]HoldingResponse, len(portfolio.Holdings))
	for i, holding := range portfolio.Holdings {
		holdings[i] = HoldingResponse{
			Symbol:          holding.Symbol,
			Name:            holding.Name,
			Country:         holding.Country,
			Region:          holding.Region,
			Sector:          holding.Sector,
			Shares:          holding.Shares,
			AvgCost:         holding.AvgCost,
			CurrentPrice:    holding.CurrentPrice,
			MarketValue:     holding.MarketValue(),
			GainLoss:        holding.GainLoss(),
			GainLossPercent: holding.GainLossPercent(),
			DividendYield:   holding.DividendYield,
			Beta:            holding.Beta,
		}
	}

	response.RespondJSON(w, http.StatusOK, PortfolioResponse{
		ID:       portfolio.ID,
		Holdings: holdings,
		Metrics:  portfolio.Metrics,
	})
}
