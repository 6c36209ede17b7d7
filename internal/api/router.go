package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/okcomputer/dividend-dashboard-backend/internal/api/middleware"
	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
	"github.com/okcomputer/dividend-dashboard-backend/internal/config"
	"github.com/okcomputer/dividend-dashboard-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	cat *catalog.Catalog,
	portfolioService *service.PortfolioService,
	timeSeriesService *service.TimeSeriesService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(cat)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			performanceHandler := handlers.NewPerformanceHandler(timeSeriesService)
			r.Get("/", portfolioHandler.Portfolio)
			r.Get("/performance", performanceHandler.Performance)
		})

		r.Route("/stocks", func(r chi.Router) {
			stocksHandler := handlers.NewStocksHandler(cat)
			r.Get("/", stocksHandler.Stocks)
		})
	})

	return r
}
