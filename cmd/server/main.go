package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okcomputer/dividend-dashboard-backend/internal/api"
	"github.com/okcomputer/dividend-dashboard-backend/internal/catalog"
	"github.com/okcomputer/dividend-dashboard-backend/internal/config"
	"github.com/okcomputer/dividend-dashboard-backend/internal/service"
	"github.com/okcomputer/dividend-dashboard-backend/internal/simulation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Seed the random source. All random draws in the system flow through
	// this single source; a non-zero SIM_SEED makes a run reproducible.
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Load the compiled-in catalog
	cat := catalog.Load()
	log.Printf("Loaded catalog: %d securities", cat.Len())

	// Create services
	metricsService := service.NewMetricsService(service.MetricsConfig{
		DailyChangeRange: cfg.Simulation.DailyChangeRange,
		SharpeRatio:      cfg.Simulation.RiskSharpeRatio,
		Beta:             cfg.Simulation.RiskBeta,
		MaxDrawdown:      cfg.Simulation.RiskMaxDrawdown,
		ValueAtRisk95:    cfg.Simulation.RiskValueAtRisk95,
	}, rng)
	builderService := service.NewBuilderService(cat, service.BuilderConfig{
		MinConfidence: cfg.Simulation.MinConfidence,
		MinYield:      cfg.Simulation.MinYield,
		MaxHoldings:   cfg.Simulation.MaxHoldings,
	}, metricsService, rng)

	// Build the session portfolio. An empty selection is a configuration
	// problem (thresholds too strict for the catalog), not a runtime fault.
	portfolio, err := builderService.Build()
	if err != nil {
		log.Fatalf("Failed to build portfolio, check selection thresholds: %v", err)
	}
	log.Printf("Built portfolio %s: %d holdings", portfolio.ID, len(portfolio.Holdings))

	portfolioService := service.NewPortfolioService(
		portfolio,
		metricsService,
		rng,
		cfg.Simulation.PriceMoveRange,
	)
	timeSeriesService := service.NewTimeSeriesService(
		cfg.Simulation.SeriesWindowDays,
		time.Now(),
		rng,
	)

	// Start the simulation clock
	clock := simulation.NewClock(cfg.Simulation.TickInterval, portfolioService)
	if err := clock.Start(); err != nil {
		log.Fatalf("Failed to start simulation clock: %v", err)
	}

	// Create router and HTTP server
	router := api.NewRouter(cat, portfolioService, timeSeriesService, cfg)
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Wait for interrupt signal, or for the listener to fail
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
		case <-ctx.Done():
		}

		log.Println("Shutting down...")

		// Stop the clock first: no further ticks fire, and an in-flight
		// tick completes before Stop returns.
		clock.Stop()

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
