package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Simulation SimulationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SimulationConfig holds every knob of the portfolio simulation. All of these
// are host-overridable; none is hardcoded in the simulation itself.
type SimulationConfig struct {
	// TickInterval is the cadence of the simulation clock. The scheduler's
	// resolution is one second; sub-second values are coerced upward.
	TickInterval time.Duration

	// PriceMoveRange is the total width of the per-tick price perturbation.
	// 0.02 means each tick multiplies a price by a factor in [0.99, 1.01).
	PriceMoveRange float64

	// DailyChangeRange is the total width of the per-holding daily-change
	// draw. 0.05 means each holding contributes a delta in [-2.5%, 2.5%).
	DailyChangeRange float64

	// Selection policy for building the portfolio from the catalog.
	MinConfidence int
	MinYield      float64
	MaxHoldings   int

	// SeriesWindowDays is the trailing window of the generated time series,
	// excluding today (30 yields 31 points).
	SeriesWindowDays int

	// Seed seeds the random source. 0 means seed from the wall clock.
	Seed int64

	// Static risk figures displayed alongside computed metrics.
	RiskSharpeRatio   float64
	RiskBeta          float64
	RiskMaxDrawdown   float64
	RiskValueAtRisk95 float64
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	sim := SimulationConfig{
		RiskSharpeRatio:   1.34,
		RiskBeta:          0.78,
		RiskMaxDrawdown:   -8.2,
		RiskValueAtRisk95: -2.1,
	}

	var err error
	if sim.TickInterval, err = getEnvDuration("SIM_TICK_INTERVAL", 15*time.Second); err != nil {
		return nil, err
	}
	if sim.PriceMoveRange, err = getEnvFloat("SIM_PRICE_MOVE_RANGE", 0.02); err != nil {
		return nil, err
	}
	if sim.DailyChangeRange, err = getEnvFloat("SIM_DAILY_CHANGE_RANGE", 0.05); err != nil {
		return nil, err
	}
	if sim.MinConfidence, err = getEnvInt("SIM_MIN_CONFIDENCE", 80); err != nil {
		return nil, err
	}
	if sim.MinYield, err = getEnvFloat("SIM_MIN_YIELD", 3.0); err != nil {
		return nil, err
	}
	if sim.MaxHoldings, err = getEnvInt("SIM_MAX_HOLDINGS", 15); err != nil {
		return nil, err
	}
	if sim.SeriesWindowDays, err = getEnvInt("SERIES_WINDOW_DAYS", 30); err != nil {
		return nil, err
	}
	seed, err := getEnvInt("SIM_SEED", 0)
	if err != nil {
		return nil, err
	}
	sim.Seed = int64(seed)
	config.Simulation = sim

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
