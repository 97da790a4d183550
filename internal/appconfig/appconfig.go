package appconfig

import (
	"os"
	"strconv"
)

// Config holds every external address the service talks to. Components
// receive it at construction - nothing else reads env vars directly.
type Config struct {
	// APIBaseURL is the origin serving market data routes
	// (search, company-overview, historical-price).
	APIBaseURL string

	// BackendBaseURL is the backtest engine.
	BackendBaseURL string

	// RedisAddr backs wizard sessions. Optional - an in-memory store is
	// used when redis is unreachable.
	RedisAddr string

	// BasketsCSV optionally points at a CSV of extra market baskets.
	BasketsCSV string

	Port int
}

const (
	defaultAPIBaseURL     = "http://localhost:3000"
	defaultBackendBaseURL = "http://localhost:5001"
	defaultRedisAddr      = "localhost:6379"
	defaultPort           = 3009
)

func New() Config {
	cfg := Config{
		APIBaseURL:     envOr("API_URL", defaultAPIBaseURL),
		BackendBaseURL: envOr("BACKEND_URL", defaultBackendBaseURL),
		RedisAddr:      envOr("REDIS_ADDR", defaultRedisAddr),
		BasketsCSV:     os.Getenv("BASKETS_CSV"),
		Port:           defaultPort,
	}

	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		cfg.Port = p
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
