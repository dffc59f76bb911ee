// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/pitchctl.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Data sources the engine can read the roster and player seasons from.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// DefaultSeason is the season every player log is read for.
const DefaultSeason = 2024

// --------------------------------------------------------------------------
// Table names, matching schema.sql
// --------------------------------------------------------------------------

const (
	PlayersTable     = "players"
	PitchesTable     = "pitches"
	SeasonStatsTable = "player_season_stats"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Data source
	DataSource            string // file, http, postgres
	DataDir               string
	DataBaseURL           string
	DataRequestsPerMinute int
	Season                int
	LoadTimeout           time.Duration

	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Plotting box edge lengths in pixels
	BoxSizeDashboard  float64
	BoxSizeMultiView  float64
	BoxSizeComparison float64

	// Sessions
	SessionIdle time.Duration

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DataSource:            strings.ToLower(envOr("DATA_SOURCE", SourceFile)),
		DataDir:               envOr("DATA_DIR", "./data"),
		DataBaseURL:           strings.TrimRight(envOr("DATA_BASE_URL", ""), "/"),
		DataRequestsPerMinute: envInt("DATA_REQUESTS_PER_MINUTE", 120),
		Season:                envInt("SEASON", DefaultSeason),
		LoadTimeout:           time.Duration(envInt("LOAD_TIMEOUT_SECONDS", 30)) * time.Second,

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		BoxSizeDashboard:  envFloat("BOX_SIZE_DASHBOARD", 300),
		BoxSizeMultiView:  envFloat("BOX_SIZE_MULTIVIEW", 200),
		BoxSizeComparison: envFloat("BOX_SIZE_COMPARISON", 250),

		SessionIdle: time.Duration(envInt("SESSION_IDLE_MINUTES", 60)) * time.Minute,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DataSource {
	case SourceFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR must be set when DATA_SOURCE=%s", SourceFile)
		}
	case SourceHTTP:
		if c.DataBaseURL == "" {
			return fmt.Errorf("DATA_BASE_URL must be set when DATA_SOURCE=%s", SourceHTTP)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set when DATA_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of %s, %s, %s; got %q",
			SourceFile, SourceHTTP, SourcePostgres, c.DataSource)
	}
	for key, v := range map[string]float64{
		"BOX_SIZE_DASHBOARD":  c.BoxSizeDashboard,
		"BOX_SIZE_MULTIVIEW":  c.BoxSizeMultiView,
		"BOX_SIZE_COMPARISON": c.BoxSizeComparison,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", key, v)
		}
	}
	return nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesPostgres reports whether the API reads from the database.
func (c *Config) UsesPostgres() bool {
	return c.DataSource == SourcePostgres
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
