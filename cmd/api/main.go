// Command api is the Pitch Zone API server.
//
// Usage:
//
//	pitchzone-api
//	DATA_SOURCE=postgres DATABASE_URL=postgres://... pitchzone-api
//	API_PORT=8080 DATA_DIR=./data pitchzone-api

// @title Pitch Zone API
// @version 1.0.0
// @description Strike-zone pitch visualization sessions. Each session keeps per-panel filters, player selections and the inspected pitch; panels return classified pitches projected into plotting-box pixels.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Pitch Zone
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/pitchzone/internal/api"
	"github.com/albapepper/pitchzone/internal/api/handler"
	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/config"
	"github.com/albapepper/pitchzone/internal/db"
	"github.com/albapepper/pitchzone/internal/listener"
	"github.com/albapepper/pitchzone/internal/loader"
	"github.com/albapepper/pitchzone/internal/maintenance"
	"github.com/albapepper/pitchzone/internal/provider"
	"github.com/albapepper/pitchzone/internal/provider/file"
	"github.com/albapepper/pitchzone/internal/provider/pgstore"
	"github.com/albapepper/pitchzone/internal/provider/remote"
	"github.com/albapepper/pitchzone/internal/view"

	_ "github.com/albapepper/pitchzone/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Open the data source
	var pool *db.Pool
	var src provider.Source
	switch cfg.DataSource {
	case config.SourcePostgres:
		logger.Info("Connecting to database...")
		pool, err = db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
		src = pgstore.New(pool)

		// Drop cached responses when `pitchctl import` replaces a log
		go listener.Start(ctx, cfg.DatabaseURL, appCache, logger)
	case config.SourceHTTP:
		src = remote.NewClient(cfg.DataBaseURL, cfg.DataRequestsPerMinute, appCache, logger)
	default:
		src = file.New(cfg.DataDir)
	}
	logger.Info("Data source ready", "source", cfg.DataSource, "season", cfg.Season)

	orch := loader.New(src, cfg.Season, cfg.LoadTimeout, logger)

	// Roster loads in the background; the API reports ROSTER_LOADING until then
	roster := view.NewRosterHolder()
	go roster.Load(ctx, orch, logger)

	sizes := view.Sizes{
		Dashboard:  cfg.BoxSizeDashboard,
		MultiView:  cfg.BoxSizeMultiView,
		Comparison: cfg.BoxSizeComparison,
	}
	sessions := view.NewRegistry(roster, orch, sizes, logger)

	// Start maintenance tickers (session reaping, status)
	go maintenance.Start(ctx, sessions, appCache, maintenance.DefaultConfig(cfg.SessionIdle), logger)

	deps := handler.Deps{
		Sessions: sessions,
		Roster:   roster,
		Loader:   orch,
		Cache:    appCache,
		Config:   cfg,
	}
	if pool != nil {
		deps.DB = pool
	}

	// Create router
	router := api.NewRouter(deps, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.LoadTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Pitch Zone API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	sessions.CloseAll(shutdownCtx)
	logger.Info("Server stopped")
}
