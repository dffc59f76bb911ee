// Command pitchctl is the Pitch Zone maintenance CLI.
//
// Usage:
//
//	pitchctl migrate
//	pitchctl import --dir ./data --season 2024 --workers 4
//	pitchctl import --url https://cdn.example.com/pitches --season 2024
//	pitchctl classify --dir ./data --player 543037 --outcome Strike --detail Swing
//	pitchctl zone --size 300 0.25 2.8
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/config"
	"github.com/albapepper/pitchzone/internal/db"
	"github.com/albapepper/pitchzone/internal/ingest"
	"github.com/albapepper/pitchzone/internal/maintenance"
	"github.com/albapepper/pitchzone/internal/provider"
	"github.com/albapepper/pitchzone/internal/provider/file"
	"github.com/albapepper/pitchzone/internal/provider/remote"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pitchctl",
		Short:        "Pitch Zone data and inspection CLI",
		SilenceUsage: true,
	}
	root.AddCommand(migrateCmd())
	root.AddCommand(importCmd())
	root.AddCommand(classifyCmd())
	root.AddCommand(zoneCmd())
	return root
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the players, pitches and player_season_stats tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDB(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if err := db.Migrate(ctx, pool); err != nil {
					return err
				}
				logger.Info("Schema applied")
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// import command
// --------------------------------------------------------------------------

func importCmd() *cobra.Command {
	var (
		dir         string
		url         string
		season      int
		workers     int
		perMinute   int
		skipAnalyze bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a roster and player season files into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := importSource(dir, url, perMinute)
			if err != nil {
				return err
			}
			return runDB(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				result, err := ingest.Import(ctx, pool, src, season, workers, logger)
				if err != nil {
					return fmt.Errorf("import: %w", err)
				}
				logger.Info("Import finished",
					"season", season,
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("import error", "error", e)
				}
				if !skipAnalyze {
					return maintenance.AnalyzeTables(ctx, pool, logger)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Data directory (players.json, <id>_<season>.csv, <id>_<season>_stats.csv)")
	cmd.Flags().StringVar(&url, "url", "", "Base URL serving the same layout as --dir")
	cmd.Flags().IntVar(&season, "season", config.DefaultSeason, "Season year")
	cmd.Flags().IntVar(&workers, "workers", ingest.DefaultWorkers, "Concurrent player imports")
	cmd.Flags().IntVar(&perMinute, "requests-per-minute", 120, "Request budget for --url")
	cmd.Flags().BoolVar(&skipAnalyze, "skip-analyze", false, "Skip ANALYZE after the import")
	cmd.MarkFlagsMutuallyExclusive("dir", "url")
	cmd.MarkFlagsOneRequired("dir", "url")
	return cmd
}

func importSource(dir, url string, perMinute int) (provider.Source, error) {
	switch {
	case dir != "":
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("data directory: %w", err)
		}
		return file.New(dir), nil
	case url != "":
		return remote.NewClient(url, perMinute, cache.New(false), logger), nil
	}
	return nil, fmt.Errorf("one of --dir or --url is required")
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runDB handles config loading, DB connection, and context cancellation.
func runDB(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
