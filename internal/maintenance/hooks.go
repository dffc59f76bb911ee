package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/albapepper/pitchzone/internal/config"
	"github.com/albapepper/pitchzone/internal/db"
)

// AnalyzeTables refreshes planner statistics after an import replaced large
// parts of the pitch table. Call this after a successful `pitchctl import`.
func AnalyzeTables(ctx context.Context, pool db.Execer, logger *slog.Logger) error {
	tables := []string{
		config.PlayersTable,
		config.PitchesTable,
		config.SeasonStatsTable,
	}

	for _, t := range tables {
		start := time.Now()
		_, err := pool.Exec(ctx, fmt.Sprintf("ANALYZE %s", t))
		dur := time.Since(start).Round(time.Millisecond)

		if err != nil {
			logger.Warn("Failed to analyze table", "table", t, "duration", dur, "error", err)
			return fmt.Errorf("analyze %s: %w", t, err)
		}
		logger.Info("Analyzed table", "table", t, "duration", dur)
	}
	return nil
}
