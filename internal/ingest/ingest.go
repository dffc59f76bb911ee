package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/pitchzone/internal/provider"
)

// DefaultWorkers bounds concurrent per-player imports.
const DefaultWorkers = 4

// Import copies the roster and every player's season from src into the
// database. Per-player failures are recorded in the result and do not stop
// the run; a roster failure does.
func Import(ctx context.Context, db DB, src provider.Source, season, workers int, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	result := &Result{}

	roster, err := src.Roster(ctx)
	if err != nil {
		return result, err
	}
	for i, p := range roster {
		if err := UpsertPlayer(ctx, db, p, i); err != nil {
			result.AddErrorf("player %s: %v", p.ID, err)
			continue
		}
		result.PlayersUpserted++
	}
	logger.Info("Roster imported", "players", result.PlayersUpserted)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range roster {
		id := string(p.ID)
		g.Go(func() error {
			importPlayer(gctx, db, src, id, season, result, logger)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

func importPlayer(ctx context.Context, db DB, src provider.Source, playerID string, season int, result *Result, logger *slog.Logger) {
	start := time.Now()

	rows, err := src.PitchLog(ctx, playerID, season)
	switch {
	case errors.Is(err, provider.ErrNotFound):
		logger.Warn("No pitch log", "player_id", playerID, "season", season)
	case err != nil:
		result.AddErrorf("pitch log %s/%d: %v", playerID, season, err)
	default:
		copied, err := ReplacePitchLog(ctx, db, playerID, season, rows)
		if err != nil {
			result.AddErrorf("pitch log %s/%d: %v", playerID, season, err)
		} else {
			result.AddPitchLog(copied)
		}
	}

	line, err := src.SeasonStats(ctx, playerID, season)
	switch {
	case errors.Is(err, provider.ErrNotFound):
		result.AddStatLine(false)
	case err != nil:
		result.AddErrorf("stats %s/%d: %v", playerID, season, err)
	default:
		line.PlayerID, line.Season = playerID, season
		if err := UpsertStatLine(ctx, db, line); err != nil {
			result.AddErrorf("stats %s/%d: %v", playerID, season, err)
		} else {
			result.AddStatLine(true)
		}
	}

	logger.Debug("Player imported", "player_id", playerID, "season", season, "duration", time.Since(start))
}
