// Package loader fetches a player's season pitch log and stat line from a
// provider.Source and turns them into an immutable Dataset.
//
// The pitch log is required; without it the load fails with ErrUnavailable.
// The stat line is optional: a missing or failing stats resource is logged
// and the Dataset carries a nil Stats.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
)

// ErrUnavailable means the resource could not be fetched or had no usable
// records. The slot that asked for it shows no data.
var ErrUnavailable = errors.New("resource unavailable")

const defaultTimeout = 30 * time.Second

// Dataset is one player's normalized season data. It is never mutated after
// Load returns and may be shared read-only between slots.
type Dataset struct {
	PlayerID   string             `json:"player_id"`
	Season     int                `json:"season"`
	Pitches    []pitch.Record     `json:"pitches"`
	Stats      *provider.StatLine `json:"stats,omitempty"`
	PitchTypes []string           `json:"pitch_types"`
	Dropped    int                `json:"dropped"`
	LoadedAt   time.Time          `json:"loaded_at"`
}

// Orchestrator loads datasets for one season.
type Orchestrator struct {
	src     provider.Source
	season  int
	timeout time.Duration
	logger  *slog.Logger
}

// New creates an orchestrator. A zero timeout uses the default.
func New(src provider.Source, season int, timeout time.Duration, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Orchestrator{src: src, season: season, timeout: timeout, logger: logger}
}

// Season is the season tag every load is keyed by.
func (o *Orchestrator) Season() int {
	return o.season
}

// Roster loads the player list.
func (o *Orchestrator) Roster(ctx context.Context) ([]provider.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	players, err := o.src.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("roster: %w: %v", ErrUnavailable, err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("roster: %w: empty", ErrUnavailable)
	}
	return players, nil
}

// Load fetches the pitch log and stat line concurrently and normalizes the
// log.
func (o *Orchestrator) Load(ctx context.Context, playerID string) (*Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	var (
		rows  []pitch.Row
		stats *provider.StatLine
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = o.src.PitchLog(gctx, playerID, o.season)
		return err
	})
	g.Go(func() error {
		line, err := o.src.SeasonStats(gctx, playerID, o.season)
		if err != nil {
			// Stats never block pitch data.
			o.logger.Warn("Season stats unavailable",
				"player_id", playerID, "season", o.season, "error", err)
			return nil
		}
		stats = line
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pitch log %s/%d: %w: %v", playerID, o.season, ErrUnavailable, err)
	}

	records := pitch.Normalize(rows)
	if len(records) == 0 {
		return nil, fmt.Errorf("pitch log %s/%d: %w: no plottable pitches", playerID, o.season, ErrUnavailable)
	}

	ds := &Dataset{
		PlayerID:   playerID,
		Season:     o.season,
		Pitches:    records,
		Stats:      stats,
		PitchTypes: pitch.PitchTypes(records),
		Dropped:    len(rows) - len(records),
		LoadedAt:   time.Now().UTC(),
	}
	o.logger.Info("Player season loaded",
		"player_id", playerID,
		"season", o.season,
		"pitches", len(records),
		"dropped", ds.Dropped,
		"stats", stats != nil,
		"duration", time.Since(start).Round(time.Millisecond))
	return ds, nil
}
