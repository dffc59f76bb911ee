// Package pgstore serves the roster, pitch logs and stat lines from
// Postgres. Queries run through the prepared statements registered by
// internal/db, so the Querier must come from db.New (or a mock of it).
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
)

// Querier is the subset of pgxpool.Pool the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the Postgres source.
type Store struct {
	db Querier
}

// New wraps a pool.
func New(db Querier) *Store {
	return &Store{db: db}
}

// Roster implements provider.Source.
func (s *Store) Roster(ctx context.Context) ([]provider.Player, error) {
	rows, err := s.db.Query(ctx, "roster")
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	defer rows.Close()

	var players []provider.Player
	for rows.Next() {
		var id, name, team, number, img string
		if err := rows.Scan(&id, &name, &team, &number, &img); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, provider.Player{
			ID:     provider.FlexString(id),
			Name:   name,
			Team:   team,
			Number: provider.FlexString(number),
			Img:    img,
		})
	}
	return players, rows.Err()
}

// PitchLog implements provider.Source. Rows come back in stored order with
// NULL coordinates intact; excluding them is the normalizer's job.
func (s *Store) PitchLog(ctx context.Context, playerID string, season int) ([]pitch.Row, error) {
	rows, err := s.db.Query(ctx, "pitch_log", playerID, season)
	if err != nil {
		return nil, fmt.Errorf("query pitch log %s/%d: %w", playerID, season, err)
	}
	defer rows.Close()

	var out []pitch.Row
	for rows.Next() {
		var (
			plateX, plateZ, speed                        *float64
			desc, events, pitchType, gameDate, pitchName *string
			inning                                       *int32
			batter                                       *int64
		)
		if err := rows.Scan(
			&plateX, &plateZ, &desc, &events, &pitchType,
			&inning, &gameDate, &batter, &speed, &pitchName,
		); err != nil {
			return nil, fmt.Errorf("scan pitch: %w", err)
		}
		row := pitch.Row{
			pitch.ColPlateX:       floatOrNil(plateX),
			pitch.ColPlateZ:       floatOrNil(plateZ),
			pitch.ColDescription:  stringOrNil(desc),
			pitch.ColEvents:       stringOrNil(events),
			pitch.ColPitchType:    stringOrNil(pitchType),
			pitch.ColGameDate:     stringOrNil(gameDate),
			pitch.ColReleaseSpeed: floatOrNil(speed),
			pitch.ColPitchName:    stringOrNil(pitchName),
		}
		if inning != nil {
			row[pitch.ColInning] = int64(*inning)
		}
		if batter != nil {
			row[pitch.ColBatter] = strconv.FormatInt(*batter, 10)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("pitch log %s/%d: %w", playerID, season, provider.ErrNotFound)
	}
	return out, nil
}

// SeasonStats implements provider.Source.
func (s *Store) SeasonStats(ctx context.Context, playerID string, season int) (*provider.StatLine, error) {
	line := provider.StatLine{PlayerID: playerID, Season: season}
	err := s.db.QueryRow(ctx, "season_stats", playerID, season).Scan(
		&line.W, &line.L, &line.ERA, &line.IP, &line.WAR,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stats %s/%d: %w", playerID, season, provider.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query stats %s/%d: %w", playerID, season, err)
	}
	return &line, nil
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringOrNil(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
