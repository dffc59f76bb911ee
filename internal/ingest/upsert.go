package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/pitchzone/internal/config"
	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
)

// NotifyChannel is the Postgres channel a replaced pitch log is announced
// on. The payload is a JSON PitchLogEvent.
const NotifyChannel = "pitch_log_replaced"

// PitchLogEvent announces that a player's season log was replaced.
type PitchLogEvent struct {
	PlayerID string `json:"player_id"`
	Season   int    `json:"season"`
	Pitches  int64  `json:"pitches"`
}

// DB is the subset of pgxpool.Pool the importer needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PitchColumns is the COPY column order for the pitches table.
var PitchColumns = []string{
	"player_id", "season", "seq",
	"plate_x", "plate_z", "description", "events", "pitch_type",
	"inning", "game_date", "batter", "release_speed", "pitch_name",
}

// UpsertPlayer writes a roster entry. order keeps the roster sequence of the
// source file.
func UpsertPlayer(ctx context.Context, db DB, player provider.Player, order int) error {
	_, err := db.Exec(ctx, `
		INSERT INTO `+config.PlayersTable+` (id, name, team, number, img, sort_order)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			team = EXCLUDED.team,
			number = EXCLUDED.number,
			img = EXCLUDED.img,
			sort_order = EXCLUDED.sort_order,
			updated_at = NOW()`,
		string(player.ID), player.Name, player.Team, string(player.Number), player.Img, order,
	)
	return err
}

// ReplacePitchLog swaps a player's season log for rows in one transaction
// and announces the change on NotifyChannel.
// Rows keep their source order in seq. Rows without coordinates are stored
// as-is.
func ReplacePitchLog(ctx context.Context, db DB, playerID string, season int, rows []pitch.Row) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx,
		`DELETE FROM `+config.PitchesTable+` WHERE player_id = $1 AND season = $2`,
		playerID, season,
	); err != nil {
		return 0, fmt.Errorf("delete old log: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{config.PitchesTable},
		PitchColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return pitchValues(playerID, season, i, rows[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy pitches: %w", err)
	}

	// Delivered to listeners only if the transaction commits.
	payload, _ := json.Marshal(PitchLogEvent{PlayerID: playerID, Season: season, Pitches: copied})
	if _, err := tx.Exec(ctx, "SELECT pg_notify($1, $2)", NotifyChannel, string(payload)); err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return copied, nil
}

// UpsertStatLine writes a season stat line. Empty cells become NULL.
func UpsertStatLine(ctx context.Context, db DB, line *provider.StatLine) error {
	_, err := db.Exec(ctx, `
		INSERT INTO `+config.SeasonStatsTable+` (player_id, season, w, l, era, ip, war)
		VALUES ($1, $2,
			NULLIF($3, '')::integer, NULLIF($4, '')::integer,
			NULLIF($5, '')::numeric, NULLIF($6, '')::numeric, NULLIF($7, '')::numeric)
		ON CONFLICT (player_id, season) DO UPDATE SET
			w = EXCLUDED.w,
			l = EXCLUDED.l,
			era = EXCLUDED.era,
			ip = EXCLUDED.ip,
			war = EXCLUDED.war,
			updated_at = NOW()`,
		line.PlayerID, line.Season, line.W, line.L, line.ERA, line.IP, line.WAR,
	)
	return err
}

// pitchValues converts a loosely typed row into typed COPY values.
func pitchValues(playerID string, season, seq int, row pitch.Row) []any {
	return []any{
		playerID, int32(season), int32(seq),
		floatOrNil(row[pitch.ColPlateX]),
		floatOrNil(row[pitch.ColPlateZ]),
		textOrNil(row[pitch.ColDescription]),
		textOrNil(row[pitch.ColEvents]),
		textOrNil(row[pitch.ColPitchType]),
		inningOrNil(row[pitch.ColInning]),
		dateOrNil(row[pitch.ColGameDate]),
		batterOrNil(row[pitch.ColBatter]),
		floatOrNil(row[pitch.ColReleaseSpeed]),
		textOrNil(row[pitch.ColPitchName]),
	}
}

func floatOrNil(v interface{}) *float64 {
	f, ok := pitch.Numeric(v)
	if !ok {
		return nil
	}
	return &f
}

func textOrNil(v interface{}) *string {
	s := pitch.Text(v)
	if s == "" {
		return nil
	}
	return &s
}

func inningOrNil(v interface{}) *int32 {
	f, ok := pitch.Numeric(v)
	if !ok || f < 1 {
		return nil
	}
	n := int32(f)
	return &n
}

func batterOrNil(v interface{}) *int64 {
	f, ok := pitch.Numeric(v)
	if !ok {
		return nil
	}
	n := int64(f)
	return &n
}

func dateOrNil(v interface{}) *time.Time {
	s := pitch.Text(v)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &t
}
