package pgstore

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
)

func ptr[T any](v T) *T { return &v }

func TestRoster(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("roster").WillReturnRows(
		pgxmock.NewRows([]string{"id", "name", "team", "number", "img"}).
			AddRow("p1", "One", "PIT", "30", "/p1.png").
			AddRow("p2", "Two", "NYY", "45", ""),
	)

	players, err := New(mock).Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, provider.FlexString("p2"), players[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPitchLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cols := []string{"plate_x", "plate_z", "description", "events", "pitch_type",
		"inning", "game_date", "batter", "release_speed", "pitch_name"}
	mock.ExpectQuery("pitch_log").WithArgs("p1", 2024).WillReturnRows(
		pgxmock.NewRows(cols).
			AddRow(ptr(0.1), ptr(2.0), ptr("ball"), (*string)(nil), ptr("FF"),
				ptr(int32(3)), ptr("2024-04-01"), ptr(int64(663728)), ptr(95.2), ptr("4-Seam Fastball")).
			AddRow((*float64)(nil), ptr(2.0), (*string)(nil), (*string)(nil), (*string)(nil),
				(*int32)(nil), (*string)(nil), (*int64)(nil), (*float64)(nil), (*string)(nil)),
	)

	rows, err := New(mock).PitchLog(context.Background(), "p1", 2024)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0.1, rows[0][pitch.ColPlateX])
	assert.Equal(t, int64(3), rows[0][pitch.ColInning])
	assert.Equal(t, "663728", rows[0][pitch.ColBatter])
	assert.Nil(t, rows[1][pitch.ColPlateX])

	recs := pitch.Normalize(rows)
	require.Len(t, recs, 1, "NULL coordinates are dropped by the normalizer")
	assert.Equal(t, pitch.Ball, recs[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPitchLogEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("pitch_log").WithArgs("p9", 2024).
		WillReturnRows(pgxmock.NewRows([]string{"plate_x"}))

	_, err = New(mock).PitchLog(context.Background(), "p9", 2024)
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestSeasonStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("season_stats").WithArgs("p1", 2024).WillReturnRows(
		pgxmock.NewRows([]string{"w", "l", "era", "ip", "war"}).
			AddRow("11", "3", "1.96", "133.0", "5.9"),
	)
	mock.ExpectQuery("season_stats").WithArgs("p2", 2024).WillReturnError(pgx.ErrNoRows)

	store := New(mock)
	line, err := store.SeasonStats(context.Background(), "p1", 2024)
	require.NoError(t, err)
	assert.Equal(t, "1.96", line.ERA)
	assert.Equal(t, 2024, line.Season)

	_, err = store.SeasonStats(context.Background(), "p2", 2024)
	assert.ErrorIs(t, err, provider.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
