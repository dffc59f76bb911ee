package file

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pitchzone/internal/provider"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"players.json":      {Data: []byte(`[{"id":"p1","name":"One","team":"PIT","number":30,"img":"/p1.png"}]`)},
		"p1_2024.csv":       {Data: []byte("plate_x,plate_z,description\n0.1,2.0,ball\n")},
		"p1_2024_stats.csv": {Data: []byte("W,L,ERA,IP,WAR\n11,3,1.96,133.0,5.9\n")},
		"bad.json":          {Data: []byte("{")},
	}
}

func TestSource(t *testing.T) {
	ctx := context.Background()
	src := NewFS(testFS())

	roster, err := src.Roster(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "One", roster[0].Name)

	rows, err := src.PitchLog(ctx, "p1", 2024)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ball", rows[0]["description"])

	line, err := src.SeasonStats(ctx, "p1", 2024)
	require.NoError(t, err)
	assert.Equal(t, "p1", line.PlayerID)
	assert.Equal(t, 2024, line.Season)
	assert.Equal(t, "1.96", line.ERA)
}

func TestSourceMissingFiles(t *testing.T) {
	ctx := context.Background()
	src := NewFS(testFS())

	_, err := src.PitchLog(ctx, "p2", 2024)
	assert.ErrorIs(t, err, provider.ErrNotFound)
	_, err = src.SeasonStats(ctx, "p1", 2023)
	assert.ErrorIs(t, err, provider.ErrNotFound)

	_, err = NewFS(fstest.MapFS{}).Roster(ctx)
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "p1_2024.csv", PitchLogName("p1", 2024))
	assert.Equal(t, "p1_2024_stats.csv", StatsName("p1", 2024))
}
