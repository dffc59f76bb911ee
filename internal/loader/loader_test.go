package loader

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
	"github.com/albapepper/pitchzone/internal/provider/file"
)

func scenarioFS() fstest.MapFS {
	return fstest.MapFS{
		"players.json": {Data: []byte(`[
			{"id":"p1","name":"One","team":"PIT","number":30,"img":"/p1.png"},
			{"id":"p2","name":"Two","team":"NYY","number":45,"img":"/p2.png"}
		]`)},
		"p1_2024.csv": {Data: []byte("plate_x,plate_z,description\n" +
			"0.1,2.0,ball\n" +
			"-2.0,2.0,ball\n" +
			",2.0,\n")},
		"p2_2024.csv":       {Data: []byte("plate_x,plate_z,description\n,2.0,ball\n")},
		"p1_2024_stats.csv": {Data: []byte("W,L,ERA,IP,WAR\n11,3,1.96,133.0,5.9\n")},
	}
}

func TestEndToEndBallFilter(t *testing.T) {
	o := New(file.NewFS(scenarioFS()), 2024, 0, nil)
	ctx := context.Background()

	roster, err := o.Roster(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)

	ds, err := o.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Dropped)
	require.NotNil(t, ds.Stats)
	assert.Equal(t, "11", ds.Stats.W)

	spec := pitch.FilterSpec{OutcomeType: "Ball", Detail: pitch.All, PitchType: pitch.All, Inning: pitch.All}
	got := pitch.Apply(ds.Pitches, spec)
	require.Len(t, got, 2)
	assert.Equal(t, 0.1, got[0].PlateX)
	assert.Equal(t, -2.0, got[1].PlateX, "outside the window is still included")
	for _, r := range got {
		assert.Equal(t, pitch.Ball, r.Category)
	}
}

func TestLoadWithoutStats(t *testing.T) {
	fsys := scenarioFS()
	delete(fsys, "p1_2024_stats.csv")

	ds, err := New(file.NewFS(fsys), 2024, 0, nil).Load(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, ds.Stats)
	assert.Len(t, ds.Pitches, 2)
}

func TestLoadUnavailable(t *testing.T) {
	o := New(file.NewFS(scenarioFS()), 2024, 0, nil)
	ctx := context.Background()

	_, err := o.Load(ctx, "p3")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = o.Load(ctx, "p2")
	assert.ErrorIs(t, err, ErrUnavailable, "a log with no plottable rows is no data")
}

type failingSource struct{ provider.Source }

func (failingSource) Roster(context.Context) ([]provider.Player, error) {
	return nil, errors.New("connection refused")
}

func TestRosterUnavailable(t *testing.T) {
	_, err := New(failingSource{}, 2024, 0, nil).Roster(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = New(file.NewFS(fstest.MapFS{"players.json": {Data: []byte("[]")}}), 2024, 0, nil).
		Roster(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
