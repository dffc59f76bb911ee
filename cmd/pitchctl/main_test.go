package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider/file"
)

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		file.RosterFile: `[{"id": "p1", "name": "Ace", "team": "PIT", "number": 30}]`,
		file.PitchLogName("p1", 2024): "plate_x,plate_z,description,events,pitch_type,inning\n" +
			"0.1,2.0,ball,,FF,1\n" +
			"-2.0,2.0,ball,,SL,1\n" +
			",2.0,ball,,FF,2\n" +
			"0.3,2.5,swinging_strike,strikeout,SL,2\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "classify", "--dir", dir, "--player", "p1", "--outcome", "Ball", "--list")
	require.NoError(t, err)
	assert.Regexp(t, `pitches\s+3`, out)
	assert.Regexp(t, `dropped\s+1`, out)
	assert.Regexp(t, `Ball\s+2`, out)
	assert.Regexp(t, `Strikeout\s+1`, out)
	assert.Regexp(t, `matching\s+2`, out)
	assert.Contains(t, out, "-2.00")
}

func TestClassifyRejectsBadFilter(t *testing.T) {
	dir := writeDataDir(t)
	_, err := run(t, "classify", "--dir", dir, "--player", "p1", "--detail", "Bunt")
	assert.ErrorIs(t, err, pitch.ErrInvalidValue)
}

func TestClassifyMissingPlayer(t *testing.T) {
	dir := writeDataDir(t)
	_, err := run(t, "classify", "--dir", dir, "--player", "nobody")
	assert.Error(t, err)
}

func TestZoneCommand(t *testing.T) {
	out, err := run(t, "zone", "--size", "300", "0", "2.5")
	require.NoError(t, err)
	assert.Contains(t, out, "left=67.00 top=50.00 width=166.00 height=200.00")
	assert.Contains(t, out, "(150.00, 150.00) in_window=true")

	_, err = run(t, "zone", "0.5")
	assert.Error(t, err)
	_, err = run(t, "zone", "--size", "0")
	assert.Error(t, err)
}

func TestImportNeedsSource(t *testing.T) {
	_, err := run(t, "import")
	assert.Error(t, err)
}
