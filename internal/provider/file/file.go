// Package file reads the roster and per-player season files from a local
// directory laid out as:
//
//	players.json
//	<id>_<season>.csv
//	<id>_<season>_stats.csv
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
)

// RosterFile is the roster file name inside the data directory.
const RosterFile = "players.json"

// PitchLogName is the file name of a player's season pitch log.
func PitchLogName(playerID string, season int) string {
	return fmt.Sprintf("%s_%d.csv", playerID, season)
}

// StatsName is the file name of a player's season stat line.
func StatsName(playerID string, season int) string {
	return fmt.Sprintf("%s_%d_stats.csv", playerID, season)
}

// Source serves files out of an fs.FS, normally os.DirFS(dir).
type Source struct {
	fsys fs.FS
}

// New returns a Source rooted at dir.
func New(dir string) *Source {
	return &Source{fsys: os.DirFS(dir)}
}

// NewFS returns a Source over an arbitrary file system.
func NewFS(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Roster implements provider.Source.
func (s *Source) Roster(ctx context.Context) ([]provider.Player, error) {
	data, err := s.read(RosterFile)
	if err != nil {
		return nil, err
	}
	var players []provider.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("decode %s: %w", RosterFile, err)
	}
	return players, nil
}

// PitchLog implements provider.Source.
func (s *Source) PitchLog(ctx context.Context, playerID string, season int) ([]pitch.Row, error) {
	f, err := s.open(PitchLogName(playerID, season))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := provider.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", PitchLogName(playerID, season), err)
	}
	return rows, nil
}

// SeasonStats implements provider.Source.
func (s *Source) SeasonStats(ctx context.Context, playerID string, season int) (*provider.StatLine, error) {
	f, err := s.open(StatsName(playerID, season))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	line, err := provider.ReadStatLine(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", StatsName(playerID, season), err)
	}
	line.PlayerID = playerID
	line.Season = season
	return line, nil
}

func (s *Source) open(name string) (fs.File, error) {
	f, err := s.fsys.Open(filepath.ToSlash(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, provider.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

func (s *Source) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, provider.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
