// Package provider defines the canonical shapes every pitch data source
// normalizes into, and the Source contract the loader consumes. Sources are
// read-only: the engine never writes back.
//
// Adding a new source means implementing Source. The loader, the view layer
// and the HTTP surface never change.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/albapepper/pitchzone/internal/pitch"
)

// ErrNotFound is returned when a source has no such resource (missing file,
// 404, no rows).
var ErrNotFound = errors.New("resource not found")

// Source is the external collaborator that supplies the roster, per-player
// pitch logs and per-player season stat lines.
type Source interface {
	Roster(ctx context.Context) ([]Player, error)
	PitchLog(ctx context.Context, playerID string, season int) ([]pitch.Row, error)
	SeasonStats(ctx context.Context, playerID string, season int) (*StatLine, error)
}

// Player is one roster entry. The roster is loaded once and never mutated.
type Player struct {
	ID     FlexString `json:"id"`
	Name   string     `json:"name"`
	Team   string     `json:"team"`
	Number FlexString `json:"number"`
	Img    string     `json:"img"`
}

// StatLine is a player's aggregate season line. Values are kept as the source
// formats them ("180.1" innings pitched is not a decimal).
type StatLine struct {
	PlayerID string `json:"player_id"`
	Season   int    `json:"season"`
	W        string `json:"W"`
	L        string `json:"L"`
	ERA      string `json:"ERA"`
	IP       string `json:"IP"`
	WAR      string `json:"WAR"`
}

// FindPlayer returns the roster entry with the given id.
func FindPlayer(roster []Player, id string) (Player, bool) {
	for _, p := range roster {
		if string(p.ID) == id {
			return p, true
		}
	}
	return Player{}, false
}

// FlexString accepts either a JSON string or a JSON number. Roster files
// carry ids and jersey numbers in both forms.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*s = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*s = FlexString(n.String())
	return nil
}
