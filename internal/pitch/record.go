// Package pitch holds the pitch-by-pitch record model and the pure functions
// that run over it: normalization of parsed rows, outcome classification and
// filter evaluation. Nothing in this package does I/O.
package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one loosely typed record as produced by a table parser. Keys are the
// source column names (plate_x, plate_z, description, ...). Values are nil,
// float64, int, int64 or string.
type Row map[string]interface{}

// Source column names.
const (
	ColPlateX       = "plate_x"
	ColPlateZ       = "plate_z"
	ColDescription  = "description"
	ColEvents       = "events"
	ColPitchType    = "pitch_type"
	ColInning       = "inning"
	ColGameDate     = "game_date"
	ColBatter       = "batter"
	ColReleaseSpeed = "release_speed"
	ColPitchName    = "pitch_name"
)

// Record is one pitched ball after normalization. Category is assigned once by
// Normalize and must not be changed afterwards.
type Record struct {
	PlateX       float64  `json:"plate_x"`
	PlateZ       float64  `json:"plate_z"`
	Description  string   `json:"description,omitempty"`
	Events       string   `json:"events,omitempty"`
	PitchType    string   `json:"pitch_type,omitempty"`
	Inning       int      `json:"inning,omitempty"` // 0 when absent
	GameDate     string   `json:"game_date,omitempty"`
	BatterID     string   `json:"batter,omitempty"`
	ReleaseSpeed *float64 `json:"release_speed,omitempty"`
	PitchName    string   `json:"pitch_name,omitempty"`
	Category     Category `json:"category"`
}

// InningText is the inning as filter-comparable text, empty when absent.
func (r Record) InningText() string {
	if r.Inning <= 0 {
		return ""
	}
	return strconv.Itoa(r.Inning)
}

// HoverText is the short multi-line label shown when pointing at a pitch.
func (r Record) HoverText() string {
	return fmt.Sprintf("Date: %s\nBatter: %s\nDesc: %s\nEvent: %s",
		r.GameDate, r.BatterID, r.Description, r.Events)
}

// Detail is the expanded description of an inspected pitch.
type Detail struct {
	GameDate    string  `json:"game_date"`
	BatterID    string  `json:"batter_id"`
	PitchInfo   string  `json:"pitch_info"`
	Description string  `json:"description"`
	Event       string  `json:"event,omitempty"`
	Category    string  `json:"category"`
	Inning      int     `json:"inning,omitempty"`
	PlateX      float64 `json:"plate_x"`
	PlateZ      float64 `json:"plate_z"`
}

// Detail builds the inspected-pitch panel content.
func (r Record) Detail() Detail {
	info := r.PitchName
	if r.ReleaseSpeed != nil {
		speed := strconv.FormatFloat(*r.ReleaseSpeed, 'f', -1, 64) + " mph"
		if info == "" {
			info = speed
		} else {
			info += ", " + speed
		}
	}
	return Detail{
		GameDate:    r.GameDate,
		BatterID:    r.BatterID,
		PitchInfo:   info,
		Description: r.Description,
		Event:       r.Events,
		Category:    string(r.Category),
		Inning:      r.Inning,
		PlateX:      r.PlateX,
		PlateZ:      r.PlateZ,
	}
}

// PitchTypes returns the distinct non-empty pitch type codes in first-seen order.
func PitchTypes(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		code := strings.TrimSpace(r.PitchType)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
