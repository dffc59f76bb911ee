package view

import (
	"fmt"

	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
	"github.com/albapepper/pitchzone/internal/zone"
)

// Point is one plotted pitch.
type Point struct {
	Index    int          `json:"index"`
	Position zone.Point   `json:"position"`
	Color    string       `json:"color"`
	Hover    string       `json:"hover"`
	Record   pitch.Record `json:"record"`
}

// Panel is everything a renderer needs to draw one slot.
type Panel struct {
	Slot          Slot               `json:"slot"`
	Player        *provider.Player   `json:"player,omitempty"`
	DataPlayerID  string             `json:"data_player_id,omitempty"`
	Status        Status             `json:"status"`
	Error         string             `json:"error,omitempty"`
	Filter        pitch.FilterSpec   `json:"filter"`
	Geometry      zone.Geometry      `json:"geometry"`
	Gridlines     []zone.Line        `json:"gridlines"`
	Stats         *provider.StatLine `json:"stats,omitempty"`
	Total         int                `json:"total"`
	Points        []Point            `json:"points"`
	PitchTypes    []string           `json:"pitch_type_options"`
	InningOptions []string           `json:"inning_options"`
}

// Panel filters and projects a slot's dataset at the slot's box size.
func (s *Session) Panel(slot Slot) (*Panel, error) {
	slot, err := ParseSlot(string(slot))
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	st := s.slots[slot.DataSlot()]
	geom := zone.ForBox(s.sizes.For(slot))
	p := &Panel{
		Slot:          slot,
		Status:        st.status,
		Error:         st.err,
		Filter:        s.filters[slot],
		Geometry:      geom,
		Gridlines:     geom.Gridlines(),
		PitchTypes:    []string{pitch.All},
		InningOptions: pitch.InningOptions(),
		Points:        []Point{},
	}
	if st.player != nil {
		cp := *st.player
		p.Player = &cp
	}
	if st.data == nil {
		return p, nil
	}

	p.DataPlayerID = st.data.PlayerID
	p.Stats = st.data.Stats
	p.Total = len(st.data.Pitches)
	p.PitchTypes = append(p.PitchTypes, st.data.PitchTypes...)

	visible := pitch.Apply(st.data.Pitches, s.filters[slot])
	p.Points = make([]Point, len(visible))
	for i, rec := range visible {
		p.Points[i] = Point{
			Index:    i,
			Position: geom.Project(rec.PlateX, rec.PlateZ),
			Color:    rec.Category.Color(),
			Hover:    rec.HoverText(),
			Record:   rec,
		}
	}
	return p, nil
}

// SlotState summarizes one slot for State.
type SlotState struct {
	PlayerID     string           `json:"player_id,omitempty"`
	DataPlayerID string           `json:"data_player_id,omitempty"`
	Status       Status           `json:"status,omitempty"`
	Filter       pitch.FilterSpec `json:"filter"`
}

// State is a point-in-time copy of the whole session.
type State struct {
	ID        string             `json:"id"`
	Mode      Mode               `json:"mode"`
	Layout    Layout             `json:"layout"`
	Slots     map[Slot]SlotState `json:"slots"`
	Inspected *InspectedDetail   `json:"inspected,omitempty"`
}

// InspectedDetail is the inspected pitch as shown in the detail panel.
type InspectedDetail struct {
	Slot   Slot         `json:"slot"`
	Detail pitch.Detail `json:"detail"`
}

// State returns a snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ID:     s.id,
		Mode:   s.mode,
		Layout: s.layout,
		Slots:  make(map[Slot]SlotState, len(FilterSlots)),
	}
	for _, slot := range FilterSlots {
		ss := SlotState{Filter: s.filters[slot]}
		if slot.Loadable() {
			data := s.slots[slot]
			ss.Status = data.status
			if data.player != nil {
				ss.PlayerID = string(data.player.ID)
			}
			if data.data != nil {
				ss.DataPlayerID = data.data.PlayerID
			}
		}
		st.Slots[slot] = ss
	}
	if s.inspected != nil {
		st.Inspected = &InspectedDetail{Slot: s.inspected.Slot, Detail: s.inspected.Record.Detail()}
	}
	return st
}

// String is a short description for logs.
func (st State) String() string {
	return fmt.Sprintf("session=%s mode=%s layout=%s", st.ID, st.Mode, st.Layout)
}
