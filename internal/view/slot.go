// Package view owns the per-session presentation state: the filter of every
// slot, the player and dataset loaded into each loadable slot, the active
// mode and layout, and the one inspected pitch shared by all views.
//
// A Session processes operations one at a time; each runs to completion
// under the session lock before the next starts. Data loads are the only
// asynchronous step. Every load is tagged with the slot's sequence number
// at the time it was started and is dropped on arrival if the slot has moved
// on.
package view

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the top-level presentation mode.
type Mode string

const (
	ModeDashboard  Mode = "dashboard"
	ModeComparison Mode = "comparison"
)

// Layout is the dashboard sub-mode.
type Layout string

const (
	LayoutSingle Layout = "single"
	LayoutMulti  Layout = "multi"
)

// Slot identifies one independently owned presentation context.
type Slot string

const (
	Primary Slot = "primary"
	Left    Slot = "left"
	Right   Slot = "right"
	Multi0  Slot = "multi0"
	Multi1  Slot = "multi1"
	Multi2  Slot = "multi2"
	Multi3  Slot = "multi3"
)

// FilterSlots lists every slot that owns a FilterSpec.
var FilterSlots = []Slot{Primary, Left, Right, Multi0, Multi1, Multi2, Multi3}

// LoadSlots lists the slots that hold a player and dataset. Multi-view
// panels show the primary slot's dataset.
var LoadSlots = []Slot{Primary, Left, Right}

var (
	ErrUnknownSlot     = errors.New("unknown slot")
	ErrNotLoadable     = errors.New("slot does not hold a player")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrNoPitch         = errors.New("no such visible pitch")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrRosterLoading   = errors.New("roster not loaded yet")
)

// ParseSlot accepts a slot name, case-insensitively. "multiview0" and
// "multi-0" style aliases are accepted for the panels.
func ParseSlot(s string) (Slot, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("multiview", "multi", "-", "", "_", "").Replace(name)
	for _, slot := range FilterSlots {
		if string(slot) == name {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlot, s)
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDashboard, ModeComparison:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutSingle, LayoutMulti:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLayout, s)
}

// DataSlot is the loadable slot whose dataset s displays.
func (s Slot) DataSlot() Slot {
	switch s {
	case Left, Right:
		return s
	}
	return Primary
}

// Loadable reports whether a player can be selected into s.
func (s Slot) Loadable() bool {
	return s == Primary || s == Left || s == Right
}

// IsMulti reports whether s is one of the four multi-view panels.
func (s Slot) IsMulti() bool {
	switch s {
	case Multi0, Multi1, Multi2, Multi3:
		return true
	}
	return false
}

// Sizes are the plotting box edge lengths, in pixels, per kind of panel.
type Sizes struct {
	Dashboard  float64
	MultiView  float64
	Comparison float64
}

// DefaultSizes matches the dashboard box of the web client.
func DefaultSizes() Sizes {
	return Sizes{Dashboard: 300, MultiView: 200, Comparison: 250}
}

// For returns the box size a slot is drawn at.
func (z Sizes) For(s Slot) float64 {
	switch {
	case s.IsMulti():
		return z.MultiView
	case s == Left || s == Right:
		return z.Comparison
	}
	return z.Dashboard
}
