package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/albapepper/pitchzone/internal/loader"
	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
)

// Loader produces a player's dataset. *loader.Orchestrator implements it.
type Loader interface {
	Load(ctx context.Context, playerID string) (*loader.Dataset, error)
}

// Status is the data state of a loadable slot.
type Status string

const (
	StatusEmpty       Status = "empty"
	StatusLoading     Status = "loading"
	StatusReady       Status = "ready"
	StatusUnavailable Status = "unavailable"
)

// slotState is owned by exactly one loadable slot.
type slotState struct {
	player *provider.Player // current selection, set as soon as it is made
	seq    uint64           // bumped on every selection
	data   *loader.Dataset  // last applied dataset; kept visible while loading
	status Status
	err    string
}

// Inspected is the one pitch shown in the detail panel, shared by every
// mode and slot. It changes only on explicit select or clear.
type Inspected struct {
	Slot   Slot         `json:"slot"`
	Record pitch.Record `json:"record"`
}

// Session is one viewer's presentation state.
type Session struct {
	id     string
	roster []provider.Player
	loader Loader
	sizes  Sizes
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	mode      Mode
	layout    Layout
	filters   map[Slot]pitch.FilterSpec
	slots     map[Slot]*slotState
	resident  map[string]*loader.Dataset
	inspected *Inspected
	lastSeen  time.Time
	now       func() time.Time
}

// NewSession creates a session in dashboard mode, single layout, with every
// filter set to All. roster must not be modified afterwards.
func NewSession(id string, roster []provider.Player, l Loader, sizes Sizes, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:       id,
		roster:   roster,
		loader:   l,
		sizes:    sizes,
		logger:   logger.With("session", id),
		ctx:      ctx,
		cancel:   cancel,
		mode:     ModeDashboard,
		layout:   LayoutSingle,
		filters:  make(map[Slot]pitch.FilterSpec, len(FilterSlots)),
		slots:    make(map[Slot]*slotState, len(LoadSlots)),
		resident: make(map[string]*loader.Dataset),
		now:      time.Now,
	}
	for _, slot := range FilterSlots {
		s.filters[slot] = pitch.NewFilterSpec()
	}
	for _, slot := range LoadSlots {
		s.slots[slot] = &slotState{status: StatusEmpty}
	}
	s.lastSeen = s.now()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Roster returns the shared read-only roster.
func (s *Session) Roster() []provider.Player {
	return s.roster
}

// Close cancels in-flight loads and waits for them to finish.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
}

// LastSeen is the time of the most recent operation.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch() {
	s.lastSeen = s.now()
}

// --------------------------------------------------------------------------
// Modes
// --------------------------------------------------------------------------

// SetMode switches between dashboard and comparison. Nothing owned by the
// other mode is touched.
func (s *Session) SetMode(m Mode) error {
	m, err := ParseMode(string(m))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.mode = m
	return nil
}

// SetLayout switches the dashboard between the single view and the four
// panel multi-view. Filters of both layouts are kept.
func (s *Session) SetLayout(l Layout) error {
	l, err := ParseLayout(string(l))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.layout = l
	return nil
}

// --------------------------------------------------------------------------
// Filters
// --------------------------------------------------------------------------

// UpdateFilter sets one field of one slot's filter. No other slot or field
// changes.
func (s *Session) UpdateFilter(slot Slot, field pitch.Field, value string) (pitch.FilterSpec, error) {
	slot, err := ParseSlot(string(slot))
	if err != nil {
		return pitch.FilterSpec{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	next, err := s.filters[slot].With(field, value)
	if err != nil {
		return s.filters[slot], err
	}
	s.filters[slot] = next
	return next, nil
}

// Filter returns a copy of a slot's filter.
func (s *Session) Filter(slot Slot) (pitch.FilterSpec, error) {
	slot, err := ParseSlot(string(slot))
	if err != nil {
		return pitch.FilterSpec{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters[slot], nil
}

// --------------------------------------------------------------------------
// Player selection and loads
// --------------------------------------------------------------------------

// Outcome is how a selection's load ended.
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"  // dataset is now visible
	OutcomeResident Outcome = "resident" // served from data already loaded in this session
	OutcomeStale    Outcome = "stale"    // a newer selection superseded it; discarded
	OutcomeFailed   Outcome = "failed"   // slot shows no data
)

// Ticket tracks one selection's load.
type Ticket struct {
	Slot     Slot
	PlayerID string
	Seq      uint64

	done    chan struct{}
	outcome Outcome
	err     error
}

func newTicket(slot Slot, playerID string, seq uint64) *Ticket {
	return &Ticket{Slot: slot, PlayerID: playerID, Seq: seq, done: make(chan struct{})}
}

func (t *Ticket) finish(o Outcome, err error) {
	t.outcome = o
	t.err = err
	close(t.done)
}

// Done is closed once the load has been applied or discarded.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the load settles or ctx ends.
func (t *Ticket) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-t.done:
		return t.outcome, t.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// SelectPlayer selects a player into the dashboard's primary slot.
func (s *Session) SelectPlayer(playerID string) (*Ticket, error) {
	return s.SelectSlotPlayer(Primary, playerID)
}

// SelectComparisonPlayer selects a player into the left or right comparison
// slot.
func (s *Session) SelectComparisonPlayer(slot Slot, playerID string) (*Ticket, error) {
	if slot != Left && slot != Right {
		return nil, fmt.Errorf("%w: %q is not a comparison side", ErrNotLoadable, slot)
	}
	return s.SelectSlotPlayer(slot, playerID)
}

// SelectSlotPlayer selects a player into a loadable slot. The player's
// identity switches at once; the previous dataset stays visible until the
// new one arrives. Data already loaded in this session is reused without a
// fetch. Loads for other slots are unaffected.
func (s *Session) SelectSlotPlayer(slot Slot, playerID string) (*Ticket, error) {
	if !slot.Loadable() {
		return nil, fmt.Errorf("%w: %q", ErrNotLoadable, slot)
	}
	player, ok := provider.FindPlayer(s.roster, playerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, playerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	s.touch()

	st := s.slots[slot]
	st.seq++
	st.player = &player
	st.err = ""
	ticket := newTicket(slot, playerID, st.seq)

	if ds, ok := s.resident[playerID]; ok {
		st.data = ds
		st.status = StatusReady
		ticket.finish(OutcomeResident, nil)
		return ticket, nil
	}

	st.status = StatusLoading
	s.wg.Add(1)
	go s.load(ticket)
	return ticket, nil
}

func (s *Session) load(t *Ticket) {
	defer s.wg.Done()
	ds, err := s.loader.Load(s.ctx, t.PlayerID)
	s.complete(t, ds, err)
}

// complete applies a finished load if its slot still targets it.
func (s *Session) complete(t *Ticket, ds *loader.Dataset, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.slots[t.Slot]
	if s.closed || st.seq != t.Seq {
		s.logger.Debug("Discarding stale load",
			"slot", t.Slot, "player_id", t.PlayerID, "seq", t.Seq, "current_seq", st.seq)
		t.finish(OutcomeStale, nil)
		return
	}

	if err != nil {
		if !errors.Is(err, loader.ErrUnavailable) {
			err = fmt.Errorf("%w: %v", loader.ErrUnavailable, err)
		}
		s.logger.Warn("Player data unavailable", "slot", t.Slot, "player_id", t.PlayerID, "error", err)
		st.data = nil
		st.status = StatusUnavailable
		st.err = err.Error()
		t.finish(OutcomeFailed, err)
		return
	}

	s.resident[t.PlayerID] = ds
	st.data = ds
	st.status = StatusReady
	t.finish(OutcomeApplied, nil)
}

// --------------------------------------------------------------------------
// Inspected pitch
// --------------------------------------------------------------------------

// SelectPitch sets the shared inspected pitch, replacing any previous one.
func (s *Session) SelectPitch(from Slot, rec pitch.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.inspected = &Inspected{Slot: from, Record: rec}
}

// SelectVisiblePitch inspects the index-th pitch currently visible in a slot.
func (s *Session) SelectVisiblePitch(slot Slot, index int) (pitch.Record, error) {
	slot, err := ParseSlot(string(slot))
	if err != nil {
		return pitch.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	visible := s.visibleLocked(slot)
	if index < 0 || index >= len(visible) {
		return pitch.Record{}, fmt.Errorf("%w: %s[%d] of %d", ErrNoPitch, slot, index, len(visible))
	}
	rec := visible[index]
	s.inspected = &Inspected{Slot: slot, Record: rec}
	return rec, nil
}

// ClearPitch removes the inspected pitch.
func (s *Session) ClearPitch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.inspected = nil
}

// InspectedPitch returns a copy of the inspected pitch, or nil.
func (s *Session) InspectedPitch() *Inspected {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inspected == nil {
		return nil
	}
	cp := *s.inspected
	return &cp
}

// visibleLocked filters the slot's dataset through the slot's own filter.
func (s *Session) visibleLocked(slot Slot) []pitch.Record {
	st := s.slots[slot.DataSlot()]
	if st.data == nil {
		return nil
	}
	return pitch.Apply(st.data.Pitches, s.filters[slot])
}
