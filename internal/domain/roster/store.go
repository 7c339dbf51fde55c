package roster

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/google/uuid"
)

// Store tracks who claimed which day in the current cycle.
// Mutations are serialized; readers never observe a half applied change.
type Store struct {
	mu       sync.RWMutex
	days     []domain.Day
	capacity Capacity
	cycleID  string
	signups  map[string]entity.Signup
	seq      int64

	onChange func()
	now      func() time.Time
	newID    func() string
}

// Option configures a Store.
type Option func(*Store)

// WithChangeHook registers fn to be called after every mutation, outside the lock.
// fn must not block.
func WithChangeHook(fn func()) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

// WithClock overrides the clock used to stamp claims.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithCycleIDGenerator overrides how new cycle ids are generated.
func WithCycleIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty store for the given claimable days.
func New(days []domain.Day, capacity Capacity, opts ...Option) (*Store, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("at least one day is required")
	}

	seen := make(map[string]bool, len(days))
	for _, day := range days {
		key := strings.ToLower(string(day))
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("day name cannot be empty")
		}
		if day == domain.Unavailable || key == strings.ToLower(string(domain.Unavailable)) {
			return nil, fmt.Errorf("%s is reserved and can't be configured as a day", domain.Unavailable)
		}
		if seen[key] {
			return nil, fmt.Errorf("day %s is configured twice", day)
		}
		seen[key] = true
	}

	s := &Store{
		days:     append([]domain.Day(nil), days...),
		capacity: capacity,
		signups:  make(map[string]entity.Signup),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cycleID = s.newID()

	return s, nil
}

// Days returns the claimable days followed by the Unavailable sentinel.
func (s *Store) Days() []domain.Day {
	return append(append([]domain.Day(nil), s.days...), domain.Unavailable)
}

// Capacity returns the configured limits.
func (s *Store) Capacity() Capacity {
	return s.capacity
}

// CycleID returns the id of the current cycle.
func (s *Store) CycleID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycleID
}

// ParseDay resolves user input to a roster day. Matching is case-insensitive
// and accepts unique prefixes of at least three letters.
func (s *Store) ParseDay(input string) (domain.Day, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if value == "" {
		return "", fmt.Errorf("%w: empty day", domain.ErrInvalidDay)
	}

	var matches []domain.Day
	for _, day := range s.Days() {
		name := strings.ToLower(string(day))
		if name == value {
			return day, nil
		}
		if len(value) >= 3 && strings.HasPrefix(name, value) {
			matches = append(matches, day)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrInvalidDay, input)
}

func (s *Store) valid(day domain.Day) bool {
	if day == domain.Unavailable {
		return true
	}
	for _, d := range s.days {
		if d == day {
			return true
		}
	}
	return false
}

// Claim sets the user's day. Claiming the current day again is a no-op,
// claiming another day moves the user.
func (s *Store) Claim(userID, displayName string, day domain.Day) (entity.Outcome, error) {
	if !s.valid(day) {
		return entity.Outcome{}, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}

	s.mu.Lock()
	outcome := s.claimLocked(userID, displayName, day)
	s.mu.Unlock()

	if outcome.Mutated() {
		s.changed()
	}
	return outcome, nil
}

func (s *Store) claimLocked(userID, displayName string, day domain.Day) entity.Outcome {
	switch Decide(s.signups, userID, day, s.capacity.Limit(day)) {
	case AlreadyOnDay:
		return entity.Outcome{Kind: entity.OutcomeAlreadyOnDay, Day: day}
	case Reject:
		return entity.Outcome{Kind: entity.OutcomeRejected, Day: day}
	}

	previous, had := s.signups[userID]
	s.seq++
	s.signups[userID] = entity.Signup{
		UserID:      userID,
		DisplayName: displayName,
		Day:         day,
		Seq:         s.seq,
		ClaimedAt:   s.now(),
	}

	if had {
		return entity.Outcome{Kind: entity.OutcomeMoved, Day: day, From: previous.Day}
	}
	return entity.Outcome{Kind: entity.OutcomeAccepted, Day: day}
}

// Cancel removes the user's signup if present.
func (s *Store) Cancel(userID string) entity.Outcome {
	s.mu.Lock()
	previous, had := s.signups[userID]
	if had {
		delete(s.signups, userID)
	}
	s.mu.Unlock()

	if !had {
		return entity.Outcome{Kind: entity.OutcomeNotFound}
	}
	s.changed()
	return entity.Outcome{Kind: entity.OutcomeRemoved, From: previous.Day}
}

// Snapshot returns the roster grouped by day.
func (s *Store) Snapshot() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() entity.Snapshot {
	ordered := s.orderedLocked()
	days := s.Days()
	snapshot := entity.Snapshot{
		CycleID: s.cycleID,
		Days:    make([]entity.DaySlots, 0, len(days)),
	}
	for _, day := range days {
		slots := entity.DaySlots{Day: day, Names: []string{}, Limit: s.capacity.Limit(day)}
		for _, signup := range ordered {
			if signup.Day == day {
				slots.Names = append(slots.Names, signup.DisplayName)
			}
		}
		snapshot.Days = append(snapshot.Days, slots)
	}
	return snapshot
}

func (s *Store) orderedLocked() []entity.Signup {
	ordered := make([]entity.Signup, 0, len(s.signups))
	for _, signup := range s.signups {
		ordered = append(ordered, signup)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Seq < ordered[j].Seq
	})
	return ordered
}

// Reset clears every signup and starts a new cycle. Resetting an empty store does nothing.
func (s *Store) Reset() {
	s.mu.Lock()
	if len(s.signups) == 0 {
		s.mu.Unlock()
		return
	}
	s.resetLocked()
	s.mu.Unlock()

	s.changed()
}

// Finalize returns the roster as it was and resets it in one step, so no claim
// lands between the final rendering and the reset.
func (s *Store) Finalize() entity.Snapshot {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.resetLocked()
	s.mu.Unlock()

	s.changed()
	return snapshot
}

func (s *Store) resetLocked() {
	s.signups = make(map[string]entity.Signup)
	s.seq = 0
	s.cycleID = s.newID()
}

// State returns the full roster for persistence.
func (s *Store) State() entity.RosterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.RosterState{
		CycleID: s.cycleID,
		Signups: s.orderedLocked(),
	}
}

// Restore replaces the roster with a persisted state. Signups on days that are
// no longer configured are dropped.
func (s *Store) Restore(state entity.RosterState) []entity.Signup {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dropped []entity.Signup
	s.signups = make(map[string]entity.Signup, len(state.Signups))
	s.seq = 0
	if state.CycleID != "" {
		s.cycleID = state.CycleID
	}
	for _, signup := range state.Signups {
		if !s.valid(signup.Day) {
			dropped = append(dropped, signup)
			continue
		}
		s.signups[signup.UserID] = signup
		if signup.Seq > s.seq {
			s.seq = signup.Seq
		}
	}
	return dropped
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
