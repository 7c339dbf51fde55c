package roster

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	counter := 0
	opts = append([]Option{WithCycleIDGenerator(func() string {
		counter++
		return fmt.Sprintf("cycle-%d", counter)
	})}, opts...)

	store, err := New(domain.DefaultDays, Capacity{Default: 2}, opts...)
	require.NoError(t, err)
	return store
}

func names(t *testing.T, s entity.Snapshot, day domain.Day) []string {
	t.Helper()
	slots, ok := s.Slots(day)
	require.True(t, ok, "day %s not in snapshot", day)
	return slots.Names
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		days    []domain.Day
		wantErr string
	}{
		{name: "Should fail without days", days: nil, wantErr: "at least one day"},
		{name: "Should fail with duplicated days", days: []domain.Day{"Monday", "monday"}, wantErr: "configured twice"},
		{name: "Should fail when the sentinel is configured", days: []domain.Day{"Monday", "unavailable"}, wantErr: "reserved"},
		{name: "Should fail with blank day", days: []domain.Day{" "}, wantErr: "cannot be empty"},
		{name: "Should create store", days: []domain.Day{"Saturday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(tt.days, Capacity{Default: 2})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, store.CycleID())
			assert.Equal(t, []domain.Day{"Saturday", domain.Unavailable}, store.Days())
		})
	}
}

func TestStore_Scenario(t *testing.T) {
	store := newTestStore(t)

	outcome, err := store.Claim("alice", "Alice", "Monday")
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeAccepted, outcome.Kind)

	outcome, err = store.Claim("bob", "Bob", "Monday")
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeAccepted, outcome.Kind)

	outcome, err = store.Claim("carol", "Carol", "Monday")
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeRejected, outcome.Kind)
	assert.ErrorIs(t, outcome.Err(), domain.ErrCapacityExceeded)

	outcome, err = store.Claim("carol", "Carol", "Tuesday")
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeAccepted, outcome.Kind)

	outcome = store.Cancel("alice")
	assert.Equal(t, entity.OutcomeRemoved, outcome.Kind)
	assert.Equal(t, domain.Day("Monday"), outcome.From)

	outcome, err = store.Claim("dave", "Dave", "Monday")
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeAccepted, outcome.Kind)

	snapshot := store.Snapshot()
	assert.Equal(t, []string{"Bob", "Dave"}, names(t, snapshot, "Monday"))
	assert.Equal(t, []string{"Carol"}, names(t, snapshot, "Tuesday"))
}

func TestStore_Claim_Idempotent(t *testing.T) {
	changes := 0
	store := newTestStore(t, WithChangeHook(func() { changes++ }))

	_, err := store.Claim("alice", "Alice", "Monday")
	require.NoError(t, err)
	before := store.Snapshot()

	outcome, err := store.Claim("alice", "Alice", "Monday")
	require.NoError(t, err)

	assert.Equal(t, entity.OutcomeAlreadyOnDay, outcome.Kind)
	assert.Equal(t, before, store.Snapshot())
	assert.Equal(t, 1, changes)
}

func TestStore_Claim_Move(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Claim("alice", "Alice", "Monday")
	require.NoError(t, err)
	_, err = store.Claim("bob", "Bob", "Monday")
	require.NoError(t, err)
	_, err = store.Claim("carol", "Carol", "Tuesday")
	require.NoError(t, err)

	outcome, err := store.Claim("alice", "Alice", "Tuesday")
	require.NoError(t, err)

	assert.Equal(t, entity.OutcomeMoved, outcome.Kind)
	assert.Equal(t, domain.Day("Monday"), outcome.From)
	assert.Equal(t, domain.Day("Tuesday"), outcome.Day)

	snapshot := store.Snapshot()
	assert.Equal(t, []string{"Bob"}, names(t, snapshot, "Monday"))
	assert.Equal(t, []string{"Carol", "Alice"}, names(t, snapshot, "Tuesday"))
}

func TestStore_Claim_UnavailableIsUnlimited(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 10; i++ {
		outcome, err := store.Claim(fmt.Sprintf("U%d", i), fmt.Sprintf("User %d", i), domain.Unavailable)
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeAccepted, outcome.Kind)
	}

	assert.Len(t, names(t, store.Snapshot(), domain.Unavailable), 10)

	outcome, err := store.Claim("U0", "User 0", "Monday")
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeMoved, outcome.Kind)
	assert.Equal(t, domain.Unavailable, outcome.From)
}

func TestStore_Claim_InvalidDay(t *testing.T) {
	changes := 0
	store := newTestStore(t, WithChangeHook(func() { changes++ }))

	_, err := store.Claim("alice", "Alice", "Sunday")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDay)
	assert.True(t, store.Snapshot().Empty())
	assert.Zero(t, changes)
}

func TestStore_Cancel_NotFound(t *testing.T) {
	store := newTestStore(t)

	outcome := store.Cancel("ghost")

	assert.Equal(t, entity.OutcomeNotFound, outcome.Kind)
	assert.ErrorIs(t, outcome.Err(), domain.ErrNotFound)
}

func TestStore_Reset(t *testing.T) {
	changes := 0
	store := newTestStore(t, WithChangeHook(func() { changes++ }))
	firstCycle := store.CycleID()

	store.Reset()
	assert.Equal(t, firstCycle, store.CycleID(), "reset of an empty store must be a no-op")
	assert.Zero(t, changes)

	_, err := store.Claim("alice", "Alice", "Monday")
	require.NoError(t, err)

	store.Reset()
	assert.True(t, store.Snapshot().Empty())
	assert.NotEqual(t, firstCycle, store.CycleID())
	assert.Equal(t, 2, changes)
}

func TestStore_Finalize(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Claim("alice", "Alice", "Monday")
	require.NoError(t, err)
	_, err = store.Claim("bob", "Bob", domain.Unavailable)
	require.NoError(t, err)
	cycle := store.CycleID()

	final := store.Finalize()

	assert.Equal(t, cycle, final.CycleID)
	assert.Equal(t, []string{"Alice"}, names(t, final, "Monday"))
	assert.Equal(t, []string{"Bob"}, names(t, final, domain.Unavailable))
	assert.True(t, store.Snapshot().Empty())
	assert.NotEqual(t, cycle, store.CycleID())

	store.Reset()
	assert.True(t, store.Snapshot().Empty())
}

func TestStore_Snapshot_Order(t *testing.T) {
	store := newTestStore(t)

	snapshot := store.Snapshot()

	var days []domain.Day
	for _, d := range snapshot.Days {
		days = append(days, d.Day)
		assert.NotNil(t, d.Names)
	}
	assert.Equal(t, []domain.Day{"Monday", "Tuesday", "Wednesday", "Thursday", domain.Unavailable}, days)
}

func TestStore_ParseDay(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		input   string
		want    domain.Day
		wantErr bool
	}{
		{input: "Monday", want: "Monday"},
		{input: "  tuesday ", want: "Tuesday"},
		{input: "wed", want: "Wednesday"},
		{input: "THU", want: "Thursday"},
		{input: "unavailable", want: domain.Unavailable},
		{input: "unav", want: domain.Unavailable},
		{input: "mo", wantErr: true},
		{input: "friday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := store.ParseDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_StateRestore(t *testing.T) {
	store := newTestStore(t)

	dropped := store.Restore(entity.RosterState{
		CycleID: "persisted",
		Signups: []entity.Signup{
			{UserID: "bob", DisplayName: "Bob", Day: "Monday", Seq: 7},
			{UserID: "alice", DisplayName: "Alice", Day: "Monday", Seq: 3},
			{UserID: "zed", DisplayName: "Zed", Day: "Friday", Seq: 4},
		},
	})

	require.Len(t, dropped, 1)
	assert.Equal(t, "zed", dropped[0].UserID)
	assert.Equal(t, "persisted", store.CycleID())
	assert.Equal(t, []string{"Alice", "Bob"}, names(t, store.Snapshot(), "Monday"))

	_, err := store.Claim("carol", "Carol", "Tuesday")
	require.NoError(t, err)

	state := store.State()
	require.Len(t, state.Signups, 3)
	assert.Equal(t, "carol", state.Signups[2].UserID)
	assert.Equal(t, int64(8), state.Signups[2].Seq)
}

func TestStore_ConcurrentClaimsForLastSlot(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Claim("alice", "Alice", "Monday")
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		accepted int32
		rejected int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome, err := store.Claim(fmt.Sprintf("U%d", i), fmt.Sprintf("User %d", i), "Monday")
			if err != nil {
				return
			}
			switch outcome.Kind {
			case entity.OutcomeAccepted:
				atomic.AddInt32(&accepted, 1)
			case entity.OutcomeRejected:
				atomic.AddInt32(&rejected, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted)
	assert.Equal(t, int32(19), rejected)
	assert.Len(t, names(t, store.Snapshot(), "Monday"), 2)
}

func TestStore_Invariants(t *testing.T) {
	store := newTestStore(t)
	days := store.Days()

	// deterministic pseudo-random walk over claims and cancels
	for i := 0; i < 500; i++ {
		user := fmt.Sprintf("U%d", (i*7)%11)
		if i%9 == 0 {
			store.Cancel(user)
		} else {
			_, err := store.Claim(user, user, days[(i*5)%len(days)])
			require.NoError(t, err)
		}

		seen := make(map[string]bool)
		for _, slots := range store.Snapshot().Days {
			if slots.Day != domain.Unavailable {
				assert.LessOrEqual(t, slots.Taken(), 2, "day %s over capacity", slots.Day)
			}
			for _, name := range slots.Names {
				assert.False(t, seen[name], "user %s on two days", name)
				seen[name] = true
			}
		}
	}
}
