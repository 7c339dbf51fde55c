package entity

import (
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
)

// Signup is a user's claim on a day for the current cycle.
type Signup struct {
	UserID      string
	DisplayName string
	Day         domain.Day
	Seq         int64 // claim order inside the cycle
	ClaimedAt   time.Time
}

// RosterState is the full serializable state of the roster.
type RosterState struct {
	CycleID string
	Signups []Signup // ordered by Seq
}

// Cycle is one week's worth of signups.
type Cycle struct {
	ID        string
	Phase     domain.Phase
	StartedAt time.Time
	UpdatedAt time.Time
}
