package entity

import "github.com/diegoclair/weekly-signup-bot/internal/domain"

// OutcomeKind tells what a claim or cancel did to the roster.
type OutcomeKind string

const (
	OutcomeAccepted     OutcomeKind = "accepted"
	OutcomeAlreadyOnDay OutcomeKind = "already_on_day"
	OutcomeRejected     OutcomeKind = "rejected"
	OutcomeMoved        OutcomeKind = "moved"
	OutcomeRemoved      OutcomeKind = "removed"
	OutcomeNotFound     OutcomeKind = "not_found"
	OutcomeShown        OutcomeKind = "shown"
)

// Outcome is the result of a roster operation.
// From is only set for moves and removals.
type Outcome struct {
	Kind OutcomeKind
	Day  domain.Day
	From domain.Day
}

// Mutated reports whether the roster changed.
func (o Outcome) Mutated() bool {
	switch o.Kind {
	case OutcomeAccepted, OutcomeMoved, OutcomeRemoved:
		return true
	}
	return false
}

// Err maps informational outcomes to their domain error, nil otherwise.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeRejected:
		return domain.ErrCapacityExceeded
	case OutcomeNotFound:
		return domain.ErrNotFound
	}
	return nil
}
