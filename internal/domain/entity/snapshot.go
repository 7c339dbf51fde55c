package entity

import "github.com/diegoclair/weekly-signup-bot/internal/domain"

// DaySlots is the read-only membership of one day.
type DaySlots struct {
	Day   domain.Day
	Names []string // claim order
	Limit int      // <= 0 means unlimited
}

// Taken returns how many members claimed the day.
func (d DaySlots) Taken() int {
	return len(d.Names)
}

// Unlimited reports whether the day has no capacity limit.
func (d DaySlots) Unlimited() bool {
	return d.Limit <= 0
}

// Remaining returns the free slots left, or -1 when the day is unlimited.
func (d DaySlots) Remaining() int {
	if d.Unlimited() {
		return -1
	}
	if left := d.Limit - d.Taken(); left > 0 {
		return left
	}
	return 0
}

// Full reports whether the day reached its limit.
func (d DaySlots) Full() bool {
	return !d.Unlimited() && d.Taken() >= d.Limit
}

// Snapshot is a consistent view of the roster grouped by day.
// Days follow the configured order with the Unavailable sentinel last.
type Snapshot struct {
	CycleID string
	Days    []DaySlots
}

// Slots returns the membership of a single day.
func (s Snapshot) Slots(day domain.Day) (DaySlots, bool) {
	for _, d := range s.Days {
		if d.Day == day {
			return d, true
		}
	}
	return DaySlots{}, false
}

// Unfilled returns the claimable days that still have room.
func (s Snapshot) Unfilled() []DaySlots {
	var unfilled []DaySlots
	for _, d := range s.Days {
		if d.Day == domain.Unavailable || d.Full() {
			continue
		}
		unfilled = append(unfilled, d)
	}
	return unfilled
}

// Empty reports whether nobody is signed up at all.
func (s Snapshot) Empty() bool {
	for _, d := range s.Days {
		if d.Taken() > 0 {
			return false
		}
	}
	return true
}
