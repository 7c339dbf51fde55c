package roster

import (
	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

// Decision is the verdict of the capacity policy for a claim.
type Decision int

const (
	Accept Decision = iota + 1
	AlreadyOnDay
	Reject
)

// Capacity holds the per-day limits. A limit <= 0 means unlimited.
type Capacity struct {
	Default int
	PerDay  map[domain.Day]int
}

// Limit returns the limit that applies to day. Unavailable is never limited.
func (c Capacity) Limit(day domain.Day) int {
	if day == domain.Unavailable {
		return 0
	}
	if limit, ok := c.PerDay[day]; ok {
		return limit
	}
	return c.Default
}

// Decide tells whether userID may claim day given the current signups.
// The requesting user's own slot is never counted against the day.
func Decide(signups map[string]entity.Signup, userID string, day domain.Day, limit int) Decision {
	if current, ok := signups[userID]; ok && current.Day == day {
		return AlreadyOnDay
	}
	if day == domain.Unavailable || limit <= 0 {
		return Accept
	}

	taken := 0
	for id, s := range signups {
		if id != userID && s.Day == day {
			taken++
		}
	}
	if taken >= limit {
		return Reject
	}
	return Accept
}
