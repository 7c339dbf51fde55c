package domain

import (
	"strconv"
	"strings"
)

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// ParseWeekday accepts an ISO weekday number ("5"), an English name ("friday")
// or its three letter abbreviation ("fri") and returns the ISO weekday number.
func ParseWeekday(value string) (int, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if n, err := strconv.Atoi(value); err == nil {
		_, ok := WeekdayNames[n]
		return n, ok
	}
	if len(value) < 3 {
		return 0, false
	}
	for n, name := range WeekdayNames {
		if strings.HasPrefix(strings.ToLower(name), value) {
			return n, true
		}
	}
	return 0, false
}

// Day is a claimable label of the weekly roster.
type Day string

// Unavailable is the pseudo-day for members who can't take any day this week.
// It has no capacity limit.
const Unavailable Day = "Unavailable"

// DefaultDays are the claimable days when none are configured.
var DefaultDays = []Day{"Monday", "Tuesday", "Wednesday", "Thursday"}

// DefaultCapacity is the number of members allowed per day.
const DefaultCapacity = 2

// EmptyDayPlaceholder is rendered for days nobody claimed.
const EmptyDayPlaceholder = "No one yet"

// DefaultActivityName is used in notification titles when none is configured.
const DefaultActivityName = "Bible Study"

// Phase is the state of the weekly lifecycle.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseOpen     Phase = "open"
	PhaseReminded Phase = "reminded"
)

// Trigger is a named calendar event that advances the weekly lifecycle.
type Trigger string

const (
	TriggerOpen     Trigger = "open"
	TriggerReminder Trigger = "reminder"
	TriggerFinalize Trigger = "finalize"
)

// Triggers lists every trigger in lifecycle order.
var Triggers = []Trigger{TriggerOpen, TriggerReminder, TriggerFinalize}
