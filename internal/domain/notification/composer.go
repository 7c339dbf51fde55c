// Package notification renders roster snapshots into transport agnostic payloads.
// Rendering is deterministic: the same snapshot always yields the same text.
package notification

import (
	"fmt"
	"strings"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

const promptFooter = "Tap a day below to sign up or mark yourself unavailable 👇"

// Composer holds the wording shared by every payload.
type Composer struct {
	Activity    string
	MeetingInfo string
}

// New returns a composer for the given activity name.
func New(activity, meetingInfo string) Composer {
	if strings.TrimSpace(activity) == "" {
		activity = domain.DefaultActivityName
	}
	return Composer{Activity: activity, MeetingInfo: strings.TrimSpace(meetingInfo)}
}

// OpenPrompt lists every day with its occupancy and remaining slots.
func (c Composer) OpenPrompt(snapshot entity.Snapshot) entity.Payload {
	payload := entity.Payload{
		Kind:   entity.PayloadOpenPrompt,
		Title:  fmt.Sprintf("📋 *%s signups are open!*", c.Activity),
		Footer: promptFooter,
	}

	for _, slots := range snapshot.Days {
		label := fmt.Sprintf("*%s* (%s)", slots.Day, slotsLabel(slots))
		if slots.Day == domain.Unavailable {
			label = fmt.Sprintf("*%s*", slots.Day)
		}
		payload.Entries = append(payload.Entries, entry(slots, label, true))
		payload.Choices = append(payload.Choices, slots.Day)
	}

	return payload
}

// Reminder lists the days that still have room. It returns false when every
// claimable day is full and nothing should be sent.
func (c Composer) Reminder(snapshot entity.Snapshot) (entity.Payload, bool) {
	unfilled := snapshot.Unfilled()
	if len(unfilled) == 0 {
		return entity.Payload{}, false
	}

	payload := entity.Payload{
		Kind:  entity.PayloadReminder,
		Title: fmt.Sprintf("⏰ *Reminder!* Some %s slots are still available:", c.Activity),
	}
	for _, slots := range unfilled {
		label := fmt.Sprintf("*%s*: %s", slots.Day, slotsLabel(slots))
		payload.Entries = append(payload.Entries, entry(slots, label, false))
	}

	return payload, true
}

// FinalSchedule lists the full roster, every day included.
func (c Composer) FinalSchedule(snapshot entity.Snapshot) entity.Payload {
	payload := entity.Payload{
		Kind:   entity.PayloadFinalSchedule,
		Title:  fmt.Sprintf("📅 *Final %s schedule for the week*", c.Activity),
		Footer: c.MeetingInfo,
	}
	for _, slots := range snapshot.Days {
		label := fmt.Sprintf("*%s*", slots.Day)
		payload.Entries = append(payload.Entries, entry(slots, label, true))
	}

	return payload
}

// OutcomeMessage tells the acting user what happened to their request.
func (c Composer) OutcomeMessage(outcome entity.Outcome) string {
	switch outcome.Kind {
	case entity.OutcomeAccepted:
		if outcome.Day == domain.Unavailable {
			return "You're marked as unavailable this week."
		}
		return fmt.Sprintf("You signed up for %s!", outcome.Day)
	case entity.OutcomeAlreadyOnDay:
		if outcome.Day == domain.Unavailable {
			return "You're already marked as unavailable."
		}
		return fmt.Sprintf("You're already signed up for %s.", outcome.Day)
	case entity.OutcomeRejected:
		return fmt.Sprintf("%s is full! Pick another day.", outcome.Day)
	case entity.OutcomeMoved:
		return fmt.Sprintf("You moved from %s to %s.", outcome.From, outcome.Day)
	case entity.OutcomeRemoved:
		return fmt.Sprintf("You cancelled your signup for %s.", outcome.From)
	case entity.OutcomeNotFound:
		return "You don't have a signup to cancel."
	}
	return "Here are this week's signups."
}

func entry(slots entity.DaySlots, label string, listNames bool) entity.PayloadEntry {
	return entity.PayloadEntry{
		Day:       slots.Day,
		Names:     append([]string(nil), slots.Names...),
		Taken:     slots.Taken(),
		Remaining: slots.Remaining(),
		Label:     label,
		ListNames: listNames,
	}
}

func slotsLabel(slots entity.DaySlots) string {
	switch remaining := slots.Remaining(); {
	case remaining < 0:
		return "open"
	case remaining == 0:
		return "full"
	case remaining == 1:
		return "1 slot left"
	default:
		return fmt.Sprintf("%d slots left", remaining)
	}
}
