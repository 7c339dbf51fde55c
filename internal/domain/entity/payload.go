package entity

import (
	"strings"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
)

// PayloadKind identifies which notification a payload renders.
type PayloadKind string

const (
	PayloadOpenPrompt    PayloadKind = "open_prompt"
	PayloadReminder      PayloadKind = "reminder"
	PayloadFinalSchedule PayloadKind = "final_schedule"
)

// PayloadEntry is one line of a payload. Label carries the markup; Names are
// user supplied and only escaped when rendered for a transport.
type PayloadEntry struct {
	Day       domain.Day
	Names     []string
	Taken     int
	Remaining int // -1 when unlimited
	Label     string
	ListNames bool
}

// Escaper makes user supplied text safe for a transport's markup.
type Escaper func(string) string

// Line renders the entry, passing member names through escape when set.
func (e PayloadEntry) Line(escape Escaper) string {
	if !e.ListNames {
		return e.Label
	}
	if len(e.Names) == 0 {
		return e.Label + ": " + domain.EmptyDayPlaceholder
	}

	names := e.Names
	if escape != nil {
		names = make([]string, len(e.Names))
		for i, name := range e.Names {
			names[i] = escape(name)
		}
	}
	return e.Label + ": " + strings.Join(names, ", ")
}

// Payload is a transport agnostic rendering of the roster.
// Choices lists the days a transport should offer as buttons.
type Payload struct {
	Kind    PayloadKind
	Title   string
	Entries []PayloadEntry
	Footer  string
	Choices []domain.Day
}

// Interactive reports whether the payload expects signup buttons.
func (p Payload) Interactive() bool {
	return len(p.Choices) > 0
}

// Text renders the payload as markdown text without escaping.
func (p Payload) Text() string {
	return p.Render(nil)
}

// Render renders the payload as markdown text, escaping member names with escape.
func (p Payload) Render(escape Escaper) string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("\n\n")
	for _, e := range p.Entries {
		b.WriteString(e.Line(escape))
		b.WriteString("\n")
	}
	if p.Footer != "" {
		b.WriteString("\n")
		b.WriteString(p.Footer)
	}
	return strings.TrimRight(b.String(), "\n")
}

// TargetKind selects who receives a payload.
type TargetKind string

const (
	TargetBroadcast TargetKind = "broadcast"
	TargetUser      TargetKind = "user"
)

// Target is the delivery destination of a payload.
type Target struct {
	Kind   TargetKind
	UserID string
}

// Broadcast targets the configured group audience.
func Broadcast() Target {
	return Target{Kind: TargetBroadcast}
}

// ToUser targets a single user.
func ToUser(userID string) Target {
	return Target{Kind: TargetUser, UserID: userID}
}
