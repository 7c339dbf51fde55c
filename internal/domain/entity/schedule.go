package entity

import "github.com/diegoclair/weekly-signup-bot/internal/domain"

// TriggerRule fires a trigger once a week at a local time.
type TriggerRule struct {
	Trigger          domain.Trigger
	Weekday          int    // ISO 8601, 1=Monday .. 7=Sunday
	NotificationTime string // HH:MM, 24-hour
}
