package contract

import (
	"context"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

type SignupService interface {
	Handle(ctx context.Context, action entity.UserAction) (*entity.ActionResult, error)
	OpenPrompt() entity.Payload
	Snapshot() entity.Snapshot
	Days() []domain.Day
	Phase() domain.Phase
}

type ScheduleDriver interface {
	Fire(ctx context.Context, trigger domain.Trigger) error
	Phase() domain.Phase
}

// Deliverer sends payloads to the outbound transport.
type Deliverer interface {
	Deliver(ctx context.Context, target entity.Target, payload entity.Payload) error
}
