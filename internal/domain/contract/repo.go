package contract

import (
	"context"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Cycle() CycleRepo
	Signup() SignupRepo
}

// CycleRepo defines the contract for cycle repository
type CycleRepo interface {
	// GetCurrent returns the most recently updated cycle, or nil when none exists.
	GetCurrent() (*entity.Cycle, error)
	Save(cycle *entity.Cycle) error
	// DeleteExcept removes every cycle but the given one. Signups cascade.
	DeleteExcept(cycleID string) error
}

// SignupRepo defines the contract for signup repository
type SignupRepo interface {
	ListByCycle(cycleID string) ([]entity.Signup, error)
	ReplaceForCycle(cycleID string, signups []entity.Signup) error
}
