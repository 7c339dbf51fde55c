package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

type cycleRepo struct {
	db dbConn
}

func newCycleRepo(db dbConn) contract.CycleRepo {
	return &cycleRepo{db: db}
}

func (r *cycleRepo) GetCurrent() (*entity.Cycle, error) {
	cycle := &entity.Cycle{}
	query := `
		SELECT id, phase, started_at, updated_at
		FROM cycles
		ORDER BY updated_at DESC
		LIMIT 1
	`

	err := r.db.QueryRow(query).Scan(
		&cycle.ID,
		&cycle.Phase,
		&cycle.StartedAt,
		&cycle.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current cycle: %w", err)
	}

	return cycle, nil
}

// Save inserts the cycle or updates its phase. started_at is kept from the first save.
func (r *cycleRepo) Save(cycle *entity.Cycle) error {
	query := `
		INSERT INTO cycles (id, phase, started_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			phase = excluded.phase,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		cycle.ID,
		cycle.Phase,
		cycle.StartedAt,
		cycle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save cycle: %w", err)
	}

	return nil
}

func (r *cycleRepo) DeleteExcept(cycleID string) error {
	query := `DELETE FROM cycles WHERE id <> ?`

	_, err := r.db.Exec(query, cycleID)
	if err != nil {
		return fmt.Errorf("failed to delete old cycles: %w", err)
	}

	return nil
}
