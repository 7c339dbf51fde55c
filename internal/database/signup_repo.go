package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

type signupRepo struct {
	db dbConn
}

func newSignupRepo(db dbConn) contract.SignupRepo {
	return &signupRepo{db: db}
}

func (r *signupRepo) ListByCycle(cycleID string) ([]entity.Signup, error) {
	query := `
		SELECT user_id, display_name, day, seq, claimed_at
		FROM signups
		WHERE cycle_id = ?
		ORDER BY seq ASC
	`

	rows, err := r.db.Query(query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	defer rows.Close()

	var signups []entity.Signup
	for rows.Next() {
		var signup entity.Signup
		err := rows.Scan(
			&signup.UserID,
			&signup.DisplayName,
			&signup.Day,
			&signup.Seq,
			&signup.ClaimedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signup: %w", err)
		}
		signups = append(signups, signup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}

	return signups, nil
}

// ReplaceForCycle makes the stored signups match the given list exactly.
// user_id is the primary key, so a user can only ever hold one row.
func (r *signupRepo) ReplaceForCycle(cycleID string, signups []entity.Signup) error {
	if _, err := r.db.Exec(`DELETE FROM signups`); err != nil {
		return fmt.Errorf("failed to clear signups: %w", err)
	}

	if len(signups) == 0 {
		return nil
	}

	query := `
		INSERT INTO signups (user_id, cycle_id, display_name, day, seq, claimed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	stmt, err := r.db.PrepareContext(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to prepare signup insert: %w", err)
	}
	defer stmt.Close()

	for _, signup := range signups {
		_, err := stmt.Exec(
			signup.UserID,
			cycleID,
			signup.DisplayName,
			signup.Day,
			signup.Seq,
			signup.ClaimedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert signup for %s: %w", signup.UserID, err)
		}
	}

	return nil
}
