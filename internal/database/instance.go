package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	cycleRepo  contract.CycleRepo
	signupRepo contract.SignupRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		cycleRepo:  newCycleRepo(db),
		signupRepo: newSignupRepo(db),
	}
}

// Cycle returns the cycle repository
func (i *instance) Cycle() contract.CycleRepo {
	return i.cycleRepo
}

// Signup returns the signup repository
func (i *instance) Signup() contract.SignupRepo {
	return i.signupRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
