package database

import (
	"context"
	"fmt"

	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	transactionRepo contract.TransactionRepo
	jobRepo         contract.JobRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.transactionRepo = newTransactionRepository(i.db.conn)
	i.jobRepo = newJobRepository(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		transactionRepo: newTransactionRepository(db),
		jobRepo:         newJobRepository(db),
	}
}

// Transaction returns the ledger repository
func (i *instance) Transaction() contract.TransactionRepo {
	return i.transactionRepo
}

// Job returns the paycheck job repository
func (i *instance) Job() contract.JobRepo {
	return i.jobRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
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

	return tx.Commit()
}
