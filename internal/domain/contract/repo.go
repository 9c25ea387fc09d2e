package contract

import (
	"context"

	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Transaction() TransactionRepo
	Job() JobRepo
}

// TransactionRepo defines the contract for the ledger repository
type TransactionRepo interface {
	Create(transaction *entity.Transaction) error
	GetByID(id int64) (*entity.Transaction, error)
	GetRecent(limit int) ([]*entity.Transaction, error)
	GetAll() ([]*entity.Transaction, error)
	Search(keyword string) ([]*entity.Transaction, error)
	Update(transaction *entity.Transaction) error
	Delete(id int64) error
}

// JobRepo defines the contract for the paycheck job repository
type JobRepo interface {
	Upsert(job *entity.Job) error
	GetByUserID(userID string) (*entity.Job, error)
}
