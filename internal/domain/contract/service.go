package contract

import (
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type ReminderService interface {
	SetTimezone(userID, name string) error
	CreateReminder(requesterID, authorName, message string, year, month, day, hour, minute int, targets []string) (time.Time, error)
}

type LedgerService interface {
	AddTransaction(requesterID string, transaction *entity.Transaction) error
	ListRecent(requesterID string) ([]*entity.Transaction, error)
	Summary(requesterID string) (*entity.LedgerSummary, error)
	Search(requesterID, keyword string) ([]*entity.Transaction, error)
	EditTransaction(requesterID string, id int64, field, value string) error
	DeleteTransaction(requesterID string, id int64) error
}

type PaycheckService interface {
	SetJob(requesterID, jobName string, hourlyWage decimal.Decimal) error
	Estimate(requesterID, targetUserID string, hours decimal.Decimal) (*entity.PaycheckEstimate, error)
}
