package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger record, either income or expense.
type Transaction struct {
	ID          int64           `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	AuthorID    string          `json:"author_id"`
	AuthorName  string          `json:"author_name"`
}

// LedgerSummary aggregates the whole ledger.
type LedgerSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}
