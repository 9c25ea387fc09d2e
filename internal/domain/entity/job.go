package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job holds a user's job title and hourly wage for paycheck estimates.
// One job per user, last write wins.
type Job struct {
	UserID     string          `json:"user_id"`
	JobName    string          `json:"job_name"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PaycheckEstimate is the result of the estimate command. Deductions use a
// flat rate, so this is a rough figure, not a tax calculation.
type PaycheckEstimate struct {
	JobName    string          `json:"job_name"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
	Hours      decimal.Decimal `json:"hours"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}
