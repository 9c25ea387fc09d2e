package domain

// Transaction types accepted by the ledger.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// MaxReminderTargets is the most users a single reminder command can fan out to.
const MaxReminderTargets = 3

// ListLimit is how many transactions the list command shows.
const ListLimit = 10
