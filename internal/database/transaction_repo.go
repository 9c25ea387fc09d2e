package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// transactionRepository stores ledger records. Amounts are persisted as
// decimal strings so no precision is lost going through SQLite.
type transactionRepository struct {
	db dbConn
}

func newTransactionRepository(db dbConn) *transactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(transaction *entity.Transaction) error {
	query := `
		INSERT INTO transactions (created_at, type, amount, category, description, author_id, author_name)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		transaction.CreatedAt,
		transaction.Type,
		transaction.Amount.String(),
		transaction.Category,
		transaction.Description,
		transaction.AuthorID,
		transaction.AuthorName,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	transaction.ID = id
	return nil
}

func (r *transactionRepository) GetByID(id int64) (*entity.Transaction, error) {
	query := `
		SELECT id, created_at, type, amount, category, description, author_id, author_name
		FROM transactions
		WHERE id = ?
	`

	transaction, err := scanTransaction(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return transaction, nil
}

func (r *transactionRepository) GetRecent(limit int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, created_at, type, amount, category, description, author_id, author_name
		FROM transactions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *transactionRepository) GetAll() ([]*entity.Transaction, error) {
	query := `
		SELECT id, created_at, type, amount, category, description, author_id, author_name
		FROM transactions
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *transactionRepository) Search(keyword string) ([]*entity.Transaction, error) {
	query := `
		SELECT id, created_at, type, amount, category, description, author_id, author_name
		FROM transactions
		WHERE LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR amount LIKE ?
		ORDER BY created_at DESC, id DESC
	`

	pattern := "%" + strings.ToLower(keyword) + "%"
	rows, err := r.db.Query(query, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *transactionRepository) Update(transaction *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET type = ?, amount = ?, category = ?, description = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		transaction.Type,
		transaction.Amount.String(),
		transaction.Category,
		transaction.Description,
		transaction.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

func (r *transactionRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM transactions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*entity.Transaction, error) {
	transaction := &entity.Transaction{}
	var amount string

	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.Type,
		&amount,
		&transaction.Category,
		&transaction.Description,
		&transaction.AuthorID,
		&transaction.AuthorName,
	)
	if err != nil {
		return nil, err
	}

	transaction.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
	}

	return transaction, nil
}

func collectTransactions(rows *sql.Rows) ([]*entity.Transaction, error) {
	var transactions []*entity.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
