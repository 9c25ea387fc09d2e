package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/jmhodges/clock"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	dm   contract.DataManager
	auth contract.AuthStore
	clk  clock.Clock
}

func newLedger(dm contract.DataManager, auth contract.AuthStore, clk clock.Clock) *ledgerService {
	return &ledgerService{
		dm:   dm,
		auth: auth,
		clk:  clk,
	}
}

func (s *ledgerService) authorize(requesterID string) error {
	ok, err := s.auth.IsAuthorized(requesterID)
	if err != nil {
		return fmt.Errorf("failed to check authorization: %w", err)
	}
	if !ok {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *ledgerService) AddTransaction(requesterID string, transaction *entity.Transaction) error {
	if err := s.authorize(requesterID); err != nil {
		return err
	}

	if transaction.Type != domain.TransactionIncome && transaction.Type != domain.TransactionExpense {
		return domain.ErrUnknownTransactionType
	}
	if !transaction.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	transaction.CreatedAt = s.clk.Now().UTC()

	if err := s.dm.Transaction().Create(transaction); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *ledgerService) ListRecent(requesterID string) ([]*entity.Transaction, error) {
	if err := s.authorize(requesterID); err != nil {
		return nil, err
	}

	transactions, err := s.dm.Transaction().GetRecent(domain.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *ledgerService) Summary(requesterID string) (*entity.LedgerSummary, error) {
	if err := s.authorize(requesterID); err != nil {
		return nil, err
	}

	transactions, err := s.dm.Transaction().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := &entity.LedgerSummary{}
	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.TransactionIncome:
			summary.Income = summary.Income.Add(transaction.Amount)
		case domain.TransactionExpense:
			summary.Expenses = summary.Expenses.Add(transaction.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expenses)
	return summary, nil
}

func (s *ledgerService) Search(requesterID, keyword string) ([]*entity.Transaction, error) {
	if err := s.authorize(requesterID); err != nil {
		return nil, err
	}

	transactions, err := s.dm.Transaction().Search(keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	return transactions, nil
}

func (s *ledgerService) EditTransaction(requesterID string, id int64, field, value string) error {
	if err := s.authorize(requesterID); err != nil {
		return err
	}

	// Read-modify-write inside one database transaction.
	return s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		transaction, err := dm.Transaction().GetByID(id)
		if err != nil {
			return fmt.Errorf("failed to load transaction: %w", err)
		}
		if transaction == nil {
			return domain.ErrNotFound
		}

		switch strings.ToLower(field) {
		case "amount":
			amount, err := decimal.NewFromString(value)
			if err != nil || !amount.IsPositive() {
				return domain.ErrInvalidAmount
			}
			transaction.Amount = amount
		case "category":
			transaction.Category = value
		case "description":
			transaction.Description = value
		case "type":
			if value != domain.TransactionIncome && value != domain.TransactionExpense {
				return domain.ErrUnknownTransactionType
			}
			transaction.Type = value
		default:
			return domain.ErrUnknownField
		}

		if err := dm.Transaction().Update(transaction); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		return nil
	})
}

func (s *ledgerService) DeleteTransaction(requesterID string, id int64) error {
	if err := s.authorize(requesterID); err != nil {
		return err
	}

	return s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		transaction, err := dm.Transaction().GetByID(id)
		if err != nil {
			return fmt.Errorf("failed to load transaction: %w", err)
		}
		if transaction == nil {
			return domain.ErrNotFound
		}

		if err := dm.Transaction().Delete(id); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return nil
	})
}
