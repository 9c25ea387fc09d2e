package service

import (
	"testing"
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authorized(mocks allMocks, userID string) {
	mocks.mockAuthStore.EXPECT().IsAuthorized(userID).Return(true, nil).Times(1)
}

func Test_ledgerService_AddTransaction(t *testing.T) {
	tests := []struct {
		name        string
		transaction *entity.Transaction
		buildMock   func(mocks allMocks)
		wantErr     error
	}{
		{
			name: "Should create a transaction and stamp time and id",
			transaction: &entity.Transaction{
				Type:        domain.TransactionExpense,
				Amount:      decimal.NewFromInt(42),
				Category:    "groceries",
				Description: "weekly shop",
				AuthorID:    "U123",
				AuthorName:  "alice",
			},
			buildMock: func(mocks allMocks) {
				authorized(mocks, "U123")
				mocks.mockTransactionRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(transaction *entity.Transaction) error {
						require.True(t, transaction.CreatedAt.Equal(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
						transaction.ID = 7
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject an unauthorized requester",
			transaction: &entity.Transaction{
				Type:     domain.TransactionExpense,
				Amount:   decimal.NewFromInt(10),
				AuthorID: "U123",
			},
			buildMock: func(mocks allMocks) {
				mocks.mockAuthStore.EXPECT().IsAuthorized("U123").Return(false, nil).Times(1)
			},
			wantErr: domain.ErrNotAuthorized,
		},
		{
			name: "Should reject an unknown transaction type",
			transaction: &entity.Transaction{
				Type:     "transfer",
				Amount:   decimal.NewFromInt(10),
				AuthorID: "U123",
			},
			buildMock: func(mocks allMocks) {
				authorized(mocks, "U123")
			},
			wantErr: domain.ErrUnknownTransactionType,
		},
		{
			name: "Should reject a non-positive amount",
			transaction: &entity.Transaction{
				Type:     domain.TransactionIncome,
				Amount:   decimal.Zero,
				AuthorID: "U123",
			},
			buildMock: func(mocks allMocks) {
				authorized(mocks, "U123")
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			svc := newLedger(m.mockDataManager, m.mockAuthStore, m.clk)
			err := svc.AddTransaction(tt.transaction.AuthorID, tt.transaction)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), tt.transaction.ID)
		})
	}
}

func Test_ledgerService_Summary(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	authorized(m, "U123")
	m.mockTransactionRepo.EXPECT().
		GetAll().
		Return([]*entity.Transaction{
			{Type: domain.TransactionIncome, Amount: decimal.RequireFromString("2500.00")},
			{Type: domain.TransactionExpense, Amount: decimal.RequireFromString("300.50")},
			{Type: domain.TransactionExpense, Amount: decimal.RequireFromString("99.50")},
		}, nil).Times(1)

	svc := newLedger(m.mockDataManager, m.mockAuthStore, m.clk)
	summary, err := svc.Summary("U123")

	require.NoError(t, err)
	assert.True(t, summary.Income.Equal(decimal.RequireFromString("2500.00")))
	assert.True(t, summary.Expenses.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("2100.00")))
}

func Test_ledgerService_ListRecent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	authorized(m, "U123")
	m.mockTransactionRepo.EXPECT().
		GetRecent(domain.ListLimit).
		Return([]*entity.Transaction{{ID: 1}, {ID: 2}}, nil).Times(1)

	svc := newLedger(m.mockDataManager, m.mockAuthStore, m.clk)
	transactions, err := svc.ListRecent("U123")

	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func Test_ledgerService_Search(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	authorized(m, "U123")
	m.mockTransactionRepo.EXPECT().
		Search("coffee").
		Return([]*entity.Transaction{{ID: 3}}, nil).Times(1)

	svc := newLedger(m.mockDataManager, m.mockAuthStore, m.clk)
	transactions, err := svc.Search("U123", "coffee")

	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func Test_ledgerService_EditTransaction(t *testing.T) {
	type args struct {
		id    int64
		field string
		value string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantErr   error
	}{
		{
			name: "Should update the amount",
			args: args{id: 3, field: "amount", value: "15.75"},
			buildMock: func(mocks allMocks, args args) {
				authorized(mocks, "U123")
				mocks.mockTransactionRepo.EXPECT().
					GetByID(args.id).
					Return(&entity.Transaction{ID: args.id, Type: domain.TransactionExpense, Amount: decimal.NewFromInt(10)}, nil).Times(1)
				mocks.mockTransactionRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(transaction *entity.Transaction) error {
						require.True(t, transaction.Amount.Equal(decimal.RequireFromString("15.75")))
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should accept a case-insensitive field name",
			args: args{id: 3, field: "Category", value: "transport"},
			buildMock: func(mocks allMocks, args args) {
				authorized(mocks, "U123")
				mocks.mockTransactionRepo.EXPECT().
					GetByID(args.id).
					Return(&entity.Transaction{ID: args.id, Type: domain.TransactionExpense, Amount: decimal.NewFromInt(10)}, nil).Times(1)
				mocks.mockTransactionRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(transaction *entity.Transaction) error {
						require.Equal(t, "transport", transaction.Category)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject an unknown field",
			args: args{id: 3, field: "color", value: "red"},
			buildMock: func(mocks allMocks, args args) {
				authorized(mocks, "U123")
				mocks.mockTransactionRepo.EXPECT().
					GetByID(args.id).
					Return(&entity.Transaction{ID: args.id}, nil).Times(1)
			},
			wantErr: domain.ErrUnknownField,
		},
		{
			name: "Should reject a bad amount value",
			args: args{id: 3, field: "amount", value: "abc"},
			buildMock: func(mocks allMocks, args args) {
				authorized(mocks, "U123")
				mocks.mockTransactionRepo.EXPECT().
					GetByID(args.id).
					Return(&entity.Transaction{ID: args.id}, nil).Times(1)
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "Should report a missing transaction",
			args: args{id: 99, field: "amount", value: "1"},
			buildMock: func(mocks allMocks, args args) {
				authorized(mocks, "U123")
				mocks.mockTransactionRepo.EXPECT().
					GetByID(args.id).
					Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			svc := newLedger(m.mockDataManager, m.mockAuthStore, m.clk)
			err := svc.EditTransaction("U123", tt.args.id, tt.args.field, tt.args.value)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ledgerService_DeleteTransaction(t *testing.T) {
	t.Run("Should delete an existing transaction", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		authorized(m, "U123")
		m.mockTransactionRepo.EXPECT().
			GetByID(int64(5)).
			Return(&entity.Transaction{ID: 5}, nil).Times(1)
		m.mockTransactionRepo.EXPECT().
			Delete(int64(5)).
			Return(nil).Times(1)

		svc := newLedger(m.mockDataManager, m.mockAuthStore, m.clk)
		require.NoError(t, svc.DeleteTransaction("U123", 5))
	})

	t.Run("Should report a missing transaction", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		authorized(m, "U123")
		m.mockTransactionRepo.EXPECT().
			GetByID(int64(5)).
			Return(nil, nil).Times(1)

		svc := newLedger(m.mockDataManager, m.mockAuthStore, m.clk)
		require.ErrorIs(t, svc.DeleteTransaction("U123", 5), domain.ErrNotFound)
	})
}
