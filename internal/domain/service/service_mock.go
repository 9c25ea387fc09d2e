package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
	"github.com/assistbot/slack-assistant-bot/mocks"
	"github.com/jmhodges/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockTransactionRepo *mocks.MockTransactionRepo
	mockJobRepo         *mocks.MockJobRepo
	mockReminderStore   *mocks.MockReminderStore
	mockTimezoneStore   *mocks.MockTimezoneStore
	mockAuthStore       *mocks.MockAuthStore
	mockSlackClient     *mocks.MockSlackClient
	clk                 clock.FakeClock
	storeMu             *sync.Mutex
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	transactionRepo := mocks.NewMockTransactionRepo(ctrl)
	dm.EXPECT().Transaction().Return(transactionRepo).AnyTimes()

	jobRepo := mocks.NewMockJobRepo(ctrl)
	dm.EXPECT().Job().Return(jobRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	clk := clock.NewFake()
	clk.Set(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	m = allMocks{
		mockDataManager:     dm,
		mockTransactionRepo: transactionRepo,
		mockJobRepo:         jobRepo,
		mockReminderStore:   mocks.NewMockReminderStore(ctrl),
		mockTimezoneStore:   mocks.NewMockTimezoneStore(ctrl),
		mockAuthStore:       mocks.NewMockAuthStore(ctrl),
		mockSlackClient:     mocks.NewMockSlackClient(ctrl),
		clk:                 clk,
		storeMu:             &sync.Mutex{},
	}

	// validate service creation
	reminderService := newReminder(m.mockReminderStore, m.mockTimezoneStore, m.storeMu, m.clk)
	require.NotNil(t, reminderService)

	return
}
