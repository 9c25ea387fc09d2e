package service

import (
	"testing"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_paycheckService_SetJob(t *testing.T) {
	t.Run("Should upsert the requester's job", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		authorized(m, "U123")
		m.mockJobRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(job *entity.Job) error {
				require.Equal(t, "U123", job.UserID)
				require.Equal(t, "barista", job.JobName)
				require.True(t, job.HourlyWage.Equal(decimal.RequireFromString("18.50")))
				return nil
			}).Times(1)

		svc := newPaycheck(m.mockDataManager, m.mockAuthStore, m.clk)
		require.NoError(t, svc.SetJob("U123", "barista", decimal.RequireFromString("18.50")))
	})

	t.Run("Should reject a non-positive wage", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		authorized(m, "U123")

		svc := newPaycheck(m.mockDataManager, m.mockAuthStore, m.clk)
		require.ErrorIs(t, svc.SetJob("U123", "barista", decimal.Zero), domain.ErrInvalidAmount)
	})
}

func Test_paycheckService_Estimate(t *testing.T) {
	tests := []struct {
		name      string
		hours     decimal.Decimal
		buildMock func(mocks allMocks)
		want      *entity.PaycheckEstimate
		wantErr   error
	}{
		{
			name:  "Should estimate with the flat deduction rate",
			hours: decimal.NewFromInt(80),
			buildMock: func(mocks allMocks) {
				authorized(mocks, "U123")
				mocks.mockJobRepo.EXPECT().
					GetByUserID("U456").
					Return(&entity.Job{
						UserID:     "U456",
						JobName:    "barista",
						HourlyWage: decimal.RequireFromString("20"),
					}, nil).Times(1)
			},
			want: &entity.PaycheckEstimate{
				JobName:    "barista",
				HourlyWage: decimal.RequireFromString("20"),
				Hours:      decimal.NewFromInt(80),
				Gross:      decimal.RequireFromString("1600"),
				Deductions: decimal.RequireFromString("400"),
				Net:        decimal.RequireFromString("1200"),
			},
		},
		{
			name:  "Should report when no job is set for the target",
			hours: decimal.NewFromInt(40),
			buildMock: func(mocks allMocks) {
				authorized(mocks, "U123")
				mocks.mockJobRepo.EXPECT().
					GetByUserID("U456").
					Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNoJobSet,
		},
		{
			name:  "Should reject non-positive hours",
			hours: decimal.Zero,
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

			svc := newPaycheck(m.mockDataManager, m.mockAuthStore, m.clk)
			estimate, err := svc.Estimate("U123", "U456", tt.hours)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.JobName, estimate.JobName)
			assert.True(t, estimate.Gross.Equal(tt.want.Gross))
			assert.True(t, estimate.Deductions.Equal(tt.want.Deductions))
			assert.True(t, estimate.Net.Equal(tt.want.Net))
		})
	}
}
