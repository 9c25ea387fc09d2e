package service

import (
	"testing"
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_reminderService_SetTimezone(t *testing.T) {
	tests := []struct {
		name      string
		tzName    string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name:   "Should store a valid timezone",
			tzName: "America/Los_Angeles",
			buildMock: func(mocks allMocks) {
				mocks.mockTimezoneStore.EXPECT().
					Set("U123", "America/Los_Angeles").
					Return(nil).Times(1)
			},
		},
		{
			name:    "Should reject an unknown timezone without touching the store",
			tzName:  "America/NotACity",
			wantErr: domain.ErrUnknownTimezone,
		},
		{
			name:    "Should reject an empty timezone",
			tzName:  "",
			wantErr: domain.ErrUnknownTimezone,
		},
		{
			name:    "Should reject the ambiguous Local name",
			tzName:  "Local",
			wantErr: domain.ErrUnknownTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			svc := newReminder(m.mockReminderStore, m.mockTimezoneStore, m.storeMu, m.clk)
			err := svc.SetTimezone("U123", tt.tzName)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_reminderService_CreateReminder(t *testing.T) {
	type args struct {
		requesterID string
		authorName  string
		message     string
		year, month int
		day, hour   int
		minute      int
		targets     []string
	}

	baseArgs := args{
		requesterID: "U123",
		authorName:  "alice",
		message:     "standup notes",
		year:        2026, month: 9, day: 2,
		hour: 14, minute: 30,
		targets: []string{"U456"},
	}

	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantDue   time.Time
		wantErr   error
	}{
		{
			name: "Should append one entry per target and return the UTC instant",
			args: func() args {
				a := baseArgs
				a.targets = []string{"U456", "U789", "U123"}
				return a
			}(),
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTimezoneStore.EXPECT().
					Get(args.requesterID).
					Return("America/Los_Angeles", true, nil).Times(1)

				existing := []entity.Reminder{{
					RecipientID: "U000",
					AuthorName:  "bob",
					Message:     "older entry",
					DueAt:       time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
				}}
				mocks.mockReminderStore.EXPECT().
					LoadAll().
					Return(existing, nil).Times(1)

				mocks.mockReminderStore.EXPECT().
					SaveAll(gomock.Any()).
					DoAndReturn(func(entries []entity.Reminder) error {
						require.Len(t, entries, 4)
						require.Equal(t, "U000", entries[0].RecipientID)
						for i, target := range args.targets {
							entry := entries[i+1]
							assert.Equal(t, target, entry.RecipientID)
							assert.Equal(t, args.authorName, entry.AuthorName)
							assert.Equal(t, args.message, entry.Message)
							// 14:30 PDT is 21:30 UTC.
							assert.True(t, entry.DueAt.Equal(time.Date(2026, 9, 2, 21, 30, 0, 0, time.UTC)))
						}
						return nil
					}).Times(1)
			},
			wantDue: time.Date(2026, 9, 2, 21, 30, 0, 0, time.UTC),
		},
		{
			name: "Should reject an empty target list",
			args: func() args {
				a := baseArgs
				a.targets = nil
				return a
			}(),
			wantErr: domain.ErrBadTargets,
		},
		{
			name: "Should reject more than three targets",
			args: func() args {
				a := baseArgs
				a.targets = []string{"U1", "U2", "U3", "U4"}
				return a
			}(),
			wantErr: domain.ErrBadTargets,
		},
		{
			name: "Should require a stored timezone before anything else",
			args: baseArgs,
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTimezoneStore.EXPECT().
					Get(args.requesterID).
					Return("", false, nil).Times(1)
			},
			wantErr: domain.ErrNoTimezoneSet,
		},
		{
			name: "Should reject a calendar date that does not exist",
			args: func() args {
				a := baseArgs
				a.month, a.day = 2, 30
				return a
			}(),
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTimezoneStore.EXPECT().
					Get(args.requesterID).
					Return("UTC", true, nil).Times(1)
			},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name: "Should reject an instant that is not in the future",
			args: func() args {
				a := baseArgs
				// Fake clock sits at 2026-09-01 12:00 UTC.
				a.day, a.hour, a.minute = 1, 12, 0
				return a
			}(),
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTimezoneStore.EXPECT().
					Get(args.requesterID).
					Return("UTC", true, nil).Times(1)
			},
			wantErr: domain.ErrTimeInPast,
		},
		{
			name: "Should surface a store load failure",
			args: baseArgs,
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTimezoneStore.EXPECT().
					Get(args.requesterID).
					Return("UTC", true, nil).Times(1)
				mocks.mockReminderStore.EXPECT().
					LoadAll().
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			svc := newReminder(m.mockReminderStore, m.mockTimezoneStore, m.storeMu, m.clk)
			dueAt, err := svc.CreateReminder(tt.args.requesterID, tt.args.authorName, tt.args.message,
				tt.args.year, tt.args.month, tt.args.day, tt.args.hour, tt.args.minute, tt.args.targets)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, dueAt.Equal(tt.wantDue))
			assert.Equal(t, time.UTC, dueAt.Location())
		})
	}
}
