package timezone

import (
	"testing"
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		tzName  string
		wantErr bool
	}{
		{name: "Should resolve America/Los_Angeles", tzName: "America/Los_Angeles"},
		{name: "Should resolve Europe/London", tzName: "Europe/London"},
		{name: "Should resolve UTC", tzName: "UTC"},
		{name: "Should resolve Asia/Kolkata", tzName: "Asia/Kolkata"},
		{name: "Should reject unknown name", tzName: "Mars/Olympus_Mons", wantErr: true},
		{name: "Should reject empty name", tzName: "", wantErr: true},
		{name: "Should reject Local pseudo-zone", tzName: "Local", wantErr: true},
		{name: "Should reject name with spaces", tzName: "America/Los Angeles", wantErr: true},
		{name: "Should reject abbreviation-like garbage", tzName: "PSTT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Resolve(tt.tzName)

			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownTimezone)
				assert.Nil(t, loc)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, loc)
			assert.Equal(t, tt.tzName, loc.String())
		})
	}
}

func TestLocalize(t *testing.T) {
	losAngeles, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	type args struct {
		year, month, day, hour, minute int
	}
	tests := []struct {
		name    string
		args    args
		loc     *time.Location
		want    time.Time
		wantErr bool
	}{
		{
			name: "Should convert winter wall clock using standard offset",
			args: args{2026, 1, 15, 12, 0},
			loc:  losAngeles,
			want: time.Date(2026, 1, 15, 20, 0, 0, 0, time.UTC), // PST is UTC-8
		},
		{
			name: "Should convert summer wall clock using DST offset",
			args: args{2026, 7, 15, 12, 0},
			loc:  losAngeles,
			want: time.Date(2026, 7, 15, 19, 0, 0, 0, time.UTC), // PDT is UTC-7
		},
		{
			name: "Should pass UTC through unchanged",
			args: args{2026, 3, 1, 0, 30},
			loc:  time.UTC,
			want: time.Date(2026, 3, 1, 0, 30, 0, 0, time.UTC),
		},
		{
			name:    "Should reject February 30th in a leap year",
			args:    args{2024, 2, 30, 10, 0},
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "Should reject February 30th in a common year",
			args:    args{2026, 2, 30, 10, 0},
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "Should reject February 29th in a common year",
			args:    args{2025, 2, 29, 10, 0},
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "Should reject April 31st",
			args:    args{2026, 4, 31, 10, 0},
			loc:     losAngeles,
			wantErr: true,
		},
		{
			name:    "Should reject month 13",
			args:    args{2026, 13, 1, 10, 0},
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "Should reject day 0",
			args:    args{2026, 5, 0, 10, 0},
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "Should reject hour 24",
			args:    args{2026, 5, 1, 24, 0},
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "Should reject minute 60",
			args:    args{2026, 5, 1, 10, 60},
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "Should reject wall time skipped by spring-forward",
			args:    args{2026, 3, 8, 2, 30}, // 02:30 does not exist in Los Angeles on this date
			loc:     losAngeles,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Localize(tt.args.year, tt.args.month, tt.args.day, tt.args.hour, tt.args.minute, tt.loc)

			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidDate)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "expected %v, got %v", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
