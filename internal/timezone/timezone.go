// Package timezone resolves user-supplied IANA timezone names and converts
// wall-clock datetimes into absolute UTC instants.
package timezone

import (
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
)

// Resolve validates name against the IANA timezone database and returns its
// location. There is no fuzzy matching and no defaulting: anything the
// database does not know is rejected, including the empty string and the
// process-local "Local" pseudo-zone.
func Resolve(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, domain.ErrUnknownTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.ErrUnknownTimezone
	}

	return loc, nil
}

// Localize builds the given wall-clock datetime in loc and returns the
// corresponding UTC instant, using the zone's offset as of that date.
// Calendar fields that do not exist (February 30th, April 31st) are rejected,
// as are wall times skipped by a daylight-saving transition: time.Date
// normalizes such inputs, so any normalization means the input was invalid.
func Localize(year, month, day, hour, minute int, loc *time.Location) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, domain.ErrInvalidDate
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, domain.ErrInvalidDate
	}

	return t.UTC(), nil
}
