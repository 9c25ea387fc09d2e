package contract

import "github.com/assistbot/slack-assistant-bot/internal/domain/entity"

// ReminderStore persists the full reminder snapshot. Every load is a
// full-snapshot read and every save replaces the whole backing file; there is
// no partial update primitive, so callers serialize load+mutate+save
// sequences themselves.
type ReminderStore interface {
	LoadAll() ([]entity.Reminder, error)
	SaveAll(entries []entity.Reminder) error
}

// TimezoneStore keeps at most one IANA timezone name per user, last write wins.
type TimezoneStore interface {
	Get(userID string) (name string, ok bool, err error)
	Set(userID, name string) error
}

// AuthStore answers the allow-list authorization check used by the ledger and
// paycheck commands. Reminder creation is open to everyone.
type AuthStore interface {
	IsAuthorized(userID string) (bool, error)
}
