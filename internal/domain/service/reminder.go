package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/assistbot/slack-assistant-bot/internal/timezone"
	"github.com/jmhodges/clock"
)

type reminderService struct {
	reminders contract.ReminderStore
	timezones contract.TimezoneStore
	storeMu   *sync.Mutex
	clk       clock.Clock
}

func newReminder(reminders contract.ReminderStore, timezones contract.TimezoneStore, storeMu *sync.Mutex, clk clock.Clock) *reminderService {
	return &reminderService{
		reminders: reminders,
		timezones: timezones,
		storeMu:   storeMu,
		clk:       clk,
	}
}

// SetTimezone validates and stores the user's IANA timezone, last write wins.
func (s *reminderService) SetTimezone(userID, name string) error {
	if _, err := timezone.Resolve(name); err != nil {
		return err
	}
	return s.timezones.Set(userID, name)
}

// CreateReminder resolves the requester's wall-clock input against their
// stored timezone and appends one entry per target user, all in a single
// save. It returns the resolved absolute instant for the confirmation
// message.
func (s *reminderService) CreateReminder(requesterID, authorName, message string, year, month, day, hour, minute int, targets []string) (time.Time, error) {
	if len(targets) == 0 || len(targets) > domain.MaxReminderTargets {
		return time.Time{}, domain.ErrBadTargets
	}

	tzName, ok, err := s.timezones.Get(requesterID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read timezone preference: %w", err)
	}
	if !ok {
		return time.Time{}, domain.ErrNoTimezoneSet
	}

	loc, err := timezone.Resolve(tzName)
	if err != nil {
		return time.Time{}, err
	}

	dueAt, err := timezone.Localize(year, month, day, hour, minute, loc)
	if err != nil {
		return time.Time{}, err
	}

	if !dueAt.After(s.clk.Now().UTC()) {
		return time.Time{}, domain.ErrTimeInPast
	}

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	entries, err := s.reminders.LoadAll()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load reminders: %w", err)
	}

	for _, target := range targets {
		entries = append(entries, entity.Reminder{
			RecipientID: target,
			AuthorName:  authorName,
			Message:     message,
			DueAt:       dueAt,
		})
	}

	if err := s.reminders.SaveAll(entries); err != nil {
		return time.Time{}, fmt.Errorf("failed to save reminders: %w", err)
	}

	return dueAt, nil
}
