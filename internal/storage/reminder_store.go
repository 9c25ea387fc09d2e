package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
)

// ReminderStore keeps the full reminder set in a single JSON document.
type ReminderStore struct {
	path string
	mu   sync.Mutex
}

func NewReminderStore(path string) *ReminderStore {
	return &ReminderStore{path: path}
}

// LoadAll returns the current full entry set. A missing file means no data.
// A corrupt file is also treated as no data so the bot keeps running, but it
// is logged rather than swallowed.
func (s *ReminderStore) LoadAll() ([]entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reminder store: %w", err)
	}

	var entries []entity.Reminder
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("WARNING: reminder store %s is unreadable, treating as empty: %v", s.path, err)
		return nil, nil
	}

	return entries, nil
}

// SaveAll atomically replaces the whole backing file with the given entries.
func (s *ReminderStore) SaveAll(entries []entity.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		entries = []entity.Reminder{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reminders: %w", err)
	}

	return writeFileAtomic(s.path, data)
}
