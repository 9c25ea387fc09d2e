package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
)

// TimezoneStore keeps per-user IANA timezone names in a single JSON object
// keyed by stringified user ID.
type TimezoneStore struct {
	path string
	mu   sync.Mutex
}

func NewTimezoneStore(path string) *TimezoneStore {
	return &TimezoneStore{path: path}
}

// Get returns the user's timezone name, with ok reporting whether a
// preference exists.
func (s *TimezoneStore) Get(userID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return "", false, err
	}

	name, ok := prefs[userID]
	return name, ok, nil
}

// Set stores the user's timezone name, overwriting any previous value.
func (s *TimezoneStore) Set(userID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}

	prefs[userID] = name

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal timezone preferences: %w", err)
	}

	return writeFileAtomic(s.path, data)
}

func (s *TimezoneStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read timezone store: %w", err)
	}

	var prefs map[string]string
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("WARNING: timezone store %s is unreadable, treating as empty: %v", s.path, err)
		return map[string]string{}, nil
	}
	if prefs == nil {
		prefs = map[string]string{}
	}

	return prefs, nil
}
