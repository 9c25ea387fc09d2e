package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
)

// AuthStore reads the allow-list of user IDs permitted to use the ledger and
// paycheck commands. The list is managed by hand; the bot only reads it.
type AuthStore struct {
	path string
	mu   sync.Mutex
}

func NewAuthStore(path string) *AuthStore {
	return &AuthStore{path: path}
}

// IsAuthorized reports whether userID is on the allow-list. A missing or
// unreadable list authorizes nobody.
func (s *AuthStore) IsAuthorized(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read authorized users: %w", err)
	}

	var users []string
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("WARNING: authorized users file %s is unreadable, denying access: %v", s.path, err)
		return false, nil
	}

	for _, u := range users {
		if u == userID {
			return true, nil
		}
	}
	return false, nil
}
