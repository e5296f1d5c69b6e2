package clientstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Persisted key contract shared with the browser frontend.
const (
	KeyAccessToken = "access_token"
	KeyUserData    = "user_data"
	KeyLanguage    = "language"
	KeyUserOrders  = "user_orders"
)

var ErrKeyNotFound = errors.New("client state key not found")

// UserData mirrors the payload stored next to the access token after login.
type UserData struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Store is a small persisted key/value store backed by a single JSON file.
// It plays the role the browser's local storage plays for the client app:
// the bearer token, the language choice and the guest order records live here.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// Open loads the store file at path, creating parent directories as needed.
// A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]json.RawMessage)}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, fmt.Errorf("decode state file: %w", err)
		}
	}
	return s, nil
}

// Get decodes the value stored under key into v.
func (s *Store) Get(key string, v any) error {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()

	if !ok {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Set stores v under key and persists the store.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return s.flushLocked()
}

// Delete removes key and persists the store. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flushLocked()
}

// flushLocked writes the store atomically (temp file + rename).
func (s *Store) flushLocked() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when absent.
func (s *Store) Token() string {
	var token string
	if err := s.Get(KeyAccessToken, &token); err != nil {
		return ""
	}
	return token
}

// SetAuth stores the bearer token and its companion user data.
func (s *Store) SetAuth(token string, user UserData) error {
	if err := s.Set(KeyAccessToken, token); err != nil {
		return err
	}
	return s.Set(KeyUserData, user)
}

// ClearAuth drops the token and user data, e.g. after a 401 or logout.
func (s *Store) ClearAuth() {
	_ = s.Delete(KeyAccessToken)
	_ = s.Delete(KeyUserData)
}

// User returns the stored user data, if any.
func (s *Store) User() (UserData, bool) {
	var u UserData
	if err := s.Get(KeyUserData, &u); err != nil {
		return UserData{}, false
	}
	return u, true
}
