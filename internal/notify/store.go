package notify

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"restofresh-web/internal/logger"

	"go.uber.org/zap"
)

// Type classifies what a notification is about.
type Type string

const (
	TypeOrder       Type = "order"
	TypeReservation Type = "reservation"
)

// Notification is an ephemeral, client-owned event. It is never persisted;
// a restart starts with an empty list.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"created_at"`
	Payload   any       `json:"data,omitempty"`
}

// Alerter is the optional passive-notification hook, the counterpart of a
// desktop notification shown when the app is in the background. Alerts are
// best-effort; failures are ignored.
type Alerter interface {
	Alert(n Notification)
}

// Store keeps the session's notifications in memory, most recent first.
type Store struct {
	mu      sync.Mutex
	items   []Notification
	alerter Alerter
	now     func() time.Time
}

func NewStore(alerter Alerter) *Store {
	return &Store{alerter: alerter, now: time.Now}
}

// Add creates a notification with a fresh id, prepends it, and fires the
// alerter if one is configured.
func (s *Store) Add(typ Type, title, message string, payload any) Notification {
	s.mu.Lock()
	n := Notification{
		ID:        newID(s.now()),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
		Payload:   payload,
	}
	s.items = append([]Notification{n}, s.items...)
	alerter := s.alerter
	s.mu.Unlock()

	logger.L().Debug("notification added",
		zap.String("id", n.ID),
		zap.String("type", string(typ)),
	)

	if alerter != nil {
		alerter.Alert(n)
	}
	return n
}

// MarkSeen flags one notification as seen. Unknown ids are ignored.
func (s *Store) MarkSeen(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Seen = true
			return
		}
	}
}

func (s *Store) MarkAllSeen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Seen = true
	}
}

func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// UnseenCount is derived on read.
func (s *Store) UnseenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.items {
		if !n.Seen {
			count++
		}
	}
	return count
}

// Notifications returns a snapshot copy, most recent first.
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// newID builds a time+random id, unique enough for a session-local list.
func newID(now time.Time) string {
	suffix := fmt.Sprintf("%09x", rand.Int63())[:9]
	return fmt.Sprintf("notification_%d_%s", now.UnixMilli(), suffix)
}
