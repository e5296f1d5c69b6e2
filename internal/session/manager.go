package session

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"restofresh-web/internal/auth"
	"restofresh-web/internal/cart"
	"restofresh-web/internal/clientstate"
	"restofresh-web/internal/i18n"
	"restofresh-web/internal/order"
	"restofresh-web/internal/restapi"

	"github.com/google/uuid"
)

const CookieName = "rf_session"

// Session bundles everything the site keeps per visitor: the cart, the
// persisted client state, the language choice and an API client that sends
// this visitor's bearer token when one is stored.
type Session struct {
	ID      string
	Cart    *cart.Store
	State   *clientstate.Store
	I18n    *i18n.Store
	API     *restapi.Client
	Auth    *auth.Service
	Records *order.RecordBook

	lastSeen time.Time
}

// Manager resolves a session from the request cookie, creating one on first
// visit. Sessions live in memory keyed by id; their client state persists as
// one JSON file per session under dataDir.
type Manager struct {
	secret  []byte
	dataDir string
	api     *restapi.Client

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(secret, dataDir string, api *restapi.Client) *Manager {
	return &Manager{
		secret:   []byte(secret),
		dataDir:  dataDir,
		api:      api,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the request's session, minting a new one when the cookie is
// missing or its token does not verify. A fresh cookie is set in that case.
func (m *Manager) Resolve(w http.ResponseWriter, r *http.Request) (*Session, error) {
	if c, err := r.Cookie(CookieName); err == nil {
		if id, err := parseToken(m.secret, c.Value); err == nil {
			return m.lookup(id)
		}
	}

	id := uuid.New().String()
	token, err := signToken(m.secret, id)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return m.lookup(id)
}

// lookup fetches or builds the session for id.
func (m *Manager) lookup(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		s.lastSeen = time.Now()
		return s, nil
	}

	state, err := clientstate.Open(filepath.Join(m.dataDir, id+".json"))
	if err != nil {
		return nil, fmt.Errorf("open session state: %w", err)
	}

	api := m.api.WithTokens(state)
	s := &Session{
		ID:       id,
		Cart:     cart.NewStore(),
		State:    state,
		I18n:     i18n.NewStore(state),
		API:      api,
		Auth:     auth.NewService(api, state),
		Records:  order.NewRecordBook(state),
		lastSeen: time.Now(),
	}
	m.sessions[id] = s
	return s, nil
}

// RunEviction drops in-memory sessions idle past the cookie lifetime. The
// state file stays on disk; a returning visitor with a live cookie gets the
// same state back through lookup.
func (m *Manager) RunEviction(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.evictIdle(tokenTTL)
		}
	}
}

func (m *Manager) evictIdle(maxIdle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if time.Since(s.lastSeen) > maxIdle {
			delete(m.sessions, id)
		}
	}
}

// Count reports the number of live sessions. Used by the admin dashboard.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
