package sessions

import (
	"errors"
	"sync"

	"github.com/hirestack/go-interview-server/token/invite"
)

// Manager owns the Session lifecycle: one initialisation that derives the
// user from the persisted token, and a teardown on sign-out that clears both
// the persisted token and the in-memory user.
type Manager struct {
	store     TokenStore
	validator *invite.Validator

	lock    sync.RWMutex
	once    sync.Once
	session Session
}

// NewManager creates a session manager. The session starts in the Loading
// state until Initialise has run.
func NewManager(store TokenStore, validator *invite.Validator) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[NewManager] token store is required")
	}
	if validator == nil {
		return nil, errors.New("[NewManager] validator is required")
	}

	return &Manager{
		store:     store,
		validator: validator,
		session:   Session{Loading: true},
	}, nil
}

// Initialise derives the user from the stored access token. It runs its body
// exactly once; later calls are no-ops. A missing, undecodable, or expired
// token resolves to a signed-out session rather than an error.
func (m *Manager) Initialise() {
	m.once.Do(func() {
		m.lock.Lock()
		defer m.lock.Unlock()

		m.session.Loading = false

		storedToken, err := m.store.Get()
		if err != nil || storedToken == "" {
			return
		}
		if m.validator.IsExpired(storedToken) {
			return
		}

		identity := m.validator.Identity(storedToken)
		if identity == nil {
			return
		}

		m.session.User = &UserIdentity{
			ID:    identity.ID,
			Email: identity.Email,
			Role:  identity.Role,
		}
	})
}

// Current returns a copy of the session state
func (m *Manager) Current() Session {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.session
}

// StoredToken returns the persisted access token, or "" when none is stored
func (m *Manager) StoredToken() string {
	storedToken, err := m.store.Get()
	if err != nil {
		return ""
	}
	return storedToken
}

// SignOut clears the persisted token and the in-memory user
func (m *Manager) SignOut() error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.session.User = nil
	return m.store.Clear()
}
