// Package session tracks the active user session: who is signed in,
// whether the persisted session has been restored yet, and the blob
// that survives restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gofinances/internal/kv"
)

// UserKey is where the signed-in user's blob lives in the store, the
// same key the mobile client used.
const UserKey = "@gofinances:user"

// State is the explicit session lifecycle. A fresh Manager starts in
// StateLoading until Restore has consulted the store.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

var (
	ErrNotAuthenticated = errors.New("no authenticated user")

	// ErrCorruptSession marks a persisted user blob that cannot be
	// decoded.
	ErrCorruptSession = errors.New("corrupt session data")
)

// User is the identity the providers hand back. The ledger only ever
// consumes ID.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Manager is the session state machine, persisted through the store so
// a restart comes back signed in.
type Manager struct {
	mu    sync.Mutex
	store kv.Store
	state State
	user  User
}

func NewManager(store kv.Store) *Manager {
	return &Manager{store: store, state: StateLoading}
}

// Restore loads the persisted user, moving the session out of
// StateLoading. A missing blob simply means nobody is signed in. A
// corrupt blob surfaces as ErrCorruptSession with the session left
// unauthenticated.
func (m *Manager) Restore(ctx context.Context) error {
	blob, err := m.store.Get(ctx, UserKey)
	if errors.Is(err, kv.ErrNotFound) {
		m.setState(StateUnauthenticated, User{})
		return nil
	}
	if err != nil {
		m.setState(StateUnauthenticated, User{})
		return fmt.Errorf("restore session: %w", err)
	}

	var u User
	if err := json.Unmarshal(blob, &u); err != nil {
		m.setState(StateUnauthenticated, User{})
		return fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}

	m.setState(StateAuthenticated, u)
	slog.InfoContext(ctx, "Session restored", "user_id", u.ID)
	return nil
}

// SignIn persists the user and marks the session authenticated.
func (m *Manager) SignIn(ctx context.Context, u User) error {
	blob, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := m.store.Set(ctx, UserKey, blob); err != nil {
		return fmt.Errorf("persist session user: %w", err)
	}

	m.setState(StateAuthenticated, u)
	slog.InfoContext(ctx, "User signed in", "user_id", u.ID)
	return nil
}

// SignOut clears the persisted user and drops back to unauthenticated.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}

	m.mu.Lock()
	uid := m.user.ID
	m.mu.Unlock()

	m.setState(StateUnauthenticated, User{})
	slog.InfoContext(ctx, "User signed out", "user_id", uid)
	return nil
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the signed-in user, if any.
func (m *Manager) User() (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.state == StateAuthenticated
}

// UserID is a convenience for callers that only need the ledger key.
func (m *Manager) UserID() (string, error) {
	u, ok := m.User()
	if !ok {
		return "", ErrNotAuthenticated
	}
	return u.ID, nil
}

func (m *Manager) setState(s State, u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
	m.user = u
}
