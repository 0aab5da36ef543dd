// Package session owns the client's belief about who it is acting for. A
// single Manager is created at startup and passed to every consumer; it is
// the only writer of the credential store.
package session

import (
	"context"
	"fmt"
	"sync"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/credential"
)

// API is the slice of the server the manager needs.
type API interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (*api.User, error)
}

// State is the session phase. Exactly one holds at any time; consumers must
// treat Authenticating as "do not decide yet", not as unauthenticated.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Manager derives session state from the credential store and resolves the
// identity behind the token. Identity is fetched fresh on every token
// change and never cached across tokens.
type Manager struct {
	creds credential.Store
	api   API

	mu      sync.Mutex
	token   string
	user    *api.User
	loading bool
}

// NewManager wires the manager to its credential slot and API client.
func NewManager(creds credential.Store, client API) *Manager {
	return &Manager{creds: creds, api: client}
}

// Initialize re-derives the session from the credential store. An empty
// slot is the ordinary logged-out state, not an error. A stored token is
// only trusted after identity resolution succeeds; any resolution failure
// clears the slot.
func (m *Manager) Initialize(ctx context.Context) error {
	token, ok := m.creds.Token()
	if !ok {
		m.mu.Lock()
		m.token = ""
		m.user = nil
		m.loading = false
		m.mu.Unlock()
		return nil
	}
	return m.setToken(ctx, token, false)
}

// Login exchanges credentials for a token and resolves the identity behind
// it. On a rejected login the credential store is untouched and the
// AuthError carries the server's reason.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, err := m.api.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	return m.setToken(ctx, token, true)
}

// Logout clears the credential store and the in-memory session. No server
// call is made.
func (m *Manager) Logout() {
	m.Invalidate()
}

// Invalidate drops the session: credential slot, token, and user. It is
// called on logout and whenever the server rejects the token.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidateLocked()
}

func (m *Manager) invalidateLocked() {
	_ = m.creds.Clear()
	m.token = ""
	m.user = nil
	m.loading = false
}

// Observe inspects an error from any authenticated call. The unauthorized
// class invalidates the session; everything else passes through untouched
// so the issuing surface can show it inline.
func (m *Manager) Observe(err error) error {
	if err != nil && api.IsUnauthorized(err) {
		m.Invalidate()
	}
	return err
}

// setToken persists (when asked), stores the token, and resolves identity.
// Resolution runs synchronously on every token change; a failure for any
// reason treats the session as invalid and clears the slot.
func (m *Manager) setToken(ctx context.Context, token string, persist bool) error {
	m.mu.Lock()
	if persist {
		if err := m.creds.Write(token); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("persist credential: %w", err)
		}
	}
	m.token = token
	m.user = nil
	m.loading = true
	m.mu.Unlock()

	user, err := m.api.CurrentUser(ctx, token)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.invalidateLocked()
		return fmt.Errorf("resolve identity: %w", err)
	}
	m.user = user
	m.loading = false
	return nil
}

// State reports the current phase.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.loading:
		return Authenticating
	case m.token != "":
		return Authenticated
	default:
		return Unauthenticated
	}
}

// Authenticated reports whether the session is fully established.
func (m *Manager) Authenticated() bool {
	return m.State() == Authenticated
}

// Token returns the current session token, empty when logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// User returns the resolved identity, nil unless authenticated.
func (m *Manager) User() *api.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}
