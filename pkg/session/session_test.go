package session

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/vita/pkg/api"
)

type fakeStore struct {
	token  string
	writes int
	clears int
}

func (s *fakeStore) Token() (string, bool) { return s.token, s.token != "" }

func (s *fakeStore) Write(token string) error {
	s.writes++
	s.token = token
	return nil
}

func (s *fakeStore) Clear() error {
	s.clears++
	s.token = ""
	return nil
}

type fakeAPI struct {
	authenticateFn func(ctx context.Context, email, password string) (string, error)
	currentUserFn  func(ctx context.Context, token string) (*api.User, error)
}

func (f *fakeAPI) Authenticate(ctx context.Context, email, password string) (string, error) {
	if f.authenticateFn != nil {
		return f.authenticateFn(ctx, email, password)
	}
	return "", errors.New("not configured")
}

func (f *fakeAPI) CurrentUser(ctx context.Context, token string) (*api.User, error) {
	if f.currentUserFn != nil {
		return f.currentUserFn(ctx, token)
	}
	return nil, errors.New("not configured")
}

func TestInitializeEmptyStore(t *testing.T) {
	m := NewManager(&fakeStore{}, &fakeAPI{})
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.State() != Unauthenticated {
		t.Fatalf("expected unauthenticated, got %s", m.State())
	}
}

func TestInitializeResolvesStoredToken(t *testing.T) {
	store := &fakeStore{token: "stored-tok"}
	client := &fakeAPI{
		currentUserFn: func(_ context.Context, token string) (*api.User, error) {
			if token != "stored-tok" {
				t.Errorf("expected stored token, got %q", token)
			}
			return &api.User{ID: 1, Email: "me@example.com"}, nil
		},
	}

	m := NewManager(store, client)
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if m.User() == nil || m.User().Email != "me@example.com" {
		t.Fatalf("unexpected user: %+v", m.User())
	}
	if store.writes != 0 {
		t.Fatalf("initialize must not rewrite the credential store")
	}
}

func TestInitializeStaleTokenClearsStore(t *testing.T) {
	store := &fakeStore{token: "stale-tok"}
	client := &fakeAPI{
		currentUserFn: func(context.Context, string) (*api.User, error) {
			return nil, api.ErrUnauthorized
		},
	}

	m := NewManager(store, client)
	if err := m.Initialize(context.Background()); err == nil {
		t.Fatalf("expected error for stale token")
	}
	if m.State() != Unauthenticated {
		t.Fatalf("expected demotion to unauthenticated, got %s", m.State())
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("expected credential store to be cleared")
	}
	if m.Token() != "" || m.User() != nil {
		t.Fatalf("expected token and user cleared")
	}
}

func TestInitializeNetworkFailureAlsoClears(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{
		currentUserFn: func(context.Context, string) (*api.User, error) {
			return nil, errors.New("connection refused")
		},
	}

	m := NewManager(store, client)
	if err := m.Initialize(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("any resolution failure invalidates the stored token")
	}
}

func TestLoginSuccess(t *testing.T) {
	store := &fakeStore{}
	client := &fakeAPI{
		authenticateFn: func(_ context.Context, email, password string) (string, error) {
			if email != "me@example.com" || password != "hunter2" {
				t.Errorf("unexpected credentials")
			}
			return "fresh-tok", nil
		},
		currentUserFn: func(_ context.Context, token string) (*api.User, error) {
			if token != "fresh-tok" {
				t.Errorf("identity must be resolved with the new token")
			}
			return &api.User{ID: 1, Email: "me@example.com"}, nil
		},
	}

	m := NewManager(store, client)
	if err := m.Login(context.Background(), "me@example.com", "hunter2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if store.token != "fresh-tok" {
		t.Fatalf("expected token persisted, got %q", store.token)
	}
}

func TestLoginRejectedLeavesStoreUntouched(t *testing.T) {
	store := &fakeStore{}
	client := &fakeAPI{
		authenticateFn: func(context.Context, string, string) (string, error) {
			return "", &api.AuthError{Reason: "Incorrect email or password"}
		},
	}

	m := NewManager(store, client)
	err := m.Login(context.Background(), "me@example.com", "wrong")
	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Reason != "Incorrect email or password" {
		t.Fatalf("expected server reason, got %q", authErr.Reason)
	}
	if m.Authenticated() {
		t.Fatalf("expected unauthenticated session")
	}
	if store.writes != 0 {
		t.Fatalf("rejected login must not touch the credential store")
	}
}

func TestLoginIdentityFailureDemotes(t *testing.T) {
	store := &fakeStore{}
	client := &fakeAPI{
		authenticateFn: func(context.Context, string, string) (string, error) {
			return "tok", nil
		},
		currentUserFn: func(context.Context, string) (*api.User, error) {
			return nil, api.ErrUnauthorized
		},
	}

	m := NewManager(store, client)
	if err := m.Login(context.Background(), "me@example.com", "hunter2"); err == nil {
		t.Fatalf("expected error")
	}
	if m.Authenticated() {
		t.Fatalf("authenticated must only hold after identity resolution succeeds")
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("expected persisted token to be cleared again")
	}
}

func TestLogout(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{
		currentUserFn: func(context.Context, string) (*api.User, error) {
			return &api.User{ID: 1, Email: "me@example.com"}, nil
		},
	}

	m := NewManager(store, client)
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Logout()
	if m.State() != Unauthenticated {
		t.Fatalf("expected unauthenticated, got %s", m.State())
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("expected credential store cleared on logout")
	}
	if m.User() != nil {
		t.Fatalf("expected user cleared on logout")
	}
}

func TestObserveUnauthorizedInvalidates(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{
		currentUserFn: func(context.Context, string) (*api.User, error) {
			return &api.User{ID: 1, Email: "me@example.com"}, nil
		},
	}

	m := NewManager(store, client)
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := m.Observe(api.ErrUnauthorized)
	if !api.IsUnauthorized(err) {
		t.Fatalf("observe must pass the error through")
	}
	if m.Authenticated() {
		t.Fatalf("expected session invalidated")
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("expected credential store cleared")
	}
}

func TestObserveOtherErrorsLeaveSessionAlone(t *testing.T) {
	store := &fakeStore{token: "tok"}
	client := &fakeAPI{
		currentUserFn: func(context.Context, string) (*api.User, error) {
			return &api.User{ID: 1, Email: "me@example.com"}, nil
		},
	}

	m := NewManager(store, client)
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain := errors.New("boom")
	if got := m.Observe(plain); got != plain {
		t.Fatalf("expected passthrough, got %v", got)
	}
	if m.Observe(nil) != nil {
		t.Fatalf("nil should pass through")
	}
	if !m.Authenticated() {
		t.Fatalf("non-auth errors must not demote the session")
	}
}
