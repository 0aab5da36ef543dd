package diary

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/entry"
	"tableflip.dev/vita/pkg/timeutil"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type fakeAPI struct {
	createFn func(ctx context.Context, token, text string, on timeutil.Date, imagePath string) (*entry.Entry, error)
	listFn   func(ctx context.Context, token string) ([]*entry.Entry, error)
	updateFn func(ctx context.Context, token string, id int64, fields api.UpdateFields) (*entry.Entry, error)
	deleteFn func(ctx context.Context, token string, id int64) error
}

func (f *fakeAPI) CreateEntry(ctx context.Context, token, text string, on timeutil.Date, imagePath string) (*entry.Entry, error) {
	if f.createFn != nil {
		return f.createFn(ctx, token, text, on, imagePath)
	}
	return nil, errors.New("not configured")
}

func (f *fakeAPI) ListEntries(ctx context.Context, token string) ([]*entry.Entry, error) {
	if f.listFn != nil {
		return f.listFn(ctx, token)
	}
	return nil, errors.New("not configured")
}

func (f *fakeAPI) UpdateEntry(ctx context.Context, token string, id int64, fields api.UpdateFields) (*entry.Entry, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, token, id, fields)
	}
	return nil, errors.New("not configured")
}

func (f *fakeAPI) DeleteEntry(ctx context.Context, token string, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, token, id)
	}
	return errors.New("not configured")
}

func at(hour int) time.Time {
	return time.Date(2026, time.August, 27, hour, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, r *Repository, entries ...*entry.Entry) {
	t.Helper()
	client := r.api.(*fakeAPI)
	client.listFn = func(context.Context, string) ([]*entry.Entry, error) {
		return entries, nil
	}
	if _, err := r.Reload(context.Background()); err != nil {
		t.Fatalf("seed reload: %v", err)
	}
}

func TestReloadSortsNewestFirst(t *testing.T) {
	client := &fakeAPI{
		listFn: func(_ context.Context, token string) ([]*entry.Entry, error) {
			if token != "tok" {
				t.Errorf("expected session token, got %q", token)
			}
			// Server order is deliberately oldest first.
			return []*entry.Entry{
				{ID: 1, Timestamp: at(8)},
				{ID: 2, Timestamp: at(10)},
				{ID: 3, Timestamp: at(9)},
			}, nil
		},
	}

	r := NewRepository(client, staticToken("tok"))
	entries, err := r.Reload(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{2, 3, 1}
	for i, id := range want {
		if entries[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, entries[i].ID)
		}
	}
}

func TestCreateValidatesBeforeNetwork(t *testing.T) {
	called := false
	client := &fakeAPI{
		createFn: func(context.Context, string, string, timeutil.Date, string) (*entry.Entry, error) {
			called = true
			return nil, nil
		},
	}

	r := NewRepository(client, staticToken("tok"))
	_, err := r.Create(context.Background(), "   ", timeutil.Date("2026-08-27"), "")
	var vErr *api.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if called {
		t.Fatalf("validation failures must not reach the network")
	}
}

func TestCreateSplicesInTimestampOrder(t *testing.T) {
	client := &fakeAPI{
		createFn: func(_ context.Context, _, text string, _ timeutil.Date, _ string) (*entry.Entry, error) {
			return &entry.Entry{ID: 9, Timestamp: at(9), Text: text}, nil
		},
	}
	r := NewRepository(client, staticToken("tok"))
	seed(t, r,
		&entry.Entry{ID: 1, Timestamp: at(10)},
		&entry.Entry{ID: 2, Timestamp: at(8)},
	)

	if _, err := r.Create(context.Background(), "Weight 80 kg", timeutil.Date("2026-08-27"), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.Entries()
	want := []int64{1, 9, 2}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestUpdateReplacesWholesale(t *testing.T) {
	serverCopy := &entry.Entry{ID: 1, Timestamp: at(11), Text: "Weight 79 kg", Type: entry.TypeWeight}
	client := &fakeAPI{
		updateFn: func(_ context.Context, _ string, id int64, fields api.UpdateFields) (*entry.Entry, error) {
			if id != 1 {
				t.Errorf("unexpected id %d", id)
			}
			if fields.Text == nil || *fields.Text != "Weight 79 kg" {
				t.Errorf("unexpected fields: %+v", fields)
			}
			return serverCopy, nil
		},
	}
	r := NewRepository(client, staticToken("tok"))
	local := &entry.Entry{ID: 1, Timestamp: at(8), Text: "Weight 80 kg", Type: entry.TypeWeight}
	seed(t, r, local)

	text := "Weight 79 kg"
	updated, err := r.Update(context.Background(), 1, api.UpdateFields{Text: &text})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != serverCopy {
		t.Fatalf("expected the server's representation back")
	}
	if got := r.Entries()[0]; got != serverCopy {
		t.Fatalf("mirror must hold the server copy, not a merge")
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	client := &fakeAPI{
		deleteFn: func(_ context.Context, _ string, id int64) error {
			if id != 2 {
				t.Errorf("unexpected id %d", id)
			}
			return nil
		},
	}
	r := NewRepository(client, staticToken("tok"))
	seed(t, r,
		&entry.Entry{ID: 1, Timestamp: at(10)},
		&entry.Entry{ID: 2, Timestamp: at(9)},
		&entry.Entry{ID: 3, Timestamp: at(8)},
	)

	if err := r.Delete(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.Entries()
	want := []int64{1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestDeleteFailureKeepsEntry(t *testing.T) {
	client := &fakeAPI{
		deleteFn: func(context.Context, string, int64) error {
			return errors.New("connection reset")
		},
	}
	r := NewRepository(client, staticToken("tok"))
	seed(t, r, &entry.Entry{ID: 1, Timestamp: at(10)})

	notified := false
	r.OnMutation(func() { notified = true })

	if err := r.Delete(context.Background(), 1); err == nil {
		t.Fatalf("expected error")
	}
	if len(r.Entries()) != 1 {
		t.Fatalf("no optimistic removal: the entry must survive a failed delete")
	}
	if notified {
		t.Fatalf("failed mutations must not signal")
	}
}

func TestEveryMutationSignalsOnce(t *testing.T) {
	client := &fakeAPI{
		createFn: func(_ context.Context, _, text string, _ timeutil.Date, _ string) (*entry.Entry, error) {
			return &entry.Entry{ID: 1, Timestamp: at(9), Text: text}, nil
		},
		updateFn: func(context.Context, string, int64, api.UpdateFields) (*entry.Entry, error) {
			return &entry.Entry{ID: 1, Timestamp: at(9), Text: "changed"}, nil
		},
		deleteFn: func(context.Context, string, int64) error { return nil },
	}
	r := NewRepository(client, staticToken("tok"))

	count := 0
	r.OnMutation(func() { count++ })

	if _, err := r.Create(context.Background(), "10000 steps", timeutil.Date("2026-08-27"), ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one signal after create, got %d", count)
	}

	text := "changed"
	if _, err := r.Update(context.Background(), 1, api.UpdateFields{Text: &text}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected one signal per mutation, got %d", count)
	}

	if err := r.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected one signal per mutation, got %d", count)
	}
}
