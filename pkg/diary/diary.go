// Package diary keeps the client-side mirror of the entry list and
// reconciles it against the server on every mutation. The repository knows
// nothing about the views that depend on it; it only announces that a
// mutation happened.
package diary

import (
	"context"
	"strings"
	"sync"

	"tableflip.dev/vita/pkg/api"
	"tableflip.dev/vita/pkg/entry"
	"tableflip.dev/vita/pkg/timeutil"
)

// API is the slice of the server the repository needs.
type API interface {
	CreateEntry(ctx context.Context, token, text string, on timeutil.Date, imagePath string) (*entry.Entry, error)
	ListEntries(ctx context.Context, token string) ([]*entry.Entry, error)
	UpdateEntry(ctx context.Context, token string, id int64, fields api.UpdateFields) (*entry.Entry, error)
	DeleteEntry(ctx context.Context, token string, id int64) error
}

// TokenSource provides the current session token. *session.Manager
// satisfies it.
type TokenSource interface {
	Token() string
}

// Repository mirrors the authoritative entry list for the current session.
type Repository struct {
	api     API
	session TokenSource

	mu       sync.Mutex
	entries  []*entry.Entry
	onMutate []func()
}

// NewRepository creates an empty mirror.
func NewRepository(client API, session TokenSource) *Repository {
	return &Repository{api: client, session: session}
}

// OnMutation registers a callback invoked once after every successful
// create, update, or delete. The owning page uses it to fan refreshes out
// to its views.
func (r *Repository) OnMutation(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onMutate = append(r.onMutate, fn)
}

func (r *Repository) notify() {
	r.mu.Lock()
	fns := make([]func(), len(r.onMutate))
	copy(fns, r.onMutate)
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Entries returns a snapshot of the mirror, newest first.
func (r *Repository) Entries() []*entry.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entry.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reload replaces the mirror with a full fetch. The result is always
// re-sorted newest first; server order is not trusted.
func (r *Repository) Reload(ctx context.Context) ([]*entry.Entry, error) {
	entries, err := r.api.ListEntries(ctx, r.session.Token())
	if err != nil {
		return nil, err
	}
	entry.SortNewestFirst(entries)
	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
	return r.Entries(), nil
}

// Create submits a new entry. At least text or an image is required; that
// check never reaches the network. On success the server's entry is spliced
// into the mirror in timestamp order.
func (r *Repository) Create(ctx context.Context, text string, on timeutil.Date, imagePath string) (*entry.Entry, error) {
	if strings.TrimSpace(text) == "" && imagePath == "" {
		return nil, &api.ValidationError{Message: "enter text or attach an image"}
	}

	e, err := r.api.CreateEntry(ctx, r.session.Token(), text, on, imagePath)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.entries = append(r.entries, e)
	entry.SortNewestFirst(r.entries)
	r.mu.Unlock()

	r.notify()
	return e, nil
}

// Update applies a partial update. The local copy is replaced wholesale by
// the server's representation, never patched field by field.
func (r *Repository) Update(ctx context.Context, id int64, fields api.UpdateFields) (*entry.Entry, error) {
	updated, err := r.api.UpdateEntry(ctx, r.session.Token(), id, fields)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	for i, e := range r.entries {
		if e.ID == id {
			r.entries[i] = updated
			break
		}
	}
	entry.SortNewestFirst(r.entries)
	r.mu.Unlock()

	r.notify()
	return updated, nil
}

// Delete removes an entry. The mirror changes only after the server
// confirms, so a failed call never hides an entry that still exists.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.api.DeleteEntry(ctx, r.session.Token(), id); err != nil {
		return err
	}

	r.mu.Lock()
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.mu.Unlock()

	r.notify()
	return nil
}
