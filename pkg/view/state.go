// Package view holds the fetch-state machinery shared by every derived
// aggregate display: a keyed loading/error/data triple with a
// stale-response guard, the coordinator that fans refreshes out after a
// mutation, and the calendar-date navigator.
package view

// Ticket identifies one issued fetch. The fetch result must be handed back
// with its ticket so completions for superseded keys can be discarded.
type Ticket struct {
	key string
}

// Key returns the key the fetch was issued for.
func (t Ticket) Key() string {
	return t.key
}

// State tracks the fetch lifecycle for one view. Loading and a populated
// error are mutually exclusive; starting a refresh always clears the error
// for its duration.
type State[T any] struct {
	key     string
	data    *T
	err     string
	loading bool
}

// NewState creates an idle state for the given key.
func NewState[T any](key string) *State[T] {
	return &State[T]{key: key}
}

// Key returns the view's current key.
func (s *State[T]) Key() string {
	return s.key
}

// Begin starts a fetch for key, replacing the current key. The previous
// data is dropped; a loading view shows a placeholder, never a stale value.
// Overlapping fetches are not de-duplicated; each call returns its own
// ticket.
func (s *State[T]) Begin(key string) Ticket {
	s.key = key
	s.data = nil
	s.err = ""
	s.loading = true
	return Ticket{key: key}
}

// Refetch starts a fetch for the current key. This is what the coordinator
// calls after a mutation; it never resets the key.
func (s *State[T]) Refetch() Ticket {
	return s.Begin(s.key)
}

// Complete applies a finished fetch. A completion whose ticket key no
// longer matches the current key is stale and is discarded, so a slow
// response for a previously selected key can never overwrite the current
// one. Reports whether the result was applied.
func (s *State[T]) Complete(t Ticket, data *T, err error) bool {
	if t.key != s.key {
		return false
	}
	s.loading = false
	if err != nil {
		s.data = nil
		s.err = err.Error()
		return true
	}
	s.data = data
	s.err = ""
	return true
}

// Data returns the fetched value, nil while loading, after an error, or
// before the first fetch.
func (s *State[T]) Data() *T {
	return s.data
}

// Err returns the error shown in place of data, empty when none.
func (s *State[T]) Err() string {
	return s.err
}

// Loading reports whether a fetch is in flight.
func (s *State[T]) Loading() bool {
	return s.loading
}
