package view

import (
	"sort"
	"sync"
)

// Coordinator fans a refresh command out to every mounted view after a
// data-changing operation. It holds no data of its own, only refetch
// handles keyed by view id. C is whatever the host UI uses to represent a
// scheduled refresh (a Bubble Tea command, a bare func, an error).
type Coordinator[C any] struct {
	mu      sync.Mutex
	handles map[string]func() C
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator[C any]() *Coordinator[C] {
	return &Coordinator[C]{handles: make(map[string]func() C)}
}

// Mount registers a view's refetch handle, replacing any previous handle
// with the same id.
func (c *Coordinator[C]) Mount(id string, refetch func() C) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if refetch == nil {
		delete(c.handles, id)
		return
	}
	c.handles[id] = refetch
}

// Unmount removes a view's handle. A later Invalidate will not touch it.
func (c *Coordinator[C]) Unmount(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handles, id)
}

// Mounted lists the registered view ids, sorted for stable output.
func (c *Coordinator[C]) Mounted() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.handles))
	for id := range c.handles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Invalidate calls every mounted handle exactly once, in no particular
// order, and returns the scheduled refreshes. The views are independent;
// no ordering between them is guaranteed or needed.
func (c *Coordinator[C]) Invalidate() []C {
	c.mu.Lock()
	fns := make([]func() C, 0, len(c.handles))
	for _, fn := range c.handles {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	out := make([]C, 0, len(fns))
	for _, fn := range fns {
		out = append(out, fn())
	}
	return out
}
