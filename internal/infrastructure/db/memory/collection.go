// Package memory is a process-local store backend. Collections keep insertion
// order so query results match the ordering guarantees of the remote store.
package memory

import (
	"sync"

	"github.com/99minutos/access-control/internal/core/ports"
)

// collection is an ordered, mutex-guarded map of records keyed by id.
// Values are cloned on the way in and on the way out.
type collection[T any] struct {
	mu    sync.RWMutex
	keys  []string
	items map[string]T
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	return &collection[T]{items: make(map[string]T), clone: clone}
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ports.ErrRecordNotFound
	}
	return c.clone(v), nil
}

func (c *collection[T]) put(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		c.keys = append(c.keys, id)
	}
	c.items[id] = c.clone(v)
}

// update applies fn to the stored value in place. It fails with
// ports.ErrRecordNotFound when id is absent.
func (c *collection[T]) update(id string, fn func(T) T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		return ports.ErrRecordNotFound
	}
	c.items[id] = fn(c.clone(v))
	return nil
}

// remove is a no-op for absent ids.
func (c *collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, k := range c.keys {
		if k == id {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// filter returns clones of every value matching keep, in insertion order.
// A nil keep matches everything.
func (c *collection[T]) filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.keys))
	for _, k := range c.keys {
		v := c.items[k]
		if keep == nil || keep(v) {
			out = append(out, c.clone(v))
		}
	}
	return out
}

func (c *collection[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.keys = nil
	c.items = make(map[string]T)
}
