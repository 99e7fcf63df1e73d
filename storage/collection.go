package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Collection is the in-memory owner of one persisted list. Every mutation
// replaces the list and enqueues a snapshot on the key's WriteQueue.
type Collection[T any] struct {
	kv       KV
	key      string
	defaults func() []T
	queue    *WriteQueue

	mu     sync.RWMutex
	items  []T
	loaded bool
}

// NewCollection creates a collection stored under key. defaults supplies the
// list used when nothing readable is stored.
func NewCollection[T any](kv KV, key string, defaults func() []T) *Collection[T] {
	if defaults == nil {
		defaults = func() []T { return nil }
	}
	return &Collection[T]{
		kv:       kv,
		key:      key,
		defaults: defaults,
		queue:    NewWriteQueue(kv, key),
	}
}

// Load reads the stored list. A missing or unparsable value falls back to
// the defaults; read errors do the same and are only logged.
func (c *Collection[T]) Load(ctx context.Context) []T {
	items := c.read(ctx)

	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.mu.Unlock()

	return c.All()
}

func (c *Collection[T]) read(ctx context.Context) []T {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		log.Printf("storage: load %q: %v", c.key, err)
		return c.defaults()
	}
	if !ok || raw == "" {
		return c.defaults()
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("storage: %q is not a valid list, using defaults: %v", c.key, err)
		return c.defaults()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if !loaded {
		c.Load(ctx)
	}
}

// All returns a copy of the current list.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Prepend inserts item at the front of the list.
func (c *Collection[T]) Prepend(ctx context.Context, item T) error {
	return c.Update(ctx, func(items []T) ([]T, error) {
		return append([]T{item}, items...), nil
	})
}

// Append adds item at the end of the list.
func (c *Collection[T]) Append(ctx context.Context, item T) error {
	return c.Update(ctx, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// Update replaces the list with the result of fn. fn receives a copy. When
// fn fails nothing changes.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.ensureLoaded(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	current := make([]T, len(c.items))
	copy(current, c.items)
	next, err := fn(current)
	if err != nil {
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	c.items = next
	// Enqueue under the lock so snapshots reach the queue in mutation order.
	c.queue.Enqueue(string(data))
	return nil
}

// Flush waits for pending write-backs.
func (c *Collection[T]) Flush(ctx context.Context) error {
	return c.queue.Flush(ctx)
}
