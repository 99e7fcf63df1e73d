// Package storage persists the app's collections as JSON snapshots in a
// durable key-value store.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/pocketbase/pocketbase/core"

	"craftquote/collections"
)

// Collection keys
const (
	KeyRecipes = "recipes"
	KeyOrders  = "orders"
	KeyReplies = "replies"
)

// KV is a durable string store. Get reports false when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// PocketBaseKV stores values as rows of the kv_store collection.
type PocketBaseKV struct {
	app core.App
}

func NewPocketBaseKV(app core.App) *PocketBaseKV {
	return &PocketBaseKV{app: app}
}

func (s *PocketBaseKV) find(key string) (*core.Record, error) {
	rec, err := s.app.FindFirstRecordByData(collections.KVStore, "key", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", key, err)
	}
	return rec, nil
}

func (s *PocketBaseKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	rec, err := s.find(key)
	if err != nil || rec == nil {
		return "", false, err
	}
	return rec.GetString("value"), true, nil
}

func (s *PocketBaseKV) Set(ctx context.Context, key, value string) error {
	rec, err := s.find(key)
	if err != nil {
		return err
	}
	if rec == nil {
		col, err := s.app.FindCollectionByNameOrId(collections.KVStore)
		if err != nil {
			return fmt.Errorf("collection not found: %w", err)
		}
		rec = core.NewRecord(col)
		rec.Set("key", key)
	}
	rec.Set("value", value)
	if err := s.app.SaveWithContext(ctx, rec); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// MemoryKV is an in-process KV.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
