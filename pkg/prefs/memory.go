package prefs

import (
	"context"
	"sync"
)

// MemoryStore keeps preferences in process memory. Useful for tests and for
// running without Redis; values do not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Scoped prefixes every key so several visitors can share one backend.
type Scoped struct {
	store  Store
	prefix string
}

// NewScoped returns a view of store where key k is stored as "<prefix>:<k>".
func NewScoped(store Store, prefix string) *Scoped {
	return &Scoped{store: store, prefix: prefix}
}

func (s *Scoped) Get(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, s.key(key))
}

func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.key(key), value)
}

func (s *Scoped) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}
