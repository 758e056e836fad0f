package feature

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
)

// MemoryProvider keeps flags in memory. Safe for concurrent use.
type MemoryProvider struct {
	mu    sync.RWMutex
	flags map[string]Flag
}

// NewMemoryProvider creates a provider seeded with flags.
func NewMemoryProvider(flags ...Flag) (*MemoryProvider, error) {
	m := &MemoryProvider{flags: make(map[string]Flag, len(flags))}
	for _, f := range flags {
		if err := m.Set(f); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MemoryProvider) IsEnabled(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flags[name]
	if !ok {
		return false, ErrFlagNotFound
	}
	return f.Enabled, nil
}

// ListFlags returns all flags sorted by name.
func (m *MemoryProvider) ListFlags(_ context.Context) ([]Flag, error) {
	m.mu.RLock()
	out := make([]Flag, 0, len(m.flags))
	for _, f := range m.flags {
		out = append(out, f)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Flag) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

// Set creates or replaces a flag.
func (m *MemoryProvider) Set(f Flag) error {
	if f.Name == "" {
		return errors.Join(ErrInvalidFlag, errors.New("flag name cannot be empty"))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[f.Name] = f
	return nil
}
