package store

import (
	"context"
	"fmt"
	"sync"

	"prochide/internal/registry"
)

// Memory is a non-persistent Store. FailWrites makes every write fail, which
// lets callers exercise store error paths.
type Memory struct {
	mu         sync.Mutex
	targets    map[registry.Target]struct{}
	hideConfig bool
	FailWrites error
}

// NewMemory returns an empty memory store.
func NewMemory() *Memory {
	return &Memory{targets: make(map[registry.Target]struct{})}
}

func (m *Memory) Targets(context.Context) ([]registry.Target, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]registry.Target, 0, len(m.targets))
	for t := range m.targets {
		out = append(out, t)
	}
	return out, nil
}

func (m *Memory) InsertTarget(_ context.Context, t registry.Target) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if _, ok := m.targets[t]; ok {
		return fmt.Errorf("hidelist: %s already stored", t)
	}
	m.targets[t] = struct{}{}
	return nil
}

func (m *Memory) DeleteTarget(_ context.Context, pkg, proc string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for t := range m.targets {
		if t.Package == pkg && (proc == "" || t.Process == proc) {
			delete(m.targets, t)
		}
	}
	return nil
}

func (m *Memory) HideConfig(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hideConfig, nil
}

func (m *Memory) SetHideConfig(_ context.Context, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.hideConfig = enabled
	return nil
}

func (m *Memory) Close() error { return nil }
