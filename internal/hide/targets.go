package hide

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"go.uber.org/zap"

	"prochide/internal/registry"
	"prochide/internal/sweep"
)

// Add puts (pkg, proc) on the hide list. An empty proc hides the package's
// main process. The pair is stored before it becomes visible in memory, and
// running instances are terminated right away.
func (m *Manager) Add(ctx context.Context, pkg, proc string) error {
	if proc == "" {
		proc = pkg
	}
	if !registry.Valid(pkg) || !registry.Valid(proc) {
		return fmt.Errorf("%w: %q/%q", ErrInvalidPkg, pkg, proc)
	}
	t := registry.Target{Package: pkg, Process: proc}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.targets.Has(t) {
		return fmt.Errorf("%w: %s", ErrItemExists, t)
	}
	if err := m.opts.Store.InsertTarget(ctx, t); err != nil {
		return fmt.Errorf("%w: store %s: %w", ErrDaemon, t, err)
	}
	m.insertLocked(t)
	m.rebuildLocked()
	return nil
}

// Remove drops (pkg, proc) from the hide list, or every entry of pkg when
// proc is empty.
func (m *Manager) Remove(ctx context.Context, pkg, proc string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := m.targets.Remove(pkg, proc)
	if len(removed) == 0 {
		return fmt.Errorf("%w: %s|%s", ErrItemNotExists, pkg, proc)
	}
	for _, t := range removed {
		m.log.Info("hide list rm", zap.Stringer("target", t))
	}
	m.rebuildLocked()

	// A row left behind here comes back on the next Enable.
	if err := m.opts.Store.DeleteTarget(ctx, pkg, proc); err != nil {
		m.log.Error("delete hide item", zap.String("package", pkg), zap.String("process", proc), zap.Error(err))
	}
	return nil
}

// List yields the hide list as it was when List was called.
func (m *Manager) List() iter.Seq[registry.Target] {
	m.mu.Lock()
	snap := m.targets.Snapshot()
	m.mu.Unlock()
	return slices.Values(snap)
}

// insertLocked adds t in memory if it is new, then sweeps its running
// instances either way.
func (m *Manager) insertLocked(t registry.Target) {
	if m.targets.Add(t) {
		m.log.Info("hide list add", zap.Stringer("target", t))
	}
	m.sweepLocked(t)
}

// sweepLocked terminates running instances of t. Isolated templates match
// every process whose name starts with t.Process.
func (m *Manager) sweepLocked(t registry.Target) {
	if m.sweeper == nil {
		return
	}
	if t.Isolated() {
		m.sweeper.Kill(t.Process, true, sweep.Prefix)
	} else {
		m.sweeper.Kill(t.Process, false, sweep.Exact)
	}
}
