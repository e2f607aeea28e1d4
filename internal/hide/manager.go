// Package hide owns the hide list, the UID map derived from it and the
// enable/disable lifecycle. Every state change goes through Manager, which
// serializes them on a single lock.
package hide

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"prochide/internal/proctable"
	"prochide/internal/registry"
	"prochide/internal/store"
	"prochide/internal/sweep"
	"prochide/internal/sysinfo"
	"prochide/internal/uidmap"
)

const (
	// MinSDK is the oldest Android release hiding supports (KitKat).
	MinSDK = 19
	// ZygotePoolSDK is the first release with USAP pools and app zygotes.
	ZygotePoolSDK = 29
	// ConventionalRoot is the usual work root of the root daemon. Any other
	// root is visible to a process that inspects mounts.
	ConventionalRoot = "/sbin"
)

// Built-in targets.
const (
	GMSPackage    = "com.google.android.gms"
	MicroGPackage = "org.microg.gms.droidguard"
	// IntegrityProcess runs the device integrity check.
	IntegrityProcess = "com.google.android.gms.unstable"
)

// Monitor is the background process monitor. It is signalled, never joined.
type Monitor interface {
	Start() error
	Refresh()
	Stop()
}

// PropMasker rewrites telltale system properties.
type PropMasker interface {
	Hide(ctx context.Context)
	HideLate(ctx context.Context)
}

// UIDResolver derives the UID map from the hide list.
type UIDResolver interface {
	Build(targets []registry.Target) (uidmap.Map, error)
}

// Options wires a Manager. Store, Resolver and OpenTable are required.
type Options struct {
	Store     store.Store
	Resolver  UIDResolver
	OpenTable func() (proctable.Table, error)
	Props     PropMasker
	// SDK is the running Android API level.
	SDK int
	// WorkRoot is where the root daemon keeps its runtime files.
	WorkRoot string
	// NamespacePath is init's mount namespace handle.
	NamespacePath string
	// NamespaceAccessible defaults to sysinfo.NamespaceAccessible.
	NamespaceAccessible func(path string) bool
	Logger              *zap.Logger
}

// Manager is the hide state machine.
type Manager struct {
	opts Options
	log  *zap.Logger

	mu      sync.Mutex
	enabled bool
	targets *registry.Set
	uids    uidmap.Map
	table   proctable.Table
	sweeper *sweep.Sweeper
	monitor Monitor
}

// New returns a disabled Manager.
func New(opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NamespacePath == "" {
		opts.NamespacePath = sysinfo.DefaultInitMountNS
	}
	if opts.NamespaceAccessible == nil {
		opts.NamespaceAccessible = sysinfo.NamespaceAccessible
	}
	if opts.WorkRoot == "" {
		opts.WorkRoot = ConventionalRoot
	}
	return &Manager{
		opts:    opts,
		log:     opts.Logger.Named("hide"),
		targets: registry.NewSet(),
		uids:    make(uidmap.Map),
	}
}

// SetMonitor installs the background monitor. It must be called before the
// first Enable.
func (m *Manager) SetMonitor(mon Monitor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.monitor = mon
}

// Enabled reports the current state.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// UIDMap returns a copy of the current UID map.
func (m *Manager) UIDMap() uidmap.Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uids.Clone()
}

// Table returns the shared process table, or nil before the first Enable.
func (m *Manager) Table() proctable.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table
}

// Enable turns hiding on. Initialization is not rolled back if a later step
// fails: re-running it from the stored list is idempotent.
func (m *Manager) Enable(ctx context.Context, late bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opts.SDK < MinSDK {
		return fmt.Errorf("%w: sdk %d", ErrUnsupported, m.opts.SDK)
	}
	if m.enabled {
		return ErrAlreadyEnabled
	}
	if !m.opts.NamespaceAccessible(m.opts.NamespacePath) {
		return fmt.Errorf("%w: %s", ErrNoNamespace, m.opts.NamespacePath)
	}
	if m.table == nil {
		table, err := m.opts.OpenTable()
		if err != nil {
			return fmt.Errorf("%w: open process table: %w", ErrDaemon, err)
		}
		m.table = table
		m.sweeper = sweep.New(table, m.opts.Logger.Named("sweep"))
	}

	m.log.Info("enabling hide", zap.Int("sdk", m.opts.SDK), zap.Bool("late_props", late))
	if err := m.initLocked(ctx); err != nil {
		return err
	}

	if m.opts.Props != nil {
		m.opts.Props.Hide(ctx)
		if late {
			m.opts.Props.HideLate(ctx)
		}
	}

	if m.monitor != nil {
		if err := m.monitor.Start(); err != nil {
			return fmt.Errorf("%w: start monitor: %w", ErrDaemon, err)
		}
	}

	m.enabled = true
	m.persistStateLocked(ctx)
	return nil
}

func (m *Manager) initLocked(ctx context.Context) error {
	stored, err := m.opts.Store.Targets(ctx)
	if err != nil {
		return fmt.Errorf("%w: load hide list: %w", ErrDaemon, err)
	}
	for _, t := range stored {
		m.insertLocked(t)
	}

	if m.opts.SDK >= ZygotePoolSDK {
		m.sweeper.Kill("usap32", true, sweep.Prefix)
		m.sweeper.Kill("usap64", true, sweep.Prefix)
		m.sweeper.Kill("_zygote", true, sweep.SuffixExceptWebviewZygote)
	}

	m.insertLocked(registry.Target{Package: GMSPackage, Process: IntegrityProcess})
	m.insertLocked(registry.Target{Package: MicroGPackage, Process: IntegrityProcess})
	if m.opts.WorkRoot != ConventionalRoot {
		// The integrity process reports to the main GMS process.
		m.insertLocked(registry.Target{Package: GMSPackage, Process: GMSPackage})
	}

	m.rebuildLocked()
	return nil
}

// Disable turns hiding off. The stored hide list is kept for the next Enable.
func (m *Manager) Disable(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		m.log.Info("disabling hide")
		m.uids = make(uidmap.Map)
		m.targets.Clear()
		if m.monitor != nil {
			m.monitor.Stop()
		}
	}
	m.enabled = false
	m.persistStateLocked(ctx)
}

// ResumeFromConfig re-applies the stored state at boot or on a late trigger.
func (m *Manager) ResumeFromConfig(ctx context.Context, late bool) {
	if m.Enabled() {
		m.mu.Lock()
		mon := m.monitor
		m.mu.Unlock()
		if mon != nil {
			mon.Refresh()
		}
		if m.opts.Props != nil {
			m.opts.Props.HideLate(ctx)
		}
		return
	}
	if m.opts.SDK < MinSDK {
		return
	}
	on, err := m.opts.Store.HideConfig(ctx)
	if err != nil {
		m.log.Warn("read hide config", zap.Error(err))
		return
	}
	if !on {
		return
	}
	// A client may have enabled hiding since the check above.
	if err := m.Enable(ctx, late); err != nil && !errors.Is(err, ErrAlreadyEnabled) {
		m.log.Error("resume hide", zap.Error(err))
	}
}

func (m *Manager) persistStateLocked(ctx context.Context) {
	if err := m.opts.Store.SetHideConfig(ctx, m.enabled); err != nil {
		m.log.Error("persist hide config", zap.Bool("enabled", m.enabled), zap.Error(err))
	}
}

// rebuildLocked recomputes the UID map from scratch.
func (m *Manager) rebuildLocked() {
	uids, err := m.opts.Resolver.Build(m.targets.Snapshot())
	if err != nil {
		m.log.Warn("rebuild uid map", zap.Error(err))
		uids = make(uidmap.Map)
	}
	m.uids = uids
}
