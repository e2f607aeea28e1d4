// Package monitor provides a polling fallback for the process monitor. It
// periodically scans the process table and terminates processes listed in
// the UID map, and can be nudged to scan immediately.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"prochide/internal/proctable"
	"prochide/internal/sweep"
	"prochide/internal/uidmap"
)

// Android UID layout: uid = user*PerUserRange + appid.
const (
	PerUserRange       = 100000
	FirstIsolatedAppID = 90000
	LastIsolatedAppID  = 99999
)

// Source is what the poller reads on each scan.
type Source interface {
	UIDMap() uidmap.Map
	Table() proctable.Table
}

// IsolatedUID reports whether uid belongs to an isolated or app zygote process.
func IsolatedUID(uid int) bool {
	appID := uid % PerUserRange
	return appID >= FirstIsolatedAppID && appID <= LastIsolatedAppID
}

// Poller scans every interval while started.
type Poller struct {
	src      Source
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	refresh chan struct{}
}

// NewPoller returns a stopped poller.
func NewPoller(src Source, interval time.Duration, log *zap.Logger) *Poller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{src: src, interval: interval, log: log.Named("monitor")}
}

// Start launches the scan loop. Starting a running poller is a no-op.
func (p *Poller) Start() error {
	if p.interval <= 0 {
		return errors.New("monitor interval must be > 0")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.refresh = make(chan struct{}, 1)
	go p.loop(ctx, p.done, p.refresh)
	p.log.Info("monitor started", zap.Duration("interval", p.interval))
	return nil
}

// Refresh requests an immediate scan.
func (p *Poller) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.refresh == nil {
		return
	}
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Stop signals the loop to exit without waiting for it.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Done is closed when the current loop has exited.
func (p *Poller) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *Poller) loop(ctx context.Context, done chan struct{}, refresh <-chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.Scan()
		select {
		case <-ctx.Done():
			p.log.Info("monitor stopped")
			return
		case <-ticker.C:
		case <-refresh:
		}
	}
}

// Scan runs one pass and returns the number of processes terminated.
func (p *Poller) Scan() int {
	table := p.src.Table()
	if table == nil {
		return 0
	}
	uids := p.src.UIDMap()
	if len(uids) == 0 {
		return 0
	}

	killed := 0
	err := table.Walk(func(pid int) bool {
		uid, err := table.UID(pid)
		if err != nil {
			return true
		}
		names, mode := uids[uid], sweep.Exact
		if IsolatedUID(uid) {
			names = append(names[:len(names):len(names)], uids[uidmap.IsolatedUID]...)
			mode = sweep.Prefix
		}
		if len(names) == 0 {
			return true
		}
		name, err := table.Cmdline(pid)
		if err != nil {
			return true
		}
		for _, target := range names {
			if !sweep.Match(name, target, mode) {
				continue
			}
			if err := table.Terminate(pid); err != nil {
				p.log.Debug("terminate failed", zap.Int("pid", pid), zap.Error(err))
			} else {
				p.log.Info("hidden process killed", zap.Int("pid", pid), zap.Int("uid", uid), zap.String("name", name))
				killed++
			}
			break
		}
		return true
	})
	if err != nil {
		p.log.Warn("scan failed", zap.Error(err))
	}
	return killed
}
