package app

import (
	"fmt"

	"prochide/internal/config"
	"prochide/internal/daemon"
	"prochide/internal/logging"

	"go.uber.org/zap"
)

// DaemonStatus represents current information about the daemon process.
type DaemonStatus struct {
	Running bool
	PID     int
}

// Status returns whether the daemon is running and its PID if known.
func (a *App) Status() (DaemonStatus, error) {
	if !daemonIsRunning() {
		return DaemonStatus{Running: false}, nil
	}
	pid, err := daemon.RunningPID()
	if err != nil {
		return DaemonStatus{Running: true}, err
	}
	return DaemonStatus{Running: true, PID: pid}, nil
}

// StopDaemon attempts to stop the running daemon.
func (a *App) StopDaemon(force bool) error {
	return daemon.StopRunningDaemon(force)
}

// DaemonHandle holds a running daemon instance.
type DaemonHandle struct {
	srv *daemon.Server
	log *zap.Logger
}

// Close stops the running daemon instance.
func (h *DaemonHandle) Close() error {
	if h == nil || h.srv == nil {
		return nil
	}
	err := h.srv.Close()
	// Sync fails on terminals; only the shutdown error matters.
	_ = h.log.Sync()
	return err
}

// StartDaemon loads the configuration and starts the daemon in-process.
func (a *App) StartDaemon() (*DaemonHandle, error) {
	cfg, err := config.Load(a.cfgPath, nil)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	srv, err := daemon.StartDaemon(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &DaemonHandle{srv: srv, log: log}, nil
}
