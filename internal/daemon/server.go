package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	hidev1 "prochide/api/hide/v1"
	"prochide/internal/config"
	"prochide/internal/hide"
	"prochide/internal/monitor"
	"prochide/internal/proctable"
	"prochide/internal/props"
	"prochide/internal/store"
	"prochide/internal/sysinfo"
	"prochide/internal/uidmap"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Server wraps the gRPC server, the UNIX listener and the hide manager.
type Server struct {
	grpc    *grpc.Server
	path    string
	mgr     *hide.Manager
	store   store.Store
	monitor *monitor.Poller
	log     *zap.Logger
}

// Manager exposes the hide manager served by s.
func (s *Server) Manager() *hide.Manager {
	return s.mgr
}

// Close stops serving, halts the monitor, closes the store and unlinks the
// socket and PID file. Hide state is left as persisted.
func (s *Server) Close() error {
	var err error
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.monitor != nil {
		s.monitor.Stop()
	}
	if s.store != nil {
		err = multierr.Append(err, s.store.Close())
	}
	if s.path != "" {
		err = multierr.Append(err, removeIfExists(s.path))
	}
	err = multierr.Append(err, RemovePID())
	if err == nil {
		s.log.Info("daemon stopped")
	}
	return err
}

// NewManager wires a hide manager and, when cfg enables it, its polling
// monitor from cfg.
func NewManager(cfg config.Config, st store.Store, log *zap.Logger) (*hide.Manager, *monitor.Poller) {
	sdk, err := sysinfo.SDK(cfg.SDKInt, cfg.BuildProp)
	if err != nil {
		// Enable reports Unsupported for SDK 0.
		log.Warn("detect android sdk", zap.String("build_prop", cfg.BuildProp), zap.Error(err))
	}
	procRoot := cfg.ProcRoot
	mgr := hide.New(hide.Options{
		Store:    st,
		Resolver: uidmap.New(afero.NewOsFs(), cfg.AppDataRoot, uidmap.StatOwner),
		OpenTable: func() (proctable.Table, error) {
			t, err := proctable.Open(procRoot)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		Props:         props.NewResetprop(cfg.ResetpropPath, nil, log.Named("props")),
		SDK:           sdk,
		WorkRoot:      cfg.WorkRoot,
		NamespacePath: cfg.NamespacePath,
		Logger:        log,
	})
	if cfg.MonitorInterval <= 0 {
		return mgr, nil
	}
	poller := monitor.NewPoller(mgr, cfg.MonitorInterval, log)
	mgr.SetMonitor(poller)
	return mgr, poller
}

func newGRPCServer(mgr *hide.Manager, log *zap.Logger) *grpc.Server {
	srv := grpc.NewServer()
	hidev1.RegisterHideServer(srv, newService(mgr, log))
	return srv
}

// StartDaemon opens the store, binds the UNIX socket and serves the hide
// service. The stored hide state is resumed in the background.
func StartDaemon(cfg config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := EnsureRuntimeDir(); err != nil {
		return nil, err
	}
	path := SocketPath()

	// If stale socket file exists but daemon is not running, remove it
	if _, err := os.Stat(path); err == nil && !IsRunning() {
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}

	st, err := store.Open(cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, multierr.Append(err, st.Close())
	}
	if err := os.Chmod(path, 0o600); err != nil {
		ln.Close()
		return nil, multierr.Append(err, st.Close())
	}

	mgr, poller := NewManager(cfg, st, log)
	s := &Server{
		grpc:    newGRPCServer(mgr, log),
		path:    path,
		mgr:     mgr,
		store:   st,
		monitor: poller,
		log:     log,
	}
	if err := WritePID(os.Getpid()); err != nil {
		ln.Close()
		return nil, multierr.Append(err, s.Close())
	}
	go func() {
		if err := s.grpc.Serve(ln); err != nil {
			log.Error("grpc serve", zap.Error(err))
		}
	}()
	go mgr.ResumeFromConfig(context.Background(), false)

	log.Info("daemon started",
		zap.String("socket", path),
		zap.String("store", cfg.StoreDriver),
		zap.Int("pid", os.Getpid()))
	return s, nil
}

// StopRunningDaemon sends a termination signal to the currently running daemon if any.
func StopRunningDaemon(force bool) error {
	pid, err := RunningPID()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if IsRunning() {
				return fmt.Errorf("daemon is running but PID file %q is missing; stop it manually", PIDPath())
			}
			return nil
		}
		return fmt.Errorf("unable to read daemon PID: %w", err)
	}
	if pid == os.Getpid() {
		return errors.New("refusing to stop current process")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := sendSignal(proc, syscall.SIGTERM); err != nil {
		return err
	}
	if waitForShutdown(3 * time.Second) {
		return nil
	}
	if !force {
		return fmt.Errorf("daemon process %d did not exit after SIGTERM", pid)
	}
	if err := sendSignal(proc, syscall.SIGKILL); err != nil {
		return err
	}
	if waitForShutdown(2 * time.Second) {
		return nil
	}
	return fmt.Errorf("daemon process %d did not exit after SIGKILL", pid)
}

func sendSignal(proc *os.Process, sig syscall.Signal) error {
	if err := proc.Signal(sig); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			_ = RemovePID()
			return nil
		}
		return err
	}
	return nil
}

func waitForShutdown(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if !IsRunning() {
			_ = RemovePID()
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}
