package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"prochide/internal/config"
	"prochide/internal/daemon"
	"prochide/internal/logging"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config file")
	force := flag.Bool("force", false, "Stop an existing daemon before starting")
	storeDriver := flag.String("store", "", "Store driver override (sqlite, bolt, memory)")
	debug := flag.Bool("debug", false, "Log at debug level to the console")
	flag.Parse()

	cfg, err := config.Load(*configPath, nil)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *storeDriver != "" {
		cfg.StoreDriver = *storeDriver
	}
	cfg.Debug = cfg.Debug || *debug
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if daemon.IsRunning() {
		if !*force {
			pid, err := daemon.RunningPID()
			if err != nil {
				logger.Fatal("daemon appears running but pid check failed", zap.Error(err))
			}
			logger.Info("daemon is already running, use --force to restart", zap.Int("pid", pid))
			return
		}
		logger.Info("stopping existing daemon")
		if err := daemon.StopRunningDaemon(true); err != nil {
			logger.Fatal("failed to stop running daemon", zap.Error(err))
		}
	}

	srv, err := daemon.StartDaemon(cfg, logger)
	if err != nil {
		logger.Fatal("failed to start daemon", zap.Error(err))
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logger.Info("stopping daemon", zap.Stringer("signal", sig))
	if err := srv.Close(); err != nil {
		logger.Fatal("error shutting down daemon", zap.Error(err))
	}
}
