package main

import (
	"context"
	"log"
	"time"

	"prochide/internal/app"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "hidectl [command]",
	Short: "hidectl: manage the process hide list",
	Long: `hidectl talks to the hide daemon over its UNIX socket. It edits the hide list,
turns hiding on and off and can run the daemon in the foreground.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
}

// controllerAPI is the part of app.App the commands use.
type controllerAPI interface {
	Ping(ctx context.Context, timeout time.Duration) (string, error)
	Add(ctx context.Context, params app.AddParams) error
	Remove(ctx context.Context, params app.RemoveParams) error
	List(ctx context.Context, timeout time.Duration) ([]app.Target, error)
	Enable(ctx context.Context, params app.EnableParams) error
	Disable(ctx context.Context, timeout time.Duration) error
	HideEnabled(ctx context.Context, timeout time.Duration) (bool, error)
	Status() (app.DaemonStatus, error)
	StopDaemon(force bool) error
	StartDaemon() (*app.DaemonHandle, error)
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{ConfigPath: configPath})
}

func controller() controllerAPI {
	return controllerFactory()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
