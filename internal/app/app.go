package app

// Options configures the top-level controller.
type Options struct {
	// ConfigPath points to the optional daemon config file. It is only read
	// when the daemon is started in-process.
	ConfigPath string
}

// App is the client-side facade over the hide daemon shared by the CLI and
// the TUI.
type App struct {
	cfgPath string
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	return &App{cfgPath: opts.ConfigPath}
}

// ConfigPath returns the configured config file path (if any).
func (a *App) ConfigPath() string {
	return a.cfgPath
}
