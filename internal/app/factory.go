package app

import (
	"strings"

	"github.com/gtdialog/gtdialog/internal/config"
	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/domain"
	"github.com/gtdialog/gtdialog/internal/gui"
	"github.com/gtdialog/gtdialog/internal/log"
	"github.com/gtdialog/gtdialog/internal/paths"
	"github.com/gtdialog/gtdialog/internal/tui"
	"github.com/gtdialog/gtdialog/internal/ui/style"
	"github.com/gtdialog/gtdialog/internal/usage"
)

// Version is set at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// BackendEnv names the environment variable that selects a backend.
const BackendEnv = "GTDIALOG_BACKEND"

// Backends lists the valid backend names, default first.
var Backends = []string{tui.Name, gui.Name}

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions returns the options read from the config file.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		LogLevel:     log.ParseLevel(logLevel),
		LogPath:      paths.LogFilePath(),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) *domain.Application {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		// A log file that cannot be opened leaves logging off.
		if l, err := log.New(opts.LogPath, opts.LogLevel); err == nil {
			l.SetRunID(log.NewRunID())
			logger = l
		}
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &domain.Application{
		Config: config.NewProvider(),
		Logger: logger,
		Styler: style.NewStyler(),
	}
}

// NewForTesting creates an Application with a NopLogger and no styling.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		return app.Logger.Close()
	}
	return nil
}

// ResolveBackendName picks the backend from the --backend value, then the
// environment, then the config file, falling back to the terminal.
func ResolveBackendName(flag string, getenv func(string) string, cfg domain.ConfigProvider) string {
	if flag != "" {
		return flag
	}
	if env := getenv(BackendEnv); env != "" {
		return env
	}
	if cfg != nil {
		if v, ok := cfg.Get("backend"); ok && v != "" {
			return v
		}
	}
	return tui.Name
}

// NewBackend returns the backend called name.
func NewBackend(name string, logger domain.Logger) (dialog.Backend, error) {
	switch strings.ToLower(name) {
	case tui.Name:
		return tui.New(logger), nil
	case gui.Name:
		return gui.New(logger), nil
	}
	return nil, usage.InvalidBackend(name, Backends)
}

// BackendFunc returns the backend selector used by the show action.
func BackendFunc(app *domain.Application, getenv func(string) string) func(string) (dialog.Backend, error) {
	return func(flag string) (dialog.Backend, error) {
		name := ResolveBackendName(flag, getenv, app.Config)
		app.Logger.Debug("backend %q selected", name)
		return NewBackend(name, app.Logger)
	}
}
