package domain

// ConfigProvider defines read access to configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler renders help and error text.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Info styles command and option names.
	Info(text string) string

	// Muted styles secondary text such as usage arguments.
	Muted(text string) string

	// Header styles section titles.
	Header(text string) string

	// Error styles error messages.
	Error(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config ConfigProvider
	Logger Logger
	Styler Styler
}
