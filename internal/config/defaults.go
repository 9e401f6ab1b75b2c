package config

import "github.com/gtdialog/gtdialog/internal/domain"

// Defaults holds the value of every key that has one, in code, not on disk.
var Defaults = buildDefaults()

func buildDefaults() map[string]string {
	d := make(map[string]string)
	for _, key := range domain.ConfigKeys {
		if key.HideIfEmpty {
			continue
		}
		d[key.Name] = key.Default
	}
	return d
}

// load reads and parses the config file. A file that cannot be read or
// parsed counts as empty.
func load() map[string]string {
	lines, err := ReadLines()
	if err != nil {
		return nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return nil
	}
	return cfg
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	if value, exists := load()[key]; exists {
		return value, true
	}

	value, ok := Defaults[key]
	return value, ok
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		result[key] = value
	}

	for key, value := range load() {
		result[key] = value
	}

	return result, nil
}
