package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string
	HideIfEmpty bool // optional override, absent from the defaults
}

// ConfigKeys lists every key read from ~/.gtdialogrc.
var ConfigKeys = []ConfigKey{
	// Dialogs
	{
		Name:        "backend",
		Default:     "tui",
		Description: "Dialog backend: tui or gui",
		Section:     "Dialogs",
	},
	// Display
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean, contrast",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum level written to the log: debug, info, warn, error",
		Section:     "Logging",
	},
	// Color overrides, ANSI 0-255 or "bold"
	{Name: "color_success", Description: "Override the success color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_warning", Description: "Override the warning color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_error", Description: "Override the error color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_info", Description: "Override the info color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_muted", Description: "Override the muted color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_header", Description: "Override the header color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_border", Description: "Override the dialog border color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_focus", Description: "Override the focused button color", Section: "Color Overrides", HideIfEmpty: true},
	{Name: "color_selection", Description: "Override the selected row color", Section: "Color Overrides", HideIfEmpty: true},
}

// ConfigKeyByName returns the key named name.
func ConfigKeyByName(name string) (ConfigKey, bool) {
	for _, k := range ConfigKeys {
		if k.Name == name {
			return k, true
		}
	}
	return ConfigKey{}, false
}
