package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success   string
	Warning   string
	Error     string
	Info      string
	Muted     string
	Header    string
	Border    string // dialog frame
	Focus     string // focused button or entry
	Selection string // highlighted list row
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
	"contrast",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success:   "10",  // bright green
		Warning:   "11",  // bright yellow
		Error:     "9",   // bright red
		Info:      "14",  // bright cyan
		Muted:     "245", // medium gray
		Header:    "bold",
		Border:    "12",  // bright blue
		Focus:     "14",  // bright cyan
		Selection: "11",  // bright yellow
	},
	"default-light": {
		Success:   "28",  // dark green
		Warning:   "130", // dark orange
		Error:     "124", // dark red
		Info:      "27",  // dark blue
		Muted:     "243", // medium-dark gray
		Header:    "bold",
		Border:    "25",  // navy
		Focus:     "27",  // dark blue
		Selection: "130", // dark orange
	},

	// Grayscale with a single cyan or teal accent.
	"mono-dark": {
		Success:   "50",
		Warning:   "229",
		Error:     "210",
		Info:      "50",
		Muted:     "245",
		Header:    "bold",
		Border:    "248",
		Focus:     "50",
		Selection: "255",
	},
	"mono-light": {
		Success:   "30",
		Warning:   "136",
		Error:     "124",
		Info:      "30",
		Muted:     "244",
		Header:    "bold",
		Border:    "244",
		Focus:     "30",
		Selection: "235",
	},

	"ocean-dark": {
		Success:   "43",  // turquoise
		Warning:   "221", // light gold
		Error:     "174", // light coral
		Info:      "75",  // sky blue
		Muted:     "245",
		Header:    "bold",
		Border:    "67",  // steel blue
		Focus:     "80",  // medium turquoise
		Selection: "159", // light cyan
	},
	"ocean-light": {
		Success:   "30",
		Warning:   "130",
		Error:     "124",
		Info:      "25",
		Muted:     "244",
		Header:    "bold",
		Border:    "66",
		Focus:     "37",
		Selection: "17",
	},

	// Pure primaries for maximum readability.
	"contrast-dark": {
		Success:   "46",
		Warning:   "226",
		Error:     "196",
		Info:      "51",
		Muted:     "250",
		Header:    "bold",
		Border:    "231",
		Focus:     "226",
		Selection: "51",
	},
	"contrast-light": {
		Success:   "22",
		Warning:   "130",
		Error:     "124",
		Info:      "21",
		Muted:     "240",
		Header:    "bold",
		Border:    "232",
		Focus:     "21",
		Selection: "124",
	},
}

// colorConfigKeys maps config key names to ColorConfig fields.
var colorConfigKeys = map[string]func(*ColorConfig) *string{
	"color_success":   func(c *ColorConfig) *string { return &c.Success },
	"color_warning":   func(c *ColorConfig) *string { return &c.Warning },
	"color_error":     func(c *ColorConfig) *string { return &c.Error },
	"color_info":      func(c *ColorConfig) *string { return &c.Info },
	"color_muted":     func(c *ColorConfig) *string { return &c.Muted },
	"color_header":    func(c *ColorConfig) *string { return &c.Header },
	"color_border":    func(c *ColorConfig) *string { return &c.Border },
	"color_focus":     func(c *ColorConfig) *string { return &c.Focus },
	"color_selection": func(c *ColorConfig) *string { return &c.Selection },
}

// IsDarkBackground returns true if the terminal behind stderr, where dialogs
// are drawn, has a dark background. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.NewOutput(os.Stderr).HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (GTDIALOG_COLOR_*)
// 2. Config file value
// 3. Theme value (GTDIALOG_THEME, then the theme config key)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if envTheme := os.Getenv("GTDIALOG_THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = cfgTheme
	}

	// Unknown themes fall back to default-dark.
	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for configKey, field := range colorConfigKeys {
		if envVal := os.Getenv("GTDIALOG_" + strings.ToUpper(configKey)); envVal != "" {
			*field(&result) = envVal
			continue
		}
		if cfgVal := cfg[configKey]; cfgVal != "" {
			*field(&result) = cfgVal
		}
	}

	return result
}
