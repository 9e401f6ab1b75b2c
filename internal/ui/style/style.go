// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Focus, Selection, etc.) rather than
// visual (RedBold, etc.). When disabled, all helpers return the input string
// unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	// Pre-created styles, only used when enabled is true.
	successStyle   lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	infoStyle      lipgloss.Style
	headerStyle    lipgloss.Style
	mutedStyle     lipgloss.Style
	focusStyle     lipgloss.Style
	selectionStyle lipgloss.Style
)

// Init initializes the style package with the given enabled state and config.
// It also respects NO_COLOR and GTDIALOG_NO_COLOR; if either is set to a
// non-empty value, styling is disabled regardless of enable.
//
// cfg supplies the theme and individual color overrides. If cfg is nil,
// default colors are used.
//
// This function should be called once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("GTDIALOG_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

// initStyles creates the lipgloss styles from the given color configuration.
func initStyles(colors ColorConfig) {
	// Force ANSI256 regardless of TTY detection; stdout is usually captured.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	focusStyle = makeStyle(colors.Focus).Bold(true).Reverse(true)
	selectionStyle = makeStyle(colors.Selection).Bold(true)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Focus styles the focused button or entry. Without color the text is
// wrapped in brackets so focus stays visible.
func Focus(text string) string {
	if !enabled {
		return "[" + text + "]"
	}
	return focusStyle.Render(" " + text + " ")
}

// Selection styles a highlighted list row.
func Selection(text string) string {
	if !enabled {
		return text
	}
	return selectionStyle.Render(text)
}

// Frame returns the style of a dialog's outer box.
func Frame() lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if enabled && colors.Border != "" && colors.Border != "bold" {
		s = s.BorderForeground(lipgloss.Color(colors.Border))
	}
	return s
}
