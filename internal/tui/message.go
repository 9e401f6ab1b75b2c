package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

// message is the body of the msgbox family: an optional icon, the message
// text and the informative text below it.
type message struct {
	icon string
	text string
	info string
}

func newMessage(o *dialog.Options) *message {
	return &message{icon: iconGlyph(o.Icon), text: o.Text, info: o.InformativeText}
}

// iconGlyph maps a stock icon name such as "dialog-warning" to a glyph.
func iconGlyph(name string) string {
	switch {
	case name == "":
		return ""
	case strings.Contains(name, "error"):
		return style.Error("✖")
	case strings.Contains(name, "warning"):
		return style.Warning("⚠")
	case strings.Contains(name, "question"):
		return style.Info("?")
	default:
		return style.Info("ℹ")
	}
}

func (c *message) Init() tea.Cmd { return nil }
func (c *message) Update(tea.Msg) (content, tea.Cmd) { return c, nil }
func (c *message) Focusable() bool { return false }
func (c *message) HandlesKey(tea.KeyMsg) bool { return false }
func (c *message) Fill(*dialog.Result) {}

func (c *message) View(width, height int) string {
	textWidth := width
	text := c.text
	if c.icon != "" {
		textWidth = max(width-2, 1)
	}

	var parts []string
	if text != "" {
		parts = append(parts, style.Header(wrap(text, textWidth)))
	}
	if c.info != "" {
		parts = append(parts, wrap(c.info, textWidth))
	}
	body := strings.Join(parts, "\n\n")

	if c.icon != "" {
		lines := strings.Split(body, "\n")
		for i := range lines {
			prefix := "  "
			if i == 0 {
				prefix = c.icon + " "
			}
			lines[i] = prefix + lines[i]
		}
		body = strings.Join(lines, "\n")
	}
	return clip(body, height)
}
