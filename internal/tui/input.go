package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

// input is the body of the inputbox family. With two or more labels it
// shows one entry per label; Up and Down move between them.
type input struct {
	info    string
	labels  []string
	entries []textinput.Model
	active  int
}

func newInput(o *dialog.Options, width int) *input {
	c := &input{info: o.InformativeText}

	n := 1
	if o.MultipleEntries() {
		c.labels = o.Labels
		n = len(o.Labels)
	}

	for i := range n {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Width = max(width-len(ti.Prompt)-1, 1)
		ti.CharLimit = 0
		if o.Masked() {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '*'
		}
		if i < len(o.Texts) {
			ti.SetValue(o.Texts[i])
		} else if i == 0 && o.Text != "" {
			ti.SetValue(o.Text)
		}
		c.entries = append(c.entries, ti)
	}
	c.entries[0].Focus()
	return c
}

func (c *input) Init() tea.Cmd {
	return textinput.Blink
}

func (c *input) Focusable() bool {
	return true
}

func (c *input) HandlesKey(msg tea.KeyMsg) bool {
	return msg.Type != tea.KeyEnter
}

func (c *input) Update(msg tea.Msg) (content, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && len(c.entries) > 1 {
		switch key.Type {
		case tea.KeyUp:
			return c, c.setActive(c.active - 1)
		case tea.KeyDown:
			return c, c.setActive(c.active + 1)
		}
	}

	var cmd tea.Cmd
	c.entries[c.active], cmd = c.entries[c.active].Update(msg)
	return c, cmd
}

func (c *input) setActive(i int) tea.Cmd {
	i = min(max(i, 0), len(c.entries)-1)
	if i == c.active {
		return nil
	}
	c.entries[c.active].Blur()
	c.active = i
	return c.entries[i].Focus()
}

func (c *input) Fill(r *dialog.Result) {
	r.Entries = make([]string, len(c.entries))
	for i, e := range c.entries {
		r.Entries[i] = e.Value()
	}
}

func (c *input) View(width, height int) string {
	var lines []string
	if c.info != "" {
		lines = append(lines, wrap(c.info, width), "")
	}
	for i, e := range c.entries {
		if i < len(c.labels) {
			label := c.labels[i]
			if i == c.active {
				label = style.Info(label)
			}
			lines = append(lines, label)
		}
		lines = append(lines, e.View())
	}
	return clip(strings.Join(lines, "\n"), height)
}
