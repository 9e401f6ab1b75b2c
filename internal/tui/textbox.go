package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtdialog/gtdialog/internal/dialog"
)

// textbox shows a block of text: read-only in a viewport, or in a textarea
// with --editable.
type textbox struct {
	info     string
	editable bool
	view     viewport.Model
	area     textarea.Model
}

func newText(o *dialog.Options, width, height int) *textbox {
	c := &textbox{info: o.InformativeText, editable: o.Editable}

	h := height
	if c.info != "" {
		h = max(height-lineCount(wrap(c.info, width))-1, 1)
	}

	if c.editable {
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.CharLimit = 0
		ta.MaxHeight = 0
		ta.SetWidth(width)
		ta.SetHeight(h)
		ta.SetValue(o.Text)
		ta.Focus()
		if o.ScrollTo != "bottom" {
			ta, _ = ta.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
		}
		c.area = ta
		return c
	}

	vp := viewport.New(width, h)
	vp.SetContent(wrap(o.Text, width))
	if o.ScrollTo == "bottom" {
		vp.GotoBottom()
	}
	c.view = vp
	return c
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

func (c *textbox) Init() tea.Cmd {
	if c.editable {
		return textarea.Blink
	}
	return nil
}

func (c *textbox) Focusable() bool {
	return true
}

// HandlesKey gives Enter to the textarea as a newline; the read-only view
// lets Enter press the default button.
func (c *textbox) HandlesKey(msg tea.KeyMsg) bool {
	return c.editable || msg.Type != tea.KeyEnter
}

func (c *textbox) Update(msg tea.Msg) (content, tea.Cmd) {
	var cmd tea.Cmd
	if c.editable {
		c.area, cmd = c.area.Update(msg)
	} else {
		c.view, cmd = c.view.Update(msg)
	}
	return c, cmd
}

func (c *textbox) Fill(r *dialog.Result) {
	if c.editable {
		r.Entries = []string{c.area.Value()}
	}
}

func (c *textbox) View(width, height int) string {
	body := c.view.View()
	if c.editable {
		body = c.area.View()
	}
	if c.info != "" {
		body = wrap(c.info, width) + "\n" + body
	}
	return clip(body, height)
}
