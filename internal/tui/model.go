package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

// Default dialog sizes in cells, border included.
const (
	defaultWidth      = 40
	defaultHeight     = 10
	defaultTallHeight = 20

	// border and horizontal padding of the frame
	frameWidth  = 4
	frameHeight = 2
)

// content is the part of a dialog between the title and the button row.
type content interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (content, tea.Cmd)
	View(width, height int) string

	// Focusable reports whether the content takes keys at all.
	Focusable() bool

	// HandlesKey reports whether the content wants msg while focused,
	// including Enter and the arrow keys that would otherwise move
	// between buttons.
	HandlesKey(msg tea.KeyMsg) bool

	// Fill copies the widget state into r when a button closes the dialog.
	Fill(r *dialog.Result)
}

type timeoutMsg struct{}

// submitMsg closes the dialog from inside the content, like pressing a
// button with the given code.
type submitMsg struct {
	code   int
	result dialog.Result
}

func submit(code int, r dialog.Result) tea.Cmd {
	return func() tea.Msg { return submitMsg{code: code, result: r} }
}

// model is the frame shared by every dialog: title, content, buttons.
type model struct {
	opts    *dialog.Options
	content content
	buttons buttonRow

	contentFocused bool
	termWidth      int
	termHeight     int

	done   bool
	result dialog.Result
}

func newModel(o *dialog.Options) model {
	c := newContent(o)

	m := model{
		opts:    o,
		content: c,
		buttons: newButtonRow(o),
	}
	m.contentFocused = c.Focusable() && !(o.Type == dialog.Textbox && !o.Editable && !o.FocusTextbox)
	if m.buttons.len() == 0 && c.Focusable() {
		m.contentFocused = true
	}
	return m
}

func newContent(o *dialog.Options) content {
	switch {
	case o.Type.IsMsgbox():
		return newMessage(o)
	case o.Type.IsInputbox():
		return newInput(o, innerWidth(o))
	case o.Type == dialog.Textbox:
		return newText(o, innerWidth(o), innerHeight(o))
	case o.Type == dialog.Progressbar:
		return newProgress(o, innerWidth(o))
	case o.Type.IsDropdown():
		return newDropdown(o)
	case o.Type == dialog.FilteredList:
		return newFilteredList(o, innerWidth(o))
	case o.Type == dialog.OptionSelect:
		return newOptionList(o)
	case o.Type == dialog.FileSave:
		return newFileSave(o, innerWidth(o), innerHeight(o))
	case o.Type.IsFile():
		return newFileSelect(o, innerHeight(o))
	}
	return newMessage(o)
}

func dialogWidth(o *dialog.Options) int {
	if o.Width > 0 {
		return o.Width
	}
	return defaultWidth
}

func dialogHeight(o *dialog.Options) int {
	if o.Height > 0 {
		return o.Height
	}
	switch o.Type {
	case dialog.Textbox, dialog.FilteredList, dialog.FileSelect, dialog.FileSave:
		return defaultTallHeight
	}
	return defaultHeight
}

func innerWidth(o *dialog.Options) int {
	return max(dialogWidth(o)-frameWidth, 1)
}

// innerHeight leaves room for the title line and the button row.
func innerHeight(o *dialog.Options) int {
	return max(dialogHeight(o)-frameHeight-2, 1)
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.content.Init()}
	if m.opts.Timeout > 0 && m.opts.Type.CanTimeout() {
		cmds = append(cmds, tea.Tick(time.Duration(m.opts.Timeout)*time.Second, func(time.Time) tea.Msg {
			return timeoutMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case timeoutMsg:
		return m.close(dialog.Result{Code: dialog.ResponseTimeout})

	case submitMsg:
		r := msg.result
		r.Code = msg.code
		return m.close(r)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	if p, ok := m.content.(*meter); ok {
		m.buttons.setDisabled(1, !p.stopEnabled)
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.close(dialog.Result{Code: dialog.ResponseDelete})

	case tea.KeyTab:
		m.focusNext(1)
		return m, nil

	case tea.KeyShiftTab:
		m.focusNext(-1)
		return m, nil
	}

	if m.contentFocused {
		if m.content.HandlesKey(msg) {
			var cmd tea.Cmd
			m.content, cmd = m.content.Update(msg)
			return m, cmd
		}
		if msg.Type == tea.KeyEnter {
			return m.press(1)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyLeft:
		m.buttons.move(-1)
	case tea.KeyRight:
		m.buttons.move(1)
	case tea.KeyEnter:
		return m.press(m.buttons.focusedCode())
	}
	return m, nil
}

// focusNext walks the focus ring: content first, then the buttons left to
// right.
func (m *model) focusNext(dir int) {
	n := m.buttons.len()
	if n == 0 {
		return
	}
	if !m.content.Focusable() {
		m.buttons.move(dir)
		return
	}

	switch {
	case m.contentFocused && dir > 0:
		m.contentFocused = false
		m.buttons.focus = 0
	case m.contentFocused:
		m.contentFocused = false
		m.buttons.focus = n - 1
	case dir > 0 && m.buttons.focus == n-1, dir < 0 && m.buttons.focus == 0:
		m.contentFocused = true
	default:
		m.buttons.move(dir)
	}
}

// press handles a button with the given 1-based code.
func (m model) press(code int) (tea.Model, tea.Cmd) {
	if code < 1 || code > 3 || m.opts.Buttons[code-1] == "" {
		return m, nil
	}
	if p, ok := m.content.(*meter); ok {
		if !p.stopEnabled {
			return m, nil
		}
		return m.close(dialog.Result{Code: code, Stopped: true})
	}

	r := dialog.Result{Code: code}
	m.content.Fill(&r)
	return m.close(r)
}

func (m model) close(r dialog.Result) (tea.Model, tea.Cmd) {
	m.done = true
	m.result = r
	return m, tea.Quit
}

func (m model) View() string {
	if m.done {
		return ""
	}

	width := dialogWidth(m.opts)
	if m.termWidth > 0 {
		width = min(width, m.termWidth)
	}
	inner := max(width-frameWidth, 1)

	var b strings.Builder
	b.WriteString(style.Header(truncate(m.opts.Title, inner)))
	b.WriteString("\n")
	b.WriteString(m.content.View(inner, innerHeight(m.opts)))
	if row := m.buttons.view(!m.contentFocused); row != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Right, row))
	}

	frame := style.Frame().Width(width - 2).Render(b.String())
	if m.termWidth == 0 || m.termHeight == 0 {
		return frame
	}
	return overlay.Composite(frame, blank(m.termWidth, m.termHeight), overlay.Center, overlay.Center, 0, 0)
}

// blank is an empty screen of the given size to center the dialog on.
func blank(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
