package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/ui/scrollbar"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

// cursorList tracks a cursor over n rows and the scroll offset of the
// window showing them.
type cursorList struct {
	n      int
	cursor int
	offset int
	height int
}

// navigates reports whether msg moves the cursor.
func navigates(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
		return true
	}
	return false
}

// navigate moves the cursor for a navigation key and reports whether it
// moved.
func (l *cursorList) navigate(msg tea.KeyMsg) bool {
	page := max(l.height, 1)
	before := l.cursor
	switch msg.Type {
	case tea.KeyUp:
		l.set(l.cursor - 1)
	case tea.KeyDown:
		l.set(l.cursor + 1)
	case tea.KeyPgUp:
		l.set(l.cursor - page)
	case tea.KeyPgDown:
		l.set(l.cursor + page)
	case tea.KeyHome:
		l.set(0)
	case tea.KeyEnd:
		l.set(l.n - 1)
	}
	return l.cursor != before
}

func (l *cursorList) set(i int) {
	if l.n == 0 {
		l.cursor, l.offset = 0, 0
		return
	}
	l.cursor = min(max(i, 0), l.n-1)
	l.offset = window(l.offset, l.cursor, l.height, l.n)
}

// render draws the visible rows with a scrollbar on the right. row renders
// row i given whether the cursor is on it.
func (l *cursorList) render(width, height int, focused bool, row func(i int, current bool) string) string {
	l.height = height
	l.offset = window(l.offset, l.cursor, height, l.n)

	bar := scrollbar.Build(height, l.n, l.offset, focused)
	rowWidth := max(width-2, 1)

	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		idx := l.offset + i
		cell := ""
		if idx < l.n {
			cell = row(idx, idx == l.cursor)
		}
		cell = lipgloss.NewStyle().Width(rowWidth).MaxWidth(rowWidth).Render(cell)
		lines = append(lines, cell+" "+bar[i])
	}
	return strings.Join(lines, "\n")
}

func cursorMark(current, focused bool, text string) string {
	if !current {
		return "  " + text
	}
	if focused {
		return style.Selection("› " + text)
	}
	return "› " + text
}

// dropdown is the body of the dropdown dialogs: a message and a list with
// one highlighted item.
type dropdown struct {
	text         string
	items        []string
	list         cursorList
	exitOnChange bool
}

func newDropdown(o *dialog.Options) *dropdown {
	c := &dropdown{
		text:         o.Text,
		items:        o.Items,
		list:         cursorList{n: len(o.Items)},
		exitOnChange: o.ExitOnChange,
	}
	c.list.set(o.Select)
	return c
}

func (c *dropdown) Init() tea.Cmd {
	return nil
}

func (c *dropdown) Focusable() bool {
	return true
}

func (c *dropdown) HandlesKey(msg tea.KeyMsg) bool {
	return navigates(msg)
}

func (c *dropdown) Update(msg tea.Msg) (content, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	if c.list.navigate(key) && c.exitOnChange {
		return c, submit(dialog.ResponseChange, dialog.Result{Selected: []int{c.list.cursor}})
	}
	return c, nil
}

func (c *dropdown) Fill(r *dialog.Result) {
	if len(c.items) > 0 {
		r.Selected = []int{c.list.cursor}
	}
}

func (c *dropdown) View(width, height int) string {
	var header string
	if c.text != "" {
		header = wrap(c.text, width)
		height = max(height-lineCount(header), 1)
	}
	body := c.list.render(width, height, true, func(i int, current bool) string {
		return cursorMark(current, true, c.items[i])
	})
	if header == "" {
		return body
	}
	return header + "\n" + body
}

// optionList is the body of the optionselect dialog: a checkbox per item,
// toggled with Space.
type optionList struct {
	info    string
	items   []string
	checked []bool
	list    cursorList
}

func newOptionList(o *dialog.Options) *optionList {
	c := &optionList{
		info:    o.InformativeText,
		items:   o.Items,
		checked: make([]bool, len(o.Items)),
		list:    cursorList{n: len(o.Items)},
	}
	for _, i := range o.Selects {
		if i >= 0 && i < len(c.checked) {
			c.checked[i] = true
		}
	}
	return c
}

func (c *optionList) Init() tea.Cmd {
	return nil
}

func (c *optionList) Focusable() bool {
	return true
}

func (c *optionList) HandlesKey(msg tea.KeyMsg) bool {
	return navigates(msg) || msg.Type == tea.KeySpace
}

func (c *optionList) Update(msg tea.Msg) (content, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	if key.Type == tea.KeySpace {
		if len(c.checked) > 0 {
			c.checked[c.list.cursor] = !c.checked[c.list.cursor]
		}
		return c, nil
	}
	c.list.navigate(key)
	return c, nil
}

// Fill reports the checked items in item order.
func (c *optionList) Fill(r *dialog.Result) {
	for i, on := range c.checked {
		if on {
			r.Selected = append(r.Selected, i)
		}
	}
}

func (c *optionList) View(width, height int) string {
	var header string
	if c.info != "" {
		header = wrap(c.info, width)
		height = max(height-lineCount(header), 1)
	}
	body := c.list.render(width, height, true, func(i int, current bool) string {
		box := "[ ] "
		if c.checked[i] {
			box = "[x] "
		}
		return cursorMark(current, true, box+c.items[i])
	})
	if header == "" {
		return body
	}
	return header + "\n" + body
}
