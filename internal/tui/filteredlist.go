package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

// filteredList is the body of the filteredlist dialog: a filter entry above
// a table of rows. Typing narrows the rows on the search column; with
// --select-multiple, Space marks rows.
type filteredList struct {
	info      string
	columns   []string
	rows      [][]string
	widths    []int
	searchCol int
	multiple  bool

	filter  textinput.Model
	visible []int // indices into rows
	marked  []int // indices into rows, in marking order
	list    cursorList
}

func newFilteredList(o *dialog.Options, width int) *filteredList {
	rows := dialog.Rows(o.Items, len(o.Columns))

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"
	ti.Width = max(width-len(ti.Prompt)-1, 1)
	ti.SetValue(o.Text)
	ti.Focus()

	c := &filteredList{
		info:      o.InformativeText,
		columns:   o.Columns,
		rows:      rows,
		widths:    dialog.ColumnWidths(o.Columns, rows),
		searchCol: o.SearchColumn,
		multiple:  o.SelectMultiple,
		filter:    ti,
	}
	c.refilter()
	return c
}

// refilter recomputes the visible rows and puts the cursor on the first.
func (c *filteredList) refilter() {
	c.visible = dialog.Filter(c.rows, c.searchCol, c.filter.Value())
	c.list.n = len(c.visible)
	c.list.offset = 0
	c.list.set(0)
}

func (c *filteredList) Init() tea.Cmd {
	return textinput.Blink
}

func (c *filteredList) Focusable() bool {
	return true
}

func (c *filteredList) HandlesKey(msg tea.KeyMsg) bool {
	return msg.Type != tea.KeyEnter
}

func (c *filteredList) Update(msg tea.Msg) (content, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if navigates(key) {
			c.list.navigate(key)
			return c, nil
		}
		if c.multiple && (key.Type == tea.KeyCtrlAt || key.Type == tea.KeyInsert) {
			c.toggle()
			return c, nil
		}
	}

	before := c.filter.Value()
	var cmd tea.Cmd
	c.filter, cmd = c.filter.Update(msg)
	if c.filter.Value() != before {
		c.refilter()
	}
	return c, cmd
}

func (c *filteredList) current() (int, bool) {
	if len(c.visible) == 0 {
		return 0, false
	}
	return c.visible[c.list.cursor], true
}

func (c *filteredList) toggle() {
	row, ok := c.current()
	if !ok {
		return
	}
	if i := slices.Index(c.marked, row); i >= 0 {
		c.marked = slices.Delete(c.marked, i, i+1)
		return
	}
	c.marked = append(c.marked, row)
}

// Fill reports the marked rows in marking order, or the row under the
// cursor when nothing is marked.
func (c *filteredList) Fill(r *dialog.Result) {
	if len(c.marked) > 0 {
		r.Selected = slices.Clone(c.marked)
		return
	}
	if row, ok := c.current(); ok {
		r.Selected = []int{row}
	}
}

func (c *filteredList) View(width, height int) string {
	var head []string
	if c.info != "" {
		head = append(head, wrap(c.info, width))
	}
	head = append(head, c.filter.View())
	head = append(head, style.Muted(truncate("  "+dialog.FormatRow(c.columns, c.widths, "  "), width)))

	var out string
	for _, h := range head {
		out += h + "\n"
	}
	height = max(height-lineCount(out)+1, 1)

	return out + c.list.render(width, height, true, func(i int, current bool) string {
		row := c.visible[i]
		text := dialog.FormatRow(c.rows[row], c.widths, "  ")
		if c.multiple && slices.Contains(c.marked, row) {
			text = style.Success(text)
		}
		return cursorMark(current, true, text)
	})
}
