package tui

import (
	"strings"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

// buttonRow holds the labelled buttons in display order. Buttons are
// numbered right to left, so button 1 is drawn last.
type buttonRow struct {
	labels   []string
	codes    []int
	focus    int
	disabled map[int]bool
}

func newButtonRow(o *dialog.Options) buttonRow {
	var r buttonRow
	if o.Type == dialog.Progressbar && !o.Stoppable {
		return r
	}
	for i := 2; i >= 0; i-- {
		if o.Buttons[i] == "" {
			continue
		}
		r.labels = append(r.labels, o.Buttons[i])
		r.codes = append(r.codes, i+1)
	}
	// button 1 is the default
	r.focus = max(len(r.labels)-1, 0)
	return r
}

func (r buttonRow) len() int {
	return len(r.labels)
}

func (r *buttonRow) move(dir int) {
	if len(r.labels) == 0 {
		return
	}
	r.focus = (r.focus + dir + len(r.labels)) % len(r.labels)
}

func (r buttonRow) focusedCode() int {
	if len(r.codes) == 0 {
		return 0
	}
	return r.codes[r.focus]
}

func (r *buttonRow) setDisabled(code int, disabled bool) {
	if r.disabled == nil {
		r.disabled = make(map[int]bool)
	}
	r.disabled[code] = disabled
}

func (r buttonRow) view(active bool) string {
	if len(r.labels) == 0 {
		return ""
	}
	cells := make([]string, len(r.labels))
	for i, label := range r.labels {
		switch {
		case r.disabled[r.codes[i]]:
			cells[i] = " " + style.Muted(label) + " "
		case active && i == r.focus:
			cells[i] = style.Focus(label)
		default:
			cells[i] = " " + label + " "
		}
	}
	return strings.Join(cells, " ")
}
