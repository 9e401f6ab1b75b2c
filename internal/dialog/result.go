package dialog

import (
	"strconv"
	"strings"
)

// Response codes reported by backends besides button numbers 1..3.
const (
	ResponseDelete  = -1
	ResponseTimeout = 0
	ResponseChange  = 4
)

// Result is what a backend reads back from the widgets once the dialog closes.
type Result struct {
	// Code is the button number (1..3, right-to-left), ResponseChange,
	// ResponseTimeout or ResponseDelete.
	Code int

	// Entries holds input box values, or the text of an editable textbox.
	Entries []string

	// Selected holds indices into Items (dropdown, optionselect) or into the
	// unfiltered rows (filteredlist), in selection order.
	Selected []int

	// Files holds the chosen paths of a file dialog; empty means cancelled.
	Files []string

	// Stopped is set when the Stop button of a progressbar was pressed.
	Stopped bool
}

// Format renders a result according to the output protocol.
func Format(o *Options, r Result) string {
	var out string

	switch {
	case o.Type.IsFile():
		out = strings.Join(r.Files, "\n")
	case o.Type == Progressbar:
		if r.Stopped {
			out = "stopped"
		}
	default:
		out = formatCode(o, r.Code)
		if o.Type.HasDataLine() && r.Code > ResponseTimeout {
			if data, ok := formatData(o, r); ok {
				out += "\n" + data
			}
		}
	}

	if !o.NoNewline {
		out += "\n"
	}
	return out
}

func formatCode(o *Options, code int) string {
	if o.StringOutput {
		switch {
		case code >= 1 && code <= 3 && o.Buttons[code-1] != "":
			return o.Buttons[code-1]
		case code == ResponseTimeout:
			return "timeout"
		case code == ResponseDelete:
			return "delete"
		}
	}
	return strconv.Itoa(code)
}

// formatData returns the second output line and whether the type has one
// for this result.
func formatData(o *Options, r Result) (string, bool) {
	switch {
	case o.Type.IsInputbox():
		return strings.Join(r.Entries, "\n"), true

	case o.Type == Textbox:
		if !o.Editable {
			return "", true
		}
		return strings.Join(r.Entries, "\n"), true

	case o.Type.IsDropdown():
		if len(r.Selected) == 0 {
			if o.StringOutput {
				return "", true
			}
			return "-1", true
		}
		i := r.Selected[0]
		if o.StringOutput {
			if i >= 0 && i < len(o.Items) {
				return o.Items[i], true
			}
			return "", true
		}
		return strconv.Itoa(i), true

	case o.Type == FilteredList:
		rows := Rows(o.Items, len(o.Columns))
		values := make([]string, 0, len(r.Selected))
		for _, i := range r.Selected {
			if !o.StringOutput {
				values = append(values, strconv.Itoa(i))
				continue
			}
			if i >= 0 && i < len(rows) && o.OutputColumn >= 1 && o.OutputColumn <= len(rows[i]) {
				values = append(values, rows[i][o.OutputColumn-1])
			}
		}
		return strings.Join(values, "\n"), true

	case o.Type == OptionSelect:
		values := make([]string, 0, len(r.Selected))
		for _, i := range r.Selected {
			if o.StringOutput {
				if i >= 0 && i < len(o.Items) {
					values = append(values, o.Items[i])
				}
				continue
			}
			values = append(values, strconv.Itoa(i))
		}
		return strings.Join(values, "\n"), true
	}
	return "", false
}
