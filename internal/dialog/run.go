package dialog

import (
	"context"
	"os"
)

// ErrNoColumns is printed in place of a filteredlist dialog's output when no
// --columns were given.
const ErrNoColumns = "Error: --columns not given.\n"

// Backend renders dialogs with a particular widget toolkit.
type Backend interface {
	// Name identifies the backend in logs and configuration.
	Name() string

	// Run shows the dialog described by o and blocks until the user
	// responds, the timeout fires or ctx is cancelled.
	Run(ctx context.Context, o *Options) (Result, error)
}

// Run shows a dialog with backend b and returns the text to print.
func Run(ctx context.Context, b Backend, o *Options) (string, error) {
	if o.Type == FilteredList && len(o.Columns) == 0 {
		return ErrNoColumns, nil
	}

	if o.Type == Textbox && o.Text == "" && o.TextFromFile != "" {
		if text, ok := LoadTextFile(o.TextFromFile); ok {
			o.Text = text
		}
	}

	r, err := b.Run(ctx, o)
	if err != nil {
		return "", err
	}
	return Format(o, r), nil
}

// LoadTextFile returns the contents of path. A missing or unreadable file
// is not an error; the textbox is simply left empty.
func LoadTextFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
