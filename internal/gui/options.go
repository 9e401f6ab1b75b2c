package gui

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/gtdialog/gtdialog/internal/dialog"
)

// commonOptions returns the options every window takes.
func commonOptions(ctx context.Context, o *dialog.Options) []zenity.Option {
	opts := []zenity.Option{zenity.Context(ctx), zenity.Title(o.Title)}
	if o.Width > 0 {
		opts = append(opts, zenity.Width(uint(o.Width)))
	}
	if o.Height > 0 {
		opts = append(opts, zenity.Height(uint(o.Height)))
	}
	return opts
}

// buttonOptions labels OK, Cancel and the extra button after buttons 1..3.
func buttonOptions(o *dialog.Options) []zenity.Option {
	var opts []zenity.Option
	if o.Buttons[0] != "" {
		opts = append(opts, zenity.OKLabel(o.Buttons[0]))
	}
	if o.Buttons[1] != "" {
		opts = append(opts, zenity.CancelLabel(o.Buttons[1]))
	}
	if o.Buttons[2] != "" {
		opts = append(opts, zenity.ExtraButton(o.Buttons[2]))
	}
	return opts
}

func iconOptions(o *dialog.Options) []zenity.Option {
	if icon, ok := stockIcon(o.Icon); ok {
		return []zenity.Option{zenity.Icon(icon)}
	}
	if o.IconFile != "" {
		return []zenity.Option{zenity.Icon(o.IconFile)}
	}
	return nil
}

// stockIcon maps an icon name such as "dialog-warning" to a zenity icon.
func stockIcon(name string) (zenity.DialogIcon, bool) {
	switch {
	case name == "":
		return zenity.NoIcon, false
	case strings.Contains(name, "error"):
		return zenity.ErrorIcon, true
	case strings.Contains(name, "warning"):
		return zenity.WarningIcon, true
	case strings.Contains(name, "question"):
		return zenity.QuestionIcon, true
	case strings.Contains(name, "password"):
		return zenity.PasswordIcon, true
	}
	return zenity.InfoIcon, true
}

func fileOptions(o *dialog.Options) []zenity.Option {
	var opts []zenity.Option
	switch {
	case o.WithFile != "":
		name := o.WithFile
		if o.WithDirectory != "" && !filepath.IsAbs(name) {
			name = filepath.Join(o.WithDirectory, name)
		}
		opts = append(opts, zenity.Filename(name))
	case o.WithDirectory != "":
		opts = append(opts, zenity.Filename(o.WithDirectory+string(filepath.Separator)))
	}
	if filters := fileFilters(o.WithExtensions); len(filters) > 0 {
		opts = append(opts, filters)
	}
	if o.SelectOnlyDirectories && o.Type == dialog.FileSelect {
		opts = append(opts, zenity.Directory())
	}
	if o.Type == dialog.FileSave {
		opts = append(opts, zenity.ConfirmOverwrite())
	}
	return opts
}

// fileFilters turns --with-extension values into a single glob filter.
func fileFilters(exts []string) zenity.FileFilters {
	var patterns []string
	for _, e := range exts {
		e = strings.TrimPrefix(e, ".")
		if e != "" {
			patterns = append(patterns, "*."+e)
		}
	}
	if len(patterns) == 0 {
		return nil
	}
	return zenity.FileFilters{{Name: strings.Join(patterns, " "), Patterns: patterns}}
}

// responseCode maps the error a window returned to a button number.
// Cancelling maps to button 2, or to a deleted window when there is none.
func responseCode(o *dialog.Options, err error) (int, error) {
	switch {
	case err == nil:
		return 1, nil
	case errors.Is(err, zenity.ErrExtraButton):
		return 3, nil
	case errors.Is(err, zenity.ErrCanceled):
		if o.Buttons[1] != "" {
			return 2, nil
		}
		return dialog.ResponseDelete, nil
	}
	return 0, err
}

func joinText(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// displayRows formats filteredlist rows as aligned lines of text.
func displayRows(o *dialog.Options) []string {
	rows := dialog.Rows(o.Items, len(o.Columns))
	widths := dialog.ColumnWidths(o.Columns, rows)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.TrimRight(dialog.FormatRow(row, widths, "  "), " ")
	}
	return lines
}

// indicesOf returns the position of every choice in items. Duplicate
// items are matched in order, so choosing the same text twice yields two
// different rows.
func indicesOf(items, choices []string) []int {
	used := make(map[int]bool, len(choices))
	var out []int
	for _, c := range choices {
		for i, item := range items {
			if item == c && !used[i] {
				used[i] = true
				out = append(out, i)
				break
			}
		}
	}
	return out
}

func itemsAt(items []string, indices []int) []string {
	var out []string
	for _, i := range indices {
		if i >= 0 && i < len(items) {
			out = append(out, items[i])
		}
	}
	return out
}

func sortedIndices(indices []int) []int {
	out := slices.Clone(indices)
	slices.Sort(out)
	return out
}
