package dialog

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rows groups a flat item list into rows of ncols cells. Items fill the
// first empty column of the current row; a trailing partial row is padded
// with empty cells.
func Rows(items []string, ncols int) [][]string {
	if ncols <= 0 {
		return nil
	}
	rows := make([][]string, 0, (len(items)+ncols-1)/ncols)
	for i := 0; i < len(items); i += ncols {
		row := make([]string, ncols)
		copy(row, items[i:min(i+ncols, len(items))])
		rows = append(rows, row)
	}
	return rows
}

// Matches reports whether value passes filter. Matching ignores case and
// treats each space in the filter as a wildcard: every space-separated
// token has to occur in value, in order, after the previous token.
func Matches(value, filter string) bool {
	if filter == "" {
		return true
	}
	haystack := strings.ToLower(value)
	for _, token := range strings.Split(strings.ToLower(filter), " ") {
		i := strings.Index(haystack, token)
		if i < 0 {
			return false
		}
		haystack = haystack[i+len(token):]
	}
	return true
}

// Filter returns the indices of the rows whose 1-based column col matches
// filter, in row order.
func Filter(rows [][]string, col int, filter string) []int {
	visible := make([]int, 0, len(rows))
	for i, row := range rows {
		value := ""
		if col >= 1 && col <= len(row) {
			value = row[col-1]
		}
		if Matches(value, filter) {
			visible = append(visible, i)
		}
	}
	return visible
}

// ColumnWidths returns the display width of every column, wide enough for
// the header and each cell in that column.
func ColumnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}
	return widths
}

// FormatRow pads every cell to its column width and joins the cells with sep.
func FormatRow(cells []string, widths []int, sep string) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = runewidth.FillRight(cell, w)
	}
	return strings.Join(padded, sep)
}
