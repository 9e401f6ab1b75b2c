// Package scrollbar draws a one-column scrollbar next to a scrolled list.
package scrollbar

import "github.com/gtdialog/gtdialog/internal/ui/style"

// Scrollbar characters
const (
	ThumbChar = "█" // full block
	TrackChar = "│" // box drawing vertical
)

// Thumb returns the position and size of the thumb on a track of viewHeight
// rows showing totalItems items scrolled down by offset. The size is 0 when
// everything fits.
func Thumb(viewHeight, totalItems, offset int) (pos, size int) {
	if viewHeight <= 0 || totalItems <= viewHeight {
		return 0, 0
	}

	// Proportional to the visible share, at least 1 and at most
	// viewHeight-2 so the position stays readable.
	size = max((viewHeight*viewHeight)/totalItems, 1)
	size = min(size, max(viewHeight-2, 1))

	maxScroll := max(totalItems-viewHeight, 1)
	trackSpace := max(viewHeight-size, 0)

	if trackSpace > 0 {
		pos = (offset * trackSpace) / maxScroll
	}
	pos = min(max(pos, 0), trackSpace)
	return pos, size
}

// Build returns one rendered cell per row of the track. When every item
// fits, the cells are blank. The thumb uses the info color when focused and
// the muted color otherwise.
func Build(viewHeight, totalItems, offset int, focused bool) []string {
	if viewHeight <= 0 {
		return nil
	}
	bar := make([]string, viewHeight)

	pos, size := Thumb(viewHeight, totalItems, offset)
	if size == 0 {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumb := style.Muted
	if focused {
		thumb = style.Info
	}

	for i := range viewHeight {
		if i >= pos && i < pos+size {
			bar[i] = thumb(ThumbChar)
		} else {
			bar[i] = style.Muted(TrackChar)
		}
	}
	return bar
}
