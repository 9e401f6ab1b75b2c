package dialog

import (
	"bufio"
	"io"
	"strings"
)

// MaxProgressLine is the longest stdin line the progressbar reads.
const MaxProgressLine = 1 << 20

// ScanProgress calls fn with every line of r until r ends or fn returns
// false. A read error or a line longer than MaxProgressLine stops the scan
// and is returned.
func ScanProgress(r io.Reader, fn func(line string) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxProgressLine)
	for scanner.Scan() {
		if !fn(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// StopAction is a change to the Stop button requested on stdin.
type StopAction int

const (
	StopUnchanged StopAction = iota
	StopEnable
	StopDisable
)

// ProgressUpdate is one parsed line of the progressbar stdin protocol.
type ProgressUpdate struct {
	Percent int
	// Text is the new caption; empty leaves the current caption in place.
	Text string
	Stop StopAction
}

// ParseProgressLine parses "<percent> [text]". The percent is the leading
// integer of the line; the text is everything after the first whitespace
// character. When stoppable is set, the texts "stop enable" and
// "stop disable" toggle the Stop button instead of changing the caption.
func ParseProgressLine(line string, stoppable bool) ProgressUpdate {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	u := ProgressUpdate{Percent: Atoi(line)}
	if i := strings.IndexAny(line, " \t\v\f"); i >= 0 {
		u.Text = line[i+1:]
	}

	if stoppable {
		switch u.Text {
		case "stop enable":
			u.Text, u.Stop = "", StopEnable
		case "stop disable":
			u.Text, u.Stop = "", StopDisable
		}
	}
	return u
}

// Fraction returns the percent as a value in [0, 1].
func (u ProgressUpdate) Fraction() float64 {
	return float64(min(max(u.Percent, 0), 100)) / 100
}
