package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/domain"
)

// progressLineMsg is one line read from stdin.
type progressLineMsg string

// progressEOFMsg reports that stdin was closed.
type progressEOFMsg struct{}

// readProgress sends every line of r to the program, then progressEOFMsg.
// A failed read ends the input like EOF does.
func readProgress(r io.Reader, send func(tea.Msg), logger domain.Logger) {
	err := dialog.ScanProgress(r, func(line string) bool {
		send(progressLineMsg(line))
		return true
	})
	if err != nil {
		logger.Warn("tui: reading progress from stdin: %v", err)
	}
	send(progressEOFMsg{})
}

// meter is the body of the progressbar dialog.
type meter struct {
	bar           progress.Model
	spin          spinner.Model
	indeterminate bool
	stoppable     bool
	stopEnabled   bool

	percent int
	caption string
}

func newProgress(o *dialog.Options, width int) *meter {
	return &meter{
		bar:           progress.New(progress.WithDefaultGradient(), progress.WithWidth(width)),
		spin:          spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		indeterminate: o.Indeterminate,
		stoppable:     o.Stoppable,
		stopEnabled:   o.Stoppable,
		percent:       o.Percent,
		caption:       o.Text,
	}
}

func (c *meter) Init() tea.Cmd {
	if c.indeterminate {
		return c.spin.Tick
	}
	return nil
}

func (c *meter) Focusable() bool {
	return false
}

func (c *meter) HandlesKey(tea.KeyMsg) bool {
	return false
}

func (c *meter) Update(msg tea.Msg) (content, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLineMsg:
		u := dialog.ParseProgressLine(string(msg), c.stoppable)
		c.percent = u.Percent
		if u.Text != "" {
			c.caption = u.Text
		}
		switch u.Stop {
		case dialog.StopEnable:
			c.stopEnabled = true
		case dialog.StopDisable:
			c.stopEnabled = false
		}
		return c, nil

	case progressEOFMsg:
		return c, submit(2, dialog.Result{})

	case spinner.TickMsg:
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *meter) Fill(*dialog.Result) {}

func (c *meter) View(width, height int) string {
	var bar string
	if c.indeterminate {
		bar = c.spin.View()
	} else {
		bar = c.bar.ViewAs(dialog.ProgressUpdate{Percent: c.percent}.Fraction())
	}

	body := bar
	if c.caption != "" {
		body += "\n" + truncate(c.caption, width)
	}
	return clip(body, height)
}
