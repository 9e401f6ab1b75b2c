package gui

import (
	"context"

	"github.com/ncruces/zenity"

	"github.com/gtdialog/gtdialog/internal/dialog"
)

func (b *Backend) progress(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	opts := append(commonOptions(ctx, o), zenity.MaxValue(100))
	if o.Indeterminate {
		opts = append(opts, zenity.Pulsate())
	}
	if o.Stoppable {
		opts = append(opts, zenity.CancelLabel(o.Buttons[0]))
	} else {
		opts = append(opts, zenity.NoCancel())
	}

	win, err := b.toolkit.Progress(opts...)
	if err != nil {
		return dialog.Result{}, err
	}
	defer win.Close()

	if o.Text != "" {
		_ = win.Text(o.Text)
	}
	if !o.Indeterminate {
		_ = win.Value(clampPercent(o.Percent))
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		err := dialog.ScanProgress(b.stdin, func(line string) bool {
			select {
			case lines <- line:
				return true
			case <-ctx.Done():
				return false
			}
		})
		if err != nil {
			b.logger.Warn("gui: reading progress from stdin: %v", err)
		}
	}()

	stopEnabled := o.Stoppable
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				_ = win.Complete()
				return dialog.Result{Code: 2}, nil
			}
			u := dialog.ParseProgressLine(line, o.Stoppable)
			if !o.Indeterminate {
				_ = win.Value(clampPercent(u.Percent))
			}
			if u.Text != "" {
				_ = win.Text(u.Text)
			}
			switch u.Stop {
			case dialog.StopEnable:
				stopEnabled = true
			case dialog.StopDisable:
				stopEnabled = false
			}

		case <-win.Done():
			// The window has no way to grey out its cancel button, so a
			// press while stopping is disabled counts as closing it.
			if stopEnabled {
				return dialog.Result{Code: 1, Stopped: true}, nil
			}
			b.logger.Debug("gui: progress window closed while stop was disabled")
			return dialog.Result{Code: dialog.ResponseDelete}, nil

		case <-ctx.Done():
			return dialog.Result{}, ctx.Err()
		}
	}
}

func clampPercent(p int) int {
	return min(max(p, 0), 100)
}
