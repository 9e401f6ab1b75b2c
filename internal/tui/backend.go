// Package tui renders dialogs in the terminal with bubbletea.
//
// Dialogs are drawn on stderr and keys are read from the controlling
// terminal, so stdout stays free for the response and stdin for the
// progressbar protocol.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/domain"
)

// Name is the backend name used by --backend and the config file.
const Name = "tui"

// Backend implements dialog.Backend with bubbletea programs.
type Backend struct {
	logger  domain.Logger
	stdin   io.Reader
	options []tea.ProgramOption
}

// Option configures a Backend.
type Option func(*Backend)

// WithStdin sets the reader the progressbar reads its updates from.
func WithStdin(r io.Reader) Option {
	return func(b *Backend) { b.stdin = r }
}

// WithProgramOptions replaces the bubbletea program options.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(b *Backend) { b.options = opts }
}

// New creates a terminal backend.
func New(logger domain.Logger, opts ...Option) *Backend {
	b := &Backend{
		logger: logger,
		stdin:  os.Stdin,
		options: []tea.ProgramOption{
			tea.WithOutput(os.Stderr),
			tea.WithInputTTY(),
			tea.WithAltScreen(),
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Name() string {
	return Name
}

// Run shows o and blocks until it closes. A cancelled ctx closes the dialog
// like the window being deleted.
func (b *Backend) Run(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, b.options...)
	p := tea.NewProgram(newModel(o), opts...)

	if o.Type == dialog.Progressbar {
		go readProgress(b.stdin, p.Send, b.logger)
	}

	final, err := p.Run()
	if err != nil && ctx.Err() != nil {
		b.logger.Info("tui: %s dialog cancelled: %v", o.Type, ctx.Err())
		return dialog.Result{Code: dialog.ResponseDelete}, nil
	}
	if err != nil {
		return dialog.Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return dialog.Result{}, errors.New("tui: unexpected final model")
	}
	if !m.done {
		return dialog.Result{Code: dialog.ResponseDelete}, nil
	}

	b.logger.Debug("tui: %s dialog closed with code %d", o.Type, m.result.Code)
	return m.result, nil
}

var _ dialog.Backend = (*Backend)(nil)
