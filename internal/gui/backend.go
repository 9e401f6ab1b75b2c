// Package gui renders dialogs as native desktop windows through zenity.
//
// Button 1 maps to the OK button, button 2 to Cancel and button 3 to the
// extra button. Toolkits without a matching widget fall back to the
// closest one: a textbox is an info window, or an entry when editable.
package gui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/ncruces/zenity"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/domain"
)

// Name is the backend name used by --backend and the config file.
const Name = "gui"

// ErrUnavailable is returned when no dialog helper is installed.
var ErrUnavailable = errors.New("gui: no native dialog helper available")

// Backend implements dialog.Backend with zenity.
type Backend struct {
	logger  domain.Logger
	toolkit Toolkit
	stdin   io.Reader
}

// Option configures a Backend.
type Option func(*Backend)

// WithToolkit replaces the zenity calls, mainly for tests.
func WithToolkit(tk Toolkit) Option {
	return func(b *Backend) { b.toolkit = tk }
}

// WithStdin sets the reader the progressbar reads its updates from.
func WithStdin(r io.Reader) Option {
	return func(b *Backend) { b.stdin = r }
}

// New creates a desktop backend.
func New(logger domain.Logger, opts ...Option) *Backend {
	b := &Backend{
		logger:  logger,
		toolkit: Zenity(),
		stdin:   os.Stdin,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Name() string {
	return Name
}

// Run shows o and blocks until it closes.
func (b *Backend) Run(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	if b.toolkit.Available != nil && !b.toolkit.Available() {
		return dialog.Result{}, ErrUnavailable
	}

	runCtx := ctx
	if o.Type.CanTimeout() && o.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(o.Timeout)*time.Second)
		defer cancel()
	}

	r, err := b.run(runCtx, o)
	switch {
	case err == nil:
	case runCtx.Err() != nil && ctx.Err() == nil:
		b.logger.Debug("gui: %s dialog timed out", o.Type)
		return dialog.Result{Code: dialog.ResponseTimeout}, nil
	case ctx.Err() != nil:
		b.logger.Info("gui: %s dialog cancelled: %v", o.Type, ctx.Err())
		return dialog.Result{Code: dialog.ResponseDelete}, nil
	default:
		return dialog.Result{}, fmt.Errorf("gui: %w", err)
	}

	b.logger.Debug("gui: %s dialog closed with code %d", o.Type, r.Code)
	return r, nil
}

func (b *Backend) run(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	switch {
	case o.Type.IsMsgbox():
		return b.message(ctx, o)
	case o.Type.IsInputbox():
		return b.input(ctx, o)
	case o.Type.IsFile():
		return b.file(ctx, o)
	case o.Type == dialog.Textbox:
		return b.textbox(ctx, o)
	case o.Type == dialog.Progressbar:
		return b.progress(ctx, o)
	case o.Type.IsDropdown():
		return b.dropdown(ctx, o)
	case o.Type == dialog.FilteredList:
		return b.filteredList(ctx, o)
	case o.Type == dialog.OptionSelect:
		return b.optionSelect(ctx, o)
	}
	return dialog.Result{}, fmt.Errorf("unsupported dialog type %s", o.Type)
}

func (b *Backend) message(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	text := joinText(o.Text, o.InformativeText)
	opts := append(commonOptions(ctx, o), buttonOptions(o)...)
	opts = append(opts, iconOptions(o)...)

	var err error
	if o.ButtonCount() > 1 {
		err = b.toolkit.Question(text, opts...)
	} else {
		err = b.toolkit.Info(text, opts...)
	}
	code, err := responseCode(o, err)
	return dialog.Result{Code: code}, err
}

func (b *Backend) input(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	prompts := []string{o.InformativeText}
	if o.MultipleEntries() {
		// One window per label; the header goes above the first.
		prompts = slices.Clone(o.Labels)
		prompts[0] = joinText(o.InformativeText, prompts[0])
	}

	var r dialog.Result
	for i, prompt := range prompts {
		opts := append(commonOptions(ctx, o), buttonOptions(o)...)
		if i < len(o.Texts) {
			opts = append(opts, zenity.EntryText(o.Texts[i]))
		}
		if o.Masked() {
			opts = append(opts, zenity.HideText())
		}

		value, err := b.toolkit.Entry(prompt, opts...)
		code, err := responseCode(o, err)
		if err != nil || code != 1 {
			return dialog.Result{Code: code}, err
		}
		r.Entries = append(r.Entries, value)
	}
	r.Code = 1
	return r, nil
}

func (b *Backend) textbox(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	opts := append(commonOptions(ctx, o), buttonOptions(o)...)

	if o.Editable {
		opts = append(opts, zenity.EntryText(o.Text))
		value, err := b.toolkit.Entry(o.InformativeText, opts...)
		code, err := responseCode(o, err)
		if err != nil || code <= dialog.ResponseTimeout {
			return dialog.Result{Code: code}, err
		}
		return dialog.Result{Code: code, Entries: []string{value}}, nil
	}

	text := joinText(o.InformativeText, o.Text)
	var err error
	if o.ButtonCount() > 1 {
		err = b.toolkit.Question(text, opts...)
	} else {
		err = b.toolkit.Info(text, opts...)
	}
	code, err := responseCode(o, err)
	return dialog.Result{Code: code}, err
}

func (b *Backend) file(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	opts := append(commonOptions(ctx, o), fileOptions(o)...)

	var files []string
	var err error
	switch {
	case o.Type == dialog.FileSave:
		var f string
		if f, err = b.toolkit.SelectFileSave(opts...); f != "" {
			files = []string{f}
		}
	case o.SelectMultiple:
		files, err = b.toolkit.SelectFileMultiple(opts...)
	default:
		var f string
		if f, err = b.toolkit.SelectFile(opts...); f != "" {
			files = []string{f}
		}
	}

	if errors.Is(err, zenity.ErrCanceled) {
		return dialog.Result{Code: dialog.ResponseDelete}, nil
	}
	if err != nil {
		return dialog.Result{}, err
	}
	return dialog.Result{Code: 1, Files: files}, nil
}

func (b *Backend) dropdown(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	opts := append(commonOptions(ctx, o), buttonOptions(o)...)
	opts = append(opts, zenity.DisallowEmpty())
	if o.Select >= 0 && o.Select < len(o.Items) {
		opts = append(opts, zenity.DefaultItems(o.Items[o.Select]))
	}

	choice, err := b.toolkit.List(o.Text, o.Items, opts...)
	code, err := responseCode(o, err)
	if err != nil {
		return dialog.Result{}, err
	}
	r := dialog.Result{Code: code}
	if code > dialog.ResponseTimeout {
		r.Selected = indicesOf(o.Items, []string{choice})
	}
	return r, nil
}

func (b *Backend) filteredList(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	lines := displayRows(o)
	opts := append(commonOptions(ctx, o), buttonOptions(o)...)
	opts = append(opts, zenity.DisallowEmpty())

	var choices []string
	var err error
	if o.SelectMultiple {
		choices, err = b.toolkit.ListMultiple(o.InformativeText, lines, opts...)
	} else {
		var choice string
		if choice, err = b.toolkit.List(o.InformativeText, lines, opts...); choice != "" {
			choices = []string{choice}
		}
	}

	code, err := responseCode(o, err)
	if err != nil {
		return dialog.Result{}, err
	}
	r := dialog.Result{Code: code}
	if code > dialog.ResponseTimeout {
		r.Selected = indicesOf(lines, choices)
	}
	return r, nil
}

func (b *Backend) optionSelect(ctx context.Context, o *dialog.Options) (dialog.Result, error) {
	opts := append(commonOptions(ctx, o), buttonOptions(o)...)
	opts = append(opts, zenity.CheckList())
	if defaults := itemsAt(o.Items, o.Selects); len(defaults) > 0 {
		opts = append(opts, zenity.DefaultItems(defaults...))
	}

	choices, err := b.toolkit.ListMultiple(o.InformativeText, o.Items, opts...)
	code, err := responseCode(o, err)
	if err != nil {
		return dialog.Result{}, err
	}
	r := dialog.Result{Code: code}
	if code > dialog.ResponseTimeout {
		r.Selected = sortedIndices(indicesOf(o.Items, choices))
	}
	return r, nil
}

var _ dialog.Backend = (*Backend)(nil)
