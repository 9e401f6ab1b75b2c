package gui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/require"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/log"
)

func opts(t dialog.Type) *dialog.Options {
	return &dialog.Options{
		Type:         t,
		Title:        dialog.DefaultTitle,
		Buttons:      dialog.DefaultButtons(t),
		SearchColumn: 1,
		OutputColumn: 1,
	}
}

func newTestBackend(tk Toolkit, extra ...Option) *Backend {
	return New(log.NopLogger{}, append([]Option{WithToolkit(tk)}, extra...)...)
}

func TestRun_Unavailable(t *testing.T) {
	b := newTestBackend(Toolkit{Available: func() bool { return false }})

	_, err := b.Run(context.Background(), opts(dialog.Msgbox))

	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMessage_Codes(t *testing.T) {
	tests := []struct {
		name string
		typ  dialog.Type
		err  error
		want int
	}{
		{"ok", dialog.OkMsgbox, nil, 1},
		{"cancel", dialog.OkMsgbox, zenity.ErrCanceled, 2},
		{"extra", dialog.YesNoMsgbox, zenity.ErrExtraButton, 3},
		{"closed without cancel button", dialog.Msgbox, zenity.ErrCanceled, dialog.ResponseDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called string
			tk := Toolkit{
				Question: func(string, ...zenity.Option) error { called = "question"; return tt.err },
				Info:     func(string, ...zenity.Option) error { called = "info"; return tt.err },
			}

			r, err := newTestBackend(tk).Run(context.Background(), opts(tt.typ))

			require.NoError(t, err)
			require.Equal(t, tt.want, r.Code)
			if tt.typ == dialog.Msgbox {
				require.Equal(t, "info", called)
			} else {
				require.Equal(t, "question", called)
			}
		})
	}
}

func TestMessage_Text(t *testing.T) {
	var got string
	tk := Toolkit{Info: func(text string, _ ...zenity.Option) error { got = text; return nil }}
	o := opts(dialog.Msgbox)
	o.Text = "Disk full"
	o.InformativeText = "Free some space."

	_, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, "Disk full\n\nFree some space.", got)
}

func TestInput_MultipleEntries(t *testing.T) {
	var prompts []string
	tk := Toolkit{Entry: func(text string, _ ...zenity.Option) (string, error) {
		prompts = append(prompts, text)
		return fmt.Sprintf("value%d", len(prompts)), nil
	}}
	o := opts(dialog.Inputbox)
	o.InformativeText = "Account"
	o.Labels = []string{"user", "host"}

	r, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, []string{"Account\n\nuser", "host"}, prompts)
	require.Equal(t, []string{"user", "host"}, o.Labels)
	require.Equal(t, dialog.Result{Code: 1, Entries: []string{"value1", "value2"}}, r)
}

func TestInput_MultipleEntriesWithoutHeader(t *testing.T) {
	var prompts []string
	tk := Toolkit{Entry: func(text string, _ ...zenity.Option) (string, error) {
		prompts = append(prompts, text)
		return "", nil
	}}
	o := opts(dialog.Inputbox)
	o.Labels = []string{"user", "host"}

	_, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, []string{"user", "host"}, prompts)
}

func TestInput_CancelStopsEarly(t *testing.T) {
	calls := 0
	tk := Toolkit{Entry: func(string, ...zenity.Option) (string, error) {
		calls++
		return "", zenity.ErrCanceled
	}}
	o := opts(dialog.StandardInputbox)
	o.Labels = []string{"a", "b"}

	r, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, 2, r.Code)
	require.Equal(t, "2\n", dialog.Format(o, r))
}

func TestInput_Timeout(t *testing.T) {
	tk := Toolkit{Entry: func(_ string, _ ...zenity.Option) (string, error) {
		time.Sleep(1500 * time.Millisecond)
		return "", context.DeadlineExceeded
	}}
	o := opts(dialog.Inputbox)
	o.Timeout = 1

	r, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, dialog.ResponseTimeout, r.Code)
}

func TestRun_ToolkitError(t *testing.T) {
	tk := Toolkit{Info: func(string, ...zenity.Option) error { return errors.New("no display") }}

	_, err := newTestBackend(tk).Run(context.Background(), opts(dialog.Msgbox))

	require.EqualError(t, err, "gui: no display")
}

func TestTextbox_Editable(t *testing.T) {
	tk := Toolkit{Entry: func(string, ...zenity.Option) (string, error) { return "edited", nil }}
	o := opts(dialog.Textbox)
	o.Editable = true
	o.Text = "draft"

	r, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, []string{"edited"}, r.Entries)
}

func TestFile_Dialogs(t *testing.T) {
	tk := Toolkit{
		SelectFile:         func(...zenity.Option) (string, error) { return "/tmp/a", nil },
		SelectFileMultiple: func(...zenity.Option) ([]string, error) { return []string{"/tmp/a", "/tmp/b"}, nil },
		SelectFileSave:     func(...zenity.Option) (string, error) { return "", zenity.ErrCanceled },
	}
	b := newTestBackend(tk)

	r, err := b.Run(context.Background(), opts(dialog.FileSelect))
	require.NoError(t, err)
	require.Equal(t, []string{"/tmp/a"}, r.Files)

	o := opts(dialog.FileSelect)
	o.SelectMultiple = true
	r, err = b.Run(context.Background(), o)
	require.NoError(t, err)
	require.Equal(t, []string{"/tmp/a", "/tmp/b"}, r.Files)

	o = opts(dialog.FileSave)
	r, err = b.Run(context.Background(), o)
	require.NoError(t, err)
	require.Empty(t, r.Files)
	require.Equal(t, "\n", dialog.Format(o, r))
}

func TestDropdown_MapsChoiceToIndex(t *testing.T) {
	tk := Toolkit{List: func(_ string, items []string, _ ...zenity.Option) (string, error) {
		return items[2], nil
	}}
	o := opts(dialog.Dropdown)
	o.Items = []string{"red", "green", "blue"}

	r, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, []int{2}, r.Selected)
	require.Equal(t, "1\n2\n", dialog.Format(o, r))
}

func TestFilteredList_Multiple(t *testing.T) {
	var shown []string
	tk := Toolkit{ListMultiple: func(_ string, items []string, _ ...zenity.Option) ([]string, error) {
		shown = items
		return []string{items[1], items[0]}, nil
	}}
	o := opts(dialog.FilteredList)
	o.Columns = []string{"Name", "Size"}
	o.Items = []string{"alpha", "1", "b", "200"}
	o.SelectMultiple = true

	r, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, []string{"alpha  1", "b      200"}, shown)
	require.Equal(t, []int{1, 0}, r.Selected)
}

func TestOptionSelect_ItemOrder(t *testing.T) {
	tk := Toolkit{ListMultiple: func(string, []string, ...zenity.Option) ([]string, error) {
		return []string{"c", "a"}, nil
	}}
	o := opts(dialog.OptionSelect)
	o.Items = []string{"a", "b", "c"}

	r, err := newTestBackend(tk).Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, r.Selected)
}

type fakeWindow struct {
	texts     []string
	values    []int
	completed bool
	closed    bool
	done      chan struct{}
}

func (w *fakeWindow) Text(s string) error { w.texts = append(w.texts, s); return nil }
func (w *fakeWindow) Value(v int) error { w.values = append(w.values, v); return nil }
func (w *fakeWindow) Complete() error { w.completed = true; return nil }
func (w *fakeWindow) Close() error { w.closed = true; return nil }
func (w *fakeWindow) Done() <-chan struct{} { return w.done }

func TestProgress_ReadsUntilEOF(t *testing.T) {
	win := &fakeWindow{done: make(chan struct{})}
	tk := Toolkit{Progress: func(...zenity.Option) (ProgressWindow, error) { return win, nil }}
	o := opts(dialog.Progressbar)
	o.Percent = 5

	b := newTestBackend(tk, WithStdin(strings.NewReader("20 copying\n150\n")))
	r, err := b.Run(context.Background(), o)

	require.NoError(t, err)
	require.Equal(t, 2, r.Code)
	require.False(t, r.Stopped)
	require.Equal(t, []int{5, 20, 100}, win.values)
	require.Equal(t, []string{"copying"}, win.texts)
	require.True(t, win.completed)
	require.True(t, win.closed)
}

func TestProgress_LongCaption(t *testing.T) {
	win := &fakeWindow{done: make(chan struct{})}
	tk := Toolkit{Progress: func(...zenity.Option) (ProgressWindow, error) { return win, nil }}
	caption := strings.Repeat("c", 80*1024)

	b := newTestBackend(tk, WithStdin(strings.NewReader("30 "+caption+"\n40\n")))
	r, err := b.Run(context.Background(), opts(dialog.Progressbar))

	require.NoError(t, err)
	require.Equal(t, 2, r.Code)
	require.Equal(t, []string{caption}, win.texts)
	require.Equal(t, []int{0, 30, 40}, win.values)
}

func TestProgress_Stopped(t *testing.T) {
	win := &fakeWindow{done: make(chan struct{})}
	close(win.done)
	tk := Toolkit{Progress: func(...zenity.Option) (ProgressWindow, error) { return win, nil }}
	o := opts(dialog.Progressbar)
	o.Stoppable = true

	r, err := newTestBackend(tk, WithStdin(blockingReader{})).Run(context.Background(), o)

	require.NoError(t, err)
	require.True(t, r.Stopped)
	require.Equal(t, "stopped\n", dialog.Format(o, r))
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestResponseCode_PassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := responseCode(opts(dialog.OkMsgbox), boom)

	require.ErrorIs(t, err, boom)
}

func TestStockIcon(t *testing.T) {
	icon, ok := stockIcon("dialog-warning")
	require.True(t, ok)
	require.Equal(t, zenity.WarningIcon, icon)

	_, ok = stockIcon("")
	require.False(t, ok)
}

func TestFileFilters(t *testing.T) {
	f := fileFilters([]string{"go", ".mod", ""})

	require.Len(t, f, 1)
	require.Equal(t, []string{"*.go", "*.mod"}, f[0].Patterns)
	require.Nil(t, fileFilters(nil))
}

func TestIndicesOf_Duplicates(t *testing.T) {
	require.Equal(t, []int{1, 2}, indicesOf([]string{"a", "x", "x"}, []string{"x", "x"}))
}
