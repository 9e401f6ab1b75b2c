package dialog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeFlags maps option names to their values; a present option with no
// value is stored as an empty slice.
type fakeFlags map[string][]string

func (f fakeFlags) Has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f fakeFlags) String(name, defaultVal string) string {
	if v := f[name]; len(v) > 0 {
		return v[0]
	}
	return defaultVal
}

func (f fakeFlags) Int(name string, defaultVal int) int {
	if v := f[name]; len(v) > 0 {
		return Atoi(v[0])
	}
	return defaultVal
}

func (f fakeFlags) List(name string) []string {
	return f[name]
}

func TestDefaultButtons(t *testing.T) {
	tests := []struct {
		typ  Type
		want [3]string
	}{
		{Msgbox, [3]string{"Ok"}},
		{OkMsgbox, [3]string{"Ok", "Cancel"}},
		{YesNoMsgbox, [3]string{"Yes", "No", "Cancel"}},
		{Inputbox, [3]string{"Ok"}},
		{StandardInputbox, [3]string{"Ok", "Cancel"}},
		{SecureInputbox, [3]string{"Ok"}},
		{SecureStandardInputbox, [3]string{"Ok", "Cancel"}},
		{FileSelect, [3]string{}},
		{FileSave, [3]string{}},
		{Textbox, [3]string{"Ok"}},
		{Progressbar, [3]string{"Stop"}},
		{Dropdown, [3]string{"Ok"}},
		{StandardDropdown, [3]string{"Ok", "Cancel"}},
		{FilteredList, [3]string{"Ok"}},
		{OptionSelect, [3]string{"Ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			require.Equal(t, tt.want, DefaultButtons(tt.typ))
		})
	}
}

func TestNewOptions_Defaults(t *testing.T) {
	o := NewOptions(Msgbox, fakeFlags{})

	require.Equal(t, DefaultTitle, o.Title)
	require.Zero(t, o.Width)
	require.Zero(t, o.Height)
	require.False(t, o.StringOutput)
	require.False(t, o.NoNewline)
	require.Zero(t, o.Timeout)
	require.Equal(t, "top", o.ScrollTo)
	require.Equal(t, 1, o.SearchColumn)
	require.Equal(t, 1, o.OutputColumn)
	require.Equal(t, 1, o.ButtonCount())
}

func TestNewOptions_Globals(t *testing.T) {
	o := NewOptions(Msgbox, fakeFlags{
		"--title":         {"Hello"},
		"--width":         {"300"},
		"--height":        {"-5"},
		"--string-output": {},
		"--no-newline":    {},
		"--float":         {},
		"--timeout":       {"10"},
	})

	require.Equal(t, "Hello", o.Title)
	require.Equal(t, 300, o.Width)
	require.Zero(t, o.Height, "non-positive sizes are ignored")
	require.True(t, o.StringOutput)
	require.True(t, o.NoNewline)
	require.True(t, o.Float)
	require.Equal(t, 10, o.Timeout)
}

func TestNewOptions_TimeoutIgnoredForFileAndProgress(t *testing.T) {
	flags := fakeFlags{"--timeout": {"5"}, "--float": {}}

	for _, typ := range []Type{FileSelect, FileSave, Progressbar} {
		o := NewOptions(typ, flags)
		require.Zero(t, o.Timeout, typ.String())
		require.False(t, o.Float, typ.String())
	}
}

func TestNewOptions_CustomButtons(t *testing.T) {
	flags := fakeFlags{
		"--button1": {"Save"},
		"--button2": {"Discard"},
		"--button3": {"Cancel"},
	}

	o := NewOptions(Msgbox, flags)
	require.Equal(t, [3]string{"Save", "Discard", "Cancel"}, o.Buttons)
	require.Equal(t, 3, o.ButtonCount())

	o = NewOptions(OkMsgbox, flags)
	require.Equal(t, [3]string{"Ok", "Cancel"}, o.Buttons, "ok-msgbox keeps its fixed labels")
}

func TestNewOptions_NoCancel(t *testing.T) {
	tests := []struct {
		typ  Type
		want [3]string
	}{
		{OkMsgbox, [3]string{"Ok"}},
		{YesNoMsgbox, [3]string{"Yes", "No"}},
		{StandardInputbox, [3]string{"Ok"}},
		{SecureStandardInputbox, [3]string{"Ok"}},
		{StandardDropdown, [3]string{"Ok"}},
		{Msgbox, [3]string{"Ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			o := NewOptions(tt.typ, fakeFlags{"--no-cancel": {}})
			require.Equal(t, tt.want, o.Buttons)
		})
	}
}

func TestNewOptions_InputboxEntries(t *testing.T) {
	o := NewOptions(Inputbox, fakeFlags{
		"--text":             {"alice", "secret"},
		"--informative-text": {"Log in", "User", "Password"},
		"--no-show":          {},
	})

	require.Equal(t, "alice", o.Text)
	require.Equal(t, []string{"alice", "secret"}, o.Texts)
	require.Equal(t, "Log in", o.InformativeText)
	require.Equal(t, []string{"User", "Password"}, o.Labels)
	require.True(t, o.MultipleEntries())
	require.True(t, o.Masked())
}

func TestNewOptions_InputboxSingleLabel(t *testing.T) {
	o := NewOptions(Inputbox, fakeFlags{"--informative-text": {"Name?", "Only"}})

	require.Equal(t, []string{"Only"}, o.Labels)
	require.False(t, o.MultipleEntries(), "one label is still a single entry")
	require.False(t, o.Masked())
}

func TestNewOptions_SecureAlwaysMasked(t *testing.T) {
	require.True(t, NewOptions(SecureInputbox, fakeFlags{}).Masked())
	require.True(t, NewOptions(SecureStandardInputbox, fakeFlags{}).Masked())
}

func TestNewOptions_ScrollToFocusesTextbox(t *testing.T) {
	o := NewOptions(Textbox, fakeFlags{"--scroll-to": {"bottom"}})

	require.True(t, o.FocusTextbox)
	require.Equal(t, "bottom", o.ScrollTo)
}

func TestNewOptions_Select(t *testing.T) {
	o := NewOptions(Dropdown, fakeFlags{"--select": {"2"}})
	require.Equal(t, 2, o.Select)

	o = NewOptions(OptionSelect, fakeFlags{"--select": {"0", "2", "x"}})
	require.Equal(t, []int{0, 2, 0}, o.Selects)
}

func TestNewOptions_ColumnsClamped(t *testing.T) {
	o := NewOptions(FilteredList, fakeFlags{
		"--columns":       {"Name", "Size"},
		"--search-column": {"5"},
		"--output-column": {"0"},
	})

	require.Equal(t, 2, o.SearchColumn)
	require.Equal(t, 1, o.OutputColumn)
}

func TestNewOptions_FileOptions(t *testing.T) {
	o := NewOptions(FileSelect, fakeFlags{
		"--with-directory":          {"/tmp"},
		"--with-file":               {"notes.txt"},
		"--with-extension":          {".txt", ".md"},
		"--select-multiple":         {},
		"--select-only-directories": {},
	})

	require.Equal(t, "/tmp", o.WithDirectory)
	require.Equal(t, "notes.txt", o.WithFile)
	require.Equal(t, []string{".txt", ".md"}, o.WithExtensions)
	require.True(t, o.SelectMultiple)
	require.True(t, o.SelectOnlyDirectories)
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"  7", 7},
		{"-3", -3},
		{"+8", 8},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"50 half done", 50},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Atoi(tt.in))
		})
	}
}
