package dialog

// DefaultTitle is the window title used when --title is not given.
const DefaultTitle = "gtdialog"

// Default button labels.
const (
	LabelOk     = "Ok"
	LabelCancel = "Cancel"
	LabelYes    = "Yes"
	LabelNo     = "No"
	LabelStop   = "Stop"
)

// Flags is the read side of a scanned argument list.
type Flags interface {
	Has(name string) bool
	String(name, defaultVal string) string
	Int(name string, defaultVal int) int
	List(name string) []string
}

// Options holds the configuration of a single dialog invocation.
type Options struct {
	Type Type

	Title        string
	Width        int // 0 means the backend default
	Height       int // 0 means the backend default
	StringOutput bool
	NoNewline    bool
	Float        bool
	Timeout      int // seconds, 0 disables

	// Buttons are ordered right-to-left; an empty label means no button.
	Buttons [3]string

	Text             string
	Texts            []string // initial values of multiple entries
	InformativeText  string
	Labels           []string // one per entry in a multiple-entry input box
	Icon             string
	IconFile         string
	NoShow           bool

	Editable       bool
	FocusTextbox   bool
	ScrollTo       string
	Selected       bool
	MonospacedFont bool
	TextFromFile   string

	Percent       int
	Indeterminate bool
	Stoppable     bool

	Items        []string
	Select       int
	Selects      []int
	ExitOnChange bool

	Columns        []string
	SelectMultiple bool
	SearchColumn   int // 1-based
	OutputColumn   int // 1-based

	WithDirectory         string
	WithFile              string
	WithExtensions        []string
	SelectOnlyDirectories bool
	NoCreateDirectories   bool
}

// DefaultButtons returns the button labels a dialog type starts with.
func DefaultButtons(t Type) [3]string {
	switch t {
	case Msgbox, Inputbox, SecureInputbox, Textbox, Dropdown, FilteredList, OptionSelect:
		return [3]string{LabelOk}
	case OkMsgbox, StandardInputbox, SecureStandardInputbox, StandardDropdown:
		return [3]string{LabelOk, LabelCancel}
	case YesNoMsgbox:
		return [3]string{LabelYes, LabelNo, LabelCancel}
	case Progressbar:
		return [3]string{LabelStop}
	}
	return [3]string{}
}

// NewOptions builds the options for a dialog of type t from scanned flags.
// Flags that do not apply to t are expected to be absent already; the
// scanner only records options a dialog type recognizes.
func NewOptions(t Type, f Flags) *Options {
	o := &Options{
		Type:         t,
		Title:        f.String("--title", DefaultTitle),
		StringOutput: f.Has("--string-output"),
		NoNewline:    f.Has("--no-newline"),
		Buttons:      DefaultButtons(t),
		ScrollTo:     "top",
		SearchColumn: 1,
		OutputColumn: 1,
	}

	if w := f.Int("--width", 0); w > 0 {
		o.Width = w
	}
	if h := f.Int("--height", 0); h > 0 {
		o.Height = h
	}
	if t.CanTimeout() {
		o.Float = f.Has("--float")
		o.Timeout = max(f.Int("--timeout", 0), 0)
	}

	if t.HasCustomButtons() {
		for i, name := range []string{"--button1", "--button2", "--button3"} {
			if f.Has(name) {
				o.Buttons[i] = f.String(name, "")
			}
		}
	}
	if f.Has("--no-cancel") {
		switch t {
		case OkMsgbox, StandardInputbox, SecureStandardInputbox, StandardDropdown:
			o.Buttons[1] = ""
		case YesNoMsgbox:
			o.Buttons[2] = ""
		}
	}

	if t.IsInputbox() {
		if texts := f.List("--text"); len(texts) > 0 {
			o.Text = texts[0]
			o.Texts = texts
		}
		if info := f.List("--informative-text"); len(info) > 0 {
			o.InformativeText = info[0]
			o.Labels = info[1:]
		}
		o.NoShow = f.Has("--no-show")
	} else {
		o.Text = f.String("--text", "")
		o.InformativeText = f.String("--informative-text", "")
	}

	o.Icon = f.String("--icon", "")
	o.IconFile = f.String("--icon-file", "")

	o.Editable = f.Has("--editable")
	o.FocusTextbox = f.Has("--focus-textbox")
	if f.Has("--scroll-to") {
		o.FocusTextbox = true
		o.ScrollTo = f.String("--scroll-to", "top")
	}
	o.Selected = f.Has("--selected")
	o.MonospacedFont = f.Has("--monospaced-font")
	o.TextFromFile = f.String("--text-from-file", "")

	o.Percent = f.Int("--percent", 0)
	o.Indeterminate = f.Has("--indeterminate")
	o.Stoppable = f.Has("--stoppable")

	o.Items = f.List("--items")
	o.ExitOnChange = f.Has("--exit-onchange")
	if t == OptionSelect {
		for _, s := range f.List("--select") {
			o.Selects = append(o.Selects, Atoi(s))
		}
	} else {
		o.Select = f.Int("--select", 0)
	}

	o.Columns = f.List("--columns")
	o.SelectMultiple = f.Has("--select-multiple")
	o.SearchColumn = max(f.Int("--search-column", 1), 1)
	o.OutputColumn = max(f.Int("--output-column", 1), 1)
	if t == FilteredList {
		o.SearchColumn = min(o.SearchColumn, len(o.Columns))
		o.OutputColumn = min(o.OutputColumn, len(o.Columns))
	}

	o.WithDirectory = f.String("--with-directory", "")
	o.WithFile = f.String("--with-file", "")
	o.WithExtensions = f.List("--with-extension")
	o.SelectOnlyDirectories = f.Has("--select-only-directories")
	o.NoCreateDirectories = f.Has("--no-create-directories")

	return o
}

// ButtonCount returns the number of labelled buttons.
func (o *Options) ButtonCount() int {
	n := 0
	for _, b := range o.Buttons {
		if b != "" {
			n++
		}
	}
	return n
}

// MultipleEntries reports whether an input box shows one entry per label.
func (o *Options) MultipleEntries() bool {
	return o.Type.IsInputbox() && len(o.Labels) > 1
}

// Masked reports whether an input box hides typed characters.
func (o *Options) Masked() bool {
	return o.Type.IsSecure() || o.NoShow
}

// Atoi parses the leading integer of s the way C's atoi does: optional
// leading spaces and sign, then digits; anything unparsable is 0.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
