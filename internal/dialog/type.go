// Package dialog models the dialog types, their options and the text printed
// once a dialog closes. Rendering is left to a Backend.
package dialog

// Type identifies one of the dialog kinds selectable on the command line.
type Type int

const (
	Msgbox Type = iota
	OkMsgbox
	YesNoMsgbox
	Inputbox
	StandardInputbox
	SecureInputbox
	SecureStandardInputbox
	FileSelect
	FileSave
	Textbox
	Progressbar
	Dropdown
	StandardDropdown
	FilteredList
	OptionSelect
)

var typeNames = []string{
	Msgbox:                 "msgbox",
	OkMsgbox:               "ok-msgbox",
	YesNoMsgbox:            "yesno-msgbox",
	Inputbox:               "inputbox",
	StandardInputbox:       "standard-inputbox",
	SecureInputbox:         "secure-inputbox",
	SecureStandardInputbox: "secure-standard-inputbox",
	FileSelect:             "fileselect",
	FileSave:               "filesave",
	Textbox:                "textbox",
	Progressbar:            "progressbar",
	Dropdown:               "dropdown",
	StandardDropdown:       "standard-dropdown",
	FilteredList:           "filteredlist",
	OptionSelect:           "optionselect",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType returns the Type for its command-line name.
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return -1, false
}

// Types returns every dialog type in declaration order.
func Types() []Type {
	types := make([]Type, len(typeNames))
	for i := range typeNames {
		types[i] = Type(i)
	}
	return types
}

func (t Type) IsMsgbox() bool {
	return t >= Msgbox && t <= YesNoMsgbox
}

func (t Type) IsInputbox() bool {
	return t >= Inputbox && t <= SecureStandardInputbox
}

// IsSecure reports whether typed input is masked regardless of --no-show.
func (t Type) IsSecure() bool {
	return t == SecureInputbox || t == SecureStandardInputbox
}

func (t Type) IsFile() bool {
	return t == FileSelect || t == FileSave
}

func (t Type) IsDropdown() bool {
	return t == Dropdown || t == StandardDropdown
}

// HasCustomButtons reports whether --button1..3 apply to the type.
func (t Type) HasCustomButtons() bool {
	switch t {
	case Msgbox, Inputbox, Textbox, Dropdown, FilteredList, OptionSelect:
		return true
	}
	return false
}

// HasDataLine reports whether a button response is followed by a line of data.
func (t Type) HasDataLine() bool {
	return !t.IsMsgbox() && !t.IsFile() && t != Progressbar
}

// CanTimeout reports whether --timeout and --float apply to the type.
func (t Type) CanTimeout() bool {
	return !t.IsFile() && t != Progressbar
}
