package cli

import "github.com/gtdialog/gtdialog/internal/dispatchers"

// RootFlags apply to every dialog type.
var RootFlags = []dispatchers.FlagDescriptor{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
	},
	{
		Names:       []string{"--title"},
		ValueHint:   "str",
		Description: "The dialog's title text",
		Arity:       dispatchers.ArityOne,
	},
	{
		Names:       []string{"--string-output"},
		Description: "Print button labels, item text, timeout or delete instead of numbers",
	},
	{
		Names:       []string{"--no-newline"},
		Description: "Do not print the trailing newline",
	},
	{
		Names:       []string{"--width"},
		ValueHint:   "int",
		Description: "Dialog width (cells in a terminal, pixels on the desktop)",
		Arity:       dispatchers.ArityOne,
	},
	{
		Names:       []string{"--height"},
		ValueHint:   "int",
		Description: "Dialog height (cells in a terminal, pixels on the desktop)",
		Arity:       dispatchers.ArityOne,
	},
	{
		Names:       []string{"--backend"},
		ValueHint:   "tui|gui",
		Description: "Render in the terminal or with native desktop dialogs",
		Arity:       dispatchers.ArityOne,
	},
}

var (
	textMainFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--text"},
		ValueHint:   "str",
		Description: "The main message text",
		Arity:       dispatchers.ArityOne,
	}
	informativeTextFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--informative-text"},
		ValueHint:   "str",
		Description: "Extra informative text",
		Arity:       dispatchers.ArityList,
	}
	iconFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--icon"},
		ValueHint:   "str",
		Description: "Icon name: error, info, question or warning",
		Arity:       dispatchers.ArityOne,
	}
	iconFileFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--icon-file"},
		ValueHint:   "path",
		Description: "Path of an icon to show; ignored when --icon is given",
		Arity:       dispatchers.ArityOne,
	}
	button1Flag = dispatchers.FlagDescriptor{
		Names:       []string{"--button1"},
		ValueHint:   "str",
		Description: "The right-most button's label",
		Arity:       dispatchers.ArityOne,
	}
	button2Flag = dispatchers.FlagDescriptor{
		Names:       []string{"--button2"},
		ValueHint:   "str",
		Description: "The middle button's label",
		Arity:       dispatchers.ArityOne,
	}
	button3Flag = dispatchers.FlagDescriptor{
		Names:       []string{"--button3"},
		ValueHint:   "str",
		Description: "The left-most button's label; needs --button2",
		Arity:       dispatchers.ArityOne,
	}
	noCancelFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--no-cancel"},
		Description: "Hide the Cancel button",
	}
	floatFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--float"},
		Description: "Keep the dialog above other windows",
	}
	timeoutFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--timeout"},
		ValueHint:   "int",
		Description: "Seconds to wait for a response before timing out",
		Arity:       dispatchers.ArityOne,
	}
)

var (
	inputTextFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--text"},
		ValueHint:   "str|list",
		Description: "Initial input; one value per entry box when there are several",
		Arity:       dispatchers.ArityList,
	}
	inputInformativeTextFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--informative-text"},
		ValueHint:   "str [labels]",
		Description: "The main message text, then one label per entry box (two or more)",
		Arity:       dispatchers.ArityList,
	}
	noShowFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--no-show"},
		Description: "Mask typed characters",
	}
)

var (
	withDirectoryFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--with-directory"},
		ValueHint:   "dir",
		Description: "The initial directory",
		Arity:       dispatchers.ArityOne,
	}
	withFileFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--with-file"},
		ValueHint:   "path",
		Description: "The initially selected file name",
		Arity:       dispatchers.ArityOne,
	}
	withExtensionFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--with-extension"},
		ValueHint:   "list",
		Description: "Extensions selectable files are limited to; the '.' is optional",
		Arity:       dispatchers.ArityList,
	}
	selectMultipleFileFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--select-multiple"},
		Description: "Allow selecting several files",
	}
	selectOnlyDirectoriesFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--select-only-directories"},
		Description: "Select a directory instead of a file",
	}
	noCreateDirectoriesFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--no-create-directories"},
		Description: "Do not allow creating directories",
	}
)

var (
	textboxTextFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--text"},
		ValueHint:   "str",
		Description: "The initial text in the textbox",
		Arity:       dispatchers.ArityOne,
	}
	textboxInformativeTextFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--informative-text"},
		ValueHint:   "str",
		Description: "Informative message text",
		Arity:       dispatchers.ArityList,
	}
	textFromFileFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--text-from-file"},
		ValueHint:   "path",
		Description: "File loaded into the textbox; ignored when --text is given",
		Arity:       dispatchers.ArityOne,
	}
	editableFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--editable"},
		Description: "Allow editing the text",
	}
	focusTextboxFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--focus-textbox"},
		Description: "Focus the textbox instead of the buttons",
	}
	scrollToFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--scroll-to"},
		ValueHint:   "bottom|top",
		Description: "Where to scroll when the text does not fit (default top)",
		Arity:       dispatchers.ArityOne,
	}
	selectedFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--selected"},
		Description: "Select all text",
	}
	monospacedFontFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--monospaced-font"},
		Description: "Use a monospaced font",
	}
)

var (
	percentFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--percent"},
		ValueHint:   "int",
		Description: "The initial percentage, 0 to 100",
		Arity:       dispatchers.ArityOne,
	}
	progressTextFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--text"},
		ValueHint:   "str",
		Description: "The initial progress text",
		Arity:       dispatchers.ArityOne,
	}
	indeterminateFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--indeterminate"},
		Description: "Show a busy indicator instead of a percentage",
	}
	stoppableFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--stoppable"},
		Description: "Show the Stop button",
	}
)

var (
	itemsFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--items"},
		ValueHint:   "list",
		Description: "The items to choose from",
		Arity:       dispatchers.ArityList,
	}
	selectFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--select"},
		ValueHint:   "int",
		Description: "Zero-based index of the initially selected item",
		Arity:       dispatchers.ArityOne,
	}
	exitOnChangeFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--exit-onchange"},
		Description: "Close the dialog as soon as the selection changes",
	}
	filterTextFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--text"},
		ValueHint:   "str",
		Description: "The initial filter text",
		Arity:       dispatchers.ArityOne,
	}
	columnsFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--columns"},
		ValueHint:   "list",
		Description: "Column names; required",
		Arity:       dispatchers.ArityList,
	}
	rowItemsFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--items"},
		ValueHint:   "list",
		Description: "Cells, filled into the rows column by column",
		Arity:       dispatchers.ArityList,
	}
	selectMultipleRowsFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--select-multiple"},
		Description: "Allow selecting several rows",
	}
	searchColumnFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--search-column"},
		ValueHint:   "int",
		Description: "Column the filter applies to (default 1)",
		Arity:       dispatchers.ArityOne,
	}
	outputColumnFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--output-column"},
		ValueHint:   "int",
		Description: "Column printed with --string-output (default 1)",
		Arity:       dispatchers.ArityOne,
	}
	selectIndicesFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--select"},
		ValueHint:   "indices",
		Description: "Zero-based indices of the initially checked options",
		Arity:       dispatchers.ArityList,
	}
)

func buttons() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{button1Flag, button2Flag, button3Flag}
}

func join(groups ...[]dispatchers.FlagDescriptor) []dispatchers.FlagDescriptor {
	var out []dispatchers.FlagDescriptor
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var (
	MsgboxFlags = join(
		[]dispatchers.FlagDescriptor{textMainFlag, informativeTextFlag, iconFlag, iconFileFlag},
		buttons(),
		[]dispatchers.FlagDescriptor{floatFlag, timeoutFlag},
	)

	StandardMsgboxFlags = []dispatchers.FlagDescriptor{
		textMainFlag, informativeTextFlag, iconFlag, iconFileFlag, noCancelFlag, floatFlag, timeoutFlag,
	}

	InputboxFlags = join(
		[]dispatchers.FlagDescriptor{inputInformativeTextFlag, inputTextFlag, noShowFlag},
		buttons(),
		[]dispatchers.FlagDescriptor{floatFlag, timeoutFlag},
	)

	StandardInputboxFlags = []dispatchers.FlagDescriptor{
		inputInformativeTextFlag, inputTextFlag, noShowFlag, noCancelFlag, floatFlag, timeoutFlag,
	}

	SecureInputboxFlags = join(
		[]dispatchers.FlagDescriptor{inputInformativeTextFlag, inputTextFlag},
		[]dispatchers.FlagDescriptor{floatFlag, timeoutFlag},
	)

	SecureStandardInputboxFlags = []dispatchers.FlagDescriptor{
		inputInformativeTextFlag, inputTextFlag, noCancelFlag, floatFlag, timeoutFlag,
	}

	FileSelectFlags = []dispatchers.FlagDescriptor{
		withDirectoryFlag, withFileFlag, withExtensionFlag, selectMultipleFileFlag, selectOnlyDirectoriesFlag,
	}

	FileSaveFlags = []dispatchers.FlagDescriptor{
		withDirectoryFlag, withFileFlag, withExtensionFlag, noCreateDirectoriesFlag,
	}

	TextboxFlags = join(
		[]dispatchers.FlagDescriptor{
			textboxInformativeTextFlag, textboxTextFlag, textFromFileFlag,
			editableFlag, focusTextboxFlag, scrollToFlag, selectedFlag, monospacedFontFlag,
		},
		buttons(),
		[]dispatchers.FlagDescriptor{floatFlag, timeoutFlag},
	)

	ProgressbarFlags = []dispatchers.FlagDescriptor{
		percentFlag, progressTextFlag, indeterminateFlag, stoppableFlag,
	}

	DropdownFlags = join(
		[]dispatchers.FlagDescriptor{textMainFlag, itemsFlag, selectFlag, exitOnChangeFlag},
		buttons(),
		[]dispatchers.FlagDescriptor{floatFlag, timeoutFlag},
	)

	StandardDropdownFlags = []dispatchers.FlagDescriptor{
		textMainFlag, itemsFlag, selectFlag, exitOnChangeFlag, noCancelFlag, floatFlag, timeoutFlag,
	}

	FilteredListFlags = join(
		[]dispatchers.FlagDescriptor{
			informativeTextFlag, filterTextFlag, columnsFlag, rowItemsFlag,
			selectMultipleRowsFlag, searchColumnFlag, outputColumnFlag,
		},
		buttons(),
		[]dispatchers.FlagDescriptor{floatFlag, timeoutFlag},
	)

	OptionSelectFlags = join(
		[]dispatchers.FlagDescriptor{informativeTextFlag, itemsFlag, selectIndicesFlag},
		buttons(),
		[]dispatchers.FlagDescriptor{floatFlag, timeoutFlag},
	)
)

// CompletionsFlags apply to the completions command.
var CompletionsFlags = []dispatchers.FlagDescriptor{
	{
		Names:       []string{"--script"},
		Description: "Print the completion script instead of setup instructions",
	},
}
