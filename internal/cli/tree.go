package cli

import (
	"github.com/gtdialog/gtdialog/internal/actions/completions"
	"github.com/gtdialog/gtdialog/internal/actions/show"
	"github.com/gtdialog/gtdialog/internal/app"
	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/dispatchers"
)

const (
	msgboxReturns = `The number of the button pressed, 0 if the dialog timed out or -1 if it
was closed. With --string-output, the label of the button pressed,
"timeout" or "delete".`

	inputboxReturns = `The number of the button pressed, then a newline and the input text
(several entries are separated by newlines); 0 if the dialog timed out or
-1 if it was closed. With --string-output, the label of the button
pressed, "timeout" or "delete".`

	fileReturns = `The selected file(s), one per line, or an empty line if the dialog was
cancelled.`

	textboxReturns = `The number of the button pressed, then a newline and, with --editable,
the textbox text; 0 if the dialog timed out or -1 if it was closed. With
--string-output, the label of the button pressed, "timeout" or "delete".`

	progressbarReturns = `Lines of the form "num str" are read from stdin until EOF. num is a
percentage from 0 to 100; str is optional progress text and an empty str
keeps the current text. With --stoppable, the texts "stop disable" and
"stop enable" toggle the Stop button.

Prints "stopped" if the Stop button was pressed, otherwise nothing.`

	dropdownReturns = `The number of the button pressed (4 when --exit-onchange closed the
dialog), then a newline and the zero-based index of the selected item;
0 if the dialog timed out or -1 if it was closed. With --string-output,
the button label (still 4 for --exit-onchange) and the selected item,
"timeout" or "delete".`

	filteredListReturns = `The number of the button pressed, then a newline and the zero-based
indices of the selected rows, one per line; 0 if the dialog timed out or
-1 if it was closed. With --string-output, the button label and the
--output-column cell of every selected row, "timeout" or "delete".`

	optionSelectReturns = `The number of the button pressed, then a newline and the zero-based
indices of the checked options, one per line; 0 if the dialog timed out
or -1 if it was closed. With --string-output, the button label and the
checked options, "timeout" or "delete".`
)

const (
	msgboxExample = `gtdialog msgbox --title 'EOL Mode' --text 'Which EOL?' \
  --icon question --button1 CRLF --button2 CR --button3 LF`

	inputboxExample = `gtdialog standard-inputbox --title 'Goto Line' \
  --informative-text 'Line:' --text 1 --no-newline`

	fileExample = `gtdialog fileselect --title 'Open C File' --with-directory $HOME \
  --with-extension c h --select-multiple --no-newline`

	textboxExample = `gtdialog textbox --title 'License Agreement' \
  --informative-text 'You agree to:' --text-from-file LICENSE`

	progressbarExample = `for i in 25 50 75 100; do echo $i $i% done; sleep 1; done |
  gtdialog progressbar --title Status --stoppable`

	dropdownExample = `gtdialog dropdown --title 'Select Encoding' \
  --items UTF-8 ASCII ISO-8859-1 MacRoman --string-output --no-newline`

	filteredListExample = `gtdialog filteredlist --title Files --columns Name Size \
  --items main.go 2K go.mod 1K --string-output --output-column 1`

	optionSelectExample = `gtdialog optionselect --title Languages \
  --informative-text 'Check the languages you understand' \
  --items English French German Spanish --select 0 2 --string-output`
)

type typeSpec struct {
	typ         dialog.Type
	summary     string
	description string
	returns     string
	example     string
	flags       []dispatchers.FlagDescriptor
	category    dispatchers.CommandCategory
}

var typeSpecs = []typeSpec{
	{
		typ:      dialog.Msgbox,
		summary:  "A message box with custom button labels",
		returns:  msgboxReturns,
		example:  msgboxExample,
		flags:    MsgboxFlags,
		category: dispatchers.CategoryMessage,
	},
	{
		typ:      dialog.OkMsgbox,
		summary:  "A message box with Ok and Cancel buttons",
		returns:  msgboxReturns,
		example:  msgboxExample,
		flags:    StandardMsgboxFlags,
		category: dispatchers.CategoryMessage,
	},
	{
		typ:      dialog.YesNoMsgbox,
		summary:  "A message box with Yes, No and Cancel buttons",
		returns:  msgboxReturns,
		example:  msgboxExample,
		flags:    StandardMsgboxFlags,
		category: dispatchers.CategoryMessage,
	},
	{
		typ:         dialog.Inputbox,
		summary:     "A one line input box with custom button labels",
		description: "Give two or more labels after --informative-text for several entry boxes.",
		returns:     inputboxReturns,
		example:     inputboxExample,
		flags:       InputboxFlags,
		category:    dispatchers.CategoryInput,
	},
	{
		typ:      dialog.StandardInputbox,
		summary:  "An input box with Ok and Cancel buttons",
		returns:  inputboxReturns,
		example:  inputboxExample,
		flags:    StandardInputboxFlags,
		category: dispatchers.CategoryInput,
	},
	{
		typ:      dialog.SecureInputbox,
		summary:  "An input box with masked input",
		returns:  inputboxReturns,
		example:  inputboxExample,
		flags:    SecureInputboxFlags,
		category: dispatchers.CategoryInput,
	},
	{
		typ:      dialog.SecureStandardInputbox,
		summary:  "A masked input box with Ok and Cancel buttons",
		returns:  inputboxReturns,
		example:  inputboxExample,
		flags:    SecureStandardInputboxFlags,
		category: dispatchers.CategoryInput,
	},
	{
		typ:         dialog.FileSelect,
		summary:     "Choose files to open",
		description: "In the terminal, Space marks files when --select-multiple is given.",
		returns:     fileReturns,
		example:     fileExample,
		flags:       FileSelectFlags,
		category:    dispatchers.CategoryFile,
	},
	{
		typ:      dialog.FileSave,
		summary:  "Choose a file to save to",
		returns:  fileReturns,
		example:  fileExample,
		flags:    FileSaveFlags,
		category: dispatchers.CategoryFile,
	},
	{
		typ:      dialog.Textbox,
		summary:  "A multiple line text box with custom button labels",
		returns:  textboxReturns,
		example:  textboxExample,
		flags:    TextboxFlags,
		category: dispatchers.CategoryText,
	},
	{
		typ:      dialog.Progressbar,
		summary:  "A progress bar updated from stdin",
		returns:  progressbarReturns,
		example:  progressbarExample,
		flags:    ProgressbarFlags,
		category: dispatchers.CategoryProgress,
	},
	{
		typ:      dialog.Dropdown,
		summary:  "A drop down list with custom button labels",
		returns:  dropdownReturns,
		example:  dropdownExample,
		flags:    DropdownFlags,
		category: dispatchers.CategoryList,
	},
	{
		typ:      dialog.StandardDropdown,
		summary:  "A drop down list with Ok and Cancel buttons",
		returns:  dropdownReturns,
		example:  dropdownExample,
		flags:    StandardDropdownFlags,
		category: dispatchers.CategoryList,
	},
	{
		typ:         dialog.FilteredList,
		summary:     "A list of rows to filter and select from",
		description: "Spaces in the filter text match anything. In the terminal, Ctrl-Space or\n" +
			"Insert marks rows when --select-multiple is given.",
		returns:     filteredListReturns,
		example:     filteredListExample,
		flags:       FilteredListFlags,
		category:    dispatchers.CategoryList,
	},
	{
		typ:         dialog.OptionSelect,
		summary:     "A group of options to check",
		description: "In the terminal, Space checks or unchecks the option under the cursor.",
		returns:     optionSelectReturns,
		example:     optionSelectExample,
		flags:       OptionSelectFlags,
		category:    dispatchers.CategoryList,
	},
}

const completionsExample = `eval "$(gtdialog completions bash --script)"
gtdialog completions fish --script > ~/.config/fish/completions/gtdialog.fish`

// BuildTree returns the command tree: one command per dialog type, each
// running the show action with deps, and the completions command.
func BuildTree(deps show.Deps) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "gtdialog",
		Summary: "Show a dialog and print the response",
		Description: "The response is printed to stdout for use by shell scripts and editors.\n" +
			"Options that do not apply to the dialog type are ignored.",
		Usage:   "gtdialog <type> [options]",
		Version: app.Version,
		Flags:   RootFlags,
	})

	for _, spec := range typeSpecs {
		name := spec.typ.String()
		dispatchers.Command(dispatchers.CommandSpec{
			Name:        name,
			Parent:      root,
			Summary:     spec.summary,
			Description: spec.description,
			Usage:       "gtdialog " + name + " [options]",
			Returns:     spec.returns,
			Example:     spec.example,
			Flags:       spec.flags,
			Action:      show.Action(spec.typ, deps),
			Category:    spec.category,
		})
	}

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "completions",
		Parent:      root,
		Summary:     "Set up shell completion for dialog types and options",
		Description: "Without a shell name, the shell is taken from $SHELL.",
		Usage:       "gtdialog completions [bash|zsh|fish] [--script]",
		Example:     completionsExample,
		Flags:       CompletionsFlags,
		Args:        []string{"bash", "zsh", "fish"},
		Action:      completions.Action(root, completions.DefaultDeps(deps.Printf)),
		Category:    dispatchers.CategoryShell,
	})

	return root
}
