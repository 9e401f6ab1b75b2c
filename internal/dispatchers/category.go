package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryMessage                       // msgbox family
	CategoryInput                         // input boxes
	CategoryFile                          // file choosers
	CategoryText                          // textbox
	CategoryProgress                      // progressbar
	CategoryList                          // dropdowns, lists, option groups
	CategoryShell                         // shell integration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryMessage:
		return "message boxes"
	case CategoryInput:
		return "input boxes"
	case CategoryFile:
		return "file dialogs"
	case CategoryText:
		return "text"
	case CategoryProgress:
		return "progress"
	case CategoryList:
		return "lists and selections"
	case CategoryShell:
		return "shell"
	default:
		return "other"
	}
}

var categoryOrder = []CommandCategory{
	CategoryMessage,
	CategoryInput,
	CategoryFile,
	CategoryText,
	CategoryProgress,
	CategoryList,
	CategoryShell,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
