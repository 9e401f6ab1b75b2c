package dispatchers

import (
	"io"

	"github.com/gtdialog/gtdialog/internal/domain"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

type CommandFunc func(args []string, flags *ParsedFlags) error

type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

// Streams are the writers help and usage output go to. A nil Styler
// writes plain text.
type Streams struct {
	Out    io.Writer
	Err    io.Writer
	Styler domain.Styler
}

func (s Streams) styler() domain.Styler {
	if s.Styler == nil {
		return style.NopStyler{}
	}
	return s.Styler
}

// Arity is the number of arguments a flag consumes after its name.
type Arity int

const (
	// ArityNone flags are switches.
	ArityNone Arity = iota
	// ArityOne flags take the next argument, whatever it looks like.
	ArityOne
	// ArityList flags take every following argument up to the next one
	// starting with "--".
	ArityList
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Arity       Arity
}

// Name returns the canonical name the flag is recorded under.
func (f FlagDescriptor) Name() string {
	if len(f.Names) == 0 {
		return ""
	}
	return f.Names[0]
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Usage       string
	Description string
	Returns     string
	Example     string
	Flags       []FlagDescriptor
	Args        []string // fixed positional values, for completion
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
	Version     string

	order int
}
