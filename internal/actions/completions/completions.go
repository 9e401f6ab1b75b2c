// Package completions prints shell completion scripts and how to load them.
package completions

import (
	"fmt"
	"os"
	"strings"

	"github.com/gtdialog/gtdialog/internal/completions"
	"github.com/gtdialog/gtdialog/internal/dispatchers"
	"github.com/gtdialog/gtdialog/internal/usage"
)

type Deps struct {
	Printf func(string, ...any) (int, error)
	Getenv func(string) string
	Home   func() (string, error)
}

func DefaultDeps(printf func(string, ...any) (int, error)) Deps {
	if printf == nil {
		printf = fmt.Printf
	}
	return Deps{
		Printf: printf,
		Getenv: os.Getenv,
		Home:   os.UserHomeDir,
	}
}

// Action returns the completions command for the tree rooted at root.
// The tree is read when the command runs, so root may still be growing.
func Action(root *dispatchers.DispatchNode, deps Deps) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return run(root, args, flags, deps)
	}
}

func run(root *dispatchers.DispatchNode, args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	shell, err := pickShell(args, deps.Getenv)
	if err != nil {
		return err
	}

	if flags.Has("--script") {
		script, err := completions.Generate(shell, completions.ExtractCommands(root))
		if err != nil {
			return err
		}
		_, err = deps.Printf("%s", script)
		return err
	}

	home, _ := deps.Home()
	printInstructions(shell, root.Name, home, deps)
	return nil
}

// pickShell takes the first positional argument, or $SHELL without one.
func pickShell(args []string, getenv func(string) string) (completions.Shell, error) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		shell, ok := completions.ParseShell(a)
		if !ok {
			return "", usage.UnsupportedShell(a)
		}
		return shell, nil
	}

	if shell := completions.RunningShell(getenv); shell != "" {
		return shell, nil
	}
	return "", usage.UnsupportedShell("")
}

func printInstructions(shell completions.Shell, program, home string, deps Deps) {
	_, _ = deps.Printf("To enable %s completions, choose one of the following:\n\n", shell)

	n := 1
	if path := completions.AutoLoadPath(shell, home, program); path != "" {
		_, _ = deps.Printf("%d. Write the script where %s loads it on its own:\n", n, shell)
		_, _ = deps.Printf("   %s completions %s --script > %s\n\n", program, shell, path)
		n++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", n, completions.RcFile(shell))
	_, _ = deps.Printf("   %s\n\n", completions.SourceLine(shell, program))
	_, _ = deps.Printf("Then restart your shell or run: exec $SHELL\n")
}
