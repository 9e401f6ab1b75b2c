// Package show runs a dialog and prints the response.
package show

import (
	"time"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/dispatchers"
)

// Action returns the command that shows a dialog of type t.
func Action(t dialog.Type, deps Deps) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return run(t, flags, deps)
	}
}

func run(t dialog.Type, flags *dispatchers.ParsedFlags, deps Deps) error {
	o := dialog.NewOptions(t, flags)

	backend, err := deps.Backend(flags.String("--backend", ""))
	if err != nil {
		return err
	}

	deps.Logger.Info("show %s with %s backend, options %v", t, backend.Name(), flags.Names())
	start := time.Now()

	out, err := dialog.Run(deps.Context(), backend, o)
	if err != nil {
		deps.Logger.Error("%s dialog failed: %v", t, err)
		return err
	}

	deps.Logger.Debug("%s dialog closed after %s, output %q", t, time.Since(start).Round(time.Millisecond), out)

	_, err = deps.Printf("%s", out)
	return err
}
