package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/gtdialog/gtdialog/internal/actions/show"
	"github.com/gtdialog/gtdialog/internal/app"
	"github.com/gtdialog/gtdialog/internal/cli"
	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/dispatchers"
	"github.com/gtdialog/gtdialog/internal/domain"
	"github.com/gtdialog/gtdialog/internal/usage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := app.DefaultOptions()
	opts.StyleEnabled = colorEnabled(args, stdout, stderr)
	application := app.New(opts)
	defer func() { _ = app.Close(application) }()

	deps := show.Deps{
		Context: func() context.Context { return ctx },
		Backend: app.BackendFunc(application, os.Getenv),
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(stdout, format, a...)
		},
		Logger: application.Logger,
	}

	root := cli.BuildTree(deps)
	res, err := dispatchers.Dispatch(root, args, dispatchers.Streams{
		Out:    stdout,
		Err:    stderr,
		Styler: application.Styler,
	})
	if err != nil {
		return fail(stderr, application.Styler, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		application.Logger.Error("%v", err)
		return fail(stderr, application.Styler, err)
	}

	// Help and bare invocations show no dialog and exit non-zero.
	return res.ExitCode
}

func fail(stderr io.Writer, s domain.Styler, err error) int {
	fmt.Fprintln(stderr, s.Error(err.Error()))
	var ue *usage.Error
	if !errors.As(err, &ue) {
		return 1
	}
	if ue.Usage != "" {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, ue.Usage)
	}
	return ue.GetExitCode()
}

// colorEnabled styles output only when it lands on a terminal: dialogs
// draw on stderr, help and errors go to stdout.
func colorEnabled(args []string, stdout, stderr io.Writer) bool {
	if len(args) > 0 {
		if _, ok := dialog.ParseType(args[0]); ok {
			return isTerminal(stderr)
		}
	}
	return isTerminal(stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
