package show

import (
	"context"
	"fmt"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/domain"
	"github.com/gtdialog/gtdialog/internal/log"
)

type Deps struct {
	// Context bounds the dialog; cancelling it closes the dialog.
	Context func() context.Context
	// Backend returns the backend to render with; name is the --backend
	// value and may be empty.
	Backend func(name string) (dialog.Backend, error)
	Printf  func(string, ...any) (int, error)
	Logger  domain.Logger
}

func DefaultDeps(backend func(string) (dialog.Backend, error)) Deps {
	return Deps{
		Context: context.Background,
		Backend: backend,
		Printf:  fmt.Printf,
		Logger:  log.NopLogger{},
	}
}
