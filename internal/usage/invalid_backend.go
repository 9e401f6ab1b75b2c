package usage

import (
	"fmt"
	"strings"
)

// InvalidBackend is returned when --backend or the backend setting names no
// known dialog backend.
func InvalidBackend(name string, valid []string) *Error {
	return &Error{
		Kind:    ErrInvalidBackend,
		Message: fmt.Sprintf("gtdialog: unknown backend '%s' (expected one of: %s)", name, strings.Join(valid, ", ")),
	}
}
