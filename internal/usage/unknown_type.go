package usage

import (
	"fmt"
	"strings"
)

// UnknownType is returned when the first argument names no dialog type.
func UnknownType(name string, suggestions ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "gtdialog: '%s' is not a dialog type. See 'gtdialog help'.", name)

	if len(suggestions) > 0 {
		b.WriteString("\n\nThe most similar types are:")
		for _, s := range suggestions {
			b.WriteString("\n\t")
			b.WriteString(s)
		}
	}

	return &Error{
		Kind:    ErrUnknownType,
		Message: b.String(),
	}
}
