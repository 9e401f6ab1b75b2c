package usage

import "fmt"

// UnsupportedShell is returned when completions are asked for a shell
// that has no generator. An empty name means none was given and $SHELL
// named no supported shell.
func UnsupportedShell(name string) *Error {
	msg := fmt.Sprintf("gtdialog: unsupported shell '%s' (use bash, zsh or fish)", name)
	if name == "" {
		msg = "gtdialog: could not detect the shell, name one: gtdialog completions bash|zsh|fish"
	}
	return &Error{
		Kind:    ErrUnsupportedShell,
		Message: msg,
	}
}
