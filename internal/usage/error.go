package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownType
	ErrInvalidBackend
	ErrUnsupportedShell
)

// Exit codes:
//
//	Exit 1: no dialog could be shown
//	  - Unknown errors
//	  - Unknown or missing dialog type
//
//	Exit 2: User input errors
//	  - Invalid backend name
//	  - Unsupported shell for completions
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrUnknownType:      1,
	ErrInvalidBackend:   2,
	ErrUnsupportedShell: 2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	Usage    string // help text printed after the message, if any
	ExitCode int    // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
