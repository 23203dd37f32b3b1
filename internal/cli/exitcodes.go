package cli

import (
	"errors"
)

// Exit codes for sexpr.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitSyntaxError indicates the input could not be read as an
	// S-expression, or that fmt found unformatted input.
	ExitSyntaxError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrUnformatted is returned by fmt --diff when some input is not in
// canonical form.
var ErrUnformatted = errors.New("input is not formatted")

// ExitError carries the exit code a failed command should end with.
type ExitError struct {
	Code int
	Err  error

	// Reported is set when the error was already shown to the user.
	Reported bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: ExitInvalidUsage, Err: err}
}

func ioError(err error) error {
	return &ExitError{Code: ExitIOError, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// syntax errors, ErrUnformatted and anything unclassified
	return ExitSyntaxError
}

// Reported tells whether err was already shown to the user by the command
// that returned it. A diff counts as the report of ErrUnformatted.
func Reported(err error) bool {
	if errors.Is(err, ErrUnformatted) {
		return true
	}
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}
