package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates any failure: an unreadable or malformed
	// configuration file, a rule violation, or a usage error.
	ExitFailure = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrReported marks an error whose diagnostic was already written to the
	// user. Callers should exit without printing it again.
	ErrReported = errors.New("diagnostic already reported")

	// ErrAlreadyExists indicates a file would be overwritten.
	ErrAlreadyExists = errors.New("file already exists")
)

// Re-exported helpers so callers need a single errors import.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Mark   = errors.Mark
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitFailure code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	e := NewExitError(err, ExitFailure)
	e.Suggestion = suggestion
	return e
}

// Reported marks err as already shown to the user.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrReported)
}

// ExitCode returns the process exit status for err.
// A nil error maps to ExitSuccess, an ExitError to its own code, and
// everything else to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
