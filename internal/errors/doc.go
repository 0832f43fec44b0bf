// Package errors provides error handling conventions for the mcucheck CLI.
//
// It re-exports the constructors and inspectors of
// github.com/cockroachdb/errors so the rest of the module has a single
// errors import, and adds an ExitError type for exit code handling.
//
// # Exit Codes
//
//   - ExitSuccess (0): the configuration is valid and was printed
//   - ExitFailure (1): any failure, including unreadable files
//
// # Reported Errors
//
// Commands that already wrote a diagnostic to standard output mark the
// returned error with [Reported]. The entry point checks for [ErrReported]
// and exits without printing anything further:
//
//	if err := runValidate(...); err != nil {
//	    return mcuerrors.Reported(err)
//	}
package errors
