package config

import (
	"strings"

	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/printer"
	"github.com/thoreinstein/mcucheck/internal/report"
)

// ErrInvalidPath indicates the default file setting is unusable.
var ErrInvalidPath = errors.New("invalid path")

// Validate checks s and returns every problem found, or nil.
func Validate(s *Settings) []error {
	if s == nil {
		return []error{errors.New("settings are nil")}
	}

	var errs []error

	if err := validatePath(s.File); err != nil {
		errs = append(errs, &FieldError{Field: KeyFile, Value: s.File, Err: err})
	}

	if _, err := printer.ParseFormat(s.Output); err != nil {
		errs = append(errs, &FieldError{Field: KeyOutput, Value: s.Output, Err: err})
	}

	if _, err := report.ParseFormat(s.Report); err != nil {
		errs = append(errs, &FieldError{Field: KeyReport, Value: s.Report, Err: err})
	}

	return errs
}

// validatePath checks that path is syntactically usable. It does not
// check that it exists.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrInvalidPath
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// FieldError reports a bad value for one setting.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
