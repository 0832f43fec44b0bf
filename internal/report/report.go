// Package report renders configuration failures for the user.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/hwconfig"
	"github.com/thoreinstein/mcucheck/internal/hwconfig/validator"
	"github.com/thoreinstein/mcucheck/internal/printer"
)

// Format specifies the output format for failure reports.
type Format string

const (
	// FormatText produces a single human-readable line.
	FormatText Format = "text"
	// FormatJSON produces a single machine-readable JSON object.
	FormatJSON Format = "json"
)

// Failure kinds for errors raised outside the rule checks.
const (
	KindFileNotFound  = "FileNotFound"
	KindMalformedJSON = "MalformedJson"
	KindOtherIO       = "OtherIoError"
	KindEncoding      = "EncodingError"
	KindUnknown       = "Error"
)

// ErrUnknownFormat indicates an unsupported report format name.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// Diagnostic is the structured form of a failure.
type Diagnostic struct {
	Valid   bool     `json:"valid"`
	Kind    string   `json:"kind"`
	File    string   `json:"file,omitempty"`
	Field   string   `json:"field,omitempty"`
	Value   any      `json:"value,omitempty"`
	Missing []string `json:"missing,omitempty"`
	Message string   `json:"message"`
}

// Diagnose classifies err. file names the configuration file and may be empty.
func Diagnose(err error, file string) Diagnostic {
	d := Diagnostic{
		Kind:    KindUnknown,
		File:    file,
		Message: err.Error(),
	}

	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		d.Kind = verr.Kind.String()
		d.Field = verr.Path()
		d.Value = verr.Value
		d.Missing = verr.Missing
	case errors.Is(err, hwconfig.ErrFileNotFound):
		d.Kind = KindFileNotFound
	case errors.Is(err, hwconfig.ErrMalformedJSON):
		d.Kind = KindMalformedJSON
	case errors.Is(err, hwconfig.ErrIO):
		d.Kind = KindOtherIO
	case errors.Is(err, printer.ErrEncode):
		d.Kind = KindEncoding
	}

	return d
}

// Reporter formats and writes failure diagnostics.
type Reporter struct {
	out    io.Writer
	format Format
}

// New creates a new Reporter.
func New(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes one diagnostic for err. A nil err writes nothing.
func (r *Reporter) Report(err error, file string) error {
	if err == nil {
		return nil
	}

	d := Diagnose(err, file)
	switch r.format {
	case FormatJSON:
		return r.reportJSON(d)
	default:
		return r.reportText(d)
	}
}

func (r *Reporter) reportJSON(d Diagnostic) error {
	data, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "encoding JSON report")
	}
	_, err = fmt.Fprintf(r.out, "%s\n", data)
	return errors.Wrap(err, "writing report")
}

// reportText writes "Error: <message>" on a single line.
func (r *Reporter) reportText(d Diagnostic) error {
	msg := strings.ReplaceAll(d.Message, "\n", " ")
	_, err := fmt.Fprintf(r.out, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), msg)
	return errors.Wrap(err, "writing report")
}
