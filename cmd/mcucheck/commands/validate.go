package commands

import (
	"context"
	"io"

	"github.com/thoreinstein/mcucheck/internal/config"
	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/hwconfig"
	"github.com/thoreinstein/mcucheck/internal/hwconfig/validator"
	"github.com/thoreinstein/mcucheck/internal/logging"
	"github.com/thoreinstein/mcucheck/internal/printer"
	"github.com/thoreinstein/mcucheck/internal/report"
)

// runValidate loads, validates and echoes the configuration at path.
// Load, validation and encoding failures are written to out as a
// diagnostic and returned marked as reported.
func runValidate(ctx context.Context, out io.Writer, path string, s *config.Settings) error {
	logger := logging.FromContext(ctx)

	outputFormat, err := printer.ParseFormat(s.Output)
	if err != nil {
		return err
	}
	reportFormat, err := report.ParseFormat(s.Report)
	if err != nil {
		return err
	}

	fail := func(err error) error {
		if rerr := report.New(out, reportFormat).Report(err, path); rerr != nil {
			return errors.Wrap(rerr, "writing diagnostic")
		}
		logger.Debug("configuration rejected", "file", path, "error", err)
		return errors.Reported(err)
	}

	doc, err := hwconfig.Load(path)
	if err != nil {
		return fail(err)
	}
	logger.Debug("configuration loaded", "file", path, "bytes", len(doc.Raw))

	v := validator.New(validator.WithLogger(logger))
	if err := v.Validate(doc.Root); err != nil {
		return fail(err)
	}
	logger.Info("configuration valid", "file", path, "peripherals", validator.Summarize(doc.Root))

	// The printer writes nothing when encoding fails, so the diagnostic
	// is still the only line on out.
	if err := printer.New(out, outputFormat).Print(doc); err != nil {
		return fail(err)
	}
	return nil
}
