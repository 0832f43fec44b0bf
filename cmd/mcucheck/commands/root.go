// Package commands implements the CLI commands for mcucheck.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/mcucheck/cmd"
	"github.com/thoreinstein/mcucheck/internal/config"
	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// settingsFile holds the value of the --settings flag.
var settingsFile string

// settings is rebuilt on every Execute so flags, environment and the
// settings file are read fresh.
var settings *viper.Viper

// current holds the loaded and validated settings.
var current *config.Settings

// settingsErr holds any error from loading settings, reported by
// PersistentPreRunE so help and version still work.
var settingsErr error

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only log errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "",
		"settings file (default: mcucheck.yaml in . or $XDG_CONFIG_HOME/mcucheck)")

	rootCmd.Flags().StringP("output", "o", "",
		"output format for a valid configuration: json, yaml, toml (default json)")
	rootCmd.Flags().String("report", "",
		"diagnostic format for an invalid configuration: text, json (default text)")

	rootCmd.Version = cmd.ShortVersion()
	rootCmd.SetVersionTemplate("mcucheck version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings = config.New()
	for key, name := range map[string]string{
		config.KeyOutput: "output",
		config.KeyReport: "report",
	} {
		// Lookup only fails for a flag name that is not registered above.
		_ = settings.BindPFlag(key, rootCmd.Flags().Lookup(name))
	}
	current, settingsErr = config.Load(settings, settingsFile)
}

var rootCmd = &cobra.Command{
	Use:   "mcucheck [path]",
	Short: "Validate microcontroller hardware configurations",
	Long: `mcucheck validates a JSON document describing a microcontroller's
hardware setup: the MCU part, its core type, floating-point support, and the
GPIO, UART, I2C and timer peripherals assigned to it.

Checks run in a fixed order and stop at the first violation, which is
printed as a single line on standard output. A valid configuration is
echoed back, re-indented, on standard output. The exit status is 0 when
the configuration is valid and 1 otherwise.`,
	Example: `  # Validate ./config.json
  mcucheck

  # Validate a specific file and echo it as YAML
  mcucheck boards/nucleo.json --output yaml

  # Machine-readable diagnostics for CI
  mcucheck --report json

  # Write a starter configuration
  mcucheck init

  See Also: mcucheck init, mcucheck version`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := current.File
		if len(args) > 0 {
			path = args[0]
		}
		return runValidate(cmd.Context(), cmd.OutOrStdout(), path, current)
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(
			errors.New("--quiet and --verbose are mutually exclusive"),
			"use one or the other")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// -v flags take precedence over the debug setting, which viper has
		// already merged from mcucheck.yaml and MCUCHECK_DEBUG.
		if v == 0 && current != nil && current.Debug {
			v = 2
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	logging.ConfigureColor(cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkSettings surfaces a settings load failure for commands that use
// settings.
func checkSettings(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "gen-doc":
		return nil
	}
	if settingsErr != nil {
		return errors.NewUserError(settingsErr, "fix mcucheck.yaml or the MCUCHECK_ environment variables")
	}
	logging.FromContext(cmd.Context()).Debug("settings loaded",
		"file", current.File,
		"output", current.Output,
		"report", current.Report,
		"source", settings.ConfigFileUsed())
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// PrintError writes err to w unless its diagnostic was already reported.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errors.ErrReported) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Hint: %s\n", exitErr.Suggestion)
	}
}
