package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcucheck/internal/config"
	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/hwconfig"
	"github.com/thoreinstein/mcucheck/internal/logging"
	"github.com/thoreinstein/mcucheck/internal/paths"
	"github.com/thoreinstein/mcucheck/pkg/fileutil"
)

var (
	initForce         bool
	initWriteSettings bool
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
	initCmd.Flags().BoolVar(&initWriteSettings, "write-settings", false,
		"also write mcucheck.yaml with the current settings next to the configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter hardware configuration",
	Long: `Write a complete, valid configuration for an STM32F4 board with one
GPIO, UART, I2C and timer instance. Edit it to match your hardware, then run
mcucheck to validate it.

Existing files are left untouched unless --force is given.`,
	Example: `  # Create ./config.json
  mcucheck init

  # Create a configuration elsewhere, replacing any existing file
  mcucheck init boards/nucleo.json --force

  # Also record the current settings in mcucheck.yaml
  mcucheck init --write-settings --output yaml

  See Also: mcucheck`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := current.File
	if len(args) > 0 {
		path = args[0]
	}

	if err := writeNew(path, hwconfig.Sample()); err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Info("wrote sample configuration", "file", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)

	if !initWriteSettings {
		return nil
	}

	settingsPath := filepath.Join(filepath.Dir(path), paths.SettingsName+".yaml")
	if err := checkOverwrite(settingsPath); err != nil {
		return err
	}
	s := *current
	s.File = filepath.Base(path)
	if err := fileutil.AtomicWriteYAML(settingsPath, settingsFileContent(s)); err != nil {
		return errors.Wrapf(err, "writing %s", settingsPath)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", settingsPath)
	return nil
}

// settingsFileContent drops the debug switch, which belongs in the
// environment rather than a checked-in file.
func settingsFileContent(s config.Settings) config.Settings {
	s.Debug = false
	return s
}

// writeNew atomically writes data to path, refusing to replace an
// existing file unless --force was given.
func writeNew(path string, data []byte) error {
	if err := checkOverwrite(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	return errors.Wrapf(fileutil.AtomicWriteFile(path, data, 0o644), "writing %s", path)
}

func checkOverwrite(path string) error {
	if initForce {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrAlreadyExists, "%s", path),
			"use --force to overwrite")
	}
	return nil
}
