// Package config loads mcucheck's own settings using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/hwconfig"
	"github.com/thoreinstein/mcucheck/internal/paths"
	"github.com/thoreinstein/mcucheck/internal/printer"
	"github.com/thoreinstein/mcucheck/internal/report"
)

// EnvPrefix prefixes every environment override, as in MCUCHECK_OUTPUT.
const EnvPrefix = "MCUCHECK"

// Setting keys.
const (
	KeyFile   = "file"
	KeyOutput = "output"
	KeyReport = "report"
	KeyDebug  = "debug"
)

// Keys lists every setting key in display order.
func Keys() []string {
	return []string{KeyFile, KeyOutput, KeyReport, KeyDebug}
}

// Settings are the tool's own options, distinct from the hardware
// configuration being validated.
type Settings struct {
	// File is the configuration checked when no path argument is given.
	File string `mapstructure:"file" yaml:"file"`
	// Output is the echo format for a valid configuration.
	Output string `mapstructure:"output" yaml:"output"`
	// Report is the diagnostic format for an invalid one.
	Report string `mapstructure:"report" yaml:"report"`
	// Debug forces debug logging regardless of -v.
	Debug bool `mapstructure:"debug" yaml:"debug,omitempty"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Settings {
	return &Settings{
		File:   hwconfig.DefaultPath,
		Output: string(printer.FormatJSON),
		Report: string(report.FormatText),
	}
}

// Init prepares v with the settings file search path, environment
// overrides and defaults.
func Init(v *viper.Viper) {
	v.SetConfigName(paths.SettingsName)
	v.SetConfigType("yaml")

	for _, dir := range paths.SettingsSearchPath() {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyFile, d.File)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyReport, d.Report)
	v.SetDefault(KeyDebug, d.Debug)
}

// New returns a fresh Viper instance prepared by Init.
func New() *viper.Viper {
	v := viper.New()
	Init(v)
	return v
}

// Load reads the settings file into v and returns the merged settings.
// With an empty path the search path is used and a missing file is not an
// error. An explicit path must exist.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if errs := Validate(&s); len(errs) > 0 {
		err := errs[0]
		if len(errs) > 1 {
			err = errors.Join(errs...)
		}
		return nil, errors.Wrap(err, "invalid settings")
	}

	return &s, nil
}
