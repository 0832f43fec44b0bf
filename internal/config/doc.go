// Package config manages mcucheck's own settings.
//
// Settings are distinct from the hardware configuration the tool checks.
// They come from an optional mcucheck.yaml, searched in the working
// directory and then in $XDG_CONFIG_HOME/mcucheck:
//
//	file: board/config.json
//	output: yaml
//	report: json
//
// Every key can be overridden with an MCUCHECK_ environment variable
// (MCUCHECK_OUTPUT=toml), and the CLI binds its flags on top, so the
// precedence is flag, then environment, then file, then [Default].
//
// # Loading
//
//	v := config.New()
//	settings, err := config.Load(v, "")
//	if err != nil {
//		return err
//	}
//
// [Load] validates the result with [Validate], which rejects unknown
// output and report formats.
package config
