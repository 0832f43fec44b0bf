// Package main is the entry point for the mcucheck CLI.
package main

import (
	"os"

	"github.com/thoreinstein/mcucheck/cmd/mcucheck/commands"
	"github.com/thoreinstein/mcucheck/internal/errors"
)

func main() {
	err := commands.Execute()
	commands.PrintError(os.Stderr, err)
	os.Exit(errors.ExitCode(err))
}
