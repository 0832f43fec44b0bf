package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcucheck/internal/config"
	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/hwconfig"
	"github.com/thoreinstein/mcucheck/internal/hwconfig/validator"
)

func TestInit_WritesValidSample(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, "init")
	require.NoError(t, err)
	assert.Equal(t, "Created config.json\n", stdout)

	doc, err := hwconfig.Load(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.NoError(t, validator.Validate(doc.Root))

	_, _, err = execute(t)
	assert.NoError(t, err, "the written sample passes validation")
}

func TestInit_ExplicitPath(t *testing.T) {
	dir := isolate(t)

	_, _, err := execute(t, "init", "boards/nucleo.json")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "boards", "nucleo.json"))
	require.NoError(t, err)
	assert.Equal(t, hwconfig.Sample(), data)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.json", "{}")

	_, _, err := execute(t, "init")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyExists), "got %v", err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Suggestion, "--force")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data), "existing file is untouched")
}

func TestInit_Force(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.json", "{}")

	_, _, err := execute(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, hwconfig.Sample(), data)
}

func TestInit_WriteSettings(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, "init", "boards/f4.json", "--write-settings")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created "+filepath.Join("boards", "mcucheck.yaml"))

	data, err := os.ReadFile(filepath.Join(dir, "boards", "mcucheck.yaml"))
	require.NoError(t, err)

	var got config.Settings
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, config.Settings{File: "f4.json", Output: "json", Report: "text"}, got)
	assert.NotContains(t, string(data), "debug")
}
