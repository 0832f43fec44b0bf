package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcucheck/internal/config"
	"github.com/thoreinstein/mcucheck/internal/errors"
)

func TestSettings_Defaults(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "settings")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# source: defaults\n"), "got:\n%s", stdout)

	var got config.Settings
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, *config.Default(), got)
}

func TestSettings_FromFileAndEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "mcucheck.yaml", "output: yaml\n")
	t.Setenv("MCUCHECK_REPORT", "json")

	stdout, _, err := execute(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mcucheck.yaml")

	var got config.Settings
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "yaml", got.Output)
	assert.Equal(t, "json", got.Report)
}

func TestSettingsGet(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "mcucheck.yaml", "file: board.json\n")

	tests := []struct {
		key  string
		want string
	}{
		{"file", "board.json"},
		{"output", "json"},
		{"REPORT", "text"},
		{"debug", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			stdout, _, err := execute(t, "settings", "get", tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestSettingsGet_UnknownKey(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "settings", "get", "platform")
	require.Error(t, err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Suggestion, "output")
}

func TestSettings_InvalidFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "mcucheck.yaml", "output: xml\n")

	_, _, err := execute(t, "settings")
	assert.Error(t, err)
}
