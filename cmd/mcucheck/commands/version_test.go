package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcucheck/cmd"
)

func TestVersionCommand(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "mcucheck version "+cmd.Version, lines[0])
	assert.Equal(t, "  commit:    "+cmd.Commit, lines[1])
	assert.Equal(t, "  built:     "+cmd.Date, lines[2])
	assert.Equal(t, "  go:        "+runtime.Version(), lines[3])
}

func TestVersionCommand_IgnoresBadSettings(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "mcucheck.yaml", "output: xml\n")

	_, _, err := execute(t, "version")
	assert.NoError(t, err)
}

func TestVersionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
}

func TestVersionFlag(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "mcucheck version "+cmd.ShortVersion()+"\n", stdout)
}
