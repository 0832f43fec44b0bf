package paths

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	// Registered first so it runs after the environment is restored.
	t.Cleanup(xdg.Reload)

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()

	assert.Equal(t, dir, ConfigHome())
	assert.Equal(t, filepath.Join(dir, "mcucheck"), ConfigDir())
}

func TestSettingsSearchPath(t *testing.T) {
	got := SettingsSearchPath()

	assert.Len(t, got, 2)
	assert.Equal(t, ".", got[0], "working directory is searched first")
	assert.Equal(t, ConfigDir(), got[1])
}
