package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user settings directory.
const AppName = "mcucheck"

// SettingsName is the settings file base name, without extension.
const SettingsName = "mcucheck"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/mcucheck.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// SettingsSearchPath lists the directories searched for the settings
// file, most specific first.
func SettingsSearchPath() []string {
	return []string{".", ConfigDir()}
}
