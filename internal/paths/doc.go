// Package paths resolves where mcucheck looks for its own settings.
//
// It wraps github.com/adrg/xdg so the per-user directory follows the XDG
// Base Directory conventions on every platform.
package paths
