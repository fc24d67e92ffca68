// Package xdg provides helpers to resolve XDG Base Directory paths for brickctl.
// It determines where configuration files live on Unix-like systems, falling
// back to the traditional ~/.config location when the XDG environment
// variables are not set.
//
// Directories are created with private permissions because the configuration
// identifies the workspace the user talks to.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for brickctl.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/brickctl when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "brickctl")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
