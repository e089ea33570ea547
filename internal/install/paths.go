// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package install resolves where quizdeck keeps its files on this
// machine. Quizdeck is a user tool, not a daemon, so everything lives
// under the XDG user directories unless the environment says otherwise.
package install

import (
	"os"
	"path/filepath"

	"grimm.is/quizdeck/internal/brand"
)

// ConfigDir returns the directory the config file is looked up in.
// Priority: QUIZDECK_CONFIG_DIR > XDG_CONFIG_HOME/quizdeck > ~/.config/quizdeck
func ConfigDir() string {
	if dir := os.Getenv(brand.ConfigEnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, brand.LowerName)
	}
	return filepath.Join(homeDir(), ".config", brand.LowerName)
}

// StateDir returns the directory for generated files such as the SSH
// host key. Priority: QUIZDECK_STATE_DIR > XDG_STATE_HOME/quizdeck >
// ~/.local/state/quizdeck
func StateDir() string {
	if dir := os.Getenv(brand.ConfigEnvPrefix + "_STATE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, brand.LowerName)
	}
	return filepath.Join(homeDir(), ".local", "state", brand.LowerName)
}

// DefaultConfigPath is where Load looks when no -config flag is given.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), brand.ConfigFileName)
}

// DefaultHostKeyPath is where the serve command generates its host key.
func DefaultHostKeyPath() string {
	return filepath.Join(StateDir(), "ssh_host_ed25519")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Relative fallback keeps the tool usable in stripped-down
		// containers with no home at all.
		return "."
	}
	return home
}
