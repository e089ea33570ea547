// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package install

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDirPrecedence(t *testing.T) {
	t.Setenv("QUIZDECK_CONFIG_DIR", "/opt/docs")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/opt/docs", ConfigDir())

	t.Setenv("QUIZDECK_CONFIG_DIR", "")
	assert.Equal(t, filepath.Join("/xdg", "quizdeck"), ConfigDir())
}

func TestStateDirPrecedence(t *testing.T) {
	t.Setenv("QUIZDECK_STATE_DIR", "")
	t.Setenv("XDG_STATE_HOME", "/xdg-state")
	assert.Equal(t, filepath.Join("/xdg-state", "quizdeck"), StateDir())

	t.Setenv("QUIZDECK_STATE_DIR", "/var/lib/quizdeck")
	assert.Equal(t, "/var/lib/quizdeck", StateDir())
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("QUIZDECK_CONFIG_DIR", "/opt/docs")
	t.Setenv("QUIZDECK_STATE_DIR", "/opt/state")

	assert.Equal(t, filepath.Join("/opt/docs", "quizdeck.hcl"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/opt/state", "ssh_host_ed25519"), DefaultHostKeyPath())
}
