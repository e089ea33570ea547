// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package ssh

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"grimm.is/quizdeck/internal/config"
	"grimm.is/quizdeck/internal/errors"
	"grimm.is/quizdeck/internal/handbook"
	"grimm.is/quizdeck/internal/logging"
)

func TestNewServerRequiresEnabledConfig(t *testing.T) {
	content, err := handbook.LoadContent()
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewServer(&config.Config{}, content)
	assert.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))

	_, err = NewServer(&config.Config{SSH: &config.SSHConfig{Enabled: false}}, content)
	assert.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestNewServerBuildsFromConfig(t *testing.T) {
	content, err := handbook.LoadContent()
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{SSH: &config.SSHConfig{
		Enabled: true,
		Listen:  "127.0.0.1:0",
		HostKey: filepath.Join(t.TempDir(), "quizdeck_host_key"),
	}}

	s, err := NewServer(cfg, content)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	assert.Equal(t, "127.0.0.1:0", s.Addr())
	active, total := s.Stats()
	assert.Zero(t, active)
	assert.Zero(t, total)
}

func TestAdapterRoutesToLogging(t *testing.T) {
	var buf bytes.Buffer
	old := logging.Default()
	logging.SetDefault(logging.New(logging.Config{Output: &buf, Level: logging.LevelDebug}))
	defer logging.SetDefault(old)

	newAdapter().Printf("client connected from %s", "203.0.113.9")

	assert.Contains(t, buf.String(), "[ssh] client connected from 203.0.113.9")
}
