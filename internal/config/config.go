// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config loads the quizdeck HCL configuration.
package config

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"grimm.is/quizdeck/internal/errors"
	"grimm.is/quizdeck/internal/install"
	"grimm.is/quizdeck/internal/logging"
	"grimm.is/quizdeck/internal/validation"
)

// Config is the full quizdeck configuration. All blocks are optional;
// missing blocks fall back to DefaultConfig values.
type Config struct {
	UI  *UIConfig  `hcl:"ui,block"`
	SSH *SSHConfig `hcl:"ssh,block"`
	Log *LogConfig `hcl:"log,block"`
}

// UIConfig controls the local viewer.
type UIConfig struct {
	Theme string `hcl:"theme,optional"` // dark | light
}

// SSHConfig controls the read-only handbook server.
type SSHConfig struct {
	Enabled bool   `hcl:"enabled,optional"`
	Listen  string `hcl:"listen,optional"`
	HostKey string `hcl:"host_key,optional"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `hcl:"level,optional"` // debug | info | warn | error
	JSON  bool   `hcl:"json,optional"`
	File  string `hcl:"file,optional"` // empty = stderr
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		UI:  &UIConfig{Theme: "dark"},
		SSH: &SSHConfig{Enabled: false, Listen: ":2222", HostKey: install.DefaultHostKeyPath()},
		Log: &LogConfig{Level: "info"},
	}
}

// Load reads path, decodes it, applies env overrides, and validates.
// An empty path means the standard location; a missing file is not an
// error, so a bare `quizdeck` invocation works on a fresh machine.
func Load(path string) (*Config, error) {
	if path == "" {
		path = install.DefaultConfigPath()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logging.Debug("no config file, using defaults", "path", path)
	case err != nil:
		return nil, errors.Wrap(err, errors.KindInternal, "failed to read config file")
	default:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
		logging.Info("loaded configuration", "path", path)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode parses data twice: hclwrite to surface syntax diagnostics the
// way the editor tooling would see them, hclsimple to fill the struct.
func decode(filename string, data []byte, cfg *Config) error {
	_, diags := hclwrite.ParseConfig(data, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return errors.Errorf(errors.KindValidation, "failed to parse HCL: %s", diags.Error())
	}

	if err := hclsimple.Decode(filename, data, evalContext(), cfg); err != nil {
		return errors.Wrap(err, errors.KindValidation, "failed to decode config")
	}

	// Blocks or attributes the file omitted stay at their defaults.
	def := DefaultConfig()
	if cfg.UI == nil {
		cfg.UI = def.UI
	}
	if cfg.SSH == nil {
		cfg.SSH = def.SSH
	}
	if cfg.Log == nil {
		cfg.Log = def.Log
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = def.UI.Theme
	}
	if cfg.SSH.Listen == "" && !cfg.SSH.Enabled {
		cfg.SSH.Listen = def.SSH.Listen
	}
	if cfg.SSH.HostKey == "" && !cfg.SSH.Enabled {
		cfg.SSH.HostKey = def.SSH.HostKey
	}
	return nil
}

// evalContext exposes the variables config files may interpolate.
// Currently just `home`, so host_key paths can live under "${home}".
func evalContext() *hcl.EvalContext {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home": cty.StringVal(home),
		},
	}
}

// applyEnv layers QUIZDECK_* overrides on top of the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("QUIZDECK_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("QUIZDECK_SSH_LISTEN"); v != "" {
		cfg.SSH.Listen = v
	}
	if v := os.Getenv("QUIZDECK_SSH_HOSTKEY"); v != "" {
		cfg.SSH.HostKey = v
	}
	if v := os.Getenv("QUIZDECK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate rejects values the rest of the program would choke on.
func (c *Config) Validate() error {
	if err := validation.ValidateTheme(c.UI.Theme); err != nil {
		return errors.Attr(err, "field", "ui.theme")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Attr(err, "field", "log.level")
	}

	if c.SSH.Enabled {
		if err := validation.ValidateListenAddr(c.SSH.Listen); err != nil {
			return errors.Attr(err, "field", "ssh.listen")
		}
		if c.SSH.HostKey == "" {
			return errors.Attr(
				errors.New(errors.KindValidation, "ssh enabled without a host key path"),
				"field", "ssh.host_key")
		}
	}
	return nil
}
