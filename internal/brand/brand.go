// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package brand provides centralized branding constants for quizdeck.
// Identity is loaded from brand.json at compile time via go:embed, so
// scripts and docs generators can read the same file.
package brand

import (
	_ "embed"
	"encoding/json"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all branding information
type Brand struct {
	Name            string `json:"name"`
	LowerName       string `json:"lowerName"`
	Website         string `json:"website"`
	Repository      string `json:"repository"`
	Description     string `json:"description"`
	Tagline         string `json:"tagline"`
	ConfigEnvPrefix string `json:"configEnvPrefix"`
	ConfigFileName  string `json:"configFileName"`
	BinaryName      string `json:"binaryName"`
	Copyright       string `json:"copyright"`
	License         string `json:"license"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	LowerName = b.LowerName
	Website = b.Website
	Repository = b.Repository
	Description = b.Description
	Tagline = b.Tagline
	ConfigEnvPrefix = b.ConfigEnvPrefix
	ConfigFileName = b.ConfigFileName
	BinaryName = b.BinaryName
	Copyright = b.Copyright
	License = b.License
}

// Exported variables for convenience
var (
	Name            string
	LowerName       string
	Website         string
	Repository      string
	Description     string
	Tagline         string
	ConfigEnvPrefix string
	ConfigFileName  string
	BinaryName      string
	Copyright       string
	License         string

	// Version is set at build time via -ldflags
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Get returns the full Brand struct
func Get() Brand {
	return b
}

// UserAgent returns a User-Agent string for HTTP requests
func UserAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return LowerName + "/" + version
}

// Line returns the one-line identity used by the top bar and `version`.
func Line() string {
	return Name + " " + Version + " · " + Tagline
}
