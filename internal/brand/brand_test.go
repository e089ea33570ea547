// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package brand

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	b := Get()
	if b.Name == "" {
		t.Error("Brand name should not be empty")
	}
	// Version is a global variable, not in the struct
	if Version == "" {
		t.Error("Global Version should be initialized (to dev default)")
	}
	if Name == "" {
		t.Error("Global Name should be initialized")
	}
	if ConfigEnvPrefix != "QUIZDECK" {
		t.Errorf("unexpected env prefix: %s", ConfigEnvPrefix)
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent("1.0.0")
	if ua != "quizdeck/1.0.0" {
		t.Errorf("unexpected user agent: %s", ua)
	}

	uaDefault := UserAgent("")
	if uaDefault != "quizdeck/dev" {
		t.Errorf("unexpected default user agent: %s", uaDefault)
	}
}

func TestLine(t *testing.T) {
	if !strings.Contains(Line(), Name) {
		t.Errorf("Line should carry the product name: %s", Line())
	}
}
