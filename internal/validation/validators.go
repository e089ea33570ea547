// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package validation holds the input checks shared by the config layer
// and the request composer.
package validation

import (
	"net"
	"net/url"
	"strings"

	"grimm.is/quizdeck/internal/errors"
)

// Themes the styles package knows how to draw.
var knownThemes = []string{"dark", "light"}

// ValidateTheme rejects theme names the viewer cannot render.
func ValidateTheme(name string) error {
	for _, t := range knownThemes {
		if name == t {
			return nil
		}
	}
	return errors.Errorf(errors.KindValidation, "unknown theme %q (want %s)",
		name, strings.Join(knownThemes, " or "))
}

// ValidateListenAddr checks a host:port listen address. The host part
// may be empty (listen on all interfaces); the port may not.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return errors.New(errors.KindValidation, "listen address cannot be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.Wrapf(err, errors.KindValidation, "invalid listen address %q", addr)
	}
	if port == "" {
		return errors.Errorf(errors.KindValidation, "listen address %q has no port", addr)
	}
	return nil
}

// ValidateURL accepts absolute http(s) URLs with a host. Quiz pages
// always arrive as full links, so anything else is a typo.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New(errors.KindValidation, "url cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, errors.KindValidation, "invalid url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf(errors.KindValidation, "url must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New(errors.KindValidation, "url has no host")
	}
	return nil
}
