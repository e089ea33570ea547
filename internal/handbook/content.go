// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package handbook

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"grimm.is/quizdeck/internal/errors"
)

//go:embed handbook.yaml
var bundleYAML []byte

// SectionContent is the display payload of one handbook section.
type SectionContent struct {
	ID    SectionID `yaml:"id"`
	Title string    `yaml:"title"`
	Body  string    `yaml:"body"`
}

// EnvVar documents one environment variable of the solver service.
// Shown as a reference table inside the setup section.
type EnvVar struct {
	Name     string `yaml:"name"`
	Required string `yaml:"required"`
	Purpose  string `yaml:"purpose"`
}

// Route is one line of the solver's HTTP contract. Shown as a table
// inside the api section.
type Route struct {
	Method  string `yaml:"method"`
	Path    string `yaml:"path"`
	Codes   string `yaml:"codes"`
	Purpose string `yaml:"purpose"`
}

// Content is everything the viewer displays, fixed at build time:
// section bodies plus the tree, env, and route reference data.
type Content struct {
	Sections []SectionContent `yaml:"sections"`
	Tree     []TreeNode       `yaml:"tree"`
	Env      []EnvVar         `yaml:"env"`
	Routes   []Route          `yaml:"routes"`
}

// LoadContent parses and validates the embedded bundle. The binary
// refuses to start on a bad bundle, so the running viewer only ever
// sees static data that already passed validation.
func LoadContent() (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(bundleYAML, &c); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to parse handbook bundle")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	if len(c.Sections) != len(sectionOrder) {
		return errors.Errorf(errors.KindValidation,
			"bundle has %d sections, want %d", len(c.Sections), len(sectionOrder))
	}
	for i, id := range sectionOrder {
		sc := c.Sections[i]
		if sc.ID != id {
			return errors.Errorf(errors.KindValidation,
				"bundle section %d is %q, want %q", i, sc.ID, id)
		}
		if sc.Title == "" || strings.TrimSpace(sc.Body) == "" {
			return errors.Errorf(errors.KindValidation,
				"section %q is missing its title or body", id)
		}
	}
	if len(c.Tree) == 0 {
		return errors.New(errors.KindValidation, "bundle has no project tree")
	}
	for _, v := range c.Env {
		if v.Name == "" {
			return errors.New(errors.KindValidation, "env entry with empty name")
		}
	}
	if len(c.Routes) == 0 {
		return errors.New(errors.KindValidation, "bundle has no route table")
	}
	for _, r := range c.Routes {
		if r.Method == "" || r.Path == "" {
			return errors.New(errors.KindValidation, "route entry missing method or path")
		}
	}
	return nil
}

// Section returns the content block for id.
func (c *Content) Section(id SectionID) (SectionContent, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionContent{}, false
}
