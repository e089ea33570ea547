// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"grimm.is/quizdeck/internal/errors"
	"grimm.is/quizdeck/internal/handbook"
)

// runExport writes sections as plain text for grep, diff, or pasting
// into a ticket. No markdown rendering; the source is readable as-is.
func runExport(w io.Writer, content *handbook.Content, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	sectionID := fs.String("section", "", "export a single section by id")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, errors.KindValidation, "bad export flags")
	}

	ids := handbook.Sections()
	if *sectionID != "" {
		id := handbook.SectionID(*sectionID)
		if !handbook.KnownSection(id) {
			return errors.Errorf(errors.KindValidation, "unknown section %q", *sectionID)
		}
		ids = []handbook.SectionID{id}
	}

	for i, id := range ids {
		sc, ok := content.Section(id)
		if !ok {
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeSection(w, sc, content)
	}
	return nil
}

func writeSection(w io.Writer, sc handbook.SectionContent, content *handbook.Content) {
	title := fmt.Sprintf("%s [%s]", sc.Title, sc.ID)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)
	fmt.Fprint(w, sc.Body)

	switch sc.ID {
	case handbook.SectionStructure:
		fmt.Fprintln(w)
		for _, r := range handbook.RenderTree(content.Tree, 0) {
			fmt.Fprintln(w, handbook.FormatRow(r))
		}
	case handbook.SectionSetup:
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Environment:")
		for _, v := range content.Env {
			fmt.Fprintf(w, "  %s (%s): %s\n", v.Name, v.Required, v.Purpose)
		}
	case handbook.SectionAPI:
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Routes:")
		for _, r := range content.Routes {
			fmt.Fprintf(w, "  %-6s %-8s %-20s %s\n", r.Method, r.Path, r.Codes, r.Purpose)
		}
	}
}
