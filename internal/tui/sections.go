// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/quizdeck/internal/handbook"
)

// newEnvTable builds the static environment reference shown inside the
// setup section. Not focusable; it is a display table, not a picker.
func newEnvTable(env []handbook.EnvVar) table.Model {
	columns := []table.Column{
		{Title: "Variable", Width: 18},
		{Title: "Required", Width: 10},
		{Title: "Purpose", Width: 44},
	}
	rows := make([]table.Row, len(env))
	for i, v := range env {
		rows[i] = table.Row{v.Name, v.Required, v.Purpose}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPane).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // no cursor on a reference table
	t.SetStyles(s)

	return t
}

// newRoutesTable builds the HTTP contract table shown inside the api
// section.
func newRoutesTable(routes []handbook.Route) table.Model {
	columns := []table.Column{
		{Title: "Method", Width: 7},
		{Title: "Path", Width: 9},
		{Title: "Codes", Width: 20},
		{Title: "Purpose", Width: 30},
	}
	rows := make([]table.Row, len(routes))
	for i, r := range routes {
		rows[i] = table.Row{r.Method, r.Path, r.Codes, r.Purpose}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPane).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// renderSectionHeader draws one accordion header row.
func (m Model) renderSectionHeader(idx int, id handbook.SectionID, title string) string {
	indicator := "▸"
	if m.State.Expanded(id) {
		indicator = "▾"
	}
	line := fmt.Sprintf("%s [%d] %s", indicator, idx+1, title)
	if idx == m.Focus {
		return StyleSectionFocus.Render(line)
	}
	return StyleSectionHeader.Render(line)
}

// renderSectionBody returns the expanded payload for one section.
func (m Model) renderSectionBody(id handbook.SectionID) string {
	body := m.rendered[id]
	switch id {
	case handbook.SectionStructure:
		return body + "\n" + m.renderTreeBlock()
	case handbook.SectionSetup:
		return body + "\n" + StyleCard.Render(m.envTable.View()) + "\n"
	case handbook.SectionAPI:
		out := body + "\n" + StyleCard.Render(m.routesTable.View()) + "\n"
		if m.CurlCommand != "" {
			out += StyleCard.Render(m.CurlCommand) + "\n"
		}
		return out
	default:
		return body
	}
}

// renderTreeBlock styles the flattened project tree. Folders are bold
// with a trailing slash, descriptions sit muted next to the label.
func (m Model) renderTreeBlock() string {
	rows := handbook.RenderTree(m.Content.Tree, 0)

	var b strings.Builder
	for _, r := range rows {
		indent := strings.Repeat("  ", r.Depth)
		var label string
		if r.Dir {
			label = StyleTreeDir.Render(r.Label + "/")
		} else {
			label = StyleTreeFile.Render(r.Label)
		}
		b.WriteString("  " + indent + label)
		if r.Desc != "" {
			b.WriteString(StyleTreeDesc.Render("  " + r.Desc))
		}
		b.WriteString("\n")
	}
	return b.String()
}
