// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package handbook

import "strings"

// TreeNode is one file-or-folder entry in the static project tree.
// Folders carry children; files never do. The tree is finite and
// acyclic, built once from the embedded bundle and read-only after.
type TreeNode struct {
	Label    string     `yaml:"label"`
	Desc     string     `yaml:"desc,omitempty"`
	Children []TreeNode `yaml:"children,omitempty"`
}

// IsDir reports whether the node is a folder.
func (n TreeNode) IsDir() bool { return len(n.Children) > 0 }

// Row is one visual line of the flattened tree.
type Row struct {
	Depth int
	Label string
	Desc  string
	Dir   bool
}

// RenderTree flattens nodes depth-first into rows, children one level
// deeper than their parent. Pure: the same input yields the same rows
// on every call, nothing is retained between calls, and the input is
// never mutated. An empty or nil forest yields no rows.
func RenderTree(nodes []TreeNode, depth int) []Row {
	var rows []Row
	for _, n := range nodes {
		rows = append(rows, Row{
			Depth: depth,
			Label: n.Label,
			Desc:  n.Desc,
			Dir:   n.IsDir(),
		})
		if len(n.Children) > 0 {
			rows = append(rows, RenderTree(n.Children, depth+1)...)
		}
	}
	return rows
}

// FormatRow renders one row as plain text for the export surface:
// two spaces per depth level, "+" for folders, "-" for files, the
// description as a trailing annotation.
func FormatRow(r Row) string {
	marker := "- "
	if r.Dir {
		marker = "+ "
	}
	line := strings.Repeat("  ", r.Depth) + marker + r.Label
	if r.Desc != "" {
		line += "  # " + r.Desc
	}
	return line
}
