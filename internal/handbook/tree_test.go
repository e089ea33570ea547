// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package handbook

import (
	"reflect"
	"strings"
	"testing"
)

func TestRenderTreeEmpty(t *testing.T) {
	if rows := RenderTree(nil, 0); len(rows) != 0 {
		t.Errorf("nil forest should render nothing, got %d rows", len(rows))
	}
	if rows := RenderTree([]TreeNode{}, 0); len(rows) != 0 {
		t.Errorf("empty forest should render nothing, got %d rows", len(rows))
	}
}

func TestRenderTreeFolderWithTwoLeaves(t *testing.T) {
	nodes := []TreeNode{
		{
			Label: "tests",
			Desc:  "unit suite",
			Children: []TreeNode{
				{Label: "test_api.py"},
				{Label: "test_solver.py", Desc: "timing logic"},
			},
		},
	}

	rows := RenderTree(nodes, 0)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	folder := rows[0]
	if folder.Depth != 0 || !folder.Dir || folder.Label != "tests" {
		t.Errorf("unexpected folder row: %+v", folder)
	}
	if folder.Desc != "unit suite" {
		t.Errorf("description lost on folder row: %+v", folder)
	}
	for i, leaf := range rows[1:] {
		if leaf.Depth != folder.Depth+1 {
			t.Errorf("leaf %d depth = %d, want %d", i, leaf.Depth, folder.Depth+1)
		}
		if leaf.Dir {
			t.Errorf("leaf %d flagged as folder: %+v", i, leaf)
		}
	}
	if rows[2].Desc != "timing logic" {
		t.Errorf("description lost on leaf row: %+v", rows[2])
	}
}

func TestRenderTreeDepthOffset(t *testing.T) {
	nodes := []TreeNode{{Label: "docs", Children: []TreeNode{{Label: "prompts.md"}}}}

	rows := RenderTree(nodes, 2)
	if rows[0].Depth != 2 || rows[1].Depth != 3 {
		t.Errorf("depth offset not honored: %+v", rows)
	}
}

func TestRenderTreeRestartable(t *testing.T) {
	nodes := []TreeNode{
		{Label: "docs", Children: []TreeNode{{Label: "a.md"}, {Label: "b.md"}}},
		{Label: "README.md"},
	}

	first := RenderTree(nodes, 0)
	second := RenderTree(nodes, 0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two renders of the same forest differ:\n%v\n%v", first, second)
	}
}

func TestRenderTreeDoesNotMutateInput(t *testing.T) {
	nodes := []TreeNode{
		{Label: "docs", Desc: "notes", Children: []TreeNode{{Label: "a.md"}}},
	}
	want := []TreeNode{
		{Label: "docs", Desc: "notes", Children: []TreeNode{{Label: "a.md"}}},
	}

	_ = RenderTree(nodes, 0)

	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("input forest mutated: %+v", nodes)
	}
}

func TestFormatRow(t *testing.T) {
	cases := []struct {
		row  Row
		want string
	}{
		{Row{Depth: 0, Label: "app.py"}, "- app.py"},
		{Row{Depth: 0, Label: "docs", Dir: true}, "+ docs"},
		{Row{Depth: 2, Label: "deep.md"}, "    - deep.md"},
		{Row{Depth: 1, Label: "a.md", Desc: "design notes"}, "  - a.md  # design notes"},
	}
	for _, c := range cases {
		if got := FormatRow(c.row); got != c.want {
			t.Errorf("FormatRow(%+v) = %q, want %q", c.row, got, c.want)
		}
	}
}

func TestIsDir(t *testing.T) {
	if (TreeNode{Label: "f"}).IsDir() {
		t.Error("leaf without children must not be a folder")
	}
	if !(TreeNode{Label: "d", Children: []TreeNode{{Label: "x"}}}).IsDir() {
		t.Error("node with children must be a folder")
	}
}

func TestFormatRowsAlignWithDepth(t *testing.T) {
	nodes := []TreeNode{{Label: "docs", Children: []TreeNode{{Label: "a.md"}}}}
	rows := RenderTree(nodes, 0)

	parent := FormatRow(rows[0])
	child := FormatRow(rows[1])
	if strings.Index(child, "-") <= strings.Index(parent, "+") {
		t.Errorf("child row should be indented past its parent:\n%s\n%s", parent, child)
	}
}
