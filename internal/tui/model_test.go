// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"grimm.is/quizdeck/internal/handbook"
)

func loadContent(t *testing.T) *handbook.Content {
	t.Helper()
	c, err := handbook.LoadContent()
	if err != nil {
		t.Fatalf("embedded bundle failed to load: %v", err)
	}
	return c
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(loadContent(t))
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return newModel.(Model)
}

func TestModel_InitialState(t *testing.T) {
	m := NewModel(loadContent(t))

	assert.True(t, m.State.Expanded(handbook.SectionStructure))
	for _, id := range []handbook.SectionID{
		handbook.SectionSetup, handbook.SectionPrompts,
		handbook.SectionAPI, handbook.SectionTesting,
	} {
		assert.False(t, m.State.Expanded(id), "section %s should start collapsed", id)
	}
	assert.Equal(t, 0, m.Focus)
	assert.Contains(t, m.View(), "Initializing")
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(loadContent(t))

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m = newModel.(Model)

	assert.Equal(t, 100, m.Width)
	assert.Equal(t, 50, m.Height)
	assert.True(t, m.Ready)
}

func TestModel_NumberKeysToggle(t *testing.T) {
	m := sizedModel(t)

	newModel, _ := m.Update(key("2"))
	m = newModel.(Model)
	assert.True(t, m.State.Expanded(handbook.SectionSetup))
	assert.True(t, m.State.Expanded(handbook.SectionStructure), "other sections must be untouched")
	assert.False(t, m.State.Expanded(handbook.SectionAPI))

	newModel, _ = m.Update(key("2"))
	m = newModel.(Model)
	assert.False(t, m.State.Expanded(handbook.SectionSetup))
}

func TestModel_FocusAndEnter(t *testing.T) {
	m := sizedModel(t)

	newModel, _ := m.Update(key("j"))
	m = newModel.(Model)
	assert.Equal(t, 1, m.Focus)

	newModel, _ = m.Update(key("enter"))
	m = newModel.(Model)
	assert.True(t, m.State.Expanded(handbook.SectionSetup))

	// wrap backwards: 1 -> 0 -> 4
	newModel, _ = m.Update(key("k"))
	m = newModel.(Model)
	newModel, _ = m.Update(key("k"))
	m = newModel.(Model)
	assert.Equal(t, 4, m.Focus)
}

func TestModel_UnknownKeyLeavesStateAlone(t *testing.T) {
	m := sizedModel(t)
	before := m.State

	newModel, _ := m.Update(key("x"))
	m = newModel.(Model)

	for _, id := range handbook.Sections() {
		assert.Equal(t, before.Expanded(id), m.State.Expanded(id))
	}
}

func TestModel_View_TopBarAndHeaders(t *testing.T) {
	m := sizedModel(t)
	view := m.View()

	assert.Contains(t, view, "QUIZDECK")
	assert.Contains(t, view, "[1] Project Structure")
	assert.Contains(t, view, "q quit")
}

func TestModel_View_TreeFollowsStructureToggle(t *testing.T) {
	m := sizedModel(t)

	assert.Contains(t, m.View(), "app.py", "structure starts expanded")

	newModel, _ := m.Update(key("1"))
	m = newModel.(Model)
	view := m.View()
	assert.NotContains(t, view, "app.py")
	assert.Contains(t, view, "[1] Project Structure", "header stays when collapsed")
}

func TestModel_ComposerOpenAndCancel(t *testing.T) {
	m := sizedModel(t)

	newModel, _ := m.Update(key("c"))
	m = newModel.(Model)
	assert.True(t, m.Composer.Active)
	assert.Contains(t, m.View(), "Compose POST /quiz")

	newModel, _ = m.Update(key("esc"))
	m = newModel.(Model)
	assert.False(t, m.Composer.Active)
}

func TestModel_ComposedRequest(t *testing.T) {
	m := sizedModel(t)
	assert.False(t, m.State.Expanded(handbook.SectionAPI))

	newModel, _ := m.Update(ComposedRequest{Curl: "curl -s -X POST http://localhost:8000/quiz"})
	m = newModel.(Model)

	assert.Equal(t, "curl -s -X POST http://localhost:8000/quiz", m.CurlCommand)
	assert.True(t, m.State.Expanded(handbook.SectionAPI), "composing should reveal the api section")
}

func TestModel_SmallTerminal(t *testing.T) {
	m := NewModel(loadContent(t))

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	m = newModel.(Model)

	assert.Contains(t, m.View(), "Terminal too small")
}

func TestModel_QuitKeys(t *testing.T) {
	m := sizedModel(t)

	_, cmd := m.Update(key("q"))
	if assert.NotNil(t, cmd) {
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
