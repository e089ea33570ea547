// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/quizdeck/internal/brand"
	"grimm.is/quizdeck/internal/handbook"
)

// Model is the handbook viewer: five collapsible sections over a
// scrollable body. All section visibility lives in a handbook.State
// value; every toggle goes through State.Toggle and replaces it.
type Model struct {
	Content *handbook.Content
	State   handbook.State

	// Focus is the section header the cursor sits on (index into
	// handbook.Sections()).
	Focus  int
	Width  int
	Height int
	Ready  bool

	Body     viewport.Model
	Composer ComposerModel

	// CurlCommand is the last composed request, shown in the api
	// section until replaced.
	CurlCommand string

	md          *glamour.TermRenderer
	rendered    map[handbook.SectionID]string
	envTable    table.Model
	routesTable table.Model
}

// NewModel creates the initial viewer state.
func NewModel(content *handbook.Content) Model {
	return Model{
		Content:     content,
		State:       handbook.NewState(),
		Composer:    NewComposer(),
		envTable:    newEnvTable(content.Env),
		routesTable: newRoutesTable(content.Routes),
	}
}

// Init implements tea.Model. The content is already loaded and static,
// so there is nothing to fetch.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.refreshRenderer()
		if !m.Ready {
			m.Body = viewport.New(m.contentWidth(), m.bodyHeight())
			m.Ready = true
		} else {
			m.Body.Width = m.contentWidth()
			m.Body.Height = m.bodyHeight()
		}
		m.refreshBody()
		return m, nil

	case ComposedRequest:
		m.CurlCommand = msg.Curl
		if !m.State.Expanded(handbook.SectionAPI) {
			m.State = m.State.Toggle(handbook.SectionAPI)
		}
		m.refreshBody()
		return m, nil

	case tea.KeyMsg:
		if m.Composer.Active {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.Composer, cmd = m.Composer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "2", "3", "4", "5":
			ids := handbook.Sections()
			idx := int(msg.String()[0] - '1')
			m.State = m.State.Toggle(ids[idx])
			DebugLog("toggle %s -> %v", ids[idx], m.State.Expanded(ids[idx]))
			m.refreshBody()
			return m, nil

		case "j", "tab":
			m.Focus = (m.Focus + 1) % len(handbook.Sections())
			m.refreshBody()
			return m, nil

		case "k", "shift+tab":
			n := len(handbook.Sections())
			m.Focus = (m.Focus + n - 1) % n
			m.refreshBody()
			return m, nil

		case "enter", " ", "space":
			ids := handbook.Sections()
			m.State = m.State.Toggle(ids[m.Focus])
			m.refreshBody()
			return m, nil

		case "c":
			return m, m.Composer.Open()

		case "g":
			m.Body.GotoTop()
			return m, nil

		case "G":
			m.Body.GotoBottom()
			return m, nil
		}
	}

	// Everything else (arrow keys, page keys, mouse) scrolls the body.
	var cmd tea.Cmd
	m.Body, cmd = m.Body.Update(msg)
	return m, cmd
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "\n  Initializing..."
	}

	if m.Width < 48 || m.Height < 12 {
		notice := StyleWarn.Render("Terminal too small") + "\n\n" +
			StyleSubtle.Render("Need at least 48x12 to draw the handbook.")
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			StyleCard.Render(notice),
		)
	}

	top := m.ViewTopBar()

	if m.Composer.Active {
		overlay := lipgloss.Place(m.contentWidth(), m.bodyHeight(),
			lipgloss.Center, lipgloss.Center,
			m.Composer.View(),
		)
		return StyleApp.Render(top + "\n" + overlay)
	}

	return StyleApp.Render(top + "\n" + m.Body.View() + "\n" + m.viewFooter())
}

// ViewTopBar renders the brand plus one menu entry per section, with
// expanded sections highlighted.
func (m Model) ViewTopBar() string {
	var items []string

	menus := []struct {
		ID    handbook.SectionID
		Label string
		Key   string
	}{
		{handbook.SectionStructure, "Structure", "1"},
		{handbook.SectionSetup, "Setup", "2"},
		{handbook.SectionPrompts, "Prompts", "3"},
		{handbook.SectionAPI, "API", "4"},
		{handbook.SectionTesting, "Testing", "5"},
	}

	for _, menu := range menus {
		key := StyleMenuKey.Render("[" + menu.Key + "]")
		if m.State.Expanded(menu.ID) {
			items = append(items, StyleMenuItemActive.Render(key+" "+menu.Label))
		} else {
			items = append(items, StyleMenuItem.Render(key+" "+menu.Label))
		}
	}

	brandLabel := StyleTitle.Render(strings.ToUpper(brand.Name) + "  ")
	bar := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{brandLabel}, items...)...)
	return StyleTopBar.Render(bar)
}

func (m Model) viewFooter() string {
	return StyleSubtle.Render("1-5/enter toggle · j/k focus · arrows scroll · c compose · q quit")
}

func (m Model) contentWidth() int {
	w := m.Width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) bodyHeight() int {
	h := m.Height - lipgloss.Height(m.ViewTopBar()) - 4
	if h < 3 {
		h = 3
	}
	return h
}

// refreshRenderer rebuilds the markdown renderer for the current width
// and re-renders every section body. Bodies are static, so this only
// happens on resize (and theme change at startup).
func (m *Model) refreshRenderer() {
	w := m.Width - 8
	if w < 20 {
		w = 20
	}
	if w > 100 {
		w = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		DebugLog("glamour init failed: %v", err)
		m.md = nil
	} else {
		m.md = r
	}

	m.rendered = make(map[handbook.SectionID]string, len(m.Content.Sections))
	for _, sc := range m.Content.Sections {
		m.rendered[sc.ID] = m.renderMarkdown(sc.Body)
	}
}

// renderMarkdown falls back to the raw source if the renderer is
// unavailable or chokes on the input.
func (m *Model) renderMarkdown(src string) (out string) {
	if m.md == nil {
		return src
	}
	defer func() {
		if r := recover(); r != nil {
			DebugLog("markdown render panic: %v", r)
			out = src
		}
	}()

	s, err := m.md.Render(src)
	if err != nil {
		return src
	}
	return s
}

// refreshBody pushes the current projection into the viewport.
func (m *Model) refreshBody() {
	if !m.Ready {
		return
	}
	m.Body.SetContent(m.renderDocument())
}

// renderDocument is the render(state, content) projection: it reads
// the visibility map and the static content, nothing else.
func (m Model) renderDocument() string {
	var b strings.Builder
	for i, id := range handbook.Sections() {
		sc, ok := m.Content.Section(id)
		if !ok {
			continue
		}
		b.WriteString(m.renderSectionHeader(i, id, sc.Title))
		b.WriteString("\n")
		if m.State.Expanded(id) {
			b.WriteString(m.renderSectionBody(id))
			b.WriteString("\n")
		}
	}
	return b.String()
}
