// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"grimm.is/quizdeck/internal/validation"
)

// ComposerModel is the overlay form that assembles a ready-to-paste
// POST /quiz request. Pure display: it never performs the request.
type ComposerModel struct {
	Active bool
	Form   *huh.Form

	// Bound through pointers so form writes survive model copies.
	email   *string
	secret  *string
	quizURL *string
}

// ComposedRequest is emitted when the form completes.
type ComposedRequest struct {
	Curl string
}

// Validator registry
var Validators = map[string]func(string) error{
	"required": func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("this field is required")
		}
		return nil
	},
	"url": validation.ValidateURL,
}

func NewComposer() ComposerModel {
	return ComposerModel{}
}

// Open resets the fields and builds a fresh form.
func (m *ComposerModel) Open() tea.Cmd {
	m.email = new(string)
	m.secret = new(string)
	m.quizURL = new(string)

	m.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student email").
				Description("sent as \"email\"").
				Value(m.email).
				Validate(Validators["required"]),
			huh.NewInput().
				Title("Shared secret").
				Description("sent as \"secret\", must match STUDENT_SECRET").
				EchoMode(huh.EchoModePassword).
				Value(m.secret).
				Validate(Validators["required"]),
			huh.NewInput().
				Title("Quiz URL").
				Description("sent as \"url\"").
				Value(m.quizURL).
				Validate(Validators["url"]),
		),
	).WithTheme(huh.ThemeBase16())

	m.Active = true
	return m.Form.Init()
}

func (m ComposerModel) Update(msg tea.Msg) (ComposerModel, tea.Cmd) {
	if !m.Active || m.Form == nil {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.Active = false
		m.Form = nil
		return m, nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	if m.Form.State == huh.StateCompleted {
		curl := BuildCurl(*m.email, *m.secret, *m.quizURL)
		m.Active = false
		m.Form = nil
		return m, func() tea.Msg {
			return ComposedRequest{Curl: curl}
		}
	}

	return m, cmd
}

func (m ComposerModel) View() string {
	if !m.Active || m.Form == nil {
		return ""
	}
	title := StyleTitle.Render("Compose POST /quiz")
	hint := StyleSubtle.Render("enter to advance, esc to cancel")
	return StyleCard.Render(title + "\n\n" + m.Form.View() + "\n" + hint)
}

// BuildCurl renders the request the api section documents. Values are
// JSON-quoted; the command targets a local dev instance.
func BuildCurl(email, secret, url string) string {
	payload := fmt.Sprintf(`{"email":%q,"secret":%q,"url":%q}`, email, secret, url)
	return "curl -s -X POST http://localhost:8000/quiz \\\n" +
		"  -H 'Content-Type: application/json' \\\n" +
		"  -d '" + payload + "'"
}
