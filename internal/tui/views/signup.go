package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// GoToLoginMsg is sent when the user leaves the signup form.
type GoToLoginMsg struct{}

// SignupModel is the view model for the student signup screen. The
// student role is implicit: there is no role selection here.
type SignupModel struct {
	session *auth.Session

	inputs  []textinput.Model // name, last name, email, password
	focus   int
	busy    bool
	errLine string
	width   int
	height  int
}

// NewSignupModel creates a new SignupModel.
func NewSignupModel(session *auth.Session, width, height int) SignupModel {
	labels := []string{"first name", "last name", "email", "password (min 8 chars)"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[0].Focus()

	return SignupModel{
		session: session,
		inputs:  inputs,
		width:   width,
		height:  height,
	}
}

// Init returns the initial command for the signup view.
func (m SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the signup view.
func (m SignupModel) Update(msg tea.Msg) (SignupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyTab, tui.KeyDown:
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil

		case tui.KeyUp:
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil

		case tui.KeyEnter:
			form := auth.SignupForm{
				Name:     strings.TrimSpace(m.inputs[0].Value()),
				LastName: strings.TrimSpace(m.inputs[1].Value()),
				Email:    strings.TrimSpace(m.inputs[2].Value()),
				Password: m.inputs[3].Value(),
			}
			m.busy = true
			m.errLine = ""
			return m, commands.SignupCmd(m.session, form)

		case tui.KeyEsc:
			return m, func() tea.Msg { return GoToLoginMsg{} }
		}

	case tui.SignupResultMsg:
		m.busy = false
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// View renders the signup view.
func (m SignupModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Aula - Create student account"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.busy {
		b.WriteString(tui.DimStyle.Render("Creating account..."))
		b.WriteString("\n")
	}
	if m.errLine != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter: Create    Esc: Back to sign in    Ctrl+C: Exit"))

	return tui.BoxStyle.Render(b.String())
}
