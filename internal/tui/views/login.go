// Package views provides TUI view components for the aula application.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// GoToSignupMsg is sent when the user switches to the signup form.
type GoToSignupMsg struct{}

// LoginModel is the view model for the login screen.
type LoginModel struct {
	session *auth.Session

	email    textinput.Model
	password textinput.Model
	focus    int // 0=email, 1=password
	busy     bool
	errLine  string
	width    int
	height   int
}

// NewLoginModel creates a new LoginModel.
func NewLoginModel(session *auth.Session, width, height int) LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	return LoginModel{
		session:  session,
		email:    email,
		password: password,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the login view.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login view.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyTab, tui.KeyDown, tui.KeyUp:
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, nil

		case tui.KeyEnter:
			form := auth.LoginForm{
				Email:    strings.TrimSpace(m.email.Value()),
				Password: m.password.Value(),
			}
			m.busy = true
			m.errLine = ""
			return m, commands.LoginCmd(m.session, form)

		case "ctrl+s":
			return m, func() tea.Msg { return GoToSignupMsg{} }
		}

	case tui.LoginResultMsg:
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
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// View renders the login view.
func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Aula - Sign in"))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(tui.DimStyle.Render("Signing in..."))
		b.WriteString("\n")
	}
	if m.errLine != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter: Sign in    Ctrl+S: Create student account    Ctrl+C: Exit"))

	return tui.BoxStyle.Render(b.String())
}
