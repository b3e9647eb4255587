package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// GateState is the access gate's state machine.
type GateState int

const (
	GateVerifying GateState = iota
	GateGranted
	GateDenied
)

// GateModel re-validates student access on every entry into the student
// area, independent of the synchronous session check. It renders a
// "verifying access" placeholder until the probe settles. Denied is
// terminal: the app routes back to login and discards the model.
type GateModel struct {
	session *auth.Session

	state   GateState
	spinner spinner.Model
	width   int
	height  int
}

// NewGateModel creates a GateModel in the Verifying state.
func NewGateModel(session *auth.Session, width, height int) GateModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return GateModel{
		session: session,
		spinner: sp,
		width:   width,
		height:  height,
	}
}

// State returns the gate's current state.
func (m GateModel) State() GateState {
	return m.state
}

// Init starts the spinner and issues the probe.
func (m GateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, commands.VerifyStudentCmd(m.session))
}

// Update handles messages for the gate view.
func (m GateModel) Update(msg tea.Msg) (GateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.StudentGateMsg:
		if msg.Err != nil {
			m.state = GateDenied
		} else {
			m.state = GateGranted
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// View renders the verifying placeholder. Granted and Denied are not
// rendered; the app transitions away before the next frame.
func (m GateModel) View() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" Verifying access...")
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Ctrl+C: Exit"))
	return tui.BoxStyle.Render(b.String())
}
