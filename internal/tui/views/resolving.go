package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// ResolvingModel is shown while the role probes are in flight after a
// login or a rehydrated session. The app transitions on RoleResolvedMsg.
type ResolvingModel struct {
	session *auth.Session
	spinner spinner.Model
}

// NewResolvingModel creates a ResolvingModel.
func NewResolvingModel(session *auth.Session) ResolvingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return ResolvingModel{session: session, spinner: sp}
}

// Init starts the spinner and kicks off role resolution.
func (m ResolvingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, commands.ResolveRoleCmd(m.session))
}

// Update handles messages for the resolving view.
func (m ResolvingModel) Update(msg tea.Msg) (ResolvingModel, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

// View renders the resolving placeholder.
func (m ResolvingModel) View() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" Signing you in...")
	return tui.BoxStyle.Render(b.String())
}
