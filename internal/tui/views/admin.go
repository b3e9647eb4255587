package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aula-dev/aula/internal/admin"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

type adminSection int

const (
	sectionStudents adminSection = iota
	sectionTeachers
)

var adminSections = []string{"Students", "Teachers"}

// AdminModel is the super-user dashboard: platform-wide student and
// teacher listings with active/inactive toggles. An unauthorized listing
// routes back to login; the app watches AccountsMsg for that.
type AdminModel struct {
	svc *admin.Service

	section adminSection
	loading bool
	errLine string
	notice  string

	listing *admin.Listing

	confirmToggle bool

	studentsTable table.Model
	teachersTable table.Model

	width  int
	height int
}

// NewAdminModel creates the admin dashboard and starts loading.
func NewAdminModel(svc *admin.Service, width, height int) AdminModel {
	cols := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 28},
		{Title: "Email", Width: 32},
		{Title: "Status", Width: 10},
	}

	st := table.New(table.WithColumns(cols), table.WithHeight(14))
	st.Focus()

	return AdminModel{
		svc:           svc,
		loading:       true,
		studentsTable: st,
		teachersTable: table.New(table.WithColumns(cols), table.WithHeight(14)),
		width:         width,
		height:        height,
	}
}

// Init issues the initial load.
func (m AdminModel) Init() tea.Cmd {
	return commands.LoadAccountsCmd(m.svc)
}

// Update handles messages for the admin dashboard.
func (m AdminModel) Update(msg tea.Msg) (AdminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.AccountsMsg:
		// Unauthorized is handled by the app; it never reaches here.
		m.loading = false
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.listing = msg.Listing
		m.refreshRows()
		return m, nil

	case tui.AccountsPatchedMsg:
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		if msg.Students {
			m.listing.Students = msg.Accounts
		} else {
			m.listing.Teachers = msg.Accounts
		}
		m.notice = "Account updated."
		m.refreshRows()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m.updateActiveTable(msg)
}

func (m AdminModel) updateKeys(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	if m.confirmToggle {
		switch msg.String() {
		case "y", "Y":
			m.confirmToggle = false
			if a, ok := m.selected(); ok {
				students := m.section == sectionStudents
				return m, commands.ToggleAccountCmd(m.svc, students, m.activeList(), a.ID)
			}
		default:
			m.confirmToggle = false
		}
		return m, nil
	}

	switch msg.String() {
	case tui.KeyTab:
		m.section = (m.section + 1) % adminSection(len(adminSections))
		m.errLine = ""
		m.notice = ""
		if m.section == sectionStudents {
			m.studentsTable.Focus()
			m.teachersTable.Blur()
		} else {
			m.teachersTable.Focus()
			m.studentsTable.Blur()
		}
		return m, nil

	case "t":
		if _, ok := m.selected(); ok {
			m.confirmToggle = true
		}
		return m, nil

	case "r":
		m.loading = true
		m.errLine = ""
		m.notice = ""
		return m, commands.LoadAccountsCmd(m.svc)
	}

	return m.updateActiveTable(msg)
}

func (m AdminModel) updateActiveTable(msg tea.Msg) (AdminModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.section == sectionStudents {
		m.studentsTable, cmd = m.studentsTable.Update(msg)
	} else {
		m.teachersTable, cmd = m.teachersTable.Update(msg)
	}
	return m, cmd
}

func (m AdminModel) activeList() []admin.Account {
	if m.listing == nil {
		return nil
	}
	if m.section == sectionStudents {
		return m.listing.Students
	}
	return m.listing.Teachers
}

func (m AdminModel) selected() (admin.Account, bool) {
	list := m.activeList()
	var cursor int
	if m.section == sectionStudents {
		cursor = m.studentsTable.Cursor()
	} else {
		cursor = m.teachersTable.Cursor()
	}
	if cursor < 0 || cursor >= len(list) {
		return admin.Account{}, false
	}
	return list[cursor], true
}

func (m *AdminModel) refreshRows() {
	if m.listing == nil {
		return
	}
	m.studentsTable.SetRows(accountRows(m.listing.Students))
	m.teachersTable.SetRows(accountRows(m.listing.Teachers))
}

func accountRows(list []admin.Account) []table.Row {
	rows := make([]table.Row, len(list))
	for i, a := range list {
		status := tui.IconInactive + " inactive"
		if a.Active {
			status = tui.IconActive + " active"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", a.ID),
			strings.TrimSpace(a.Name + " " + a.LastName),
			a.Email,
			status,
		}
	}
	return rows
}

// View renders the admin dashboard.
func (m AdminModel) View() string {
	sidebar := renderSidebar("Administration", adminSections, int(m.section))

	var content string
	switch {
	case m.loading:
		content = tui.DimStyle.Render("Loading accounts...")
	case m.confirmToggle:
		a, _ := m.selected()
		verb := "Deactivate"
		if !a.Active {
			verb = "Activate"
		}
		content = tui.WarningStyle.Render(fmt.Sprintf("%s account %s? (y/N)", verb, a.Email))
	case m.section == sectionStudents:
		content = m.studentsTable.View() + "\n\n" +
			tui.DimStyle.Render("t: Toggle status    r: Reload    Tab: Switch section")
	default:
		content = m.teachersTable.View() + "\n\n" +
			tui.DimStyle.Render("t: Toggle status    r: Reload    Tab: Switch section")
	}

	if m.errLine != "" {
		content += "\n" + tui.ErrorStyle.Render(m.errLine)
	}
	if m.notice != "" {
		content += "\n" + tui.SuccessStyle.Render(m.notice)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, tui.ContentStyle.Render(content))
}
