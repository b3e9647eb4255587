package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/student"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// studentSection identifies the active sidebar entry.
type studentSection int

const (
	sectionProfile studentSection = iota
	sectionCourses
)

var studentSections = []string{"Profile", "Courses"}

// StudentModel is the student dashboard: a sidebar plus a content slot
// showing either the profile editor or the course listing.
type StudentModel struct {
	svc     *student.Service
	session *auth.Session

	section studentSection
	loading bool
	errLine string
	notice  string

	profile *student.Profile
	courses []student.Course

	// Profile editor
	editing bool
	inputs  []textinput.Model // name, last name, email
	focus   int

	// Delete-account confirmation
	confirmDelete bool

	coursesTable table.Model
	width        int
	height       int
}

// NewStudentModel creates the student dashboard and starts loading.
func NewStudentModel(svc *student.Service, session *auth.Session, width, height int) StudentModel {
	cols := []table.Column{
		{Title: "", Width: 2},
		{Title: "Course", Width: 28},
		{Title: "Description", Width: 40},
	}
	tbl := table.New(table.WithColumns(cols), table.WithHeight(10))

	return StudentModel{
		svc:          svc,
		session:      session,
		loading:      true,
		coursesTable: tbl,
		width:        width,
		height:       height,
	}
}

// Init issues the initial load.
func (m StudentModel) Init() tea.Cmd {
	return commands.LoadStudentCmd(m.svc)
}

// Update handles messages for the student dashboard.
func (m StudentModel) Update(msg tea.Msg) (StudentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.StudentLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.profile = msg.Profile
		m.courses = msg.Courses
		m.refreshCourseRows()
		return m, nil

	case tui.EnrolledMsg:
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
		} else {
			m.courses = msg.Courses
			m.notice = "Enrolled."
			m.refreshCourseRows()
		}
		return m, nil

	case tui.ProfileSavedMsg:
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
		} else {
			m.editing = false
			m.notice = "Profile saved."
			return m, commands.LoadStudentCmd(m.svc)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.section == sectionCourses && !m.editing {
		var cmd tea.Cmd
		m.coursesTable, cmd = m.coursesTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m StudentModel) updateKeys(msg tea.KeyMsg) (StudentModel, tea.Cmd) {
	// Confirmation modal swallows everything except its two answers.
	if m.confirmDelete {
		switch msg.String() {
		case "y", "Y":
			m.confirmDelete = false
			return m, commands.DeleteAccountCmd(m.svc, m.session)
		default:
			m.confirmDelete = false
			return m, nil
		}
	}

	if m.editing {
		return m.updateEditorKeys(msg)
	}

	switch msg.String() {
	case tui.KeyTab:
		m.section = (m.section + 1) % studentSection(len(studentSections))
		m.errLine = ""
		m.notice = ""
		if m.section == sectionCourses {
			m.coursesTable.Focus()
		} else {
			m.coursesTable.Blur()
		}
		return m, nil

	case "e":
		if m.section == sectionProfile && m.profile != nil {
			m.startEditing()
			return m, textinput.Blink
		}
		if m.section == sectionCourses {
			if c, ok := m.selectedCourse(); ok && !c.Enrolled {
				return m, commands.EnrollCmd(m.svc, m.courses, c.ID)
			}
		}
		return m, nil

	case "d":
		if m.section == sectionProfile {
			m.confirmDelete = true
		}
		return m, nil
	}

	if m.section == sectionCourses {
		var cmd tea.Cmd
		m.coursesTable, cmd = m.coursesTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m StudentModel) updateEditorKeys(msg tea.KeyMsg) (StudentModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.editing = false
		return m, nil

	case tui.KeyTab, tui.KeyDown:
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil

	case tui.KeyEnter:
		upd := student.ProfileUpdate{
			Name:     strings.TrimSpace(m.inputs[0].Value()),
			LastName: strings.TrimSpace(m.inputs[1].Value()),
			Email:    strings.TrimSpace(m.inputs[2].Value()),
		}
		m.errLine = ""
		return m, commands.SaveProfileCmd(m.svc, upd)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *StudentModel) startEditing() {
	values := []string{m.profile.Name, m.profile.LastName, m.profile.Email}
	m.inputs = make([]textinput.Model, len(values))
	for i, v := range values {
		ti := textinput.New()
		ti.SetValue(v)
		ti.CharLimit = 120
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.editing = true
}

func (m *StudentModel) refreshCourseRows() {
	rows := make([]table.Row, len(m.courses))
	for i, c := range m.courses {
		mark := ""
		if c.Enrolled {
			mark = "✓"
		}
		rows[i] = table.Row{mark, c.Name, c.Description}
	}
	m.coursesTable.SetRows(rows)
}

func (m StudentModel) selectedCourse() (student.Course, bool) {
	i := m.coursesTable.Cursor()
	if i < 0 || i >= len(m.courses) {
		return student.Course{}, false
	}
	return m.courses[i], true
}

// View renders the student dashboard.
func (m StudentModel) View() string {
	sidebar := renderSidebar("Student", studentSections, int(m.section))

	var content string
	switch {
	case m.loading:
		content = tui.DimStyle.Render("Loading...")
	case m.confirmDelete:
		content = tui.WarningStyle.Render("Delete your account? This cannot be undone. (y/N)")
	case m.editing:
		var b strings.Builder
		b.WriteString(tui.TitleStyle.Render("Edit profile"))
		b.WriteString("\n\n")
		for _, in := range m.inputs {
			b.WriteString(in.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("Enter: Save    Esc: Cancel"))
		content = b.String()
	case m.section == sectionProfile:
		content = m.renderProfile()
	default:
		content = m.coursesTable.View() + "\n\n" +
			tui.DimStyle.Render("e: Enroll in selected course    Tab: Switch section")
	}

	if m.errLine != "" {
		content += "\n" + tui.ErrorStyle.Render(m.errLine)
	}
	if m.notice != "" {
		content += "\n" + tui.SuccessStyle.Render(m.notice)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, tui.ContentStyle.Render(content))
}

func (m StudentModel) renderProfile() string {
	if m.profile == nil {
		return tui.DimStyle.Render("No profile loaded.")
	}
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Profile"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Name:  %s %s\n", m.profile.Name, m.profile.LastName))
	b.WriteString(fmt.Sprintf("Email: %s\n", m.profile.Email))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("e: Edit    d: Delete account    Tab: Switch section"))
	return b.String()
}

// renderSidebar renders the persistent side navigation shared by the
// three dashboards.
func renderSidebar(title string, sections []string, active int) string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(title))
	b.WriteString("\n\n")
	for i, s := range sections {
		if i == active {
			b.WriteString(tui.SidebarActiveStyle.Render(s))
		} else {
			b.WriteString(tui.SidebarEntryStyle.Render(s))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Ctrl+L: Log out"))
	return tui.SidebarStyle.Render(b.String())
}
