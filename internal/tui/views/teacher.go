package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aula-dev/aula/internal/activity"
	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/qbank"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// GoToPickerMsg is sent when the teacher starts composing a new activity
// and must pick questions first.
type GoToPickerMsg struct{}

type teacherSection int

const (
	sectionQuestions teacherSection = iota
	sectionExams
	sectionPractices
)

var teacherSections = []string{"Questions", "Exams", "Practices"}

// TeacherModel is the teacher dashboard. It lists the teacher's own
// question bank, exams, and practices, and is the entry point into the
// pick-then-compose flow for new activities.
type TeacherModel struct {
	qbankSvc    *qbank.Service
	activitySvc *activity.Service
	session     *auth.Session

	section teacherSection
	loading int // outstanding loads
	errLine string
	notice  string

	questions []qbank.Question
	catalogs  *qbank.Catalogs
	exams     []activity.Activity
	practices []activity.Activity

	confirmArchive bool

	questionsTable table.Model
	examsTable     table.Model
	practicesTable table.Model

	width  int
	height int
}

// NewTeacherModel creates the teacher dashboard and starts loading.
func NewTeacherModel(qbankSvc *qbank.Service, activitySvc *activity.Service, session *auth.Session, width, height int) TeacherModel {
	questionCols := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Question", Width: 48},
		{Title: "Topic", Width: 20},
	}
	activityCols := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 32},
		{Title: "Questions", Width: 10},
		{Title: "Status", Width: 12},
	}

	qt := table.New(table.WithColumns(questionCols), table.WithHeight(12))
	qt.Focus()

	return TeacherModel{
		qbankSvc:       qbankSvc,
		activitySvc:    activitySvc,
		session:        session,
		loading:        2,
		questionsTable: qt,
		examsTable:     table.New(table.WithColumns(activityCols), table.WithHeight(12)),
		practicesTable: table.New(table.WithColumns(activityCols), table.WithHeight(12)),
		width:          width,
		height:         height,
	}
}

// Init issues the initial loads.
func (m TeacherModel) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadQuestionBankCmd(m.qbankSvc),
		commands.LoadActivitiesCmd(m.activitySvc),
	)
}

// Update handles messages for the teacher dashboard.
func (m TeacherModel) Update(msg tea.Msg) (TeacherModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.QuestionBankMsg:
		m.loading--
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.catalogs = msg.Catalogs
		m.questions = m.ownQuestions(msg.Questions)
		m.refreshQuestionRows()
		return m, nil

	case tui.ActivitiesMsg:
		m.loading--
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.exams = msg.Exams
		m.practices = msg.Practices
		m.refreshActivityRows()
		return m, nil

	case tui.PracticePatchedMsg:
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
		} else {
			m.practices = msg.Practices
			m.notice = "Practice updated."
			m.refreshActivityRows()
		}
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

func (m TeacherModel) updateKeys(msg tea.KeyMsg) (TeacherModel, tea.Cmd) {
	if m.confirmArchive {
		switch msg.String() {
		case "y", "Y":
			m.confirmArchive = false
			if a, ok := m.selectedActivity(m.practicesTable, m.practices); ok {
				return m, commands.ArchivePracticeCmd(m.activitySvc, m.practices, a.ID)
			}
		default:
			m.confirmArchive = false
		}
		return m, nil
	}

	switch msg.String() {
	case tui.KeyTab:
		m.section = (m.section + 1) % teacherSection(len(teacherSections))
		m.errLine = ""
		m.notice = ""
		m.focusActiveTable()
		return m, nil

	case "n":
		return m, func() tea.Msg { return GoToPickerMsg{} }

	case "a":
		if m.section == sectionPractices {
			if _, ok := m.selectedActivity(m.practicesTable, m.practices); ok {
				m.confirmArchive = true
			}
		}
		return m, nil

	case "r":
		m.loading = 2
		m.errLine = ""
		m.notice = ""
		return m, m.Init()
	}

	return m.updateActiveTable(msg)
}

func (m TeacherModel) updateActiveTable(msg tea.Msg) (TeacherModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.section {
	case sectionQuestions:
		m.questionsTable, cmd = m.questionsTable.Update(msg)
	case sectionExams:
		m.examsTable, cmd = m.examsTable.Update(msg)
	case sectionPractices:
		m.practicesTable, cmd = m.practicesTable.Update(msg)
	}
	return m, cmd
}

func (m *TeacherModel) focusActiveTable() {
	m.questionsTable.Blur()
	m.examsTable.Blur()
	m.practicesTable.Blur()
	switch m.section {
	case sectionQuestions:
		m.questionsTable.Focus()
	case sectionExams:
		m.examsTable.Focus()
	case sectionPractices:
		m.practicesTable.Focus()
	}
}

// ownQuestions narrows the bank to the signed-in teacher's questions,
// excluding archived records.
func (m TeacherModel) ownQuestions(all []qbank.Question) []qbank.Question {
	profile := m.session.Profile()
	if profile == nil || profile.Teacher == nil {
		return nil
	}
	var topics []qbank.CatalogEntry
	if m.catalogs != nil {
		topics = m.catalogs.Topics
	}
	return qbank.Filter(all, topics, qbank.Criteria{OwnerID: profile.Teacher.ID})
}

func (m *TeacherModel) refreshQuestionRows() {
	topicNames := make(map[int]string)
	if m.catalogs != nil {
		for _, t := range m.catalogs.Topics {
			topicNames[t.ID] = t.Name
		}
	}
	rows := make([]table.Row, len(m.questions))
	for i, q := range m.questions {
		rows[i] = table.Row{fmt.Sprintf("%d", q.ID), q.Text, topicNames[q.TopicID]}
	}
	m.questionsTable.SetRows(rows)
}

func (m *TeacherModel) refreshActivityRows() {
	m.examsTable.SetRows(activityRows(m.exams))
	m.practicesTable.SetRows(activityRows(m.practices))
}

func activityRows(list []activity.Activity) []table.Row {
	rows := make([]table.Row, len(list))
	for i, a := range list {
		rows[i] = table.Row{
			fmt.Sprintf("%d", a.ID),
			a.Name,
			fmt.Sprintf("%d", len(a.Questions)),
			a.Status,
		}
	}
	return rows
}

func (m TeacherModel) selectedActivity(tbl table.Model, list []activity.Activity) (activity.Activity, bool) {
	i := tbl.Cursor()
	if i < 0 || i >= len(list) {
		return activity.Activity{}, false
	}
	return list[i], true
}

// View renders the teacher dashboard.
func (m TeacherModel) View() string {
	sidebar := renderSidebar("Teacher", teacherSections, int(m.section))

	var content string
	switch {
	case m.loading > 0:
		content = tui.DimStyle.Render("Loading...")
	case m.confirmArchive:
		a, _ := m.selectedActivity(m.practicesTable, m.practices)
		verb := "Archive"
		if a.Status == activity.StatusArchived {
			verb = "Restore"
		}
		content = tui.WarningStyle.Render(fmt.Sprintf("%s practice %q? (y/N)", verb, a.Name))
	case m.section == sectionQuestions:
		content = m.questionsTable.View() + "\n\n" +
			tui.DimStyle.Render("n: New activity    r: Reload    Tab: Switch section")
	case m.section == sectionExams:
		content = m.examsTable.View() + "\n\n" +
			tui.DimStyle.Render("n: New activity    r: Reload    Tab: Switch section")
	default:
		content = m.practicesTable.View() + "\n\n" +
			tui.DimStyle.Render("a: Archive/restore    n: New activity    Tab: Switch section")
	}

	if m.errLine != "" {
		content += "\n" + tui.ErrorStyle.Render(m.errLine)
	}
	if m.notice != "" {
		content += "\n" + tui.SuccessStyle.Render(m.notice)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, tui.ContentStyle.Render(content))
}
