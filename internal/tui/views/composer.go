package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/activity"
	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/handoff"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// ActivityDoneMsg is sent when the composer finishes, so the dashboard
// can reload its listings.
type ActivityDoneMsg struct{}

// ComposerModel is the activity composer. On entry it consumes the
// pending question selection from the handoff store; the picked
// questions become the activity's question list.
type ComposerModel struct {
	activitySvc *activity.Service
	handoff     *handoff.Store
	session     *auth.Session

	items    []handoff.Item
	took     bool
	practice bool
	busy     bool
	errLine  string

	inputs []textinput.Model // name, course id, time limit, attempts
	focus  int

	width  int
	height int
}

// NewComposerModel creates the composer.
func NewComposerModel(activitySvc *activity.Service, store *handoff.Store, session *auth.Session, width, height int) ComposerModel {
	labels := []string{"activity name", "course id", "time limit (minutes)", "attempts"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[0].Focus()

	return ComposerModel{
		activitySvc: activitySvc,
		handoff:     store,
		session:     session,
		inputs:      inputs,
		width:       width,
		height:      height,
	}
}

// Init consumes the pending selection.
func (m ComposerModel) Init() tea.Cmd {
	profile := m.session.Profile()
	if profile == nil || profile.Teacher == nil {
		return func() tea.Msg { return tui.SelectionTakenMsg{OK: false} }
	}
	return tea.Batch(textinput.Blink, commands.TakeSelectionCmd(m.handoff, profile.Teacher.ID))
}

// Update handles messages for the composer.
func (m ComposerModel) Update(msg tea.Msg) (ComposerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.SelectionTakenMsg:
		m.took = true
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		if !msg.OK {
			m.errLine = "No pending question selection. Pick questions first."
			return m, nil
		}
		m.items = msg.Items
		return m, nil

	case tui.ActivityCreatedMsg:
		m.busy = false
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return ActivityDoneMsg{} }

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m ComposerModel) updateKeys(msg tea.KeyMsg) (ComposerModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch msg.String() {
	case tui.KeyEsc:
		return m, func() tea.Msg { return GoToTeacherMsg{} }

	case tui.KeyTab, tui.KeyDown:
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil

	case tui.KeyUp:
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil

	case "ctrl+t":
		m.practice = !m.practice
		return m, nil

	case tui.KeyEnter:
		form, err := m.form()
		if err != nil {
			m.errLine = err.Error()
			return m, nil
		}
		m.busy = true
		m.errLine = ""
		return m, commands.CreateActivityCmd(m.activitySvc, form, m.practice)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ComposerModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m ComposerModel) form() (activity.Form, error) {
	courseID, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil {
		return activity.Form{}, fmt.Errorf("course id must be a number")
	}
	timeLimit, err := strconv.Atoi(strings.TrimSpace(m.inputs[2].Value()))
	if err != nil {
		return activity.Form{}, fmt.Errorf("time limit must be a number")
	}
	attempts, err := strconv.Atoi(strings.TrimSpace(m.inputs[3].Value()))
	if err != nil {
		return activity.Form{}, fmt.Errorf("attempts must be a number")
	}

	questions := make([]int, len(m.items))
	for i, it := range m.items {
		questions[i] = it.ID
	}

	return activity.Form{
		Name:      strings.TrimSpace(m.inputs[0].Value()),
		CourseID:  courseID,
		Questions: questions,
		TimeLimit: timeLimit,
		Attempts:  attempts,
	}, nil
}

// View renders the composer.
func (m ComposerModel) View() string {
	var b strings.Builder

	kind := "exam"
	if m.practice {
		kind = "practice"
	}
	b.WriteString(tui.TitleStyle.Render("New " + kind))
	b.WriteString("\n\n")

	if !m.took {
		b.WriteString(tui.DimStyle.Render("Reading question selection..."))
		return tui.BoxStyle.Render(b.String())
	}

	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%d questions selected:", len(m.items))))
	b.WriteString("\n")
	for _, it := range m.items {
		b.WriteString("  " + tui.IconPicked + " " + it.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.busy {
		b.WriteString(tui.DimStyle.Render("Creating..."))
		b.WriteString("\n")
	}
	if m.errLine != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter: Create    Ctrl+T: Exam/practice    Esc: Back"))

	return tui.BoxStyle.Render(b.String())
}
