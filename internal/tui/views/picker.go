package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/handoff"
	"github.com/aula-dev/aula/internal/qbank"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
)

// GoToTeacherMsg is sent when a teacher flow screen returns to the
// dashboard.
type GoToTeacherMsg struct{}

// pickerFilter identifies one of the four catalog filters.
type pickerFilter int

const (
	filterTopic pickerFilter = iota
	filterLevel
	filterDifficulty
	filterType
)

var pickerFilterNames = []string{"Topic", "Level", "Difficulty", "Type"}

// PickerModel is the question picker. It filters the teacher's own
// question bank with a fuzzy text search plus the four catalog filters,
// accumulates a selection, and confirms it into the handoff store for
// the activity composer to consume.
type PickerModel struct {
	qbankSvc *qbank.Service
	handoff  *handoff.Store
	session  *auth.Session

	loading bool
	errLine string

	catalogs  *qbank.Catalogs
	questions []qbank.Question
	visible   []qbank.Question
	selection *qbank.Selection

	search  textinput.Model
	filter  pickerFilter // which catalog filter the arrow keys cycle
	choice  [4]int       // selected catalog entry id per filter, 0 = any
	cursor  int
	confirm bool

	width  int
	height int
}

// NewPickerModel creates the picker and starts loading the bank.
func NewPickerModel(qbankSvc *qbank.Service, store *handoff.Store, session *auth.Session, width, height int) PickerModel {
	search := textinput.New()
	search.Placeholder = "search questions"
	search.CharLimit = 120
	search.Width = 40
	search.Focus()

	return PickerModel{
		qbankSvc:  qbankSvc,
		handoff:   store,
		session:   session,
		loading:   true,
		selection: qbank.NewSelection(),
		search:    search,
		width:     width,
		height:    height,
	}
}

// Init issues the initial load.
func (m PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, commands.LoadQuestionBankCmd(m.qbankSvc))
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.QuestionBankMsg:
		m.loading = false
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.catalogs = msg.Catalogs
		m.questions = msg.Questions
		m.refilter()
		return m, nil

	case tui.SelectionConfirmedMsg:
		if msg.Err != nil {
			m.confirm = false
			m.errLine = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m PickerModel) updateKeys(msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		return m, func() tea.Msg { return GoToTeacherMsg{} }

	case tui.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tui.KeyDown:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case tui.KeyTab:
		m.filter = (m.filter + 1) % pickerFilter(len(pickerFilterNames))
		return m, nil

	case tui.KeyLeft:
		m.cycleChoice(-1)
		m.refilter()
		return m, nil

	case tui.KeyRight:
		m.cycleChoice(1)
		m.refilter()
		return m, nil

	case tui.KeySpace:
		if m.cursor < len(m.visible) {
			m.selection.Toggle(m.visible[m.cursor])
		}
		return m, nil

	case tui.KeyEnter:
		if m.selection.Len() == 0 {
			m.errLine = "Pick at least one question."
			return m, nil
		}
		profile := m.session.Profile()
		if profile == nil || profile.Teacher == nil {
			m.errLine = "No teacher profile."
			return m, nil
		}
		m.confirm = true
		m.errLine = ""
		return m, commands.ConfirmSelectionCmd(m.handoff, profile.Teacher.ID, m.selection.Items())
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

// cycleChoice moves the active catalog filter through "any" plus each
// catalog entry, wrapping at both ends.
func (m *PickerModel) cycleChoice(dir int) {
	entries := m.filterEntries()
	if len(entries) == 0 {
		return
	}
	cur := 0
	for i, e := range entries {
		if e.ID == m.choice[m.filter] {
			cur = i + 1
			break
		}
	}
	n := len(entries) + 1 // slot 0 is "any"
	cur = (cur + dir + n) % n
	if cur == 0 {
		m.choice[m.filter] = 0
	} else {
		m.choice[m.filter] = entries[cur-1].ID
	}
}

func (m PickerModel) filterEntries() []qbank.CatalogEntry {
	if m.catalogs == nil {
		return nil
	}
	switch m.filter {
	case filterTopic:
		return m.catalogs.Topics
	case filterLevel:
		return m.catalogs.Levels
	case filterDifficulty:
		return m.catalogs.Difficulties
	default:
		return m.catalogs.Types
	}
}

func (m *PickerModel) refilter() {
	profile := m.session.Profile()
	if profile == nil || profile.Teacher == nil || m.catalogs == nil {
		m.visible = nil
		return
	}
	m.visible = qbank.Filter(m.questions, m.catalogs.Topics, qbank.Criteria{
		Text:         strings.TrimSpace(m.search.Value()),
		TopicID:      m.choice[filterTopic],
		LevelID:      m.choice[filterLevel],
		DifficultyID: m.choice[filterDifficulty],
		TypeID:       m.choice[filterType],
		OwnerID:      profile.Teacher.ID,
	})
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m PickerModel) choiceName(f pickerFilter) string {
	if m.choice[f] == 0 {
		return "any"
	}
	var entries []qbank.CatalogEntry
	switch f {
	case filterTopic:
		entries = m.catalogs.Topics
	case filterLevel:
		entries = m.catalogs.Levels
	case filterDifficulty:
		entries = m.catalogs.Difficulties
	default:
		entries = m.catalogs.Types
	}
	for _, e := range entries {
		if e.ID == m.choice[f] {
			return e.Name
		}
	}
	return "any"
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.loading {
		return tui.BoxStyle.Render(tui.DimStyle.Render("Loading question bank..."))
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Pick questions"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	for i, name := range pickerFilterNames {
		label := fmt.Sprintf("%s: %s", name, m.choiceName(pickerFilter(i)))
		if pickerFilter(i) == m.filter {
			b.WriteString(tui.SelectedStyle.Render(label))
		} else {
			b.WriteString(tui.DimStyle.Render(label))
		}
		b.WriteString("   ")
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(tui.DimStyle.Render("No questions match."))
		b.WriteString("\n")
	}
	for i, q := range m.visible {
		mark := "  "
		if m.selection.Has(q.ID) {
			mark = tui.IconPicked + " "
		}
		line := fmt.Sprintf("%s%s", mark, q.Text)
		if i == m.cursor {
			b.WriteString(tui.SelectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%d picked", m.selection.Len())))
	b.WriteString("\n")

	if m.confirm {
		b.WriteString(tui.DimStyle.Render("Saving selection..."))
		b.WriteString("\n")
	}
	if m.errLine != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Space: Pick    Enter: Continue    Tab: Filter    Left/Right: Change    Esc: Back"))

	return tui.BoxStyle.Render(b.String())
}
