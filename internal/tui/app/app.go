// Package app wires the views into a single Bubble Tea program and owns
// the transitions between them.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/config"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/commands"
	"github.com/aula-dev/aula/internal/tui/views"
)

// ctrlCWindow is how long the first Ctrl+C press arms the quit
// confirmation.
const ctrlCWindow = 2 * time.Second

// App is the root model. It owns the shared state, constructs view
// models on entry, and routes messages to whichever view is active.
type App struct {
	shared *tui.Model

	login     views.LoginModel
	signup    views.SignupModel
	resolving views.ResolvingModel
	gate      views.GateModel
	student   views.StudentModel
	teacher   views.TeacherModel
	admin     views.AdminModel
	picker    views.PickerModel
	composer  views.ComposerModel
}

// New creates the root App. The starting view depends on whether a
// persisted session was rehydrated.
func New(cfg *config.Config, svcs tui.Services) App {
	shared := tui.NewModel(cfg, svcs)
	a := App{shared: shared}

	switch shared.State {
	case tui.StateResolving:
		a.resolving = views.NewResolvingModel(svcs.Session)
	default:
		a.login = views.NewLoginModel(svcs.Session, shared.Width, shared.Height)
	}
	return a
}

// Init returns the initial command for the starting view.
func (a App) Init() tea.Cmd {
	if a.shared.State == tui.StateResolving {
		return a.resolving.Init()
	}
	return a.login.Init()
}

// Update routes messages: global keys first, then transitions, then the
// active view.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.shared.Width = msg.Width
		a.shared.Height = msg.Height
		return a.delegate(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyCtrlC:
			if a.shared.CtrlCPending {
				return a, tea.Quit
			}
			a.shared.CtrlCPending = true
			return a, tea.Tick(ctrlCWindow, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})

		case "ctrl+l":
			if a.onDashboard() {
				return a, commands.LogoutCmd(a.shared.Services.Session)
			}
		}
		a.shared.CtrlCPending = false
		return a.delegate(msg)

	case tui.CtrlCResetMsg:
		a.shared.CtrlCPending = false
		return a, nil

	case views.GoToSignupMsg:
		return a.enterSignup()

	case views.GoToLoginMsg:
		return a.enterLogin()

	case tui.LoginResultMsg:
		if msg.Err == nil {
			return a.enterResolving()
		}
		return a.delegate(msg)

	case tui.SignupResultMsg:
		// Signup establishes the session, so a success resolves straight
		// into the student flow.
		if msg.Err == nil {
			return a.enterResolving()
		}
		return a.delegate(msg)

	case tui.RoleResolvedMsg:
		return a.enterRoute(msg.Resolution.Route)

	case tui.StudentGateMsg:
		if msg.Err != nil {
			return a.enterLogin()
		}
		return a.enterStudent()

	case tui.LogoutDoneMsg:
		return a.enterLogin()

	case tui.AccountDeletedMsg:
		if msg.Err == nil {
			return a.enterLogin()
		}
		return a.delegate(msg)

	case tui.AccountsMsg:
		if msg.Unauthorized {
			return a.enterLogin()
		}
		return a.delegate(msg)

	case views.GoToPickerMsg:
		return a.enterPicker()

	case views.GoToTeacherMsg:
		return a.enterTeacher()

	case tui.SelectionConfirmedMsg:
		if msg.Err == nil {
			return a.enterComposer()
		}
		return a.delegate(msg)

	case views.ActivityDoneMsg:
		return a.enterTeacher()
	}

	return a.delegate(msg)
}

// delegate forwards the message to the active view.
func (a App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.shared.State {
	case tui.StateLogin:
		a.login, cmd = a.login.Update(msg)
	case tui.StateSignup:
		a.signup, cmd = a.signup.Update(msg)
	case tui.StateResolving:
		a.resolving, cmd = a.resolving.Update(msg)
	case tui.StateStudentGate:
		a.gate, cmd = a.gate.Update(msg)
	case tui.StateStudent:
		a.student, cmd = a.student.Update(msg)
	case tui.StateTeacher:
		a.teacher, cmd = a.teacher.Update(msg)
	case tui.StateAdmin:
		a.admin, cmd = a.admin.Update(msg)
	case tui.StatePicker:
		a.picker, cmd = a.picker.Update(msg)
	case tui.StateComposer:
		a.composer, cmd = a.composer.Update(msg)
	}
	return a, cmd
}

func (a App) onDashboard() bool {
	switch a.shared.State {
	case tui.StateStudent, tui.StateTeacher, tui.StateAdmin:
		return true
	}
	return false
}

func (a App) enterLogin() (tea.Model, tea.Cmd) {
	a.shared.State = tui.StateLogin
	a.login = views.NewLoginModel(a.shared.Services.Session, a.shared.Width, a.shared.Height)
	return a, a.login.Init()
}

func (a App) enterSignup() (tea.Model, tea.Cmd) {
	a.shared.State = tui.StateSignup
	a.signup = views.NewSignupModel(a.shared.Services.Session, a.shared.Width, a.shared.Height)
	return a, a.signup.Init()
}

func (a App) enterResolving() (tea.Model, tea.Cmd) {
	a.shared.State = tui.StateResolving
	a.resolving = views.NewResolvingModel(a.shared.Services.Session)
	return a, a.resolving.Init()
}

func (a App) enterRoute(route auth.Route) (tea.Model, tea.Cmd) {
	switch route {
	case auth.RouteStudent:
		a.shared.State = tui.StateStudentGate
		a.gate = views.NewGateModel(a.shared.Services.Session, a.shared.Width, a.shared.Height)
		return a, a.gate.Init()
	case auth.RouteTeacher:
		return a.enterTeacher()
	case auth.RouteAdmin:
		a.shared.State = tui.StateAdmin
		a.admin = views.NewAdminModel(a.shared.Services.Admin, a.shared.Width, a.shared.Height)
		return a, a.admin.Init()
	default:
		return a.enterLogin()
	}
}

func (a App) enterStudent() (tea.Model, tea.Cmd) {
	a.shared.State = tui.StateStudent
	a.student = views.NewStudentModel(a.shared.Services.Students, a.shared.Services.Session, a.shared.Width, a.shared.Height)
	return a, a.student.Init()
}

func (a App) enterTeacher() (tea.Model, tea.Cmd) {
	a.shared.State = tui.StateTeacher
	a.teacher = views.NewTeacherModel(a.shared.Services.QBank, a.shared.Services.Activities, a.shared.Services.Session, a.shared.Width, a.shared.Height)
	return a, a.teacher.Init()
}

func (a App) enterPicker() (tea.Model, tea.Cmd) {
	a.shared.State = tui.StatePicker
	a.picker = views.NewPickerModel(a.shared.Services.QBank, a.shared.Services.Handoff, a.shared.Services.Session, a.shared.Width, a.shared.Height)
	return a, a.picker.Init()
}

func (a App) enterComposer() (tea.Model, tea.Cmd) {
	a.shared.State = tui.StateComposer
	a.composer = views.NewComposerModel(a.shared.Services.Activities, a.shared.Services.Handoff, a.shared.Services.Session, a.shared.Width, a.shared.Height)
	return a, a.composer.Init()
}

// View renders the active view plus the quit confirmation line.
func (a App) View() string {
	var body string
	switch a.shared.State {
	case tui.StateLogin:
		body = a.login.View()
	case tui.StateSignup:
		body = a.signup.View()
	case tui.StateResolving:
		body = a.resolving.View()
	case tui.StateStudentGate:
		body = a.gate.View()
	case tui.StateStudent:
		body = a.student.View()
	case tui.StateTeacher:
		body = a.teacher.View()
	case tui.StateAdmin:
		body = a.admin.View()
	case tui.StatePicker:
		body = a.picker.View()
	case tui.StateComposer:
		body = a.composer.View()
	}

	if a.shared.CtrlCPending {
		body += "\n" + tui.WarningStyle.Render("Press Ctrl+C again to quit")
	}
	return body
}
