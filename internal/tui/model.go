// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/aula-dev/aula/internal/activity"
	"github.com/aula-dev/aula/internal/admin"
	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/config"
	"github.com/aula-dev/aula/internal/handoff"
	"github.com/aula-dev/aula/internal/qbank"
	"github.com/aula-dev/aula/internal/student"
)

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StateLogin ViewState = iota
	StateSignup
	StateResolving   // role resolution in flight after login
	StateStudentGate // student access re-validation in flight
	StateStudent
	StateTeacher
	StateAdmin
	StatePicker
	StateComposer
)

// Services bundles every backend-facing service the views draw on.
type Services struct {
	Session    *auth.Session
	Students   *student.Service
	QBank      *qbank.Service
	Activities *activity.Service
	Admin      *admin.Service
	Handoff    *handoff.Store
}

// Model is the shared application state threaded through all views.
type Model struct {
	State ViewState
	Err   error

	Cfg      *config.Config
	Services Services

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool
}

// NewModel creates the shared Model. The initial state depends on whether
// a persisted session was rehydrated: an authenticated session goes
// straight to role resolution, everything else lands on login.
func NewModel(cfg *config.Config, svcs Services) *Model {
	state := StateLogin
	if svcs.Session.Authenticated() {
		state = StateResolving
	}

	return &Model{
		State:    state,
		Cfg:      cfg,
		Services: svcs,
		Width:    80,
		Height:   24,
	}
}
