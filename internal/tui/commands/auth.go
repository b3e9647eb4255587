// Package commands provides Bubble Tea commands wrapping the backend
// services. Every command runs off the update loop and reports back with
// a message from the tui package.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/tui"
)

// LoginCmd attempts a login with the given form.
func LoginCmd(sess *auth.Session, form auth.LoginForm) tea.Cmd {
	return func() tea.Msg {
		return tui.LoginResultMsg{Err: sess.Login(context.Background(), form)}
	}
}

// SignupCmd attempts a student signup with the given form.
func SignupCmd(sess *auth.Session, form auth.SignupForm) tea.Cmd {
	return func() tea.Msg {
		return tui.SignupResultMsg{Err: sess.SignupStudent(context.Background(), form)}
	}
}

// ResolveRoleCmd runs role resolution for the current session.
func ResolveRoleCmd(sess *auth.Session) tea.Cmd {
	return func() tea.Msg {
		return tui.RoleResolvedMsg{Resolution: sess.ResolveRole(context.Background())}
	}
}

// VerifyStudentCmd re-validates student access for the student gate.
func VerifyStudentCmd(sess *auth.Session) tea.Cmd {
	return func() tea.Msg {
		return tui.StudentGateMsg{Err: sess.VerifyStudent(context.Background())}
	}
}

// LogoutCmd logs the session out. Local state is cleared even when the
// backend call fails.
func LogoutCmd(sess *auth.Session) tea.Cmd {
	return func() tea.Msg {
		return tui.LogoutDoneMsg{Err: sess.Logout(context.Background())}
	}
}
