package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/student"
	"github.com/aula-dev/aula/internal/tui"
)

// LoadStudentCmd fetches the student's profile and course list, waiting
// for both before reporting.
func LoadStudentCmd(svc *student.Service) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		profile, err := svc.Profile(ctx)
		if err != nil {
			return tui.StudentLoadedMsg{Err: err}
		}
		courses, err := svc.Courses(ctx)
		if err != nil {
			return tui.StudentLoadedMsg{Err: err}
		}
		return tui.StudentLoadedMsg{Profile: profile, Courses: courses}
	}
}

// EnrollCmd enrolls in a course and reports the patched course list.
func EnrollCmd(svc *student.Service, courses []student.Course, id int) tea.Cmd {
	return func() tea.Msg {
		patched, err := svc.Enroll(context.Background(), courses, id)
		return tui.EnrolledMsg{Courses: patched, Err: err}
	}
}

// SaveProfileCmd writes the edited profile fields.
func SaveProfileCmd(svc *student.Service, upd student.ProfileUpdate) tea.Cmd {
	return func() tea.Msg {
		return tui.ProfileSavedMsg{Err: svc.UpdateProfile(context.Background(), upd)}
	}
}

// DeleteAccountCmd deletes the student's account and clears the session
// on success.
func DeleteAccountCmd(svc *student.Service, sess *auth.Session) tea.Cmd {
	return func() tea.Msg {
		if err := svc.DeleteAccount(context.Background()); err != nil {
			return tui.AccountDeletedMsg{Err: err}
		}
		return tui.AccountDeletedMsg{Err: sess.ForceLogout()}
	}
}
