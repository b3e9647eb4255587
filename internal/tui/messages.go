package tui

import (
	"github.com/aula-dev/aula/internal/activity"
	"github.com/aula-dev/aula/internal/admin"
	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/handoff"
	"github.com/aula-dev/aula/internal/qbank"
	"github.com/aula-dev/aula/internal/student"
)

// ============================================================================
// Authentication Messages
// ============================================================================

// LoginResultMsg reports the outcome of a login attempt.
type LoginResultMsg struct {
	Err error
}

// SignupResultMsg reports the outcome of a student signup attempt.
type SignupResultMsg struct {
	Err error
}

// RoleResolvedMsg carries the outcome of role resolution.
type RoleResolvedMsg struct {
	Resolution auth.Resolution
}

// StudentGateMsg reports the student access re-validation. A nil Err
// grants access; any error denies it and routes back to login.
type StudentGateMsg struct {
	Err error
}

// LogoutDoneMsg signals that logout has completed.
type LogoutDoneMsg struct {
	Err error
}

// ============================================================================
// Student Dashboard Messages
// ============================================================================

// StudentLoadedMsg carries the student's profile and course list.
type StudentLoadedMsg struct {
	Profile *student.Profile
	Courses []student.Course
	Err     error
}

// EnrolledMsg carries the optimistically patched course list after an
// enrollment attempt.
type EnrolledMsg struct {
	Courses []student.Course
	Err     error
}

// ProfileSavedMsg reports a profile update.
type ProfileSavedMsg struct {
	Err error
}

// AccountDeletedMsg reports an account deletion; on success the session
// has already been cleared.
type AccountDeletedMsg struct {
	Err error
}

// ============================================================================
// Teacher Dashboard Messages
// ============================================================================

// QuestionBankMsg carries the question bank and its reference catalogs.
type QuestionBankMsg struct {
	Catalogs  *qbank.Catalogs
	Questions []qbank.Question
	Err       error
}

// ActivitiesMsg carries the teacher's exams and practices.
type ActivitiesMsg struct {
	Exams     []activity.Activity
	Practices []activity.Activity
	Err       error
}

// ActivityCreatedMsg reports an activity creation.
type ActivityCreatedMsg struct {
	Created *activity.Activity
	Err     error
}

// PracticePatchedMsg carries the optimistically patched practice list
// after an archive toggle.
type PracticePatchedMsg struct {
	Practices []activity.Activity
	Err       error
}

// SelectionConfirmedMsg reports that the picker's selection was written
// to the handoff store.
type SelectionConfirmedMsg struct {
	Err error
}

// SelectionTakenMsg carries the handoff items read back by the composer.
type SelectionTakenMsg struct {
	Items []handoff.Item
	OK    bool
	Err   error
}

// ============================================================================
// Admin Dashboard Messages
// ============================================================================

// AccountsMsg carries the admin listings. Unauthorized reports a 401 that
// already forced a local logout.
type AccountsMsg struct {
	Listing      *admin.Listing
	Unauthorized bool
	Err          error
}

// AccountsPatchedMsg carries an optimistically patched account list after
// a status toggle.
type AccountsPatchedMsg struct {
	Students bool // which list was patched
	Accounts []admin.Account
	Err      error
}

// ============================================================================
// Utility Messages
// ============================================================================

// CtrlCResetMsg clears the Ctrl+C confirmation state after its timeout.
type CtrlCResetMsg struct{}

// ErrorMsg is a generic error message for unrecoverable errors.
type ErrorMsg struct {
	Err error
}
