package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/activity"
	"github.com/aula-dev/aula/internal/handoff"
	"github.com/aula-dev/aula/internal/qbank"
	"github.com/aula-dev/aula/internal/tui"
)

// LoadQuestionBankCmd fetches the catalogs and the question bank.
func LoadQuestionBankCmd(svc *qbank.Service) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		catalogs, err := svc.Catalogs(ctx)
		if err != nil {
			return tui.QuestionBankMsg{Err: err}
		}
		questions, err := svc.Questions(ctx)
		if err != nil {
			return tui.QuestionBankMsg{Err: err}
		}
		return tui.QuestionBankMsg{Catalogs: catalogs, Questions: questions}
	}
}

// LoadActivitiesCmd fetches the teacher's exams and practices.
func LoadActivitiesCmd(svc *activity.Service) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		exams, err := svc.Exams(ctx)
		if err != nil {
			return tui.ActivitiesMsg{Err: err}
		}
		practices, err := svc.Practices(ctx)
		if err != nil {
			return tui.ActivitiesMsg{Err: err}
		}
		return tui.ActivitiesMsg{Exams: exams, Practices: practices}
	}
}

// CreateActivityCmd creates an exam or practice from the form.
func CreateActivityCmd(svc *activity.Service, form activity.Form, practice bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var created *activity.Activity
		var err error
		if practice {
			created, err = svc.CreatePractice(ctx, form)
		} else {
			created, err = svc.CreateExam(ctx, form)
		}
		return tui.ActivityCreatedMsg{Created: created, Err: err}
	}
}

// ArchivePracticeCmd toggles a practice's archive status and reports the
// patched list.
func ArchivePracticeCmd(svc *activity.Service, practices []activity.Activity, id int) tea.Cmd {
	return func() tea.Msg {
		patched, err := svc.ArchivePractice(context.Background(), practices, id)
		return tui.PracticePatchedMsg{Practices: patched, Err: err}
	}
}

// ConfirmSelectionCmd writes the picker's confirmed selection to the
// handoff store.
func ConfirmSelectionCmd(store *handoff.Store, teacherID int, picked []qbank.Picked) tea.Cmd {
	return func() tea.Msg {
		items := make([]handoff.Item, len(picked))
		for i, p := range picked {
			items[i] = handoff.Item{ID: p.ID, Text: p.Text}
		}
		_, err := store.Put(teacherID, items)
		return tui.SelectionConfirmedMsg{Err: err}
	}
}

// TakeSelectionCmd consumes the pending selection for the composer.
func TakeSelectionCmd(store *handoff.Store, teacherID int) tea.Cmd {
	return func() tea.Msg {
		items, ok, err := store.Take(teacherID)
		return tui.SelectionTakenMsg{Items: items, OK: ok, Err: err}
	}
}
