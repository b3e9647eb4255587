package activity

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aula-dev/aula/internal/api"
	"github.com/aula-dev/aula/internal/testutil"
)

func newTestService(t *testing.T, b *testutil.Backend) *Service {
	t.Helper()
	return NewService(api.New(b.URL(), 0, nil))
}

func validForm() Form {
	return Form{Name: "Parcial 1", CourseID: 3, Questions: []int{1, 2}, TimeLimit: 60, Attempts: 1}
}

func TestCreateExamValidForm(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Handle("/actividad-examenes", func(w http.ResponseWriter, r *http.Request) {
		var form Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		_ = json.NewEncoder(w).Encode(Activity{ID: 11, Name: form.Name, Status: StatusActive})
	})

	svc := newTestService(t, b)
	created, err := svc.CreateExam(context.Background(), validForm())
	if err != nil {
		t.Fatalf("CreateExam failed: %v", err)
	}
	if created.ID != 11 || created.Name != "Parcial 1" {
		t.Errorf("created = %+v", created)
	}
}

func TestCreateRejectsInvalidForms(t *testing.T) {
	b := testutil.NewBackend(t)
	svc := newTestService(t, b)

	tests := []struct {
		name   string
		mutate func(*Form)
	}{
		{"missing name", func(f *Form) { f.Name = "" }},
		{"no questions", func(f *Form) { f.Questions = nil }},
		{"zero time limit", func(f *Form) { f.TimeLimit = 0 }},
		{"zero attempts", func(f *Form) { f.Attempts = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			if _, err := svc.CreateExam(context.Background(), form); err == nil {
				t.Error("invalid form accepted")
			}
		})
	}
	if n := b.Count("POST /actividad-examenes"); n != 0 {
		t.Errorf("invalid forms reached the backend (%d requests)", n)
	}
}

func TestArchivePracticeTogglesAndPatches(t *testing.T) {
	b := testutil.NewBackend(t)
	var sentStatus string
	b.Handle("/actividad/practica/9", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status string `json:"estado"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		sentStatus = body.Status
		_, _ = w.Write([]byte(`{}`))
	})

	svc := newTestService(t, b)
	acts := []Activity{
		{ID: 8, Status: StatusActive},
		{ID: 9, Status: StatusActive},
	}

	patched, err := svc.ArchivePractice(context.Background(), acts, 9)
	if err != nil {
		t.Fatalf("ArchivePractice failed: %v", err)
	}
	if sentStatus != StatusArchived {
		t.Errorf("sent status = %q, want %q", sentStatus, StatusArchived)
	}
	if patched[1].Status != StatusArchived {
		t.Error("target activity not patched")
	}
	if patched[0].Status != StatusActive {
		t.Error("unrelated activity patched")
	}
	if acts[1].Status != StatusActive {
		t.Error("caller's slice mutated in place")
	}

	// Toggling back un-archives.
	patched, err = svc.ArchivePractice(context.Background(), patched, 9)
	if err != nil {
		t.Fatalf("second ArchivePractice failed: %v", err)
	}
	if sentStatus != StatusActive || patched[1].Status != StatusActive {
		t.Errorf("toggle back: sent %q, status %q", sentStatus, patched[1].Status)
	}
}

func TestArchivePracticeUnknownID(t *testing.T) {
	b := testutil.NewBackend(t)
	svc := newTestService(t, b)

	if _, err := svc.ArchivePractice(context.Background(), []Activity{{ID: 1}}, 99); err == nil {
		t.Error("archiving an unloaded activity should fail")
	}
}

func TestDeletePractice(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/actividad/practica/4", http.StatusOK, `{}`)

	svc := newTestService(t, b)
	if err := svc.DeletePractice(context.Background(), 4); err != nil {
		t.Fatalf("DeletePractice failed: %v", err)
	}
	if n := b.Count("DELETE /actividad/practica/4"); n != 1 {
		t.Errorf("DELETE issued %d times, want 1", n)
	}
}
