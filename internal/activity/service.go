// Package activity implements exam and practice authoring: listing,
// creation, archiving, and deletion of backend-owned activity records.
package activity

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/aula-dev/aula/internal/api"
)

var validate = validator.New()

// Activity statuses as the backend encodes them.
const (
	StatusActive   = "activa"
	StatusArchived = "archivada"
)

// Activity is a backend-owned exam or practice. The client reads,
// creates, edits and archives; it never owns the record.
type Activity struct {
	ID        int    `json:"id"`
	Name      string `json:"nombre"`
	CourseID  int    `json:"curso_id"`
	Questions []int  `json:"preguntas"`
	TimeLimit int    `json:"tiempo_limite"` // minutes
	Attempts  int    `json:"intentos"`
	DocenteID int    `json:"docente_id"`
	Status    string `json:"estado"`
}

// Form carries the fields for creating or editing an activity. Validated
// client-side before any request is issued.
type Form struct {
	Name      string `json:"nombre" validate:"required"`
	CourseID  int    `json:"curso_id" validate:"required"`
	Questions []int  `json:"preguntas" validate:"required,min=1"`
	TimeLimit int    `json:"tiempo_limite" validate:"gt=0"`
	Attempts  int    `json:"intentos" validate:"gte=1"`
}

// Service performs activity CRUD through the API adapter.
type Service struct {
	api *api.Client
}

// NewService creates an activity Service over the given API client.
func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Exams lists the teacher's exam activities.
func (s *Service) Exams(ctx context.Context) ([]Activity, error) {
	var acts []Activity
	if err := s.api.Get(ctx, "/actividad-examenes", &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

// CreateExam creates an exam activity from the validated form.
func (s *Service) CreateExam(ctx context.Context, form Form) (*Activity, error) {
	return s.create(ctx, "/actividad-examenes", form)
}

// Practices lists the teacher's practice activities.
func (s *Service) Practices(ctx context.Context) ([]Activity, error) {
	var acts []Activity
	if err := s.api.Get(ctx, "/actividades/practicas", &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

// CreatePractice creates a practice activity from the validated form.
func (s *Service) CreatePractice(ctx context.Context, form Form) (*Activity, error) {
	return s.create(ctx, "/actividades/practicas", form)
}

func (s *Service) create(ctx context.Context, path string, form Form) (*Activity, error) {
	if err := validate.Struct(form); err != nil {
		return nil, fmt.Errorf("activity: invalid form: %w", err)
	}
	var created Activity
	if err := s.api.Post(ctx, path, form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ArchivePractice toggles the practice's status on the backend and patches
// the locally held list optimistically instead of re-fetching.
func (s *Service) ArchivePractice(ctx context.Context, acts []Activity, id int) ([]Activity, error) {
	var target *Activity
	for i := range acts {
		if acts[i].ID == id {
			target = &acts[i]
			break
		}
	}
	if target == nil {
		return acts, fmt.Errorf("activity: practice %d not in the loaded list", id)
	}

	next := StatusArchived
	if target.Status == StatusArchived {
		next = StatusActive
	}

	body := struct {
		Status string `json:"estado"`
	}{Status: next}
	if err := s.api.Post(ctx, fmt.Sprintf("/actividad/practica/%d", id), body, nil); err != nil {
		return acts, err
	}

	patched := append([]Activity(nil), acts...)
	for i := range patched {
		if patched[i].ID == id {
			patched[i].Status = next
		}
	}
	return patched, nil
}

// DeletePractice deletes the practice with the given id.
func (s *Service) DeletePractice(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/actividad/practica/%d", id), nil)
}
