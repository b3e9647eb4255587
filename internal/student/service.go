// Package student implements the student dashboard operations: own
// profile, course listing, and enrollment.
package student

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/aula-dev/aula/internal/api"
)

var validate = validator.New()

// Profile is the student's own account record.
type Profile struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
	Email    string `json:"email"`
}

// Course is an enrollable course. Enrolled is set by the backend on the
// student's own course listing and patched locally after an enrollment.
type Course struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Enrolled    bool   `json:"inscrito"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name     string `json:"nombre" validate:"required"`
	LastName string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// Service performs student-scoped calls through the API adapter.
type Service struct {
	api *api.Client
}

// NewService creates a student Service over the given API client.
func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Profile fetches the signed-in student's profile.
func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := s.api.Get(ctx, "/usuario/alumno", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile writes the editable profile fields.
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	if err := validate.Struct(upd); err != nil {
		return fmt.Errorf("student: invalid profile update: %w", err)
	}
	return s.api.Post(ctx, "/usuario/alumno", upd, nil)
}

// DeleteAccount deletes the signed-in student's account. The caller is
// responsible for confirming with the user and clearing the session
// afterwards.
func (s *Service) DeleteAccount(ctx context.Context) error {
	return s.api.Delete(ctx, "/usuario/alumno", nil)
}

// Courses lists the courses visible to the student, own enrollments marked.
func (s *Service) Courses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := s.api.Get(ctx, "/usuario/alumno/cursos", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Enroll enrolls the student in the course with the given id and patches
// the locally held list optimistically instead of re-fetching.
func (s *Service) Enroll(ctx context.Context, courses []Course, id int) ([]Course, error) {
	if err := s.api.Post(ctx, fmt.Sprintf("/usuario/alumno/curso/%d", id), nil, nil); err != nil {
		return courses, err
	}

	patched := append([]Course(nil), courses...)
	for i := range patched {
		if patched[i].ID == id {
			patched[i].Enrolled = true
		}
	}
	return patched, nil
}
