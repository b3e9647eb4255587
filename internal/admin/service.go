// Package admin implements the super-user dashboard operations: platform
// wide account listings and active/inactive status toggles.
package admin

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aula-dev/aula/internal/api"
	"github.com/aula-dev/aula/internal/auth"
)

// ErrUnauthorized is returned when a listing answers 401 or 403. By then
// the local session has already been cleared; the caller routes to login.
var ErrUnauthorized = errors.New("admin: session no longer authorized")

// Account is one student or teacher row in the admin listings.
type Account struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
	Email    string `json:"email"`
	Active   bool   `json:"activo"`
}

// Listing bundles both account listings, fetched together.
type Listing struct {
	Students []Account
	Teachers []Account
}

// Service performs super-user calls through the API adapter. It holds the
// session so an unauthorized listing can force a local logout.
type Service struct {
	api     *api.Client
	session *auth.Session
}

// NewService creates an admin Service.
func NewService(client *api.Client, session *auth.Session) *Service {
	return &Service{api: client, session: session}
}

// Accounts fetches the student and teacher listings with a fixed fan-out,
// waiting for both before returning. An authentication failure (401 or
// 403) on either clears the local session and reports ErrUnauthorized.
func (s *Service) Accounts(ctx context.Context) (*Listing, error) {
	var l Listing
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.api.Get(ctx, "/usuarios/alumnos", &l.Students) })
	g.Go(func() error { return s.api.Get(ctx, "/usuarios/docentes", &l.Teachers) })
	if err := g.Wait(); err != nil {
		if api.IsUnauthorized(err) {
			if lerr := s.session.ForceLogout(); lerr != nil {
				return nil, lerr
			}
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return &l, nil
}

// ToggleStudent flips a student account's active status and patches the
// locally held listing optimistically instead of re-fetching.
func (s *Service) ToggleStudent(ctx context.Context, accounts []Account, id int) ([]Account, error) {
	return s.toggle(ctx, fmt.Sprintf("/usuario/alumno/%d", id), accounts, id)
}

// ToggleTeacher flips a teacher account's active status, same contract as
// ToggleStudent.
func (s *Service) ToggleTeacher(ctx context.Context, accounts []Account, id int) ([]Account, error) {
	return s.toggle(ctx, fmt.Sprintf("/usuario/docente/%d", id), accounts, id)
}

func (s *Service) toggle(ctx context.Context, path string, accounts []Account, id int) ([]Account, error) {
	if err := s.api.Post(ctx, path, nil, nil); err != nil {
		return accounts, err
	}

	patched := append([]Account(nil), accounts...)
	for i := range patched {
		if patched[i].ID == id {
			patched[i].Active = !patched[i].Active
		}
	}
	return patched, nil
}
