package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/aula-dev/aula/internal/api"
	"github.com/aula-dev/aula/internal/localstore"
	"github.com/aula-dev/aula/internal/log"
)

var validate = validator.New()

// LoginForm carries the login credentials.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupForm carries the student registration fields. The student role is
// implicit; there is no role selection in this flow.
type SignupForm struct {
	Name     string `json:"nombre" validate:"required"`
	LastName string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginResponse is the backend's answer to login and signup.
type loginResponse struct {
	Token   string          `json:"token"`
	Usuario json.RawMessage `json:"usuario"`
}

// Session holds the current authentication state, persisted to and
// rehydrated from the local store. It is the single writer of the token
// and profile keys; all mutations go through Login, SignupStudent and
// Logout.
type Session struct {
	api    *api.Client
	local  *localstore.Store
	logger *log.Logger

	mu            sync.Mutex
	authenticated bool
	profile       *Profile
}

// NewSession rehydrates the session from the local store: the
// authenticated flag is true exactly when a token is present, and the
// cached profile is normalized if one was saved. A corrupt cached profile
// is discarded, not fatal.
func NewSession(client *api.Client, local *localstore.Store, logger *log.Logger) (*Session, error) {
	s := &Session{api: client, local: local, logger: logger}

	_, hasToken, err := local.Get(localstore.KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("auth: rehydrating token: %w", err)
	}
	s.authenticated = hasToken

	if raw, ok, err := local.Get(localstore.KeyUserProfile); err == nil && ok {
		if p, perr := NormalizeProfile([]byte(raw)); perr == nil {
			s.profile = p
		}
	}

	return s, nil
}

// Authenticated reports whether a session is active. This is the
// synchronous session guard: no network call is made.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Profile returns the cached normalized profile, or nil when logged out.
func (s *Session) Profile() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Token returns the persisted bearer token, or "" when none is stored.
// Wired into the api client as its TokenFunc.
func (s *Session) Token() string {
	tok, _, _ := s.local.Get(localstore.KeyAuthToken)
	return tok
}

// Login authenticates against the backend. On success the token and
// profile are persisted and the authenticated flag flips on. On failure
// the backend error is propagated unchanged and no local state is
// touched.
func (s *Session) Login(ctx context.Context, form LoginForm) error {
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("auth: invalid login form: %w", err)
	}

	var resp loginResponse
	if err := s.api.Post(ctx, "/login", form, &resp); err != nil {
		s.log(log.LogEvent{Event: log.EventLoginFailed, Email: form.Email, Error: err.Error()})
		return err
	}

	if err := s.establish(resp); err != nil {
		return err
	}
	s.log(log.LogEvent{Event: log.EventLogin, Email: form.Email})
	return nil
}

// SignupStudent registers a student account. Success and failure contracts
// are identical to Login.
func (s *Session) SignupStudent(ctx context.Context, form SignupForm) error {
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("auth: invalid signup form: %w", err)
	}

	var resp loginResponse
	if err := s.api.Post(ctx, "/singup/usuario/alumno", form, &resp); err != nil {
		s.log(log.LogEvent{Event: log.EventRequestFailed, Email: form.Email, Error: err.Error()})
		return err
	}

	if err := s.establish(resp); err != nil {
		return err
	}
	s.log(log.LogEvent{Event: log.EventSignup, Email: form.Email})
	return nil
}

// establish persists the token and profile from a successful auth response
// and flips the session to authenticated.
func (s *Session) establish(resp loginResponse) error {
	profile, err := NormalizeProfile(resp.Usuario)
	if err != nil {
		return err
	}

	if err := s.local.Put(localstore.KeyAuthToken, resp.Token); err != nil {
		return err
	}
	if err := s.local.Put(localstore.KeyUserProfile, string(resp.Usuario)); err != nil {
		return err
	}

	s.mu.Lock()
	s.authenticated = true
	s.profile = profile
	s.mu.Unlock()
	return nil
}

// Logout invalidates the session. The backend call is best-effort; local
// state is cleared unconditionally, so logout is idempotent and always
// leaves authenticated=false.
func (s *Session) Logout(ctx context.Context) error {
	remoteErr := s.api.Post(ctx, "/logout", nil, nil)

	if err := s.clearLocal(); err != nil {
		return err
	}

	ev := log.LogEvent{Event: log.EventLogout}
	if remoteErr != nil {
		ev.Error = remoteErr.Error()
	}
	s.log(ev)
	return nil
}

// ForceLogout clears local session state without calling the backend.
// Used when a guarded call answers 401 and remote invalidation is moot.
func (s *Session) ForceLogout() error {
	if err := s.clearLocal(); err != nil {
		return err
	}
	s.log(log.LogEvent{Event: log.EventForcedLogout})
	return nil
}

func (s *Session) clearLocal() error {
	if err := s.local.Delete(localstore.KeyAuthToken); err != nil {
		return err
	}
	if err := s.local.Delete(localstore.KeyUserProfile); err != nil {
		return err
	}

	s.mu.Lock()
	s.authenticated = false
	s.profile = nil
	s.mu.Unlock()
	return nil
}

func (s *Session) log(ev log.LogEvent) {
	if s.logger == nil {
		return
	}
	_ = s.logger.Append(ev)
}
