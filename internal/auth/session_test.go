package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/aula-dev/aula/internal/api"
	"github.com/aula-dev/aula/internal/localstore"
	"github.com/aula-dev/aula/internal/log"
	"github.com/aula-dev/aula/internal/testutil"
)

func newTestSession(t *testing.T, backend *testutil.Backend) (*Session, *localstore.Store) {
	t.Helper()

	local, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("localstore.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	client := api.New(backend.URL(), 0, func() string {
		tok, _, _ := local.Get(localstore.KeyAuthToken)
		return tok
	})

	sess, err := NewSession(client, local, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return sess, local
}

const loginOK = `{"token": "tok-abc", "usuario": {"nombre": "Ana", "email": "ana@example.edu"}}`

func TestLoginPersistsTokenAndProfile(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/login", http.StatusOK, loginOK)

	sess, local := newTestSession(t, b)
	err := sess.Login(context.Background(), LoginForm{Email: "ana@example.edu", Password: "secret"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if !sess.Authenticated() {
		t.Error("Authenticated() = false after successful login")
	}
	tok, ok, _ := local.Get(localstore.KeyAuthToken)
	if !ok || tok != "tok-abc" {
		t.Errorf("stored token = (%q, %v)", tok, ok)
	}
	if p := sess.Profile(); p == nil || p.Name != "Ana" {
		t.Errorf("Profile = %+v", p)
	}
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	b := testutil.NewBackend(t)

	// First login succeeds, every later attempt is rejected.
	calls := 0
	b.Handle("/login", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			_, _ = w.Write([]byte(loginOK))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "bad credentials"}`))
	})

	sess, local := newTestSession(t, b)
	if err := sess.Login(context.Background(), LoginForm{Email: "ana@example.edu", Password: "secret"}); err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	err := sess.Login(context.Background(), LoginForm{Email: "other@example.edu", Password: "wrong"})
	if err == nil {
		t.Fatal("second login should have failed")
	}

	if !sess.Authenticated() {
		t.Error("failed login cleared the authenticated flag")
	}
	tok, _, _ := local.Get(localstore.KeyAuthToken)
	if tok != "tok-abc" {
		t.Errorf("failed login changed the stored token to %q", tok)
	}
	if p := sess.Profile(); p == nil || p.Email != "ana@example.edu" {
		t.Errorf("failed login changed the profile: %+v", p)
	}
}

func TestLoginValidatesForm(t *testing.T) {
	b := testutil.NewBackend(t)
	sess, _ := newTestSession(t, b)

	err := sess.Login(context.Background(), LoginForm{Email: "not-an-email", Password: ""})
	if err == nil {
		t.Fatal("invalid form accepted")
	}
	if n := b.Count("POST /login"); n != 0 {
		t.Errorf("invalid form still reached the backend (%d requests)", n)
	}
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/login", http.StatusOK, loginOK)
	b.HandleHangup("/logout")

	sess, local := newTestSession(t, b)
	if err := sess.Login(context.Background(), LoginForm{Email: "ana@example.edu", Password: "secret"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := sess.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if sess.Authenticated() {
		t.Error("Authenticated() = true after logout")
	}
	if _, ok, _ := local.Get(localstore.KeyAuthToken); ok {
		t.Error("token still stored after logout")
	}
	if _, ok, _ := local.Get(localstore.KeyUserProfile); ok {
		t.Error("profile still stored after logout")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/login", http.StatusOK, loginOK)
	b.HandleJSON("/logout", http.StatusOK, `{}`)

	sess, local := newTestSession(t, b)
	if err := sess.Login(context.Background(), LoginForm{Email: "ana@example.edu", Password: "secret"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := sess.Logout(context.Background()); err != nil {
		t.Fatalf("first Logout failed: %v", err)
	}
	if err := sess.Logout(context.Background()); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}

	if sess.Authenticated() {
		t.Error("Authenticated() = true after double logout")
	}
	if _, ok, _ := local.Get(localstore.KeyAuthToken); ok {
		t.Error("token present after double logout")
	}
}

func TestSignupStudentEstablishesSession(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/singup/usuario/alumno", http.StatusCreated,
		`{"token": "tok-new", "usuario": {"nombre": "Nuevo", "email": "n@example.edu"}}`)

	sess, local := newTestSession(t, b)
	form := SignupForm{Name: "Nuevo", LastName: "Alumno", Email: "n@example.edu", Password: "longenough"}
	if err := sess.SignupStudent(context.Background(), form); err != nil {
		t.Fatalf("SignupStudent failed: %v", err)
	}

	if !sess.Authenticated() {
		t.Error("not authenticated after signup")
	}
	tok, _, _ := local.Get(localstore.KeyAuthToken)
	if tok != "tok-new" {
		t.Errorf("stored token = %q", tok)
	}
}

func TestSignupFailureLogsRequestFailed(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/singup/usuario/alumno", http.StatusUnprocessableEntity,
		`{"errors": {"email": ["ya registrado"]}}`)

	local, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("localstore.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	logger, err := log.NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	client := api.New(b.URL(), 0, func() string { return "" })
	sess, err := NewSession(client, local, logger)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	form := SignupForm{Name: "N", LastName: "A", Email: "n@example.edu", Password: "longenough"}
	if err := sess.SignupStudent(context.Background(), form); err == nil {
		t.Fatal("rejected signup should have failed")
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	var logged bool
	for _, ev := range events {
		if ev.Event == log.EventRequestFailed {
			logged = true
			if ev.Email != "n@example.edu" || ev.Error == "" {
				t.Errorf("event = %+v", ev)
			}
		}
	}
	if !logged {
		t.Error("rejected signup logged no request_failed event")
	}
}

func TestSignupValidatesPasswordLength(t *testing.T) {
	b := testutil.NewBackend(t)
	sess, _ := newTestSession(t, b)

	form := SignupForm{Name: "N", LastName: "A", Email: "n@example.edu", Password: "short"}
	if err := sess.SignupStudent(context.Background(), form); err == nil {
		t.Fatal("short password accepted")
	}
	if n := b.Count("POST /singup/usuario/alumno"); n != 0 {
		t.Errorf("invalid form reached the backend (%d requests)", n)
	}
}

func TestRehydration(t *testing.T) {
	b := testutil.NewBackend(t)
	b.HandleJSON("/login", http.StatusOK, loginOK)

	sess, local := newTestSession(t, b)
	if err := sess.Login(context.Background(), LoginForm{Email: "ana@example.edu", Password: "secret"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A fresh session over the same store comes up authenticated with the
	// cached profile, token and flag moving together.
	client := api.New(b.URL(), 0, func() string {
		tok, _, _ := local.Get(localstore.KeyAuthToken)
		return tok
	})
	fresh, err := NewSession(client, local, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if !fresh.Authenticated() {
		t.Error("rehydrated session not authenticated")
	}
	if p := fresh.Profile(); p == nil || p.Name != "Ana" {
		t.Errorf("rehydrated profile = %+v", p)
	}
}
